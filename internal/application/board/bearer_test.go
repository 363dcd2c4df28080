package board

import (
	"errors"
	"testing"

	domerrors "taskboard/internal/domain/errors"
)

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "empty header", header: "", wantErr: domerrors.ErrTokenRequired},
		{name: "missing scheme", header: "abc123", wantErr: domerrors.ErrInvalidToken},
		{name: "wrong scheme", header: "Basic abc123", wantErr: domerrors.ErrInvalidToken},
		{name: "lowercase scheme", header: "bearer abc123", wantErr: domerrors.ErrInvalidToken},
		{name: "scheme without token", header: "Bearer ", wantErr: domerrors.ErrInvalidToken},
		{name: "valid", header: "Bearer abc123", want: "abc123"},
		{name: "trailing parts ignored", header: "Bearer abc123 extra", want: "abc123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tc.header)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != tc.want {
				t.Errorf("token = %q, want %q", got, tc.want)
			}
		})
	}
}
