package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticIssuer struct {
	token  string
	userID string
	email  string
}

func (s *staticIssuer) IssueAccessToken(userID, email string, expiresInSeconds int64) (string, error) {
	return s.token, nil
}

func (s *staticIssuer) ValidateAccessToken(tokenString string) (string, string, error) {
	if tokenString != s.token {
		return "", "", errors.New("invalid token")
	}
	return s.userID, s.email, nil
}

func TestAuthValidatorSetsUserContext(t *testing.T) {
	issuer := &staticIssuer{token: "good-token", userID: "user-1", email: "a@example.com"}
	var gotID, gotEmail string
	handler := NewAuthValidator(issuer).Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotEmail = UserFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotID != "user-1" || gotEmail != "a@example.com" {
		t.Errorf("context identity = (%q, %q)", gotID, gotEmail)
	}
}

func TestAuthValidatorRejectsBadHeaders(t *testing.T) {
	issuer := &staticIssuer{token: "good-token", userID: "user-1"}
	handler := NewAuthValidator(issuer).Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached with bad credentials")
	}))

	for _, header := range []string{"", "Bearer wrong-token", "Basic good-token", "good-token"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, rec.Code)
		}
	}
}

func TestUserFromContextUnauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	id, email := UserFromContext(req.Context())
	if id != "" || email != "" {
		t.Errorf("unauthenticated context = (%q, %q), want empty", id, email)
	}
}
