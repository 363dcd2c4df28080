package board

import (
	"strings"

	domerrors "taskboard/internal/domain/errors"
)

// ExtractBearerToken pulls the raw token out of an Authorization header
// value. The value must be two space-separated parts with a literal
// "Bearer" scheme; anything else is an unauthorized error.
func ExtractBearerToken(headerValue string) (string, error) {
	if headerValue == "" {
		return "", domerrors.ErrTokenRequired
	}
	parts := strings.Split(headerValue, " ")
	if len(parts) < 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", domerrors.ErrInvalidToken
	}
	return parts[1], nil
}
