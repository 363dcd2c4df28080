package middleware

import (
	"encoding/json"
	"net/http"

	"taskboard/internal/application/board"
	"taskboard/internal/application/ports"
)

// AuthValidator validates the bearer token and sets the user in context
// (see UserFromContext).
type AuthValidator struct {
	issuer ports.TokenIssuer
}

func NewAuthValidator(issuer ports.TokenIssuer) *AuthValidator {
	return &AuthValidator{issuer: issuer}
}

func (m *AuthValidator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := board.ExtractBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeAuthErr(w, err.Error())
			return
		}
		userID, email, err := m.issuer.ValidateAccessToken(token)
		if err != nil {
			writeAuthErr(w, "invalid token")
			return
		}
		ctx := WithUser(r.Context(), userID, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeAuthErr(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": "unauthorized"})
}
