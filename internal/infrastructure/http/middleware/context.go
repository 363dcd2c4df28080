package middleware

import "context"

type contextKey string

const userContextKey contextKey = "user"

type authIdentity struct {
	userID string
	email  string
}

// WithUser injects the authenticated user's id and email into the context.
func WithUser(ctx context.Context, userID, email string) context.Context {
	return context.WithValue(ctx, userContextKey, authIdentity{userID: userID, email: email})
}

// UserFromContext returns the authenticated user id and email, or empty
// strings when the request was not authenticated.
func UserFromContext(ctx context.Context) (userID, email string) {
	v := ctx.Value(userContextKey)
	if v == nil {
		return "", ""
	}
	id, _ := v.(authIdentity)
	return id.userID, id.email
}
