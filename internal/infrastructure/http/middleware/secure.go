package middleware

import (
	"net/http"

	"github.com/unrolled/secure"
)

// SecureOptions returns the security-header policy for the API. The API is
// JSON-only, so framing and script sources are locked down; isDevelopment
// relaxes enforcement for local runs without TLS.
func SecureOptions(isDevelopment bool) secure.Options {
	return secure.Options{
		IsDevelopment:         isDevelopment,
		ContentTypeNosniff:    true,
		FrameDeny:             true,
		BrowserXssFilter:      true,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}
}

// NewSecure wraps unrolled/secure as a chi-compatible middleware.
func NewSecure(opts secure.Options) func(next http.Handler) http.Handler {
	return secure.New(opts).Handler
}
