package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// AdminAuth gates admin routes behind a single process-wide shared secret
// supplied via the Authorization header. There is no per-user identity.
func AdminAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			// Support both "Bearer <secret>" and "<secret>" formats
			candidate := strings.TrimPrefix(auth, "Bearer ")
			candidate = strings.TrimSpace(candidate)

			// constant-time comparison to prevent timing attacks
			if subtle.ConstantTimeCompare([]byte(candidate), []byte(secret)) != 1 {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
