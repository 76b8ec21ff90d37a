package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/bigpasteldabel/storefront/internal/config"
)

// AdminAuth middleware guards the administrative endpoints. The shared
// secret is passed in the "x-admin-api-secret" header.
func AdminAuth(cfg config.AdminConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			secret := r.Header.Get("x-admin-api-secret")

			if secret == "" {
				http.Error(w, "Unauthorized: admin API secret required", http.StatusUnauthorized)
				return
			}

			if subtle.ConstantTimeCompare([]byte(secret), []byte(cfg.APISecret)) != 1 {
				http.Error(w, "Forbidden: invalid admin API secret", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
