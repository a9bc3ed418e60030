package httphandler

import (
	"net/http"

	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/cocoa-apparel/storefront/internal/core/port"
)

func AllowJSON(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		if r.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "invalid media type", http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

// RequireRole rejects requests unless the persisted auth session
// belongs to a user with the given role.
func RequireRole(
	auth port.Authenticator, role domain.Role,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hf := func(w http.ResponseWriter, r *http.Request) {
			state := auth.Session()
			if !state.IsAuthenticated || state.User == nil {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}
			if state.User.Role != role {
				http.Error(w, "insufficient permissions", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hf)
	}
}
