package middleware

import (
	"net/http"

	"github.com/darkcuisine/storefront/internal/cart"
	"github.com/google/uuid"
)

// SessionCookie names the cookie carrying the cart session identifier.
const SessionCookie = "cart_session"

// Session provisions the request context with the session's cart store,
// issuing a session cookie on first contact. Carts live only as long as
// the process; losing the cookie or restarting the server starts an
// empty cart.
func Session(manager *cart.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sessionID string

			if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
				sessionID = c.Value
			} else {
				sessionID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			store := manager.Get(sessionID)
			ctx := cart.NewContext(r.Context(), store)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
