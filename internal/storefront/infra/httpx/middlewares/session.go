package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// SessionCookie is the cookie that carries the browsing session identity.
const SessionCookie = "sf_session"

// ctxKey is unexported so no other package can collide with our context
// values.
type ctxKey string

const sessionKey ctxKey = "session_id"

// WithSession ensures every request carries a stable session identity,
// issuing a new cookie when the browser does not present one. The cart
// store and checkout workflow are keyed on this identity.
func WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
			id = c.Value
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), sessionKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID returns the session identity attached by WithSession, or the
// empty string when the middleware did not run.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey).(string)
	return id
}
