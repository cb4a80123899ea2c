package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/xid"
)

// SessionCookie is the name of the cookie carrying the visitor's session id.
const SessionCookie = "blogview_session"

type sessionKey struct{}

// Session makes sure every request carries a session id, issuing a new
// cookie when the request has none or an unparseable one.
func Session(ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if cookie, err := r.Cookie(SessionCookie); err == nil {
				if parsed, err := xid.FromString(cookie.Value); err == nil {
					id = parsed.String()
				}
			}
			if id == "" {
				id = xid.New().String()
			}

			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   int(ttl.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, id)))
		})
	}
}

// SessionID returns the session id stored by Session, or "" outside of it.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
