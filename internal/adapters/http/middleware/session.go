package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/chatbot-service/internal/platform/logging"
	"github.com/jsamuelsen11/chatbot-service/internal/ports"
)

// SessionCookie describes the cookie that carries the session ID.
type SessionCookie struct {
	Name     string
	Secure   bool
	Lifetime time.Duration
}

// Set writes the cookie for sess. The cookie is HttpOnly and SameSite=Lax
// so that the top-level redirect after login still carries it.
func (c SessionCookie) Set(w http.ResponseWriter, sess *ports.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   int(c.Lifetime.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear tells the browser to drop the cookie.
func (c SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying sess.
func WithSession(ctx context.Context, sess *ports.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionFromContext returns the authenticated session, or nil for an
// anonymous request.
func SessionFromContext(ctx context.Context) *ports.Session {
	sess, _ := ctx.Value(sessionKey{}).(*ports.Session)
	return sess
}

// Session returns middleware that resolves the session cookie against store.
// Live sessions are attached to the request context and their cookie is
// re-issued, so the browser's expiry slides along with the store's. A cookie
// naming an unknown or expired session is cleared.
func Session(store ports.SessionStore, cookie SessionCookie) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(cookie.Name)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := store.Get(c.Value)
			if err != nil {
				logging.FromContext(r.Context()).DebugContext(r.Context(), "discarding stale session cookie",
					slog.Any("error", err),
				)
				cookie.Clear(w)
				next.ServeHTTP(w, r)
				return
			}

			cookie.Set(w, sess)
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}
