package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
)

// CORS returns middleware that answers preflight requests and sets the
// Access-Control-* headers for the configured origins. Credentials are
// allowed so the browser sends the session cookie on cross-origin calls.
// With no origins configured the middleware is a pass-through and only
// same-origin requests work.
func CORS(allowedOrigins []string, maxAge time.Duration) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", headerRequestID, headerCorrelationID},
		ExposedHeaders:   []string{headerRequestID, headerCorrelationID},
		AllowCredentials: true,
		MaxAge:           int(maxAge.Seconds()),
	})
}
