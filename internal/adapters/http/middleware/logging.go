package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/chatbot-service/internal/platform/logging"
)

// Logging returns middleware that logs the start and end of every request.
// The child logger it stores in the context (see logging.FromContext) carries
// the request and correlation IDs and, for logged-in users, the username.
// Session must run before Logging for the username to be known.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			attrs := []any{
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			}
			if sess := SessionFromContext(ctx); sess != nil {
				attrs = append(attrs, slog.String("user", sess.Username))
			}
			child := logger.With(attrs...)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			if child.Enabled(ctx, slog.LevelDebug) {
				headerAttrs := RedactHeaders(r.Header)
				args := make([]any, 0, len(headerAttrs))
				for _, a := range headerAttrs {
					args = append(args, a)
				}
				child.DebugContext(ctx, "request headers", args...)
			}

			rw := recordStatus(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			level := slog.LevelInfo
			if rw.Status() >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			child.Log(ctx, level, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.Status()),
				slog.Int64("bytes", rw.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// routePattern returns the chi route that matched r, e.g. "/chat". It is
// only populated once the router has dispatched the request.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
