package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/chatbot-service/internal/adapters/http/dto"
)

// msgInternalError is all a client learns about a recovered panic.
const msgInternalError = "Internal server error"

// Recovery returns middleware that turns a handler panic into a logged error
// and a 500 {"error": "Internal server error"} response. The panic value and
// stack only go to the log. If the handler already started the response,
// nothing more is written.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := recordStatus(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !rw.Committed() {
					dto.WriteMessageError(rw, r, http.StatusInternalServerError, msgInternalError)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
