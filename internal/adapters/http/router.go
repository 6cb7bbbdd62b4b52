// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/chatbot-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/chatbot-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/chatbot-service/internal/domain"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. The /view_db debug
// route is mounted only when debug is non-nil.
func NewRouter(
	authHandler *handlers.AuthHandler,
	chatHandler *handlers.ChatHandler,
	debugHandler *handlers.DebugHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Browser pages.
	r.Get("/", authHandler.Index)
	r.Get("/login", authHandler.LoginPage)
	r.Post("/login", authHandler.Login)
	r.Get("/register", authHandler.RegisterPage)
	r.Post("/register", authHandler.Register)
	r.Get("/chat", authHandler.ChatPage)
	r.Get("/logout", authHandler.Logout)

	// JSON endpoints used by the chat page.
	r.Post("/chat", chatHandler.Chat)
	r.Get("/current_time", chatHandler.CurrentTime)

	if debugHandler != nil {
		r.Get("/view_db", debugHandler.ViewDB)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, fmt.Errorf("no route for %s: %w", req.URL.Path, domain.ErrNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, dto.ErrMethodNotAllowed))
	})

	return r
}
