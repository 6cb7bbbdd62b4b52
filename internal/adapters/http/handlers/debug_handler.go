package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/chatbot-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/chatbot-service/internal/platform/logging"
	"github.com/jsamuelsen11/chatbot-service/internal/ports"
)

// DebugHandler exposes the user table for local troubleshooting. The router
// only mounts it when debug.view_db is enabled.
type DebugHandler struct {
	auth ports.AuthService
}

// NewDebugHandler creates a DebugHandler.
func NewDebugHandler(auth ports.AuthService) *DebugHandler {
	return &DebugHandler{auth: auth}
}

// ViewDB handles GET /view_db. Only IDs and usernames are listed.
func (h *DebugHandler) ViewDB(w http.ResponseWriter, r *http.Request) {
	users, err := h.auth.ListUsers(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "listing users", slog.Any("error", err))
		dto.WriteMessageError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToUsersResponse(users))
}
