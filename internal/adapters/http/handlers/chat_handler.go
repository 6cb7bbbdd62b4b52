package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/chatbot-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/chatbot-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/chatbot-service/internal/domain"
	"github.com/jsamuelsen11/chatbot-service/internal/platform/logging"
	"github.com/jsamuelsen11/chatbot-service/internal/ports"
)

const (
	msgUnauthorized = "Unauthorized"
	msgNoInput      = "No input provided"
	msgNoTime       = "Unable to fetch the current time"
)

// ChatHandler serves the JSON endpoints used by the chat page.
type ChatHandler struct {
	chat  ports.ChatService
	clock ports.Tool
}

// NewChatHandler creates a ChatHandler. clock is the same Time tool the
// agent uses, so the page clock and the agent agree.
func NewChatHandler(chat ports.ChatService, clock ports.Tool) *ChatHandler {
	return &ChatHandler{chat: chat, clock: clock}
}

// Chat handles POST /chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		dto.WriteMessageError(w, r, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req dto.ChatRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		dto.WriteMessageError(w, r, http.StatusBadRequest, msgNoInput)
		return
	}
	if err := req.Validate(); err != nil {
		dto.WriteMessageError(w, r, http.StatusBadRequest, msgNoInput)
		return
	}

	reply, err := h.chat.Respond(r.Context(), sess.ID, req.Input)
	if errors.Is(err, domain.ErrValidation) {
		dto.WriteMessageError(w, r, http.StatusBadRequest, msgNoInput)
		return
	}
	if err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "chat failed", slog.Any("error", err))
		dto.WriteMessageError(w, r, http.StatusInternalServerError, "Internal server error: "+err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ChatResponse{Response: reply})
}

// CurrentTime handles GET /current_time.
func (h *ChatHandler) CurrentTime(w http.ResponseWriter, r *http.Request) {
	now, err := h.clock.Run(r.Context(), "")
	if err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "reading clock", slog.Any("error", err))
		dto.WriteMessageError(w, r, http.StatusInternalServerError, msgNoTime)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.CurrentTimeResponse{CurrentTime: now})
}
