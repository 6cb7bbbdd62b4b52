package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/jsamuelsen11/chatbot-service/internal/app/agent"
	"github.com/jsamuelsen11/chatbot-service/internal/domain"
	"github.com/jsamuelsen11/chatbot-service/internal/domain/chat"
	"github.com/jsamuelsen11/chatbot-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/chatbot-service/internal/ports"
)

// Compile-time check that ChatService implements ports.ChatService.
var _ ports.ChatService = (*ChatService)(nil)

// ApologyReply is returned when neither the agent nor the fallback completion
// produced an answer.
const ApologyReply = "Sorry, I encountered an error while processing your request."

const fallbackPromptPrefix = "Provide an answer to: "

// ChatService implements ports.ChatService. Each session gets its own
// sliding memory window; the agent sees that history on every turn.
type ChatService struct {
	agent        ports.Agent
	llm          ports.LLMClient
	memoryWindow int
	metrics      *telemetry.Metrics
	logger       *slog.Logger

	// alive, when set, reports whether a session may still hold memory.
	alive func(sessionID string) bool

	mu       sync.Mutex
	memories map[string]*chat.Window
}

// ChatOption configures a ChatService.
type ChatOption func(*ChatService)

// WithLiveSessions makes the service keep memory only for sessions alive
// reports as live. A turn for an ended session still gets an answer, but its
// exchange is not remembered.
func WithLiveSessions(alive func(sessionID string) bool) ChatOption {
	return func(s *ChatService) { s.alive = alive }
}

// NewChatService creates a ChatService. memoryWindow is the number of past
// exchanges kept per session. A nil logger is replaced with a discarding one.
func NewChatService(
	a ports.Agent,
	llm ports.LLMClient,
	memoryWindow int,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
	opts ...ChatOption,
) *ChatService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &ChatService{
		agent:        a,
		llm:          llm,
		memoryWindow: memoryWindow,
		metrics:      metrics,
		logger:       logger,
		memories:     make(map[string]*chat.Window),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Respond runs the agent on input. When the agent fails or runs out of steps
// the input is sent once more as a plain completion; when that fails too the
// user gets ApologyReply. Only invalid input is reported as an error.
func (s *ChatService) Respond(ctx context.Context, sessionID, input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", &domain.ValidationError{Fields: map[string]string{"input": "No input provided"}}
	}

	memory := s.memory(sessionID)

	reply, err := s.agent.Run(ctx, input, memory.Messages())
	if err == nil {
		memory.AddExchange(input, reply)
		return reply, nil
	}

	if errors.Is(err, agent.ErrIterationLimit) {
		s.logger.WarnContext(ctx, "agent hit iteration limit, falling back to plain completion")
	} else {
		s.logger.WarnContext(ctx, "agent failed, falling back to plain completion", slog.Any("error", err))
	}

	reply, err = s.llm.Complete(ctx, fallbackPromptPrefix+input)
	if err != nil {
		s.metrics.RecordFallback(ctx, "error")
		s.logger.ErrorContext(ctx, "fallback completion failed",
			slog.String("operation", "Respond"),
			slog.Any("error", err),
		)
		return ApologyReply, nil
	}

	s.metrics.RecordFallback(ctx, "success")
	memory.AddExchange(input, reply)
	return reply, nil
}

// Forget drops the memory of a session.
func (s *ChatService) Forget(sessionID string) {
	s.mu.Lock()
	delete(s.memories, sessionID)
	s.mu.Unlock()
}

// History returns the remembered messages of a session, oldest first.
func (s *ChatService) History(sessionID string) []chat.Message {
	s.mu.Lock()
	w, ok := s.memories[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	return w.Messages()
}

// memory returns the window of a session. For a session that has already
// ended it returns a detached window so no entry outlives Forget. The liveness
// check runs under mu; callers end a session before calling Forget, so either
// Forget sees the new entry or the check sees the ended session.
func (s *ChatService) memory(sessionID string) *chat.Window {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w, ok := s.memories[sessionID]; ok {
		return w
	}
	w := chat.NewWindow(s.memoryWindow)
	if s.alive != nil && !s.alive(sessionID) {
		return w
	}
	s.memories[sessionID] = w
	return w
}
