package ports

import (
	"context"

	"github.com/jsamuelsen11/chatbot-service/internal/domain/chat"
)

// Tool is a capability the agent can invoke by name. Run receives the
// flattened action input and returns the observation fed back to the model.
type Tool interface {
	Name() string
	Description() string

	// Args describes the tool's input schema as rendered in the agent prompt,
	// e.g. {"query": {"type": "string"}}. Nil means the tool takes no input.
	Args() map[string]any

	Run(ctx context.Context, input string) (string, error)
}

// Agent answers one input using tools, given the prior conversation.
// Implemented by the agent executor; called by the chat service.
type Agent interface {
	Run(ctx context.Context, input string, history []chat.Message) (string, error)
}
