package ports

import (
	"context"

	"github.com/jsamuelsen11/chatbot-service/internal/domain/chat"
)

// ChatOptions tunes a single chat completion call.
type ChatOptions struct {
	// Stop lists sequences at which the model stops generating. The agent
	// uses it to keep the model from inventing its own observations.
	Stop []string
}

// LLMClient defines the client port for the chat completion API.
// Implemented by the ACL adapter; called by the agent and the chat service.
type LLMClient interface {
	// Chat sends a full message list and returns the assistant's reply text.
	// Returns domain.ErrUnavailable when the API returns no choices or the
	// circuit is open.
	Chat(ctx context.Context, messages []chat.Message, opts ChatOptions) (string, error)

	// Complete sends a single user prompt with no history.
	Complete(ctx context.Context, prompt string) (string, error)
}

// WikiPage is the subset of an encyclopedia page the Wikipedia tool needs.
type WikiPage struct {
	Title string

	// Extract is the plain-text introduction of the page.
	Extract string

	// Disambiguation is set when the page only lists other pages.
	// Links then holds the titles it points to.
	Disambiguation bool
	Links          []string
}

// WikipediaClient defines the client port for the MediaWiki API.
type WikipediaClient interface {
	// Search returns up to limit page titles ranked by relevance. An empty
	// slice means no page matched.
	Search(ctx context.Context, query string, limit int) ([]string, error)

	// Page returns the first sentences of the introduction of the page with
	// the given title. sentences <= 0 returns the whole introduction.
	// Returns domain.ErrNotFound if the page does not exist.
	Page(ctx context.Context, title string, sentences int) (*WikiPage, error)
}
