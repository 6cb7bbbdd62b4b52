package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/jsamuelsen11/chatbot-service/internal/domain"
	"github.com/jsamuelsen11/chatbot-service/internal/ports"
)

// Wikipedia tool replies.
const (
	WikipediaName        = "Wikipedia"
	wikipediaDescription = "Useful for when you need to know information about a topic."
	noResultsReply       = "No results found on Wikipedia."
)

var querySanitizer = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

var _ ports.Tool = (*Wikipedia)(nil)

// Wikipedia looks a topic up and returns the opening sentences of the best
// matching page. Lookup failures are reported as text so the agent can read
// them; Run never returns an error.
type Wikipedia struct {
	client    ports.WikipediaClient
	sentences int
	logger    *slog.Logger
}

// NewWikipedia creates the tool. sentences is how much of the page intro to
// return.
func NewWikipedia(client ports.WikipediaClient, sentences int, logger *slog.Logger) *Wikipedia {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Wikipedia{client: client, sentences: sentences, logger: logger}
}

func (w *Wikipedia) Name() string        { return WikipediaName }
func (w *Wikipedia) Description() string { return wikipediaDescription }

func (w *Wikipedia) Args() map[string]any {
	return map[string]any{"tool_input": map[string]any{"type": "string"}}
}

// Run searches for input and summarizes the first hit.
func (w *Wikipedia) Run(ctx context.Context, input string) (string, error) {
	query := SanitizeQuery(input)
	if query == "" {
		return noResultsReply, nil
	}

	titles, err := w.client.Search(ctx, query, 1)
	if err != nil {
		return w.failure(ctx, query, err), nil
	}
	if len(titles) == 0 {
		return noResultsReply, nil
	}

	page, err := w.client.Page(ctx, titles[0], w.sentences)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return noResultsReply, nil
		}
		return w.failure(ctx, query, err), nil
	}

	if page.Disambiguation {
		return fmt.Sprintf("Multiple results found: \"%s\" may refer to: \n%s",
			page.Title, strings.Join(page.Links, "\n")), nil
	}
	if strings.TrimSpace(page.Extract) == "" {
		return noResultsReply, nil
	}
	return page.Extract, nil
}

func (w *Wikipedia) failure(ctx context.Context, query string, err error) string {
	w.logger.WarnContext(ctx, "wikipedia lookup failed",
		slog.String("query", query),
		slog.Any("error", err),
	)
	return "Error: " + err.Error()
}

// SanitizeQuery strips everything but ASCII letters, digits and whitespace,
// then trims the result.
func SanitizeQuery(q string) string {
	return strings.TrimSpace(querySanitizer.ReplaceAllString(q, ""))
}
