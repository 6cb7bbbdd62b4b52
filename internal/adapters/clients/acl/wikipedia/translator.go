package wikipedia

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/chatbot-service/internal/domain"
	"github.com/jsamuelsen11/chatbot-service/internal/ports"
)

// disambiguationProp marks disambiguation pages in pageprops.
const disambiguationProp = "disambiguation"

// ToSearchTitles returns the titles of the search hits in rank order.
func ToSearchTitles(dto *SearchResponseDTO) []string {
	titles := make([]string, 0, len(dto.Query.Search))
	for _, hit := range dto.Query.Search {
		titles = append(titles, hit.Title)
	}
	return titles
}

// ToWikiPage converts the first page of a query response. Returns
// domain.ErrNotFound when the page is missing or the title is invalid.
func ToWikiPage(dto *PageResponseDTO) (*ports.WikiPage, error) {
	if len(dto.Query.Pages) == 0 {
		return nil, fmt.Errorf("empty page response: %w", domain.ErrNotFound)
	}

	p := dto.Query.Pages[0]
	if p.Missing || p.Invalid {
		return nil, fmt.Errorf("page %q: %w", p.Title, domain.ErrNotFound)
	}

	_, disambiguation := p.PageProps[disambiguationProp]

	return &ports.WikiPage{
		Title:          p.Title,
		Extract:        strings.TrimSpace(p.Extract),
		Disambiguation: disambiguation,
	}, nil
}

// ToLinkTitles returns the article-namespace links of the first page of a
// prop=links response.
func ToLinkTitles(dto *PageResponseDTO) []string {
	if len(dto.Query.Pages) == 0 {
		return nil
	}
	links := dto.Query.Pages[0].Links
	titles := make([]string, 0, len(links))
	for _, l := range links {
		if l.NS == 0 {
			titles = append(titles, l.Title)
		}
	}
	return titles
}

// ToError converts an in-band MediaWiki error. Bad parameters map to
// domain.ErrValidation, everything else to domain.ErrUnavailable.
func ToError(e *ErrorDTO) error {
	if e == nil {
		return nil
	}
	msg := e.Code
	if e.Info != "" {
		msg = e.Code + ": " + e.Info
	}
	if strings.HasPrefix(e.Code, "bad") || strings.HasPrefix(e.Code, "invalid") || strings.HasPrefix(e.Code, "missing") {
		return fmt.Errorf("%s: %w", msg, domain.ErrValidation)
	}
	return fmt.Errorf("%s: %w", msg, domain.ErrUnavailable)
}
