package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/chatbot-service/internal/adapters/clients/acl/wikipedia"
	"github.com/jsamuelsen11/chatbot-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/chatbot-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.WikipediaClient = (*WikipediaClient)(nil)
	_ ports.HealthChecker   = (*WikipediaClient)(nil)
)

const (
	mediaWikiAPIPath = "/w/api.php"

	// disambiguationLinkLimit caps the titles listed for a disambiguation page.
	disambiguationLinkLimit = 50
)

// WikipediaClient is the outbound adapter for the MediaWiki action API.
// It implements [ports.WikipediaClient].
//
// MediaWiki reports most failures with HTTP 200 and an "error" object; those
// are translated by [wikipedia.ToError].
type WikipediaClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewWikipediaClient creates a WikipediaClient. The client's BaseURL should be
// the wiki root (e.g. "https://en.wikipedia.org") and it should send a
// descriptive User-Agent header as MediaWiki's API etiquette requires.
func NewWikipediaClient(client *httpclient.Client, logger *slog.Logger) *WikipediaClient {
	return &WikipediaClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// Search runs a full-text search and returns up to limit titles.
func (c *WikipediaClient) Search(ctx context.Context, query string, limit int) ([]string, error) {
	q := baseQuery()
	q.Set("list", "search")
	q.Set("srsearch", query)
	q.Set("srlimit", strconv.Itoa(max(limit, 1)))
	q.Set("srprop", "")

	var dto wikipedia.SearchResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, mediaWikiAPIPath+"?"+q.Encode(), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	if err := wikipedia.ToError(dto.Error); err != nil {
		return nil, err
	}
	return wikipedia.ToSearchTitles(&dto), nil
}

// Page fetches the plain-text introduction of title, following redirects.
// Links are requested in a second call, and only for disambiguation pages.
func (c *WikipediaClient) Page(ctx context.Context, title string, sentences int) (*ports.WikiPage, error) {
	q := baseQuery()
	q.Set("prop", "extracts|pageprops")
	q.Set("titles", title)
	q.Set("redirects", "1")
	q.Set("exintro", "1")
	q.Set("explaintext", "1")
	if sentences > 0 {
		q.Set("exsentences", strconv.Itoa(sentences))
	}
	q.Set("ppprop", "disambiguation")

	var dto wikipedia.PageResponseDTO
	if err := c.query(ctx, q, &dto); err != nil {
		return nil, err
	}
	page, err := wikipedia.ToWikiPage(&dto)
	if err != nil {
		return nil, err
	}
	if !page.Disambiguation {
		return page, nil
	}

	links, err := c.links(ctx, page.Title)
	if err != nil {
		return nil, err
	}
	page.Links = links
	return page, nil
}

// links returns the article titles a page points to, capped at
// disambiguationLinkLimit.
func (c *WikipediaClient) links(ctx context.Context, title string) ([]string, error) {
	q := baseQuery()
	q.Set("prop", "links")
	q.Set("titles", title)
	q.Set("plnamespace", "0")
	q.Set("pllimit", strconv.Itoa(disambiguationLinkLimit))

	var dto wikipedia.PageResponseDTO
	if err := c.query(ctx, q, &dto); err != nil {
		return nil, err
	}
	return wikipedia.ToLinkTitles(&dto), nil
}

func (c *WikipediaClient) query(ctx context.Context, q url.Values, dto *wikipedia.PageResponseDTO) error {
	if err := c.req.Do(ctx, http.MethodGet, mediaWikiAPIPath+"?"+q.Encode(), http.StatusOK, nil, dto); err != nil {
		return err
	}
	return wikipedia.ToError(dto.Error)
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *WikipediaClient) Name() string {
	return "wikipedia"
}

// HealthCheck reports the MediaWiki API's availability from the circuit
// breaker state; no network call is made.
func (c *WikipediaClient) HealthCheck(_ context.Context) error {
	return breakerHealth(c.Name(), c.req.CircuitBreakerState())
}

func baseQuery() url.Values {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("format", "json")
	q.Set("formatversion", "2")
	return q
}
