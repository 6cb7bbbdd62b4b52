// Package wikipedia implements the Anti-Corruption Layer translators for the
// MediaWiki action API (formatversion=2).
package wikipedia

// ErrorDTO is the error object MediaWiki returns with HTTP 200.
type ErrorDTO struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// SearchResponseDTO matches action=query&list=search.
type SearchResponseDTO struct {
	Error *ErrorDTO `json:"error,omitempty"`
	Query struct {
		Search []SearchHitDTO `json:"search"`
	} `json:"query"`
}

// SearchHitDTO is one search result.
type SearchHitDTO struct {
	PageID int64  `json:"pageid"`
	Title  string `json:"title"`
}

// PageResponseDTO matches action=query with prop=extracts|pageprops or
// prop=links.
type PageResponseDTO struct {
	Error *ErrorDTO `json:"error,omitempty"`
	Query struct {
		Pages []PageDTO `json:"pages"`
	} `json:"query"`
}

// PageDTO is one page of a query response.
type PageDTO struct {
	PageID    int64             `json:"pageid"`
	Title     string            `json:"title"`
	Missing   bool              `json:"missing"`
	Invalid   bool              `json:"invalid"`
	Extract   string            `json:"extract"`
	PageProps map[string]string `json:"pageprops"`
	Links     []LinkDTO         `json:"links"`
}

// LinkDTO is an outgoing wiki link.
type LinkDTO struct {
	NS    int    `json:"ns"`
	Title string `json:"title"`
}
