// Package acl implements the Anti-Corruption Layer that translates between
// the downstream chat completion and MediaWiki APIs and domain types. Wire
// formats and translators live in subpackages (acl/openai, acl/wikipedia);
// shared request handling and error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/chatbot-service/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorBody covers the error shapes the downstream APIs use: RFC 7807
// problem details ("detail", "errors") and the OpenAI-style envelope
// ({"error": {"message": ...}}).
type errorBody struct {
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
	Error  *apiError     `json:"error"`
}

// errorDetail represents a single field-level error within an RFC 7807 response.
type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    any    `json:"code"`
}

func (b errorBody) detail() string {
	if b.Detail != "" {
		return b.Detail
	}
	if b.Error != nil {
		return b.Error.Message
	}
	return ""
}

// TranslateHTTPError maps an HTTP error response to a domain error.
// It parses JSON bodies (problem+json or the OpenAI error envelope) and uses
// their message for context. For 400/422 responses with field-level errors,
// it returns a *domain.ValidationError.
func TranslateHTTPError(resp *http.Response) error {
	body := parseErrorBody(resp)

	detail := body.detail()
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if len(body.Errors) > 0 {
			return toValidationError(body.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnauthorized)

	case resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// parseErrorBody attempts to read and parse a JSON error body from the
// response. Returns an empty errorBody if parsing fails.
func parseErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") && !strings.HasPrefix(ct, "application/json") {
		return errorBody{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errorBody{}
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return errorBody{}
	}
	return body
}

// toValidationError converts RFC 7807 error details to a domain ValidationError.
// It strips the "body." prefix from locations to produce clean field names.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := strings.TrimPrefix(d.Location, "body.")
		fields[field] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
