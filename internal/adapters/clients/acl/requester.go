package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/chatbot-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/chatbot-service/internal/platform/logging"
)

// Requester runs JSON request/response exchanges against one upstream and
// turns unexpected statuses into domain errors.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester returns a Requester sending through client.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do sends method to BaseURL+path (path may carry a query string). A non-nil
// in is sent as a JSON body; a non-nil out receives the decoded response.
// Any status other than want is translated with TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, method, path string, want int, in, out any) error {
	req, err := r.newRequest(ctx, method, path, in)
	if err != nil {
		return err
	}

	resp, sendErr := r.client.Do(ctx, req)
	if resp == nil {
		logging.FromContext(ctx).ErrorContext(ctx, "upstream request failed",
			slog.String("peer_service", r.client.Name()),
			slog.String("method", method),
			slog.String("path", req.URL.Path),
			slog.Any("error", sendErr),
		)
		return fmt.Errorf("%s %s: %w", method, req.URL.Path, sendErr)
	}
	defer r.drain(ctx, resp)

	// Exhausted retries hand back the last response as well as an error;
	// its status says more than the error does.
	if resp.StatusCode != want {
		logging.FromContext(ctx).WarnContext(ctx, "upstream returned unexpected status",
			slog.String("peer_service", r.client.Name()),
			slog.String("method", method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", want),
		)
		return TranslateHTTPError(resp)
	}
	if sendErr != nil {
		return fmt.Errorf("%s %s: %w", method, req.URL.Path, sendErr)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, req.URL.Path, err)
	}
	return nil
}

// CircuitBreakerState exposes the breaker state of the underlying client.
func (r *Requester) CircuitBreakerState() string {
	return r.client.CircuitBreakerState()
}

func (r *Requester) newRequest(ctx context.Context, method, path string, in any) (*http.Request, error) {
	var body io.Reader = http.NoBody
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (r *Requester) drain(ctx context.Context, resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "closing upstream response body", slog.Any("error", err))
	}
}
