package acl

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/jsamuelsen11/chatbot-service/internal/platform/config"
	"github.com/jsamuelsen11/chatbot-service/internal/platform/httpclient"
)

// newTestClient creates an httpclient.Client pointing at baseURL with circuit
// breaker and retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL string, opts ...httpclient.Option) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}

	return httpclient.New(cfg, "acl-test", nil, discardLogger(), opts...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}
