// Package httpclient wraps net/http for calls to the chat service's upstream
// APIs (the OpenAI chat completions endpoint and MediaWiki). Every request
// passes through the same guard rails:
//
//	circuit breaker -> rate limiter -> default/ID headers -> client span -> retry -> transport
//
// Typical wiring:
//
//	c := httpclient.New(&cfg.LLM.Client, "openai", metrics, logger,
//	    httpclient.WithHeader("Authorization", "Bearer "+cfg.LLM.APIKey))
//	resp, err := c.Do(ctx, req)
package httpclient

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/chatbot-service/internal/platform/config"
	"github.com/jsamuelsen11/chatbot-service/internal/platform/telemetry"
)

// Client is safe for concurrent use.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter
	retry       config.RetryConfig
	headers     http.Header
	metrics     *telemetry.Metrics
}

// Option customizes a Client at construction.
type Option func(*Client)

// WithHeader adds a default header. It is only applied when the outgoing
// request does not set the same header itself.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Set(key, value) }
}

// WithTransport swaps the round tripper, e.g. for httpmock in tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.httpClient.Transport = rt }
}

// New builds a Client for the upstream named serviceName. metrics may be nil.
func New(
	cfg *config.ClientConfig,
	serviceName string,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
	opts ...Option,
) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		breaker:     gobreaker.NewCircuitBreaker[struct{}](breakerSettings(serviceName, cfg.CircuitBreaker, logger)),
		limiter:     newLimiter(cfg.RateLimit),
		retry:       cfg.Retry,
		headers:     make(http.Header),
		metrics:     metrics,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func breakerSettings(name string, cfg config.CircuitBreakerConfig, logger *slog.Logger) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: clampUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("upstream circuit changed state",
				slog.String("peer_service", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}
}

// newLimiter returns nil when no rate is configured.
func newLimiter(cfg config.RateLimitConfig) *rate.Limiter {
	if cfg.RequestsPerSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize)
}

// Do sends req and returns the upstream response.
//
// A non-retryable status (including 4xx) comes back with a nil error. If
// every attempt hit a retryable status, the last response is returned along
// with an error, and the caller still owns its body. Breaker rejections,
// limiter waits that fail and transport errors return a nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}

		c.applyHeaders(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		req = req.WithContext(spanCtx)
		err := c.doWithRetry(spanCtx, req, &resp)
		endSpan(span, resp, err)
		return struct{}{}, err
	})

	c.record(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// BaseURL is the configured upstream root, e.g. "https://api.openai.com/v1".
func (c *Client) BaseURL() string { return c.baseURL }

// Name is the upstream identifier used in logs, spans and metrics.
func (c *Client) Name() string { return c.serviceName }

// CircuitBreakerState reports "closed", "half-open" or "open".
func (c *Client) CircuitBreakerState() string {
	return c.breaker.State().String()
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
