package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen11/chatbot-service/internal/platform/config"
	"github.com/jsamuelsen11/chatbot-service/internal/platform/logging"
)

// jitterFraction spreads each delay by up to ±25%.
const jitterFraction = 0.25

// newBackOff returns a fresh delay schedule for one logical request.
func newBackOff(cfg config.RetryConfig) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.InitialInterval
	b.MaxInterval = cfg.MaxInterval
	b.Multiplier = cfg.Multiplier
	b.RandomizationFactor = jitterFraction
	b.Reset()
	return b
}

// doWithRetry sends req up to maxAttempts times. Network failures, 429 and
// 5xx responses are retried after an exponential delay; a longer Retry-After
// from the server is honored up to maxInterval. The body is buffered so each
// attempt can resend it.
//
// The response is handed back through resp; the caller closes its body. When
// every attempt got a retryable status, resp holds the last response and the
// error is non-nil.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retry.MaxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retry.MaxAttempts)
	}

	body, err := bufferBody(req)
	if err != nil {
		return err
	}

	schedule := newBackOff(c.retry)
	var lastErr error

	for attempt := 1; ; attempt++ {
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		r, err := c.httpClient.Do(req)
		wait := schedule.NextBackOff()

		switch {
		case err != nil:
			if !isRetryable(err) {
				return err
			}
			lastErr = err
		case !isRetryableStatus(r.StatusCode):
			*resp = r
			return nil
		default:
			lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
			if hint := parseRetryAfter(r.Header.Get("Retry-After"), time.Now()); hint > wait {
				wait = min(hint, c.retry.MaxInterval)
			}
			if attempt == c.retry.MaxAttempts {
				*resp = r
				return lastErr
			}
			_, _ = io.Copy(io.Discard, r.Body)
			_ = r.Body.Close()
		}

		if attempt == c.retry.MaxAttempts {
			return lastErr
		}

		logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
			slog.String("peer_service", c.serviceName),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", c.retry.MaxAttempts),
			slog.Duration("backoff", wait),
			slog.Any("error", lastErr),
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// bufferBody drains and closes the request body so it can be replayed.
func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer req.Body.Close()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

// parseRetryAfter reads a Retry-After value in delay-seconds or HTTP-date
// form. Unparseable or past values yield zero.
func parseRetryAfter(value string, now time.Time) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and deadlines are final; everything else may be transient.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether the status signals a transient failure:
// 429 or any 5xx.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
