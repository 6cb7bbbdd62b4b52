package httpclient

import (
	"context"
	"net/http"
)

// Headers forwarded to upstreams when the inbound request carried them.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores the inbound request ID so outbound calls made with
// ctx forward it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the correlation ID so outbound calls made with
// ctx forward it.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// applyHeaders fills in default headers the caller left unset, then the
// request and correlation IDs found in ctx.
func (c *Client) applyHeaders(ctx context.Context, req *http.Request) {
	for key := range c.headers {
		if req.Header.Get(key) == "" {
			req.Header.Set(key, c.headers.Get(key))
		}
	}
	forward := []struct {
		key    any
		header string
	}{
		{requestIDKey{}, HeaderRequestID},
		{correlationIDKey{}, HeaderCorrelationID},
	}
	for _, f := range forward {
		if id, _ := ctx.Value(f.key).(string); id != "" {
			req.Header.Set(f.header, id)
		}
	}
}
