package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/chatbot-service/internal/platform/httpclient"
)

const (
	headerRequestID     = httpclient.HeaderRequestID
	headerCorrelationID = httpclient.HeaderCorrelationID
)

// maxIDLength caps client-supplied IDs before they reach logs and outbound
// headers.
const maxIDLength = 128

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores id in ctx. httpclient picks it up too, so calls to
// the LLM and Wikipedia carry the same X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext returns the request ID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithCorrelationID stores id in ctx and forwards it to outbound calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey{}, id)
	return httpclient.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext returns the correlation ID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// RequestID reuses an acceptable incoming X-Request-ID or mints a UUID, and
// echoes the result on the response.
func RequestID() func(http.Handler) http.Handler {
	return idMiddleware(headerRequestID, WithRequestID, func(*http.Request) string {
		return uuid.NewString()
	})
}

// CorrelationID reuses an acceptable incoming X-Correlation-ID or falls back
// to the request ID. It must run after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return idMiddleware(headerCorrelationID, WithCorrelationID, func(r *http.Request) string {
		return RequestIDFromContext(r.Context())
	})
}

func idMiddleware(
	header string,
	store func(context.Context, string) context.Context,
	fallback func(*http.Request) string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if !acceptableID(id) {
				id = fallback(r)
			}
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(store(r.Context(), id)))
		})
	}
}

// acceptableID allows non-empty printable ASCII up to maxIDLength.
func acceptableID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for i := range len(id) {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
