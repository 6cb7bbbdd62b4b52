package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/chatbot-service/internal/adapters/http/middleware"
)

// serveIDs runs a request through RequestID and CorrelationID and returns
// what the handler saw.
func serveIDs(t *testing.T, headers map[string]string) (reqID, corrID string, rec *httptest.ResponseRecorder) {
	t.Helper()

	handler := middleware.RequestID()(middleware.CorrelationID()(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			reqID = middleware.RequestIDFromContext(r.Context())
			corrID = middleware.CorrelationIDFromContext(r.Context())
		}),
	))

	req := httptest.NewRequest(http.MethodPost, "/chat", http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return reqID, corrID, rec
}

func TestIDs_GeneratedWhenAbsent(t *testing.T) {
	t.Parallel()

	reqID, corrID, rec := serveIDs(t, nil)

	_, err := uuid.Parse(reqID)
	require.NoError(t, err, "request ID should be a UUID")
	assert.Equal(t, reqID, corrID, "correlation ID defaults to the request ID")
	assert.Equal(t, reqID, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, corrID, rec.Header().Get("X-Correlation-ID"))
}

func TestIDs_IncomingHeadersReused(t *testing.T) {
	t.Parallel()

	reqID, corrID, rec := serveIDs(t, map[string]string{
		"X-Request-ID":     "req-123",
		"X-Correlation-ID": "corr-abc",
	})

	assert.Equal(t, "req-123", reqID)
	assert.Equal(t, "corr-abc", corrID)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "corr-abc", rec.Header().Get("X-Correlation-ID"))
}

func TestIDs_UnacceptableHeadersReplaced(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"oversized":   strings.Repeat("x", 500),
		"whitespace":  "two words",
		"non-ascii":   "café",
		"control chr": "id\x7f",
	}

	for name, incoming := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			reqID, corrID, _ := serveIDs(t, map[string]string{
				"X-Request-ID":     incoming,
				"X-Correlation-ID": incoming,
			})

			_, err := uuid.Parse(reqID)
			require.NoError(t, err, "request ID should have been regenerated")
			assert.Equal(t, reqID, corrID)
		})
	}
}

func TestRequestID_UniqueAcrossRequests(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 100 {
		id, _, _ := serveIDs(t, nil)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestIDsFromContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Empty(t, middleware.RequestIDFromContext(ctx))
	assert.Empty(t, middleware.CorrelationIDFromContext(ctx))

	ctx = middleware.WithRequestID(ctx, "r-1")
	ctx = middleware.WithCorrelationID(ctx, "c-1")
	assert.Equal(t, "r-1", middleware.RequestIDFromContext(ctx))
	assert.Equal(t, "c-1", middleware.CorrelationIDFromContext(ctx))
}
