package middleware_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/chatbot-service/internal/adapters/http/middleware"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func panicking(v any) http.Handler {
	return http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic(v) })
}

func TestRecovery_PassesThroughWithoutPanic(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"response":"hi"}`))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/chat", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"response":"hi"}`, rec.Body.String())
}

func TestRecovery_PanicBecomesJSON500(t *testing.T) {
	t.Parallel()

	values := map[string]any{
		"string": "agent exploded",
		"error":  errors.New("agent exploded"),
		"int":    42,
	}

	for name, v := range values {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			middleware.Recovery(discardLogger())(panicking(v)).
				ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/chat", http.NoBody))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "exploded")
		})
	}
}

func TestRecovery_LogsPanicWithStack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rec := httptest.NewRecorder()
	middleware.Recovery(testLogger(&buf))(panicking("tool registry is nil")).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/current_time", http.NoBody))

	out := buf.String()
	assert.Contains(t, out, "panic recovered")
	assert.Contains(t, out, "tool registry is nil")
	assert.Contains(t, out, "path=/current_time")
	assert.Contains(t, out, "goroutine", "stack trace missing")
}

func TestRecovery_LeavesCommittedResponseAlone(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusFound)
		panic("late panic")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logout", http.NoBody))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRecovery_RepanicsAbortHandler(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(discardLogger())(panicking(http.ErrAbortHandler))

	defer func() {
		v := recover()
		require.NotNil(t, v, "ErrAbortHandler should propagate")
		assert.Equal(t, http.ErrAbortHandler, v)
	}()
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/chat", http.NoBody))
}
