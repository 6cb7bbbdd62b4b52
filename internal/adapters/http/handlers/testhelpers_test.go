package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/chatbot-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/chatbot-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/chatbot-service/internal/ports"
)

var testCookie = middleware.SessionCookie{Name: "session", Lifetime: 30 * time.Minute}

func testSession() *ports.Session {
	return &ports.Session{
		ID:        "5f0c6a1e-7c1d-4e55-9a57-3c8c5c2a1d10",
		Username:  "alice",
		ExpiresAt: time.Date(2026, 2, 12, 15, 34, 5, 0, time.UTC),
	}
}

func newPages(t *testing.T) *handlers.Pages {
	t.Helper()
	pages, err := handlers.NewPages()
	if err != nil {
		t.Fatalf("NewPages error: %v", err)
	}
	return pages
}

// withSession attaches sess to the request the way the Session middleware does.
func withSession(r *http.Request, sess *ports.Session) *http.Request {
	return r.WithContext(middleware.WithSession(r.Context(), sess))
}

func formRequest(target string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func requireRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	requireStatus(t, rec, http.StatusFound)
	if got := rec.Header().Get("Location"); got != location {
		t.Errorf("Location = %q, want %q", got, location)
	}
}
