package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/chatbot-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/chatbot-service/internal/domain"
	"github.com/jsamuelsen11/chatbot-service/internal/ports"
	"github.com/jsamuelsen11/chatbot-service/mocks"
)

var testCookie = middleware.SessionCookie{Name: "session", Lifetime: 30 * time.Minute}

func captureSession(got **ports.Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = middleware.SessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestSession_NoCookie(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockSessionStore(t)

	var got *ports.Session
	handler := middleware.Session(store, testCookie)(captureSession(&got))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chat", http.NoBody))

	assert.Nil(t, got)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSession_LiveSession(t *testing.T) {
	t.Parallel()

	sess := &ports.Session{ID: "abc", Username: "alice", ExpiresAt: time.Now().Add(time.Hour)}
	store := mocks.NewMockSessionStore(t)
	store.EXPECT().Get("abc").Return(sess, nil)

	var got *ports.Session
	handler := middleware.Session(store, testCookie)(captureSession(&got))

	req := httptest.NewRequest(http.MethodGet, "/chat", http.NoBody)
	req.AddCookie(&http.Cookie{Name: "session", Value: "abc"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)
}

func TestSession_LiveSessionRefreshesCookie(t *testing.T) {
	t.Parallel()

	sess := &ports.Session{ID: "abc", Username: "alice", ExpiresAt: time.Now().Add(30 * time.Minute)}
	store := mocks.NewMockSessionStore(t)
	store.EXPECT().Get("abc").Return(sess, nil)

	var got *ports.Session
	handler := middleware.Session(store, testCookie)(captureSession(&got))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chat", http.NoBody)
	req.AddCookie(&http.Cookie{Name: "session", Value: "abc"})
	handler.ServeHTTP(rec, req)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.Equal(t, "abc", cookies[0].Value)
	assert.Equal(t, int((30 * time.Minute).Seconds()), cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSession_HandlerCookieWins(t *testing.T) {
	t.Parallel()

	sess := &ports.Session{ID: "abc", Username: "alice", ExpiresAt: time.Now().Add(30 * time.Minute)}
	store := mocks.NewMockSessionStore(t)
	store.EXPECT().Get("abc").Return(sess, nil)

	logout := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		testCookie.Clear(w)
		w.WriteHeader(http.StatusFound)
	})
	handler := middleware.Session(store, testCookie)(logout)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/logout", http.NoBody)
	req.AddCookie(&http.Cookie{Name: "session", Value: "abc"})
	handler.ServeHTTP(rec, req)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Negative(t, cookies[len(cookies)-1].MaxAge, "last Set-Cookie must clear the session")
}

func TestSession_StaleCookieCleared(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockSessionStore(t)
	store.EXPECT().Get("gone").Return(nil, domain.ErrNotFound)

	var got *ports.Session
	handler := middleware.Session(store, testCookie)(captureSession(&got))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chat", http.NoBody)
	req.AddCookie(&http.Cookie{Name: "session", Value: "gone"})
	handler.ServeHTTP(rec, req)

	assert.Nil(t, got)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestSessionCookie_Set(t *testing.T) {
	t.Parallel()

	cookie := middleware.SessionCookie{Name: "sid", Secure: true, Lifetime: 30 * time.Minute}

	rec := httptest.NewRecorder()
	cookie.Set(rec, &ports.Session{ID: "abc"})

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "sid", c.Name)
	assert.Equal(t, "abc", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 1800, c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
}

func TestSessionFromContext_Anonymous(t *testing.T) {
	t.Parallel()

	assert.Nil(t, middleware.SessionFromContext(t.Context()))
}
