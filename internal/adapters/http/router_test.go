package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/chatbot-service/internal/adapters/http"
	"github.com/jsamuelsen11/chatbot-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/chatbot-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/chatbot-service/internal/ports"
	"github.com/jsamuelsen11/chatbot-service/mocks"
)

type routerDeps struct {
	auth     *mocks.MockAuthService
	chat     *mocks.MockChatService
	sessions *mocks.MockSessionStore
	clock    *mocks.MockTool
	registry *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, viewDB bool, mws ...func(http.Handler) http.Handler) (http.Handler, routerDeps) {
	t.Helper()

	deps := routerDeps{
		auth:     mocks.NewMockAuthService(t),
		chat:     mocks.NewMockChatService(t),
		sessions: mocks.NewMockSessionStore(t),
		clock:    mocks.NewMockTool(t),
		registry: mocks.NewMockHealthRegistry(t),
	}

	pages, err := handlers.NewPages()
	require.NoError(t, err)

	cookie := middleware.SessionCookie{Name: "session", Lifetime: 30 * time.Minute}
	var debug *handlers.DebugHandler
	if viewDB {
		debug = handlers.NewDebugHandler(deps.auth)
	}

	router := adapthttp.NewRouter(
		handlers.NewAuthHandler(deps.auth, deps.chat, deps.sessions, cookie, pages),
		handlers.NewChatHandler(deps.chat, deps.clock),
		debug,
		handlers.NewHealthHandler(deps.registry),
		mws...,
	)
	return router, deps
}

func registeredRoutes(t *testing.T, router http.Handler) map[string]bool {
	t.Helper()

	chiRouter, ok := router.(*chi.Mux)
	require.True(t, ok, "router is not *chi.Mux")

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	require.NoError(t, err)
	return registered
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, true)
	registered := registeredRoutes(t, router)

	for _, route := range []string{
		"GET /health/live",
		"GET /health/ready",
		"GET /",
		"GET /login",
		"POST /login",
		"GET /register",
		"POST /register",
		"GET /chat",
		"POST /chat",
		"GET /logout",
		"GET /current_time",
		"GET /view_db",
	} {
		assert.True(t, registered[route], "route %s not registered", route)
	}
}

func TestRouter_ViewDBDisabled(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, false)
	assert.False(t, registeredRoutes(t, router)["GET /view_db"])

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/view_db", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router, deps := newTestRouter(t, false, testMW)
	deps.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.True(t, called, "middleware was not called")
}

func TestRouter_ChatRequiresSession(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, false)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/chat", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestRouter_SessionCookieReachesChat(t *testing.T) {
	t.Parallel()

	router, deps := newTestRouter(t, false)

	// Put the session loader in front, as the server does.
	cookie := middleware.SessionCookie{Name: "session", Lifetime: 30 * time.Minute}
	withSessions := middleware.Session(deps.sessions, cookie)(router)

	sess := testSessionForRouter()
	deps.sessions.EXPECT().Get(sess.ID).Return(sess, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: sess.ID})
	withSessions.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), sess.Username)
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, false)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, false)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/chat", nil))

	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func testSessionForRouter() *ports.Session {
	return &ports.Session{ID: "0b7c1f7e-4f55-4c1e-9a57-3c8c5c2a1d10", Username: "alice"}
}
