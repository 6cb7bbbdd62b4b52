package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/chatbot-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/chatbot-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/chatbot-service/internal/domain"
	"github.com/jsamuelsen11/chatbot-service/internal/platform/logging"
	"github.com/jsamuelsen11/chatbot-service/internal/ports"
)

// Messages shown on the login and registration pages.
const (
	msgInvalidCredentials = "Invalid username or password"
	msgUsernameTaken      = "Username already exists"
	msgRegistered         = "Registration successful. Please log in."
	msgTryAgain           = "Something went wrong. Please try again."
	msgBadForm            = "The form could not be read."
)

// AuthHandler serves the browser pages: login, registration, the chat page
// and logout.
type AuthHandler struct {
	auth     ports.AuthService
	chat     ports.ChatService
	sessions ports.SessionStore
	cookie   middleware.SessionCookie
	pages    *Pages
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(
	auth ports.AuthService,
	chat ports.ChatService,
	sessions ports.SessionStore,
	cookie middleware.SessionCookie,
	pages *Pages,
) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		chat:     chat,
		sessions: sessions,
		cookie:   cookie,
		pages:    pages,
	}
}

// Index handles GET /.
func (h *AuthHandler) Index(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionFromContext(r.Context()) != nil {
		redirect(w, r, "/chat")
		return
	}
	redirect(w, r, "/login")
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := pageData{Title: "Log in"}
	if r.URL.Query().Get("registered") != "" {
		data.Notice = msgRegistered
	}
	h.pages.render(w, r, http.StatusOK, pageLogin, data)
}

// Login handles POST /login. On success the previous session, if any, is
// replaced by a fresh one.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	data := pageData{Title: "Log in"}
	if err := parseForm(w, r); err != nil {
		data.Error = msgBadForm
		h.pages.render(w, r, http.StatusBadRequest, pageLogin, data)
		return
	}

	creds := dto.CredentialsFromForm(r)
	data.Username = creds.Username

	user, err := h.auth.Login(r.Context(), creds)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrValidation):
		data.Error = msgInvalidCredentials
		h.pages.render(w, r, http.StatusUnauthorized, pageLogin, data)
		return
	default:
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "login failed", slog.Any("error", err))
		data.Error = msgTryAgain
		h.pages.render(w, r, http.StatusInternalServerError, pageLogin, data)
		return
	}

	h.endSession(r)

	sess, err := h.sessions.Create(user.Username)
	if err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "creating session", slog.Any("error", err))
		data.Error = msgTryAgain
		h.pages.render(w, r, http.StatusInternalServerError, pageLogin, data)
		return
	}

	h.cookie.Set(w, sess)
	redirect(w, r, "/chat")
}

// RegisterPage handles GET /register.
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.pages.render(w, r, http.StatusOK, pageRegister, pageData{Title: "Register"})
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	data := pageData{Title: "Register"}
	if err := parseForm(w, r); err != nil {
		data.Error = msgBadForm
		h.pages.render(w, r, http.StatusBadRequest, pageRegister, data)
		return
	}

	creds := dto.CredentialsFromForm(r)
	data.Username = creds.Username

	_, err := h.auth.Register(r.Context(), creds)
	switch {
	case err == nil:
		redirect(w, r, "/login?registered=1")
	case errors.Is(err, domain.ErrConflict):
		data.Error = msgUsernameTaken
		h.pages.render(w, r, http.StatusConflict, pageRegister, data)
	case errors.Is(err, domain.ErrValidation):
		data.Error = describeValidation(err)
		h.pages.render(w, r, http.StatusBadRequest, pageRegister, data)
	default:
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "registration failed", slog.Any("error", err))
		data.Error = msgTryAgain
		h.pages.render(w, r, http.StatusInternalServerError, pageRegister, data)
	}
}

// ChatPage handles GET /chat.
func (h *AuthHandler) ChatPage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		redirect(w, r, "/login")
		return
	}
	h.pages.render(w, r, http.StatusOK, pageChat, pageData{Title: "Chat", Username: sess.Username})
}

// Logout handles GET /logout. The session and its conversation memory are
// dropped.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.endSession(r)
	h.cookie.Clear(w)
	redirect(w, r, "/login")
}

func (h *AuthHandler) endSession(r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		return
	}
	h.sessions.Delete(sess.ID)
	h.chat.Forget(sess.ID)
}
