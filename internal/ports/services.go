package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/chatbot-service/internal/domain"
)

// AuthService defines the service port for account operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type AuthService interface {
	// Register validates the credentials, hashes the password and stores the
	// user. Returns domain.ErrValidation for bad input and domain.ErrConflict
	// if the username already exists.
	Register(ctx context.Context, creds domain.Credentials) (*domain.User, error)

	// Login verifies the credentials. Returns domain.ErrUnauthorized for an
	// unknown username or a wrong password, without saying which.
	Login(ctx context.Context, creds domain.Credentials) (*domain.User, error)

	// ListUsers returns all registered users for the debug view.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// ChatService defines the service port for conversations with the agent.
type ChatService interface {
	// Respond answers one user message within the conversation identified by
	// sessionID. Returns domain.ErrValidation for empty input. Model failures
	// never surface as errors: the reply degrades to a fallback answer or an
	// apology.
	Respond(ctx context.Context, sessionID, input string) (string, error)

	// Forget drops the conversation memory of a session.
	Forget(sessionID string)
}

// Session is an authenticated browser session.
type Session struct {
	ID        string
	Username  string
	ExpiresAt time.Time
}

// SessionStore defines the port for server-side login sessions.
type SessionStore interface {
	// Create starts a session for username.
	Create(username string) (*Session, error)

	// Get returns a live session and extends its expiry.
	// Returns domain.ErrNotFound for unknown or expired sessions.
	Get(id string) (*Session, error)

	// Delete ends a session. Deleting an unknown session is not an error.
	Delete(id string)
}

// Clock returns the current time. Injected wherever behavior depends on it.
type Clock func() time.Time
