package ports

import (
	"context"

	"github.com/jsamuelsen11/chatbot-service/internal/domain"
)

// UserStore defines the storage port for registered users.
// Implemented by the SQLite adapter; called by the auth service.
type UserStore interface {
	// CreateUser inserts a user and returns it with ID and CreatedAt set.
	// Returns domain.ErrConflict if the username is taken.
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)

	// GetUserByUsername returns the user with the given username.
	// Returns domain.ErrNotFound if no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers returns every user ordered by ID.
	ListUsers(ctx context.Context) ([]domain.User, error)
}
