package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen11/chatbot-service/internal/domain"
	"github.com/jsamuelsen11/chatbot-service/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

// AuthService implements ports.AuthService on top of the UserStore port.
// Passwords are stored as bcrypt hashes.
type AuthService struct {
	users  ports.UserStore
	cost   int
	logger *slog.Logger

	// dummyHash is compared against when the username is unknown so a failed
	// login takes as long whether or not the account exists.
	dummyHash []byte
}

// NewAuthService creates an AuthService. cost is the bcrypt work factor;
// values outside bcrypt's range fall back to bcrypt.DefaultCost.
func NewAuthService(users ports.UserStore, cost int, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
	return &AuthService{
		users:     users,
		cost:      cost,
		logger:    logger,
		dummyHash: dummy,
	}
}

// Register validates and stores a new user.
func (s *AuthService) Register(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	creds = creds.Normalize()
	s.logger.InfoContext(ctx, "registering user", slog.String("username", creds.Username))

	if err := creds.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, &domain.ValidationError{Fields: map[string]string{
				"password": "must be at most 72 bytes",
			}}
		}
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	created, err := s.users.CreateUser(ctx, &domain.User{
		Username:     creds.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			s.logger.InfoContext(ctx, "username already taken", slog.String("username", creds.Username))
			return nil, err
		}
		s.logger.ErrorContext(ctx, "failed to create user",
			slog.String("operation", "Register"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// Login checks the credentials against the stored hash.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	creds = creds.Normalize()

	user, err := s.users.GetUserByUsername(ctx, creds.Username)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to look up user",
				slog.String("operation", "Login"),
				slog.Any("error", err),
			)
			return nil, err
		}
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(creds.Password))
		s.logger.InfoContext(ctx, "login rejected", slog.String("username", creds.Username))
		return nil, domain.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		s.logger.InfoContext(ctx, "login rejected", slog.String("username", creds.Username))
		return nil, domain.ErrUnauthorized
	}

	s.logger.InfoContext(ctx, "user logged in", slog.String("username", user.Username))
	return user, nil
}

// ListUsers returns all registered users.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list users",
			slog.String("operation", "ListUsers"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return users, nil
}
