// Package session keeps authenticated browser sessions in memory. Sessions
// are identified by random UUIDs carried in a cookie and expire after a
// period of inactivity.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/chatbot-service/internal/domain"
	"github.com/jsamuelsen11/chatbot-service/internal/ports"
)

// Compile-time check that Store implements ports.SessionStore.
var _ ports.SessionStore = (*Store)(nil)

// Store is a concurrency-safe in-memory session store with sliding expiry:
// every successful Get pushes the expiry out by the configured lifetime.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*ports.Session
	lifetime time.Duration
	now      ports.Clock
	logger   *slog.Logger

	// onExpire is told about every session that expires, whether Sweep or
	// Get noticed it, so per-session state held elsewhere (conversation
	// memory) can be released too. Guarded by mu.
	onExpire func(id string)
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source. Used by tests.
func WithClock(now ports.Clock) Option {
	return func(s *Store) { s.now = now }
}

// WithExpiryHook registers fn to be called with the ID of every expired
// session the store drops. fn runs without the store lock held.
func WithExpiryHook(fn func(id string)) Option {
	return func(s *Store) { s.onExpire = fn }
}

// NewStore creates a Store whose sessions live for lifetime after last use.
func NewStore(lifetime time.Duration, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Store{
		sessions: make(map[string]*ports.Session),
		lifetime: lifetime,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts a new session for username.
func (s *Store) Create(username string) (*ports.Session, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	sess := &ports.Session{
		ID:        id.String(),
		Username:  username,
		ExpiresAt: s.now().Add(s.lifetime),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	out := *sess
	return &out, nil
}

// OnExpire replaces the expiry hook. It exists for callers that are built
// after the store and need its Alive method themselves.
func (s *Store) OnExpire(fn func(id string)) {
	s.mu.Lock()
	s.onExpire = fn
	s.mu.Unlock()
}

// Get returns a copy of a live session and refreshes its expiry.
// Expired sessions are removed on access and reported to the expiry hook.
func (s *Store) Get(id string) (*ports.Session, error) {
	now := s.now()

	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrNotFound
	}
	if !now.Before(sess.ExpiresAt) {
		delete(s.sessions, id)
		hook := s.onExpire
		s.mu.Unlock()
		if hook != nil {
			hook(id)
		}
		return nil, domain.ErrNotFound
	}

	sess.ExpiresAt = now.Add(s.lifetime)
	out := *sess
	s.mu.Unlock()
	return &out, nil
}

// Alive reports whether id names a stored, unexpired session. Unlike Get it
// does not extend the expiry.
func (s *Store) Alive(id string) bool {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return ok && now.Before(sess.ExpiresAt)
}

// Delete removes a session if present.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of stored sessions, including expired ones not yet
// swept.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes every session expired at now and returns how many were
// removed.
func (s *Store) Sweep(now time.Time) int {
	var expired []string

	s.mu.Lock()
	for id, sess := range s.sessions {
		if !now.Before(sess.ExpiresAt) {
			delete(s.sessions, id)
			expired = append(expired, id)
		}
	}
	hook := s.onExpire
	s.mu.Unlock()

	if hook != nil {
		for _, id := range expired {
			hook(id)
		}
	}
	return len(expired)
}

// RunJanitor sweeps expired sessions every interval until ctx is canceled.
// It blocks; run it in its own goroutine.
func (s *Store) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(s.now()); n > 0 {
				s.logger.DebugContext(ctx, "swept expired sessions", slog.Int("count", n))
			}
		}
	}
}
