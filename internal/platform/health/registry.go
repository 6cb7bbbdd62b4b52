// Package health provides the registry behind the readiness probe. The
// service registers its user database and both outbound APIs; a probe checks
// them concurrently, each under its own deadline.
package health

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/chatbot-service/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single health check.
const DefaultCheckTimeout = 2 * time.Second

// Registry is a thread-safe implementation of [ports.HealthRegistry].
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout sets the per-check deadline. Non-positive values keep the
// default.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a health checker. A checker with the same name as an earlier
// one replaces it.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	for i, c := range r.checkers {
		if c.Name() == name {
			r.checkers[i] = checker
			return
		}
	}
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check in parallel and returns the results
// keyed by checker name. Nil values indicate healthy components. A check that
// outlives its deadline reports context.DeadlineExceeded.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		results = make(map[string]error, len(checkers))
		g       errgroup.Group
	)
	for _, c := range checkers {
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()

			err := c.HealthCheck(checkCtx)

			mu.Lock()
			results[c.Name()] = err
			mu.Unlock()
			// Failures are reported in results, never through the group.
			return nil
		})
	}
	_ = g.Wait()

	return results
}
