package ports

import "context"

// HealthChecker reports whether one dependency of the service is usable.
// The user database and both outbound APIs implement it.
type HealthChecker interface {
	// Name labels the dependency in readiness output: "database", "openai"
	// or "wikipedia".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must give up
	// when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness probe.
type HealthRegistry interface {
	// Register adds checker, replacing any earlier one with the same name.
	Register(checker HealthChecker)

	// CheckAll runs every check and returns the outcome by name. A nil value
	// means healthy.
	CheckAll(ctx context.Context) map[string]error
}
