package acl

import "fmt"

// breakerHealth maps a circuit breaker state to a health result.
//
// State mapping:
//   - "closed": downstream is operating normally; returns nil.
//   - "half-open": the breaker is probing recovery; returns a degraded error.
//   - "open": downstream is unavailable and requests are rejected.
//
// This reports downstream status, not service readiness. The service itself
// is always ready to handle requests (the chat falls back or apologizes when
// the model API is failing).
func breakerHealth(name, state string) error {
	switch state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", name)
	case "open":
		return fmt.Errorf("%s: failing (circuit breaker open)", name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %q", name, state)
	}
}
