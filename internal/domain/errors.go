package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Error kinds shared by every layer. Adapters wrap them with context and
// callers classify with errors.Is; the HTTP layer maps each kind to a status.
var (
	// ErrNotFound: no such user, session or Wikipedia page.
	ErrNotFound = errors.New("not found")
	// ErrValidation: input rejected before any work was done.
	ErrValidation = errors.New("validation error")
	// ErrConflict: the username is already registered.
	ErrConflict = errors.New("conflict")
	// ErrForbidden: the caller is known but may not do this.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthorized: bad credentials, or no signed-in session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnavailable: an upstream API or the database could not serve the call.
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError carries per-field messages, keyed by field name. It
// matches ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		sep := "; "
		if i == 0 {
			sep = ": "
		}
		fmt.Fprintf(&b, "%s%s: %s", sep, field, e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
