package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxUsernameLength bounds the username accepted at registration.
const MaxUsernameLength = 64

// User is a registered account. PasswordHash holds a bcrypt hash and never
// leaves the service boundary.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Credentials is a username/password pair submitted by the login and
// registration forms.
type Credentials struct {
	Username string
	Password string
}

// Normalize trims surrounding whitespace from the username. The password is
// left untouched.
func (c Credentials) Normalize() Credentials {
	c.Username = strings.TrimSpace(c.Username)
	return c
}

// Validate checks that both fields are present and the username fits.
// Returns a *ValidationError on failure.
func (c Credentials) Validate() error {
	fields := make(map[string]string)

	username := strings.TrimSpace(c.Username)
	switch {
	case username == "":
		fields["username"] = "is required"
	case utf8.RuneCountInString(username) > MaxUsernameLength:
		fields["username"] = "must be at most 64 characters"
	}
	if c.Password == "" {
		fields["password"] = "is required"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
