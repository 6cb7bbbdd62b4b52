package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders is the canonical set of HTTP header names (lowercase) that
// carry credentials and must be redacted before logging. This set is shared
// between the masq layer and the HTTP middleware's RedactHeaders utility so
// the two cannot silently drift apart.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
	"set-cookie":    true,
}

// sensitiveFields are attribute keys whose values are never logged: login
// form fields, stored hashes, session identifiers and the LLM API key.
var sensitiveFields = []string{
	"password",
	"password_hash",
	"secret",
	"token",
	"api_key",
	"session_id",
}

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// jwtPattern matches raw JWT strings (header.payload.signature). Requires at
// least 10 characters per segment to avoid false positives on short
// dot-separated strings like version numbers.
var jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

// openAIKeyPattern matches OpenAI-style secret keys ("sk-..." / "sk-proj-...").
var openAIKeyPattern = regexp.MustCompile(`sk-[a-zA-Z0-9_\-]{20,}`)

// bcryptHashPattern matches modular-crypt bcrypt hashes ($2a$10$...).
var bcryptHashPattern = regexp.MustCompile(`\$2[abxy]?\$\d{2}\$[./A-Za-z0-9]{53}`)

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. It redacts by field name for known sensitive fields
// and by regex for values that escape call-site redaction.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+5)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldPrefix("secret_"),

		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(openAIKeyPattern),
		masq.WithRegex(bcryptHashPattern),
	)

	return masq.New(opts...)
}
