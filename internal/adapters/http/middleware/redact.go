package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/chatbot-service/internal/platform/logging"
)

const redactedValue = "[REDACTED]"

// RedactHeaders converts headers into slog attributes for debug logging.
// Credential-bearing headers (see logging.SensitiveHeaders), including the
// session cookie, are replaced with "[REDACTED]". Multi-value headers are
// joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, redactedValue))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
	}
	return attrs
}
