package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/chatbot-service/internal/domain"
	"github.com/jsamuelsen11/chatbot-service/internal/platform/logging"
)

// maxJSONBodyBytes bounds a chat request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// maxFormBytes bounds a login or registration form.
const maxFormBytes = 64 << 10

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}

// decodeJSONBody decodes a size-limited JSON body into dst.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// parseForm parses a size-limited urlencoded form body.
func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	return r.ParseForm()
}

// redirect sends a 302 to path.
func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusFound)
}

// describeValidation turns field failures into a sentence for a form page,
// e.g. "Password is required. Username must be at most 64 characters."
func describeValidation(err error) string {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return err.Error()
	}

	parts := make([]string, 0, len(verr.Fields))
	for _, field := range slices.Sorted(maps.Keys(verr.Fields)) {
		label := field
		if label != "" {
			label = strings.ToUpper(label[:1]) + label[1:]
		}
		parts = append(parts, label+" "+verr.Fields[field]+".")
	}
	return strings.Join(parts, " ")
}
