package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/chatbot-service/internal/domain"
)

// ErrMethodNotAllowed marks requests for a known path with the wrong method.
var ErrMethodNotAllowed = errors.New("method not allowed")

// Problem is an RFC 9457 problem details body. Routing failures and other
// errors outside the chat API are reported this way.
type Problem struct {
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Status   int            `json:"status"`
	Detail   string         `json:"detail,omitempty"`
	Instance string         `json:"instance,omitempty"`
	Errors   []FieldProblem `json:"errors,omitempty"`
}

// FieldProblem is one invalid input field.
type FieldProblem struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// MessageError is the flat {"error": "..."} body the browser chat client
// understands. The JSON chat endpoints answer with it instead of problem+json.
type MessageError struct {
	Error string `json:"error"`
}

// NewProblem describes err for the request r.
func NewProblem(r *http.Request, err error) Problem {
	status := StatusFor(err)
	p := Problem{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.URL.Path,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for field, msg := range verr.Fields {
			p.Errors = append(p.Errors, FieldProblem{Location: "body." + field, Message: msg})
		}
		slices.SortFunc(p.Errors, func(a, b FieldProblem) int {
			return strings.Compare(a.Location, b.Location)
		})
	}
	return p
}

// WriteProblem sends err as application/problem+json.
func WriteProblem(w http.ResponseWriter, r *http.Request, err error) {
	p := NewProblem(r, err)
	encode(w, r, p.Status, "application/problem+json", p)
}

// WriteMessageError sends {"error": msg} with the given status.
func WriteMessageError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	encode(w, r, status, "application/json", MessageError{Error: msg})
}

func encode(w http.ResponseWriter, r *http.Request, status int, contentType string, body any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response", slog.Any("error", err))
	}
}

// StatusFor maps domain sentinel errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
