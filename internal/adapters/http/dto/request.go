package dto

import (
	"net/http"
	"strings"

	"github.com/jsamuelsen11/chatbot-service/internal/domain"
)

// msgNoInput is the message the chat client shows for an empty prompt.
const msgNoInput = "No input provided"

// ChatRequest represents the JSON body of POST /chat.
type ChatRequest struct {
	Input string `json:"input"`
}

// Validate checks that the input carries at least one non-space character.
// Returns a *domain.ValidationError otherwise.
func (r *ChatRequest) Validate() error {
	if strings.TrimSpace(r.Input) == "" {
		return &domain.ValidationError{Fields: map[string]string{"input": msgNoInput}}
	}
	return nil
}

// CredentialsFromForm reads the username and password fields of a submitted
// login or registration form. The form must already be parsed.
func CredentialsFromForm(r *http.Request) domain.Credentials {
	return domain.Credentials{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
}
