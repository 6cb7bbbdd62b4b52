package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/chatbot-service/internal/adapters/clients/acl/openai"
	"github.com/jsamuelsen11/chatbot-service/internal/domain"
	"github.com/jsamuelsen11/chatbot-service/internal/domain/chat"
	"github.com/jsamuelsen11/chatbot-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/chatbot-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.LLMClient     = (*LLMClient)(nil)
	_ ports.HealthChecker = (*LLMClient)(nil)
)

const chatCompletionsPath = "/chat/completions"

// LLMClient is the outbound adapter for an OpenAI-compatible chat completions
// API. It implements [ports.LLMClient].
//
// Authentication is not handled here: the [httpclient.Client] passed in is
// expected to carry the bearer token as a default header.
type LLMClient struct {
	req         *Requester
	model       string
	temperature float64
	logger      *slog.Logger
}

// NewLLMClient creates an LLMClient that sends requests through client.
// The client's BaseURL should point at the API root including the version
// segment (e.g. "https://api.openai.com/v1").
func NewLLMClient(client *httpclient.Client, model string, temperature float64, logger *slog.Logger) *LLMClient {
	return &LLMClient{
		req:         NewRequester(client, logger),
		model:       model,
		temperature: temperature,
		logger:      logger,
	}
}

// Chat posts the conversation to /chat/completions and returns the first
// choice. Returns [domain.ErrUnavailable] when the API answers without any
// choices.
func (c *LLMClient) Chat(ctx context.Context, messages []chat.Message, opts ports.ChatOptions) (string, error) {
	body := openai.ToChatCompletionRequest(c.model, c.temperature, messages, opts.Stop)

	var resp openai.ChatCompletionResponseDTO
	if err := c.req.Do(ctx, http.MethodPost, chatCompletionsPath, http.StatusOK, body, &resp); err != nil {
		return "", err
	}

	content, ok := openai.FirstChoiceContent(&resp)
	if !ok {
		return "", fmt.Errorf("completion %s returned no choices: %w", resp.ID, domain.ErrUnavailable)
	}

	c.logger.DebugContext(ctx, "chat completion",
		slog.String("model", resp.Model),
		slog.Int("prompt_tokens", resp.Usage.PromptTokens),
		slog.Int("completion_tokens", resp.Usage.CompletionTokens),
	)
	return content, nil
}

// Complete sends prompt as a single user message with no history.
func (c *LLMClient) Complete(ctx context.Context, prompt string) (string, error) {
	return c.Chat(ctx, []chat.Message{chat.UserMessage(prompt)}, ports.ChatOptions{})
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *LLMClient) Name() string {
	return "openai"
}

// HealthCheck reports the completion API's availability from the circuit
// breaker state; no network call is made.
func (c *LLMClient) HealthCheck(_ context.Context) error {
	return breakerHealth(c.Name(), c.req.CircuitBreakerState())
}
