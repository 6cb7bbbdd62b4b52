// Package openai implements the Anti-Corruption Layer translators for the
// chat completions API.
package openai

// MessageDTO matches a chat message in requests and responses.
type MessageDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequestDTO matches the POST /chat/completions request body.
type ChatCompletionRequestDTO struct {
	Model       string       `json:"model"`
	Messages    []MessageDTO `json:"messages"`
	Temperature float64      `json:"temperature"`
	Stop        []string     `json:"stop,omitempty"`
}

// ChatCompletionResponseDTO matches the POST /chat/completions response body.
type ChatCompletionResponseDTO struct {
	ID      string      `json:"id"`
	Model   string      `json:"model"`
	Choices []ChoiceDTO `json:"choices"`
	Usage   UsageDTO    `json:"usage"`
}

// ChoiceDTO is one generated completion.
type ChoiceDTO struct {
	Index        int        `json:"index"`
	Message      MessageDTO `json:"message"`
	FinishReason string     `json:"finish_reason"`
}

// UsageDTO reports token accounting for a completion.
type UsageDTO struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
