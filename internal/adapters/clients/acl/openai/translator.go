package openai

import (
	"github.com/jsamuelsen11/chatbot-service/internal/domain/chat"
)

// ToMessageDTOs converts domain messages to the wire format.
func ToMessageDTOs(msgs []chat.Message) []MessageDTO {
	out := make([]MessageDTO, len(msgs))
	for i, m := range msgs {
		out[i] = MessageDTO{Role: m.Role.String(), Content: m.Content}
	}
	return out
}

// ToChatCompletionRequest builds a request body. Stop sequences are omitted
// from the payload when empty.
func ToChatCompletionRequest(model string, temperature float64, msgs []chat.Message, stop []string) ChatCompletionRequestDTO {
	req := ChatCompletionRequestDTO{
		Model:       model,
		Messages:    ToMessageDTOs(msgs),
		Temperature: temperature,
	}
	if len(stop) > 0 {
		req.Stop = stop
	}
	return req
}

// FirstChoiceContent returns the text of the first choice. ok is false when
// the response has no choices.
func FirstChoiceContent(resp *ChatCompletionResponseDTO) (content string, ok bool) {
	if len(resp.Choices) == 0 {
		return "", false
	}
	return resp.Choices[0].Message.Content, true
}
