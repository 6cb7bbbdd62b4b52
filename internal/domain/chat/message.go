// Package chat holds the conversation types shared by the agent and the chat
// service: messages, the sliding memory window and the agent step types
// produced by parsing model output.
package chat

// Role identifies the author of a Message.
type Role string

// Supported message roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the role name as sent to the completion API.
func (r Role) String() string {
	return string(r)
}

// Message is a single turn in a conversation.
type Message struct {
	Role    Role
	Content string
}

// SystemMessage returns a Message with RoleSystem.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage returns a Message with RoleUser.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage returns a Message with RoleAssistant.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}
