package llm

import "context"

// Message is a chat message in a provider-agnostic format.
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Choice is one candidate reply. Message is nil when the provider returned a
// choice without a message body.
type Choice struct {
	Message *Message
}

// Completion is the provider's reply to a chat request.
type Completion struct {
	Model   string
	Choices []Choice
}

// Provider defines the contract for any chat-completion backend. Only the
// messages passed in are sent upstream; providers keep no history.
type Provider interface {
	CreateChatCompletion(ctx context.Context, model string, messages []Message) (*Completion, error)
}
