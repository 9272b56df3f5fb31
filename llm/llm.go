// Package llm provides a minimal abstraction over generative model
// providers: messages in, one blocking response out.
package llm

import "context"

// LLM is implemented by model providers.
type LLM interface {
	// Name of the provider.
	Name() string

	// Generate a single response. The call blocks until the provider
	// returns or ctx is done.
	Generate(ctx context.Context, opts ...Option) (*Response, error)
}

// Role of a message in a conversation.
type Role string

const (
	User      Role = "user"
	Assistant Role = "assistant"
)

func (r Role) String() string {
	return string(r)
}

// Message is a single text message in a conversation.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// NewUserTextMessage creates a user message containing the given text.
func NewUserTextMessage(text string) *Message {
	return &Message{Role: User, Text: text}
}
