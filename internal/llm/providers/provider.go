package providers

import "context"

// Message is one role-tagged entry in a completion exchange.
type Message struct {
	Role    string
	Content string
}

// Provider answers a completion exchange with the text of the first
// returned choice.
type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
	Name() string
}
