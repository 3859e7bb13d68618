package llm

import "context"

// Message is one turn of a chat-completion conversation. Role is
// "system", "user" or "assistant".
type Message struct {
	Role    string
	Content string
}

// Response carries the assistant's text plus token accounting; the
// counters are informational and only ever logged.
type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Client abstracts a remote generation backend.
type Client interface {
	Generate(ctx context.Context, messages []Message) (Response, error)
}
