package llm

import "context"

type Message struct {
	Role    string
	Content string
}

type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Client is the generative backend boundary: prompt in, completion out.
// Any failure (transport, timeout, malformed response) surfaces as an
// error for the caller to map to fallback text.
type Client interface {
	Generate(ctx context.Context, messages []Message) (Response, error)
}
