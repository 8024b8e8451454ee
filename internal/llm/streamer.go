package llm

import "context"

// Streamer is the core abstraction for the generation backend: an opaque
// producer of a cancellable sequence of text tokens.
type Streamer interface {
	// Stream opens a token stream for the request. The returned stream is
	// lazy, finite and non-restartable. Cancelling ctx terminates it; the
	// consumer sees context.Canceled from Next, distinct from completion
	// (io.EOF) and from backend failure (any other error).
	Stream(ctx context.Context, req Request) (TokenStream, error)

	// ModelID returns the model identifier this streamer is configured with.
	ModelID() string
}

// TokenStream yields generated text one token at a time.
type TokenStream interface {
	// Next returns the next non-empty token. Terminal errors:
	// io.EOF (completed), context.Canceled (cancelled), anything else
	// (backend failure). After a terminal error the stream is spent.
	Next() (string, error)

	// Close releases the underlying connection. Safe to call more than once.
	Close() error
}

// Request describes what to send to the generation backend.
type Request struct {
	// System is the system prompt. Sets the tutor's role and constraints.
	System string

	// Messages is the conversation history. For a fresh explanation this
	// contains one user message; resume prompts add assistant context.
	Messages []Message

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)
