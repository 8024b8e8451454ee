package llm

import (
	"context"
	"fmt"

	"github.com/stepwiselabs/stepwise/internal/store"
)

// NewStreamer creates a Streamer from configuration.
// It returns the streamer wrapped with retry and logging middleware.
func NewStreamer(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Streamer, error) {
	var base Streamer
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicStreamer(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIStreamer(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiStreamer(ctx, cfg.Gemini)
	case "mock":
		return NewMockStreamer(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewStreamerFromEnv builds a Streamer from STEPWISE_* environment
// variables, falling back to discovery of standard API key variables.
func NewStreamerFromEnv(ctx context.Context, eventRepo store.EventRepo) (Streamer, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewStreamer(ctx, cfg, eventRepo)
}
