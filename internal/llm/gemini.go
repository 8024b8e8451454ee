package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"

	"google.golang.org/genai"
)

// geminiModels maps friendly names to Gemini model IDs.
var geminiModels = map[string]string{
	"gemini-flash": "gemini-2.0-flash",
	"gemini-pro":   "gemini-2.0-pro",
}

// GeminiStreamer implements Streamer using the Google Gemini SDK.
type GeminiStreamer struct {
	client *genai.Client
	model  string
}

// NewGeminiStreamer creates a new Gemini streamer.
func NewGeminiStreamer(ctx context.Context, cfg GeminiConfig) (*GeminiStreamer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	model := resolveModel(cfg.Model, geminiModels)

	return &GeminiStreamer{
		client: client,
		model:  model,
	}, nil
}

func (p *GeminiStreamer) Stream(ctx context.Context, req Request) (TokenStream, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.MaxTokens),
	}

	if req.Temperature > 0 {
		temp := float32(req.Temperature)
		config.Temperature = &temp
	}

	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	contents := buildGeminiContents(req.Messages)

	// The SDK exposes streaming as a push iterator; Pull2 turns it into
	// the pull-based TokenStream the orchestrator consumes.
	seq := p.client.Models.GenerateContentStream(ctx, p.model, contents, config)
	next, stop := iter.Pull2(seq)

	return &geminiStream{ctx: ctx, next: next, stop: stop}, nil
}

func (p *GeminiStreamer) ModelID() string {
	return p.model
}

type geminiStream struct {
	ctx  context.Context
	next func() (*genai.GenerateContentResponse, error, bool)
	stop func()
}

func (s *geminiStream) Next() (string, error) {
	for {
		resp, err, ok := s.next()
		if !ok {
			if s.ctx.Err() != nil {
				return "", context.Canceled
			}
			return "", io.EOF
		}
		if err != nil {
			if s.ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return "", context.Canceled
			}
			return "", &ErrStreamBroken{Err: mapGeminiError(err)}
		}
		if token := resp.Text(); token != "" {
			return token, nil
		}
	}
}

func (s *geminiStream) Close() error {
	s.stop()
	return nil
}

func buildGeminiContents(msgs []Message) []*genai.Content {
	out := make([]*genai.Content, len(msgs))
	for i, m := range msgs {
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		out[i] = &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		}
	}
	return out
}

func mapGeminiError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return &ErrRateLimit{Err: err}
		case apiErr.Code >= 500:
			return &ErrProviderUnavailable{Err: err}
		}
	}
	return &ErrProviderUnavailable{Err: err}
}
