package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// openaiModels maps friendly names to OpenAI model IDs.
var openaiModels = map[string]string{
	"gpt-4o":      "gpt-4o",
	"gpt-4o-mini": "gpt-4o-mini",
}

// OpenAIStreamer implements Streamer using the OpenAI SDK.
// It also supports OpenAI-compatible APIs via BaseURL.
type OpenAIStreamer struct {
	client *openai.Client
	model  string
}

// NewOpenAIStreamer creates a new OpenAI streamer.
func NewOpenAIStreamer(cfg OpenAIConfig) (*OpenAIStreamer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	client := openai.NewClientWithConfig(config)
	model := resolveModel(cfg.Model, openaiModels)

	return &OpenAIStreamer{
		client: client,
		model:  model,
	}, nil
}

func (p *OpenAIStreamer) Stream(ctx context.Context, req Request) (TokenStream, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:               p.model,
		Messages:            buildOpenAIMessages(req),
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         float32(req.Temperature),
		Stream:              true,
	}

	stream, err := p.client.CreateChatCompletionStream(ctx, chatReq)
	if err != nil {
		return nil, mapOpenAIError(err)
	}

	return &openaiStream{ctx: ctx, stream: stream}, nil
}

func (p *OpenAIStreamer) ModelID() string {
	return p.model
}

type openaiStream struct {
	ctx    context.Context
	stream *openai.ChatCompletionStream
}

func (s *openaiStream) Next() (string, error) {
	for {
		resp, err := s.stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if s.ctx.Err() != nil {
					return "", context.Canceled
				}
				return "", io.EOF
			}
			if s.ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return "", context.Canceled
			}
			return "", &ErrStreamBroken{Err: mapOpenAIError(err)}
		}
		if len(resp.Choices) == 0 {
			continue
		}
		if token := resp.Choices[0].Delta.Content; token != "" {
			return token, nil
		}
	}
}

func (s *openaiStream) Close() error {
	return s.stream.Close()
}

func buildOpenAIMessages(req Request) []openai.ChatCompletionMessage {
	var messages []openai.ChatCompletionMessage

	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}

	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}

	return messages
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return &ErrRateLimit{Err: err}
		case apiErr.HTTPStatusCode >= 500:
			return &ErrProviderUnavailable{Err: err}
		}
	}
	return &ErrProviderUnavailable{Err: err}
}
