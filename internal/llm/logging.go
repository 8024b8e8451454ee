package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/stepwiselabs/stepwise/internal/store"
)

// LoggingStreamer is a decorator that records every generation call as an
// event once its stream terminates.
type LoggingStreamer struct {
	inner     Streamer
	eventRepo store.EventRepo
}

// WithLogging wraps a Streamer with event logging.
func WithLogging(s Streamer, repo store.EventRepo) Streamer {
	return &LoggingStreamer{inner: s, eventRepo: repo}
}

func (l *LoggingStreamer) Stream(ctx context.Context, req Request) (TokenStream, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	stream, err := l.inner.Stream(ctx, req)
	if err != nil {
		l.record(ctx, store.LLMRequestEventData{
			Provider:     l.inner.ModelID(),
			Model:        l.inner.ModelID(),
			Purpose:      purpose,
			LatencyMs:    time.Since(start).Milliseconds(),
			Success:      false,
			RequestBody:  serializeRequest(req),
			ErrorMessage: err.Error(),
		})
		return nil, err
	}

	return &loggingStream{
		inner:   stream,
		logger:  l,
		ctx:     ctx,
		start:   start,
		purpose: purpose,
		request: serializeRequest(req),
	}, nil
}

func (l *LoggingStreamer) ModelID() string {
	return l.inner.ModelID()
}

// record appends the event but never fails the request over a logging error.
func (l *LoggingStreamer) record(ctx context.Context, data store.LLMRequestEventData) {
	if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}
}

// loggingStream accumulates streamed text and emits one event when the
// stream reaches a terminal state.
type loggingStream struct {
	inner   TokenStream
	logger  *LoggingStreamer
	ctx     context.Context
	start   time.Time
	purpose string
	request string

	text   strings.Builder
	tokens int
	logged bool
}

func (s *loggingStream) Next() (string, error) {
	token, err := s.inner.Next()
	if err == nil {
		s.text.WriteString(token)
		s.tokens++
		return token, nil
	}

	s.finish(err)
	return "", err
}

func (s *loggingStream) Close() error {
	s.finish(nil)
	return s.inner.Close()
}

func (s *loggingStream) finish(terminal error) {
	if s.logged {
		return
	}
	s.logged = true

	data := store.LLMRequestEventData{
		Provider:     s.logger.inner.ModelID(),
		Model:        s.logger.inner.ModelID(),
		Purpose:      s.purpose,
		OutputTokens: s.tokens,
		LatencyMs:    time.Since(s.start).Milliseconds(),
		RequestBody:  s.request,
		ResponseBody: s.text.String(),
	}

	switch {
	case terminal == nil, errors.Is(terminal, io.EOF):
		data.Success = true
	case errors.Is(terminal, context.Canceled):
		// Cancellation is expected, not a failure.
		data.Success = true
		data.ErrorMessage = "cancelled"
	default:
		data.ErrorMessage = terminal.Error()
	}

	// Use a background context: the turn's context is often already
	// cancelled when we get here.
	s.logger.record(context.WithoutCancel(s.ctx), data)
}

// serializeRequest builds a readable representation of the request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	return b.String()
}
