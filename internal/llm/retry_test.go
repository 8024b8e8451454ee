package llm

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

// drain consumes a stream to its terminal state.
func drain(t *testing.T, s TokenStream) (string, error) {
	t.Helper()
	var out string
	for {
		token, err := s.Next()
		if err != nil {
			return out, err
		}
		out += token
	}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockStreamer(MockScript{Tokens: []string{"ok"}})
	s := WithRetry(mock, retryConfig())

	stream, err := s.Stream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text, terminal := drain(t, stream)
	if !errors.Is(terminal, io.EOF) || text != "ok" {
		t.Fatalf("got %q / %v, want ok / EOF", text, terminal)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientOpenThenSuccess(t *testing.T) {
	mock := NewMockStreamer(
		MockScript{OpenErr: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockScript{Tokens: []string{"ok"}},
	)
	s := WithRetry(mock, retryConfig())

	stream, err := s.Stream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text, _ := drain(t, stream)
	if text != "ok" {
		t.Fatalf("got %q, want ok", text)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_AllOpenAttemptsFail(t *testing.T) {
	down := &ErrProviderUnavailable{Err: errors.New("down")}
	mock := NewMockStreamer(
		MockScript{OpenErr: down},
		MockScript{OpenErr: down},
		MockScript{OpenErr: down},
	)
	s := WithRetry(mock, retryConfig())

	_, err := s.Stream(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_MidStreamFailureIsNotRetried(t *testing.T) {
	// The first script fails mid-stream; retrying would replay tokens the
	// consumer already delivered.
	mock := NewMockStreamer(
		MockScript{Tokens: []string{"partial "}, StreamErr: &ErrStreamBroken{Err: errors.New("cut")}},
		MockScript{Tokens: []string{"never"}},
	)
	s := WithRetry(mock, retryConfig())

	stream, err := s.Stream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected open error: %v", err)
	}
	text, terminal := drain(t, stream)
	var broken *ErrStreamBroken
	if !errors.As(terminal, &broken) {
		t.Fatalf("terminal = %v, want ErrStreamBroken", terminal)
	}
	if text != "partial " {
		t.Fatalf("text = %q, want partial token only", text)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call (no mid-stream retry), got %d", mock.CallCount())
	}
}

func TestRetry_CancellationIsNotRetried(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := NewMockStreamer(MockScript{OpenErr: context.Canceled})
	s := WithRetry(mock, retryConfig())

	_, err := s.Stream(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_RespectsRetryAfter(t *testing.T) {
	mock := NewMockStreamer(
		MockScript{OpenErr: &ErrRateLimit{RetryAfter: 2 * time.Millisecond}},
		MockScript{Tokens: []string{"ok"}},
	)
	s := WithRetry(mock, retryConfig())

	start := time.Now()
	stream, err := s.Stream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 2*time.Millisecond {
		t.Errorf("retried after %v, want at least the RetryAfter hint", elapsed)
	}
	if text, _ := drain(t, stream); text != "ok" {
		t.Fatalf("got %q, want ok", text)
	}
}
