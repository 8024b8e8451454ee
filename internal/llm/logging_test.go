package llm

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stepwiselabs/stepwise/internal/store"
)

// recordingRepo captures LLM request events. Only AppendLLMRequest matters
// here; the rest of the interface is inert.
type recordingRepo struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
}

func (r *recordingRepo) AppendLLMRequest(ctx context.Context, d store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, d)
	return nil
}

func (r *recordingRepo) AppendSessionEvent(ctx context.Context, d store.SessionEventData) error {
	return nil
}

func (r *recordingRepo) AppendNudgeEvent(ctx context.Context, d store.NudgeEventData) error {
	return nil
}

func (r *recordingRepo) AppendConfusionEvent(ctx context.Context, d store.ConfusionEventData) error {
	return nil
}

func (r *recordingRepo) SessionCount(ctx context.Context, studentID string) (int, error) {
	return 0, nil
}

func (r *recordingRepo) NudgeStats(ctx context.Context, studentID string) (store.NudgeStats, error) {
	return store.NudgeStats{}, nil
}

func (r *recordingRepo) LLMUsage(ctx context.Context) ([]store.ProviderUsage, error) {
	return nil, nil
}

func (r *recordingRepo) last(t *testing.T) store.LLMRequestEventData {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		t.Fatal("no event recorded")
	}
	return r.events[len(r.events)-1]
}

func TestLogging_CompletedStream(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockStreamer(MockScript{Tokens: []string{"x ", "= ", "2."}})
	s := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "explanation")
	stream, err := s.Stream(ctx, Request{
		System:   "be helpful",
		Messages: []Message{{Role: RoleUser, Content: "solve it"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	drain(t, stream)

	ev := repo.last(t)
	if !ev.Success {
		t.Error("completed stream recorded as failure")
	}
	if ev.Purpose != "explanation" {
		t.Errorf("purpose = %q, want explanation", ev.Purpose)
	}
	if ev.OutputTokens != 3 {
		t.Errorf("output tokens = %d, want 3", ev.OutputTokens)
	}
	if ev.ResponseBody != "x = 2." {
		t.Errorf("response body = %q, want accumulated text", ev.ResponseBody)
	}
	if !strings.Contains(ev.RequestBody, "be helpful") || !strings.Contains(ev.RequestBody, "solve it") {
		t.Errorf("request body %q missing prompt content", ev.RequestBody)
	}
}

func TestLogging_CancelledStreamIsNotAFailure(t *testing.T) {
	repo := &recordingRepo{}
	ctx, cancel := context.WithCancel(context.Background())
	mock := NewMockStreamer(MockScript{Tokens: []string{"a", "b", "c"}})
	s := WithLogging(mock, repo)

	stream, err := s.Stream(ctx, Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := stream.Next(); err != nil {
		t.Fatalf("first token: %v", err)
	}
	cancel()
	if _, err := stream.Next(); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}

	ev := repo.last(t)
	if !ev.Success {
		t.Error("cancellation recorded as failure")
	}
	if ev.ErrorMessage != "cancelled" {
		t.Errorf("error message = %q, want cancelled", ev.ErrorMessage)
	}
	if ev.OutputTokens != 1 {
		t.Errorf("output tokens = %d, want 1", ev.OutputTokens)
	}
}

func TestLogging_BrokenStreamIsAFailure(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockStreamer(MockScript{
		Tokens:    []string{"half"},
		StreamErr: &ErrStreamBroken{Err: errors.New("cut")},
	})
	s := WithLogging(mock, repo)

	stream, err := s.Stream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	drain(t, stream)

	ev := repo.last(t)
	if ev.Success {
		t.Error("broken stream recorded as success")
	}
	if ev.ResponseBody != "half" {
		t.Errorf("response body = %q, want partial text", ev.ResponseBody)
	}
}

func TestLogging_OpenFailureRecorded(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockStreamer(MockScript{OpenErr: &ErrProviderUnavailable{}})
	s := WithLogging(mock, repo)

	_, err := s.Stream(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected open error")
	}

	ev := repo.last(t)
	if ev.Success {
		t.Error("open failure recorded as success")
	}
}

func TestLogging_RecordsOnceOnCloseAfterEOF(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockStreamer(MockScript{Tokens: []string{"done."}})
	s := WithLogging(mock, repo)

	stream, err := s.Stream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	drain(t, stream)
	stream.Close()

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if len(repo.events) != 1 {
		t.Fatalf("got %d events, want exactly 1", len(repo.events))
	}
}
