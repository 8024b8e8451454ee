package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceSpansEventTypes(t *testing.T) {
	s := openTestStore(t)
	events := s.Events()
	ctx := context.Background()

	if err := events.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "started"}); err != nil {
		t.Fatalf("append session event: %v", err)
	}
	if err := events.AppendNudgeEvent(ctx, NudgeEventData{SessionID: "s1", OfferID: "o1", Action: "offered"}); err != nil {
		t.Fatalf("append nudge event: %v", err)
	}
	if err := events.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "explanation", Success: true}); err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	se, err := s.Client().SessionEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query session event: %v", err)
	}
	ne, err := s.Client().NudgeEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query nudge event: %v", err)
	}
	le, err := s.Client().LLMRequestEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query llm request event: %v", err)
	}

	if !(se.Sequence < ne.Sequence && ne.Sequence < le.Sequence) {
		t.Errorf("sequences not strictly increasing across types: %d, %d, %d",
			se.Sequence, ne.Sequence, le.Sequence)
	}
}

func TestNudgeStats(t *testing.T) {
	s := openTestStore(t)
	events := s.Events()
	ctx := context.Background()

	appends := []NudgeEventData{
		{SessionID: "s1", StudentID: "alex", OfferID: "o1", Action: "offered"},
		{SessionID: "s1", StudentID: "alex", OfferID: "o1", Action: "dismissed"},
		{SessionID: "s1", StudentID: "alex", OfferID: "o2", Action: "offered"},
		{SessionID: "s1", StudentID: "alex", OfferID: "o2", Action: "accepted"},
		{SessionID: "s2", StudentID: "blair", OfferID: "o3", Action: "offered"},
	}
	for _, d := range appends {
		if err := events.AppendNudgeEvent(ctx, d); err != nil {
			t.Fatalf("append nudge event: %v", err)
		}
	}

	stats, err := events.NudgeStats(ctx, "alex")
	if err != nil {
		t.Fatalf("nudge stats: %v", err)
	}
	if stats.Offered != 2 || stats.Dismissed != 1 || stats.Accepted != 1 {
		t.Errorf("alex stats = %+v, want 2 offered, 1 dismissed, 1 accepted", stats)
	}

	all, err := events.NudgeStats(ctx, "")
	if err != nil {
		t.Fatalf("nudge stats (all): %v", err)
	}
	if all.Offered != 3 {
		t.Errorf("all offered = %d, want 3", all.Offered)
	}
}

func TestSessionCount(t *testing.T) {
	s := openTestStore(t)
	events := s.Events()
	ctx := context.Background()

	appends := []SessionEventData{
		{SessionID: "s1", StudentID: "alex", Action: "started"},
		{SessionID: "s1", StudentID: "alex", Action: "ended", DurationMs: 60_000},
		{SessionID: "s2", StudentID: "alex", Action: "started"},
		{SessionID: "s3", StudentID: "blair", Action: "started"},
	}
	for _, d := range appends {
		if err := events.AppendSessionEvent(ctx, d); err != nil {
			t.Fatalf("append session event: %v", err)
		}
	}

	n, err := events.SessionCount(ctx, "alex")
	if err != nil {
		t.Fatalf("session count: %v", err)
	}
	if n != 2 {
		t.Errorf("alex session count = %d, want 2", n)
	}

	n, err = events.SessionCount(ctx, "")
	if err != nil {
		t.Fatalf("session count (all): %v", err)
	}
	if n != 3 {
		t.Errorf("total session count = %d, want 3", n)
	}
}

func TestLLMUsageGroupsByProvider(t *testing.T) {
	s := openTestStore(t)
	events := s.Events()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m", Purpose: "explanation", OutputTokens: 100, LatencyMs: 500, Success: true},
		{Provider: "anthropic", Model: "m", Purpose: "reexplain", OutputTokens: 50, LatencyMs: 300, Success: false, ErrorMessage: "boom"},
		{Provider: "openai", Model: "m", Purpose: "explanation", OutputTokens: 20, LatencyMs: 100, Success: true},
	}
	for _, d := range appends {
		if err := events.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append llm request: %v", err)
		}
	}

	usage, err := events.LLMUsage(ctx)
	if err != nil {
		t.Fatalf("llm usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("got %d providers, want 2", len(usage))
	}
	if usage[0].Provider != "anthropic" {
		t.Errorf("first provider = %q, want anthropic (first seen)", usage[0].Provider)
	}
	if usage[0].Requests != 2 || usage[0].Failures != 1 || usage[0].OutputTokens != 150 {
		t.Errorf("anthropic usage = %+v, want 2 requests, 1 failure, 150 tokens", usage[0])
	}
}

func TestDocRoundTrip(t *testing.T) {
	s := openTestStore(t)
	docs := s.Docs()
	ctx := context.Background()

	// Missing doc.
	_, ok, err := docs.GetDoc(ctx, "alex", DocKindMemory)
	if err != nil {
		t.Fatalf("get missing doc: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for missing doc")
	}

	// Create.
	if err := docs.PutDoc(ctx, "alex", DocKindMemory, 1, []byte(`{"v":1}`)); err != nil {
		t.Fatalf("put doc: %v", err)
	}
	payload, ok, err := docs.GetDoc(ctx, "alex", DocKindMemory)
	if err != nil {
		t.Fatalf("get doc: %v", err)
	}
	if !ok || string(payload) != `{"v":1}` {
		t.Fatalf("got %q ok=%v, want {\"v\":1} ok=true", payload, ok)
	}

	// Upsert overwrites.
	if err := docs.PutDoc(ctx, "alex", DocKindMemory, 1, []byte(`{"v":2}`)); err != nil {
		t.Fatalf("put doc (update): %v", err)
	}
	payload, _, err = docs.GetDoc(ctx, "alex", DocKindMemory)
	if err != nil {
		t.Fatalf("get doc after update: %v", err)
	}
	if string(payload) != `{"v":2}` {
		t.Errorf("got %q, want {\"v\":2}", payload)
	}

	// Kinds are independent.
	if err := docs.PutDoc(ctx, "alex", DocKindPreferences, 1, []byte(`{"p":true}`)); err != nil {
		t.Fatalf("put preferences doc: %v", err)
	}
	payload, _, err = docs.GetDoc(ctx, "alex", DocKindMemory)
	if err != nil {
		t.Fatalf("get memory doc: %v", err)
	}
	if string(payload) != `{"v":2}` {
		t.Errorf("memory doc clobbered by preferences write: %q", payload)
	}

	// Delete removes all kinds.
	if err := docs.DeleteDocs(ctx, "alex"); err != nil {
		t.Fatalf("delete docs: %v", err)
	}
	_, ok, err = docs.GetDoc(ctx, "alex", DocKindPreferences)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if ok {
		t.Error("expected preferences doc deleted")
	}
}
