package store

import (
	"context"
	"time"
)

// LLMRequestEventData captures the data for a single streamed LLM call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID     string
	StudentID     string
	Action        string // started, ended, reset
	StepsEmitted  int
	Interruptions int
	NudgesOffered int
	DurationMs    int64
}

// NudgeEventData captures one step of a nudge offer's lifecycle.
type NudgeEventData struct {
	SessionID string
	StudentID string
	OfferID   string
	StepID    string
	Source    string
	Reason    string
	Severity  float64
	Action    string // offered, accepted, dismissed, expired
}

// ConfusionEventData captures a detected confusion signal and its handling.
type ConfusionEventData struct {
	SessionID      string
	StudentID      string
	Source         string
	Reason         string
	Severity       float64
	StepIDHint     string
	ResolvedStepID string
	Action         string // nudge_offered, suppressed, ignored
}

// NudgeStats aggregates nudge outcomes for a student.
type NudgeStats struct {
	Offered   int
	Accepted  int
	Dismissed int
}

// ProviderUsage aggregates LLM usage for one provider.
type ProviderUsage struct {
	Provider     string
	Requests     int
	Failures     int
	OutputTokens int
	TotalLatency time.Duration
}

// EventRepo provides append and aggregate access to domain events.
type EventRepo interface {
	// AppendLLMRequest records a streamed LLM call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendNudgeEvent records a nudge offer or response.
	AppendNudgeEvent(ctx context.Context, data NudgeEventData) error

	// AppendConfusionEvent records a confusion signal and its handling.
	AppendConfusionEvent(ctx context.Context, data ConfusionEventData) error

	// SessionCount returns the number of sessions started for a student.
	// Empty studentID counts across all students.
	SessionCount(ctx context.Context, studentID string) (int, error)

	// NudgeStats aggregates nudge outcomes for a student.
	// Empty studentID aggregates across all students.
	NudgeStats(ctx context.Context, studentID string) (NudgeStats, error)

	// LLMUsage aggregates LLM call stats grouped by provider.
	LLMUsage(ctx context.Context) ([]ProviderUsage, error)
}

// Document kinds stored in DocRepo.
const (
	DocKindMemory      = "memory"
	DocKindPreferences = "preferences"
)

// DocRepo stores versioned JSON documents keyed by student and kind.
// Payload validation is the caller's concern; the repo stores bytes.
type DocRepo interface {
	// GetDoc returns the payload for (studentID, kind), or ok=false if
	// no document exists.
	GetDoc(ctx context.Context, studentID, kind string) (payload []byte, ok bool, err error)

	// PutDoc upserts the payload for (studentID, kind).
	PutDoc(ctx context.Context, studentID, kind string, schemaVersion int, payload []byte) error

	// DeleteDocs removes all documents for a student.
	DeleteDocs(ctx context.Context, studentID string) error
}
