// Package memory holds the privacy-bounded evidence the tutor keeps about a
// student: preference estimates, per-concept difficulty stats and a bounded
// ring of evidence events. No raw transcript or audio is ever retained here,
// only derived scalars and events.
package memory

// SchemaVersion is the current persisted document version. Documents with a
// different version are reset to empty on load rather than trusted.
const SchemaVersion = 1

// MaxEvidenceEvents caps the evidence ring. Oldest entries drop first.
const MaxEvidenceEvents = 50

// EstimateTTLMs is how long an inferred preference estimate stays usable.
const EstimateTTLMs = 30 * 24 * 60 * 60 * 1000 // 30 days

// ConceptInactivityMs is how long concept stats survive without activity.
const ConceptInactivityMs = EstimateTTLMs

// Evidence event kinds.
const (
	EvidenceNudgeOffered    = "nudge_offered"
	EvidenceNudgeDismissed  = "nudge_dismissed"
	EvidenceNudgeAccepted   = "nudge_accepted"
	EvidenceConfusionSignal = "confusion_signal"
	EvidenceStepReexplained = "step_reexplained"
)

// PreferenceEstimate is an inferred, time-decaying belief about one setting.
type PreferenceEstimate struct {
	Value       string  `json:"value"`
	Confidence  float64 `json:"confidence"` // 0..1
	UpdatedAtMs int64   `json:"updatedAtMs"`
	Reason      string  `json:"reason,omitempty"` // reason code that produced it
}

// ConceptStats aggregates difficulty evidence for one concept.
type ConceptStats struct {
	ConceptID       string  `json:"conceptId"`
	TotalAttempts   int     `json:"totalAttempts"`
	CorrectAttempts int     `json:"correctAttempts"`
	DifficultyScore float64 `json:"difficultyScore"` // 0..1, higher is harder
	LastSeenMs      int64   `json:"lastSeenMs"`
	ExpiresAtMs     int64   `json:"expiresAtMs,omitempty"` // 0 = inactivity rule applies
}

// EvidenceEvent is one entry in the bounded evidence ring.
type EvidenceEvent struct {
	Kind      string `json:"kind"`
	StepID    string `json:"stepId,omitempty"`
	ConceptID string `json:"conceptId,omitempty"`
	AtMs      int64  `json:"atMs"`
	Reason    string `json:"reason,omitempty"`
}

// StudentMemoryDoc is the aggregated memory persisted per student.
type StudentMemoryDoc struct {
	SchemaVersion int                           `json:"schemaVersion"`
	Preferences   map[string]PreferenceEstimate `json:"preferences,omitempty"` // keyed by setting name
	Concepts      map[string]*ConceptStats      `json:"concepts,omitempty"`
	Evidence      []EvidenceEvent               `json:"evidence,omitempty"` // oldest first
	TopReasons    []string                      `json:"topReasons,omitempty"`
	UpdatedAtMs   int64                         `json:"updatedAtMs"`
}

// ExplicitPreferences are settings the student chose directly. A nil field
// means "no explicit choice". Explicit choices always beat inference.
type ExplicitPreferences struct {
	SchemaVersion           int     `json:"schemaVersion"`
	DisabledPersonalization bool    `json:"disabledPersonalization,omitempty"`
	Pace                    *string `json:"pace,omitempty"`
	Verbosity               *string `json:"verbosity,omitempty"`
	Modality                *string `json:"modality,omitempty"`
	TeachingStyle           *string `json:"teachingStyle,omitempty"`
	ExplainEveryStep        *bool   `json:"explainEveryStep,omitempty"`
	UpdatedAtMs             int64   `json:"updatedAtMs"`
}

// NewDoc creates an empty memory document at the current schema version.
func NewDoc() *StudentMemoryDoc {
	return &StudentMemoryDoc{
		SchemaVersion: SchemaVersion,
		Preferences:   make(map[string]PreferenceEstimate),
		Concepts:      make(map[string]*ConceptStats),
	}
}

// AppendEvidence adds an event to the ring, dropping the oldest entry when
// the cap is reached.
func (d *StudentMemoryDoc) AppendEvidence(ev EvidenceEvent) {
	d.Evidence = append(d.Evidence, ev)
	if len(d.Evidence) > MaxEvidenceEvents {
		d.Evidence = d.Evidence[len(d.Evidence)-MaxEvidenceEvents:]
	}
}

// NudgeDismissStats returns how many nudges were dismissed and the dismiss
// rate relative to nudges offered. Rate is 0 when nothing was offered.
func (d *StudentMemoryDoc) NudgeDismissStats() (dismissed int, rate float64) {
	offered := 0
	for _, ev := range d.Evidence {
		switch ev.Kind {
		case EvidenceNudgeOffered:
			offered++
		case EvidenceNudgeDismissed:
			dismissed++
		}
	}
	if offered == 0 {
		return dismissed, 0
	}
	return dismissed, float64(dismissed) / float64(offered)
}

// RecordConceptAttempt updates difficulty stats for a concept. The score is
// an exponential moving average of failure, so repeated mistakes push it up
// and successes pull it down.
func (d *StudentMemoryDoc) RecordConceptAttempt(conceptID string, correct bool, nowMs int64) {
	if d.Concepts == nil {
		d.Concepts = make(map[string]*ConceptStats)
	}
	cs := d.Concepts[conceptID]
	if cs == nil {
		cs = &ConceptStats{ConceptID: conceptID}
		d.Concepts[conceptID] = cs
	}
	cs.TotalAttempts++
	if correct {
		cs.CorrectAttempts++
	}
	outcome := 1.0
	if correct {
		outcome = 0.0
	}
	const alpha = 0.3
	cs.DifficultyScore = cs.DifficultyScore*(1-alpha) + outcome*alpha
	cs.LastSeenMs = nowMs
	d.UpdatedAtMs = nowMs
}

// Prune drops expired preference estimates and stale concept stats.
func (d *StudentMemoryDoc) Prune(nowMs int64) {
	for name, est := range d.Preferences {
		if nowMs-est.UpdatedAtMs > EstimateTTLMs {
			delete(d.Preferences, name)
		}
	}
	for id, cs := range d.Concepts {
		expired := cs.ExpiresAtMs > 0 && nowMs >= cs.ExpiresAtMs
		stale := cs.ExpiresAtMs == 0 && nowMs-cs.LastSeenMs > ConceptInactivityMs
		if expired || stale {
			delete(d.Concepts, id)
		}
	}
}
