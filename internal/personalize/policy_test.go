package personalize

import (
	"slices"
	"strings"
	"testing"

	"github.com/stepwiselabs/stepwise/internal/memory"
)

func strPtr(s string) *string { return &s }

func TestDecide_DisabledShortCircuits(t *testing.T) {
	// Memory that would otherwise change everything.
	mem := memory.NewDoc()
	mem.Preferences["pace"] = memory.PreferenceEstimate{Value: "fast", Confidence: 0.99, UpdatedAtMs: 0}
	mem.Concepts["hard"] = &memory.ConceptStats{ConceptID: "hard", TotalAttempts: 9, DifficultyScore: 0.9}
	for i := 0; i < 10; i++ {
		mem.AppendEvidence(memory.EvidenceEvent{Kind: memory.EvidenceNudgeOffered})
		mem.AppendEvidence(memory.EvidenceEvent{Kind: memory.EvidenceNudgeDismissed})
	}

	explicit := &memory.ExplicitPreferences{
		SchemaVersion:           memory.SchemaVersion,
		DisabledPersonalization: true,
		Pace:                    strPtr("fast"),
	}

	d := Decide(mem, explicit, &SessionContext{ConceptIDs: []string{"hard"}}, nil, 0)

	if d.Settings != DefaultSettings() {
		t.Errorf("settings = %+v, want exact defaults", d.Settings)
	}
	if d.Nudge != DefaultNudgePolicy() {
		t.Errorf("nudge = %+v, want default policy", d.Nudge)
	}
	if len(d.Sources) != 1 || d.Sources[0] != SourceExplicit {
		t.Errorf("sources = %v, want [explicit]", d.Sources)
	}
	if !slices.Contains(d.ReasonCodes, ReasonPersonalizationOff) {
		t.Errorf("reason codes = %v, missing %s", d.ReasonCodes, ReasonPersonalizationOff)
	}
	if d.Summary != disabledSummary {
		t.Errorf("summary = %q, want the fixed disabled sentence", d.Summary)
	}
}

func TestDecide_ExplicitBeatsInferred(t *testing.T) {
	mem := memory.NewDoc()
	mem.Preferences["pace"] = memory.PreferenceEstimate{Value: "slow", Confidence: 0.9, UpdatedAtMs: 0}

	explicit := &memory.ExplicitPreferences{
		SchemaVersion: memory.SchemaVersion,
		Pace:          strPtr("fast"),
	}

	d := Decide(mem, explicit, nil, nil, 0)
	if d.Settings.Pace != PaceFast {
		t.Errorf("pace = %q, want fast (explicit wins)", d.Settings.Pace)
	}
}

func TestDecide_InferredNeedsConfidenceAndFreshness(t *testing.T) {
	now := int64(memory.EstimateTTLMs * 2)

	tests := []struct {
		name string
		est  memory.PreferenceEstimate
		want Verbosity
	}{
		{"usable", memory.PreferenceEstimate{Value: "detailed", Confidence: 0.8, UpdatedAtMs: now - 1000}, VerbosityDetailed},
		{"low confidence", memory.PreferenceEstimate{Value: "detailed", Confidence: 0.5, UpdatedAtMs: now - 1000}, VerbosityBalanced},
		{"boundary confidence", memory.PreferenceEstimate{Value: "detailed", Confidence: 0.6, UpdatedAtMs: now - 1000}, VerbosityDetailed},
		{"stale", memory.PreferenceEstimate{Value: "detailed", Confidence: 0.9, UpdatedAtMs: now - memory.EstimateTTLMs - 1}, VerbosityBalanced},
	}

	for _, tt := range tests {
		mem := memory.NewDoc()
		mem.Preferences["verbosity"] = tt.est
		d := Decide(mem, nil, nil, nil, now)
		if d.Settings.Verbosity != tt.want {
			t.Errorf("%s: verbosity = %q, want %q", tt.name, d.Settings.Verbosity, tt.want)
		}
	}
}

func TestDecide_ConceptDifficultyOverride(t *testing.T) {
	mem := memory.NewDoc()
	mem.Concepts["two-step-equations"] = &memory.ConceptStats{
		ConceptID:       "two-step-equations",
		TotalAttempts:   5,
		DifficultyScore: 0.8,
	}

	d := Decide(mem, nil, &SessionContext{ConceptIDs: []string{"two-step-equations"}}, nil, 0)

	if d.Settings.Pace != PaceSlow {
		t.Errorf("pace = %q, want slow", d.Settings.Pace)
	}
	if d.Settings.Verbosity != VerbosityDetailed {
		t.Errorf("verbosity = %q, want detailed", d.Settings.Verbosity)
	}
	if !slices.Contains(d.ReasonCodes, ReasonConceptDifficultyHigh) {
		t.Errorf("reason codes = %v, missing %s", d.ReasonCodes, ReasonConceptDifficultyHigh)
	}
	if !strings.Contains(d.Summary, "two-step-equations") {
		t.Errorf("summary should name the concept, got %q", d.Summary)
	}
}

func TestDecide_ConceptOverrideNeverBeatsExplicit(t *testing.T) {
	mem := memory.NewDoc()
	mem.Concepts["hard"] = &memory.ConceptStats{ConceptID: "hard", TotalAttempts: 5, DifficultyScore: 0.9}

	explicit := &memory.ExplicitPreferences{
		SchemaVersion: memory.SchemaVersion,
		Pace:          strPtr("fast"),
	}

	d := Decide(mem, explicit, &SessionContext{ConceptIDs: []string{"hard"}}, nil, 0)
	if d.Settings.Pace != PaceFast {
		t.Errorf("pace = %q, explicit choice must survive the override", d.Settings.Pace)
	}
	// Verbosity had no explicit choice, so the override applies there.
	if d.Settings.Verbosity != VerbosityDetailed {
		t.Errorf("verbosity = %q, want detailed", d.Settings.Verbosity)
	}
}

func TestDecide_ConceptOverrideNeedsQualification(t *testing.T) {
	tests := []struct {
		name  string
		stats memory.ConceptStats
	}{
		{"too few attempts", memory.ConceptStats{ConceptID: "c", TotalAttempts: 2, DifficultyScore: 0.9}},
		{"too easy", memory.ConceptStats{ConceptID: "c", TotalAttempts: 10, DifficultyScore: 0.6}},
	}

	for _, tt := range tests {
		mem := memory.NewDoc()
		stats := tt.stats
		mem.Concepts["c"] = &stats
		d := Decide(mem, nil, &SessionContext{ConceptIDs: []string{"c"}}, nil, 0)
		if d.Settings.Pace != PaceSteady {
			t.Errorf("%s: pace = %q, want steady (no override)", tt.name, d.Settings.Pace)
		}
	}
}

func TestDecide_PicksHighestScoringConcept(t *testing.T) {
	mem := memory.NewDoc()
	mem.Concepts["a"] = &memory.ConceptStats{ConceptID: "a", TotalAttempts: 4, DifficultyScore: 0.72}
	mem.Concepts["b"] = &memory.ConceptStats{ConceptID: "b", TotalAttempts: 6, DifficultyScore: 0.91}

	d := Decide(mem, nil, &SessionContext{ConceptIDs: []string{"a", "b"}}, nil, 0)
	if !strings.Contains(d.Summary, "b") {
		t.Errorf("summary should name the hardest concept, got %q", d.Summary)
	}
}

func TestDecide_NudgeEscalationTiers(t *testing.T) {
	base := DefaultNudgePolicy()

	tests := []struct {
		name      string
		offered   int
		dismissed int
		wantSecs  int
		wantMs    int64
	}{
		{"no escalation", 4, 2, base.MinSecondsBetweenNudges, base.SuppressForStepMs},
		{"tier 1", 5, 3, base.MinSecondsBetweenNudges + 10, base.SuppressForStepMs + 5_000},
		{"tier 2", 6, 5, base.MinSecondsBetweenNudges + 20, base.SuppressForStepMs + 10_000},
		{"tier 2 wins on tie", 5, 5, base.MinSecondsBetweenNudges + 20, base.SuppressForStepMs + 10_000},
	}

	for _, tt := range tests {
		mem := memory.NewDoc()
		for i := 0; i < tt.offered; i++ {
			mem.AppendEvidence(memory.EvidenceEvent{Kind: memory.EvidenceNudgeOffered})
		}
		for i := 0; i < tt.dismissed; i++ {
			mem.AppendEvidence(memory.EvidenceEvent{Kind: memory.EvidenceNudgeDismissed})
		}

		d := Decide(mem, nil, nil, nil, 0)
		if d.Nudge.MinSecondsBetweenNudges != tt.wantSecs {
			t.Errorf("%s: MinSecondsBetweenNudges = %d, want %d", tt.name, d.Nudge.MinSecondsBetweenNudges, tt.wantSecs)
		}
		if d.Nudge.SuppressForStepMs != tt.wantMs {
			t.Errorf("%s: SuppressForStepMs = %d, want %d", tt.name, d.Nudge.SuppressForStepMs, tt.wantMs)
		}
	}
}

func TestDecide_EscalationsCombineByMaxNotSum(t *testing.T) {
	// Memory at tier 1 and session at tier 1: combined stays tier 1.
	mem := memory.NewDoc()
	for i := 0; i < 5; i++ {
		mem.AppendEvidence(memory.EvidenceEvent{Kind: memory.EvidenceNudgeOffered})
	}
	for i := 0; i < 3; i++ {
		mem.AppendEvidence(memory.EvidenceEvent{Kind: memory.EvidenceNudgeDismissed})
	}
	signals := &SessionSignals{NudgesOffered: 5, NudgesDismissed: 3}

	d := Decide(mem, nil, nil, signals, 0)
	want := DefaultNudgePolicy().MinSecondsBetweenNudges + 10
	if d.Nudge.MinSecondsBetweenNudges != want {
		t.Errorf("MinSecondsBetweenNudges = %d, want %d (max, not sum)", d.Nudge.MinSecondsBetweenNudges, want)
	}

	// Session tier 2 beats memory tier 1.
	signals = &SessionSignals{NudgesOffered: 6, NudgesDismissed: 5}
	d = Decide(mem, nil, nil, signals, 0)
	want = DefaultNudgePolicy().MinSecondsBetweenNudges + 20
	if d.Nudge.MinSecondsBetweenNudges != want {
		t.Errorf("MinSecondsBetweenNudges = %d, want %d (session tier wins)", d.Nudge.MinSecondsBetweenNudges, want)
	}
}

func TestDecide_NilInputsUseDefaults(t *testing.T) {
	d := Decide(nil, nil, nil, nil, 0)
	if d.Settings != DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", d.Settings)
	}
	if d.Sources[len(d.Sources)-1] != SourceDefault {
		t.Errorf("sources = %v, want default present", d.Sources)
	}
}
