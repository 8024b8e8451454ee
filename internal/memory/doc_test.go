package memory

import (
	"fmt"
	"testing"
)

func TestAppendEvidence_RingCap(t *testing.T) {
	d := NewDoc()
	for i := 0; i < MaxEvidenceEvents+10; i++ {
		d.AppendEvidence(EvidenceEvent{Kind: EvidenceNudgeOffered, AtMs: int64(i)})
	}

	if len(d.Evidence) != MaxEvidenceEvents {
		t.Fatalf("ring has %d entries, want %d", len(d.Evidence), MaxEvidenceEvents)
	}
	// Oldest dropped first: the first surviving event is #10.
	if d.Evidence[0].AtMs != 10 {
		t.Errorf("oldest surviving event AtMs = %d, want 10", d.Evidence[0].AtMs)
	}
}

func TestNudgeDismissStats(t *testing.T) {
	d := NewDoc()
	for i := 0; i < 4; i++ {
		d.AppendEvidence(EvidenceEvent{Kind: EvidenceNudgeOffered})
	}
	for i := 0; i < 3; i++ {
		d.AppendEvidence(EvidenceEvent{Kind: EvidenceNudgeDismissed})
	}

	dismissed, rate := d.NudgeDismissStats()
	if dismissed != 3 {
		t.Errorf("dismissed = %d, want 3", dismissed)
	}
	if rate != 0.75 {
		t.Errorf("rate = %v, want 0.75", rate)
	}
}

func TestRecordConceptAttempt(t *testing.T) {
	d := NewDoc()
	for i := 0; i < 5; i++ {
		d.RecordConceptAttempt("two-step-equations", false, int64(i))
	}

	cs := d.Concepts["two-step-equations"]
	if cs == nil {
		t.Fatal("missing concept stats")
	}
	if cs.TotalAttempts != 5 {
		t.Errorf("TotalAttempts = %d, want 5", cs.TotalAttempts)
	}
	if cs.DifficultyScore < 0.7 {
		t.Errorf("five straight misses should push difficulty above 0.7, got %v", cs.DifficultyScore)
	}

	for i := 0; i < 10; i++ {
		d.RecordConceptAttempt("two-step-equations", true, int64(5+i))
	}
	if cs.DifficultyScore > 0.3 {
		t.Errorf("a run of correct answers should pull difficulty down, got %v", cs.DifficultyScore)
	}
}

func TestPrune(t *testing.T) {
	now := int64(EstimateTTLMs * 2)
	d := NewDoc()
	d.Preferences["pace"] = PreferenceEstimate{Value: "slow", Confidence: 0.9, UpdatedAtMs: now - EstimateTTLMs - 1}
	d.Preferences["verbosity"] = PreferenceEstimate{Value: "detailed", Confidence: 0.9, UpdatedAtMs: now - 1000}
	d.Concepts["stale"] = &ConceptStats{ConceptID: "stale", LastSeenMs: now - ConceptInactivityMs - 1}
	d.Concepts["fresh"] = &ConceptStats{ConceptID: "fresh", LastSeenMs: now - 1000}
	d.Concepts["expired"] = &ConceptStats{ConceptID: "expired", LastSeenMs: now, ExpiresAtMs: now - 1}

	d.Prune(now)

	if _, ok := d.Preferences["pace"]; ok {
		t.Error("expired estimate survived pruning")
	}
	if _, ok := d.Preferences["verbosity"]; !ok {
		t.Error("fresh estimate was pruned")
	}
	if _, ok := d.Concepts["stale"]; ok {
		t.Error("inactive concept survived pruning")
	}
	if _, ok := d.Concepts["expired"]; ok {
		t.Error("explicitly expired concept survived pruning")
	}
	if _, ok := d.Concepts["fresh"]; !ok {
		t.Error("fresh concept was pruned")
	}
}

func TestLoadDoc_ResetsOnMismatch(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"garbage", "not json"},
		{"wrong version", `{"schemaVersion": 2}`},
		{"wrong shape", `{"schemaVersion": 1, "preferences": {"pace": "slow"}}`},
		{"missing version", `{"preferences": {}}`},
	}

	for _, tt := range tests {
		doc := LoadDoc([]byte(tt.raw))
		if doc == nil {
			t.Fatalf("%s: LoadDoc returned nil", tt.name)
		}
		if doc.SchemaVersion != SchemaVersion || len(doc.Preferences) != 0 {
			t.Errorf("%s: expected a fresh empty doc, got %+v", tt.name, doc)
		}
	}
}

func TestLoadDoc_ValidRoundTrip(t *testing.T) {
	raw := fmt.Sprintf(`{
		"schemaVersion": %d,
		"preferences": {"pace": {"value": "slow", "confidence": 0.8, "updatedAtMs": 123}},
		"updatedAtMs": 123
	}`, SchemaVersion)

	doc := LoadDoc([]byte(raw))
	est, ok := doc.Preferences["pace"]
	if !ok {
		t.Fatal("valid document was reset")
	}
	if est.Value != "slow" || est.Confidence != 0.8 {
		t.Errorf("estimate = %+v", est)
	}
}

func TestLoadPreferences(t *testing.T) {
	if p := LoadPreferences([]byte(`{"schemaVersion": 99}`)); p != nil {
		t.Errorf("version mismatch should yield nil, got %+v", p)
	}
	if p := LoadPreferences(nil); p != nil {
		t.Errorf("empty input should yield nil, got %+v", p)
	}

	p := LoadPreferences([]byte(`{"schemaVersion": 1, "pace": "fast", "updatedAtMs": 5}`))
	if p == nil || p.Pace == nil || *p.Pace != "fast" {
		t.Errorf("valid preferences failed to load: %+v", p)
	}
}
