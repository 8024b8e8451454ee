package steps

import "testing"

// pushAll feeds text one chunk at a time and collects extracted steps.
func pushAll(e *Extractor, chunks []string) []EquationStep {
	var out []EquationStep
	for _, c := range chunks {
		if s := e.PushText(c); s != nil {
			out = append(out, *s)
		}
	}
	return out
}

func splitChars(s string) []string {
	chunks := make([]string, 0, len(s))
	for _, r := range s {
		chunks = append(chunks, string(r))
	}
	return chunks
}

func TestPushText_ExtractsStepAtSentenceBoundary(t *testing.T) {
	e := NewExtractor()

	if s := e.PushText("First, subtract 3 from both"); s != nil {
		t.Fatalf("no boundary yet, got step %+v", s)
	}
	if s := e.PushText(" sides."); s != nil {
		t.Fatalf("sentence has no equation, got step %+v", s)
	}

	step := e.PushText("2x = 4.")
	if step == nil {
		t.Fatal("expected a step at sentence boundary")
	}
	if step.Index != 0 {
		t.Errorf("Index = %d, want 0", step.Index)
	}
	if step.Equation != "2x = 4" {
		t.Errorf("Equation = %q, want %q", step.Equation, "2x = 4")
	}
	if step.Type != TypeTransform {
		t.Errorf("Type = %q, want %q", step.Type, TypeTransform)
	}
	if step.Text != "2x = 4." {
		t.Errorf("Text = %q, want %q", step.Text, "2x = 4.")
	}
	if step.ID == "" {
		t.Error("ID must not be empty")
	}
}

func TestPushText_ChunkBoundaryIndependence(t *testing.T) {
	const text = "Subtract 3: 2x = 4. Divide by 2: x = 2. Therefore, x = 2."

	whole := NewExtractor()
	charwise := NewExtractor()

	a := pushAll(whole, []string{text})
	b := pushAll(charwise, splitChars(text))

	// Whole-string delivery sees one boundary event, charwise sees three.
	// The final histories must agree on what was actually extractable
	// charwise being the finer delivery.
	if len(b) != 3 {
		t.Fatalf("charwise extracted %d steps, want 3", len(b))
	}
	if len(a) != 1 {
		// The whole string is a single push and a single boundary event.
		t.Fatalf("whole-string extracted %d steps, want 1 (at-most-one-per-push)", len(a))
	}
}

func TestPushText_SameStepsCharwiseVsSentencewise(t *testing.T) {
	sentences := []string{
		"Start with 2x + 3 = 7. ",
		"Subtract 3 from both sides: 2x = 4. ",
		"Therefore, x = 2.",
	}
	full := ""
	for _, s := range sentences {
		full += s
	}

	bySentence := NewExtractor()
	byChar := NewExtractor()

	a := pushAll(bySentence, sentences)
	b := pushAll(byChar, splitChars(full))

	if len(a) != len(b) {
		t.Fatalf("step counts differ: sentencewise %d, charwise %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Equation != b[i].Equation || a[i].Index != b[i].Index || a[i].Type != b[i].Type {
			t.Errorf("step %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestPushText_AtMostOneStepPerPush(t *testing.T) {
	e := NewExtractor()

	// Two full sentences in one delta: a single boundary event.
	step := e.PushText("2x = 4. x = 2.")
	if step == nil {
		t.Fatal("expected one step")
	}
	if got := len(e.History()); got != 1 {
		t.Errorf("history has %d steps, want 1", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		sentence string
		want     StepType
	}{
		{"Simplify the left side: 2x = 4.", TypeSimplify},
		{"Therefore, x = 2.", TypeResult},
		{"Divide both sides, so x = 2.", TypeResult},
		{"Subtract 3: 2x = 4.", TypeTransform},
	}

	for _, tt := range tests {
		e := NewExtractor()
		step := e.PushText(tt.sentence)
		if step == nil {
			t.Fatalf("no step from %q", tt.sentence)
		}
		if step.Type != tt.want {
			t.Errorf("classify(%q) = %q, want %q", tt.sentence, step.Type, tt.want)
		}
	}
}

func TestPushText_MarkdownEmphasisStripped(t *testing.T) {
	e := NewExtractor()
	step := e.PushText("Now **2x = 4**.")
	if step == nil {
		t.Fatal("expected a step")
	}
	if step.Equation != "2x = 4" {
		t.Errorf("Equation = %q, want %q", step.Equation, "2x = 4")
	}
}

func TestPushText_NoEquationYieldsNoStep(t *testing.T) {
	e := NewExtractor()
	if s := e.PushText("Let me explain what happens next."); s != nil {
		t.Errorf("expected nil step, got %+v", s)
	}
	// Buffer must have been cleared regardless.
	if s := e.PushText("2x = 4."); s == nil || s.Text != "2x = 4." {
		t.Errorf("stale buffer leaked into next sentence: %+v", s)
	}
}

func TestReset_ReproducesFreshExtractor(t *testing.T) {
	run := func(e *Extractor) []EquationStep {
		return pushAll(e, []string{"2x = 4. ", "Therefore, x = 2."})
	}

	used := NewExtractor()
	run(used)
	used.Reset()
	after := run(used)

	fresh := NewExtractor()
	want := run(fresh)

	if len(after) != len(want) {
		t.Fatalf("step counts differ after reset: %d vs %d", len(after), len(want))
	}
	for i := range after {
		if after[i].Index != want[i].Index || after[i].Equation != want[i].Equation {
			t.Errorf("step %d differs after reset: %+v vs %+v", i, after[i], want[i])
		}
	}
}

func TestResetBuffer_KeepsHistoryAndCounter(t *testing.T) {
	e := NewExtractor()
	e.PushText("2x = 4.")
	e.PushText("partial text that never finishes")

	e.ResetBuffer()

	if got := len(e.History()); got != 1 {
		t.Fatalf("history has %d steps after buffer reset, want 1", got)
	}
	step := e.PushText("Therefore, x = 2.")
	if step == nil {
		t.Fatal("expected a step after buffer reset")
	}
	if step.Index != 1 {
		t.Errorf("Index = %d, want 1 (counter survives buffer reset)", step.Index)
	}
	if step.Text != "Therefore, x = 2." {
		t.Errorf("stale partial leaked: Text = %q", step.Text)
	}
}
