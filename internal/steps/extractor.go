package steps

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// equationRe finds an equation-shaped substring: a run of alphanumerics
// and operators, an equals sign, and another run. Deliberately permissive —
// a sentence with no "=" simply yields no step.
var equationRe = regexp.MustCompile(`(?i)[0-9a-z()][0-9a-z+\-*/^(). ]*=[0-9a-z+\-*/^(). ]*[0-9a-z()]`)

// emphasisStripper removes markdown emphasis characters before matching.
var emphasisStripper = strings.NewReplacer("*", "", "_", "", "`", "", "~", "")

// Extractor turns an incrementally arriving token stream into finalized
// equation steps. Not safe for concurrent use; each session owns one.
type Extractor struct {
	buf     strings.Builder
	counter int
	history []EquationStep
}

// NewExtractor creates an empty Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// PushText accumulates delta and, when the buffer ends in sentence-terminal
// punctuation, attempts to extract one step from the buffered sentence.
// Returns nil when no boundary was reached or the sentence has no equation.
//
// At most one step is produced per call, even if the delta happens to carry
// more than one full sentence — generation backends deliver token chunks,
// not sentences, and downstream consumers depend on this boundary behavior.
func (e *Extractor) PushText(delta string) *EquationStep {
	e.buf.WriteString(delta)

	if !endsSentence(e.buf.String()) {
		return nil
	}

	sentence := strings.TrimSpace(e.buf.String())
	e.buf.Reset() // cleared whether or not extraction succeeds

	step := e.extract(sentence)
	if step != nil {
		e.history = append(e.history, *step)
	}
	return step
}

// History returns a snapshot of all steps extracted so far.
func (e *Extractor) History() []EquationStep {
	out := make([]EquationStep, len(e.history))
	copy(out, e.history)
	return out
}

// Buffered returns the accumulated partial sentence that has not yet
// reached a boundary. Captured into the resume context on interrupt.
func (e *Extractor) Buffered() string {
	return e.buf.String()
}

// ResetBuffer discards buffered partial text but keeps the step counter and
// history. Called on interrupt: completed steps remain valid, stale partial
// text must not leak into the next turn.
func (e *Extractor) ResetBuffer() {
	e.buf.Reset()
}

// Reset returns the Extractor to its initial state: buffer, counter and
// history. Called only on an explicit new-problem request.
func (e *Extractor) Reset() {
	e.buf.Reset()
	e.counter = 0
	e.history = nil
}

// endsSentence reports whether s ends with terminal punctuation,
// optionally followed by whitespace.
func endsSentence(s string) bool {
	trimmed := strings.TrimRight(s, " \t\r\n")
	if trimmed == "" {
		return false
	}
	switch trimmed[len(trimmed)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}

// extract attempts to derive a step from one complete sentence.
func (e *Extractor) extract(sentence string) *EquationStep {
	if sentence == "" {
		return nil
	}

	candidate := emphasisStripper.Replace(sentence)
	if i := strings.IndexByte(candidate, '\n'); i >= 0 {
		candidate = candidate[:i]
	}

	equation := equationRe.FindString(candidate)
	if equation == "" {
		return nil
	}

	step := &EquationStep{
		ID:       uuid.NewString(),
		Index:    e.counter,
		Equation: strings.TrimSpace(equation),
		Text:     sentence,
		Type:     classify(sentence),
	}
	e.counter++
	return step
}

// classify picks the step type from sentence keywords.
func classify(sentence string) StepType {
	lower := strings.ToLower(sentence)
	switch {
	case strings.Contains(lower, "simplify"):
		return TypeSimplify
	case strings.Contains(lower, "therefore"), strings.Contains(lower, "so"):
		return TypeResult
	default:
		return TypeTransform
	}
}
