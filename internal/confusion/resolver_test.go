package confusion

import (
	"testing"

	"github.com/stepwiselabs/stepwise/internal/steps"
)

func threeSteps() []steps.EquationStep {
	return []steps.EquationStep{
		{ID: "a", Index: 0, Equation: "2x + 3 = 7", Text: "Start with 2x + 3 = 7.", Type: steps.TypeTransform},
		{ID: "b", Index: 1, Equation: "2x = 4", Text: "Simplify to get 2x = 4.", Type: steps.TypeSimplify},
		{ID: "c", Index: 2, Equation: "x = 2", Text: "Therefore, x = 2.", Type: steps.TypeResult},
	}
}

func TestResolveStepRef(t *testing.T) {
	list := threeSteps()

	tests := []struct {
		text   string
		wantID string // "" means nil
	}{
		{"explain step 2", "b"},
		{"can you redo Step 1", "a"},
		{"the 3rd step confused me", "c"},
		{"the first step", "a"},
		{"go back to the last step", "c"},
		{"what was the previous step", "c"},
		{"why did you simplify there", "b"},
		{"how did you get that result", "c"},
		{"where does 2x = 4 come from", "b"},
		{"step 9 please", ""}, // out of range
		{"step 0", ""},
		{"tell me more", ""}, // no recognizable reference
	}

	for _, tt := range tests {
		got := ResolveStepRef(tt.text, list)
		switch {
		case tt.wantID == "" && got != nil:
			t.Errorf("ResolveStepRef(%q) = step %q, want nil", tt.text, got.ID)
		case tt.wantID != "" && got == nil:
			t.Errorf("ResolveStepRef(%q) = nil, want step %q", tt.text, tt.wantID)
		case tt.wantID != "" && got != nil && got.ID != tt.wantID:
			t.Errorf("ResolveStepRef(%q) = step %q, want %q", tt.text, got.ID, tt.wantID)
		}
	}
}

func TestResolveStepRef_NumericBeatsPositionalAndSemantic(t *testing.T) {
	list := threeSteps()

	// "step 1" must win over the "simplify" keyword.
	got := ResolveStepRef("why did you simplify in step 1", list)
	if got == nil || got.ID != "a" {
		t.Errorf("numeric reference should win, got %+v", got)
	}
}

func TestResolveStepRef_EmptyList(t *testing.T) {
	if got := ResolveStepRef("explain step 1", nil); got != nil {
		t.Errorf("empty list should resolve to nil, got %+v", got)
	}
}

func TestIsConfused(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"I don't understand this at all", true},
		{"sorry, I'm lost", true},
		{"Why did you do that?", true},
		{"WAIT WHAT", true},
		{"ok that makes sense", false},
		{"divide both sides by 2", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsConfused(tt.text); got != tt.want {
			t.Errorf("IsConfused(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
