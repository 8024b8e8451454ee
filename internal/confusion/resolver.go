package confusion

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/stepwiselabs/stepwise/internal/steps"
)

// Matching rules in precedence order. The first rule that applies wins.
var (
	// "step 3", "Step 12"
	numericRefRe = regexp.MustCompile(`(?i)\bstep\s+(\d+)\b`)

	// "3rd step", "1st step", "2nd step", "4th step"
	ordinalRefRe = regexp.MustCompile(`(?i)\b(\d+)(?:st|nd|rd|th)\s+step\b`)
)

// ResolveStepRef maps a free-text utterance to the step the student means,
// or nil when no rule matches. The caller owns the fallback chain
// (last active step, then last step overall, then none) — this function
// never guesses.
func ResolveStepRef(text string, list []steps.EquationStep) *steps.EquationStep {
	if len(list) == 0 {
		return nil
	}
	lower := strings.ToLower(text)

	// 1. Explicit numeric reference. Out-of-range numbers resolve to nothing
	// rather than clamping: the student is talking about a step that does
	// not exist.
	if n, ok := numericRef(text); ok {
		if n >= 1 && n <= len(list) {
			return &list[n-1]
		}
		return nil
	}

	// 2. Positional reference.
	if strings.Contains(lower, "last step") || strings.Contains(lower, "previous step") {
		return &list[len(list)-1]
	}
	if strings.Contains(lower, "first step") {
		return &list[0]
	}

	// 3. Semantic keyword match, scanning steps in order.
	for i := range list {
		s := &list[i]
		if strings.Contains(lower, "simplify") && s.Type == steps.TypeSimplify {
			return s
		}
		if strings.Contains(lower, "result") && s.Type == steps.TypeResult {
			return s
		}
		if s.Equation != "" && strings.Contains(lower, strings.ToLower(s.Equation)) {
			return s
		}
	}

	return nil
}

// numericRef extracts a 1-based step number from an explicit reference.
func numericRef(text string) (int, bool) {
	if m := numericRefRe.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		return n, err == nil
	}
	if m := ordinalRefRe.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		return n, err == nil
	}
	return 0, false
}
