package tutor

import "strings"

// conceptKeywords maps problem-text keywords to concept identifiers used
// by the memory document and the personalization policy.
var conceptKeywords = []struct {
	keyword string
	concept string
}{
	{"fraction", "fractions"},
	{"/", "fractions"},
	{"quadratic", "quadratic-equations"},
	{"x^2", "quadratic-equations"},
	{"x²", "quadratic-equations"},
	{"square root", "radicals"},
	{"sqrt", "radicals"},
	{"inequality", "inequalities"},
	{"<", "inequalities"},
	{">", "inequalities"},
	{"system", "systems-of-equations"},
	{"percent", "percentages"},
	{"%", "percentages"},
	{"exponent", "exponents"},
	{"^", "exponents"},
}

// conceptsFor tags a problem statement with concept identifiers.
// Unrecognized problems default to linear-equations, the course's core.
func conceptsFor(text string) []string {
	lower := strings.ToLower(text)

	var out []string
	seen := make(map[string]bool)
	for _, ck := range conceptKeywords {
		if strings.Contains(lower, ck.keyword) && !seen[ck.concept] {
			seen[ck.concept] = true
			out = append(out, ck.concept)
		}
	}

	if len(out) == 0 {
		out = append(out, "linear-equations")
	}
	return out
}
