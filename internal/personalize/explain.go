package personalize

import (
	"fmt"
	"strings"

	"github.com/stepwiselabs/stepwise/internal/memory"
)

// disabledSummary is the single fixed sentence a disabled state collapses to.
const disabledSummary = "Personalization is turned off; using default teaching settings."

// buildSummary produces a short natural-language rationale from whichever
// rules actually fired. Concept-difficulty sentences take priority over
// generic preference sentences.
func buildSummary(picks []fieldPick, hardConcept *memory.ConceptStats, tier int) string {
	var sentences []string

	if hardConcept != nil {
		sentences = append(sentences, fmt.Sprintf(
			"Slowing down with extra detail because %s has been difficult recently.",
			hardConcept.ConceptID))
	}

	var explicitFields, inferredFields []string
	for _, p := range picks {
		switch p.source {
		case SourceExplicit:
			explicitFields = append(explicitFields, fmt.Sprintf("%s=%s", p.name, p.value))
		case SourceInferred:
			if hardConcept != nil && (p.name == "pace" || p.name == "verbosity") {
				continue // already covered by the concept sentence
			}
			inferredFields = append(inferredFields, fmt.Sprintf("%s=%s", p.name, p.value))
		}
	}
	if len(explicitFields) > 0 {
		sentences = append(sentences, fmt.Sprintf(
			"Using your chosen settings: %s.", strings.Join(explicitFields, ", ")))
	}
	if len(inferredFields) > 0 {
		sentences = append(sentences, fmt.Sprintf(
			"Adapted from your past sessions: %s.", strings.Join(inferredFields, ", ")))
	}

	if tier > 0 {
		sentences = append(sentences, "Offering hints less often since recent ones were dismissed.")
	}

	if len(sentences) == 0 {
		return "Using default teaching settings."
	}
	return strings.Join(sentences, " ")
}
