package personalize

// Reason codes explaining why a decision came out the way it did.
// These are stable identifiers: they are persisted in memory documents and
// surfaced to the UI, so renaming one is a breaking change.
const (
	ReasonExplicitPreference     = "EXPLICIT_PREFERENCE"
	ReasonInferredPreference     = "INFERRED_PREFERENCE"
	ReasonConceptDifficultyHigh  = "CONCEPT_DIFFICULTY_HIGH"
	ReasonNudgeEscalationMemory  = "NUDGE_ESCALATION_MEMORY"
	ReasonNudgeEscalationSession = "NUDGE_ESCALATION_SESSION"
	ReasonPersonalizationOff     = "PERSONALIZATION_DISABLED"
)

// Decision sources, in the order they can win a field.
const (
	SourceExplicit = "explicit"
	SourceInferred = "inferred"
	SourceDefault  = "default"
)
