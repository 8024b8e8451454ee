// Package personalize merges default settings, explicit user preferences,
// inferred preferences and live session signals into one explainable
// teaching decision.
package personalize

// Pace controls how quickly the tutor moves through an explanation.
type Pace string

const (
	PaceSlow   Pace = "slow"
	PaceSteady Pace = "steady"
	PaceFast   Pace = "fast"
)

// Verbosity controls how much the tutor says per step.
type Verbosity string

const (
	VerbosityConcise  Verbosity = "concise"
	VerbosityBalanced Verbosity = "balanced"
	VerbosityDetailed Verbosity = "detailed"
)

// Modality is the preferred explanation channel.
type Modality string

const (
	ModalityVisual Modality = "visual"
	ModalityVerbal Modality = "verbal"
	ModalityMixed  Modality = "mixed"
)

// TeachingStyle is the overall tutoring approach.
type TeachingStyle string

const (
	StyleGuided   TeachingStyle = "guided"
	StyleSocratic TeachingStyle = "socratic"
	StyleVisual   TeachingStyle = "visual"
	StyleConcise  TeachingStyle = "concise"
)

// Settings are the per-session teaching parameters.
type Settings struct {
	Pace             Pace          `json:"pace"`
	Verbosity        Verbosity     `json:"verbosity"`
	Modality         Modality      `json:"modality"`
	TeachingStyle    TeachingStyle `json:"teachingStyle"`
	ExplainEveryStep bool          `json:"explainEveryStep"`
}

// DefaultSettings are the documented defaults used when neither an explicit
// preference nor a usable inferred estimate exists.
func DefaultSettings() Settings {
	return Settings{
		Pace:             PaceSteady,
		Verbosity:        VerbosityBalanced,
		Modality:         ModalityMixed,
		TeachingStyle:    StyleGuided,
		ExplainEveryStep: false,
	}
}

// NudgePolicy gates proactive hints so the tutor doesn't over-prompt.
type NudgePolicy struct {
	MinSecondsBetweenNudges int   `json:"minSecondsBetweenNudges"`
	ConfirmRequired         bool  `json:"confirmRequired"`
	SuppressForStepMs       int64 `json:"suppressForStepMs"`
}

// DefaultNudgePolicy is the baseline cooldown before any escalation.
func DefaultNudgePolicy() NudgePolicy {
	return NudgePolicy{
		MinSecondsBetweenNudges: 30,
		ConfirmRequired:         false,
		SuppressForStepMs:       10_000,
	}
}
