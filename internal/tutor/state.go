package tutor

// TeacherState is the orchestrator's visible activity state. Transitions
// are driven by user input and stream lifecycle, never by timers.
type TeacherState string

const (
	// StateIdle means no problem has been posed yet.
	StateIdle TeacherState = "idle"

	// StateThinking means a generation stream is being opened.
	StateThinking TeacherState = "thinking"

	// StateExplaining means tokens are streaming for a fresh explanation.
	StateExplaining TeacherState = "explaining"

	// StateReexplaining means tokens are streaming for a re-explanation
	// of an earlier step.
	StateReexplaining TeacherState = "re-explaining"

	// StateInterrupted means the student cut the tutor off mid-stream.
	StateInterrupted TeacherState = "interrupted"

	// StateWaiting means the last turn finished and the tutor is
	// listening for input.
	StateWaiting TeacherState = "waiting"
)

// ResumeContext carries what the next turn needs to continue coherently
// after an interruption instead of restarting the explanation.
type ResumeContext struct {
	// LastCompletedStep is the index of the last fully extracted step,
	// or -1 when no step completed.
	LastCompletedStep int

	// PartialSentence is the text that was buffered but not yet
	// finalized when the interrupt landed.
	PartialSentence string

	// FullExplanationSoFar is everything streamed before the interrupt.
	FullExplanationSoFar string
}

func emptyResume() ResumeContext {
	return ResumeContext{LastCompletedStep: -1}
}
