package tutor

import (
	"context"

	"github.com/stepwiselabs/stepwise/internal/confusion"
	"github.com/stepwiselabs/stepwise/internal/personalize"
	"github.com/stepwiselabs/stepwise/internal/protocol"
	"github.com/stepwiselabs/stepwise/internal/steps"
	"github.com/stepwiselabs/stepwise/internal/store"
	"github.com/stepwiselabs/stepwise/internal/timeline"
)

// Interrupt stops the tutor mid-explanation. Completed steps and the
// extraction history survive; only the partial sentence is discarded into
// the resume context. Idempotent: interrupting an idle or already
// interrupted session confirms with ai_interrupted and changes nothing.
func (o *Orchestrator) Interrupt() {
	o.mu.Lock()
	switch o.state {
	case StateThinking, StateExplaining, StateReexplaining:
	default:
		o.mu.Unlock()
		o.send(protocol.AIInterrupted{})
		return
	}

	// Cancel before reading the buffer: a token already fetched from the
	// stream must see a dead context, or it would repopulate the buffer
	// captured below.
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
	o.interruptions++

	partial := o.extractor.Buffered()
	o.extractor.ResetBuffer()
	o.tracker.Interrupt()

	nowMs := o.cfg.Clock.NowMs()
	last := -1
	hist := o.extractor.History()
	if len(hist) > 0 {
		lastStep := hist[len(hist)-1]
		last = lastStep.Index
		o.timeline.OnStepEnd(lastStep.ID, nowMs)
	}

	o.resume = ResumeContext{
		LastCompletedStep:    last,
		PartialSentence:      partial,
		FullExplanationSoFar: o.fullText.String(),
	}
	o.state = StateInterrupted
	o.mu.Unlock()

	o.send(
		protocol.AIInterrupted{},
		protocol.TeacherInterrupted{LastCompletedStepIndex: last},
	)
}

// SelectStepNL resolves a natural-language step reference and re-explains
// the selected step. Resolution falls back from the reference to the
// currently audible step, then to the most recent step.
func (o *Orchestrator) SelectStepNL(text string) {
	o.mu.Lock()
	hist := o.extractor.History()
	step := confusion.ResolveStepRef(text, hist)
	if step == nil {
		if id, ok := o.timeline.ActiveStepAt(o.cfg.Clock.NowMs()); ok {
			step = stepByID(hist, id)
		}
	}
	if step == nil && len(hist) > 0 {
		step = &hist[len(hist)-1]
	}
	o.mu.Unlock()

	if step == nil {
		o.send(protocol.AIConfusionHandled{Action: "ignored", Reason: "no_step_match"})
		return
	}

	idx := step.Index
	o.send(protocol.AIConfusionHandled{
		StepID:    step.ID,
		StepIndex: &idx,
		Action:    "reexplained",
	})
	o.reexplain(*step, "")
}

// ResetSession drops all session state for a new problem: extraction
// history, timeline, resume context, conversation and nudge bookkeeping.
// The student's persisted memory is untouched.
func (o *Orchestrator) ResetSession(ctx context.Context) {
	o.mu.Lock()
	done := o.turnDone
	o.turnDone = nil
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}

	o.extractor.Reset()
	o.timeline.Destroy()
	o.timeline = timeline.New()
	o.tracker = timeline.NewTracker(o.cfg.Clock)
	o.resume = emptyResume()
	o.fullText.Reset()
	o.history = nil
	o.concepts = nil
	o.signals = personalize.SessionSignals{}
	o.lastNudgeAtMs = 0
	o.suppressUntil = make(map[string]int64)
	o.pendingOffers = make(map[string]string)
	o.state = StateIdle
	o.mu.Unlock()

	if done != nil {
		<-done
	}

	o.appendSessionEvent(ctx, store.SessionEventData{
		SessionID: o.cfg.SessionID,
		StudentID: o.cfg.StudentID,
		Action:    "reset",
	})
	o.send(
		protocol.AudioStatus{Status: "stopped", Reason: "reset"},
		protocol.TeacherWaiting{},
	)
}

// activeOrLastStep picks the step the student is most plausibly talking
// about when no explicit reference resolves.
func (o *Orchestrator) activeOrLastStepLocked() *steps.EquationStep {
	hist := o.extractor.History()
	if id, ok := o.timeline.ActiveStepAt(o.cfg.Clock.NowMs()); ok {
		if s := stepByID(hist, id); s != nil {
			return s
		}
	}
	if len(hist) > 0 {
		return &hist[len(hist)-1]
	}
	return nil
}
