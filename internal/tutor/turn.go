package tutor

import (
	"context"
	"errors"
	"io"

	"github.com/stepwiselabs/stepwise/internal/llm"
	"github.com/stepwiselabs/stepwise/internal/memory"
	"github.com/stepwiselabs/stepwise/internal/protocol"
	"github.com/stepwiselabs/stepwise/internal/steps"
)

type turnKind int

const (
	turnFresh turnKind = iota
	turnResume
	turnReexplain
)

// turnMeta describes the generation turn being run, so the terminal
// handling can emit the right confirmation message.
type turnMeta struct {
	kind        turnKind
	purpose     string
	userText    string
	reexplainOf *steps.EquationStep
}

// HandleUserMessage starts a generation turn for free student input.
// If the session was interrupted, the turn continues from the resume
// context instead of restarting; otherwise it is a fresh explanation.
func (o *Orchestrator) HandleUserMessage(text string) {
	o.stopCurrentTurn()

	o.mu.Lock()
	decision := o.decideLocked()

	var req llm.Request
	meta := turnMeta{userText: text}
	if o.state == StateInterrupted {
		meta.kind = turnResume
		meta.purpose = "resume"
		req = resumeRequest(decision.Settings, o.history, o.resume, nil, text, o.cfg.MaxTokens)
	} else {
		meta.kind = turnFresh
		meta.purpose = "explanation"
		o.concepts = conceptsFor(text)
		o.fullText.Reset()
		o.resume = emptyResume()
		req = freshRequest(decision.Settings, o.history, text, o.cfg.MaxTokens)
	}
	o.mu.Unlock()

	o.startTurn(req, meta)
}

// ReexplainStep starts a re-explanation turn for one known step.
func (o *Orchestrator) ReexplainStep(stepID, style string) {
	o.mu.Lock()
	step := stepByID(o.extractor.History(), stepID)
	if step == nil {
		o.mu.Unlock()
		o.send(protocol.ErrorNotice{Code: "unknown_step", Message: "no step with id " + stepID})
		return
	}
	o.mu.Unlock()
	o.reexplain(*step, style)
}

func (o *Orchestrator) reexplain(step steps.EquationStep, style string) {
	o.stopCurrentTurn()

	o.mu.Lock()
	decision := o.decideLocked()
	o.memDoc.AppendEvidence(evidenceNow(memory.EvidenceStepReexplained, step.ID, ""))
	o.saveMemoryLocked()
	req := reexplainRequest(decision.Settings, o.history, step, style, o.cfg.MaxTokens)
	o.mu.Unlock()

	idx := step.Index
	o.send(protocol.TeacherReexplaining{StepIndex: &idx})
	stepCopy := step
	o.startTurn(req, turnMeta{kind: turnReexplain, purpose: "reexplain", reexplainOf: &stepCopy})
}

// ResumeFromStep seeks playback to a known step and continues the
// explanation from it.
func (o *Orchestrator) ResumeFromStep(stepID, source string) {
	o.mu.Lock()
	step := stepByID(o.extractor.History(), stepID)
	if step == nil {
		o.mu.Unlock()
		o.send(protocol.ErrorNotice{Code: "unknown_step", Message: "no step with id " + stepID})
		return
	}

	var seekMs int64
	if rng, ok := o.timeline.RangeFor(stepID); ok {
		seekMs = rng.StartMs
	}
	o.mu.Unlock()

	o.send(
		protocol.AudioStatus{Status: "seeked", Reason: source, AtMs: seekMs},
		protocol.AIResumed{ResumeFromStepIndex: step.Index},
	)

	o.stopCurrentTurn()

	o.mu.Lock()
	decision := o.decideLocked()
	resume := ResumeContext{
		LastCompletedStep:    step.Index - 1,
		FullExplanationSoFar: o.fullText.String(),
	}
	req := resumeRequest(decision.Settings, o.history, resume, step, "", o.cfg.MaxTokens)
	o.mu.Unlock()

	o.startTurn(req, turnMeta{kind: turnResume, purpose: "resume"})
}

// stopCurrentTurn cancels any in-flight generation and waits for its
// goroutine to drain, so two turns never emit interleaved.
func (o *Orchestrator) stopCurrentTurn() {
	o.mu.Lock()
	cancel, done := o.cancel, o.turnDone
	o.cancel, o.turnDone = nil, nil
	o.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}

	// Any unterminated sentence the previous turn left behind is stale;
	// it must not prefix the next turn's first extracted step.
	o.mu.Lock()
	o.extractor.ResetBuffer()
	o.mu.Unlock()
}

// startTurn transitions to thinking and launches the stream goroutine.
func (o *Orchestrator) startTurn(req llm.Request, meta turnMeta) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	o.mu.Lock()
	o.cancel = cancel
	o.turnDone = done
	o.state = StateThinking
	o.mu.Unlock()

	o.send(protocol.TeacherThinking{})
	go o.runTurn(ctx, req, meta, done)
}

func (o *Orchestrator) runTurn(ctx context.Context, req llm.Request, meta turnMeta, done chan struct{}) {
	defer close(done)

	stream, err := o.cfg.Streamer.Stream(llm.WithPurpose(ctx, meta.purpose), req)
	if err != nil {
		o.finishTurn(meta, "", err)
		return
	}
	defer stream.Close()

	first := true
	var text []byte
	for {
		token, err := stream.Next()
		if err != nil {
			o.finishTurn(meta, string(text), err)
			return
		}
		if first {
			first = false
			o.beginStreaming(meta)
		}
		text = append(text, token...)
		o.onToken(ctx, token)
	}
}

// beginStreaming flips thinking to explaining on the first token.
func (o *Orchestrator) beginStreaming(meta turnMeta) {
	o.mu.Lock()
	if o.state != StateThinking {
		o.mu.Unlock()
		return
	}
	if meta.kind == turnReexplain {
		o.state = StateReexplaining
	} else {
		o.state = StateExplaining
	}
	o.mu.Unlock()

	if meta.kind != turnReexplain {
		o.send(protocol.TeacherExplaining{})
	}
}

// onToken forwards the delta and, when a step finalizes, opens its
// timeline range and narrates it.
func (o *Orchestrator) onToken(ctx context.Context, token string) {
	o.mu.Lock()
	if ctx.Err() != nil {
		// Interrupt landed between Next and here; drop the token.
		o.mu.Unlock()
		return
	}
	o.fullText.WriteString(token)
	step := o.extractor.PushText(token)
	var startMs int64
	if step != nil {
		startMs = o.cfg.Clock.NowMs()
		o.stepsEmitted++
		o.tracker.StartStep(step.ID)
		o.timeline.OnStepStart(step.ID, startMs)
	}
	o.mu.Unlock()

	o.send(protocol.AIMessageChunk{TextDelta: token})
	if step != nil {
		o.send(protocol.EquationStep{EquationStep: *step})
		o.narrate(ctx, *step, startMs)
	}
}

// narrate synthesizes a step's sentence and publishes its audio chunks and
// authoritative timeline range.
func (o *Orchestrator) narrate(ctx context.Context, step steps.EquationStep, startMs int64) {
	if o.cfg.Synth == nil {
		return
	}
	chunks, err := o.cfg.Synth.Synthesize(ctx, step.Text)
	if err != nil || len(chunks) == 0 {
		return
	}

	var totalMs int64
	for _, c := range chunks {
		totalMs += c.DurationMs
	}

	o.mu.Lock()
	o.timeline.RegisterStepRange(step.ID, startMs, startMs+totalMs)
	o.mu.Unlock()

	msgs := []protocol.ServerMessage{
		protocol.StepAudioStart{StepID: step.ID, AtMs: startMs},
	}
	for _, c := range chunks {
		msgs = append(msgs, protocol.AIAudioChunk{
			AudioBase64:   c.AudioBase64,
			AudioMimeType: c.MimeType,
			StepID:        step.ID,
		})
	}
	msgs = append(msgs, protocol.StepAudioEnd{StepID: step.ID, AtMs: startMs + totalMs})
	o.send(msgs...)
}

// finishTurn handles the stream's terminal state.
func (o *Orchestrator) finishTurn(meta turnMeta, text string, terminal error) {
	switch {
	case errors.Is(terminal, io.EOF):
		o.completeTurn(meta, text)
	case errors.Is(terminal, context.Canceled):
		// Interrupt, reset or turn replacement already spoke for us.
	default:
		o.mu.Lock()
		o.state = StateWaiting
		o.mu.Unlock()
		o.send(
			protocol.ErrorNotice{Code: "generation_failed", Message: terminal.Error()},
			protocol.TeacherWaiting{},
		)
	}
}

// completeTurn finalizes a successfully streamed turn.
func (o *Orchestrator) completeTurn(meta turnMeta, text string) {
	o.mu.Lock()
	nowMs := o.cfg.Clock.NowMs()

	// Close the last step's envelope.
	hist := o.extractor.History()
	if len(hist) > 0 {
		last := hist[len(hist)-1]
		o.tracker.EndStep(last.ID)
		o.timeline.OnStepEnd(last.ID, nowMs)
		o.resume.LastCompletedStep = last.Index
	}
	o.resume.PartialSentence = ""
	o.resume.FullExplanationSoFar = o.fullText.String()

	if meta.userText != "" {
		o.history = append(o.history, llm.Message{Role: llm.RoleUser, Content: meta.userText})
	}
	if text != "" {
		o.history = append(o.history, llm.Message{Role: llm.RoleAssistant, Content: text})
	}
	o.state = StateWaiting
	o.mu.Unlock()

	msgs := []protocol.ServerMessage{
		protocol.AIMessageChunk{IsFinal: true},
	}
	switch meta.kind {
	case turnReexplain:
		msgs = append(msgs, protocol.AIReexplained{ReexplainedStepIndex: meta.reexplainOf.Index})
	}
	msgs = append(msgs,
		protocol.AIMessage{Text: text},
		protocol.TeacherWaiting{},
	)
	o.send(msgs...)
}
