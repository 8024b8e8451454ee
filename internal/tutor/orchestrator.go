// Package tutor orchestrates one live tutoring session: it drives the
// generation backend, extracts equation steps from the token stream,
// narrates them, tracks the teacher state machine and mediates confusion
// handling. One Orchestrator per connected session.
package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/stepwiselabs/stepwise/internal/llm"
	"github.com/stepwiselabs/stepwise/internal/memory"
	"github.com/stepwiselabs/stepwise/internal/personalize"
	"github.com/stepwiselabs/stepwise/internal/protocol"
	"github.com/stepwiselabs/stepwise/internal/speech"
	"github.com/stepwiselabs/stepwise/internal/steps"
	"github.com/stepwiselabs/stepwise/internal/store"
	"github.com/stepwiselabs/stepwise/internal/timeline"
)

// Emitter delivers server messages to the connected client.
// Called sequentially from the orchestrator; implementations that write to
// a socket should queue rather than block for long.
type Emitter interface {
	Emit(msg protocol.ServerMessage)
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(msg protocol.ServerMessage)

func (f EmitterFunc) Emit(msg protocol.ServerMessage) { f(msg) }

// Config wires an Orchestrator's collaborators. Events and Docs are
// optional; a nil repo disables persistence for that concern.
type Config struct {
	SessionID string
	StudentID string

	Streamer llm.Streamer
	Synth    speech.Synthesizer
	Clock    timeline.Clock

	Events store.EventRepo
	Docs   store.DocRepo

	// MaxTokens bounds each generation turn. Zero means 2048.
	MaxTokens int
}

// Orchestrator is the per-session coordinator. All public methods are safe
// for concurrent use; the generation turn runs on its own goroutine.
type Orchestrator struct {
	mu  sync.Mutex
	cfg Config
	out Emitter

	state     TeacherState
	extractor *steps.Extractor
	timeline  *timeline.Timeline
	tracker   *timeline.Tracker
	resume    ResumeContext
	history   []llm.Message
	fullText  strings.Builder

	memDoc   *memory.StudentMemoryDoc
	prefs    *memory.ExplicitPreferences
	concepts []string
	signals  personalize.SessionSignals

	cancel   context.CancelFunc
	turnDone chan struct{}

	lastNudgeAtMs int64
	suppressUntil map[string]int64  // stepID -> session ms
	pendingOffers map[string]string // offerID -> stepID

	startedAtMs   int64
	stepsEmitted  int
	interruptions int
	nudgesOffered int
}

// New creates an Orchestrator. Call Start before dispatching messages.
func New(cfg Config, out Emitter) *Orchestrator {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 2048
	}
	if cfg.Clock == nil {
		cfg.Clock = timeline.NewMonotonicClock()
	}
	return &Orchestrator{
		cfg:           cfg,
		out:           out,
		state:         StateIdle,
		extractor:     steps.NewExtractor(),
		timeline:      timeline.New(),
		tracker:       timeline.NewTracker(cfg.Clock),
		resume:        emptyResume(),
		memDoc:        memory.NewDoc(),
		suppressUntil: make(map[string]int64),
		pendingOffers: make(map[string]string),
	}
}

// Start loads the student's persisted documents and records the session
// start. Safe to call with no persistence configured.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	o.startedAtMs = o.cfg.Clock.NowMs()
	o.mu.Unlock()

	if o.cfg.Docs != nil && o.cfg.StudentID != "" {
		raw, ok, err := o.cfg.Docs.GetDoc(ctx, o.cfg.StudentID, store.DocKindMemory)
		if err != nil {
			return fmt.Errorf("load memory doc: %w", err)
		}
		var doc *memory.StudentMemoryDoc
		if ok {
			doc = memory.LoadDoc(raw)
		} else {
			doc = memory.NewDoc()
		}
		doc.Prune(time.Now().UnixMilli())

		var prefs *memory.ExplicitPreferences
		raw, ok, err = o.cfg.Docs.GetDoc(ctx, o.cfg.StudentID, store.DocKindPreferences)
		if err != nil {
			return fmt.Errorf("load preferences doc: %w", err)
		}
		if ok {
			prefs = memory.LoadPreferences(raw)
		}

		o.mu.Lock()
		o.memDoc = doc
		o.prefs = prefs
		o.mu.Unlock()
	}

	o.appendSessionEvent(ctx, store.SessionEventData{
		SessionID: o.cfg.SessionID,
		StudentID: o.cfg.StudentID,
		Action:    "started",
	})
	return nil
}

// Shutdown cancels any in-flight generation and records the session end.
func (o *Orchestrator) Shutdown(ctx context.Context) {
	o.mu.Lock()
	cancel, done := o.cancel, o.turnDone
	o.cancel, o.turnDone = nil, nil
	data := store.SessionEventData{
		SessionID:     o.cfg.SessionID,
		StudentID:     o.cfg.StudentID,
		Action:        "ended",
		StepsEmitted:  o.stepsEmitted,
		Interruptions: o.interruptions,
		NudgesOffered: o.nudgesOffered,
		DurationMs:    o.cfg.Clock.NowMs() - o.startedAtMs,
	}
	o.timeline.Destroy()
	o.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
	o.appendSessionEvent(ctx, data)
}

// State returns the current teacher state.
func (o *Orchestrator) State() TeacherState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Steps returns a snapshot of all steps extracted this session.
func (o *Orchestrator) Steps() []steps.EquationStep {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.extractor.History()
}

// Resume returns the current resume context.
func (o *Orchestrator) Resume() ResumeContext {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.resume
}

// WaitTurn blocks until the in-flight generation turn, if any, finishes.
func (o *Orchestrator) WaitTurn() {
	o.mu.Lock()
	done := o.turnDone
	o.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Dispatch routes one parsed client message to its handler.
// Close is the caller's concern; it tears down the transport, not the
// orchestrator.
func (o *Orchestrator) Dispatch(ctx context.Context, msg protocol.ClientMessage) {
	switch m := msg.(type) {
	case protocol.UserMessage:
		o.HandleUserMessage(m.Text)
	case protocol.UserInterrupt:
		o.Interrupt()
	case protocol.ReexplainStep:
		o.ReexplainStep(m.StepID, m.Style)
	case protocol.SelectStepNL:
		o.SelectStepNL(m.Text)
	case protocol.ConfusionSignal:
		o.HandleConfusionSignal(ctx, m)
	case protocol.NudgeDismissed:
		o.HandleNudgeDismissed(ctx, m)
	case protocol.ConfusionHelpResponse:
		o.HandleHelpResponse(ctx, m)
	case protocol.ResumeFromStep:
		o.ResumeFromStep(m.StepID, m.Source)
	case protocol.ResetSession:
		o.ResetSession(ctx)
	case protocol.Close:
		// Transport-level; nothing to do here.
	}
}

// send delivers messages to the client. Never called with mu held, so an
// emitter may call back into the orchestrator.
func (o *Orchestrator) send(msgs ...protocol.ServerMessage) {
	if o.out == nil {
		return
	}
	for _, m := range msgs {
		o.out.Emit(m)
	}
}

// decideLocked computes the current personalization decision.
func (o *Orchestrator) decideLocked() personalize.Decision {
	sctx := &personalize.SessionContext{ConceptIDs: o.concepts}
	sig := o.signals
	return personalize.Decide(o.memDoc, o.prefs, sctx, &sig, time.Now().UnixMilli())
}

// saveMemoryLocked persists the memory document. Persistence failures are
// logged, never surfaced: losing a preference update must not break a turn.
func (o *Orchestrator) saveMemoryLocked() {
	if o.cfg.Docs == nil || o.cfg.StudentID == "" {
		return
	}
	o.memDoc.UpdatedAtMs = time.Now().UnixMilli()
	payload, err := json.Marshal(o.memDoc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: marshal memory doc: %v\n", err)
		return
	}
	if err := o.cfg.Docs.PutDoc(context.Background(), o.cfg.StudentID, store.DocKindMemory, memory.SchemaVersion, payload); err != nil {
		fmt.Fprintf(os.Stderr, "warning: persist memory doc: %v\n", err)
	}
}

func (o *Orchestrator) appendSessionEvent(ctx context.Context, data store.SessionEventData) {
	if o.cfg.Events == nil {
		return
	}
	if err := o.cfg.Events.AppendSessionEvent(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: append session event: %v\n", err)
	}
}

// stepByID finds a step in the extraction history.
func stepByID(list []steps.EquationStep, id string) *steps.EquationStep {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}
