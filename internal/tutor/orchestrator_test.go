package tutor

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stepwiselabs/stepwise/internal/llm"
	"github.com/stepwiselabs/stepwise/internal/protocol"
	"github.com/stepwiselabs/stepwise/internal/speech"
	"github.com/stepwiselabs/stepwise/internal/store"
)

type fakeClock struct {
	mu sync.Mutex
	ms int64
}

func (c *fakeClock) NowMs() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ms
}

func (c *fakeClock) advance(ms int64) {
	c.mu.Lock()
	c.ms += ms
	c.mu.Unlock()
}

// recorder captures emitted messages and optionally reacts to one of them,
// which is how the interrupt-mid-stream scenario is driven.
type recorder struct {
	mu   sync.Mutex
	msgs []protocol.ServerMessage
	on   func(msg protocol.ServerMessage)
}

func (r *recorder) Emit(msg protocol.ServerMessage) {
	r.mu.Lock()
	r.msgs = append(r.msgs, msg)
	on := r.on
	r.mu.Unlock()
	if on != nil {
		on(msg)
	}
}

func (r *recorder) all() []protocol.ServerMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]protocol.ServerMessage(nil), r.msgs...)
}

func (r *recorder) types() []string {
	var out []string
	for _, m := range r.all() {
		out = append(out, protocol.MessageType(m))
	}
	return out
}

func (r *recorder) first(msgType string) protocol.ServerMessage {
	for _, m := range r.all() {
		if protocol.MessageType(m) == msgType {
			return m
		}
	}
	return nil
}

func (r *recorder) count(msgType string) int {
	n := 0
	for _, m := range r.all() {
		if protocol.MessageType(m) == msgType {
			n++
		}
	}
	return n
}

func indexOf(ts []string, want string) int {
	for i, t := range ts {
		if t == want {
			return i
		}
	}
	return -1
}

// Two sentences, two steps. Colons keep the equation match tight.
var explanationTokens = []string{
	"Subtract 3 from both ",
	"sides: 2x = 4. ",
	"Divide by 2",
	": x = 2.",
}

func newTestOrchestrator(t *testing.T, rec *recorder, scripts ...llm.MockScript) (*Orchestrator, *llm.MockStreamer, *fakeClock) {
	t.Helper()
	mock := llm.NewMockStreamer(scripts...)
	clock := &fakeClock{}
	o := New(Config{
		SessionID: "sess-1",
		Streamer:  mock,
		Synth:     &speech.NullSynthesizer{MsPerChar: 10},
		Clock:     clock,
		MaxTokens: 512,
	}, rec)
	if err := o.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return o, mock, clock
}

func TestExplanationTurn(t *testing.T) {
	rec := &recorder{}
	o, _, _ := newTestOrchestrator(t, rec, llm.MockScript{Tokens: explanationTokens})

	o.HandleUserMessage("Solve 2x + 3 = 7")
	o.WaitTurn()

	if got := o.State(); got != StateWaiting {
		t.Fatalf("state = %q, want %q", got, StateWaiting)
	}

	hist := o.Steps()
	if len(hist) != 2 {
		t.Fatalf("got %d steps, want 2", len(hist))
	}
	if hist[0].Equation != "2x = 4" || hist[0].Index != 0 {
		t.Errorf("step 0 = %q (index %d), want 2x = 4 at index 0", hist[0].Equation, hist[0].Index)
	}
	if hist[1].Equation != "x = 2" || hist[1].Index != 1 {
		t.Errorf("step 1 = %q (index %d), want x = 2 at index 1", hist[1].Equation, hist[1].Index)
	}

	ts := rec.types()
	thinking := indexOf(ts, protocol.TypeTeacherThinking)
	explaining := indexOf(ts, protocol.TypeTeacherExplaining)
	firstStep := indexOf(ts, protocol.TypeEquationStep)
	waiting := indexOf(ts, protocol.TypeTeacherWaiting)
	if !(thinking >= 0 && thinking < explaining && explaining < firstStep && firstStep < waiting) {
		t.Errorf("bad message order: %v", ts)
	}

	if rec.count(protocol.TypeEquationStep) != 2 {
		t.Errorf("equation_step count = %d, want 2", rec.count(protocol.TypeEquationStep))
	}
	if rec.count(protocol.TypeStepAudioStart) != 2 || rec.count(protocol.TypeStepAudioEnd) != 2 {
		t.Errorf("audio markers = %d/%d starts/ends, want 2/2",
			rec.count(protocol.TypeStepAudioStart), rec.count(protocol.TypeStepAudioEnd))
	}

	final := rec.first(protocol.TypeAIMessage).(protocol.AIMessage)
	want := strings.Join(explanationTokens, "")
	if final.Text != want {
		t.Errorf("ai_message text = %q, want %q", final.Text, want)
	}

	if res := o.Resume(); res.LastCompletedStep != 1 || res.PartialSentence != "" {
		t.Errorf("resume = %+v, want last step 1, no partial", res)
	}

	// Narration registered a closed range for the first step.
	rng, ok := o.timeline.RangeFor(hist[0].ID)
	if !ok || rng.EndMs == nil {
		t.Errorf("expected closed timeline range for step 0, got %+v ok=%v", rng, ok)
	}
}

func TestInterruptMidStream(t *testing.T) {
	rec := &recorder{}
	o, _, _ := newTestOrchestrator(t, rec, llm.MockScript{Tokens: explanationTokens})

	// Interrupt as soon as the first step lands, while the stream is
	// still producing.
	rec.on = func(msg protocol.ServerMessage) {
		if protocol.MessageType(msg) == protocol.TypeEquationStep {
			rec.mu.Lock()
			rec.on = nil
			rec.mu.Unlock()
			o.Interrupt()
		}
	}

	o.HandleUserMessage("Solve 2x + 3 = 7")
	o.WaitTurn()

	if got := o.State(); got != StateInterrupted {
		t.Fatalf("state = %q, want %q", got, StateInterrupted)
	}
	if len(o.Steps()) != 1 {
		t.Fatalf("got %d steps after interrupt, want 1", len(o.Steps()))
	}

	ti := rec.first(protocol.TypeTeacherInterrupted)
	if ti == nil {
		t.Fatal("no teacher_interrupted emitted")
	}
	if got := ti.(protocol.TeacherInterrupted).LastCompletedStepIndex; got != 0 {
		t.Errorf("lastCompletedStepIndex = %d, want 0", got)
	}
	if rec.first(protocol.TypeAIInterrupted) == nil {
		t.Error("no ai_interrupted emitted")
	}

	res := o.Resume()
	if res.LastCompletedStep != 0 {
		t.Errorf("resume.LastCompletedStep = %d, want 0", res.LastCompletedStep)
	}
	if !strings.Contains(res.FullExplanationSoFar, "2x = 4") {
		t.Errorf("resume explanation %q missing first step", res.FullExplanationSoFar)
	}

	// A second interrupt re-confirms but changes nothing else.
	before := rec.count(protocol.TypeAIInterrupted)
	o.Interrupt()
	if rec.count(protocol.TypeAIInterrupted) != before+1 {
		t.Error("second interrupt did not re-emit ai_interrupted")
	}
	if rec.count(protocol.TypeTeacherInterrupted) != 1 {
		t.Error("second interrupt emitted teacher_interrupted again")
	}
	if got := o.Resume(); got != res {
		t.Errorf("second interrupt changed the resume context: %+v", got)
	}
}

func TestResumeAfterInterruptKeepsIndices(t *testing.T) {
	rec := &recorder{}
	o, mock, _ := newTestOrchestrator(t, rec,
		llm.MockScript{Tokens: []string{"Subtract 3 from both sides: 2x = 4. ", "And no"}},
		llm.MockScript{Tokens: []string{"Divide by 2: x = 2."}},
	)

	// Interrupt right after the partial "And no" is streamed, so the
	// resume context carries both a completed step and a partial sentence.
	rec.on = func(msg protocol.ServerMessage) {
		if c, ok := msg.(protocol.AIMessageChunk); ok && c.TextDelta == "And no" {
			rec.mu.Lock()
			rec.on = nil
			rec.mu.Unlock()
			o.Interrupt()
		}
	}

	o.HandleUserMessage("Solve 2x + 3 = 7")
	o.WaitTurn()

	if got := o.State(); got != StateInterrupted {
		t.Fatalf("state = %q, want %q", got, StateInterrupted)
	}

	o.HandleUserMessage("Sorry, go on")
	o.WaitTurn()

	req := mock.LastCall()
	prompt := req.Messages[len(req.Messages)-1].Content
	if !strings.Contains(prompt, "Do not restart") {
		t.Errorf("resume prompt %q missing continuation instruction", prompt)
	}
	if !strings.Contains(prompt, `"And no"`) {
		t.Errorf("resume prompt %q missing interrupted partial sentence", prompt)
	}

	// Prior explanation is replayed as assistant context.
	var replayed bool
	for _, m := range req.Messages {
		if m.Role == llm.RoleAssistant && strings.Contains(m.Content, "2x = 4") {
			replayed = true
		}
	}
	if !replayed {
		t.Error("resume request missing assistant replay of explanation so far")
	}

	hist := o.Steps()
	if len(hist) != 2 {
		t.Fatalf("got %d steps, want 2", len(hist))
	}
	if hist[1].Index != 1 {
		t.Errorf("continued step index = %d, want 1 (indices never reset on interrupt)", hist[1].Index)
	}
}

func TestResumeFromStepSeeks(t *testing.T) {
	rec := &recorder{}
	o, mock, _ := newTestOrchestrator(t, rec,
		llm.MockScript{Tokens: explanationTokens},
		llm.MockScript{Tokens: []string{"Subtract 3 from both sides: 2x = 4."}},
	)

	o.HandleUserMessage("Solve 2x + 3 = 7")
	o.WaitTurn()
	step0 := o.Steps()[0]

	o.ResumeFromStep(step0.ID, "scrub")
	o.WaitTurn()

	status := rec.first(protocol.TypeAudioStatus)
	if status == nil {
		t.Fatal("no audio_status emitted")
	}
	as := status.(protocol.AudioStatus)
	if as.Status != "seeked" {
		t.Errorf("audio status = %q, want seeked", as.Status)
	}
	rng, _ := o.timeline.RangeFor(step0.ID)
	if as.AtMs != rng.StartMs {
		t.Errorf("seek atMs = %d, want range start %d", as.AtMs, rng.StartMs)
	}

	resumed := rec.first(protocol.TypeAIResumed)
	if resumed == nil {
		t.Fatal("no ai_resumed emitted")
	}
	if got := resumed.(protocol.AIResumed).ResumeFromStepIndex; got != 0 {
		t.Errorf("resumeFromStepIndex = %d, want 0", got)
	}

	prompt := mock.LastCall().Messages[len(mock.LastCall().Messages)-1].Content
	if !strings.Contains(prompt, "step 0") {
		t.Errorf("resume prompt %q does not name step 0", prompt)
	}
}

func TestResumeFromUnknownStep(t *testing.T) {
	rec := &recorder{}
	o, mock, _ := newTestOrchestrator(t, rec, llm.MockScript{Tokens: explanationTokens})

	o.HandleUserMessage("Solve 2x + 3 = 7")
	o.WaitTurn()
	calls := mock.CallCount()

	o.ResumeFromStep("no-such-step", "scrub")

	if rec.first(protocol.TypeErrorNotice) == nil {
		t.Fatal("no error emitted for unknown step")
	}
	if mock.CallCount() != calls {
		t.Error("unknown step started a generation turn")
	}
}

func TestReexplainStep(t *testing.T) {
	rec := &recorder{}
	o, _, _ := newTestOrchestrator(t, rec,
		llm.MockScript{Tokens: explanationTokens},
		llm.MockScript{Tokens: []string{"Think of it as removing 3 blocks: 2x = 4."}},
	)

	o.HandleUserMessage("Solve 2x + 3 = 7")
	o.WaitTurn()
	step0 := o.Steps()[0]

	o.ReexplainStep(step0.ID, "simpler")
	o.WaitTurn()

	if rec.first(protocol.TypeTeacherReexplaining) == nil {
		t.Error("no teacher_reexplaining emitted")
	}
	re := rec.first(protocol.TypeAIReexplained)
	if re == nil {
		t.Fatal("no ai_reexplained emitted")
	}
	if got := re.(protocol.AIReexplained).ReexplainedStepIndex; got != 0 {
		t.Errorf("reexplainedStepIndex = %d, want 0", got)
	}
	if got := o.State(); got != StateWaiting {
		t.Errorf("state after reexplain = %q, want %q", got, StateWaiting)
	}
}

func TestSelectStepNL(t *testing.T) {
	rec := &recorder{}
	o, _, _ := newTestOrchestrator(t, rec,
		llm.MockScript{Tokens: explanationTokens},
		llm.MockScript{Tokens: []string{"Again: 2x = 4."}},
	)

	o.HandleUserMessage("Solve 2x + 3 = 7")
	o.WaitTurn()

	o.SelectStepNL("explain the first step again")
	o.WaitTurn()

	handled := rec.first(protocol.TypeAIConfusionHandled)
	if handled == nil {
		t.Fatal("no ai_confusion_handled emitted")
	}
	h := handled.(protocol.AIConfusionHandled)
	if h.Action != "reexplained" || h.StepIndex == nil || *h.StepIndex != 0 {
		t.Errorf("handled = %+v, want reexplained step 0", h)
	}
}

func TestSelectStepNLWithNoSteps(t *testing.T) {
	rec := &recorder{}
	o, mock, _ := newTestOrchestrator(t, rec)

	o.SelectStepNL("that step")

	h := rec.first(protocol.TypeAIConfusionHandled)
	if h == nil {
		t.Fatal("no ai_confusion_handled emitted")
	}
	if got := h.(protocol.AIConfusionHandled).Action; got != "ignored" {
		t.Errorf("action = %q, want ignored", got)
	}
	if mock.CallCount() != 0 {
		t.Error("no-step selection started a generation turn")
	}
}

func TestConfusionSignalOffersNudge(t *testing.T) {
	rec := &recorder{}
	o, _, clock := newTestOrchestrator(t, rec, llm.MockScript{Tokens: explanationTokens})

	o.HandleUserMessage("Solve 2x + 3 = 7")
	o.WaitTurn()

	sig := protocol.ConfusionSignal{
		Source:   "explicit_phrase",
		Reason:   "said they are lost",
		Severity: "high",
		Text:     "I'm lost on step 2",
	}
	o.HandleConfusionSignal(context.Background(), sig)

	offer := rec.first(protocol.TypeNudgeOffered)
	if offer == nil {
		t.Fatal("no nudge offered")
	}
	no := offer.(protocol.NudgeOffered)
	if no.StepIndex != 1 {
		t.Errorf("nudge stepIndex = %d, want 1 (step 2 is 1-based)", no.StepIndex)
	}
	if no.OfferID == "" {
		t.Error("empty offerId")
	}

	// A second signal inside the cooldown window is suppressed.
	o.HandleConfusionSignal(context.Background(), sig)
	if rec.count(protocol.TypeNudgeOffered) != 1 {
		t.Fatal("cooldown did not suppress second nudge")
	}
	h := rec.first(protocol.TypeAIConfusionHandled)
	if h == nil || h.(protocol.AIConfusionHandled).Action != "suppressed" {
		t.Errorf("expected suppressed confusion_handled, got %+v", h)
	}

	// After the cooldown the same signal may nudge again.
	clock.advance(31_000)
	o.HandleConfusionSignal(context.Background(), sig)
	if rec.count(protocol.TypeNudgeOffered) != 2 {
		t.Error("expected second nudge after cooldown")
	}
}

func TestConfusionSignalWithNoSteps(t *testing.T) {
	rec := &recorder{}
	o, _, _ := newTestOrchestrator(t, rec)

	o.HandleConfusionSignal(context.Background(), protocol.ConfusionSignal{
		Source: "silence", Severity: "low",
	})

	h := rec.first(protocol.TypeAIConfusionHandled)
	if h == nil || h.(protocol.AIConfusionHandled).Action != "ignored" {
		t.Fatalf("expected ignored, got %+v", h)
	}
}

func TestHelpResponseAcceptReexplains(t *testing.T) {
	rec := &recorder{}
	o, _, _ := newTestOrchestrator(t, rec,
		llm.MockScript{Tokens: explanationTokens},
		llm.MockScript{Tokens: []string{"Once more: x = 2."}},
	)

	o.HandleUserMessage("Solve 2x + 3 = 7")
	o.WaitTurn()
	o.HandleConfusionSignal(context.Background(), protocol.ConfusionSignal{
		Source: "explicit_phrase", Severity: "medium", Text: "I don't understand step 2",
	})
	offer := rec.first(protocol.TypeNudgeOffered).(protocol.NudgeOffered)

	o.HandleHelpResponse(context.Background(), protocol.ConfusionHelpResponse{
		OfferID: offer.OfferID,
		StepID:  offer.StepID,
		Choice:  "accept",
	})
	o.WaitTurn()

	re := rec.first(protocol.TypeAIReexplained)
	if re == nil {
		t.Fatal("accepting a nudge did not reexplain")
	}
	if got := re.(protocol.AIReexplained).ReexplainedStepIndex; got != 1 {
		t.Errorf("reexplained index = %d, want 1", got)
	}

	// The offer is consumed.
	o.HandleHelpResponse(context.Background(), protocol.ConfusionHelpResponse{
		OfferID: offer.OfferID, Choice: "accept",
	})
	if rec.first(protocol.TypeErrorNotice) == nil {
		t.Error("replayed offer should error")
	}
}

func TestResetSession(t *testing.T) {
	rec := &recorder{}
	o, _, _ := newTestOrchestrator(t, rec,
		llm.MockScript{Tokens: explanationTokens},
		llm.MockScript{Tokens: []string{"Add 1 to both sides: y = 6."}},
	)

	o.HandleUserMessage("Solve 2x + 3 = 7")
	o.WaitTurn()
	if len(o.Steps()) == 0 {
		t.Fatal("setup: no steps extracted")
	}

	o.ResetSession(context.Background())

	if got := o.State(); got != StateIdle {
		t.Errorf("state after reset = %q, want %q", got, StateIdle)
	}
	if len(o.Steps()) != 0 {
		t.Error("steps survived reset")
	}

	// Fresh problem starts numbering from zero again.
	o.HandleUserMessage("Solve y - 1 = 5")
	o.WaitTurn()
	hist := o.Steps()
	if len(hist) != 1 || hist[0].Index != 0 {
		t.Errorf("after reset got %+v, want one step at index 0", hist)
	}
}

// fakeEvents records appended events in memory.
type fakeEvents struct {
	mu        sync.Mutex
	sessions  []store.SessionEventData
	nudges    []store.NudgeEventData
	confusion []store.ConfusionEventData
	llm       []store.LLMRequestEventData
}

func (f *fakeEvents) AppendLLMRequest(ctx context.Context, d store.LLMRequestEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.llm = append(f.llm, d)
	return nil
}

func (f *fakeEvents) AppendSessionEvent(ctx context.Context, d store.SessionEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = append(f.sessions, d)
	return nil
}

func (f *fakeEvents) AppendNudgeEvent(ctx context.Context, d store.NudgeEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nudges = append(f.nudges, d)
	return nil
}

func (f *fakeEvents) AppendConfusionEvent(ctx context.Context, d store.ConfusionEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confusion = append(f.confusion, d)
	return nil
}

func (f *fakeEvents) SessionCount(ctx context.Context, studentID string) (int, error) {
	return 0, nil
}

func (f *fakeEvents) NudgeStats(ctx context.Context, studentID string) (store.NudgeStats, error) {
	return store.NudgeStats{}, nil
}

func (f *fakeEvents) LLMUsage(ctx context.Context) ([]store.ProviderUsage, error) {
	return nil, nil
}

func TestSessionLifecycleEvents(t *testing.T) {
	events := &fakeEvents{}
	rec := &recorder{}
	mock := llm.NewMockStreamer(llm.MockScript{Tokens: explanationTokens})
	clock := &fakeClock{}
	o := New(Config{
		SessionID: "sess-9",
		StudentID: "alex",
		Streamer:  mock,
		Clock:     clock,
		Events:    events,
	}, rec)
	if err := o.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	o.HandleUserMessage("Solve 2x + 3 = 7")
	o.WaitTurn()
	clock.advance(90_000)
	o.Shutdown(context.Background())

	events.mu.Lock()
	defer events.mu.Unlock()
	if len(events.sessions) != 2 {
		t.Fatalf("got %d session events, want started+ended", len(events.sessions))
	}
	if events.sessions[0].Action != "started" {
		t.Errorf("first action = %q, want started", events.sessions[0].Action)
	}
	ended := events.sessions[1]
	if ended.Action != "ended" || ended.StepsEmitted != 2 || ended.DurationMs != 90_000 {
		t.Errorf("ended event = %+v, want 2 steps over 90000ms", ended)
	}
}

// fakeDocs is an in-memory DocRepo.
type fakeDocs struct {
	mu   sync.Mutex
	docs map[string][]byte // studentID/kind -> payload
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{docs: make(map[string][]byte)}
}

func (f *fakeDocs) GetDoc(ctx context.Context, studentID, kind string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.docs[studentID+"/"+kind]
	return p, ok, nil
}

func (f *fakeDocs) PutDoc(ctx context.Context, studentID, kind string, schemaVersion int, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[studentID+"/"+kind] = payload
	return nil
}

func (f *fakeDocs) DeleteDocs(ctx context.Context, studentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k := range f.docs {
		if strings.HasPrefix(k, studentID+"/") {
			delete(f.docs, k)
		}
	}
	return nil
}

func TestExplicitPreferencesShapePrompt(t *testing.T) {
	docs := newFakeDocs()
	docs.PutDoc(context.Background(), "alex", store.DocKindPreferences, 1,
		[]byte(`{"schemaVersion":1,"pace":"slow","verbosity":"detailed","updatedAtMs":1}`))

	rec := &recorder{}
	mock := llm.NewMockStreamer(llm.MockScript{Tokens: explanationTokens})
	o := New(Config{
		SessionID: "sess-2",
		StudentID: "alex",
		Streamer:  mock,
		Clock:     &fakeClock{},
		Docs:      docs,
	}, rec)
	if err := o.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	o.HandleUserMessage("Solve 2x + 3 = 7")
	o.WaitTurn()

	system := mock.LastCall().System
	if !strings.Contains(system, "Go slowly") {
		t.Errorf("system prompt %q does not honor explicit slow pace", system)
	}
	if !strings.Contains(system, "why the move is valid") {
		t.Errorf("system prompt %q does not honor detailed verbosity", system)
	}
}

func TestConfusionEvidencePersisted(t *testing.T) {
	docs := newFakeDocs()
	rec := &recorder{}
	mock := llm.NewMockStreamer(llm.MockScript{Tokens: explanationTokens})
	o := New(Config{
		SessionID: "sess-3",
		StudentID: "alex",
		Streamer:  mock,
		Clock:     &fakeClock{},
		Docs:      docs,
	}, rec)
	if err := o.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	o.HandleUserMessage("Solve 2x + 3 = 7")
	o.WaitTurn()
	o.HandleConfusionSignal(context.Background(), protocol.ConfusionSignal{
		Source: "explicit_phrase", Severity: "high", Text: "I'm lost",
	})

	raw, ok, _ := docs.GetDoc(context.Background(), "alex", store.DocKindMemory)
	if !ok {
		t.Fatal("memory doc not persisted")
	}
	body := string(raw)
	if !strings.Contains(body, `"confusion_signal"`) || !strings.Contains(body, `"nudge_offered"`) {
		t.Errorf("persisted doc %s missing evidence events", body)
	}
}

func TestNewTurnDropsDanglingPartialText(t *testing.T) {
	rec := &recorder{}
	o, _, _ := newTestOrchestrator(t, rec,
		llm.MockScript{Tokens: []string{"Subtract 3 from both sides: 2x = 4. ", "Now divide"}},
		llm.MockScript{Tokens: []string{"x = 2."}},
	)

	// Turn one completes with "Now divide" buffered, short of a boundary.
	o.HandleUserMessage("Solve 2x + 3 = 7")
	o.WaitTurn()

	o.HandleUserMessage("Try another one")
	o.WaitTurn()

	hist := o.Steps()
	if len(hist) != 2 {
		t.Fatalf("got %d steps, want 2", len(hist))
	}
	if hist[1].Text != "x = 2." {
		t.Errorf("second turn's step text = %q, want %q with no carried-over text", hist[1].Text, "x = 2.")
	}
	if hist[1].Equation != "x = 2" {
		t.Errorf("second turn's equation = %q, want x = 2", hist[1].Equation)
	}
}

func TestInterruptIdleOnlyConfirms(t *testing.T) {
	rec := &recorder{}
	o, _, _ := newTestOrchestrator(t, rec, llm.MockScript{Tokens: explanationTokens})

	o.Interrupt()

	if got := rec.types(); len(got) != 1 || got[0] != protocol.TypeAIInterrupted {
		t.Fatalf("messages = %v, want exactly one ai_interrupted", got)
	}
	if got := o.State(); got != StateIdle {
		t.Errorf("state = %q, want %q", got, StateIdle)
	}
}

// stubbornStream yields scripted tokens regardless of cancellation, gating
// each one on an explicit release. It models a backend whose next token is
// already on the wire when the interrupt lands.
type stubbornStream struct {
	ctx    context.Context
	gate   chan struct{}
	tokens []string
}

func (s *stubbornStream) Next() (string, error) {
	if len(s.tokens) == 0 {
		if err := s.ctx.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	<-s.gate
	tok := s.tokens[0]
	s.tokens = s.tokens[1:]
	return tok, nil
}

func (s *stubbornStream) Close() error { return nil }

type stubbornStreamer struct {
	stream *stubbornStream
}

func (s *stubbornStreamer) Stream(ctx context.Context, req llm.Request) (llm.TokenStream, error) {
	s.stream.ctx = ctx
	return s.stream, nil
}

func (s *stubbornStreamer) ModelID() string { return "stubborn" }

func TestInterruptDropsInFlightToken(t *testing.T) {
	stream := &stubbornStream{
		gate:   make(chan struct{}),
		tokens: []string{"Divide by 2: x = 2. ", "And then"},
	}
	rec := &recorder{}
	o := New(Config{
		SessionID: "sess-1",
		Streamer:  &stubbornStreamer{stream: stream},
		Synth:     &speech.NullSynthesizer{MsPerChar: 10},
		Clock:     &fakeClock{},
		MaxTokens: 512,
	}, rec)
	if err := o.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	stepped := make(chan struct{})
	rec.on = func(msg protocol.ServerMessage) {
		if protocol.MessageType(msg) == protocol.TypeEquationStep {
			rec.mu.Lock()
			rec.on = nil
			rec.mu.Unlock()
			close(stepped)
		}
	}

	o.HandleUserMessage("Solve 2x = 4")
	stream.gate <- struct{}{}
	<-stepped

	// Interrupt while the second token is still pending, then let the
	// stream deliver it anyway.
	o.Interrupt()
	stream.gate <- struct{}{}
	o.WaitTurn()

	if got := o.State(); got != StateInterrupted {
		t.Fatalf("state = %q, want %q", got, StateInterrupted)
	}
	for _, m := range rec.all() {
		if c, ok := m.(protocol.AIMessageChunk); ok && strings.Contains(c.TextDelta, "And then") {
			t.Fatal("token delivered after the interrupt reached the client")
		}
	}
	if res := o.Resume(); res.PartialSentence != "" {
		t.Errorf("resume partial = %q, want empty after the post-interrupt token", res.PartialSentence)
	}
}
