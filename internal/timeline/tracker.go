package timeline

import "time"

// Clock provides milliseconds elapsed relative to an arbitrary start.
// Abstracted so tests can drive time explicitly.
type Clock interface {
	NowMs() int64
}

// monotonicClock measures against a fixed origin using the runtime's
// monotonic reading.
type monotonicClock struct {
	origin time.Time
}

// NewMonotonicClock creates a Clock anchored at the moment of the call.
func NewMonotonicClock() Clock {
	return &monotonicClock{origin: time.Now()}
}

func (c *monotonicClock) NowMs() int64 {
	return time.Since(c.origin).Milliseconds()
}

// StepTiming records when a step's audio started and ended on the session
// clock. AudioEndMs == nil means the step is still playing.
type StepTiming struct {
	StepID       string
	AudioStartMs int64
	AudioEndMs   *int64
}

// Tracker records wall-clock start/end timestamps per step as audio plays.
// At most one timing is open at a time. Not safe for concurrent use.
type Tracker struct {
	clock   Clock
	timings []StepTiming
	active  int // index into timings, -1 when none
}

// NewTracker creates a Tracker on the given clock.
func NewTracker(clock Clock) *Tracker {
	return &Tracker{clock: clock, active: -1}
}

// StartStep opens a timing for id, auto-closing any previously active step.
func (tr *Tracker) StartStep(id string) {
	now := tr.clock.NowMs()
	tr.closeActive(now)
	tr.timings = append(tr.timings, StepTiming{StepID: id, AudioStartMs: now})
	tr.active = len(tr.timings) - 1
}

// EndStep closes the timing for id if it exists and isn't already closed.
// Idempotent.
func (tr *Tracker) EndStep(id string) {
	for i := len(tr.timings) - 1; i >= 0; i-- {
		t := &tr.timings[i]
		if t.StepID == id {
			if t.AudioEndMs == nil {
				end := tr.clock.NowMs()
				t.AudioEndMs = &end
				if tr.active == i {
					tr.active = -1
				}
			}
			return
		}
	}
}

// Interrupt closes whatever timing is active.
func (tr *Tracker) Interrupt() {
	tr.closeActive(tr.clock.NowMs())
}

// Timings returns a snapshot copy of all recorded timings.
func (tr *Tracker) Timings() []StepTiming {
	out := make([]StepTiming, len(tr.timings))
	copy(out, tr.timings)
	return out
}

func (tr *Tracker) closeActive(atMs int64) {
	if tr.active < 0 || tr.active >= len(tr.timings) {
		tr.active = -1
		return
	}
	if tr.timings[tr.active].AudioEndMs == nil {
		end := atMs
		tr.timings[tr.active].AudioEndMs = &end
	}
	tr.active = -1
}
