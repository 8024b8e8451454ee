package timeline

import "testing"

func TestRegisterStepRange_MinMaxEnvelope(t *testing.T) {
	// Order-independent convergence: any call order yields the same envelope.
	orders := [][][3]int64{
		{{100, 200, 0}, {50, 150, 0}, {180, 300, 0}},
		{{180, 300, 0}, {100, 200, 0}, {50, 150, 0}},
		{{50, 150, 0}, {180, 300, 0}, {100, 200, 0}},
	}

	for i, calls := range orders {
		tl := New()
		for _, c := range calls {
			tl.RegisterStepRange("s1", c[0], c[1])
		}
		r, ok := tl.RangeFor("s1")
		if !ok {
			t.Fatalf("order %d: missing range", i)
		}
		if r.StartMs != 50 {
			t.Errorf("order %d: StartMs = %d, want 50", i, r.StartMs)
		}
		if r.EndMs == nil || *r.EndMs != 300 {
			t.Errorf("order %d: EndMs = %v, want 300", i, r.EndMs)
		}
		if got := len(tl.Ranges()); got != 1 {
			t.Errorf("order %d: %d ranges, want 1 (merged, not duplicated)", i, got)
		}
	}
}

func TestActiveStepAt(t *testing.T) {
	tl := New()
	tl.RegisterStepRange("s0", 0, 1000)
	tl.RegisterStepRange("s1", 1000, 2500)
	tl.RegisterStepRange("s2", 2500, 4000)

	tests := []struct {
		atMs   int64
		want   string
		wantOK bool
	}{
		{0, "s0", true},
		{999, "s0", true},
		{1000, "s1", true}, // [start, end): boundary belongs to the next range
		{2499, "s1", true},
		{3999, "s2", true},
		{4000, "", false},
		{-1, "", false},
	}

	for _, tt := range tests {
		got, ok := tl.ActiveStepAt(tt.atMs)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ActiveStepAt(%d) = (%q, %v), want (%q, %v)", tt.atMs, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestActiveStepAt_MonotonicConsistent(t *testing.T) {
	tl := New()
	tl.RegisterStepRange("s0", 1200, 3400)

	a, okA := tl.ActiveStepAt(1500)
	b, okB := tl.ActiveStepAt(3000)
	if !okA || !okB || a != b {
		t.Errorf("points inside the same range resolved differently: (%q,%v) vs (%q,%v)", a, okA, b, okB)
	}
}

func TestActiveStepAt_OpenRangeIsUnbounded(t *testing.T) {
	tl := New()
	tl.OnStepStart("s0", 100)

	if got, ok := tl.ActiveStepAt(1_000_000); !ok || got != "s0" {
		t.Errorf("ActiveStepAt far future = (%q, %v), want (s0, true)", got, ok)
	}
	if _, ok := tl.ActiveStepAt(50); ok {
		t.Error("before the open range should not match")
	}
}

func TestOnStepStart_ClosesPreviousOpenRange(t *testing.T) {
	tl := New()
	tl.OnStepStart("s0", 0)
	tl.OnStepStart("s1", 500)

	r, _ := tl.RangeFor("s0")
	if r.EndMs == nil || *r.EndMs != 500 {
		t.Errorf("s0 EndMs = %v, want 500", r.EndMs)
	}
	if got, ok := tl.ActiveStepAt(600); !ok || got != "s1" {
		t.Errorf("ActiveStepAt(600) = (%q, %v), want (s1, true)", got, ok)
	}
}

func TestOnStepEnd_NoOpWithoutMatchingOpenRange(t *testing.T) {
	tl := New()
	tl.OnStepStart("s0", 0)
	tl.OnStepEnd("other", 100) // no match, no-op

	r, _ := tl.RangeFor("s0")
	if r.EndMs != nil {
		t.Errorf("s0 unexpectedly closed: %v", *r.EndMs)
	}

	tl.OnStepEnd("s0", 250)
	r, _ = tl.RangeFor("s0")
	if r.EndMs == nil || *r.EndMs != 250 {
		t.Errorf("s0 EndMs = %v, want 250", r.EndMs)
	}
}

func TestTotalDurationMs(t *testing.T) {
	tl := New()
	if got := tl.TotalDurationMs(); got != 0 {
		t.Errorf("empty timeline duration = %d, want 0", got)
	}

	tl.RegisterStepRange("s0", 0, 1000)
	tl.OnStepStart("s1", 1000)
	if got := tl.TotalDurationMs(); got != 1000 {
		t.Errorf("open last range duration = %d, want its start 1000", got)
	}

	tl.OnStepEnd("s1", 2400)
	if got := tl.TotalDurationMs(); got != 2400 {
		t.Errorf("duration = %d, want 2400", got)
	}
}

func TestDestroy_MutatorsBecomeNoOps(t *testing.T) {
	tl := New()
	tl.RegisterStepRange("s0", 0, 1000)
	tl.Destroy()

	tl.RegisterStepRange("s1", 1000, 2000)
	tl.OnStepStart("s2", 2000)
	tl.OnStepEnd("s0", 3000)

	if got := len(tl.Ranges()); got != 1 {
		t.Errorf("%d ranges after destroy, want 1", got)
	}
}

// fakeClock drives a Tracker deterministically.
type fakeClock struct{ now int64 }

func (c *fakeClock) NowMs() int64 { return c.now }

func TestTracker_StartAutoClosesPrevious(t *testing.T) {
	clk := &fakeClock{}
	tr := NewTracker(clk)

	tr.StartStep("s0")
	clk.now = 800
	tr.StartStep("s1")

	timings := tr.Timings()
	if len(timings) != 2 {
		t.Fatalf("%d timings, want 2", len(timings))
	}
	if timings[0].AudioEndMs == nil || *timings[0].AudioEndMs != 800 {
		t.Errorf("s0 end = %v, want 800", timings[0].AudioEndMs)
	}
	if timings[1].AudioEndMs != nil {
		t.Errorf("s1 should be open, got end %v", *timings[1].AudioEndMs)
	}
}

func TestTracker_EndStepIdempotent(t *testing.T) {
	clk := &fakeClock{}
	tr := NewTracker(clk)

	tr.StartStep("s0")
	clk.now = 500
	tr.EndStep("s0")
	clk.now = 900
	tr.EndStep("s0") // already closed, keeps the first end

	timings := tr.Timings()
	if timings[0].AudioEndMs == nil || *timings[0].AudioEndMs != 500 {
		t.Errorf("end = %v, want 500", timings[0].AudioEndMs)
	}

	tr.EndStep("missing") // unknown id, no-op
}

func TestTracker_InterruptClosesActive(t *testing.T) {
	clk := &fakeClock{}
	tr := NewTracker(clk)

	tr.StartStep("s0")
	clk.now = 300
	tr.Interrupt()

	timings := tr.Timings()
	if timings[0].AudioEndMs == nil || *timings[0].AudioEndMs != 300 {
		t.Errorf("end = %v, want 300", timings[0].AudioEndMs)
	}

	tr.Interrupt() // nothing active, no-op
}
