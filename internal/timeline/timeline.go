// Package timeline maps elapsed playback time to the explanation step that
// was audible at that time, supporting scrubbing and resume-from-step.
package timeline

import "sort"

// Range is an interval of playback time during which one step's audio
// was audible. EndMs == nil means the range is still open.
type Range struct {
	StepID  string
	StartMs int64
	EndMs   *int64
}

// Timeline is a sorted interval index over step audio ranges.
// Ranges arrive in non-decreasing start order (sequential playback),
// which is what makes binary-search lookup valid.
// Not safe for concurrent use; each session owns one.
type Timeline struct {
	ranges    []Range
	destroyed bool
}

// New creates an empty Timeline.
func New() *Timeline {
	return &Timeline{}
}

// OnStepStart closes any still-open range at atMs, then opens a new range
// for stepID.
func (t *Timeline) OnStepStart(stepID string, atMs int64) {
	if t.destroyed {
		return
	}
	t.closeOpen(atMs)
	t.insert(Range{StepID: stepID, StartMs: atMs})
}

// OnStepEnd closes the open range matching stepID. No-op when no open
// range matches.
func (t *Timeline) OnStepEnd(stepID string, atMs int64) {
	if t.destroyed {
		return
	}
	for i := len(t.ranges) - 1; i >= 0; i-- {
		r := &t.ranges[i]
		if r.StepID == stepID && r.EndMs == nil {
			end := atMs
			r.EndMs = &end
			return
		}
	}
}

// RegisterStepRange records authoritative audio-chunk timing for a step.
// Idempotent: repeated calls for the same step widen the existing range to
// the min/max envelope instead of inserting duplicates.
func (t *Timeline) RegisterStepRange(stepID string, startMs, endMs int64) {
	if t.destroyed {
		return
	}
	for i := range t.ranges {
		r := &t.ranges[i]
		if r.StepID != stepID {
			continue
		}
		if startMs < r.StartMs {
			r.StartMs = startMs
		}
		if r.EndMs == nil || endMs > *r.EndMs {
			end := endMs
			r.EndMs = &end
		}
		t.resort()
		return
	}
	end := endMs
	t.insert(Range{StepID: stepID, StartMs: startMs, EndMs: &end})
}

// ActiveStepAt returns the step whose [start, end) interval contains atMs.
// An open range's end is treated as +infinity. Returns ("", false) when no
// range matches.
func (t *Timeline) ActiveStepAt(atMs int64) (string, bool) {
	// Rightmost range with StartMs <= atMs.
	i := sort.Search(len(t.ranges), func(i int) bool {
		return t.ranges[i].StartMs > atMs
	}) - 1
	if i < 0 {
		return "", false
	}
	r := t.ranges[i]
	if r.EndMs == nil || atMs < *r.EndMs {
		return r.StepID, true
	}
	return "", false
}

// TotalDurationMs returns the end of the last range, or its start if the
// range is still open. Zero for an empty timeline.
func (t *Timeline) TotalDurationMs() int64 {
	if len(t.ranges) == 0 {
		return 0
	}
	last := t.ranges[len(t.ranges)-1]
	if last.EndMs != nil {
		return *last.EndMs
	}
	return last.StartMs
}

// Ranges returns a snapshot of all ranges in start order.
func (t *Timeline) Ranges() []Range {
	out := make([]Range, len(t.ranges))
	copy(out, t.ranges)
	return out
}

// RangeFor returns the range recorded for stepID, if any.
func (t *Timeline) RangeFor(stepID string) (Range, bool) {
	for _, r := range t.ranges {
		if r.StepID == stepID {
			return r, true
		}
	}
	return Range{}, false
}

// Destroy is terminal: all mutators become no-ops afterwards.
func (t *Timeline) Destroy() {
	t.destroyed = true
}

// closeOpen terminates the currently open range, if any. At most one range
// is open at a time by construction.
func (t *Timeline) closeOpen(atMs int64) {
	for i := len(t.ranges) - 1; i >= 0; i-- {
		if t.ranges[i].EndMs == nil {
			end := atMs
			t.ranges[i].EndMs = &end
			return
		}
	}
}

// insert places r keeping the slice sorted by StartMs.
func (t *Timeline) insert(r Range) {
	i := sort.Search(len(t.ranges), func(i int) bool {
		return t.ranges[i].StartMs > r.StartMs
	})
	t.ranges = append(t.ranges, Range{})
	copy(t.ranges[i+1:], t.ranges[i:])
	t.ranges[i] = r
}

// resort restores start order after a widening changed a StartMs.
func (t *Timeline) resort() {
	sort.SliceStable(t.ranges, func(i, j int) bool {
		return t.ranges[i].StartMs < t.ranges[j].StartMs
	})
}
