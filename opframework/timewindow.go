package opframework

import (
	"fmt"

	"github.com/katalvlaran/tsdag/core"
)

// TimeWindow retains Data elements whose knot time is within `window`
// milliseconds of the most recently pushed knot, evicting older ones in
// arrival order. Full() latches true the first time the retained span
// reaches window and never resets — spec.md §4.5 "a time-window is full
// the first time its retained span reaches window".
type TimeWindow struct {
	q        *assocQueue
	window   int64 // duration in milliseconds
	everFull bool
}

// NewTimeWindow constructs a TimeWindow with the given duration in
// milliseconds. Returns core.ErrInvalidArgument if window <= 0.
func NewTimeWindow(windowMillis int64, combine Combine) (*TimeWindow, error) {
	if windowMillis <= 0 {
		return nil, fmt.Errorf("opframework: NewTimeWindow: window=%d <= 0: %w", windowMillis, core.ErrInvalidArgument)
	}
	return &TimeWindow{q: newAssocQueue(combine), window: windowMillis}, nil
}

// Update pushes a new (t, data) pair, then evicts every element older than
// window relative to t (arrival order — spec.md's eviction contract).
func (w *TimeWindow) Update(t core.Timestamp, data any) error {
	if err := w.q.Push(t, data); err != nil {
		return err
	}
	cutoff := core.Timestamp(int64(t) - w.window)
	for {
		oldest, ok := w.q.OldestTime()
		if !ok || !oldest.Before(cutoff) {
			break
		}
		if err := w.q.PopOldest(); err != nil {
			return err
		}
	}
	if span, ok := w.span(t); ok && span >= w.window {
		w.everFull = true
	}
	return nil
}

func (w *TimeWindow) span(latest core.Timestamp) (int64, bool) {
	oldest, ok := w.q.OldestTime()
	if !ok {
		return 0, false
	}
	return int64(latest) - int64(oldest), true
}

// Value returns the fold of all currently retained elements.
func (w *TimeWindow) Value() (any, bool) { return w.q.Value() }

// Full reports whether the retained span has ever reached window.
func (w *TimeWindow) Full() bool { return w.everFull }

// Len reports how many elements are currently retained.
func (w *TimeWindow) Len() int { return w.q.Len() }
