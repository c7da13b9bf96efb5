package opframework

import (
	"fmt"

	"github.com/katalvlaran/tsdag/core"
)

// FixedWindow is a fixed-count associative window: it retains the most
// recent `window` Data elements, evicting the oldest on overflow, and
// answers Value()/Full() in amortised O(1) via assocQueue.
type FixedWindow struct {
	q      *assocQueue
	window int
}

// NewFixedWindow constructs a FixedWindow of the given count. Returns
// core.ErrInvalidArgument if window < 1.
func NewFixedWindow(window int, combine Combine) (*FixedWindow, error) {
	if window < 1 {
		return nil, fmt.Errorf("opframework: NewFixedWindow: window=%d < 1: %w", window, core.ErrInvalidArgument)
	}
	return &FixedWindow{q: newAssocQueue(combine), window: window}, nil
}

// Update pushes a new Data element, evicting the oldest if the window is
// already at capacity.
func (w *FixedWindow) Update(t core.Timestamp, data any) error {
	if err := w.q.Push(t, data); err != nil {
		return err
	}
	if w.q.Len() > w.window {
		return w.q.PopOldest()
	}
	return nil
}

// Value returns the fold of all currently retained elements.
func (w *FixedWindow) Value() (any, bool) { return w.q.Value() }

// Full reports whether the window has reached its configured count.
func (w *FixedWindow) Full() bool { return w.q.Len() >= w.window }

// Len reports how many elements are currently retained.
func (w *FixedWindow) Len() int { return w.q.Len() }
