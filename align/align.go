// Package align implements the alignment algebra over two irregularly
// sampled streams: UNION, INTERSECT, and LEFT merge policies.
//
// The two-pointer merge shape is adapted from the teacher's dtw package,
// which walks two sequences with independent advancing indices (i over the
// first sequence, j over the second, advancing the smaller of the two
// current timestamps and advancing both on a tie) — the same shape DTW uses
// to walk its cost matrix diagonal/row/column, repurposed here to walk
// wall-clock knot schedules instead of array indices into a cost grid.
package align

import "github.com/katalvlaran/tsdag/core"

// Alignment selects the merge policy for a binary operator. The zero value
// is UNION, matching spec.md §3's "default is UNION".
type Alignment int

const (
	// UNION emits whenever either side ticks, pairing with the most recent
	// value of the non-ticking side. UNION is the zero value (default).
	UNION Alignment = iota
	// INTERSECT emits only at times when both sides tick simultaneously.
	INTERSECT
	// LEFT emits exactly when the left (x) side ticks, paired with the most
	// recent y value at or before that time.
	LEFT
)

// String renders the alignment mode for diagnostics.
func (a Alignment) String() string {
	switch a {
	case UNION:
		return "UNION"
	case INTERSECT:
		return "INTERSECT"
	case LEFT:
		return "LEFT"
	default:
		return "UNKNOWN"
	}
}

// Initial bootstraps one or both sides of a State so emission can begin
// before either side has actually ticked (spec.md §4.4 "Optional
// initial_values").
type Initial struct {
	X, Y         any
	HasX, HasY   bool
}

// State carries the per-side latched value and a "ever seen" bit across
// repeated Merge calls within the lifetime of a single evaluation. Once both
// bits are set (directly or via Initial bootstrap), the merger is primed.
type State struct {
	xVal, yVal   any
	xSeen, ySeen bool
}

// NewState constructs a State, applying an optional Initial bootstrap.
func NewState(initial *Initial) *State {
	s := &State{}
	if initial != nil {
		if initial.HasX {
			s.xVal, s.xSeen = initial.X, true
		}
		if initial.HasY {
			s.yVal, s.ySeen = initial.Y, true
		}
	}
	return s
}

// Primed reports whether both sides have a latched value (observed or
// bootstrapped).
func (s *State) Primed() bool { return s.xSeen && s.ySeen }

// pair is the per-tick output of Merge: the latched (or just-ticked) value
// of each side at the emission time.
type pair struct {
	x, y any
}

// Merge walks x.Times()/y.Times() with the classic two-pointer algorithm
// (spec.md §4.4): at each step pick the smaller timestamp, advance that
// pointer, advance both on a tie. It returns a Block whose values are
// `pair{x, y}` structs, one per emitted tick, under the given Alignment.
//
// State must be reused across calls within the same evaluation so latched
// values survive from one invocation to the next (spec.md: "alignment state
// survives across evaluation calls within the same evaluate").
func Merge(x, y *core.Block, mode Alignment, state *State) *core.Block {
	bb := core.NewBlockBuilder(maxInt(x.Len(), y.Len()))

	xt, xv := x.Times(), x.Values()
	yt, yv := y.Times(), y.Values()
	i, j := 0, 0

	for i < len(xt) || j < len(yt) {
		var t core.Timestamp
		xTicked, yTicked := false, false

		switch {
		case i < len(xt) && j < len(yt) && xt[i] == yt[j]:
			t = xt[i]
			xTicked, yTicked = true, true
		case j >= len(yt) || (i < len(xt) && xt[i] < yt[j]):
			t = xt[i]
			xTicked = true
		default:
			t = yt[j]
			yTicked = true
		}

		if xTicked {
			state.xVal, state.xSeen = xv[i], true
			i++
		}
		if yTicked {
			state.yVal, state.ySeen = yv[j], true
			j++
		}

		emit, p := decide(mode, xTicked, yTicked, state)
		if emit {
			bb.Push(t, p)
		}
	}

	return bb.Build()
}

func decide(mode Alignment, xTicked, yTicked bool, state *State) (bool, pair) {
	switch mode {
	case INTERSECT:
		if xTicked && yTicked {
			return true, pair{state.xVal, state.yVal}
		}
		return false, pair{}
	case LEFT:
		if xTicked && state.ySeen {
			return true, pair{state.xVal, state.yVal}
		}
		return false, pair{}
	default: // UNION
		if state.Primed() {
			return true, pair{state.xVal, state.yVal}
		}
		return false, pair{}
	}
}

// PairX extracts the x component of a Merge-produced tick value.
func PairX(v any) any { return v.(pair).x }

// PairY extracts the y component of a Merge-produced tick value.
func PairY(v any) any { return v.(pair).y }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
