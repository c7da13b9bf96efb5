package dag

import (
	"github.com/katalvlaran/tsdag/align"
	"github.com/katalvlaran/tsdag/core"
	"github.com/katalvlaran/tsdag/opframework"
)

// SourceOp is implemented by operators with no parents: they produce a
// Block directly from the requested interval, threading a fresh per-call
// state object the scheduler allocates via NewState (e.g. a cloned RNG for
// random sources — spec.md §9 RNG discipline).
type SourceOp interface {
	Operator
	NewState() any
	Run(state any, tStart, tEnd core.Timestamp) (*core.Block, error)
}

// UnaryOp is implemented by single-parent operators whose output Block is a
// pure per-knot function of the parent Block (e.g. lag, throttle, scalar
// arithmetic against a constant).
type UnaryOp interface {
	Operator
	Run(parent *core.Block) (*core.Block, error)
}

// BinaryAlignedOp is implemented by two-parent operators whose output is
// defined by aligning both parents (align.Merge) and then combining the
// paired values at each aligned tick (spec.md §4.4/§4.7).
type BinaryAlignedOp interface {
	Operator
	Alignment() align.Alignment
	Initial() *align.Initial
	Combine(x, y any) (any, error)
}

// AccumKind selects which opframework wrapper an AccumulatingOp's Facets/
// Wrap/Combine triple should be driven through.
type AccumKind int

const (
	// InceptionAccum drives opframework.Inception (accumulate from start).
	InceptionAccum AccumKind = iota
	// FixedWindowAccum drives opframework.FixedWindow (fixed-count window).
	FixedWindowAccum
	// TimeWindowAccum drives opframework.TimeWindow (duration window).
	TimeWindowAccum
)

// AccumulatingOp is implemented by single-parent operators whose behaviour
// is expressed as an associative Wrap/Combine/Extract triple over one of
// the three opframework wrappers (spec.md §4.5).
type AccumulatingOp interface {
	Operator
	Kind() AccumKind
	Facets() opframework.Facets
	Wrap() opframework.Wrap
	Combine() opframework.Combine
	// Window is consulted only when Kind() == FixedWindowAccum.
	Window() int
	// WindowMillis is consulted only when Kind() == TimeWindowAccum.
	WindowMillis() int64
	// EmitEarly is consulted for FixedWindowAccum/TimeWindowAccum.
	EmitEarly() bool
}

// BinaryAccumulatingOp is implemented by two-parent operators that first
// align their parents (align.Merge) and then accumulate the paired values
// through one of the three opframework wrappers — e.g. ops.Cov and ops.Cor,
// each of which Wraps an (x, y) pair rather than a single value.
type BinaryAccumulatingOp interface {
	Operator
	Alignment() align.Alignment
	Initial() *align.Initial
	Kind() AccumKind
	Facets() opframework.Facets
	Wrap() opframework.Wrap
	Combine() opframework.Combine
	Window() int
	WindowMillis() int64
	EmitEarly() bool
}
