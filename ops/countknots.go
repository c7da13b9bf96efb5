package ops

import (
	"github.com/katalvlaran/tsdag/dag"
	"github.com/katalvlaran/tsdag/opframework"
)

// countKnotsOp is an Inception accumulator that ignores its input value and
// always ticks, counting total ticks observed so far.
type countKnotsOp struct{}

func (countKnotsOp) Key() string              { return "count_knots" }
func (countKnotsOp) ValueType() string        { return "float64" }
func (countKnotsOp) Kind() dag.AccumKind      { return dag.InceptionAccum }
func (countKnotsOp) Window() int              { return 0 }
func (countKnotsOp) WindowMillis() int64      { return 0 }
func (countKnotsOp) EmitEarly() bool          { return false }
func (countKnotsOp) Wrap() opframework.Wrap   { return func(_ ...any) any { return 1.0 } }
func (countKnotsOp) Combine() opframework.Combine {
	return func(a, b any) (any, error) { return a.(float64) + b.(float64), nil }
}
func (countKnotsOp) Facets() opframework.Facets {
	return opframework.Facets{AlwaysTicks: true, Extract: func(d any) (any, error) { return d, nil }}
}

// CountKnots constructs a node that ticks n := n+1 on every input tick.
func CountKnots(x *dag.Node) (*dag.Node, error) {
	return dag.Default().Obtain([]*dag.Node{x}, countKnotsOp{})
}
