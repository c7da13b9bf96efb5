package ops

import (
	"github.com/katalvlaran/tsdag/core"
	"github.com/katalvlaran/tsdag/dag"
)

// firstKnotOp emits only x's first tick, then stays silent forever.
type firstKnotOp struct{}

func (firstKnotOp) Key() string       { return "first_knot" }
func (firstKnotOp) ValueType() string { return "any" }
func (firstKnotOp) Run(parent *core.Block) (*core.Block, error) {
	k, ok := parent.First()
	if !ok {
		return core.EmptyBlock, nil
	}
	bb := core.NewBlockBuilder(1)
	bb.Push(k.Time, k.Value)
	return bb.Build(), nil
}

// FirstKnot constructs a node emitting only x's first tick.
func FirstKnot(x *dag.Node) (*dag.Node, error) {
	return dag.Default().Obtain([]*dag.Node{x}, firstKnotOp{})
}

// onesOp replaces every knot's value with 1.0, regardless of its original
// value — the indicator building block ActiveCount folds FirstKnot through.
type onesOp struct{}

func (onesOp) Key() string       { return "ones" }
func (onesOp) ValueType() string { return "float64" }
func (onesOp) Run(parent *core.Block) (*core.Block, error) {
	times := parent.Times()
	bb := core.NewBlockBuilder(len(times))
	for _, t := range times {
		bb.Push(t, 1.0)
	}
	return bb.Build(), nil
}

func ones(x *dag.Node) (*dag.Node, error) {
	return dag.Default().Obtain([]*dag.Node{x}, onesOp{})
}

// ActiveCount sums a 1.0 first-tick indicator per input — spec.md §4.7:
// "sum of align(1, first_knot(x_i)) over inputs". The sum uses UNION
// alignment with no bootstrap values, so it ticks exactly once, at the time
// the last of xs first ticks, with value len(xs). No knot is emitted while
// only some of xs have ticked, and none at all if any input never ticks
// within the evaluated interval.
func ActiveCount(xs ...*dag.Node) (*dag.Node, error) {
	if len(xs) == 0 {
		return nil, invalidArg("ActiveCount: requires at least one input")
	}
	var acc *dag.Node
	for _, x := range xs {
		fk, err := FirstKnot(x)
		if err != nil {
			return nil, err
		}
		ind, err := ones(fk)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = ind
			continue
		}
		acc, err = Add(acc, ind)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
