package ops

import (
	"fmt"

	"github.com/katalvlaran/tsdag/core"
	"github.com/katalvlaran/tsdag/dag"
)

// lagOp re-emits x's own tick schedule, but with each tick's value replaced
// by the value observed k ticks earlier — the first k ticks of x produce no
// output, since no "k ago" value exists yet.
type lagOp struct {
	k int
}

func (o *lagOp) Key() string       { return fmt.Sprintf("lag|k=%d", o.k) }
func (o *lagOp) ValueType() string { return "any" }
func (o *lagOp) Run(parent *core.Block) (*core.Block, error) {
	if o.k == 0 {
		return parent, nil
	}
	times := parent.Times()
	values := parent.Values()
	if len(times) <= o.k {
		return core.EmptyBlock, nil
	}
	bb := core.NewBlockBuilder(len(times) - o.k)
	for i := o.k; i < len(times); i++ {
		bb.Push(times[i], values[i-o.k])
	}
	return bb.Build(), nil
}

// Lag constructs a node emitting x's value from k ticks ago (k >= 0).
// k == 0 returns x unchanged (identity). lag(constant(v), k) folds to the
// same constant node unchanged (spec.md §8 "Constant propagation").
func Lag(x *dag.Node, k int) (*dag.Node, error) {
	if k < 0 {
		return nil, invalidArg("Lag: k=%d must be >= 0", k)
	}
	if k == 0 {
		return x, nil
	}
	if _, ok := asConstant(x); ok {
		return x, nil
	}
	return dag.Default().Obtain([]*dag.Node{x}, &lagOp{k: k})
}
