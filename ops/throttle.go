package ops

import (
	"fmt"

	"github.com/katalvlaran/tsdag/core"
	"github.com/katalvlaran/tsdag/dag"
)

// throttleOp retains every n-th tick of its parent, positions 0, n, 2n, ….
type throttleOp struct {
	n int
}

func (o *throttleOp) Key() string       { return fmt.Sprintf("throttle|n=%d", o.n) }
func (o *throttleOp) ValueType() string { return "any" }
func (o *throttleOp) Run(parent *core.Block) (*core.Block, error) {
	times := parent.Times()
	values := parent.Values()
	bb := core.NewBlockBuilder(len(times)/o.n + 1)
	for i := 0; i < len(times); i += o.n {
		bb.Push(times[i], values[i])
	}
	return bb.Build(), nil
}

// Throttle constructs a node emitting x's knot at positions 0, n, 2n, ….
// n == 1 returns x unchanged (identity).
func Throttle(x *dag.Node, n int) (*dag.Node, error) {
	if n <= 0 {
		return nil, invalidArg("Throttle: n=%d must be > 0", n)
	}
	if n == 1 {
		return x, nil
	}
	return dag.Default().Obtain([]*dag.Node{x}, &throttleOp{n: n})
}
