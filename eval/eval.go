// Package eval drives the single-batch evaluation scheduler (spec.md §4.6):
// given a root node and a half-open interval, it enumerates the node's
// ancestors in topological order and runs each one exactly once, threading
// already-computed parent Blocks forward, and allocating a fresh per-node
// accumulator state for every call (inception/window state does not survive
// across Evaluate calls).
//
// Grounded on the teacher's algorithms/bfs.go "walker" shape: a single
// exported entry point seeds and drains an explicit traversal instead of
// letting recursion hold scheduler state on the Go call stack.
package eval

import (
	"fmt"

	"github.com/katalvlaran/tsdag/align"
	"github.com/katalvlaran/tsdag/core"
	"github.com/katalvlaran/tsdag/dag"
)

// Evaluate materializes root's Block over [tStart, tEnd) by walking all of
// root's ancestors in topological order and running each node's operator
// exactly once.
func Evaluate(root *dag.Node, tStart, tEnd core.Timestamp) (*core.Block, error) {
	w := &walker{
		blocks: make(map[*dag.Node]*core.Block, 16),
	}
	if err := w.run(root, tStart, tEnd); err != nil {
		return nil, err
	}
	return w.blocks[root], nil
}

// walker holds the mutable state of one Evaluate call: the topological
// order and the accumulated per-node output Blocks.
type walker struct {
	blocks map[*dag.Node]*core.Block
}

func (w *walker) run(root *dag.Node, tStart, tEnd core.Timestamp) error {
	order := dag.TopoOrder(root)
	for _, n := range order {
		out, err := w.evalNode(n, tStart, tEnd)
		if err != nil {
			return fmt.Errorf("eval: node %d (%s): %w", n.ID(), n.Op().Key(), classify(err))
		}
		w.blocks[n] = out
	}
	return nil
}

func (w *walker) evalNode(n *dag.Node, tStart, tEnd core.Timestamp) (*core.Block, error) {
	switch op := n.Op().(type) {
	case dag.SourceOp:
		state := op.NewState()
		return op.Run(state, tStart, tEnd)

	case dag.UnaryOp:
		parent := w.blocks[n.Parents()[0]]
		return op.Run(parent)

	case dag.BinaryAccumulatingOp:
		x := w.blocks[n.Parents()[0]]
		y := w.blocks[n.Parents()[1]]
		return w.runBinaryAccumulating(op, x, y)

	case dag.BinaryAlignedOp:
		x := w.blocks[n.Parents()[0]]
		y := w.blocks[n.Parents()[1]]
		return w.runBinaryAligned(op, x, y)

	case dag.AccumulatingOp:
		parent := w.blocks[n.Parents()[0]]
		return w.runAccumulating(op, parent)

	default:
		return nil, fmt.Errorf("eval: node %d: operator %T implements no known kind: %w",
			n.ID(), op, core.ErrInternalInvariantViolation)
	}
}

func (w *walker) runBinaryAligned(op dag.BinaryAlignedOp, x, y *core.Block) (*core.Block, error) {
	state := align.NewState(op.Initial())
	merged := align.Merge(x, y, op.Alignment(), state)

	times := merged.Times()
	values := merged.Values()
	bb := core.NewBlockBuilder(len(times))
	for i, v := range values {
		cv, err := op.Combine(align.PairX(v), align.PairY(v))
		if err != nil {
			return nil, err
		}
		bb.Push(times[i], cv)
	}
	return bb.Build(), nil
}

func (w *walker) runAccumulating(op dag.AccumulatingOp, parent *core.Block) (*core.Block, error) {
	times := parent.Times()
	values := parent.Values()
	args := make([][]any, len(values))
	for i, v := range values {
		args[i] = []any{v}
	}
	return runAccumCore(times, args, op.Wrap(), op.Combine(), op.Facets(), op.Kind(),
		op.Window(), op.WindowMillis(), op.EmitEarly())
}

func (w *walker) runBinaryAccumulating(op dag.BinaryAccumulatingOp, x, y *core.Block) (*core.Block, error) {
	state := align.NewState(op.Initial())
	merged := align.Merge(x, y, op.Alignment(), state)

	times := merged.Times()
	values := merged.Values()
	args := make([][]any, len(values))
	for i, v := range values {
		args[i] = []any{align.PairX(v), align.PairY(v)}
	}
	return runAccumCore(times, args, op.Wrap(), op.Combine(), op.Facets(), op.Kind(),
		op.Window(), op.WindowMillis(), op.EmitEarly())
}
