// Package ops provides the node constructors spec.md §4.1/§4.7/§6 names:
// sources (constant, block, pulse, iterdates), arithmetic, alignment-aware
// transforms (coalign, first_knot, active_count, throttle, count_knots,
// lag), and the statistical node wrappers (mean, var, cov, cor, EMA,
// cov-matrix, history) built atop stats' combiners and opframework's
// accumulators. Every constructor goes through dag.Default().Obtain so
// structurally-equal calls return the same interned *dag.Node.
package ops

import (
	"fmt"

	"github.com/katalvlaran/tsdag/core"
	"github.com/katalvlaran/tsdag/dag"
)

// constantValuer is implemented by source operators that always produce a
// single constant value regardless of the requested interval — consulted by
// arithmetic/lag/mean/sum/prod constructors for constant propagation
// (spec.md §4.1).
type constantValuer interface {
	ConstantValue() any
}

// asConstant reports whether n's operator is a constant source, and its
// value if so.
func asConstant(n *dag.Node) (any, bool) {
	if cv, ok := n.Op().(constantValuer); ok {
		return cv.ConstantValue(), true
	}
	return nil, false
}

// toNode lifts a scalar or *dag.Node into a *dag.Node, lifting scalars to a
// Constant node (spec.md §6: "scalars lifted to constant nodes").
func toNode(v any) *dag.Node {
	if n, ok := v.(*dag.Node); ok {
		return n
	}
	return Constant(v)
}

// toFloat type-asserts a node value to float64, wrapping a mismatch as
// core.ErrTypeMismatch.
func toFloat(v any) (float64, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("ops: expected float64, got %T: %w", v, core.ErrTypeMismatch)
	}
	return f, nil
}

func invalidArg(format string, args ...any) error {
	return fmt.Errorf("ops: "+format+": %w", append(args, core.ErrInvalidArgument)...)
}
