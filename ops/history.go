package ops

import (
	"fmt"

	"github.com/katalvlaran/tsdag/dag"
	"github.com/katalvlaran/tsdag/opframework"
	"github.com/katalvlaran/tsdag/stats"
)

// History constructs a node exposing the last n values of x as a
// stats.Vector snapshot — a feature-construction building block the
// distilled spec mentions ("transformation constructors... history") but
// never details (SPEC_FULL.md §9). Built on a FixedWindow whose Combine
// appends-and-truncates rather than folding a scalar statistic, and whose
// Extract returns a defensive copy of the retained window.
func History(x *dag.Node, n int) (*dag.Node, error) {
	if n < 1 {
		return nil, invalidArg("History: n=%d must be >= 1", n)
	}
	wrap := func(xs ...any) any {
		f, _ := xs[0].(float64)
		return stats.Vector{f}
	}
	combine := func(a, b any) (any, error) {
		av, bv := a.(stats.Vector), b.(stats.Vector)
		out := make(stats.Vector, 0, len(av)+len(bv))
		out = append(out, av...)
		out = append(out, bv...)
		if len(out) > n {
			out = out[len(out)-n:]
		}
		return out, nil
	}
	op := &unaryAccumOp{
		name: fmt.Sprintf("history|n=%d", n),
		spec: FixedWindowOf(n, true),
		facets: opframework.Facets{
			AlwaysTicks: true,
			Extract:     func(d any) (any, error) { return d.(stats.Vector).Clone(), nil },
		},
		wrap:      wrap,
		combine:   combine,
		valueType: "vector",
	}
	return dag.Default().Obtain([]*dag.Node{x}, op)
}
