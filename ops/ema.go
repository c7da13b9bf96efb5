package ops

import (
	"fmt"

	"github.com/katalvlaran/tsdag/core"
	"github.com/katalvlaran/tsdag/dag"
	"github.com/katalvlaran/tsdag/stats"
)

// emaOp is a plain dag.UnaryOp rather than a dag.AccumulatingOp: EMA is not
// window-associative (spec.md §4.5 "not window-associative"), so it cannot
// be expressed as a Wrap/Combine/Extract triple — it carries its own
// {weighted_sum, weighted_count} state, rebuilt fresh on every Run call
// (Run receives the whole parent Block in one shot, so a single-call local
// variable already satisfies "state doesn't survive across Evaluate calls").
type emaOp struct {
	alpha float64
}

func (o *emaOp) Key() string       { return fmt.Sprintf("ema|alpha=%g", o.alpha) }
func (o *emaOp) ValueType() string { return "float64" }
func (o *emaOp) Run(parent *core.Block) (*core.Block, error) {
	state, err := stats.NewEMA(o.alpha)
	if err != nil {
		return nil, err
	}
	times := parent.Times()
	values := parent.Values()
	bb := core.NewBlockBuilder(len(times))
	for i, v := range values {
		f, err := toFloat(v)
		if err != nil {
			return nil, err
		}
		state.Update(f)
		if ev, ok := state.Extract(); ok {
			bb.Push(times[i], ev)
		}
	}
	return bb.Build(), nil
}

// EMA constructs an exponential-moving-average node with decay constant
// alpha in (0, 1).
func EMA(x *dag.Node, alpha float64) (*dag.Node, error) {
	if _, err := stats.NewEMA(alpha); err != nil {
		return nil, err
	}
	return dag.Default().Obtain([]*dag.Node{x}, &emaOp{alpha: alpha})
}

// EMAFromHalfLife constructs an EMA node deriving alpha from an effective
// window wEff (> 1) via alpha = 2/(wEff+1).
func EMAFromHalfLife(x *dag.Node, wEff float64) (*dag.Node, error) {
	tmp, err := stats.NewEMAFromHalfLife(wEff)
	if err != nil {
		return nil, err
	}
	return EMA(x, tmp.Alpha)
}
