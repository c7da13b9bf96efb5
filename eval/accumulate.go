package eval

import (
	"github.com/katalvlaran/tsdag/core"
	"github.com/katalvlaran/tsdag/dag"
	"github.com/katalvlaran/tsdag/opframework"
)

// runAccumCore drives `args` (one raw-argument slice per knot, in ascending
// time order) through whichever opframework wrapper `kind` selects,
// producing the output Block. Shared by AccumulatingOp dispatch (args[i] =
// []any{v}) and BinaryAccumulatingOp dispatch (args[i] = []any{x, y}) in
// eval.go — both reduce to "wrap each event, fold through the accumulator,
// apply the emission rule" over an arbitrary-arity Wrap.
func runAccumCore(
	times []core.Timestamp,
	args [][]any,
	wrap opframework.Wrap,
	combine opframework.Combine,
	facets opframework.Facets,
	kind dag.AccumKind,
	window int,
	windowMillis int64,
	emitEarly bool,
) (*core.Block, error) {
	bb := core.NewBlockBuilder(len(times))

	switch kind {
	case dag.InceptionAccum:
		inc := opframework.NewInception(combine, facets)
		for i, a := range args {
			m, err := inc.Step(wrap(a...))
			if err != nil {
				return nil, err
			}
			if v, ok := m.Value(); ok {
				bb.Push(times[i], v)
			}
		}

	case dag.FixedWindowAccum:
		fw, err := opframework.NewFixedWindow(window, combine)
		if err != nil {
			return nil, err
		}
		for i, a := range args {
			if err := fw.Update(times[i], wrap(a...)); err != nil {
				return nil, err
			}
			val, has := fw.Value()
			m, err := opframework.EmitWindow(val, has, fw.Full(), emitEarly, facets)
			if err != nil {
				return nil, err
			}
			if v, ok := m.Value(); ok {
				bb.Push(times[i], v)
			}
		}

	case dag.TimeWindowAccum:
		tw, err := opframework.NewTimeWindow(windowMillis, combine)
		if err != nil {
			return nil, err
		}
		for i, a := range args {
			if err := tw.Update(times[i], wrap(a...)); err != nil {
				return nil, err
			}
			val, has := tw.Value()
			m, err := opframework.EmitWindow(val, has, tw.Full(), emitEarly, facets)
			if err != nil {
				return nil, err
			}
			if v, ok := m.Value(); ok {
				bb.Push(times[i], v)
			}
		}
	}

	return bb.Build(), nil
}
