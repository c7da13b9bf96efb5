package ops

import (
	"sort"

	"github.com/katalvlaran/tsdag/align"
	"github.com/katalvlaran/tsdag/dag"
)

// scheduleJoinOp merges two parents' tick schedules under an alignment,
// discarding both sides' values — Coalign uses it purely to build the joint
// tick schedule (a Node whose Times() is the fold's output), not for any
// emitted value.
type scheduleJoinOp struct {
	alignment align.Alignment
}

func (o *scheduleJoinOp) Key() string               { return "schedule_join|align=" + o.alignment.String() }
func (o *scheduleJoinOp) ValueType() string          { return "schedule" }
func (o *scheduleJoinOp) Alignment() align.Alignment { return o.alignment }
func (o *scheduleJoinOp) Initial() *align.Initial    { return nil }
func (o *scheduleJoinOp) Combine(_, _ any) (any, error) { return struct{}{}, nil }

func scheduleJoin(acc, next *dag.Node, alignment align.Alignment) (*dag.Node, error) {
	return dag.Default().Obtain([]*dag.Node{acc, next}, &scheduleJoinOp{alignment: alignment})
}

// projectOp re-samples x onto schedule's tick times: it emits exactly when
// schedule ticks (the LEFT-driving side), carrying x's most recently
// latched value.
type projectOp struct{}

func (projectOp) Key() string                  { return "project" }
func (projectOp) ValueType() string            { return "any" }
func (projectOp) Alignment() align.Alignment   { return align.LEFT }
func (projectOp) Initial() *align.Initial      { return nil }
func (projectOp) Combine(_, x any) (any, error) { return x, nil }

func projectOnto(schedule, x *dag.Node) (*dag.Node, error) {
	return dag.Default().Obtain([]*dag.Node{schedule, x}, projectOp{})
}

// Coalign aligns all of xs to a common tick schedule (spec.md §4.7):
//
//   - k == 1: returns the sole input unchanged.
//   - otherwise: canonicalises xs by stable object-id order (except under
//     LEFT, where xs[0] stays fixed and only the remainder is sorted),
//     folds the canonical order pairwise with scheduleJoin to build the
//     joint schedule, then projects each ORIGINAL input (in its original
//     order) onto that joint schedule.
//
// Canonicalising before the fold (rather than folding in caller order)
// ensures repeated Coalign calls over the same node set — regardless of
// the order the caller lists them in — produce the same joint-schedule
// node, maximising structural sharing via the identity map.
func Coalign(xs []*dag.Node, alignment align.Alignment) ([]*dag.Node, error) {
	if len(xs) == 0 {
		return nil, invalidArg("Coalign: requires at least one input")
	}
	if len(xs) == 1 {
		return xs, nil
	}

	canonical := canonicalOrder(xs, alignment)

	acc := canonical[0]
	var err error
	for i := 1; i < len(canonical); i++ {
		acc, err = scheduleJoin(acc, canonical[i], alignment)
		if err != nil {
			return nil, err
		}
	}

	out := make([]*dag.Node, len(xs))
	for i, x := range xs {
		out[i], err = projectOnto(acc, x)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func canonicalOrder(xs []*dag.Node, alignment align.Alignment) []*dag.Node {
	out := make([]*dag.Node, len(xs))
	copy(out, xs)

	if alignment == align.LEFT {
		rest := out[1:]
		sort.Slice(rest, func(i, j int) bool { return rest[i].ID() < rest[j].ID() })
		return out
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}
