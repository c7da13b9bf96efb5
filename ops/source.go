package ops

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tsdag/core"
	"github.com/katalvlaran/tsdag/dag"
)

// constantOp is a zero-parent operator that always yields its single value
// at tStart, regardless of the requested interval — the degenerate source
// every constant-folding constructor recognises via constantValuer.
type constantOp struct {
	value any
}

func (o *constantOp) Key() string          { return fmt.Sprintf("constant|%v", o.value) }
func (o *constantOp) ValueType() string    { return fmt.Sprintf("%T", o.value) }
func (o *constantOp) ConstantValue() any   { return o.value }
func (o *constantOp) NewState() any        { return nil }
func (o *constantOp) Run(_ any, tStart, _ core.Timestamp) (*core.Block, error) {
	bb := core.NewBlockBuilder(1)
	bb.Push(tStart, o.value)
	return bb.Build(), nil
}

// Constant constructs (or returns the already-interned) constant source
// node for v. Two calls with an equal v always return the same *dag.Node
// (spec.md §8 "Interning idempotence").
func Constant(v any) *dag.Node {
	n, _ := dag.Default().Obtain(nil, &constantOp{value: v})
	return n
}

// blockSourceOp replays a pre-materialised Block, clipped to the requested
// interval — the engine's boundary type for externally-supplied data (file
// readers, test fixtures) that spec.md §6 treats as an external collaborator.
type blockSourceOp struct {
	block *core.Block
}

func (o *blockSourceOp) Key() string       { return fmt.Sprintf("blocksource|%p", o.block) }
func (o *blockSourceOp) ValueType() string { return "any" }
func (o *blockSourceOp) NewState() any     { return nil }
func (o *blockSourceOp) Run(_ any, tStart, tEnd core.Timestamp) (*core.Block, error) {
	times := o.block.Times()
	values := o.block.Values()
	bb := core.NewBlockBuilder(len(times))
	for i, t := range times {
		if t >= tStart && t < tEnd {
			bb.Push(t, values[i])
		}
	}
	return bb.Build(), nil
}

// BlockSource constructs a source node that replays block, clipped to
// whatever interval a later Evaluate call requests.
func BlockSource(block *core.Block) *dag.Node {
	n, _ := dag.Default().Obtain(nil, &blockSourceOp{block: block})
	return n
}

// iterDatesOp is a deterministic fixed-step source: the non-random
// counterpart to Pulse, used where a predictable schedule is required.
type iterDatesOp struct {
	start core.Timestamp
	step  int64
}

func (o *iterDatesOp) Key() string       { return fmt.Sprintf("iterdates|start=%d|step=%d", o.start, o.step) }
func (o *iterDatesOp) ValueType() string { return "float64" }
func (o *iterDatesOp) NewState() any     { return nil }
func (o *iterDatesOp) Run(_ any, tStart, tEnd core.Timestamp) (*core.Block, error) {
	bb := core.NewBlockBuilder(16)
	for t := o.start; t < tEnd; t += core.Timestamp(o.step) {
		if t >= tStart {
			bb.Push(t, float64(t))
		}
	}
	return bb.Build(), nil
}

// IterDates constructs a deterministic source that ticks every stepMillis
// milliseconds starting at start, with value equal to the tick's own
// timestamp (as float64) — a predictable schedule generator for tests and
// feature construction that don't need Pulse's randomness.
func IterDates(start core.Timestamp, stepMillis int64) (*dag.Node, error) {
	if stepMillis <= 0 {
		return nil, invalidArg("IterDates: stepMillis=%d must be > 0", stepMillis)
	}
	return dag.Default().Obtain(nil, &iterDatesOp{start: start, step: stepMillis})
}

// PulseFn produces a tick's value given a source of randomness, mirroring
// the teacher's builder.WeightFn(rng *rand.Rand) float64 shape — it must be
// deterministic for a given RNG state.
type PulseFn func(rng *rand.Rand) float64

// DefaultPulseFn samples uniformly from [0, 1).
func DefaultPulseFn(rng *rand.Rand) float64 { return rng.Float64() }

// pulseOp is a constant-rate random source. Its identity key is derived
// from the seed, never from the live *rand.Rand (spec.md §4.1/§9 RNG
// discipline) — NewState clones a fresh *rand.Rand from that seed for every
// evaluation, so repeated Evaluate calls with the same interval are
// bit-identical and the operator itself never mutates shared RNG state.
type pulseOp struct {
	start    core.Timestamp
	interval int64
	seed     int64
	fn       PulseFn
}

func (o *pulseOp) Key() string {
	return fmt.Sprintf("pulse|start=%d|interval=%d|seed=%d", o.start, o.interval, o.seed)
}
func (o *pulseOp) ValueType() string { return "float64" }
func (o *pulseOp) NewState() any     { return rand.New(rand.NewSource(o.seed)) }
func (o *pulseOp) Run(state any, tStart, tEnd core.Timestamp) (*core.Block, error) {
	rng := state.(*rand.Rand)
	bb := core.NewBlockBuilder(16)
	for t := o.start; t < tEnd; t += core.Timestamp(o.interval) {
		v := o.fn(rng) // always sample, preserving the schedule's RNG draw sequence regardless of tStart clipping
		if t >= tStart {
			bb.Push(t, v)
		}
	}
	return bb.Build(), nil
}

// Pulse constructs a constant-rate random source node ticking every
// intervalMillis milliseconds starting at start, sampling each tick's value
// via fn (DefaultPulseFn if nil) from an RNG deterministically seeded by
// seed.
func Pulse(start core.Timestamp, intervalMillis, seed int64, fn PulseFn) (*dag.Node, error) {
	if intervalMillis <= 0 {
		return nil, invalidArg("Pulse: intervalMillis=%d must be > 0", intervalMillis)
	}
	if fn == nil {
		fn = DefaultPulseFn
	}
	return dag.Default().Obtain(nil, &pulseOp{start: start, interval: intervalMillis, seed: seed, fn: fn})
}
