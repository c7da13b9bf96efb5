package stats

import (
	"fmt"

	"github.com/katalvlaran/tsdag/core"
)

// EMAState holds an exponential moving average's mutable state. EMA is
// deliberately NOT expressed as a Wrap/Combine/Extract triple: unlike
// Mean/Var/Cov it is not associative (its update depends on arrival order
// and on a single decay constant, not on combining two sub-windows), so it
// is modelled as its own stateful combiner plugged directly into a node's
// evaluation step rather than into opframework's assoc-queue machinery.
//
// Update formula is the bias-corrected variant (spec.md §4.5 / Wikipedia
// "exponential moving average", correcting for the n=1 startup transient):
//
//	weightedSum   := x + (1-alpha)*weightedSum
//	weightedCount := 1 + (1-alpha)*weightedCount
//	ema           := weightedSum / weightedCount
type EMAState struct {
	Alpha         float64
	WeightedSum   float64
	WeightedCount float64
}

// NewEMA constructs an EMAState for the given decay constant alpha, which
// must lie in (0, 1).
func NewEMA(alpha float64) (*EMAState, error) {
	if alpha <= 0 || alpha >= 1 {
		return nil, fmt.Errorf("stats.NewEMA(%g): %w", alpha, core.ErrInvalidArgument)
	}
	return &EMAState{Alpha: alpha}, nil
}

// NewEMAFromHalfLife derives alpha from an effective window wEff (> 1),
// using alpha = 2/(wEff+1) — the conventional span-to-decay conversion.
func NewEMAFromHalfLife(wEff float64) (*EMAState, error) {
	if wEff <= 1 {
		return nil, fmt.Errorf("stats.NewEMAFromHalfLife(%g): %w", wEff, core.ErrInvalidArgument)
	}
	return NewEMA(2 / (wEff + 1))
}

// Update folds one new observation into the running average.
func (e *EMAState) Update(x float64) {
	e.WeightedSum = x + (1-e.Alpha)*e.WeightedSum
	e.WeightedCount = 1 + (1-e.Alpha)*e.WeightedCount
}

// Extract returns the current EMA value. Defined as zero before the first
// Update (WeightedCount is 0), matching AlwaysTicks semantics expected of
// an Inception-style node — callers gate emission on having seen one value.
func (e *EMAState) Extract() (float64, bool) {
	if e.WeightedCount == 0 {
		return 0, false
	}
	return e.WeightedSum / e.WeightedCount, true
}

// Clone returns an independent copy of e; later Updates to either copy do
// not affect the other.
func (e *EMAState) Clone() *EMAState {
	c := *e
	return &c
}
