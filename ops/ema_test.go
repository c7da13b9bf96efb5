package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsdag/core"
	"github.com/katalvlaran/tsdag/eval"
	"github.com/katalvlaran/tsdag/ops"
)

func TestEMA_TicksOnEveryInputKnot(t *testing.T) {
	x := ops.BlockSource(mkBlock(t, []core.Timestamp{1, 2, 3, 4}, []float64{1, 1, 1, 1}))
	e, err := ops.EMA(x, 0.5)
	require.NoError(t, err)

	out, err := eval.Evaluate(e, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []core.Timestamp{1, 2, 3, 4}, out.Times())
	for _, v := range mkFloats(out) {
		assert.InDelta(t, 1.0, v, 1e-9)
	}
}

func TestEMA_RejectsOutOfRangeAlpha(t *testing.T) {
	x := ops.Constant(1.0)
	_, err := ops.EMA(x, 1.5)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = ops.EMA(x, 0)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestEMAFromHalfLife_DerivesAlpha(t *testing.T) {
	x := ops.BlockSource(mkBlock(t, []core.Timestamp{1, 2}, []float64{5, 5}))
	e, err := ops.EMAFromHalfLife(x, 4.0)
	require.NoError(t, err)

	out, err := eval.Evaluate(e, 1, 10)
	require.NoError(t, err)
	for _, v := range mkFloats(out) {
		assert.InDelta(t, 5.0, v, 1e-9)
	}
}

func TestEMAFromHalfLife_RejectsTooSmallWEff(t *testing.T) {
	x := ops.Constant(1.0)
	_, err := ops.EMAFromHalfLife(x, 1.0)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

// TestEMA_NotWindowAssociative reproduces spec.md's note that EMA state
// doesn't survive across separate Evaluate calls: evaluating the full
// history in one call differs from evaluating it in two halves and
// resuming, because the second half starts from a fresh zero state.
func TestEMA_NotWindowAssociative(t *testing.T) {
	x := ops.BlockSource(mkBlock(t, []core.Timestamp{1, 2, 3, 4}, []float64{10, 0, 10, 0}))
	e, err := ops.EMA(x, 0.5)
	require.NoError(t, err)

	full, err := eval.Evaluate(e, 1, 10)
	require.NoError(t, err)
	secondHalfOnly, err := eval.Evaluate(e, 3, 10)
	require.NoError(t, err)

	fullVals := mkFloats(full)
	halfVals := mkFloats(secondHalfOnly)
	require.Len(t, fullVals, 4)
	require.Len(t, halfVals, 2)
	assert.NotEqual(t, fullVals[2], halfVals[0])
}
