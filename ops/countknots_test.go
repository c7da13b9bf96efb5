package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsdag/core"
	"github.com/katalvlaran/tsdag/eval"
	"github.com/katalvlaran/tsdag/ops"
)

func TestCountKnots_CountsEveryTick(t *testing.T) {
	x := ops.BlockSource(mkBlock(t, []core.Timestamp{1, 2, 3, 4}, []float64{10, 20, 30, 40}))
	cnt, err := ops.CountKnots(x)
	require.NoError(t, err)

	out, err := eval.Evaluate(cnt, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []core.Timestamp{1, 2, 3, 4}, out.Times())
	assert.Equal(t, []float64{1, 2, 3, 4}, mkFloats(out))
}

func TestCountKnots_EmptyYieldsEmpty(t *testing.T) {
	x := ops.BlockSource(core.EmptyBlock)
	cnt, err := ops.CountKnots(x)
	require.NoError(t, err)

	out, err := eval.Evaluate(cnt, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}
