package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsdag/core"
	"github.com/katalvlaran/tsdag/eval"
	"github.com/katalvlaran/tsdag/ops"
)

func TestThrottle_KeepsEveryNthTick(t *testing.T) {
	x := ops.BlockSource(mkBlock(t, []core.Timestamp{1, 2, 3, 4, 5, 6, 7}, []float64{1, 2, 3, 4, 5, 6, 7}))
	th, err := ops.Throttle(x, 3)
	require.NoError(t, err)

	out, err := eval.Evaluate(th, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []core.Timestamp{1, 4, 7}, out.Times())
	assert.Equal(t, []float64{1, 4, 7}, mkFloats(out))
}

func TestThrottle_OneIsIdentity(t *testing.T) {
	x := ops.BlockSource(mkBlock(t, []core.Timestamp{1, 2, 3}, []float64{1, 2, 3}))
	th, err := ops.Throttle(x, 1)
	require.NoError(t, err)
	assert.Same(t, x, th)
}

func TestThrottle_RejectsNonPositiveN(t *testing.T) {
	x := ops.Constant(1.0)
	_, err := ops.Throttle(x, 0)
	assert.Error(t, err)
}
