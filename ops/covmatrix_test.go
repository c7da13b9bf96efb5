package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsdag/core"
	"github.com/katalvlaran/tsdag/eval"
	"github.com/katalvlaran/tsdag/matrix"
	"github.com/katalvlaran/tsdag/ops"
	"github.com/katalvlaran/tsdag/stats"
)

func mkVectorBlock(t *testing.T, times []core.Timestamp, vecs []stats.Vector) *core.Block {
	t.Helper()
	anys := make([]any, len(vecs))
	for i, v := range vecs {
		anys[i] = v
	}
	b, err := core.NewBlock(times, anys)
	require.NoError(t, err)
	return b
}

func TestCovMatrix_DiagonalAgreesWithVariance(t *testing.T) {
	vecs := []stats.Vector{{2, 10}, {4, 20}, {6, 30}}
	x := ops.BlockSource(mkVectorBlock(t, []core.Timestamp{1, 2, 3}, vecs))

	cm, err := ops.CovMatrix(x, true, ops.Inception())
	require.NoError(t, err)

	out, err := eval.Evaluate(cm, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 2, out.Len())

	last, _ := out.Last()
	dense := last.Value.(*matrix.Dense)
	d00, err := dense.At(0, 0)
	require.NoError(t, err)
	d11, err := dense.At(1, 1)
	require.NoError(t, err)

	// Column 0 is {2,4,6}: sample variance 4. Column 1 is {10,20,30}:
	// sample variance 100.
	assert.InDelta(t, 4.0, d00, 1e-9)
	assert.InDelta(t, 100.0, d11, 1e-9)
}

func TestCovMatrix_ShouldTickRequiresTwoObservations(t *testing.T) {
	vecs := []stats.Vector{{1, 2}}
	x := ops.BlockSource(mkVectorBlock(t, []core.Timestamp{1}, vecs))

	cm, err := ops.CovMatrix(x, true, ops.Inception())
	require.NoError(t, err)

	out, err := eval.Evaluate(cm, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}

func TestCovMatrix_DimensionDriftSurfacesShapeMismatch(t *testing.T) {
	vecs := []stats.Vector{{1, 2}, {1, 2, 3}}
	x := ops.BlockSource(mkVectorBlock(t, []core.Timestamp{1, 2}, vecs))

	cm, err := ops.CovMatrix(x, true, ops.Inception())
	require.NoError(t, err)

	_, err = eval.Evaluate(cm, 1, 10)
	assert.ErrorIs(t, err, core.ErrShapeMismatch)
}
