package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsdag/align"
	"github.com/katalvlaran/tsdag/core"
	"github.com/katalvlaran/tsdag/dag"
	"github.com/katalvlaran/tsdag/eval"
	"github.com/katalvlaran/tsdag/ops"
)

func TestCoalign_SingleInputUnchanged(t *testing.T) {
	x := ops.BlockSource(mkBlock(t, []core.Timestamp{1, 2}, []float64{1, 2}))
	out, err := ops.Coalign([]*dag.Node{x}, align.UNION)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Same(t, x, out[0])
}

func TestCoalign_RejectsEmptyInputs(t *testing.T) {
	_, err := ops.Coalign(nil, align.UNION)
	assert.Error(t, err)
}

// TestCoalign_OrderIndependentStructuralSharing exercises spec.md §4.7's
// stable object-id canonicalisation: two Coalign calls over the same node
// set, listed in different caller order, must share the same internal
// joint-schedule structure — observable here as the output node for a
// given original input being the same *dag.Node regardless of call order.
func TestCoalign_OrderIndependentStructuralSharing(t *testing.T) {
	a := ops.BlockSource(mkBlock(t, []core.Timestamp{1, 3}, []float64{1, 3}))
	b := ops.BlockSource(mkBlock(t, []core.Timestamp{2, 4}, []float64{2, 4}))
	c := ops.BlockSource(mkBlock(t, []core.Timestamp{5}, []float64{5}))

	out1, err := ops.Coalign([]*dag.Node{a, b, c}, align.UNION)
	require.NoError(t, err)
	out2, err := ops.Coalign([]*dag.Node{c, a, b}, align.UNION)
	require.NoError(t, err)

	require.Len(t, out1, 3)
	require.Len(t, out2, 3)

	byInput1 := map[*dag.Node]*dag.Node{a: out1[0], b: out1[1], c: out1[2]}
	byInput2 := map[*dag.Node]*dag.Node{c: out2[0], a: out2[1], b: out2[2]}

	assert.Same(t, byInput1[a], byInput2[a])
	assert.Same(t, byInput1[b], byInput2[b])
	assert.Same(t, byInput1[c], byInput2[c])
}

func TestCoalign_TwoInputsProjectOntoJointSchedule(t *testing.T) {
	a := ops.BlockSource(mkBlock(t, []core.Timestamp{1, 3}, []float64{10, 30}))
	b := ops.BlockSource(mkBlock(t, []core.Timestamp{2, 3}, []float64{20, 31}))

	out, err := ops.Coalign([]*dag.Node{a, b}, align.UNION)
	require.NoError(t, err)
	require.Len(t, out, 2)

	sum, err := ops.Add(out[0], out[1])
	require.NoError(t, err)
	result, err := eval.Evaluate(sum, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, []core.Timestamp{2, 3}, result.Times())
}
