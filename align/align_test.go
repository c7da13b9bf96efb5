package align_test

import (
	"testing"

	"github.com/katalvlaran/tsdag/align"
	"github.com/katalvlaran/tsdag/core"
	"github.com/stretchr/testify/assert"
)

func blk(pairs ...struct {
	t core.Timestamp
	v any
}) *core.Block {
	times := make([]core.Timestamp, len(pairs))
	values := make([]any, len(pairs))
	for i, p := range pairs {
		times[i] = p.t
		values[i] = p.v
	}
	return core.NewBlockUnchecked(times, values)
}

func pt(t core.Timestamp, v any) struct {
	t core.Timestamp
	v any
} {
	return struct {
		t core.Timestamp
		v any
	}{t, v}
}

func fixtures() (*core.Block, *core.Block) {
	x := blk(pt(1, 1.0), pt(2, 2.0), pt(3, 3.0), pt(4, 4.0))
	y := blk(pt(2, 5.0), pt(3, 6.0), pt(5, 8.0))
	return x, y
}

func TestMerge_Union(t *testing.T) {
	x, y := fixtures()
	out := align.Merge(x, y, align.UNION, align.NewState(nil))
	require := []core.Timestamp{2, 3, 4, 5}
	assert.Equal(t, require, out.Times())
	assert.Equal(t, 2.0, align.PairX(out.At(0).Value))
	assert.Equal(t, 5.0, align.PairY(out.At(0).Value))
	// At t=4, y has not ticked since t=3 (value 6.0) should be latched.
	assert.Equal(t, 4.0, align.PairX(out.At(2).Value))
	assert.Equal(t, 6.0, align.PairY(out.At(2).Value))
	// At t=5, x latched at 4.0
	assert.Equal(t, 4.0, align.PairX(out.At(3).Value))
	assert.Equal(t, 8.0, align.PairY(out.At(3).Value))
}

func TestMerge_Intersect(t *testing.T) {
	x, y := fixtures()
	out := align.Merge(x, y, align.INTERSECT, align.NewState(nil))
	assert.Equal(t, []core.Timestamp{2, 3}, out.Times())
}

func TestMerge_Left(t *testing.T) {
	x, y := fixtures()
	out := align.Merge(x, y, align.LEFT, align.NewState(nil))
	assert.Equal(t, []core.Timestamp{2, 3, 4}, out.Times())
}

func TestMerge_LeftSuppressesUntilYSeen(t *testing.T) {
	x := blk(pt(1, 1.0), pt(2, 2.0))
	y := blk(pt(2, 9.0))
	out := align.Merge(x, y, align.LEFT, align.NewState(nil))
	// x ticks at t=1 before y has ticked: suppressed.
	assert.Equal(t, []core.Timestamp{2}, out.Times())
}

func TestMerge_InitialValuesBootstrap(t *testing.T) {
	x := blk(pt(1, 1.0))
	y := blk(pt(2, 2.0))
	state := align.NewState(&align.Initial{X: 0.0, HasX: true, Y: 0.0, HasY: true})
	out := align.Merge(x, y, align.UNION, state)
	// Both sides are primed from the start, so x's tick at t=1 emits immediately.
	assert.Equal(t, []core.Timestamp{1, 2}, out.Times())
}

func TestIntersectSubsetOfUnion(t *testing.T) {
	x, y := fixtures()
	union := align.Merge(x, y, align.UNION, align.NewState(nil))
	inter := align.Merge(x, y, align.INTERSECT, align.NewState(nil))
	unionSet := make(map[core.Timestamp]bool)
	for _, tm := range union.Times() {
		unionSet[tm] = true
	}
	for _, tm := range inter.Times() {
		assert.True(t, unionSet[tm])
	}
}
