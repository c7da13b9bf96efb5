package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsdag/stats"
)

// TestMean_MatchesS6Scenario reproduces spec.md's S6 literal scenario: mean
// over the stream [2, 4, 6] ticks [2.0, 3.0, 4.0].
func TestMean_MatchesS6Scenario(t *testing.T) {
	data := stats.MeanWrap(2.0)
	got, err := stats.MeanExtract(data)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	data, err = stats.MeanCombine(data, stats.MeanWrap(4.0))
	require.NoError(t, err)
	got, err = stats.MeanExtract(data)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	data, err = stats.MeanCombine(data, stats.MeanWrap(6.0))
	require.NoError(t, err)
	got, err = stats.MeanExtract(data)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)
}

func TestMean_AssociativeRegardlessOfFoldOrder(t *testing.T) {
	xs := []float64{2, 4, 6, 8, 10}

	var left any = stats.MeanWrap(xs[0])
	for _, x := range xs[1:] {
		var err error
		left, err = stats.MeanCombine(left, stats.MeanWrap(x))
		require.NoError(t, err)
	}

	// Combine in a different association: ((a+b)+(c+(d+e)))
	ab, err := stats.MeanCombine(stats.MeanWrap(xs[0]), stats.MeanWrap(xs[1]))
	require.NoError(t, err)
	de, err := stats.MeanCombine(stats.MeanWrap(xs[3]), stats.MeanWrap(xs[4]))
	require.NoError(t, err)
	cde, err := stats.MeanCombine(stats.MeanWrap(xs[2]), de)
	require.NoError(t, err)
	right, err := stats.MeanCombine(ab, cde)
	require.NoError(t, err)

	lv, err := stats.MeanExtract(left)
	require.NoError(t, err)
	rv, err := stats.MeanExtract(right)
	require.NoError(t, err)
	assert.InDelta(t, lv.(float64), rv.(float64), 1e-9)
}
