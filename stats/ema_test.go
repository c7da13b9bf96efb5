package stats_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsdag/core"
	"github.com/katalvlaran/tsdag/stats"
)

func TestEMA_RejectsOutOfRangeAlpha(t *testing.T) {
	_, err := stats.NewEMA(0)
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))

	_, err = stats.NewEMA(1)
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))

	_, err = stats.NewEMA(-0.5)
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
}

func TestEMA_NoValueBeforeFirstUpdate(t *testing.T) {
	e, err := stats.NewEMA(0.5)
	require.NoError(t, err)
	_, ok := e.Extract()
	assert.False(t, ok)
}

func TestEMA_FirstUpdateReturnsExactValue(t *testing.T) {
	e, err := stats.NewEMA(0.3)
	require.NoError(t, err)
	e.Update(10)
	v, ok := e.Extract()
	require.True(t, ok)
	assert.InDelta(t, 10.0, v, 1e-12)
}

// TestEMA_ConvergesTowardConstantInput checks that, fed a constant stream,
// the bias-corrected EMA converges to that constant.
func TestEMA_ConvergesTowardConstantInput(t *testing.T) {
	e, err := stats.NewEMA(0.2)
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		e.Update(42)
	}
	v, ok := e.Extract()
	require.True(t, ok)
	assert.InDelta(t, 42.0, v, 1e-6)
}

func TestEMA_BiasCorrectionMatchesClosedForm(t *testing.T) {
	e, err := stats.NewEMA(0.4)
	require.NoError(t, err)
	xs := []float64{5, 7, 3, 9}
	for _, x := range xs {
		e.Update(x)
	}
	v, ok := e.Extract()
	require.True(t, ok)

	// Closed form: weightedSum = sum_{k=0}^{n-1} (1-a)^k * x_{n-k}
	// weightedCount = sum_{k=0}^{n-1} (1-a)^k
	alpha := 0.4
	var ws, wc float64
	n := len(xs)
	for k := 0; k < n; k++ {
		x := xs[n-1-k]
		w := math.Pow(1-alpha, float64(k))
		ws += w * x
		wc += w
	}
	assert.InDelta(t, ws/wc, v, 1e-9)
}

func TestEMAFromHalfLife_RejectsTooSmallWEff(t *testing.T) {
	_, err := stats.NewEMAFromHalfLife(1)
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
}

func TestEMAFromHalfLife_DerivesExpectedAlpha(t *testing.T) {
	e, err := stats.NewEMAFromHalfLife(9) // alpha = 2/10 = 0.2
	require.NoError(t, err)
	assert.InDelta(t, 0.2, e.Alpha, 1e-12)
}

func TestEMA_CloneIsIndependent(t *testing.T) {
	e, err := stats.NewEMA(0.5)
	require.NoError(t, err)
	e.Update(1)
	c := e.Clone()
	e.Update(2)

	ev, _ := e.Extract()
	cv, _ := c.Extract()
	assert.NotEqual(t, ev, cv)
}
