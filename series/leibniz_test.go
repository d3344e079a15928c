package series_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/approx/series"
)

func TestPi_NonPositiveTerms(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		v, err := series.Pi(n)
		assert.ErrorIs(t, err, series.ErrNonPositiveTerms, "n=%d", n)
		assert.ErrorIs(t, err, series.ErrInvalidArgument, "n=%d", n)
		assert.Zero(t, v)
	}
}

func TestPi_FirstPartialSums(t *testing.T) {
	cases := []struct {
		n    int
		want float64
	}{
		{1, 4},
		{2, 4 * (1 - 1.0/3)},
		{3, 4 * (1 - 1.0/3 + 1.0/5)},
		{4, 4 * (1 - 1.0/3 + 1.0/5 - 1.0/7)},
	}
	for _, tc := range cases {
		v, err := series.Pi(tc.n)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, v, 1e-15, "n=%d", tc.n)
	}
}

func TestPi_Deterministic(t *testing.T) {
	a, err := series.Pi(123_457)
	require.NoError(t, err)
	b, err := series.Pi(123_457)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPi_ApproachesPi(t *testing.T) {
	prevErr := math.Inf(1)
	for _, n := range []int{10, 1_000, 100_000, 1_000_000} {
		v, err := series.Pi(n)
		require.NoError(t, err)
		e := math.Abs(v - math.Pi)
		assert.Less(t, e, prevErr, "n=%d must improve on the smaller n", n)
		assert.InDelta(t, 1/float64(n), e, 1/float64(n), "error is of order 1/n")
		prevErr = e
	}
}

func TestPi_AlternatesAroundPi(t *testing.T) {
	odd, err := series.Pi(1_001)
	require.NoError(t, err)
	even, err := series.Pi(1_000)
	require.NoError(t, err)
	assert.Greater(t, odd, math.Pi)
	assert.Less(t, even, math.Pi)
}
