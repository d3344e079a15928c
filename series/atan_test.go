package series_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/approx/series"
)

func TestAtan_ZeroIsExact(t *testing.T) {
	for _, n := range []int{1, 2, 10, 10_000} {
		v, err := series.Atan(0, n)
		require.NoError(t, err)
		assert.Equal(t, 0.0, v, "n=%d", n)
	}
}

func TestAtan_MatchesMathAtan(t *testing.T) {
	v, err := series.Atan(0.5, 10_000)
	require.NoError(t, err)
	assert.Less(t, math.Abs(v-math.Atan(0.5)), 1e-3)

	for _, x := range []float64{-0.9, -0.5, -0.1, 0.1, 0.3, 0.7} {
		v, err := series.Atan(x, 10_000)
		require.NoError(t, err)
		assert.InDelta(t, math.Atan(x), v, 1e-12, "x=%g", x)
	}
}

func TestAtan_OddSymmetry(t *testing.T) {
	pos, err := series.Atan(0.6, 500)
	require.NoError(t, err)
	neg, err := series.Atan(-0.6, 500)
	require.NoError(t, err)
	assert.Equal(t, -pos, neg)
}

func TestAtan_SlowerNearBoundary(t *testing.T) {
	const n = 50
	near, err := series.Atan(0.99, n)
	require.NoError(t, err)
	far, err := series.Atan(0.5, n)
	require.NoError(t, err)

	nearErr := math.Abs(near - math.Atan(0.99))
	farErr := math.Abs(far - math.Atan(0.5))
	assert.Greater(t, nearErr, farErr)

	better, err := series.Atan(0.99, 5_000)
	require.NoError(t, err)
	assert.Less(t, math.Abs(better-math.Atan(0.99)), nearErr, "more terms must converge")
}

func TestAtan_Errors(t *testing.T) {
	cases := []struct {
		name string
		x    float64
		n    int
		want error
	}{
		{"x=1", 1.0, 10, series.ErrOutOfDomain},
		{"x=-1", -1.0, 10, series.ErrOutOfDomain},
		{"x>1", 1.5, 10, series.ErrOutOfDomain},
		{"x<-1", -7, 10, series.ErrOutOfDomain},
		{"NaN", math.NaN(), 10, series.ErrOutOfDomain},
		{"n=0", 0.5, 0, series.ErrNonPositiveTerms},
		{"n<0", 0.5, -1, series.ErrNonPositiveTerms},
		{"domain checked first", 2, 0, series.ErrOutOfDomain},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := series.Atan(tc.x, tc.n)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, series.ErrInvalidArgument)
		})
	}
}

func TestAddAtan_Pole(t *testing.T) {
	v, err := series.AddAtan(1, 1)
	assert.ErrorIs(t, err, series.ErrPole)
	assert.ErrorIs(t, err, series.ErrInvalidArgument)
	assert.Zero(t, v)
}

func TestAddAtan_ZeroIsExact(t *testing.T) {
	v, err := series.AddAtan(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestAddAtan_MatchesSumOfAtans(t *testing.T) {
	cases := [][2]float64{
		{0.3, 0.4},
		{0.99, 0.99},
		{-0.5, 0.25},
		{1, 0.5},
		{1, 0},
		{-3, 0.2},
	}
	for _, c := range cases {
		v, err := series.AddAtan(c[0], c[1])
		require.NoError(t, err, "x0=%g x1=%g", c[0], c[1])
		assert.InDelta(t, math.Atan(c[0])+math.Atan(c[1]), v, 1e-12, "x0=%g x1=%g", c[0], c[1])
	}
}

// The identity is used without a branch correction. These cases pin the
// uncorrected results so a change in behaviour is deliberate.
func TestAddAtan_UncorrectedBranch(t *testing.T) {
	// x0·x1 > 1: result is off by exactly π.
	v, err := series.AddAtan(2, 3)
	require.NoError(t, err)
	assert.InDelta(t, math.Atan(2)+math.Atan(3)-math.Pi, v, 1e-12)

	// x0·x1 == 1 away from (1, 1): division by zero yields +Inf, atan gives π/2.
	v, err = series.AddAtan(2, 0.5)
	require.NoError(t, err)
	assert.Equal(t, math.Pi/2, v)
}
