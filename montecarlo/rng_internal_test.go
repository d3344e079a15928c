package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRngFromSeed_ZeroUsesDefault(t *testing.T) {
	a := rngFromSeed(0)
	b := rngFromSeed(defaultRNGSeed)
	for i := 0; i < 16; i++ {
		require.Equal(t, b.Float64(), a.Float64())
	}
}

func TestDeriveSeed_StreamsDiffer(t *testing.T) {
	seen := make(map[int64]uint64)
	for s := uint64(0); s < 256; s++ {
		v := deriveSeed(42, s)
		prev, dup := seen[v]
		require.False(t, dup, "streams %d and %d collide", prev, s)
		seen[v] = s
	}
	assert.Equal(t, deriveSeed(42, 3), deriveSeed(42, 3))
	assert.NotEqual(t, deriveSeed(42, 3), deriveSeed(43, 3))
}

func TestUniformIn_Bounds(t *testing.T) {
	r := rngFromSeed(9)
	for i := 0; i < 10_000; i++ {
		v := uniformIn(r, -2, 5)
		require.GreaterOrEqual(t, v, -2.0)
		require.Less(t, v, 5.0)
	}
	assert.Equal(t, 3.0, uniformIn(fixed(0), 3, 3))
}

func TestParentSeed_Policy(t *testing.T) {
	assert.Equal(t, defaultRNGSeed, parentSeed(newConfig(WithSeed(0))))
	assert.Equal(t, int64(17), parentSeed(newConfig(WithSeed(17))))

	// An injected source is consumed once per derivation.
	c := newConfig(WithRand(rngFromSeed(5)))
	assert.NotEqual(t, parentSeed(c), parentSeed(c))
}

func TestNewConfig_LastRNGOptionWins(t *testing.T) {
	c := newConfig(WithRand(fixed(0.25)), WithSeed(3))
	assert.True(t, c.seeded)
	assert.False(t, c.injected)

	c = newConfig(WithSeed(3), WithRand(fixed(0.25)))
	assert.True(t, c.injected)
	assert.Equal(t, 0.25, c.rng.Float64())
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithLogger(nil) })
	assert.NotPanics(t, func() { WithLogger(zap.NewNop()) })
}

type fixed float64

func (f fixed) Float64() float64 { return float64(f) }
