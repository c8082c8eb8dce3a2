package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}

	a.Seed(7)
	b.Seed(7)
	assert.Equal(t, a.FloatRange(-1, 1), b.FloatRange(-1, 1))
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	assert.NotZero(t, r.Next(), "zero seed must not lock xorshift at zero")
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(1234)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := r.IntRange(1, 3)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 3)
		seen[v] = true

		f := r.FloatRange(-0.5, 0.5)
		assert.GreaterOrEqual(t, f, -0.5)
		assert.Less(t, f, 0.5)
	}
	assert.Len(t, seen, 3, "both bounds of IntRange are reachable")
	assert.Equal(t, 5, r.IntRange(5, 5))
}

func TestFastRandChance(t *testing.T) {
	r := NewFastRand(99)
	assert.False(t, r.Chance(0))
	assert.True(t, r.Chance(1))

	hits := 0
	const n = 20000
	for i := 0; i < n; i++ {
		if r.Chance(0.25) {
			hits++
		}
	}
	assert.InDelta(t, 0.25, float64(hits)/n, 0.02)
}
