package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/galoisdense/gf2ri/rng"
)

func TestRandomWordVaries(t *testing.T) {
	t.Parallel()

	seen := make(map[uint64]bool)
	for i := 0; i < 64; i++ {
		seen[rng.RandomWord()] = true
	}
	assert.Greater(t, len(seen), 1, "RandomWord must not be constant")
}

func TestSetSourceOverridesDrawAndIsDeterministic(t *testing.T) {
	defer rng.SetSource(nil)

	var calls int
	rng.SetSource(func() uint32 {
		calls++
		return 0
	})

	assert.Equal(t, uint64(0), rng.RandomWord())
	assert.Equal(t, 3, calls, "RandomWord composes exactly three 31-bit draws")
}

func TestSetSourceNilRestoresDefault(t *testing.T) {
	rng.SetSource(func() uint32 { return 1 })
	rng.SetSource(nil)

	assert.NotPanics(t, func() { rng.RandomWord() })
}
