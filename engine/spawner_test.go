package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gesture-lane/core"
)

func TestNewSpawnerValidation(t *testing.T) {
	a := core.MustAlphabet(3)

	_, err := NewSpawner(0, a, &scriptedRandom{draws: []int{1}})
	assert.Error(t, err)

	_, err = NewSpawner(1, core.Alphabet{}, &scriptedRandom{draws: []int{1}})
	assert.Error(t, err)

	_, err = NewSpawner(1, a, nil)
	assert.Error(t, err)
}

func TestSpawnOnIntervalBoundary(t *testing.T) {
	rng := &scriptedRandom{draws: []int{2}}
	s, err := NewSpawner(4, core.MustAlphabet(3), rng)
	require.NoError(t, err)

	var got []core.Symbol
	for tick := uint64(0); tick < 9; tick++ {
		got = append(got, s.Spawn(tick))
	}

	assert.Equal(t, symbolsOf("B", "-", "-", "-", "B", "-", "-", "-", "B"), got)
	assert.Equal(t, 3, rng.calls, "randomness is drawn only on spawn ticks")
}

func TestSpawnCoversAlphabetIncludingNeutral(t *testing.T) {
	s, err := NewSpawner(1, core.MustAlphabet(5), NewRandomSource(7))
	require.NoError(t, err)

	counts := make(map[core.Symbol]int)
	for tick := uint64(0); tick < 5000; tick++ {
		counts[s.Spawn(tick)]++
	}

	for _, sym := range core.MustAlphabet(5).Symbols() {
		assert.Greater(t, counts[sym], 800, "symbol %s under-represented", sym)
	}
	assert.Len(t, counts, 5)
}

func TestSeededSpawnsReproducible(t *testing.T) {
	a := core.MustAlphabet(5)
	s1, err := NewSpawner(2, a, NewRandomSource(99))
	require.NoError(t, err)
	s2, err := NewSpawner(2, a, NewRandomSource(99))
	require.NoError(t, err)

	for tick := uint64(0); tick < 200; tick++ {
		require.Equal(t, s1.Spawn(tick), s2.Spawn(tick), "tick %d", tick)
	}
}
