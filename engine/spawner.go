package engine

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/gesture-lane/core"
)

// RandomSource draws uniform integers in [0, n)
// *rand.Rand from math/rand/v2 satisfies it
type RandomSource interface {
	IntN(n int) int
}

// NewRandomSource returns a PCG-backed source; seed 0 selects a time-based seed
// The session seeds once at start and never reseeds per draw
func NewRandomSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Spawner decides what enters the head of the lane each tick
type Spawner struct {
	interval uint64
	alphabet core.Alphabet
	rng      RandomSource
}

// NewSpawner creates a spawner firing every interval ticks
func NewSpawner(interval int, alphabet core.Alphabet, rng RandomSource) (*Spawner, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("spawn interval must be positive, got %d", interval)
	}
	if alphabet.Size() == 0 {
		return nil, fmt.Errorf("spawner needs an alphabet")
	}
	if rng == nil {
		return nil, fmt.Errorf("spawner needs a random source")
	}
	return &Spawner{
		interval: uint64(interval),
		alphabet: alphabet,
		rng:      rng,
	}, nil
}

// Spawn returns a uniform draw over the full alphabet, Neutral included, on interval boundaries
// (tickCount 0, interval, 2*interval...) and Neutral on every other tick
func (s *Spawner) Spawn(tickCount uint64) core.Symbol {
	if tickCount%s.interval != 0 {
		return core.Neutral
	}
	return s.alphabet.Coerce(s.alphabet.At(s.rng.IntN(s.alphabet.Size())))
}
