package engine

import (
	"testing"

	"github.com/lixenwraith/gesture-lane/config"
	"github.com/lixenwraith/gesture-lane/core"
)

// scriptedRandom replays fixed draws, wrapping around
type scriptedRandom struct {
	draws []int
	calls int
}

func (r *scriptedRandom) IntN(n int) int {
	v := r.draws[r.calls%len(r.draws)]
	r.calls++
	return v % n
}

func testConfig(alphabet, interval, depth int) config.Config {
	cfg := config.Default()
	cfg.AlphabetSize = alphabet
	cfg.SpawnInterval = interval
	cfg.QueueDepth = depth
	cfg.Seed = 1
	return cfg
}

func newTestSession(t *testing.T, cfg config.Config, rng RandomSource) (*Session, *InputChannel) {
	t.Helper()
	input := NewInputChannel()
	s, err := NewSession(cfg, input, rng, WithSessionID("test"))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, input
}

func symbolsOf(names ...string) []core.Symbol {
	out := make([]core.Symbol, len(names))
	for i, n := range names {
		out[i], _ = core.ParseSymbol(n)
	}
	return out
}
