package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/gesture-lane/core"
)

// Clock is the time source for hold decay
type Clock interface {
	Now() time.Time
}

// KeySampler turns discrete key presses into a continuously readable symbol
// With a positive hold a press decays back to Neutral, mirroring a button released after a judgment;
// with zero hold the last press stays until the next one
type KeySampler struct {
	mu      sync.Mutex
	clock   Clock
	hold    time.Duration
	symbol  core.Symbol
	pressed time.Time
}

// NewKeySampler creates a sampler reading time from clock
func NewKeySampler(clock Clock, hold time.Duration) *KeySampler {
	return &KeySampler{clock: clock, hold: hold}
}

// Press records a key press
func (k *KeySampler) Press(s core.Symbol) {
	k.mu.Lock()
	k.symbol = s
	k.pressed = k.clock.Now()
	k.mu.Unlock()
}

// CurrentSymbol returns the held symbol, Neutral once the hold has elapsed
func (k *KeySampler) CurrentSymbol() core.Symbol {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.hold > 0 && k.clock.Now().Sub(k.pressed) >= k.hold {
		return core.Neutral
	}
	return k.symbol
}
