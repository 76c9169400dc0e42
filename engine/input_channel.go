package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/gesture-lane/core"
)

// InputWriter accepts the latest observed symbol from a sampler or pushed source
type InputWriter interface {
	Store(core.Symbol)
}

// InputChannel is the single cell shared between the input sampler and the game loop
// Last writer wins; no history is kept and the loop never waits on it
type InputChannel struct {
	v      atomic.Uint32
	writes atomic.Uint64
}

// NewInputChannel creates a channel holding Neutral
func NewInputChannel() *InputChannel {
	return &InputChannel{}
}

// Store overwrites the current symbol
func (c *InputChannel) Store(s core.Symbol) {
	c.v.Store(uint32(s))
	c.writes.Add(1)
}

// Load returns the current symbol
func (c *InputChannel) Load() core.Symbol {
	return core.Symbol(c.v.Load())
}

// Writes returns the number of stores since creation
func (c *InputChannel) Writes() uint64 {
	return c.writes.Load()
}
