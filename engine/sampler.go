package engine

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gesture-lane/core"
)

// SymbolSource reports the best-known current symbol of an input device
// Unrecognized or ambiguous device signals must come back as Neutral
type SymbolSource interface {
	CurrentSymbol() core.Symbol
}

// SymbolSourceFunc adapts a function to SymbolSource
type SymbolSourceFunc func() core.Symbol

// CurrentSymbol calls f
func (f SymbolSourceFunc) CurrentSymbol() core.Symbol {
	return f()
}

// Sampler polls a SymbolSource on its own cadence and overwrites an InputWriter
// It runs independently of the game loop; samples overwritten between ticks are lost
type Sampler struct {
	source   SymbolSource
	out      InputWriter
	alphabet core.Alphabet
	period   time.Duration
	samples  atomic.Uint64
}

// NewSampler creates a sampler; period 0 polls as fast as the scheduler allows
func NewSampler(source SymbolSource, out InputWriter, alphabet core.Alphabet, period time.Duration) *Sampler {
	return &Sampler{
		source:   source,
		out:      out,
		alphabet: alphabet,
		period:   period,
	}
}

// SampleOnce reads the source and stores the coerced value
func (s *Sampler) SampleOnce() core.Symbol {
	sym := s.alphabet.Coerce(s.source.CurrentSymbol())
	s.out.Store(sym)
	s.samples.Add(1)
	return sym
}

// Samples returns the number of completed samples
func (s *Sampler) Samples() uint64 {
	return s.samples.Load()
}

// Run samples until ctx is done
func (s *Sampler) Run(ctx context.Context) {
	if s.period <= 0 {
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			s.SampleOnce()
			runtime.Gosched()
		}
	}

	ticker := time.NewTicker(s.period)
	defer ticker.Stop()
	for {
		s.SampleOnce()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
