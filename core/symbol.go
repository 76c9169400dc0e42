package core

import (
	"errors"
	"fmt"
	"strings"
)

// Symbol is one recognizable gesture or direction, or the neutral "no action" value
type Symbol uint8

const (
	Neutral Symbol = iota
	SymbolA
	SymbolB
	SymbolC
	SymbolD
)

// MaxAlphabetSize is the number of defined symbols including Neutral
const MaxAlphabetSize = 5

// MinAlphabetSize is Neutral plus at least one real symbol
const MinAlphabetSize = 2

var symbolNames = [MaxAlphabetSize]string{"Neutral", "A", "B", "C", "D"}

// String returns the symbol name
func (s Symbol) String() string {
	if int(s) < len(symbolNames) {
		return symbolNames[s]
	}
	return fmt.Sprintf("Symbol(%d)", uint8(s))
}

// IsNeutral reports whether s is the no-action value
func (s Symbol) IsNeutral() bool {
	return s == Neutral
}

// ErrUnknownSymbol is returned by ParseSymbol for names outside the closed set
var ErrUnknownSymbol = errors.New("unknown symbol")

// ParseSymbol resolves a symbol name, case-insensitive
// "-", "neutral" and "rest" all map to Neutral
func ParseSymbol(name string) (Symbol, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "-", "neutral", "rest", "":
		return Neutral, nil
	case "a":
		return SymbolA, nil
	case "b":
		return SymbolB, nil
	case "c":
		return SymbolC, nil
	case "d":
		return SymbolD, nil
	}
	return Neutral, fmt.Errorf("%w: %q", ErrUnknownSymbol, name)
}

// ErrInvalidAlphabet is returned when an alphabet size is out of range
var ErrInvalidAlphabet = errors.New("invalid alphabet size")

// Alphabet is the closed set of symbols in play: Neutral followed by size-1 real symbols
type Alphabet struct {
	size int
}

// NewAlphabet creates an alphabet of the given size, Neutral included
func NewAlphabet(size int) (Alphabet, error) {
	if size < MinAlphabetSize || size > MaxAlphabetSize {
		return Alphabet{}, fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidAlphabet, size, MinAlphabetSize, MaxAlphabetSize)
	}
	return Alphabet{size: size}, nil
}

// MustAlphabet is NewAlphabet for constant sizes, panics on error
func MustAlphabet(size int) Alphabet {
	a, err := NewAlphabet(size)
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns the number of symbols including Neutral
func (a Alphabet) Size() int {
	return a.size
}

// At returns the i-th symbol, index 0 is Neutral
func (a Alphabet) At(i int) Symbol {
	if i < 0 || i >= a.size {
		return Neutral
	}
	return Symbol(i)
}

// Contains reports whether s belongs to the alphabet
func (a Alphabet) Contains(s Symbol) bool {
	return int(s) < a.size
}

// Coerce maps symbols outside the alphabet to Neutral
func (a Alphabet) Coerce(s Symbol) Symbol {
	if a.Contains(s) {
		return s
	}
	return Neutral
}

// Symbols returns all symbols in index order
func (a Alphabet) Symbols() []Symbol {
	out := make([]Symbol, a.size)
	for i := range out {
		out[i] = Symbol(i)
	}
	return out
}

// Real returns the non-neutral symbols
func (a Alphabet) Real() []Symbol {
	return a.Symbols()[1:]
}

// MarshalText encodes the symbol by name
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a symbol name accepted by ParseSymbol
func (s *Symbol) UnmarshalText(text []byte) error {
	v, err := ParseSymbol(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
