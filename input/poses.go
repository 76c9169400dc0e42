package input

import (
	"strings"

	"github.com/lixenwraith/gesture-lane/core"
)

// PoseTable maps wearable pose names to symbols
// Anything not in the table is ambiguous input and reads as Neutral
type PoseTable map[string]core.Symbol

// DefaultPoseTable is the armband gesture set
func DefaultPoseTable() PoseTable {
	return PoseTable{
		"rest":          core.Neutral,
		"fingersspread": core.SymbolA,
		"wavein":        core.SymbolB,
		"waveout":       core.SymbolC,
		"fist":          core.SymbolD,
	}
}

// Symbol resolves a pose name, case-insensitive
func (p PoseTable) Symbol(name string) core.Symbol {
	if s, ok := p[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s
	}
	return core.Neutral
}
