package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gesture-lane/core"
)

// Intent is what a key press asks the front-end to do
type Intent uint8

const (
	IntentNone Intent = iota
	IntentSymbol
	IntentStart
	IntentQuit
	IntentToggleMute
)

// Context selects which bindings apply
type Context uint8

const (
	ContextMenu Context = iota
	ContextPlay
)

// KeyEntry describes a key's effect
type KeyEntry struct {
	Intent Intent
	Symbol core.Symbol
}

// KeyTable maps keys to entries per context
type KeyTable struct {
	MenuKeys  map[tcell.Key]KeyEntry
	MenuRunes map[rune]KeyEntry
	PlayKeys  map[tcell.Key]KeyEntry
	PlayRunes map[rune]KeyEntry
}

func symbolEntry(s core.Symbol) KeyEntry {
	return KeyEntry{Intent: IntentSymbol, Symbol: s}
}

// DefaultKeyTable returns the default bindings
// Up/Right/Down follow the three-button device (up, select, down); Left is the fourth gesture
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		MenuKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEnter:  {Intent: IntentStart},
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyCtrlS:  {Intent: IntentToggleMute},
		},
		MenuRunes: map[rune]KeyEntry{
			'1': {Intent: IntentStart},
			'2': {Intent: IntentQuit},
			'q': {Intent: IntentQuit},
		},
		PlayKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     symbolEntry(core.SymbolA),
			tcell.KeyRight:  symbolEntry(core.SymbolB),
			tcell.KeyEnter:  symbolEntry(core.SymbolB),
			tcell.KeyDown:   symbolEntry(core.SymbolC),
			tcell.KeyLeft:   symbolEntry(core.SymbolD),
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyCtrlS:  {Intent: IntentToggleMute},
		},
		PlayRunes: map[rune]KeyEntry{
			' ': symbolEntry(core.Neutral),
			'0': symbolEntry(core.Neutral),
			'1': symbolEntry(core.SymbolA),
			'2': symbolEntry(core.SymbolB),
			'3': symbolEntry(core.SymbolC),
			'4': symbolEntry(core.SymbolD),
			'q': {Intent: IntentQuit},
		},
	}
}

// Lookup resolves a key event in ctx
func (kt *KeyTable) Lookup(ctx Context, ev *tcell.EventKey) (KeyEntry, bool) {
	keys, runes := kt.MenuKeys, kt.MenuRunes
	if ctx == ContextPlay {
		keys, runes = kt.PlayKeys, kt.PlayRunes
	}

	if ev.Key() == tcell.KeyRune {
		e, ok := runes[ev.Rune()]
		return e, ok
	}
	e, ok := keys[ev.Key()]
	return e, ok
}
