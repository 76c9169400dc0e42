package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gesture-lane/core"
)

// Rune aliases for keys that can't be written as a bare single character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Named special keys accepted in key config
var keyNames = map[string]tcell.Key{
	"enter":     tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-s":    tcell.KeyCtrlS,
}

// actionNone removes a default binding
var actionNone = KeyEntry{Intent: IntentNone}

// LoadKeyConfig parses key name → action name bindings into a sparse override KeyTable
// Only contexts present in the input are populated
// Actions are symbol names (a-d, neutral, rest, -), start, quit, mute, or none to unbind
func LoadKeyConfig(menu, play map[string]string) (*KeyTable, error) {
	kt := &KeyTable{}

	if len(menu) > 0 {
		keys, runes, err := parseSection("menu", menu)
		if err != nil {
			return nil, err
		}
		kt.MenuKeys, kt.MenuRunes = keys, runes
	}
	if len(play) > 0 {
		keys, runes, err := parseSection("play", play)
		if err != nil {
			return nil, err
		}
		kt.PlayKeys, kt.PlayRunes = keys, runes
	}

	return kt, nil
}

func parseSection(section string, data map[string]string) (map[tcell.Key]KeyEntry, map[rune]KeyEntry, error) {
	keys := make(map[tcell.Key]KeyEntry)
	runes := make(map[rune]KeyEntry)

	for keyStr, actionName := range data {
		entry, err := resolveAction(actionName)
		if err != nil {
			return nil, nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		if k, ok := keyNames[strings.ToLower(keyStr)]; ok {
			keys[k] = entry
			continue
		}
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, nil, fmt.Errorf("[%s] %w", section, err)
		}
		runes[r] = entry
	}

	return keys, runes, nil
}

// resolveRune accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid key: %q (expected single character, alias or key name)", s)
}

// resolveAction converts an action name to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "start":
		return KeyEntry{Intent: IntentStart}, nil
	case "quit":
		return KeyEntry{Intent: IntentQuit}, nil
	case "mute":
		return KeyEntry{Intent: IntentToggleMute}, nil
	case "none":
		return actionNone, nil
	}

	sym, err := core.ParseSymbol(name)
	if err != nil || strings.TrimSpace(name) == "" {
		return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
	}
	return symbolEntry(sym), nil
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		MenuKeys:  cloneMap(kt.MenuKeys),
		MenuRunes: cloneMap(kt.MenuRunes),
		PlayKeys:  cloneMap(kt.PlayKeys),
		PlayRunes: cloneMap(kt.PlayRunes),
	}
}

func cloneMap[K comparable](m map[K]KeyEntry) map[K]KeyEntry {
	out := make(map[K]KeyEntry, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries with the "none" action delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	mergeMap(result.MenuKeys, override.MenuKeys)
	mergeMap(result.MenuRunes, override.MenuRunes)
	mergeMap(result.PlayKeys, override.PlayKeys)
	mergeMap(result.PlayRunes, override.PlayRunes)

	return result
}

func mergeMap[K comparable](base, override map[K]KeyEntry) {
	for k, v := range override {
		if v.Intent == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
