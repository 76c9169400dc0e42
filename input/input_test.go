package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/gesture-lane/core"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func TestKeyTablePlayBindings(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want KeyEntry
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), symbolEntry(core.SymbolA)},
		{"enter is select", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), symbolEntry(core.SymbolB)},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), symbolEntry(core.SymbolC)},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), symbolEntry(core.SymbolD)},
		{"space rests", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), symbolEntry(core.Neutral)},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), symbolEntry(core.SymbolC)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), KeyEntry{Intent: IntentQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := kt.Lookup(ContextPlay, tt.ev)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := kt.Lookup(ContextPlay, tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	assert.False(t, ok)
}

func TestKeyTableMenuBindings(t *testing.T) {
	kt := DefaultKeyTable()

	e, ok := kt.Lookup(ContextMenu, tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone))
	assert.True(t, ok)
	assert.Equal(t, IntentStart, e.Intent)

	e, ok = kt.Lookup(ContextMenu, tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone))
	assert.True(t, ok)
	assert.Equal(t, IntentQuit, e.Intent)

	e, ok = kt.Lookup(ContextMenu, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	assert.True(t, ok)
	assert.Equal(t, IntentStart, e.Intent, "enter starts in the menu but is a symbol in play")
}

func TestKeySamplerHoldDecay(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	k := NewKeySampler(clock, 300*time.Millisecond)

	assert.Equal(t, core.Neutral, k.CurrentSymbol())

	k.Press(core.SymbolB)
	assert.Equal(t, core.SymbolB, k.CurrentSymbol())

	clock.now = clock.now.Add(299 * time.Millisecond)
	assert.Equal(t, core.SymbolB, k.CurrentSymbol())

	clock.now = clock.now.Add(time.Millisecond)
	assert.Equal(t, core.Neutral, k.CurrentSymbol())
}

func TestKeySamplerNoHoldKeepsLastPress(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	k := NewKeySampler(clock, 0)

	k.Press(core.SymbolA)
	clock.now = clock.now.Add(time.Hour)
	assert.Equal(t, core.SymbolA, k.CurrentSymbol())

	k.Press(core.SymbolD)
	assert.Equal(t, core.SymbolD, k.CurrentSymbol())
}

func TestPoseTable(t *testing.T) {
	p := DefaultPoseTable()

	assert.Equal(t, core.Neutral, p.Symbol("rest"))
	assert.Equal(t, core.SymbolA, p.Symbol("fingersSpread"))
	assert.Equal(t, core.SymbolB, p.Symbol("waveIn"))
	assert.Equal(t, core.SymbolC, p.Symbol("waveOut"))
	assert.Equal(t, core.SymbolD, p.Symbol("FIST"))
	assert.Equal(t, core.Neutral, p.Symbol("doubleTap"))
	assert.Equal(t, core.Neutral, p.Symbol("unknown"))
}

func TestLoadKeyConfigMerge(t *testing.T) {
	override, err := LoadKeyConfig(
		map[string]string{"s": "start", "Esc": "none"},
		map[string]string{"w": "A", "d": "b", "space": "rest", "Up": "none", "x": "mute"},
	)
	if !assert.NoError(t, err) {
		return
	}

	kt := MergeKeyTable(DefaultKeyTable(), override)

	byRune := func(ctx Context, r rune) (KeyEntry, bool) {
		return kt.Lookup(ctx, tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	key := func(ctx Context, k tcell.Key) (KeyEntry, bool) {
		return kt.Lookup(ctx, tcell.NewEventKey(k, 0, tcell.ModNone))
	}

	e, ok := byRune(ContextMenu, 's')
	assert.True(t, ok)
	assert.Equal(t, IntentStart, e.Intent)

	_, ok = key(ContextMenu, tcell.KeyEscape)
	assert.False(t, ok, "none unbinds")

	e, ok = byRune(ContextPlay, 'w')
	assert.True(t, ok)
	assert.Equal(t, symbolEntry(core.SymbolA), e)

	e, _ = byRune(ContextPlay, 'd')
	assert.Equal(t, symbolEntry(core.SymbolB), e)

	e, _ = byRune(ContextPlay, 'x')
	assert.Equal(t, IntentToggleMute, e.Intent)

	_, ok = key(ContextPlay, tcell.KeyUp)
	assert.False(t, ok)

	e, ok = key(ContextPlay, tcell.KeyDown)
	assert.True(t, ok, "untouched defaults survive")
	assert.Equal(t, symbolEntry(core.SymbolC), e)

	_, ok = DefaultKeyTable().Lookup(ContextPlay, tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	assert.True(t, ok, "merge does not mutate the base")
}

func TestLoadKeyConfigRejects(t *testing.T) {
	_, err := LoadKeyConfig(nil, map[string]string{"w": "jump"})
	assert.Error(t, err)

	_, err = LoadKeyConfig(nil, map[string]string{"ww": "A"})
	assert.Error(t, err)

	_, err = LoadKeyConfig(map[string]string{"q": ""}, nil)
	assert.Error(t, err)

	kt, err := LoadKeyConfig(nil, nil)
	assert.NoError(t, err)
	assert.Nil(t, kt.PlayKeys)
}
