package render

import (
	"github.com/lixenwraith/gesture-lane/constant"
	"github.com/lixenwraith/gesture-lane/core"
)

// GlyphSet holds the lane drawing and judgment-line label for each symbol
type GlyphSet struct {
	Glyphs [core.MaxAlphabetSize]string
	Labels [core.MaxAlphabetSize]string
}

// WearableGlyphs draws the armband gestures
var WearableGlyphs = GlyphSet{
	Glyphs: [core.MaxAlphabetSize]string{"", `\|||/`, "<<----", "---->>", "O"},
	Labels: [core.MaxAlphabetSize]string{"rest", "fingersSpread", "waveIn", "waveOut", "fist"},
}

// ButtonGlyphs draws the three-button variant
var ButtonGlyphs = GlyphSet{
	Glyphs: [core.MaxAlphabetSize]string{"", "U", "R", "D", "L"},
	Labels: [core.MaxAlphabetSize]string{"rest", "up", "select", "down", "left"},
}

// GlyphsFor picks the glyph set matching an alphabet
func GlyphsFor(a core.Alphabet) GlyphSet {
	if a.Size() <= constant.ButtonAlphabetSize {
		return ButtonGlyphs
	}
	return WearableGlyphs
}

// Glyph returns the lane drawing for s, empty for Neutral
func (g GlyphSet) Glyph(s core.Symbol) string {
	if int(s) < len(g.Glyphs) {
		return g.Glyphs[s]
	}
	return ""
}

// Label returns the display name for s
func (g GlyphSet) Label(s core.Symbol) string {
	if int(s) < len(g.Labels) {
		return g.Labels[s]
	}
	return s.String()
}

// LaneX is the column of a symbol's lane
func LaneX(s core.Symbol) int {
	if s == core.Neutral {
		return -1
	}
	return constant.LaneLeftMargin + (int(s)-1)*constant.LaneWidth
}
