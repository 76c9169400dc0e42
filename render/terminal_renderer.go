package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gesture-lane/constant"
	"github.com/lixenwraith/gesture-lane/core"
	"github.com/lixenwraith/gesture-lane/engine"
)

// TerminalRenderer draws frames, the menu and the game-over screen to a tcell screen
// Render implements engine.RenderSink and runs on the game loop goroutine
type TerminalRenderer struct {
	mu       sync.Mutex
	screen   tcell.Screen
	alphabet core.Alphabet
	glyphs   GlyphSet
}

// NewTerminalRenderer creates a renderer for the given alphabet
func NewTerminalRenderer(screen tcell.Screen, alphabet core.Alphabet) *TerminalRenderer {
	return &TerminalRenderer{
		screen:   screen,
		alphabet: alphabet,
		glyphs:   GlyphsFor(alphabet),
	}
}

// Render draws one frame: lane contents, judgment line, HUD
func (r *TerminalRenderer) Render(f engine.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.screen.Clear()
	width, height := r.screen.Size()

	depth := len(f.Lane)
	laneRows := height - constant.HUDRows
	if laneRows < 1 {
		laneRows = 1
	}
	// Lanes deeper than the screen scroll so the judgment line stays visible
	offset := 0
	if depth > laneRows {
		offset = depth - laneRows
	}

	judgeRow := depth - 1 - offset
	for i := offset; i < depth-1; i++ {
		sym := f.Lane[i]
		if sym == core.Neutral {
			continue
		}
		style := constant.StyleDefault.Foreground(constant.LaneColors[sym])
		r.drawText(LaneX(sym), i-offset, r.glyphs.Glyph(sym), style, width)
	}

	r.drawJudgeLine(f, judgeRow, width)
	r.drawHUD(f, judgeRow+1, width)

	r.screen.Show()
}

func (r *TerminalRenderer) drawJudgeLine(f engine.Frame, y, width int) {
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, '=', nil, constant.StyleJudgeLine)
	}
	for _, sym := range r.alphabet.Real() {
		r.drawText(LaneX(sym), y, r.glyphs.Label(sym), constant.StyleJudgeLine, width)
	}

	if len(f.Lane) == 0 {
		return
	}
	sym := f.Lane[len(f.Lane)-1]
	if sym == core.Neutral {
		return
	}
	style := constant.StyleDefault.Foreground(constant.LaneColors[sym]).Reverse(true)
	switch f.Judgment.Outcome {
	case engine.OutcomeHit:
		style = constant.StyleHit.Reverse(true)
	case engine.OutcomeMiss:
		style = constant.StyleMiss.Reverse(true)
	}
	r.drawText(LaneX(sym), y, r.glyphs.Glyph(sym), style, width)
}

func (r *TerminalRenderer) drawHUD(f engine.Frame, y, width int) {
	st := f.State
	hud := fmt.Sprintf("Score: %d  Streak: %d  Life: %d/%d  Input: %s",
		st.Score, st.Streak, st.Life, st.LifeMax, r.glyphs.Label(f.Judgment.Observed))
	r.drawText(0, y, hud, constant.StyleHUD, width)

	switch f.Judgment.Outcome {
	case engine.OutcomeHit:
		r.drawText(0, y+1, "HIT", constant.StyleHit, width)
	case engine.OutcomeMiss:
		r.drawText(0, y+1, "MISS", constant.StyleMiss, width)
	default:
		if !f.Primed {
			r.drawText(0, y+1, "get ready...", constant.StyleHUD, width)
		}
	}
}

// DrawMenu shows the start menu, with the previous result when there is one
func (r *TerminalRenderer) DrawMenu(last *engine.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.screen.Clear()
	width, _ := r.screen.Size()

	r.drawText(2, 1, "GESTURE LANE", constant.StyleTitle, width)
	r.drawText(2, 3, "******* MENU *******", constant.StyleHUD, width)
	r.drawText(2, 4, "****  1  Start  ****", constant.StyleHUD, width)
	r.drawText(2, 5, "****  2  End    ****", constant.StyleHUD, width)

	y := 7
	for _, sym := range r.alphabet.Real() {
		line := fmt.Sprintf("%-14s %s", r.glyphs.Label(sym), r.glyphs.Glyph(sym))
		r.drawText(4, y, line, constant.StyleDefault.Foreground(constant.LaneColors[sym]), width)
		y++
	}

	if last != nil {
		r.drawText(2, y+1, fmt.Sprintf("Last run: score %d, streak %d (%s)", last.State.Score, last.State.Streak, last.Reason), constant.StyleHUD, width)
	}

	r.screen.Show()
}

// DrawGameOver overlays the final state on the last frame
func (r *TerminalRenderer) DrawGameOver(res engine.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	width, height := r.screen.Size()
	y := height / 2
	r.drawText(2, y, " Game Over ", constant.StyleGameOver, width)
	r.drawText(2, y+1, fmt.Sprintf(" Final score: %d ", res.State.Score), constant.StyleGameOver, width)
	r.drawText(2, y+2, " press any key ", constant.StyleHUD, width)

	r.screen.Show()
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style, width int) {
	if x < 0 || y < 0 {
		return
	}
	for _, ch := range text {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
