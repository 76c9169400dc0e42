package constant

import "github.com/gdamore/tcell/v2"

// Lane layout
const (
	// LaneLeftMargin is the column of the first lane
	LaneLeftMargin = 2

	// LaneWidth is the horizontal distance between lanes
	LaneWidth = 14

	// HUDRows is the number of rows below the judgment line
	HUDRows = 2
)

// Styles
var (
	StyleDefault   = tcell.StyleDefault
	StyleJudgeLine = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	StyleHUD       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleHit       = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	StyleMiss      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	StyleTitle     = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	StyleGameOver  = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
)

// LaneColors indexes by symbol, Neutral is never drawn
var LaneColors = [...]tcell.Color{
	tcell.ColorDefault,
	tcell.ColorGreen,
	tcell.ColorBlue,
	tcell.ColorYellow,
	tcell.ColorPurple,
}
