package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Canvas is the rendering collaborator the engine draws into.
// *core.Screen satisfies it.
type Canvas interface {
	FillRect(x, y, w, h int, c core.Color)
	DrawText(x, y int, text string, c core.Color)
}

// Terminal cells are roughly twice as tall as they are wide, so one playfield
// cell is drawn two columns wide.
const (
	CellWidth  = 2
	CellHeight = 1
)

// palette maps block ids to colours. Index 0 is the empty-cell background.
var palette = [...]core.Color{
	core.ColorDarkGray,
	core.ColorGreen,
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorPurple,
	core.ColorSkyBlue,
	core.ColorBlue,
}

// CellColor returns the colour for a grid value or block id.
// Unknown ids fall back to the background colour.
func CellColor(id int) core.Color {
	if id < 0 || id >= len(palette) {
		return palette[0]
	}
	return palette[id]
}
