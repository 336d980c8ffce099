package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout constants in screen cells.
const (
	boardW     = NumCols*CellWidth + 2 // Playfield plus border
	boardH     = NumRows*CellHeight + 2
	sidebarGap = 2
	sidebarW   = 16
	minScreenW = boardW + sidebarGap + sidebarW
	minScreenH = boardH
)

// Draw paints the grid and then the active block, with the grid's top-left
// cell at (offsetX, offsetY).
func (g *Game) Draw(dst Canvas, offsetX, offsetY int) {
	g.grid.Draw(dst, offsetX, offsetY)
	g.current.Draw(dst, offsetX, offsetY)
}

// Render draws the full game screen: playfield, sidebar and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2-1, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(h/2, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}

	originX := (w - minScreenW) / 2
	originY := (h - minScreenH) / 2

	board := core.NewRect(originX, originY, boardW, boardH)
	dst.DrawBox(board, core.ColorGray)
	g.Draw(dst, board.X+1, board.Y+1)

	g.renderSidebar(dst, board.Right()+sidebarGap, originY)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, board, "GAME OVER", fmt.Sprintf("Score: %d", g.score), "Any key: again")
	case g.paused:
		g.renderOverlay(dst, board, "PAUSED", "", "P: resume")
	}
}

func (g *Game) renderSidebar(dst *core.Screen, x, y int) {
	dst.DrawText(x, y, g.Title(), core.ColorWhite)

	dst.DrawText(x, y+2, "Score", core.ColorGray)
	dst.DrawText(x, y+3, fmt.Sprintf("%d", g.score), core.ColorYellow)

	dst.DrawText(x, y+5, "Lines", core.ColorGray)
	dst.DrawText(x, y+6, fmt.Sprintf("%d", g.lines), core.ColorWhite)

	if g.mode == ModeMarathon {
		dst.DrawText(x, y+8, "Level", core.ColorGray)
		dst.DrawText(x, y+9, fmt.Sprintf("%d", g.level), core.ColorWhite)
	}

	dst.DrawText(x, y+11, "Next", core.ColorGray)
	preview := core.NewRect(x, y+12, 4*CellWidth+2, 4*CellHeight+2)
	dst.DrawBox(preview, core.ColorGray)

	// Cancel the spawn offset so the preview sits inside its box.
	row, col := g.next.Offset()
	g.next.Draw(dst, preview.X+1-col*CellWidth, preview.Y+1-row*CellHeight)
}

func (g *Game) renderOverlay(dst *core.Screen, board core.Rect, title, line, hint string) {
	box := core.NewRect(board.X+1, board.Y+board.H/2-3, board.W-2, 6)
	dst.ClearRect(box)
	dst.DrawBox(box, core.ColorWhite)

	center := func(y int, text string, c core.Color) {
		dst.DrawText(box.X+(box.W-len(text))/2, y, text, c)
	}
	center(box.Y+1, title, core.ColorRed)
	if line != "" {
		center(box.Y+2, line, core.ColorWhite)
	}
	center(box.Y+4, hint, core.ColorGray)
}
