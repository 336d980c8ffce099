package tetris

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// recordingCanvas captures draw calls.
type recordingCanvas struct {
	rects []rectCall
	texts []string
}

type rectCall struct {
	x, y, w, h int
	color      core.Color
}

func (r *recordingCanvas) FillRect(x, y, w, h int, c core.Color) {
	r.rects = append(r.rects, rectCall{x: x, y: y, w: w, h: h, color: c})
}

func (r *recordingCanvas) DrawText(_, _ int, text string, _ core.Color) {
	r.texts = append(r.texts, text)
}

func newTestGame(t *testing.T, mode Mode) *Game {
	t.Helper()
	g := NewWithConfig(mode, config.DefaultTetrisConfig())
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	})
	return g
}

// fillRow occupies every cell of row except the listed columns.
func fillRow(g *Grid, row int, id int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, c := range except {
		skip[c] = true
	}
	for col := 0; col < NumCols; col++ {
		if !skip[col] {
			g.Set(row, col, id)
		}
	}
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
