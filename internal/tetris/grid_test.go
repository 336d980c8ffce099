package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridIsEmpty(t *testing.T) {
	g := NewGrid()
	for row := 0; row < NumRows; row++ {
		for col := 0; col < NumCols; col++ {
			assert.True(t, g.IsCellEmpty(row, col), "cell (%d,%d)", row, col)
			assert.Zero(t, g.Cell(row, col))
		}
	}
}

func TestIsCellOutside(t *testing.T) {
	g := NewGrid()
	for row := -2; row < NumRows+2; row++ {
		for col := -2; col < NumCols+2; col++ {
			want := row < 0 || row >= NumRows || col < 0 || col >= NumCols
			assert.Equal(t, want, g.IsCellOutside(row, col), "(%d,%d)", row, col)
		}
	}
}

func TestOutOfRangeAccessIsSafe(t *testing.T) {
	g := NewGrid()

	assert.False(t, g.IsCellEmpty(-1, 0))
	assert.False(t, g.IsCellEmpty(0, NumCols))
	assert.Zero(t, g.Cell(NumRows, 0))

	g.Set(NumRows, 0, IDT)
	g.Set(0, -1, IDT)
	assert.Equal(t, NewGrid(), g, "writes outside the grid must be ignored")
}

func TestResetEmptiesGrid(t *testing.T) {
	g := NewGrid()
	fillRow(&g, 5, IDS)
	g.Reset()
	assert.Equal(t, NewGrid(), g)
}

func TestClearFullRowsSingle(t *testing.T) {
	g := NewGrid()
	fillRow(&g, 19, IDL)

	cleared := g.ClearFullRows()

	require.Equal(t, 1, cleared)
	assert.Equal(t, NewGrid(), g, "only the cleared row held blocks")
}

func TestClearFullRowsTwoSeparated(t *testing.T) {
	g := NewGrid()
	fillRow(&g, 12, IDJ)
	fillRow(&g, 17, IDZ)

	require.Equal(t, 2, g.ClearFullRows())
	assert.Equal(t, NewGrid(), g)
}

func TestClearFullRowsCompactsRowAbove(t *testing.T) {
	g := NewGrid()
	fillRow(&g, 19, IDI)
	pattern := [NumCols]int{IDT, 0, IDT, 0, 0, IDO, 0, 0, 0, IDS}
	for col, v := range pattern {
		g.Set(18, col, v)
	}

	require.Equal(t, 1, g.ClearFullRows())

	for col, v := range pattern {
		assert.Equal(t, v, g.Cell(19, col), "row 19 col %d", col)
		assert.Zero(t, g.Cell(18, col), "row 18 col %d", col)
	}
}

func TestClearFullRowsNonContiguousWithGaps(t *testing.T) {
	g := NewGrid()
	fillRow(&g, 19, IDL)
	g.Set(18, 0, IDJ)
	fillRow(&g, 17, IDL)
	g.Set(16, 9, IDZ)

	require.Equal(t, 2, g.ClearFullRows())

	assert.Equal(t, IDJ, g.Cell(19, 0), "row 18 drops by one cleared row")
	assert.Equal(t, IDZ, g.Cell(18, 9), "row 16 drops by two cleared rows")
	for row := 0; row < 18; row++ {
		for col := 0; col < NumCols; col++ {
			assert.Zero(t, g.Cell(row, col), "(%d,%d)", row, col)
		}
	}
}

func TestClearFullRowsNothingToClear(t *testing.T) {
	g := NewGrid()
	fillRow(&g, 19, IDL, 4)
	before := g

	assert.Zero(t, g.ClearFullRows())
	assert.Equal(t, before, g)
}

func TestGridDraw(t *testing.T) {
	g := NewGrid()
	g.Set(0, 1, IDO)

	var c recordingCanvas
	g.Draw(&c, 3, 2)

	require.Len(t, c.rects, NumRows*NumCols)
	assert.Equal(t, rectCall{x: 3, y: 2, w: CellWidth, h: CellHeight, color: CellColor(0)}, c.rects[0])
	assert.Equal(t, rectCall{x: 3 + CellWidth, y: 2, w: CellWidth, h: CellHeight, color: CellColor(IDO)}, c.rects[1])
}
