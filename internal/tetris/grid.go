package tetris

// Playfield dimensions.
const (
	NumRows = 20
	NumCols = 10
)

// Grid is the playfield. A cell holds 0 when empty or the id of the block
// that was locked there.
type Grid struct {
	cells [NumRows][NumCols]int
}

// NewGrid returns an empty grid.
func NewGrid() Grid {
	return Grid{}
}

// Reset empties every cell.
func (g *Grid) Reset() {
	g.cells = [NumRows][NumCols]int{}
}

// IsCellOutside reports whether (row, col) falls outside the playfield.
func (g *Grid) IsCellOutside(row, col int) bool {
	return row < 0 || row >= NumRows || col < 0 || col >= NumCols
}

// IsCellEmpty reports whether the cell holds no block.
// Positions outside the grid are never empty.
func (g *Grid) IsCellEmpty(row, col int) bool {
	if g.IsCellOutside(row, col) {
		return false
	}
	return g.cells[row][col] == 0
}

// Cell returns the block id stored at (row, col), or 0 outside the grid.
func (g *Grid) Cell(row, col int) int {
	if g.IsCellOutside(row, col) {
		return 0
	}
	return g.cells[row][col]
}

// Set stores a block id. Writes outside the grid are ignored.
func (g *Grid) Set(row, col, id int) {
	if g.IsCellOutside(row, col) {
		return
	}
	g.cells[row][col] = id
}

func (g *Grid) isRowFull(row int) bool {
	for col := 0; col < NumCols; col++ {
		if g.cells[row][col] == 0 {
			return false
		}
	}
	return true
}

func (g *Grid) clearRow(row int) {
	g.cells[row] = [NumCols]int{}
}

// moveRowDown copies row into row+n and empties the source.
func (g *Grid) moveRowDown(row, n int) {
	g.cells[row+n] = g.cells[row]
	g.clearRow(row)
}

// ClearFullRows removes every full row and compacts the rows above them in a
// single bottom-up pass. It returns the number of rows removed.
func (g *Grid) ClearFullRows() int {
	completed := 0
	for row := NumRows - 1; row >= 0; row-- {
		if g.isRowFull(row) {
			g.clearRow(row)
			completed++
		} else if completed > 0 {
			g.moveRowDown(row, completed)
		}
	}
	return completed
}

// Draw paints every cell with its block colour, or the background colour when
// empty. (offsetX, offsetY) is the screen position of the top-left cell.
func (g *Grid) Draw(dst Canvas, offsetX, offsetY int) {
	for row := 0; row < NumRows; row++ {
		for col := 0; col < NumCols; col++ {
			dst.FillRect(col*CellWidth+offsetX, row*CellHeight+offsetY, CellWidth, CellHeight, CellColor(g.cells[row][col]))
		}
	}
}
