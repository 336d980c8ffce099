package tetris

// Block is a tetromino: a set of rotation states plus an offset on the grid.
// It has no knowledge of the grid; legality is decided by Game.
type Block struct {
	ID    int
	Cells map[int][]Position

	rotation  int
	rowOffset int
	colOffset int
}

// Move shifts the block by the given number of rows and columns.
func (b *Block) Move(rows, cols int) {
	b.rowOffset += rows
	b.colOffset += cols
}

// Rotate advances to the next rotation state, wrapping to 0.
func (b *Block) Rotate() {
	b.rotation = (b.rotation + 1) % len(b.Cells)
}

// UndoRotate steps back to the previous rotation state, wrapping to the last.
func (b *Block) UndoRotate() {
	n := len(b.Cells)
	b.rotation = (b.rotation - 1 + n) % n
}

// Rotation returns the current rotation state index.
func (b *Block) Rotation() int {
	return b.rotation
}

// Offset returns the current row and column offset.
func (b *Block) Offset() (row, col int) {
	return b.rowOffset, b.colOffset
}

// CellPositions returns the absolute grid cells occupied by the block in its
// current rotation. The result is freshly allocated on every call.
func (b *Block) CellPositions() []Position {
	tiles := b.Cells[b.rotation]
	moved := make([]Position, len(tiles))
	for i, t := range tiles {
		moved[i] = Position{Row: t.Row + b.rowOffset, Col: t.Col + b.colOffset}
	}
	return moved
}

// Draw paints the block onto dst with its grid origin at (offsetX, offsetY).
func (b *Block) Draw(dst Canvas, offsetX, offsetY int) {
	color := CellColor(b.ID)
	for _, p := range b.CellPositions() {
		dst.FillRect(p.Col*CellWidth+offsetX, p.Row*CellHeight+offsetY, CellWidth, CellHeight, color)
	}
}
