package tetris

// Block ids. They double as grid cell values and palette indices.
const (
	IDL = iota + 1
	IDJ
	IDI
	IDO
	IDS
	IDT
	IDZ
)

// BlockCount is the number of distinct tetrominoes in a bag.
const BlockCount = 7

func newBlock(id int, rowOffset, colOffset int, rotations ...[]Position) Block {
	cells := make(map[int][]Position, len(rotations))
	for i, r := range rotations {
		cells[i] = r
	}
	b := Block{ID: id, Cells: cells}
	b.Move(rowOffset, colOffset)
	return b
}

// LBlock returns the L tetromino at its spawn position.
func LBlock() Block {
	return newBlock(IDL, 0, 3,
		[]Position{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
		[]Position{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		[]Position{{1, 0}, {1, 1}, {1, 2}, {2, 0}},
		[]Position{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	)
}

// JBlock returns the J tetromino at its spawn position.
func JBlock() Block {
	return newBlock(IDJ, 0, 3,
		[]Position{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		[]Position{{0, 1}, {0, 2}, {1, 1}, {2, 1}},
		[]Position{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		[]Position{{0, 1}, {1, 1}, {2, 0}, {2, 1}},
	)
}

// IBlock returns the I tetromino at its spawn position. It is shifted up one
// row so the horizontal bar spawns on the top row.
func IBlock() Block {
	return newBlock(IDI, -1, 3,
		[]Position{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
		[]Position{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		[]Position{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		[]Position{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	)
}

// OBlock returns the O tetromino. It has a single rotation state.
func OBlock() Block {
	return newBlock(IDO, 0, 4,
		[]Position{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	)
}

// SBlock returns the S tetromino at its spawn position.
func SBlock() Block {
	return newBlock(IDS, 0, 3,
		[]Position{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		[]Position{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		[]Position{{1, 1}, {1, 2}, {2, 0}, {2, 1}},
		[]Position{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	)
}

// TBlock returns the T tetromino at its spawn position.
func TBlock() Block {
	return newBlock(IDT, 0, 3,
		[]Position{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
		[]Position{{0, 1}, {1, 1}, {1, 2}, {2, 1}},
		[]Position{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
		[]Position{{0, 1}, {1, 0}, {1, 1}, {2, 1}},
	)
}

// ZBlock returns the Z tetromino at its spawn position.
func ZBlock() Block {
	return newBlock(IDZ, 0, 3,
		[]Position{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		[]Position{{0, 2}, {1, 1}, {1, 2}, {2, 1}},
		[]Position{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		[]Position{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
	)
}

// AllBlocks returns one fresh template of every tetromino.
func AllBlocks() []Block {
	return []Block{
		LBlock(),
		JBlock(),
		IBlock(),
		OBlock(),
		SBlock(),
		TBlock(),
		ZBlock(),
	}
}
