// Package tetris implements the Tetris rules engine: block geometry, the
// playfield grid, and the game state machine that moves, rotates, locks and
// clears. Rendering goes through the Canvas interface so the engine never
// depends on the terminal layer.
package tetris

// Position is a (row, column) cell on the playfield. Row 0 is the top.
type Position struct {
	Row int
	Col int
}
