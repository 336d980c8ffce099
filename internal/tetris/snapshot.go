package tetris

// GameStateType names the state machine position for snapshots.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      Mode
	Score     int
	Lines     int
	Level     int
	Pieces    int
	CurrentID int
	NextID    int
	Rotation  int
	Row       int
	Col       int
	BagLen    int
	Grid      [NumRows][NumCols]int
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	row, col := g.current.Offset()
	return Snapshot{
		Tick:      g.tick,
		Mode:      g.mode,
		Score:     g.score,
		Lines:     g.lines,
		Level:     g.level,
		Pieces:    g.pieces,
		CurrentID: g.current.ID,
		NextID:    g.next.ID,
		Rotation:  g.current.Rotation(),
		Row:       row,
		Col:       col,
		BagLen:    len(g.bag),
		Grid:      g.grid.cells,
		State:     state,
	}
}
