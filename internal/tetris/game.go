package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode selects how gravity behaves.
type Mode string

const (
	// ModeMarathon speeds gravity up as the level rises.
	ModeMarathon Mode = "marathon"
	// ModeClassic drops the block at a constant interval.
	ModeClassic Mode = "classic"
)

// Registry ids.
const (
	GameID        = "tetris"
	ClassicGameID = "tetris_classic"
)

var (
	// configPath stores the custom config path set via CLI
	configPath string

	// difficultyPreset stores the difficulty preset set via CLI
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the YAML file loaded by subsequent Reset calls.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset applied on top of the loaded config.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game is one Tetris session.
type Game struct {
	mode       Mode
	cfg        config.TetrisConfig
	cfgFixed   bool // cfg was supplied by the caller and must not be reloaded
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	grid    Grid
	bag     []Block
	current Block
	next    Block

	score  int
	lines  int
	level  int
	pieces int

	gameOver bool
	paused   bool

	// Timing: elapsed is tick/tickRate seconds and gravity fires once
	// elapsed-lastUpdate reaches the level interval.
	tick       uint64
	tickRate   int
	elapsed    float64
	lastUpdate float64

	screenW int
	screenH int
}

// New creates a marathon game. Call Reset before use.
func New() *Game {
	return &Game{mode: ModeMarathon}
}

// NewClassic creates a constant-gravity game. Call Reset before use.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

// NewWithConfig creates a game that uses cfg instead of loading one from disk.
func NewWithConfig(mode Mode, cfg config.TetrisConfig) *Game {
	return &Game{mode: mode, cfg: cfg, cfgFixed: true}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          GameID,
		Title:       "Tetris",
		Description: "Marathon: gravity speeds up every 10 lines",
	}, func() registry.Game {
		return New()
	})
	registry.Register(registry.GameInfo{
		ID:          ClassicGameID,
		Title:       "Tetris (Classic)",
		Description: "Constant 0.2s gravity, no levels",
	}, func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return ClassicGameID
	}
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Tetris (Classic)"
	}
	return "Tetris"
}

// Reset starts a new session with the given runtime parameters.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.cfgFixed {
		cfg, err := config.LoadTetris(configPath)
		if err != nil {
			cfg = config.DefaultTetrisConfig()
		}
		config.ApplyTetrisPreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}
	if g.mode == ModeClassic {
		g.cfg.Gravity.Curve = config.CurveFixed
	}
	g.difficulty = config.NewDifficultyManager(g.cfg)

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tick = 0
	g.elapsed = 0

	g.reset()
}

// reset reinitializes the grid, the bag, both blocks and the score.
// The RNG stream continues so key-triggered restarts stay deterministic.
func (g *Game) reset() {
	g.grid.Reset()
	g.bag = AllBlocks()
	g.current = g.randomBlock()
	g.next = g.randomBlock()
	g.score = 0
	g.lines = 0
	g.pieces = 0
	g.level = g.difficulty.Level(0)
	g.gameOver = false
	g.paused = false
	g.lastUpdate = g.elapsed
}

// randomBlock deals the next block from the 7-bag, refilling it when empty.
func (g *Game) randomBlock() Block {
	if len(g.bag) == 0 {
		g.bag = AllBlocks()
	}
	i := g.rng.Intn(len(g.bag))
	b := g.bag[i]
	g.bag = append(g.bag[:i], g.bag[i+1:]...)
	return b
}

// Step advances the game by one tick: it applies this frame's actions in
// order and then lets gravity act if the interval has elapsed.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.elapsed = float64(g.tick) / float64(g.tickRate)

	piecesBefore, linesBefore := g.pieces, g.lines

	overAtStart := g.gameOver
	for _, a := range in.Actions {
		switch {
		case a == core.ActionBack || a == core.ActionQuit:
			// Handled by the platform.
		case g.gameOver:
			g.HandleInput(a)
		case a == core.ActionPause:
			g.paused = !g.paused
		case a == core.ActionRestart:
			g.HandleInput(a)
		case g.paused:
			// Moves are ignored until unpaused.
		default:
			g.HandleInput(a)
		}
		// Keys queued behind the move that ended the game must not restart it.
		if !overAtStart && g.gameOver {
			break
		}
	}

	if g.paused || g.gameOver {
		// Do not bank paused time as gravity debt.
		g.lastUpdate = g.elapsed
	} else if g.gravityDue() {
		g.lastUpdate = g.elapsed
		g.MoveBlockDown()
	}

	return core.StepResult{
		State:   g.State(),
		Locked:  g.pieces != piecesBefore,
		Cleared: max(g.lines-linesBefore, 0),
	}
}

// timeEpsilon absorbs float rounding so a 0.2s interval fires on exactly
// the 12th tick at 60 ticks per second.
const timeEpsilon = 1e-9

func (g *Game) gravityDue() bool {
	return g.elapsed-g.lastUpdate+timeEpsilon >= g.GravityInterval()
}

// GravityInterval returns the seconds between automatic drops right now.
func (g *Game) GravityInterval() float64 {
	return g.difficulty.Interval(g.level)
}

// HandleInput dispatches one key action. While the game is over any action
// starts a new game instead.
func (g *Game) HandleInput(a core.Action) {
	if g.gameOver {
		if a != core.ActionNone {
			g.reset()
		}
		return
	}

	switch a {
	case core.ActionLeft:
		g.MoveBlockLeft()
	case core.ActionRight:
		g.MoveBlockRight()
	case core.ActionSoftDrop:
		g.SoftDrop()
	case core.ActionRotate:
		g.RotateBlock()
	case core.ActionHardDrop:
		g.HardDrop()
	case core.ActionRestart:
		g.reset()
	}
}

// tryMove applies a speculative move and reverts it with the exact inverse
// delta when the result leaves the grid or overlaps locked cells.
func (g *Game) tryMove(rows, cols int) bool {
	g.current.Move(rows, cols)
	if g.isBlockOutside() || !g.blockFits() {
		g.current.Move(-rows, -cols)
		return false
	}
	return true
}

// MoveBlockLeft shifts the active block one column left if it fits.
func (g *Game) MoveBlockLeft() {
	if g.gameOver {
		return
	}
	g.tryMove(0, -1)
}

// MoveBlockRight shifts the active block one column right if it fits.
func (g *Game) MoveBlockRight() {
	if g.gameOver {
		return
	}
	g.tryMove(0, 1)
}

// MoveBlockDown is the gravity drop: one row down, or lock when blocked.
// It awards no points.
func (g *Game) MoveBlockDown() {
	if g.gameOver {
		return
	}
	if !g.tryMove(1, 0) {
		g.lockBlock()
	}
}

// SoftDrop is a player-requested MoveBlockDown that earns soft-drop points
// when the block actually moves.
func (g *Game) SoftDrop() {
	if g.gameOver {
		return
	}
	if g.tryMove(1, 0) {
		g.UpdateScore(0, g.cfg.Scoring.SoftDrop)
		return
	}
	g.lockBlock()
}

// HardDrop moves the block down as far as it goes and locks it immediately.
func (g *Game) HardDrop() {
	if g.gameOver {
		return
	}
	rows := 0
	for g.tryMove(1, 0) {
		rows++
	}
	g.UpdateScore(0, rows*g.cfg.Scoring.HardDrop)
	g.lockBlock()
}

// RotateBlock rotates the active block, undoing the rotation if it does not fit.
func (g *Game) RotateBlock() {
	if g.gameOver {
		return
	}
	g.current.Rotate()
	if g.isBlockOutside() || !g.blockFits() {
		g.current.UndoRotate()
	}
}

func (g *Game) isBlockOutside() bool {
	for _, p := range g.current.CellPositions() {
		if g.grid.IsCellOutside(p.Row, p.Col) {
			return true
		}
	}
	return false
}

// blockFits checks bounds before occupancy for every cell.
func (g *Game) blockFits() bool {
	for _, p := range g.current.CellPositions() {
		if g.grid.IsCellOutside(p.Row, p.Col) || !g.grid.IsCellEmpty(p.Row, p.Col) {
			return false
		}
	}
	return true
}

// lockBlock commits the active block to the grid and brings in the next
// block. The fit check runs against the board as locked, before full rows are
// cleared and scored, so a next block that does not fit there ends the game.
func (g *Game) lockBlock() {
	for _, p := range g.current.CellPositions() {
		g.grid.Set(p.Row, p.Col, g.current.ID)
	}
	g.pieces++

	g.current = g.next
	if !g.blockFits() {
		g.gameOver = true
	}
	g.next = g.randomBlock()

	cleared := g.grid.ClearFullRows()
	g.lines += cleared
	g.UpdateScore(cleared, 0)
	g.level = g.difficulty.Level(g.lines)
}

// UpdateScore adds the bonus for clearing linesCleared rows at once plus
// moveDownPoints verbatim.
func (g *Game) UpdateScore(linesCleared, moveDownPoints int) {
	g.score += g.cfg.Scoring.LineClearPoints(linesCleared) + moveDownPoints
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Lines returns the number of rows cleared this session.
func (g *Game) Lines() int {
	return g.lines
}

// Level returns the current level.
func (g *Game) Level() int {
	return g.level
}

// GameOver reports whether the session has ended.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
