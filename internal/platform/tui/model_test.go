package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	_ "github.com/vovakirdan/tui-tetris/internal/tetris"
)

// scriptedGame ends when it receives a hard drop and restarts on restart.
type scriptedGame struct {
	state  core.GameState
	seen   []core.Action
	resets int
}

func (g *scriptedGame) ID() string    { return "tetris" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Level: 1}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions {
		g.seen = append(g.seen, a)
		switch a {
		case core.ActionHardDrop:
			g.state.Score += 420
			g.state.Lines += 3
			g.state.GameOver = true
		case core.ActionRestart:
			g.state = core.GameState{Level: 1}
		case core.ActionPause:
			g.state.Paused = !g.state.Paused
		}
	}
	return core.StepResult{State: g.state}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted", core.ColorWhite)
}

func (g *scriptedGame) State() core.GameState { return g.state }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{Loop: m.loop})
	return next.(Model)
}

func TestModelSavesScoreOnceOnGameOver(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, WithPlayer("alice"))

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(t, m)
	if !m.State().GameOver {
		t.Fatal("expected game over after hard drop")
	}
	m = tick(t, m)
	m = tick(t, m)

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected exactly one saved score, got %d", len(scores))
	}
	if scores[0].Player != "alice" || scores[0].Score != 420 || scores[0].Lines != 3 {
		t.Errorf("unexpected saved entry: %+v", scores[0])
	}

	// A restart followed by a second game over saves again.
	m = press(t, m, runeKey('r'))
	m = tick(t, m)
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	tick(t, m)

	scores, _ = store.TopScores("tetris", 10)
	if len(scores) != 2 {
		t.Errorf("expected two saved scores after restart, got %d", len(scores))
	}
}

func TestModelWithoutStore(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(t, m)
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}
}

func TestModelForwardsActionsInOrder(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	m = press(t, m, runeKey('h'))
	m = press(t, m, runeKey('h'))
	m = press(t, m, runeKey('k'))
	m = tick(t, m)

	want := []core.Action{core.ActionLeft, core.ActionLeft, core.ActionRotate}
	if len(game.seen) != len(want) {
		t.Fatalf("game saw %v, want %v", game.seen, want)
	}
	for i, a := range want {
		if game.seen[i] != a {
			t.Errorf("seen[%d] = %v, want %v", i, game.seen[i], a)
		}
	}

	tick(t, m)
	if len(game.seen) != len(want) {
		t.Errorf("frame was not cleared between ticks: %v", game.seen)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	m = press(t, m, runeKey('h'))
	next, cmd := m.Update(TickMsg{Loop: m.loop + 1000})
	m = next.(Model)
	if cmd != nil {
		t.Error("stale tick must not schedule another tick")
	}
	if len(game.seen) != 0 {
		t.Errorf("stale tick stepped the game: %v", game.seen)
	}
}

func TestModelBackOnlyWhenPausedOrOver(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("esc while playing must not leave the game")
	}

	m = tick(t, m) // flush the ignored back action
	m = press(t, m, runeKey('p'))
	m = tick(t, m)
	if !m.State().Paused {
		t.Fatal("expected paused state")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc while paused should return to menu")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&scriptedGame{}, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelViewRendersGame(t *testing.T) {
	m := NewModel(&scriptedGame{}, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 5, Seed: 1})
	if !strings.Contains(m.View(), "scripted") {
		t.Errorf("view did not include game output: %q", m.View())
	}
}

func TestMenuListsModes(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("tetris", 1234); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	view := m.View()
	for _, want := range []string{"Tetris", "Tetris (Classic)", "best 1234"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Selected() == nil {
		t.Fatal("enter should select a mode")
	}
	if m.Selected().GameID != m.items[1].GameID {
		t.Errorf("selected %q, want %q", m.Selected().GameID, m.items[1].GameID)
	}
}

func TestMenuScoreboardKey(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
}

func TestScoreboardShowsSavedResults(t *testing.T) {
	store := openStore(t)
	store.SaveResult(storage.Result{GameID: "tetris_classic", Player: "bob", Score: 800, Lines: 4, Level: 1})

	m := NewScoreboardModel(store, 100, 30)
	m.SelectMode("tetris_classic")

	view := m.View()
	for _, want := range []string{"Tetris (Classic)", "bob", "800", "1 games"} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard view missing %q", want)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	store := openStore(t)
	s := NewSessionModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, "carol", nil)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.screen != screenGame {
		t.Fatalf("expected game screen, got %v", s.screen)
	}
	if s.gameModel.player != "carol" {
		t.Errorf("player = %q, want carol", s.gameModel.player)
	}

	next, _ = s.Update(runeKey('p'))
	s = next.(SessionModel)
	next, _ = s.Update(TickMsg{Loop: s.gameModel.loop})
	s = next.(SessionModel)
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)

	if s.screen != screenMenu {
		t.Errorf("expected menu screen after back, got %v", s.screen)
	}
	if s.quitting {
		t.Error("back to menu must not end the session")
	}
}
