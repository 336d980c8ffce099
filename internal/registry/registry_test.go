package registry

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string                           { return s.id }
func (s stubGame) Title() string                        { return "Stub" }
func (s stubGame) Reset(core.RuntimeConfig)             {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen)                  {}
func (s stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register(GameInfo{ID: "zz_stub", Title: "Stub"}, func() Game { return stubGame{id: "zz_stub"} })
	Register(GameInfo{ID: "aa_stub", Title: "Stub A"}, func() Game { return stubGame{id: "aa_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}
	if Exists("missing") {
		t.Error("unregistered game should not exist")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("Create() returned game %q", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of unknown id should fail")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	info, ok := Lookup("aa_stub")
	if !ok || info.Title != "Stub A" {
		t.Errorf("Lookup() = %+v, %v", info, ok)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "dup_stub"}, func() Game { return stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(GameInfo{ID: "dup_stub"}, func() Game { return stubGame{} })
}
