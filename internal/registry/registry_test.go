package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/flappy/internal/core"
)

type stubGame struct{ id string }

func (s *stubGame) ID() string { return s.id }
func (s *stubGame) Title() string { return "Stub" }
func (s *stubGame) Reset(core.RuntimeConfig) {}
func (s *stubGame) Step(core.Button, float64) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen) {}
func (s *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	var got Options
	Register("stub_ok", "Stub OK", func(opts Options) (Game, error) {
		got = opts
		return &stubGame{id: "stub_ok"}, nil
	})

	if !Exists("stub_ok") {
		t.Fatal("stub_ok should be registered")
	}
	if Title("stub_ok") != "Stub OK" {
		t.Errorf("Title = %q", Title("stub_ok"))
	}

	g, err := Create("stub_ok", Options{ConfigPath: "x.yaml"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "stub_ok" {
		t.Errorf("ID = %q", g.ID())
	}
	if got.ConfigPath != "x.yaml" {
		t.Errorf("options not forwarded: %+v", got)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game", Options{}); err == nil {
		t.Error("expected error for unknown game")
	}
	if Title("no_such_game") != "no_such_game" {
		t.Error("unknown title should fall back to the ID")
	}
}

func TestCreateFactoryError(t *testing.T) {
	boom := errors.New("boom")
	Register("stub_fail", "Stub Fail", func(Options) (Game, error) {
		return nil, boom
	})

	_, err := Create("stub_fail", Options{})
	if !errors.Is(err, boom) {
		t.Errorf("factory error should be wrapped, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", "Dup", func(Options) (Game, error) { return &stubGame{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("stub_dup", "Dup", func(Options) (Game, error) { return &stubGame{}, nil })
}

func TestListSorted(t *testing.T) {
	Register("stub_b", "B", func(Options) (Game, error) { return &stubGame{}, nil })
	Register("stub_a", "A", func(Options) (Game, error) { return &stubGame{}, nil })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
