package gui

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
	"github.com/vovakirdan/flappy/internal/storage"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func testSnapshot(camX float64) flappy.Snapshot {
	cam := flappy.Camera{Offset: core.V(camX, 0), ViewWidth: 13}
	sky, ground := cam.Bands(11)
	return flappy.Snapshot{
		Camera:       cam,
		ColumnHeight: 11,
		GapHeight:    3,
		Sky:          sky,
		Ground:       ground,
	}
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		camX         float64
		r            core.Rect
		x, y, rw, rh float32
	}{
		{"square window", 1300, 1300, 0, core.R(2, 4, 1, 1), 200, 500, 100, 100},
		{"tall window is letterboxed", 1300, 2600, 0, core.R(2, 4, 1, 1), 200, 1150, 100, 100},
		{"wide window is pillarboxed", 2600, 1300, 0, core.R(0, -1, 1, 1), 650, 0, 100, 100},
		{"camera scrolls", 1300, 1300, 5, core.R(7, 0, 1, 2), 200, 100, 100, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTransform(tt.w, tt.h, testSnapshot(tt.camX))
			x, y, w, h := tr.rect(tt.r)
			if !near(x, tt.x) || !near(y, tt.y) || !near(w, tt.rw) || !near(h, tt.rh) {
				t.Errorf("rect = (%v, %v, %v, %v), want (%v, %v, %v, %v)", x, y, w, h, tt.x, tt.y, tt.rw, tt.rh)
			}
		})
	}
}

func TestTransformViewRect(t *testing.T) {
	s := testSnapshot(3)
	tr := newTransform(1300, 1300, s)

	x, y, w, h := tr.viewRect(s)
	if !near(x, 0) || !near(y, 0) || !near(w, 1300) || !near(h, 1300) {
		t.Errorf("viewRect = (%v, %v, %v, %v), want the whole window", x, y, w, h)
	}
}

func TestTransformEmptyView(t *testing.T) {
	tr := newTransform(800, 800, flappy.Snapshot{})
	if tr.scale != 0 {
		t.Errorf("scale = %v, want 0 for an empty view", tr.scale)
	}
}

func TestPipeCaps(t *testing.T) {
	full := flappy.Pipe{
		Top:    core.R(4, 0, 1, 5),
		Bottom: core.R(4, 8, 1, 3),
	}
	if got := len(pipeCaps(full)); got != 2 {
		t.Errorf("caps = %d, want 2", got)
	}

	flush := flappy.Pipe{
		Top:    core.R(4, 0, 1, 0),
		Bottom: core.R(4, 3, 1, 8),
	}
	caps := pipeCaps(flush)
	if len(caps) != 1 {
		t.Fatalf("caps = %d, want 1 when the top part is empty", len(caps))
	}
	if caps[0].Pos.Y != 3 {
		t.Errorf("bottom cap y = %v, want 3", caps[0].Pos.Y)
	}
}

func TestOverlayLines(t *testing.T) {
	s := testSnapshot(0)

	s.Phase = core.PhaseIdle
	if lines := overlayLines(s); len(lines) == 0 || lines[0] != "FLAPPY" {
		t.Errorf("idle overlay = %v", lines)
	}

	s.Phase = core.PhasePlaying
	if lines := overlayLines(s); lines != nil {
		t.Errorf("playing overlay = %v, want none", lines)
	}

	s.Phase = core.PhaseDead
	s.Score = 9
	lines := overlayLines(s)
	if len(lines) < 2 || lines[0] != "GAME OVER" || lines[1] != "Score: 9" {
		t.Errorf("dead overlay = %v", lines)
	}
}

type countingSink struct{ n int }

func (s *countingSink) HandleEvents(core.Events) { s.n++ }

func TestAdvanceRecordsRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	src, err := flappy.New(config.DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	sink := &countingSink{}
	g := New(src, Options{Store: store, Sound: sink, Player: "gui", Seed: 3})

	res := g.advance(true, 1.0/60)
	if !res.Events.Started {
		t.Fatal("first press should start the run")
	}

	// Never flapping again ends the run on the ground
	for i := 0; i < 600 && src.State().Phase == core.PhasePlaying; i++ {
		g.advance(false, 1.0/60)
	}
	if src.State().Phase != core.PhaseDead {
		t.Fatalf("phase = %v, want Dead", src.State().Phase)
	}
	if !g.scoreSaved {
		t.Error("run should be marked as recorded")
	}
	if sink.n < 2 {
		t.Errorf("sink saw %d event frames, want start and death", sink.n)
	}

	// A zero-score run is logged but not stored
	high, err := store.HighScore(context.Background(), src.ID())
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if high != src.State().Score {
		t.Errorf("high = %d, want %d", high, src.State().Score)
	}
}

func TestNewDefaults(t *testing.T) {
	src, err := flappy.New(config.DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	g := New(src, Options{})

	if g.opts.Width != WindowWidth || g.opts.Height != WindowHeight {
		t.Errorf("size = %dx%d", g.opts.Width, g.opts.Height)
	}
	if g.opts.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
	if w, h := g.Layout(640, 480); w != 640 || h != 480 {
		t.Errorf("Layout = %dx%d", w, h)
	}
}
