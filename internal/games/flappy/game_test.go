package flappy

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/registry"
)

var (
	press   = core.Button{Down: true}
	hold    = core.Button{Down: true, PrevDown: true}
	release = core.Button{PrevDown: true}
	idle    = core.Button{}
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(config.DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

// startCalm starts a run, then removes the start flap and every pipe so
// tests can place the player and obstacles by hand.
func startCalm(t *testing.T, g *Game) {
	t.Helper()
	g.Step(press, dt)
	if g.State().Phase != core.PhasePlaying {
		t.Fatalf("press should start the game, phase = %v", g.State().Phase)
	}
	g.player.Acceleration = core.Vec2{}
	g.player.Velocity = core.Vec2{}
	g.stream.pipes = g.stream.pipes[:0]
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.World.GapHeight = cfg.World.ColumnHeight

	if _, err := New(cfg); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("expected config.ErrInvalid, got %v", err)
	}
}

func TestNewStartsIdle(t *testing.T) {
	g := newTestGame(t)

	if g.State().Phase != core.PhaseIdle {
		t.Errorf("phase = %v, expected Idle", g.State().Phase)
	}
	if g.stream.Len() != 0 {
		t.Errorf("idle game has %d pipes", g.stream.Len())
	}

	// Nothing moves without a press
	before := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(idle, dt)
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("idle game changed without input")
	}
}

func TestStartSpawnsBatch(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(press, dt)

	if !res.Events.Started || !res.Events.Flapped {
		t.Errorf("start press should start and flap: %+v", res.Events)
	}
	if res.State.Phase != core.PhasePlaying {
		t.Fatalf("phase = %v, expected Playing", res.State.Phase)
	}

	pipes := g.Snapshot().Pipes
	if len(pipes) != 10 {
		t.Fatalf("got %d pipes, expected 10", len(pipes))
	}
	for i := 1; i < len(pipes); i++ {
		if pipes[i].X <= pipes[i-1].X {
			t.Errorf("pipes not increasing: %g then %g", pipes[i-1].X, pipes[i].X)
		}
	}
	if pipes[0].X <= g.player.Body.Pos.X {
		t.Errorf("first pipe at %g is not ahead of the player at %g", pipes[0].X, g.player.Body.Pos.X)
	}
}

func TestHoldingDoesNotJumpAgain(t *testing.T) {
	g := newTestGame(t)
	g.Step(press, dt)

	for i := 0; i < 5; i++ {
		if res := g.Step(hold, dt); res.Events.Flapped {
			t.Fatal("held button must not flap")
		}
	}
	g.Step(release, dt)
	if res := g.Step(press, dt); !res.Events.Flapped {
		t.Error("new press should flap")
	}
}

func TestBottomCollisionKills(t *testing.T) {
	g := newTestGame(t)
	startCalm(t, g)

	// Gap in rows 0..2, bottom from row 3; the player sits at y=4
	g.stream.pipes = append(g.stream.pipes, newPipe(g.player.Body.Pos.X, 0, 11, 3))

	res := g.Step(idle, dt)

	if res.State.Phase != core.PhaseDead || !res.Events.Died {
		t.Fatalf("expected death, got %+v", res)
	}
	if res.State.Score != 0 {
		t.Errorf("score = %d, expected unchanged 0", res.State.Score)
	}
}

func TestScoreAreaCountsOnce(t *testing.T) {
	g := newTestGame(t)
	startCalm(t, g)

	// Gap rows 3..5 around the player, score area under the player
	g.stream.pipes = append(g.stream.pipes, newPipe(g.player.Body.Pos.X-0.1, 3, 11, 3))

	res := g.Step(idle, dt)
	if res.State.Score != 1 || res.Events.Scored != 1 {
		t.Fatalf("first overlap: %+v", res)
	}

	res = g.Step(idle, dt)
	if res.State.Score != 1 || res.Events.Scored != 0 {
		t.Errorf("continued overlap scored again: %+v", res)
	}
	if res.State.Phase != core.PhasePlaying {
		t.Errorf("player in the gap died: %v", res.State.Phase)
	}
}

func TestCeilingAndGroundKill(t *testing.T) {
	tests := []struct {
		name string
		y    float64
	}{
		{"sky", -0.5},
		{"ground", 10.6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			startCalm(t, g)
			g.player.Body.Pos.Y = tc.y

			if res := g.Step(idle, dt); res.State.Phase != core.PhaseDead {
				t.Errorf("phase = %v, expected Dead", res.State.Phase)
			}
		})
	}
}

func TestFreeFallEndsOnGround(t *testing.T) {
	g := newTestGame(t)
	startCalm(t, g)

	for i := 0; i < 600 && g.State().Phase == core.PhasePlaying; i++ {
		g.stream.pipes = g.stream.pipes[:0]
		g.Step(idle, dt)
	}
	if g.State().Phase != core.PhaseDead {
		t.Fatal("falling player should hit the ground")
	}
	if g.player.Body.Bottom() <= 11 {
		t.Errorf("player died above the ground: bottom = %g", g.player.Body.Bottom())
	}
}

func TestDeadFreezes(t *testing.T) {
	g := newTestGame(t)
	startCalm(t, g)
	g.player.Body.Pos.Y = -0.5
	g.Step(idle, dt)

	frozen := g.Snapshot()
	for _, in := range []core.Button{idle, hold, release, idle} {
		res := g.Step(in, dt)
		if res.State.Phase != core.PhaseDead || res.Events.Any() {
			t.Fatalf("dead game reacted to %+v: %+v", in, res)
		}
	}
	if !reflect.DeepEqual(frozen, g.Snapshot()) {
		t.Error("dead game kept moving")
	}
}

func TestRestartFromDead(t *testing.T) {
	g := newTestGame(t)
	startCalm(t, g)
	g.score = 7
	for i := 0; i < 120; i++ {
		g.Step(idle, dt)
	}
	g.player.Body.Pos.Y = 10.6
	g.Step(idle, dt)
	if g.State().Phase != core.PhaseDead {
		t.Fatal("setup: expected Dead")
	}

	res := g.Step(press, dt)

	if !res.Events.Started || res.State.Phase != core.PhasePlaying {
		t.Fatalf("press should restart: %+v", res)
	}
	if res.State.Score != 0 {
		t.Errorf("score = %d after restart", res.State.Score)
	}
	if g.Frames() != 1 {
		t.Errorf("frames = %d after restart, expected 1", g.Frames())
	}
	// One frame of motion from the start position
	if !approx(g.player.Body.Pos.X, 2+3*dt) {
		t.Errorf("player x = %g, expected start position plus one frame", g.player.Body.Pos.X)
	}
	if !approx(g.camera.Offset.X, 3*dt) {
		t.Errorf("camera = %g, expected one frame from origin", g.camera.Offset.X)
	}
	if g.stream.Len() != 10 || !approx(g.stream.Pipes()[0].X, 2+3*dt+4) {
		t.Errorf("stream not rebuilt from the start: %d pipes", g.stream.Len())
	}
}

func TestResetFromAnyState(t *testing.T) {
	phases := []struct {
		name  string
		setup func(g *Game)
	}{
		{"idle", func(g *Game) {}},
		{"playing", func(g *Game) {
			g.Step(press, dt)
			for i := 0; i < 20; i++ {
				g.Step(idle, dt)
			}
			g.score = 3
		}},
		{"dead", func(g *Game) {
			g.Step(press, dt)
			g.player.Body.Pos.Y = -1
			g.Step(idle, dt)
			g.score = 5
		}},
	}

	for _, tc := range phases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			tc.setup(g)

			g.Reset(core.RuntimeConfig{Seed: 9})

			s := g.Snapshot()
			if s.Phase != core.PhaseIdle || s.Score != 0 {
				t.Errorf("phase=%v score=%d after reset", s.Phase, s.Score)
			}
			if len(s.Pipes) != 0 {
				t.Errorf("%d pipes after reset", len(s.Pipes))
			}
			if s.Player.Pos != core.V(2, 4) {
				t.Errorf("player at %+v after reset", s.Player.Pos)
			}
			if g.player.Velocity != (core.Vec2{}) || g.player.Acceleration != (core.Vec2{}) {
				t.Error("player motion not cleared")
			}
			if s.Camera.Offset != (core.Vec2{}) {
				t.Errorf("camera at %+v after reset", s.Camera.Offset)
			}
			if g.stream.cursor != 0 {
				t.Errorf("spawn cursor = %g after reset", g.stream.cursor)
			}
		})
	}
}

// script flaps every 20 frames so the run lasts a while.
func script(frames int) []core.Button {
	var tr core.ButtonTracker
	out := make([]core.Button, frames)
	for i := range out {
		out[i] = tr.Next(i%20 == 0)
	}
	return out
}

func TestDeterminism(t *testing.T) {
	run := func() (Snapshot, int) {
		g := newTestGame(t)
		for _, in := range script(600) {
			g.Step(in, dt)
		}
		return g.Snapshot(), g.Frames()
	}

	s1, f1 := run()
	s2, f2 := run()

	if f1 != f2 {
		t.Errorf("frame counts differ: %d vs %d", f1, f2)
	}
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestSeedChangesLayout(t *testing.T) {
	layout := func(seed int64) []int {
		g := newTestGame(t)
		g.Reset(core.RuntimeConfig{Seed: seed})
		g.Step(press, dt)
		var entrances []int
		for _, p := range g.Snapshot().Pipes {
			entrances = append(entrances, p.Entrance)
		}
		return entrances
	}

	if reflect.DeepEqual(layout(1), layout(2)) {
		t.Error("different seeds produced the same layout")
	}
	if !reflect.DeepEqual(layout(3), layout(3)) {
		t.Error("same seed produced different layouts")
	}
}

func TestWindowedVariant(t *testing.T) {
	g, err := NewWindowed(config.DefaultFlappyConfig())
	if err != nil {
		t.Fatal(err)
	}
	g.Reset(core.RuntimeConfig{Seed: 1})
	g.Step(press, dt)

	if g.ID() != "flappy_windowed" {
		t.Errorf("ID = %q", g.ID())
	}
	if g.stream.Policy() != config.RefillWindowed {
		t.Errorf("policy = %q", g.stream.Policy())
	}
	if n := g.stream.Len(); n == 0 || n >= 10 {
		t.Errorf("windowed start spawned %d pipes", n)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t)
	g.Step(press, dt)

	s := g.Snapshot()
	s.Pipes[0].Scored = true
	s.Pipes[0].X = -100

	if p := g.stream.Pipes()[0]; p.Scored || p.X == -100 {
		t.Error("mutating the snapshot changed the game")
	}
}

func TestRegistered(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	for _, id := range []string{"flappy", "flappy_windowed"} {
		g, err := registry.Create(id, registry.Options{})
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID = %q, expected %q", g.ID(), id)
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Press SPACE to start") {
		t.Error("idle screen should prompt for a press")
	}

	g.Step(press, dt)
	g.Render(screen)
	out := screen.String()
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player not drawn")
	}
	if !strings.ContainsRune(out, PipeChar) {
		t.Error("pipes not drawn")
	}
	if !strings.ContainsRune(screen.Row(1), SkyChar) {
		t.Error("sky band should be the first field row")
	}
	if !strings.ContainsRune(screen.Row(23), GroundChar) {
		t.Error("ground band should be the last row")
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing: %q", screen.Row(0))
	}

	g.player.Body.Pos.Y = -1
	g.Step(idle, dt)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("dead screen should show game over")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(30, 4)

	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected size warning, got %q", screen.String())
	}
}
