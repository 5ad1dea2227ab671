// Package flappy implements a side-scrolling flappy game.
// The player is pushed forward at a constant speed and must flap through
// the gaps of an endless stream of procedurally generated pipes.
package flappy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/registry"
)

// Game is the simulation context. It owns the player, camera, obstacle
// stream and session state; nothing about a session lives outside it.
type Game struct {
	id    string
	title string

	cfg     config.FlappyConfig
	physics Physics
	player  Player
	camera  Camera
	gen     *Generator
	stream  *Stream
	runtime core.RuntimeConfig

	phase  core.Phase
	score  int
	frames int // Frames simulated in the current run
}

// New creates a game using the refill policy from cfg.
func New(cfg config.FlappyConfig) (*Game, error) {
	return newGame("flappy", "Flappy", cfg)
}

// NewWindowed creates a game that always uses windowed refill.
func NewWindowed(cfg config.FlappyConfig) (*Game, error) {
	cfg.Obstacles.Refill = config.RefillWindowed
	return newGame("flappy_windowed", "Flappy (windowed)", cfg)
}

func newGame(id, title string, cfg config.FlappyConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	gen, err := NewGenerator(cfg.World.ColumnHeight, cfg.World.GapHeight, rand.New(rand.NewSource(1)))
	if err != nil {
		return nil, err
	}

	g := &Game{
		id:    id,
		title: title,
		cfg:   cfg,
		physics: Physics{
			Gravity:         cfg.Physics.Gravity,
			JumpImpulse:     cfg.Physics.JumpImpulse,
			MoveSpeed:       cfg.Physics.MoveSpeed,
			MaxAcceleration: cfg.Physics.MaxAcceleration,
		},
		player: Player{
			Body: core.R(cfg.Player.StartX, cfg.Player.StartY, cfg.Player.Size, cfg.Player.Size),
		},
		camera: Camera{ViewWidth: cfg.World.ViewWidth},
		gen:    gen,
		stream: NewStream(gen, cfg.Obstacles),
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Reset reseeds the obstacle generator and returns to Idle with a fresh
// world. Platforms resolve a zero seed to a time-based one before calling.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.gen.SetRand(rand.New(rand.NewSource(rc.Seed)))
	g.restart()
	g.phase = core.PhaseIdle
}

// restart clears the run: score, pipes, player, camera and spawn cursor.
func (g *Game) restart() {
	g.score = 0
	g.frames = 0
	g.stream.Reset()
	g.player.Place(core.V(g.cfg.Player.StartX, g.cfg.Player.StartY))
	g.camera.Reset()
}

// Step advances the game by dt seconds.
//
// A press while Idle or Dead starts a fresh run and the same frame is
// simulated, so the starting press doubles as the first flap. Holding the
// button never restarts again because only the rising edge counts.
func (g *Game) Step(in core.Button, dt float64) core.StepResult {
	var ev core.Events
	jump := in.Rising()

	if jump && g.phase != core.PhasePlaying {
		g.restart()
		g.phase = core.PhasePlaying
		ev.Started = true
	}

	if g.phase != core.PhasePlaying {
		return core.StepResult{State: g.State(), Events: ev}
	}

	g.frames++

	g.physics.Integrate(&g.player, jump, dt)
	ev.Flapped = jump

	g.camera.Advance(g.physics.MoveSpeed * dt)

	g.stream.Retire(g.camera.Offset.X)
	g.stream.Refill(g.player.Body.Pos.X, g.camera)

	sky, ground := g.camera.Bands(g.cfg.World.ColumnHeight)
	out := Evaluate(g.player.Body, g.stream.Pipes(), sky, ground)
	g.score += out.Scored
	ev.Scored = out.Scored

	if out.Fatal {
		g.phase = core.PhaseDead
		ev.Died = true
	}

	return core.StepResult{State: g.State(), Events: ev}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Phase: g.phase,
	}
}

// Frames returns the number of frames simulated in the current run.
func (g *Game) Frames() int {
	return g.frames
}

// Register both refill variants with the registry
func init() {
	registry.Register("flappy", "Flappy", factory(New))
	registry.Register("flappy_windowed", "Flappy (windowed)", factory(NewWindowed))
}

// factory loads the configuration and builds a game with the given constructor.
func factory(build func(config.FlappyConfig) (*Game, error)) registry.Factory {
	return func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadFlappy(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		g, err := build(cfg)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}
