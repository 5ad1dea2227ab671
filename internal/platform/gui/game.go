// Package gui runs the flappy games in a desktop window using Ebitengine.
package gui

import (
	"context"
	"image/color"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
	"github.com/vovakirdan/flappy/internal/storage"
)

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 800
	WindowTitle  = "Flappy"
)

// Source is a game that exposes its frame snapshot for pixel rendering.
type Source interface {
	ID() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.Button, dt float64) core.StepResult
	State() core.GameState
	Frames() int
	Snapshot() flappy.Snapshot
}

// EventSink receives the events of every simulated frame (e.g. the sound manager).
type EventSink interface {
	HandleEvents(ev core.Events)
}

// Options configure a window session.
type Options struct {
	Store      *storage.Store // Nil disables score saving
	Logger     *log.Logger    // Nil discards log output
	Sound      EventSink      // Nil plays nothing
	Player     string
	Seed       int64 // Zero picks a time-based seed
	Width      int
	Height     int
	Fullscreen bool
}

// Game adapts a Source to ebiten.Game.
type Game struct {
	src    Source
	opts   Options
	button core.ButtonTracker

	last       time.Time
	paused     bool
	scoreSaved bool
}

// New creates a window game and resets src.
func New(src Source, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = WindowWidth, WindowHeight
	}

	src.Reset(core.RuntimeConfig{
		ScreenW:  opts.Width,
		ScreenH:  opts.Height,
		TickRate: ebiten.DefaultTPS,
		Seed:     opts.Seed,
	})
	return &Game{src: src, opts: opts}
}

// Update samples input and advances the simulation by the measured frame time.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && g.src.State().Phase == core.PhasePlaying {
		g.paused = !g.paused
		g.last = time.Time{}
	}
	if g.paused {
		return nil
	}

	now := time.Now()
	dt := 1.0 / float64(ebiten.DefaultTPS)
	if !g.last.IsZero() {
		dt = min(now.Sub(g.last), core.MaxFrameDelta).Seconds()
	}
	g.last = now

	g.advance(buttonHeld(), dt)
	return nil
}

// buttonHeld reports whether any flap input is held this frame.
func buttonHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsKeyPressed(ebiten.KeyUp) ||
		ebiten.IsKeyPressed(ebiten.KeyW) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		len(ebiten.AppendTouchIDs(nil)) > 0
}

// advance steps the game once and reacts to its events.
func (g *Game) advance(down bool, dt float64) core.StepResult {
	res := g.src.Step(g.button.Next(down), dt)

	if res.Events.Started {
		g.scoreSaved = false
	}
	if g.opts.Sound != nil && res.Events.Any() {
		g.opts.Sound.HandleEvents(res.Events)
	}
	if res.Events.Died {
		g.saveRun(res.State.Score)
	}
	return res
}

// saveRun records the finished run once.
func (g *Game) saveRun(score int) {
	if g.scoreSaved {
		return
	}
	g.scoreSaved = true

	run := storage.Run{
		GameID: g.src.ID(),
		Player: g.opts.Player,
		Score:  score,
		Frames: g.src.Frames(),
		Seed:   g.opts.Seed,
	}
	g.opts.Logger.Info("run finished", "game", run.GameID, "score", run.Score, "frames", run.Frames)

	if g.opts.Store == nil || run.Score == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := g.opts.Store.SaveRun(ctx, run); err != nil {
		g.opts.Logger.Warn("could not save score", "error", err)
	}
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.src.Snapshot()
	b := screen.Bounds()
	t := newTransform(b.Dx(), b.Dy(), s)

	screen.Fill(colorShade)
	x, y, w, h := t.viewRect(s)
	vector.FillRect(screen, x, y, w, h, colorBackground, false)

	fill := func(r core.Rect, c color.Color) {
		x, y, w, h := t.rect(r)
		vector.FillRect(screen, x, y, w, h, c, false)
	}

	fill(s.Sky, colorSky)
	fill(s.Ground, colorGround)
	for _, p := range s.Pipes {
		if !s.Camera.Visible(core.R(p.X-0.2, 0, flappy.PipeWidth+0.4, 1)) {
			continue
		}
		fill(p.Top, colorPipe)
		fill(p.Bottom, colorPipe)
		for _, c := range pipeCaps(p) {
			fill(c, colorPipeCap)
		}
	}
	fill(s.Player, colorPlayer)

	// Clip anything drawn past the world edges
	if x > 0 {
		vector.FillRect(screen, 0, 0, x, float32(b.Dy()), colorShade, false)
		vector.FillRect(screen, x+w, 0, float32(b.Dx())-x-w, float32(b.Dy()), colorShade, false)
	}

	g.drawText(screen, s)
}

// drawText draws the score and the phase overlay.
func (g *Game) drawText(screen *ebiten.Image, s flappy.Snapshot) {
	face := basicfont.Face7x13
	b := screen.Bounds()

	text.Draw(screen, "Score: "+strconv.Itoa(s.Score), face, 10, 20, colorText)
	if g.paused {
		text.Draw(screen, "PAUSED  (P to resume)", face, 10, 38, colorText)
	}

	lines := overlayLines(s)
	if len(lines) == 0 {
		return
	}

	const lineH = 18
	top := b.Dy()/2 - len(lines)*lineH/2
	vector.FillRect(screen, 0, float32(top-lineH), float32(b.Dx()), float32((len(lines)+1)*lineH), colorShade, false)
	for i, line := range lines {
		x := (b.Dx() - len(line)*face.Advance) / 2
		text.Draw(screen, line, face, x, top+i*lineH, colorText)
	}
}

// Layout uses the window size as the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(src Source, opts Options) error {
	g := New(src, opts)

	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(g.opts.Fullscreen)

	return ebiten.RunGame(g)
}
