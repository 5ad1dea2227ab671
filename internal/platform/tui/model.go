package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/registry"
	"github.com/vovakirdan/flappy/internal/storage"
)

// EventSink receives the events of every simulated frame (e.g. the sound manager).
type EventSink interface {
	HandleEvents(ev core.Events)
}

// Options are shared by every model of one terminal session.
type Options struct {
	Store    *storage.Store     // Leaderboard, nil disables score saving
	Logger   *log.Logger        // Nil discards log output
	Sound    EventSink          // Nil plays nothing
	Player   string             // Name stored with finished runs
	Theme    *Theme             // Nil means DefaultTheme
	GameOpts registry.Options   // Passed to registry.Create
	Runtime  core.RuntimeConfig // Screen size, tick rate and seed
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Theme == nil {
		t := DefaultTheme()
		o.Theme = &t
	}
	if o.Runtime.TickRate <= 0 {
		o.Runtime.TickRate = 60
	}
	if o.Runtime.Seed == 0 {
		o.Runtime.Seed = time.Now().UnixNano()
	}
	return o
}

// Model is the Bubble Tea model that runs a single game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	opts   Options
	keys   KeyMap
	help   help.Model

	tickID   int
	lastTick time.Time
	button   core.ButtonTracker
	pressed  bool // Flap key seen since the last frame

	state      core.GameState
	paused     bool
	scoreSaved bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	opts = opts.withDefaults()

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 0)),
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   h,
		tickID: nextTickID(),
	}
}

// Init resets the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.opts.Runtime)
	m.opts.Logger.Debug("game started", "game", m.game.ID(), "seed", m.opts.Runtime.Seed)
	return tickCmd(m.tickID, m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "error", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}

	case key.Matches(msg, m.keys.Pause):
		if m.state.Phase == core.PhasePlaying {
			m.paused = !m.paused
			m.lastTick = time.Time{}
		}

	case key.Matches(msg, m.keys.Back):
		// Leaving mid-run would lose the score, so pause instead
		if m.state.Phase == core.PhasePlaying && !m.paused {
			m.paused = true
			return m, nil
		}
		m.backToMenu = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Flap):
		if m.paused {
			m.paused = false
			m.lastTick = time.Time{}
			return m, nil
		}
		m.pressed = true
	}

	return m, nil
}

// handleTick advances the game by the time elapsed since the previous frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	next := tickCmd(m.tickID, m.opts.Runtime.TickRate)
	if m.paused {
		return m, next
	}

	dt := frameDelta(m.lastTick, now, m.opts.Runtime.TickRate)
	m.lastTick = now

	btn := m.button.Next(m.pressed)
	m.pressed = false

	res := m.game.Step(btn, dt)
	m.state = res.State

	if res.Events.Started {
		m.scoreSaved = false
	}
	if m.opts.Sound != nil && res.Events.Any() {
		m.opts.Sound.HandleEvents(res.Events)
	}
	if res.Events.Died {
		m.saveRun()
	}

	return m, next
}

// saveRun records the finished run once. Failures only cost the leaderboard entry.
func (m *Model) saveRun() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	run := storage.Run{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  m.state.Score,
		Seed:   m.opts.Runtime.Seed,
	}
	if f, ok := m.game.(interface{ Frames() int }); ok {
		run.Frames = f.Frames()
	}
	m.opts.Logger.Info("run finished", "game", run.GameID, "player", run.Player, "score", run.Score, "frames", run.Frames)

	if m.opts.Store == nil || run.Score == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := m.opts.Store.SaveRun(ctx, run); err != nil {
		m.opts.Logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot writes the current frame as plain text under ~/.arcade/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// render draws the game and the pause overlay into the screen buffer.
func (m *Model) render() {
	m.game.Render(m.screen)
	if m.paused {
		drawPauseOverlay(m.screen)
	}
}

func drawPauseOverlay(s *core.Screen) {
	const title, hint = "PAUSED", "space to resume  |  esc for menu"
	w := min(len(hint)+4, s.Width())
	x, y := (s.Width()-w)/2, (s.Height()-5)/2

	s.FillRect(x, y, w, 5, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, 5)
	s.DrawTextColor(x+(w-len(title))/2, y+1, title, core.ColorBrightYellow)
	s.DrawText(x+(w-len(hint))/2, y+3, hint)
}

// View renders the current frame followed by the key help line.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.render()
	return RenderScreen(m.screen, *m.opts.Theme) + "\n" + m.opts.Theme.Help.Render(m.help.View(m.keys))
}

// State returns the last known game state.
func (m Model) State() core.GameState {
	return m.state
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the user quits.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
