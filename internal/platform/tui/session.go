package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy/internal/registry"
)

// screenKind identifies the active child model of a session.
type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScores
)

// SessionModel manages the full flow of one terminal session:
// menu -> game -> menu, and menu -> scoreboard -> menu.
// Children signal transitions by quitting; the session swallows those
// quits and switches screens instead.
type SessionModel struct {
	opts      Options
	fixedSeed bool // Seed given by the user; otherwise every game gets a new one
	current   screenKind
	menu      MenuModel
	game      Model
	scores    ScoreboardModel
	quitting  bool
}

// NewSessionModel creates a session that starts at the menu.
func NewSessionModel(opts Options) SessionModel {
	fixed := opts.Runtime.Seed != 0
	opts = opts.withDefaults()
	return SessionModel{
		opts:      opts,
		fixedSeed: fixed,
		menu:      NewMenuModel(opts),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates while the menu is shown.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.opts)
		m.current = screenScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		id := m.menu.Selected().GameID
		game, err := registry.Create(id, m.opts.GameOpts)
		if err != nil {
			m.opts.Logger.Error("could not create game", "game", id, "error", err)
			m.menu = NewMenuModel(m.opts)
			return m, nil
		}
		if !m.fixedSeed {
			m.opts.Runtime.Seed = time.Now().UnixNano()
		}
		m.game = NewModel(game, m.opts)
		m.current = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates while a game is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(Model)

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.game.BackToMenu():
		return m.toMenu()
	}

	return m, cmd
}

// updateScores handles updates while the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.scores.IsGoingBack():
		return m.toMenu()
	}

	return m, cmd
}

// toMenu rebuilds the menu so high scores reflect the last run.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.opts)
	m.current = screenMenu
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// IsQuitting returns true if the user quit the session.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// RunSession runs the menu, games and scoreboard until the user quits.
func RunSession(opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
