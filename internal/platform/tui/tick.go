// Package tui provides the Bubble Tea frontend for the flappy games.
// It samples the keyboard, measures frame time, and runs the menu, game,
// scoreboard and SSH session flows.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy/internal/core"
)

// TickMsg is sent to trigger a game simulation frame.
// ID ties a tick to the model that scheduled it, so ticks left over from a
// previous game are dropped instead of doubling the frame rate.
type TickMsg struct {
	ID   int
	Time time.Time
}

var lastTickID int64

func nextTickID() int {
	return int(atomic.AddInt64(&lastTickID, 1))
}

// tickCmd returns a Bubble Tea command that sends one tick after a frame interval.
func tickCmd(id, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

// frameDelta converts the wall-clock gap between two ticks into seconds,
// clamped to core.MaxFrameDelta. The first frame uses the nominal interval.
func frameDelta(last, now time.Time, tickRate int) float64 {
	if last.IsZero() || !now.After(last) {
		if tickRate <= 0 {
			tickRate = 60
		}
		return 1 / float64(tickRate)
	}
	return min(now.Sub(last), core.MaxFrameDelta).Seconds()
}
