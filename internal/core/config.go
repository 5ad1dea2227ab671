package core

import "time"

// MaxFrameDelta caps the frame delta platforms feed into a game.
// A stalled terminal or SSH link would otherwise move the player through
// several obstacles in a single step.
const MaxFrameDelta = 100 * time.Millisecond

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for windowed platforms)
	ScreenH  int   // Screen height in characters (or pixels for windowed platforms)
	TickRate int   // Frames per second the platform aims for (default 60)
	Seed     int64 // RNG seed for obstacle layout
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the session state of a game.
type Phase int

const (
	PhaseIdle    Phase = iota // Waiting for the first press
	PhasePlaying              // Simulation running
	PhaseDead                 // Fatal collision, waiting for a restart press
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhasePlaying:
		return "Playing"
	case PhaseDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score int
	Phase Phase
}

// GameOver returns true once the run has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseDead
}

// Events lists what happened during a single step.
// Audio and score persistence react to these; they never feed back.
type Events struct {
	Started bool // A new run began this frame
	Flapped bool // The player jumped this frame
	Scored  int  // Points awarded this frame
	Died    bool // The run ended this frame
}

// Any returns true if at least one event fired.
func (e Events) Any() bool {
	return e.Started || e.Flapped || e.Scored > 0 || e.Died
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State  GameState
	Events Events
}
