package flappy

import (
	"slices"

	"github.com/vovakirdan/flappy/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Mutating it has no effect on the game.
type Snapshot struct {
	Phase        core.Phase
	Score        int
	Player       core.Rect
	Angle        float64
	Camera       Camera
	ColumnHeight int
	GapHeight    int
	Pipes        []Pipe // Live pipes in increasing X
	Sky          core.Rect
	Ground       core.Rect
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	sky, ground := g.camera.Bands(g.cfg.World.ColumnHeight)
	return Snapshot{
		Phase:        g.phase,
		Score:        g.score,
		Player:       g.player.Body,
		Angle:        g.player.Angle,
		Camera:       g.camera,
		ColumnHeight: g.cfg.World.ColumnHeight,
		GapHeight:    g.cfg.World.GapHeight,
		Pipes:        slices.Clone(g.stream.Pipes()),
		Sky:          sky,
		Ground:       ground,
	}
}

// WorldHeight returns the height of the drawn world, sky and ground included.
func (s Snapshot) WorldHeight() float64 {
	return float64(s.ColumnHeight + 2)
}

// WorldTop returns the world y of the top of the sky band.
func (s Snapshot) WorldTop() float64 {
	return s.Sky.Pos.Y
}
