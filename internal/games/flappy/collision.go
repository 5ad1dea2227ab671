package flappy

import "github.com/vovakirdan/flappy/internal/core"

// Outcome is what the collision pass found for one frame.
type Outcome struct {
	Fatal  bool // Player touched a pipe, the sky or the ground
	Scored int  // Score areas entered for the first time
}

// Evaluate tests the player against every live pipe and both bands.
// Every pipe is visited even after a fatal hit, so a pipe whose score area
// the player reached on the same frame is still awarded. Score flags are
// set on the pipes in place.
func Evaluate(player core.Rect, pipes []Pipe, sky, ground core.Rect) Outcome {
	var out Outcome

	for i := range pipes {
		p := &pipes[i]
		if solidHit(player, p.Top) || solidHit(player, p.Bottom) {
			out.Fatal = true
		}
		if !p.Scored && player.Overlaps(p.ScoreArea) {
			p.Scored = true
			out.Scored++
		}
	}

	if player.Overlaps(sky) || player.Overlaps(ground) {
		out.Fatal = true
	}

	return out
}

// solidHit ignores pipe parts with no rows, which occur when the gap sits
// flush against the top or bottom of the column.
func solidHit(player, solid core.Rect) bool {
	return !solid.Empty() && player.Overlaps(solid)
}
