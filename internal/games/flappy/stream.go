package flappy

import (
	"github.com/vovakirdan/flappy/internal/config"
)

// Stream owns the ordered set of live pipes. Pipes are kept sorted by X,
// are retired once they fall behind the camera and are replenished ahead
// of the player according to the refill policy.
type Stream struct {
	gen     *Generator
	pipes   []Pipe
	cursor  float64 // X of the most recently spawned pipe
	batch   int
	spacing float64
	margin  float64
	policy  config.RefillPolicy
}

// NewStream creates an empty stream that spawns pipes with gen.
func NewStream(gen *Generator, obstacles config.FlappyObstacles) *Stream {
	policy := obstacles.Refill
	if policy == "" {
		policy = config.RefillOnEmpty
	}
	return &Stream{
		gen:     gen,
		batch:   obstacles.BatchSize,
		spacing: obstacles.Spacing,
		margin:  obstacles.RetireMargin,
		policy:  policy,
	}
}

// Reset drops every pipe and rewinds the spawn cursor.
func (s *Stream) Reset() {
	s.pipes = s.pipes[:0]
	s.cursor = 0
}

// Policy returns the active refill policy.
func (s *Stream) Policy() config.RefillPolicy {
	return s.policy
}

// Pipes returns the live pipes in spawn order. The slice is owned by the
// stream and must not be retained across steps.
func (s *Stream) Pipes() []Pipe {
	return s.pipes
}

// Len returns the number of live pipes.
func (s *Stream) Len() int {
	return len(s.pipes)
}

// Retire removes pipes whose left edge is more than the retire margin
// behind cameraX. Returns the number of pipes removed.
func (s *Stream) Retire(cameraX float64) int {
	limit := cameraX - s.margin
	n := 0
	for n < len(s.pipes) && s.pipes[n].X < limit {
		n++
	}
	if n == 0 {
		return 0
	}
	s.pipes = append(s.pipes[:0], s.pipes[n:]...)
	return n
}

// Refill spawns new pipes according to the policy. Returns the number spawned.
func (s *Stream) Refill(playerX float64, cam Camera) int {
	switch s.policy {
	case config.RefillWindowed:
		return s.refillWindowed(playerX, cam)
	default:
		return s.refillOnEmpty(playerX)
	}
}

// refillOnEmpty spawns a full batch, but only after the last pipe is gone.
// The batch starts one spacing past the player or the last spawn, whichever
// is further ahead.
func (s *Stream) refillOnEmpty(playerX float64) int {
	if len(s.pipes) > 0 {
		return 0
	}
	s.cursor = max(s.cursor, playerX)
	for i := 0; i < s.batch; i++ {
		s.spawn()
	}
	return s.batch
}

// refillWindowed keeps spawning until the next pipe would land more than
// one spacing past the right edge of the view.
func (s *Stream) refillWindowed(playerX float64, cam Camera) int {
	if len(s.pipes) == 0 {
		s.cursor = max(s.cursor, playerX)
	}
	horizon := cam.Offset.X + cam.ViewWidth + s.spacing
	n := 0
	for s.cursor+s.spacing <= horizon {
		s.spawn()
		n++
	}
	return n
}

func (s *Stream) spawn() {
	s.cursor += s.spacing
	s.pipes = append(s.pipes, s.gen.Generate(s.cursor))
}
