package flappy

import "github.com/vovakirdan/flappy/internal/core"

// Player is the body the user steers.
type Player struct {
	Body         core.Rect
	Velocity     core.Vec2
	Acceleration core.Vec2
	Angle        float64 // Orientation for renderers; gameplay never changes it
}

// Place moves the player to start and clears its motion.
func (p *Player) Place(start core.Vec2) {
	p.Body.Pos = start
	p.Velocity = core.Vec2{}
	p.Acceleration = core.Vec2{}
}

// Physics holds the integrator constants.
type Physics struct {
	Gravity         float64 // Added to downward acceleration every frame
	JumpImpulse     float64 // Upward acceleration set on a flap
	MoveSpeed       float64 // Constant forward speed
	MaxAcceleration float64 // Cap on downward acceleration, 0 = unbounded
}

// Integrate advances the player by one frame.
//
// Vertical velocity is not carried across frames: it is rebuilt from the
// accumulated acceleration every step. Gravity keeps piling onto the
// acceleration until a flap replaces it, so a long fall gets ever faster
// unless MaxAcceleration is set.
func (ph Physics) Integrate(p *Player, jump bool, dt float64) {
	p.Body.Pos.X += ph.MoveSpeed * dt
	p.Velocity.X = ph.MoveSpeed

	p.Velocity.Y = 0
	p.Acceleration.Y += ph.Gravity
	if ph.MaxAcceleration > 0 && p.Acceleration.Y > ph.MaxAcceleration {
		p.Acceleration.Y = ph.MaxAcceleration
	}

	if jump {
		p.Acceleration.Y = 0
		p.Acceleration.Y -= ph.JumpImpulse
	}

	p.Velocity.Y += p.Acceleration.Y * dt
	p.Body.Pos.Y += p.Velocity.Y * dt
}
