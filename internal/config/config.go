// Package config provides YAML-based game configuration loading and
// validation for the flappy platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration cannot produce a playable world.
var ErrInvalid = errors.New("config: invalid configuration")

// RefillPolicy selects how the obstacle stream is replenished.
type RefillPolicy string

const (
	// RefillOnEmpty spawns a whole batch only once every obstacle has been retired.
	RefillOnEmpty RefillPolicy = "on_empty"
	// RefillWindowed keeps the stream filled one obstacle at a time ahead of the camera.
	RefillWindowed RefillPolicy = "windowed"
)

// FlappyConfig contains all configuration for the flappy game.
type FlappyConfig struct {
	World     FlappyWorld     `yaml:"world"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Player    FlappyPlayer    `yaml:"player"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
}

// FlappyWorld defines the playfield dimensions, in tiles.
type FlappyWorld struct {
	ColumnHeight int     `yaml:"column_height"` // Rows between sky and ground
	GapHeight    int     `yaml:"gap_height"`    // Rows the player can pass through
	ViewWidth    float64 `yaml:"view_width"`    // Visible columns
}

// FlappyPhysics defines physics parameters. Units are tiles and seconds.
type FlappyPhysics struct {
	Gravity         float64 `yaml:"gravity"`          // Added to downward acceleration every frame
	JumpImpulse     float64 `yaml:"jump_impulse"`     // Upward acceleration set on a flap
	MoveSpeed       float64 `yaml:"move_speed"`       // Forward speed, tiles per second
	MaxAcceleration float64 `yaml:"max_acceleration"` // Downward acceleration cap, 0 = unbounded
}

// FlappyPlayer defines the player body.
type FlappyPlayer struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Size   float64 `yaml:"size"`
}

// FlappyObstacles defines the obstacle stream.
type FlappyObstacles struct {
	BatchSize    int          `yaml:"batch_size"`    // Pipes spawned per refill
	Spacing      float64      `yaml:"spacing"`       // Distance between consecutive pipes
	RetireMargin float64      `yaml:"retire_margin"` // How far behind the camera a pipe may fall before removal
	Refill       RefillPolicy `yaml:"refill"`
}

// Validate rejects configurations that cannot produce a playable world.
// All returned errors wrap ErrInvalid.
func (c FlappyConfig) Validate() error {
	w := c.World
	switch {
	case w.ColumnHeight <= 0:
		return fmt.Errorf("%w: world.column_height must be positive, got %d", ErrInvalid, w.ColumnHeight)
	case w.GapHeight <= 0:
		return fmt.Errorf("%w: world.gap_height must be positive, got %d", ErrInvalid, w.GapHeight)
	case w.GapHeight >= w.ColumnHeight:
		return fmt.Errorf("%w: world.gap_height (%d) must be smaller than world.column_height (%d)",
			ErrInvalid, w.GapHeight, w.ColumnHeight)
	case w.ViewWidth <= 0:
		return fmt.Errorf("%w: world.view_width must be positive, got %g", ErrInvalid, w.ViewWidth)
	}

	p := c.Physics
	switch {
	case p.MoveSpeed <= 0:
		return fmt.Errorf("%w: physics.move_speed must be positive, got %g", ErrInvalid, p.MoveSpeed)
	case p.MaxAcceleration < 0:
		return fmt.Errorf("%w: physics.max_acceleration must not be negative, got %g", ErrInvalid, p.MaxAcceleration)
	}

	pl := c.Player
	switch {
	case pl.Size <= 0:
		return fmt.Errorf("%w: player.size must be positive, got %g", ErrInvalid, pl.Size)
	case pl.Size >= float64(w.GapHeight):
		return fmt.Errorf("%w: player.size (%g) must fit through the gap (%d)", ErrInvalid, pl.Size, w.GapHeight)
	case pl.StartX < 0 || pl.StartX+pl.Size > w.ViewWidth:
		return fmt.Errorf("%w: player.start_x (%g) must keep the player inside the view", ErrInvalid, pl.StartX)
	case pl.StartY < 0 || pl.StartY+pl.Size > float64(w.ColumnHeight):
		return fmt.Errorf("%w: player.start_y (%g) must keep the player between sky and ground", ErrInvalid, pl.StartY)
	}

	o := c.Obstacles
	switch {
	case o.BatchSize <= 0:
		return fmt.Errorf("%w: obstacles.batch_size must be positive, got %d", ErrInvalid, o.BatchSize)
	case o.Spacing <= 0:
		return fmt.Errorf("%w: obstacles.spacing must be positive, got %g", ErrInvalid, o.Spacing)
	case o.RetireMargin < 0:
		return fmt.Errorf("%w: obstacles.retire_margin must not be negative, got %g", ErrInvalid, o.RetireMargin)
	}
	switch o.Refill {
	case RefillOnEmpty, RefillWindowed:
	default:
		return fmt.Errorf("%w: obstacles.refill must be %q or %q, got %q",
			ErrInvalid, RefillOnEmpty, RefillWindowed, o.Refill)
	}

	return nil
}
