package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default flappy configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: FlappyWorld{
			ColumnHeight: 11,
			GapHeight:    3,
			ViewWidth:    13,
		},
		Physics: FlappyPhysics{
			Gravity:         15,
			JumpImpulse:     400,
			MoveSpeed:       3,
			MaxAcceleration: 0,
		},
		Player: FlappyPlayer{
			StartX: 2,
			StartY: 4,
			Size:   0.7,
		},
		Obstacles: FlappyObstacles{
			BatchSize:    10,
			Spacing:      4,
			RetireMargin: 1,
			Refill:       RefillOnEmpty,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy", "flappy_windowed":
		return defaultFlappyYAML
	default:
		return nil
	}
}
