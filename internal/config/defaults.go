package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid:  GridConfig{Width: 32, Height: 20},
		Snake: SnakeConfig{StartLength: 3},
		Food: FoodConfig{
			NormalPoints:       1,
			BonusPoints:        5,
			BonusChance:        0.125,
			BonusLifetimeTicks: 30,
		},
		Speed: SpeedConfig{
			BaseIntervalMS: 200,
			MinIntervalMS:  60,
			StepMS:         20,
			PointsPerLevel: 5,
		},
		Input: InputConfig{ControllerEnabled: false},
	}
}

// DefaultYAML returns the embedded default YAML, for `config init` style
// tooling and documentation.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
