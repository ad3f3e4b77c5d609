// Package config provides YAML-based game configuration loading,
// validation, and difficulty presets for the snake engine.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Config is the full game configuration as loaded from YAML.
type Config struct {
	Grid  GridConfig  `yaml:"grid"`
	Snake SnakeConfig `yaml:"snake"`
	Food  FoodConfig  `yaml:"food"`
	Speed SpeedConfig `yaml:"speed"`
	Input InputConfig `yaml:"input"`
}

// GridConfig defines the play field dimensions in logical cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig defines snake parameters.
type SnakeConfig struct {
	StartLength int `yaml:"start_length"`
}

// FoodConfig defines food values and the bonus lifecycle.
type FoodConfig struct {
	NormalPoints       int     `yaml:"normal_points"`
	BonusPoints        int     `yaml:"bonus_points"`
	BonusChance        float64 `yaml:"bonus_chance"`
	BonusLifetimeTicks int     `yaml:"bonus_lifetime_ticks"`
}

// SpeedConfig defines the speed-level progression.
type SpeedConfig struct {
	BaseIntervalMS int `yaml:"base_interval_ms"`
	MinIntervalMS  int `yaml:"min_interval_ms"`
	StepMS         int `yaml:"step_ms"`
	PointsPerLevel int `yaml:"points_per_level"`
}

// InputConfig defines input source options.
type InputConfig struct {
	ControllerEnabled bool `yaml:"controller_enabled"`
}

// Validate rejects configurations the engine must never see. The core
// itself has no validation; everything is checked here, before a session
// is constructed.
func (c Config) Validate() error {
	if c.Grid.Width < core.MinGridSize || c.Grid.Height < core.MinGridSize {
		return fmt.Errorf("config: grid %dx%d is below the minimum playable size %dx%d",
			c.Grid.Width, c.Grid.Height, core.MinGridSize, core.MinGridSize)
	}
	if c.Snake.StartLength < 1 {
		return fmt.Errorf("config: start length %d must be at least 1", c.Snake.StartLength)
	}
	if c.Snake.StartLength > c.Grid.Width/2 {
		return fmt.Errorf("config: start length %d does not fit a %d-wide grid",
			c.Snake.StartLength, c.Grid.Width)
	}
	if c.Food.NormalPoints < 1 || c.Food.BonusPoints < 1 {
		return fmt.Errorf("config: food point values must be positive")
	}
	if c.Food.BonusChance < 0 || c.Food.BonusChance > 1 {
		return fmt.Errorf("config: bonus chance %v must be within [0, 1]", c.Food.BonusChance)
	}
	if c.Food.BonusLifetimeTicks < 1 {
		return fmt.Errorf("config: bonus lifetime %d must be at least 1 tick", c.Food.BonusLifetimeTicks)
	}
	if c.Speed.BaseIntervalMS <= 0 || c.Speed.MinIntervalMS <= 0 {
		return fmt.Errorf("config: tick intervals must be positive")
	}
	if c.Speed.MinIntervalMS > c.Speed.BaseIntervalMS {
		return fmt.Errorf("config: minimum interval %dms exceeds base interval %dms",
			c.Speed.MinIntervalMS, c.Speed.BaseIntervalMS)
	}
	if c.Speed.StepMS < 0 {
		return fmt.Errorf("config: speed step must not be negative")
	}
	if c.Speed.PointsPerLevel < 1 {
		return fmt.Errorf("config: points per level %d must be at least 1", c.Speed.PointsPerLevel)
	}
	return nil
}

// Rules converts the configuration into the simulation ruleset.
func (c Config) Rules() game.Rules {
	return game.Rules{
		StartLength: c.Snake.StartLength,
		Food: game.FoodRules{
			NormalPoints:  c.Food.NormalPoints,
			BonusPoints:   c.Food.BonusPoints,
			BonusChance:   c.Food.BonusChance,
			BonusLifetime: c.Food.BonusLifetimeTicks,
		},
		Speed: game.SpeedRules{
			BaseInterval:   time.Duration(c.Speed.BaseIntervalMS) * time.Millisecond,
			MinInterval:    time.Duration(c.Speed.MinIntervalMS) * time.Millisecond,
			IntervalStep:   time.Duration(c.Speed.StepMS) * time.Millisecond,
			PointsPerLevel: c.Speed.PointsPerLevel,
		},
	}
}

// Runtime converts the configuration into the validated RuntimeConfig
// handed to the engine.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		GridWidth:         c.Grid.Width,
		GridHeight:        c.Grid.Height,
		StartLength:       c.Snake.StartLength,
		TickInterval:      time.Duration(c.Speed.BaseIntervalMS) * time.Millisecond,
		ControllerEnabled: c.Input.ControllerEnabled,
		Seed:              seed,
	}
}
