package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	// Loader may pick up a user config on a dev machine; only assert
	// validity plus the embedded defaults when nothing else is present.
	if err := cfg.Validate(); err != nil {
		t.Fatalf("loaded config failed validation: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte("grid:\n  width: 16\n  height: 12\nsnake:\n  start_length: 4\nfood:\n  normal_points: 1\n  bonus_points: 10\n  bonus_chance: 0.5\n  bonus_lifetime_ticks: 20\nspeed:\n  base_interval_ms: 150\n  min_interval_ms: 50\n  step_ms: 10\n  points_per_level: 3\ninput:\n  controller_enabled: true\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Width != 16 || cfg.Grid.Height != 12 {
		t.Errorf("grid = %dx%d, expected 16x12", cfg.Grid.Width, cfg.Grid.Height)
	}
	if !cfg.Input.ControllerEnabled {
		t.Error("controller_enabled not parsed")
	}
	if cfg.Food.BonusPoints != 10 {
		t.Errorf("bonus_points = %d, expected 10", cfg.Food.BonusPoints)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing explicit config path")
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"grid too small", func(c *Config) { c.Grid.Width = 4 }},
		{"zero start length", func(c *Config) { c.Snake.StartLength = 0 }},
		{"start length too long", func(c *Config) { c.Snake.StartLength = c.Grid.Width }},
		{"zero food points", func(c *Config) { c.Food.NormalPoints = 0 }},
		{"bonus chance above one", func(c *Config) { c.Food.BonusChance = 1.5 }},
		{"zero bonus lifetime", func(c *Config) { c.Food.BonusLifetimeTicks = 0 }},
		{"zero base interval", func(c *Config) { c.Speed.BaseIntervalMS = 0 }},
		{"min above base", func(c *Config) { c.Speed.MinIntervalMS = c.Speed.BaseIntervalMS + 1 }},
		{"negative step", func(c *Config) { c.Speed.StepMS = -1 }},
		{"zero points per level", func(c *Config) { c.Speed.PointsPerLevel = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestRulesConversion(t *testing.T) {
	rules := Default().Rules()

	if rules.Speed.BaseInterval != 200*time.Millisecond {
		t.Errorf("base interval = %v, expected 200ms", rules.Speed.BaseInterval)
	}
	if rules.Speed.MinInterval != 60*time.Millisecond {
		t.Errorf("min interval = %v, expected 60ms", rules.Speed.MinInterval)
	}
	if rules.Food.BonusLifetime != 30 {
		t.Errorf("bonus lifetime = %d, expected 30", rules.Food.BonusLifetime)
	}
	if rules.StartLength != 3 {
		t.Errorf("start length = %d, expected 3", rules.StartLength)
	}
}

func TestApplyPreset(t *testing.T) {
	easy := Default()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Speed.BaseIntervalMS <= Default().Speed.BaseIntervalMS {
		t.Error("easy preset should slow the base tick")
	}

	hard := Default()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Speed.BaseIntervalMS >= Default().Speed.BaseIntervalMS {
		t.Error("hard preset should speed up the base tick")
	}

	fixed := Default()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Speed.StepMS != 0 {
		t.Error("fixed preset should disable speed progression")
	}
	if err := fixed.Validate(); err != nil {
		t.Errorf("fixed preset broke validation: %v", err)
	}

	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		cfg := Default()
		ApplyPreset(&cfg, preset)
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s preset broke validation: %v", preset, err)
		}
	}
}

func TestRuntimeConversion(t *testing.T) {
	cfg := Default()
	cfg.Input.ControllerEnabled = true

	rt := cfg.Runtime(42)

	if rt.GridWidth != cfg.Grid.Width || rt.GridHeight != cfg.Grid.Height {
		t.Errorf("grid = %dx%d, expected %dx%d",
			rt.GridWidth, rt.GridHeight, cfg.Grid.Width, cfg.Grid.Height)
	}
	if rt.StartLength != cfg.Snake.StartLength {
		t.Errorf("start length = %d, expected %d", rt.StartLength, cfg.Snake.StartLength)
	}
	if rt.TickInterval != 200*time.Millisecond {
		t.Errorf("tick interval = %v, expected 200ms", rt.TickInterval)
	}
	if !rt.ControllerEnabled {
		t.Error("controller flag not carried into runtime config")
	}
	if rt.Seed != 42 {
		t.Errorf("seed = %d, expected 42", rt.Seed)
	}
}

func TestDefaultYAMLMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default YAML failed to parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, hardcoded = %+v", cfg, Default())
	}
}
