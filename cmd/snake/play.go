package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
	"github.com/vovakirdan/tui-snake/internal/theme"
)

var (
	flagConfig     string
	flagDifficulty string
	flagTheme      string
	flagGrid       string
	flagTickMS     int
	flagLength     int
	flagController bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  WASD/Arrows - Steer
  P/Esc       - Pause
  Enter/Space - Confirm
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower base speed, more bonus food
  normal - Config defaults
  hard   - Faster base speed, quicker level-ups
  fixed  - No speed progression

Examples:
  snake play
  snake play --difficulty easy
  snake play --theme ocean --grid 40x24
  snake play --config ./my-snake.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Theme name (see themes in ~/.snake/themes)")
	playCmd.Flags().StringVar(&flagGrid, "grid", "", "Grid size as WIDTHxHEIGHT (e.g. 40x24)")
	playCmd.Flags().IntVar(&flagTickMS, "tick-ms", 0, "Base tick interval in milliseconds (0 = from config)")
	playCmd.Flags().IntVar(&flagLength, "length", 0, "Starting snake length (0 = from config)")
	playCmd.Flags().BoolVar(&flagController, "controller", false, "Enable the controller input source")
}

// parseGridFlag parses a WIDTHxHEIGHT string.
func parseGridFlag(s string) (w, h int, err error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected WIDTHxHEIGHT, got %q", s)
	}
	if _, err := fmt.Sscanf(parts[0]+" "+parts[1], "%d %d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("expected WIDTHxHEIGHT, got %q", s)
	}
	return w, h, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}

	// Flag overrides win over config file and preset
	if flagGrid != "" {
		w, h, gridErr := parseGridFlag(flagGrid)
		if gridErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", gridErr)
			os.Exit(1)
		}
		cfg.Grid.Width = w
		cfg.Grid.Height = h
	}
	if flagTickMS > 0 {
		cfg.Speed.BaseIntervalMS = flagTickMS
	}
	if flagLength > 0 {
		cfg.Snake.StartLength = flagLength
	}
	if flagController {
		cfg.Input.ControllerEnabled = true
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	th, err := theme.ByName(flagTheme, userThemeDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Zero seed means the platform layer picks a time-based one
	rt := cfg.Runtime(flagSeed)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg.Rules(), rt, store, th)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// userThemeDir is where user-provided theme files live.
func userThemeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "themes")
}
