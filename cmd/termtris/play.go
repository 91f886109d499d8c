package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/export"
	"github.com/vovakirdan/termtris/internal/platform/tui"
)

const defaultShotsDir = "~/.termtris/screenshots"

var (
	flagConfig     string
	flagDifficulty string
	flagShotsDir   = defaultShotsDir
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the terminal.

Controls:
  Left/Right  - Move
  Down        - Soft drop
  Up          - Rotate
  Space       - Hard drop
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit
  Ctrl+S      - Save a screenshot (text and PNG)
  Ctrl+Y      - Copy the screen to the clipboard

Difficulty options:
  easy   - Slower start
  normal - The configured speed curve
  hard   - Faster start

Examples:
  termtris play
  termtris play --difficulty easy
  termtris play --config ./my-tetris.yaml
  termtris play --seed 42 --highscore-file ./best.txt`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// addGameFlags registers the flags that shape a game session.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagShotsDir, "screenshots", defaultShotsDir, "Directory for Ctrl+S screenshots")
}

// loadGameConfig loads the YAML config and applies the difficulty preset.
func loadGameConfig() (config.TetrisConfig, error) {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("termtris", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Game: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	}

	store, err := openStore()
	if err != nil {
		// The game still works, it just forgets scores.
		fmt.Fprintf(os.Stderr, "Warning: could not open score storage: %v\n", err)
		logger.Warn("score storage unavailable", "error", err)
	} else {
		opts.Store = store
		defer store.Close()
	}

	if exp, expErr := export.New(flagShotsDir); expErr != nil {
		logger.Warn("screenshots disabled", "error", expErr)
	} else {
		opts.Exporter = exp
	}

	logger.Info("starting game", "seed", flagSeed, "fps", flagFPS, "difficulty", flagDifficulty)
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
