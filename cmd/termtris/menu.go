package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, play, and come back for another round",
	Long: `Start termtris in interactive menu mode.

Use arrow keys or j/k to choose a difficulty, Enter to play.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Q/Esc        - Quit

Examples:
  termtris menu
  termtris menu --fps 30
  termtris menu --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagShotsDir, "screenshots", defaultShotsDir, "Directory for Ctrl+S screenshots")
}

func runMenu(cmd *cobra.Command, args []string) error {
	current, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return err
	}

	for {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}

		picked, err := tui.RunMenu(width, height, storedHighScore(), current)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		if picked == nil {
			return nil
		}

		current = *picked
		flagDifficulty = string(current)
		if err := runPlay(cmd, args); err != nil {
			return err
		}
	}
}

// storedHighScore reads the best score for the menu header. Storage
// problems show as zero here; runPlay reports them.
func storedHighScore() int {
	store, err := openStore()
	if err != nil {
		return 0
	}
	defer store.Close()

	best, err := store.HighScore()
	if err != nil {
		return 0
	}
	return best
}
