// termtris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	termtris                 - Play (same as "termtris play")
//	termtris play            - Play a game
//	termtris menu            - Pick a difficulty and play in a loop
//	termtris scores          - Show high scores
//	termtris serve           - Start SSH server for remote play
//	termtris export          - Render a demo board to an image
//
// Global flags:
//
//	--fps <rate>              - Set tick rate (default: 60)
//	--seed <value>            - Set RNG seed for a reproducible piece order
//	--db <path>               - Set database path (default: ~/.termtris/scores.db)
//	--highscore-file <path>   - Keep a single best score in a plain file instead
//	--log-file <path>         - Write logs to a file
//	--log-level <level>       - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS           int
	flagSeed          int64
	flagDBPath        string
	flagHighScoreFile string
	flagLogFile       string
	flagLogLevel      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termtris",
	Short: "Termtris - falling blocks in your terminal",
	Long: `Termtris is a single-player falling-block puzzle game played in the
terminal. Steer the falling pieces, complete rows to clear them, and
survive as the pieces fall faster with every level.

Available commands:
  play     - Play a game (default)
  menu     - Pick a difficulty, play, repeat
  scores   - View high scores
  serve    - Start SSH server for remote play
  export   - Render a demo board to an image

Examples:
  termtris
  termtris play --difficulty hard
  termtris scores
  termtris serve --ssh :2222
  termtris export --format webp`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.termtris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagHighScoreFile, "highscore-file", "", "Keep only the best score in this file instead of the database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addGameFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
}
