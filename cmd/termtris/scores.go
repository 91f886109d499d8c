package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termtris/internal/platform/tui"
	"github.com/vovakirdan/termtris/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresReset bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded games.

With the database backend every finished game is kept, so the top games
and overall statistics are shown. With --highscore-file only the single
best score exists.

Examples:
  termtris scores
  termtris scores --limit 20
  termtris scores --tui
  termtris scores --reset
  termtris scores --highscore-file ./best.txt`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to list")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete all recorded scores")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return fmt.Errorf("opening score storage: %w", err)
	}
	defer store.Close()

	if flagScoresReset {
		return resetScores(store)
	}

	db, ok := store.(*storage.SQLiteStore)
	if !ok {
		high, err := store.HighScore()
		if err != nil {
			return err
		}
		fmt.Printf("Best: %d\n", high)
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(db, width, height)
	}

	return printScores(db)
}

func resetScores(store storage.Store) error {
	type resetter interface{ Reset() error }
	r, ok := store.(resetter)
	if !ok {
		return fmt.Errorf("this store cannot be reset")
	}
	if err := r.Reset(); err != nil {
		return err
	}
	fmt.Println("Scores cleared.")
	return nil
}

func printScores(db *storage.SQLiteStore) error {
	scores, err := db.TopScores(flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'termtris play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "Rank", "Score", "Lines", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-10d  %-6d  %-6d  %s\n",
			i+1, e.Score, e.Lines, e.Level, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	st, err := db.Stats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("Best: %d   Games: %d   Average: %.0f   Lines: %d\n",
		st.HighScore, st.Games, st.AvgScore, st.TotalLines)
	return nil
}
