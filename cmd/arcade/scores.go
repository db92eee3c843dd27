package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pedal-arcade/internal/registry"
	"github.com/vovakirdan/pedal-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagClearScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show score history for a game",
	Long: `Display the top runs for the specified game, with the persisted best.

Examples:
  arcade scores retropedal
  arcade scores saltamuneco --limit 25
  arcade scores saltamuneco --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the run history for the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	configureGame(gameID)
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared run history for %s.\n", title)
		return
	}

	if err := writeScores(os.Stdout, store, gameID, title, flagScoresLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
	}
}

// writeScores prints the top runs for gameID followed by its persisted best.
func writeScores(w io.Writer, store *storage.Store, gameID, title string, limit int) error {
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %-16s  %s\n", "Rank", "Score", "Date", "Run")
	fmt.Fprintf(w, "  %-4s  %-10s  %-16s  %s\n", "----", "-----", "----", "---")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-10d  %-16s  %s\n", i+1, entry.Score, dateStr, shortRunID(entry.RunID))
	}

	// The persisted best can exceed the history, e.g. a run still in progress
	// elsewhere or a history that was cleared
	best, err := store.LoadHighScore(registry.HighScoreKey(gameID))
	if err == nil {
		fmt.Fprintf(w, "\nBest: %d\n", best)
	}
	return nil
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
