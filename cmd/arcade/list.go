package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pedal-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its stored best score.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Bests are optional here; a missing database shows zeros
	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "ID", "Title", "Best")
	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "--", "-----", "----")

	for _, g := range games {
		best := 0
		if store != nil {
			best, _ = store.LoadHighScore(registry.HighScoreKey(g.ID))
		}
		fmt.Printf("  %-*s  %-14s  %d\n", maxIDLen, g.ID, g.Title, best)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
