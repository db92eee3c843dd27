package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pedal-arcade/internal/registry"
	"github.com/vovakirdan/pedal-arcade/internal/share"
	"github.com/vovakirdan/pedal-arcade/internal/storage"
)

var shareCmd = &cobra.Command{
	Use:   "share <game>",
	Short: "Share your best score",
	Long: `Copy a message with your best score to the clipboard.

The clipboard is reached through the terminal (OSC 52), which also works
over SSH and inside tmux. If that fails the message is written to
~/.arcade/share.txt.

Examples:
  arcade share retropedal`,
	Args: cobra.ExactArgs(1),
	Run:  runShare,
}

func runShare(cmd *cobra.Command, args []string) {
	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	configureGame(gameID)
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	best, err := store.LoadHighScore(registry.HighScoreKey(gameID))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading best score: %v\n", err)
		os.Exit(1)
	}
	if best == 0 {
		fmt.Printf("No best score for %s yet. Play 'arcade play %s' first.\n", game.Title(), gameID)
		return
	}

	msg := share.Message{
		Title: game.Title(),
		Text:  fmt.Sprintf("My best in %s is %d! Can you beat me?", game.Title(), best),
		URL:   share.ProjectURL,
	}
	method, err := share.New(os.Stdout).Share(cmd.Context(), msg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sharing: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(msg.String())
	fmt.Printf("Score %s\n", method)
}
