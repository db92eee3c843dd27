package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pedal-arcade/internal/core"
	"github.com/vovakirdan/pedal-arcade/internal/games/pedal"
	"github.com/vovakirdan/pedal-arcade/internal/platform/tui"
	"github.com/vovakirdan/pedal-arcade/internal/registry"
)

var flagBackdrop string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space/Enter/Click - Pedal (retropedal)
  Left/Right, A/D   - Run (saltamuneco)
  Up/W/Space        - Jump (saltamuneco)
  Down/S            - Duck (saltamuneco)
  P                 - Pause
  R                 - Restart
  X                 - Share score
  Ctrl+S            - Screenshot
  Q/Esc/Ctrl+C      - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play retropedal
  arcade play saltamuneco --difficulty hard
  arcade play retropedal --backdrop ./mountains.txt
  arcade play saltamuneco --config ./my-saltamuneco.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackdrop, "backdrop", "", "ASCII art file for the RetroPedal mountains")
}

// terminalConfig builds the runtime config from the flags and the current
// terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		HoldWindow: flagHoldWindow,
	}
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	configureGame(gameID)
	if flagBackdrop != "" {
		pedal.SetBackdropPath(flagBackdrop)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, terminalConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
