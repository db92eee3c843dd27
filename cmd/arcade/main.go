// arcade runs RetroPedal and SaltaMuñeco in the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show score history for a game
//	arcade sim <game>        - Run a game headless with scripted input
//	arcade share <game>      - Share your best score
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/arcade.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log file (default: ~/.arcade/arcade.log)
//	--hold-window <dur>   - How long a key stays held after a press (default: 500ms)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pedal-arcade/internal/games/pedal"
	"github.com/vovakirdan/pedal-arcade/internal/games/platformer"
	"github.com/vovakirdan/pedal-arcade/internal/input"
	"github.com/vovakirdan/pedal-arcade/internal/logging"
	"github.com/vovakirdan/pedal-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagHoldWindow time.Duration

	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Pedal Arcade - RetroPedal and SaltaMuñeco in your terminal",
	Long: `Pedal Arcade runs two small games in the terminal:

  retropedal   - tap to pedal, keep tapping to keep the road moving
  saltamuneco  - run, jump and duck past spikes and enemies

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View score history
  sim      - Run a game headless with scripted input
  share    - Share your best score

Examples:
  arcade list
  arcade play retropedal
  arcade menu
  arcade serve --ssh :2222
  arcade scores saltamuneco`,
	SilenceUsage: true,
	// The TUI owns the terminal, so logs go to a file. serve logs to stderr.
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Name() == serveCmd.Name() {
			return nil
		}
		closer, err := logging.ToFile(flagLogFile, flagLogLevel)
		if err != nil {
			// Keep playing with logs silenced
			logging.Discard()
			return nil
		}
		logCloser = closer
		log.Debug("arcade: started", "cmd", cmd.Name())
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", logging.DefaultPath, "Log file for interactive commands")
	rootCmd.PersistentFlags().DurationVar(&flagHoldWindow, "hold-window", input.DefaultHoldWindow, "How long a key counts as held after its last press")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(shareCmd)
}

// configureGame hands the config and difficulty flags to a game package
// before an instance is created.
func configureGame(gameID string) {
	switch gameID {
	case pedal.GameID:
		pedal.SetConfigPath(flagConfig)
		pedal.SetDifficultyPreset(flagDifficulty)
	case platformer.GameID:
		platformer.SetConfigPath(flagConfig)
		platformer.SetDifficultyPreset(flagDifficulty)
	}
}

// openStore opens the scores database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		log.Warn("arcade: cannot open database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
