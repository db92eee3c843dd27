package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pedal-arcade/internal/core"
	"github.com/vovakirdan/pedal-arcade/internal/platform/tui"
	"github.com/vovakirdan/pedal-arcade/internal/registry"
	"github.com/vovakirdan/pedal-arcade/internal/sim"
	"github.com/vovakirdan/pedal-arcade/internal/storage"
)

var (
	flagSimDuration time.Duration
	flagSimTaps     float64
	flagSimJump     time.Duration
	flagSimRun      bool
	flagSimRealtime bool
	flagSimShow     bool
	flagSimPersist  bool
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless with scripted input",
	Long: `Run a game without a terminal UI and print the final state.

Input is scripted: a steady pedal rate, a jump period and an optional
held run. Frames use synthetic timestamps unless --realtime is set, so
the same seed and flags always give the same result.

Best scores stay in memory unless --persist is given.

Examples:
  arcade sim retropedal --taps 6 --duration 30s
  arcade sim saltamuneco --run --jump-every 700ms --seed 42
  arcade sim saltamuneco --realtime --show`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagSimDuration, "duration", 30*time.Second, "Simulated time to run")
	simCmd.Flags().Float64Var(&flagSimTaps, "taps", 5, "Pedal taps per second")
	simCmd.Flags().DurationVar(&flagSimJump, "jump-every", 0, "Jump period (0 = never)")
	simCmd.Flags().BoolVar(&flagSimRun, "run", false, "Hold right for the whole run")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace frames with the wall clock")
	simCmd.Flags().BoolVar(&flagSimShow, "show", false, "Print the last frame")
	simCmd.Flags().BoolVar(&flagSimPersist, "persist", false, "Write best scores to the database")
}

func runSim(_ *cobra.Command, args []string) {
	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		os.Exit(1)
	}

	configureGame(gameID)
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if u, ok := game.(registry.HighScoreUser); ok {
		var hs storage.HighScoreStore = storage.NewMemoryStore()
		if flagSimPersist {
			if store := openStore(); store != nil {
				defer store.Close()
				hs = store
			}
		}
		u.UseHighScoreStore(hs)
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed}
	game.Reset(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := sim.Run(ctx, game, sim.Options{
		Duration:  flagSimDuration,
		TickRate:  flagFPS,
		Taps:      flagSimTaps,
		JumpEvery: flagSimJump,
		Run:       flagSimRun,
		Realtime:  flagSimRealtime,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Interrupted")
	}

	if flagSimShow {
		screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
		game.Render(screen)
		fmt.Println(tui.RenderScreen(screen))
	}

	fmt.Printf("Game:      %s\n", game.Title())
	fmt.Printf("Seed:      %d\n", seed)
	fmt.Printf("Frames:    %d\n", res.Frames)
	fmt.Printf("Elapsed:   %.2fs\n", res.Elapsed)
	fmt.Printf("Score:     %d\n", res.State.Score)
	fmt.Printf("Best:      %d\n", res.State.Best)
	fmt.Printf("Game over: %t\n", res.State.GameOver)
}
