// Package pedal implements RetroPedal: every tap is a pedal stroke that
// speeds up the ride, and momentum bleeds off once the taps stop.
package pedal

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pedal-arcade/internal/config"
	"github.com/vovakirdan/pedal-arcade/internal/core"
	"github.com/vovakirdan/pedal-arcade/internal/registry"
	"github.com/vovakirdan/pedal-arcade/internal/storage"
)

// GameID is the registry and score-history identifier.
const GameID = "retropedal"

// Game adapts the pure State/Update pair to the arcade's Game interface and
// owns the side effects: config loading, best-score persistence, backdrop.
type Game struct {
	cfg       config.PedalConfig
	state     State
	store     storage.HighScoreStore
	savedBest int
	backdrop  *BackdropLoader
	streaks   *rand.Rand
	paused    bool
	runtime   core.RuntimeConfig
}

var (
	configPath       string
	backdropPath     string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetBackdropPath points the mountain backdrop at an ASCII art file.
func SetBackdropPath(path string) {
	backdropPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// New creates a new RetroPedal game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "RetroPedal"
}

// UseHighScoreStore sets where the best score is read from and written to.
func (g *Game) UseHighScoreStore(s storage.HighScoreStore) {
	g.store = s
}

// HighScoreKey returns the storage key for the best score, loading the
// config when the game has not been Reset yet.
func (g *Game) HighScoreKey() string {
	if g.cfg.Storage.HighScoreKey != "" {
		return g.cfg.Storage.HighScoreKey
	}
	return loadConfig().Storage.HighScoreKey
}

func loadConfig() config.PedalConfig {
	cfg, err := config.LoadPedal(configPath)
	if err != nil {
		log.Warn("pedal: using default config", "err", err)
	}
	config.ApplyPedalPreset(&cfg, difficultyPreset)
	if cfg.Storage.HighScoreKey == "" {
		cfg.Storage.HighScoreKey = registry.DefaultHighScoreKey(GameID)
	}
	return cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg := loadConfig()
	g.cfg = cfg

	if g.store == nil {
		g.store = storage.NewMemoryStore()
	}
	best, err := g.store.LoadHighScore(cfg.Storage.HighScoreKey)
	if err != nil {
		log.Warn("pedal: cannot load best score", "key", cfg.Storage.HighScoreKey, "err", err)
	}
	g.savedBest = max(best, g.savedBest)

	g.state = NewState(cfg, g.savedBest)
	g.paused = false
	g.streaks = rand.New(rand.NewSource(runtime.Seed))

	if g.backdrop == nil {
		g.backdrop = NewBackdropLoader(backdropPath)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(tick core.Tick) core.StepResult {
	if tick.Input.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	if tick.Input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.state = Update(g.state, g.cfg, tick.Dt, tick.Now, tick.Input.Count(core.ActionPedal))
	g.persistBest()

	return core.StepResult{State: g.State()}
}

// persistBest writes the best score as soon as it rises. A failed write is
// logged and not retried; the in-memory value stays authoritative.
func (g *Game) persistBest() {
	if g.state.HighScore <= g.savedBest {
		return
	}
	g.savedBest = g.state.HighScore
	if err := g.store.SaveHighScore(g.cfg.Storage.HighScoreKey, g.state.HighScore); err != nil {
		log.Warn("pedal: cannot save best score", "key", g.cfg.Storage.HighScoreKey, "err", err)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	core.Rasterize(g.Frame(), dst)
}

// Frame returns the draw list for the current state.
func (g *Game) Frame() *core.DrawList {
	return Render(g.state, g.cfg, Scene{
		Backdrop: g.backdrop.Backdrop(),
		Streaks:  g.streaks,
		Paused:   g.paused,
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.state.ClickCounter,
		Best:   g.state.HighScore,
		Paused: g.paused,
	}
}

// Snapshot returns the full simulation state.
func (g *Game) Snapshot() State {
	return g.state
}

// Config returns the loaded configuration.
func (g *Game) Config() config.PedalConfig {
	return g.cfg
}

// ShareText returns the message used when sharing a run.
func (g *Game) ShareText() string {
	return fmt.Sprintf("I got %d pedals in RetroPedal! Can you beat me?", g.state.ClickCounter)
}
