// Package platformer implements SaltaMuñeco, a side-scrolling stickman game:
// run, jump and duck past spikes and walking enemies on three lives.
package platformer

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
const GameID = "saltamuneco"

// Game adapts the pure State/Update pair to the arcade's Game interface.
type Game struct {
	cfg     config.PlatformerConfig
	state   State
	rng     *rand.Rand
	store   storage.HighScoreStore
	best    int
	paused  bool
	runtime core.RuntimeConfig
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
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

// New creates a new SaltaMuñeco game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "SaltaMuñeco"
}

// UseHighScoreStore sets where the best score is read from and written to.
func (g *Game) UseHighScoreStore(s storage.HighScoreStore) {
	g.store = s
}

// HighScoreKey returns the storage key for the best score.
func (g *Game) HighScoreKey() string {
	if g.cfg.Storage.HighScoreKey != "" {
		return g.cfg.Storage.HighScoreKey
	}
	return loadConfig().Storage.HighScoreKey
}

func loadConfig() config.PlatformerConfig {
	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		log.Warn("platformer: using default config", "err", err)
	}
	config.ApplyPlatformerPreset(&cfg, difficultyPreset)
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
		log.Warn("platformer: cannot load best score", "key", cfg.Storage.HighScoreKey, "err", err)
	}
	g.best = max(best, g.best)

	g.state = NewState(cfg)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(tick core.Tick) core.StepResult {
	if g.state.GameOver {
		if tick.Input.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if tick.Input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.state = Update(g.state, g.cfg, tick.Dt, tick.Input, g.rng)

	if g.state.GameOver {
		g.saveBest()
	}
	return core.StepResult{State: g.State()}
}

// saveBest writes the best score once a run ends. Failures are logged only.
func (g *Game) saveBest() {
	if g.state.Score <= g.best {
		return
	}
	g.best = g.state.Score
	if err := g.store.SaveHighScore(g.cfg.Storage.HighScoreKey, g.best); err != nil {
		log.Warn("platformer: cannot save best score", "key", g.cfg.Storage.HighScoreKey, "err", err)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	core.Rasterize(g.Frame(), dst)
}

// Frame returns the draw list for the current state.
func (g *Game) Frame() *core.DrawList {
	return Render(g.state, g.cfg, Scene{Best: g.best, Paused: g.paused})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Best:     max(g.best, g.state.Score),
		GameOver: g.state.GameOver,
		Paused:   g.paused,
	}
}

// Snapshot returns the full simulation state.
func (g *Game) Snapshot() State {
	return g.state
}

// Config returns the loaded configuration.
func (g *Game) Config() config.PlatformerConfig {
	return g.cfg
}

// ShareText returns the message used when sharing a run.
func (g *Game) ShareText() string {
	return fmt.Sprintf("I scored %d points in SaltaMuñeco! Can you beat me?", g.state.Score)
}
