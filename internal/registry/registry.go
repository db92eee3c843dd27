// Package registry lets game packages announce themselves from init so the
// CLI, menu and SSH sessions can list and build games by ID.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/pedal-arcade/internal/core"
	"github.com/vovakirdan/pedal-arcade/internal/storage"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what the platform drives. Implementations hold pure simulation
// state; the platform owns timing, input mapping and the terminal.
type Game interface {
	// ID is the stable identifier used on the command line and as the
	// score-history key, e.g. "retropedal".
	ID() string

	// Title is the display name, e.g. "RetroPedal".
	Title() string

	// Reset starts a fresh run for the given screen and seed. It is called
	// before the first Step and again on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by tick.Dt seconds with the tick's input.
	Step(tick core.Tick) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// HighScoreUser is implemented by games that keep a durable best score.
// The platform hands over its store before the first Reset.
type HighScoreUser interface {
	UseHighScoreStore(s storage.HighScoreStore)
}

// HighScoreKeyer is implemented by games whose best-score key comes from
// their config rather than DefaultHighScoreKey.
type HighScoreKeyer interface {
	HighScoreKey() string
}

// Sharer is implemented by games that can describe the current run as a
// short message for sharing.
type Sharer interface {
	ShareText() string
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new, not yet Reset, game.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game under id. It panics on an empty or duplicate ID,
// both of which are programming errors caught at startup.
func Register(id string, f Factory) {
	if strings.TrimSpace(id) == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: f().Title(), factory: f}
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// DefaultHighScoreKey is the key a game's best is stored under when it does
// not name one.
func DefaultHighScoreKey(id string) string {
	return id + "-highscore"
}

// HighScoreKey returns the key the game registered under id reads and writes
// its best under. Every reader of a stored best goes through here so a
// configured key is honored everywhere.
func HighScoreKey(id string) string {
	if g, err := Create(id); err == nil {
		if k, ok := g.(HighScoreKeyer); ok {
			if key := k.HighScoreKey(); key != "" {
				return key
			}
		}
	}
	return DefaultHighScoreKey(id)
}
