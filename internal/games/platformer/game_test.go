package platformer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/pedal-arcade/internal/config"
	"github.com/vovakirdan/pedal-arcade/internal/core"
	"github.com/vovakirdan/pedal-arcade/internal/registry"
	"github.com/vovakirdan/pedal-arcade/internal/storage"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}

func newTestGame(t *testing.T, store storage.HighScoreStore) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.UseHighScoreStore(store)
	g.Reset(testRuntime)
	return g
}

func tick(actions ...core.Action) core.Tick {
	return core.Tick{Dt: 1.0 / 60, Input: keys(actions...)}
}

// loseAllLives drops an obstacle on the player until the run ends.
func loseAllLives(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 10 && !g.state.GameOver; i++ {
		o := spawnObstacle(g.cfg, 100+i, 0)
		o.X = g.state.Player.X
		g.state.Obstacles = []Obstacle{o}
		g.state.Player.Invulnerable = false
		g.Step(tick())
	}
	if !g.state.GameOver {
		t.Fatal("run should be over")
	}
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "SaltaMuñeco" {
		t.Errorf("Title() = %q", g.Title())
	}
	if _, ok := g.(registry.HighScoreUser); !ok {
		t.Error("SaltaMuñeco should accept a high score store")
	}
}

func TestGameResetMatchesFreshInstance(t *testing.T) {
	store := storage.NewMemoryStore()
	g := newTestGame(t, store)

	for i := 0; i < 400; i++ {
		switch i % 4 {
		case 0:
			g.Step(tick(core.ActionRight, core.ActionJump))
		case 1:
			g.Step(tick(core.ActionDuck))
		default:
			g.Step(tick(core.ActionLeft))
		}
	}
	g.Reset(testRuntime)

	fresh := newTestGame(t, store)
	if !reflect.DeepEqual(g.Snapshot(), fresh.Snapshot()) {
		t.Errorf("reset state differs from fresh state:\n%+v\n%+v", g.Snapshot(), fresh.Snapshot())
	}
	if !reflect.DeepEqual(g.Snapshot(), NewState(g.Config())) {
		t.Error("reset state should equal NewState")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() State {
		g := newTestGame(t, storage.NewMemoryStore())
		for i := 0; i < 900; i++ {
			if i%45 == 0 {
				g.Step(tick(core.ActionJump))
			} else {
				g.Step(tick())
			}
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and inputs should give the same run")
	}
}

func TestGameOverSavesBestAndRestarts(t *testing.T) {
	store := storage.NewMemoryStore()
	g := newTestGame(t, store)

	for range 120 {
		g.Step(tick())
	}
	loseAllLives(t, g)

	score := g.State().Score
	if score == 0 {
		t.Fatal("expected some score before game over")
	}
	best, _ := store.LoadHighScore("saltamuneco-highscore")
	if best != score {
		t.Errorf("persisted best = %d, expected %d", best, score)
	}

	// Ignored input while over
	g.Step(tick(core.ActionRight))
	if !g.State().GameOver {
		t.Fatal("only restart should leave game over")
	}

	g.Step(tick(core.ActionRestart))
	st := g.State()
	if st.GameOver || st.Score != 0 {
		t.Errorf("restart should begin a new run, got %+v", st)
	}
	if st.Best != score {
		t.Errorf("Best = %d, expected %d carried over", st.Best, score)
	}
	if g.Snapshot().Lives != 3 {
		t.Errorf("Lives = %d after restart, expected 3", g.Snapshot().Lives)
	}
}

func TestGameRenderOverlay(t *testing.T) {
	g := newTestGame(t, storage.NewMemoryStore())
	g.Step(tick())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Score: 0") {
		t.Errorf("HUD should show the score:\n%s", screen.String())
	}

	loseAllLives(t, g)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Game Over!") || !strings.Contains(out, "Press R to restart") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
}

func TestRenderLayerOrder(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	s := NewState(cfg)
	s.Obstacles = []Obstacle{spawnObstacle(cfg, 1, 0), spawnObstacle(cfg, 2, 0.9)}
	s.GameOver = true

	layers := Render(s, cfg, Scene{}).Layers()
	for i := 1; i < len(layers); i++ {
		if layers[i] < layers[i-1] {
			t.Fatalf("op %d on layer %s follows layer %s", i, layers[i], layers[i-1])
		}
	}
	if layers[len(layers)-1] != core.LayerOverlay {
		t.Errorf("game over overlay should be drawn last, got %s", layers[len(layers)-1])
	}
}

func TestRenderEveryAnimation(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	for _, a := range []Animation{AnimIdle, AnimRun, AnimJump, AnimDuck, AnimHit} {
		s := NewState(cfg)
		s.Player.Anim = a

		n := 0
		for _, op := range Render(s, cfg, Scene{}).Ops {
			if op.Layer == core.LayerActors {
				n++
			}
		}
		if n < 6 {
			t.Errorf("%s pose drew %d primitives, expected a full stickman", a, n)
		}
	}
}

func TestRenderHearts(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	s := NewState(cfg)
	s.Lives = 2

	triangles := 0
	for _, op := range Render(s, cfg, Scene{}).Ops {
		if op.Layer == core.LayerHUD && op.Kind == core.OpTriangle {
			triangles++
		}
	}
	if triangles != 2 {
		t.Errorf("expected 2 hearts, got %d", triangles)
	}
}
