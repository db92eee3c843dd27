package sim

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/pedal-arcade/internal/core"
	"github.com/vovakirdan/pedal-arcade/internal/games/pedal"
	"github.com/vovakirdan/pedal-arcade/internal/games/platformer"
	"github.com/vovakirdan/pedal-arcade/internal/storage"
)

var runtime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}

func newPedal(t *testing.T) *pedal.Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := pedal.New()
	g.UseHighScoreStore(storage.NewMemoryStore())
	g.Reset(runtime)
	return g
}

func newPlatformer(t *testing.T) *platformer.Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := platformer.New()
	g.UseHighScoreStore(storage.NewMemoryStore())
	g.Reset(runtime)
	return g
}

func TestPedalTapsPerSecond(t *testing.T) {
	g := newPedal(t)

	res, err := Run(context.Background(), g, Options{Duration: 2 * time.Second, Taps: 5})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.State.Score != 10 {
		t.Errorf("Score = %d, expected 10 taps in 2s", res.State.Score)
	}
	if res.Frames != 121 {
		t.Errorf("Frames = %d, expected 121", res.Frames)
	}
	if g.Snapshot().ScrollSpeed <= 0 {
		t.Error("tapping should build speed")
	}
}

func TestPlatformerEndsOnGameOver(t *testing.T) {
	g := newPlatformer(t)

	// Standing still, obstacles eventually take all lives
	res, err := Run(context.Background(), g, Options{Duration: 10 * time.Minute})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !res.State.GameOver {
		t.Fatal("an idle player should lose")
	}
	if res.Elapsed >= (10 * time.Minute).Seconds() {
		t.Error("run should stop at game over, not at the duration")
	}
	if res.State.Score != g.State().Score {
		t.Error("result should carry the final state")
	}
}

func TestDeterministic(t *testing.T) {
	opts := Options{Duration: 20 * time.Second, JumpEvery: 700 * time.Millisecond, Run: true}

	a, err := Run(context.Background(), newPlatformer(t), opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(context.Background(), newPlatformer(t), opts)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("runs differ: %+v vs %+v", a, b)
	}
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, newPedal(t), Options{Duration: time.Hour, Realtime: true})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
