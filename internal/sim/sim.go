// Package sim runs games without a terminal: synthetic inputs on a synthetic
// or wall clock, for tuning configs and checking determinism.
package sim

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pedal-arcade/internal/core"
	"github.com/vovakirdan/pedal-arcade/internal/loop"
	"github.com/vovakirdan/pedal-arcade/internal/registry"
)

// Options control a headless run.
type Options struct {
	Duration  time.Duration // Simulated time to run for
	TickRate  int           // Frames per second
	Taps      float64       // Pedal taps per second
	JumpEvery time.Duration // Jump period; zero never jumps
	Run       bool          // Hold right for the whole run
	Realtime  bool          // Pace frames with a wall-clock ticker
	Start     time.Time     // First synthetic timestamp
}

// Result summarizes a finished run.
type Result struct {
	Frames  int
	Elapsed float64
	State   core.GameState
}

// Run steps game until Duration has passed, the game ends or ctx is
// cancelled. The game must already be Reset.
func Run(ctx context.Context, game registry.Game, opts Options) (Result, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Start.IsZero() {
		opts.Start = time.Unix(0, 0).UTC()
	}
	frames := int(opts.Duration / loop.Interval(opts.TickRate))

	var src loop.TickSource
	if opts.Realtime {
		src = loop.NewTicker(opts.TickRate)
	} else {
		// Queue every frame up front; closing the source ends the run
		manual := loop.NewManualSource(frames + 1)
		for i := 0; i <= frames; i++ {
			manual.Fire(opts.Start.Add(time.Duration(i) * loop.Interval(opts.TickRate)))
		}
		manual.Stop()
		src = manual
	}

	var (
		res      Result
		tapsSent int
	)
	jumpFrames := 0
	if opts.JumpEvery > 0 {
		jumpFrames = max(1, int(opts.JumpEvery/loop.Interval(opts.TickRate)))
	}

	// Inputs are scheduled by frame index so a run does not drift with
	// floating point time.
	step := func(dt float64, now time.Time) bool {
		frame := res.Frames
		in := core.NewInputFrame()

		due := int(math.Floor(float64(frame) * opts.Taps / float64(opts.TickRate)))
		for ; tapsSent < due; tapsSent++ {
			in.Set(core.ActionPedal)
		}
		if jumpFrames > 0 && frame > 0 && frame%jumpFrames == 0 {
			in.Set(core.ActionJump)
		}
		if opts.Run {
			in.Set(core.ActionRight)
		}

		r := game.Step(core.Tick{Dt: dt, Now: now, Input: in})
		res.State = r.State
		res.Frames++
		res.Elapsed += dt

		if r.State.GameOver {
			log.Debug("sim: game over", "game", game.ID(), "frame", res.Frames, "score", r.State.Score)
			return false
		}
		return res.Frames <= frames
	}

	err := loop.Run(ctx, src, step)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return res, err
	}
	return res, nil
}
