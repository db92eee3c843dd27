package pedal

import (
	"time"

	"github.com/vovakirdan/pedal-arcade/internal/config"
)

// Animation is the two-frame pedal cycle.
type Animation struct {
	Active     bool
	Frame      int // 0 or 1
	FrameTimer float64
	FrameRate  float64 // Flips per second
}

// State is the whole RetroPedal simulation. It is a value: Update returns a
// new one and never mutates its argument.
type State struct {
	ScrollSpeed  float64 // Always within [0, MaxScrollSpeed]
	ClickCounter int
	Pedal        Animation
	RoadOffset   float64 // Grows without bound; the renderer wraps it
	IsClicking   bool
	LastInput    time.Time // Zero until the first stroke
	HighScore    int
	StartBest    int     // Best score when this run began
	GameTime     float64 // Seconds since reset
}

// NewState returns the initial state, carrying the persisted best score.
func NewState(cfg config.PedalConfig, highScore int) State {
	return State{
		Pedal:     Animation{FrameRate: cfg.Animation.FrameRate},
		HighScore: highScore,
		StartBest: highScore,
	}
}

// Update advances the game by dt seconds. taps is the number of pedal strokes
// received since the previous update; now is the timestamp of this update.
func Update(s State, cfg config.PedalConfig, dt float64, now time.Time, taps int) State {
	if dt < 0 {
		dt = 0
	}

	for range taps {
		s.ClickCounter++
		s.ScrollSpeed = min(s.ScrollSpeed+cfg.Physics.SpeedIncrease, cfg.Physics.MaxScrollSpeed)
		s.IsClicking = true
		s.LastInput = now
		s.Pedal.Active = true
	}

	if now.Sub(s.LastInput) > cfg.Input.IdleTimeout() {
		s.IsClicking = false
		s.Pedal.Active = false
	}

	if !s.IsClicking && s.ScrollSpeed > 0 {
		s.ScrollSpeed = max(0, s.ScrollSpeed-cfg.Physics.Deceleration*dt*60)
	}

	s.RoadOffset += s.ScrollSpeed * dt * 60
	s.GameTime += dt

	if s.Pedal.Active && s.Pedal.FrameRate > 0 {
		s.Pedal.FrameTimer += dt
		if s.Pedal.FrameTimer >= 1/s.Pedal.FrameRate {
			s.Pedal.Frame = (s.Pedal.Frame + 1) % 2
			s.Pedal.FrameTimer = 0
		}
	}

	if s.ClickCounter > s.HighScore {
		s.HighScore = s.ClickCounter
	}

	return s
}

// SpeedKMH is the speedometer reading shown in the HUD.
func (s State) SpeedKMH() int {
	return int(s.ScrollSpeed*20 + 0.5)
}

// NewRecord reports whether this run beat the best score it started with.
func (s State) NewRecord() bool {
	return s.ClickCounter > s.StartBest
}
