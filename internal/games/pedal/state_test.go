package pedal

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/pedal-arcade/internal/config"
)

var epoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func at(d time.Duration) time.Time {
	return epoch.Add(d)
}

func TestTapsForTwoSecondsThenIdle(t *testing.T) {
	cfg := config.DefaultPedalConfig()
	s := NewState(cfg, 0)

	const step = 10 * time.Millisecond
	dt := step.Seconds()

	// One tap every 100ms from t=0 to t=1.9s, stepping every 10ms up to t=2.0s
	for k := 0; k <= 200; k++ {
		taps := 0
		if k%10 == 0 && k < 200 {
			taps = 1
		}
		s = Update(s, cfg, dt, at(time.Duration(k)*step), taps)
	}

	if s.ClickCounter != 20 {
		t.Errorf("ClickCounter = %d, expected 20", s.ClickCounter)
	}
	if s.ScrollSpeed != cfg.Physics.MaxScrollSpeed {
		t.Errorf("ScrollSpeed = %f, expected max %f", s.ScrollSpeed, cfg.Physics.MaxScrollSpeed)
	}
	if !s.IsClicking {
		t.Error("should still be clicking 100ms after the last tap")
	}

	// No more input until 250ms after the last tap at 1.9s
	for k := 201; k <= 215; k++ {
		s = Update(s, cfg, dt, at(time.Duration(k)*step), 0)
	}

	if s.IsClicking {
		t.Error("IsClicking should be false after 250ms without input")
	}
	if s.ScrollSpeed >= cfg.Physics.MaxScrollSpeed {
		t.Errorf("speed should be decaying, got %f", s.ScrollSpeed)
	}
	if s.ScrollSpeed <= 0 {
		t.Errorf("speed should not have reached zero yet, got %f", s.ScrollSpeed)
	}
}

func TestSpeedStaysInBounds(t *testing.T) {
	cfg := config.DefaultPedalConfig()
	rng := rand.New(rand.NewSource(7))
	s := NewState(cfg, 0)
	now := epoch

	for i := 0; i < 5000; i++ {
		dt := rng.Float64() * 0.5
		now = now.Add(time.Duration(dt * float64(time.Second)))
		taps := 0
		if rng.Intn(3) == 0 {
			taps = rng.Intn(4)
		}
		s = Update(s, cfg, dt, now, taps)

		if s.ScrollSpeed < 0 || s.ScrollSpeed > cfg.Physics.MaxScrollSpeed {
			t.Fatalf("step %d: ScrollSpeed %f out of [0, %f]", i, s.ScrollSpeed, cfg.Physics.MaxScrollSpeed)
		}
	}
}

func TestIdleClearsClicking(t *testing.T) {
	cfg := config.DefaultPedalConfig()

	speeds := []float64{0, 0.5, 3, 5}
	for _, speed := range speeds {
		s := NewState(cfg, 0)
		s.ScrollSpeed = speed
		s.IsClicking = true
		s.Pedal.Active = true
		s.LastInput = epoch

		s = Update(s, cfg, 1.0/60, at(201*time.Millisecond), 0)

		if s.IsClicking {
			t.Errorf("speed %f: IsClicking should be false after idle timeout", speed)
		}
		if s.Pedal.Active {
			t.Errorf("speed %f: pedal animation should stop after idle timeout", speed)
		}
	}
}

func TestNoDecayWhileClicking(t *testing.T) {
	cfg := config.DefaultPedalConfig()
	s := NewState(cfg, 0)

	s = Update(s, cfg, 0, epoch, 4)
	before := s.ScrollSpeed
	s = Update(s, cfg, 0.1, at(100*time.Millisecond), 0)

	if s.ScrollSpeed != before {
		t.Errorf("speed changed while clicking: %f -> %f", before, s.ScrollSpeed)
	}
	if s.RoadOffset != before*0.1*60 {
		t.Errorf("RoadOffset = %f, expected %f", s.RoadOffset, before*0.1*60)
	}
}

func TestDecayFloorsAtZero(t *testing.T) {
	cfg := config.DefaultPedalConfig()
	s := NewState(cfg, 0)
	s.ScrollSpeed = 0.05

	s = Update(s, cfg, 1, at(time.Second), 0)

	if s.ScrollSpeed != 0 {
		t.Errorf("ScrollSpeed = %f, expected 0", s.ScrollSpeed)
	}
}

func TestNegativeDeltaIsZero(t *testing.T) {
	cfg := config.DefaultPedalConfig()
	s := NewState(cfg, 0)
	s.ScrollSpeed = 2

	next := Update(s, cfg, -0.5, at(time.Second), 0)

	if next.ScrollSpeed != 2 || next.RoadOffset != 0 || next.GameTime != 0 {
		t.Errorf("negative dt should not advance the simulation: %+v", next)
	}
}

func TestAnimationAlternatesAndFreezes(t *testing.T) {
	cfg := config.DefaultPedalConfig()
	s := NewState(cfg, 0)
	dt := 1.0 / 60

	prev := s.Pedal.Frame
	flips := 0
	now := epoch
	for i := 0; i < 120; i++ {
		taps := 0
		if i%6 == 0 {
			taps = 1
		}
		now = now.Add(time.Second / 60)
		s = Update(s, cfg, dt, now, taps)

		if s.Pedal.Frame != 0 && s.Pedal.Frame != 1 {
			t.Fatalf("frame index %d out of range", s.Pedal.Frame)
		}
		if s.Pedal.Frame != prev {
			if s.Pedal.Frame != 1-prev {
				t.Fatalf("frame jumped from %d to %d", prev, s.Pedal.Frame)
			}
			flips++
			prev = s.Pedal.Frame
		}
	}
	if flips < 10 {
		t.Errorf("expected the pedals to cycle while active, got %d flips", flips)
	}

	// Stop tapping; once idle the frame must hold still
	for i := 0; i < 30; i++ {
		now = now.Add(time.Second / 60)
		s = Update(s, cfg, dt, now, 0)
	}
	if s.Pedal.Active {
		t.Fatal("animation should be inactive after idling")
	}
	frozen := s.Pedal.Frame
	for i := 0; i < 120; i++ {
		now = now.Add(time.Second / 60)
		s = Update(s, cfg, dt, now, 0)
		if s.Pedal.Frame != frozen {
			t.Fatalf("frame changed while inactive: %d -> %d", frozen, s.Pedal.Frame)
		}
	}
}

func TestHighScoreFollowsCounter(t *testing.T) {
	cfg := config.DefaultPedalConfig()
	s := NewState(cfg, 3)

	s = Update(s, cfg, 0, epoch, 2)
	if s.HighScore != 3 {
		t.Errorf("HighScore = %d, expected 3 while counter is below it", s.HighScore)
	}
	if s.NewRecord() {
		t.Error("2 pedals should not be a record against 3")
	}

	s = Update(s, cfg, 0, epoch, 2)
	if s.HighScore != 4 {
		t.Errorf("HighScore = %d, expected 4", s.HighScore)
	}
	if !s.NewRecord() {
		t.Error("4 pedals should be a record against 3")
	}
}

func TestSpeedKMH(t *testing.T) {
	s := State{ScrollSpeed: 2.5}
	if s.SpeedKMH() != 50 {
		t.Errorf("SpeedKMH() = %d, expected 50", s.SpeedKMH())
	}
}
