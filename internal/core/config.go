package core

import "time"

// RuntimeConfig is handed to Game.Reset. Games draw on their own logical
// surface, so the screen size only matters to the rasterizer.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	TickRate   int           // Frames per second requested from the scheduler (default 60)
	Seed       int64         // RNG seed for deterministic gameplay
	HoldWindow time.Duration // How long a key stays held after its last press; zero uses the input default
}

// WithDefaults fills unset fields: an 80x24 screen and 60 frames per second.
// A zero Seed is left alone; the platform replaces it with the clock.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = 80
	}
	if c.ScreenH <= 0 {
		c.ScreenH = 24
	}
	if c.TickRate <= 0 {
		c.TickRate = 60
	}
	return c
}

// Tick is everything a game needs to advance one frame.
type Tick struct {
	Dt    float64   // Elapsed wall-clock time since the previous frame, in seconds
	Now   time.Time // Timestamp of this frame
	Input InputFrame
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score known to the game (persisted)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
