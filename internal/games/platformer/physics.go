package platformer

import (
	"math"

	"github.com/vovakirdan/pedal-arcade/internal/config"
	"github.com/vovakirdan/pedal-arcade/internal/core"
)

// scoreEpsilon absorbs float drift when summing many small frame deltas.
const scoreEpsilon = 1e-9

// Update advances the game by dt seconds with the given held keys. Once the
// game is over it returns s unchanged; only a reset leaves that state.
func Update(s State, cfg config.PlatformerConfig, dt float64, in core.InputFrame, rng Rand) State {
	if s.GameOver {
		return s
	}
	if dt < 0 {
		dt = 0
	}
	p := s.Player

	if p.Invulnerable {
		p.InvulnerableTime -= dt
		if p.InvulnerableTime <= 0 {
			p.Invulnerable = false
		}
	}

	// Horizontal movement; left wins when both are held
	maxX := cfg.Surface.Width - cfg.Player.Width
	switch {
	case in.Has(core.ActionLeft):
		p.X -= cfg.Physics.RunSpeed * dt
		p.Running = true
	case in.Has(core.ActionRight):
		p.X += cfg.Physics.RunSpeed * dt
		p.Running = true
	default:
		p.Running = false
	}
	p.X = core.ClampF(p.X, 0, maxX)

	// Pose: duck < run < jump, last assignment wins
	anim := AnimIdle
	p.Ducking = in.Has(core.ActionDuck)
	if p.Ducking {
		anim = AnimDuck
	}
	if p.Running {
		anim = AnimRun
	}
	if in.Has(core.ActionJump) && !p.Jumping {
		p.VelocityY = cfg.Physics.JumpVelocity
		p.Jumping = true
	}

	p.VelocityY += cfg.Physics.Gravity * dt
	p.Y += p.VelocityY * dt
	if ground := groundTop(cfg); p.Y >= ground {
		p.Y = ground
		p.VelocityY = 0
		p.Jumping = false
	}
	if p.Jumping {
		anim = AnimJump
	}
	p.Anim = anim

	scroll := cfg.Physics.BackgroundScrollSpeed * dt * 60
	s.Background.Layer1X -= scroll * 0.5
	s.Background.Layer2X -= scroll

	diff := config.NewDifficultyManager(cfg.Difficulty)

	// Spawn before moving so a new obstacle travels in the tick it appears.
	// Capped so append copies rather than writing into the caller's array.
	obstacles := s.Obstacles[:len(s.Obstacles):len(s.Obstacles)]
	s.SpawnTimer += dt
	if s.SpawnTimer > diff.SpawnInterval(cfg.Obstacles.SpawnInterval, s.Score, s.Elapsed) {
		obstacles = append(obstacles, spawnObstacle(cfg, s.NextID, rng.Float64()))
		s.NextID++
		s.SpawnTimer = 0
	}
	s.Obstacles = advanceObstacles(obstacles, cfg, diff, s.Score, s.Elapsed, dt)

	if !p.Invulnerable && firstHit(core.RectF{X: p.X, Y: p.Y, W: cfg.Player.Width, H: cfg.Player.Height}, s.Obstacles) >= 0 {
		s.Lives--
		p.Invulnerable = true
		p.InvulnerableTime = cfg.Gameplay.InvulnerableTime
		p.Anim = AnimHit
		if s.Lives <= 0 {
			s.GameOver = true
		}
	}
	s.Player = p

	// Whole points per tick, with the remainder carried to the next tick
	s.scoreCarry += dt * cfg.Gameplay.ScorePerSecond
	whole := math.Floor(s.scoreCarry + scoreEpsilon)
	s.Score += int(whole)
	s.scoreCarry -= whole
	s.Elapsed += dt

	return s
}
