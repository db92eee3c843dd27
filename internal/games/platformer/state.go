package platformer

import (
	"github.com/vovakirdan/pedal-arcade/internal/config"
	"github.com/vovakirdan/pedal-arcade/internal/core"
)

// Animation selects the stickman pose in both physics and rendering.
type Animation int

const (
	AnimIdle Animation = iota
	AnimRun
	AnimJump
	AnimDuck
	AnimHit
)

// String returns the animation name.
func (a Animation) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimRun:
		return "run"
	case AnimJump:
		return "jump"
	case AnimDuck:
		return "duck"
	case AnimHit:
		return "hit"
	default:
		return "unknown"
	}
}

// ObstacleKind distinguishes stationary spikes from walking enemies.
type ObstacleKind int

const (
	Spike ObstacleKind = iota
	Enemy
)

// String returns the obstacle kind name.
func (k ObstacleKind) String() string {
	switch k {
	case Spike:
		return "spike"
	case Enemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Player is the stickman. Y is the top edge; larger Y is lower on screen.
type Player struct {
	X, Y             float64
	VelocityY        float64 // Negative is upward
	Jumping          bool
	Ducking          bool
	Running          bool
	Anim             Animation
	Invulnerable     bool
	InvulnerableTime float64 // Seconds of grace left
}

// Obstacle is a spike or enemy scrolling in from the right.
type Obstacle struct {
	ID        int
	Kind      ObstacleKind
	X, Y      float64
	W, H      float64
	Speed     float64 // 0 means the default scroll speed
	Direction int     // -1 for enemies walking left, 0 for spikes
}

// Box returns the obstacle's collision box.
func (o Obstacle) Box() core.RectF {
	return core.RectF{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Background holds the two parallax offsets. Both only decrease.
type Background struct {
	Layer1X float64 // Clouds, half speed
	Layer2X float64 // Grass
}

// State is the whole SaltaMuñeco simulation. Update treats it as a value and
// never writes through the Obstacles slice it was given.
type State struct {
	Player     Player
	Obstacles  []Obstacle // Spawn order
	Background Background
	Lives      int
	GameOver   bool
	Score      int
	SpawnTimer float64
	NextID     int
	Elapsed    float64 // Seconds since reset, drives time-based difficulty

	scoreCarry float64 // Fractional score not yet credited
}

// NewState returns the initial state: player on the ground, no obstacles.
func NewState(cfg config.PlatformerConfig) State {
	return State{
		Player: Player{
			X: cfg.Player.StartX,
			Y: groundTop(cfg),
		},
		Obstacles: []Obstacle{},
		Lives:     cfg.Gameplay.Lives,
		NextID:    1,
	}
}

// PlayerBox returns the player's collision box.
func (s State) PlayerBox(cfg config.PlatformerConfig) core.RectF {
	return core.RectF{X: s.Player.X, Y: s.Player.Y, W: cfg.Player.Width, H: cfg.Player.Height}
}

// groundTop is the player's Y when standing on the ground.
func groundTop(cfg config.PlatformerConfig) float64 {
	return cfg.Physics.GroundY - cfg.Player.Height
}
