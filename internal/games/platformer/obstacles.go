package platformer

import (
	"github.com/vovakirdan/pedal-arcade/internal/config"
	"github.com/vovakirdan/pedal-arcade/internal/core"
)

// Rand is the randomness the spawner needs. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// spawnObstacle builds an obstacle at the right edge, standing on the ground.
// roll is a draw in [0, 1); below SpikeChance gives a spike.
func spawnObstacle(cfg config.PlatformerConfig, id int, roll float64) Obstacle {
	o := Obstacle{ID: id, X: cfg.Surface.Width}
	if roll < cfg.Obstacles.SpikeChance {
		o.Kind = Spike
		o.W, o.H = cfg.Obstacles.SpikeWidth, cfg.Obstacles.SpikeHeight
	} else {
		o.Kind = Enemy
		o.W, o.H = cfg.Obstacles.EnemyWidth, cfg.Obstacles.EnemyHeight
		o.Speed = cfg.Obstacles.EnemySpeed
		o.Direction = -1
	}
	o.Y = cfg.Physics.GroundY - o.H
	return o
}

// advanceObstacles moves every obstacle left and drops the ones fully past
// the left edge. It returns a new slice and leaves obs untouched.
func advanceObstacles(obs []Obstacle, cfg config.PlatformerConfig, diff *config.DifficultyManager, score int, elapsed, dt float64) []Obstacle {
	out := make([]Obstacle, 0, len(obs)+1)
	for _, o := range obs {
		speed := o.Speed
		if speed == 0 {
			speed = cfg.Obstacles.DefaultSpeed
		}
		o.X -= diff.Speed(speed, score, elapsed) * dt
		if o.X+o.W > 0 {
			out = append(out, o)
		}
	}
	return out
}

// firstHit returns the index of the first obstacle overlapping the box in
// spawn order, or -1.
func firstHit(box core.RectF, obs []Obstacle) int {
	for i, o := range obs {
		if box.Intersects(o.Box()) {
			return i
		}
	}
	return -1
}
