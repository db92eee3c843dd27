// Package config loads the per-game tuning files (YAML, or TOML by file
// extension) and manages difficulty progression.
package config

import "time"

// PedalConfig contains all configuration for the RetroPedal game.
type PedalConfig struct {
	Surface   Surface        `yaml:"surface" toml:"surface"`
	Physics   PedalPhysics   `yaml:"physics" toml:"physics"`
	Animation PedalAnimation `yaml:"animation" toml:"animation"`
	Input     PedalInput     `yaml:"input" toml:"input"`
	Storage   StorageKeys    `yaml:"storage" toml:"storage"`
}

// Surface is the logical drawing surface size in pixels.
type Surface struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PedalPhysics defines the scroll-speed model.
type PedalPhysics struct {
	MaxScrollSpeed float64 `yaml:"max_scroll_speed" toml:"max_scroll_speed"`
	Deceleration   float64 `yaml:"deceleration" toml:"deceleration"`     // Per 60Hz frame
	SpeedIncrease  float64 `yaml:"speed_increase" toml:"speed_increase"` // Per pedal stroke
}

// PedalAnimation defines the two-frame pedal animation.
type PedalAnimation struct {
	FrameRate float64 `yaml:"frame_rate" toml:"frame_rate"` // Frame flips per second
}

// PedalInput defines input timing.
type PedalInput struct {
	IdleTimeoutMS int `yaml:"idle_timeout_ms" toml:"idle_timeout_ms"`
}

// IdleTimeout returns the idle timeout as a duration.
func (p PedalInput) IdleTimeout() time.Duration {
	return time.Duration(p.IdleTimeoutMS) * time.Millisecond
}

// StorageKeys names the durable key-value entries a game owns.
type StorageKeys struct {
	HighScoreKey string `yaml:"high_score_key" toml:"high_score_key"`
}

// PlatformerConfig contains all configuration for the SaltaMuñeco game.
type PlatformerConfig struct {
	Surface    Surface            `yaml:"surface" toml:"surface"`
	Physics    PlatformerPhysics  `yaml:"physics" toml:"physics"`
	Player     PlatformerPlayer   `yaml:"player" toml:"player"`
	Obstacles  PlatformerObstacle `yaml:"obstacles" toml:"obstacles"`
	Gameplay   PlatformerGameplay `yaml:"gameplay" toml:"gameplay"`
	Difficulty DifficultyConfig   `yaml:"difficulty" toml:"difficulty"`
	Storage    StorageKeys        `yaml:"storage" toml:"storage"`
}

// PlatformerPhysics defines the motion model, in pixels and seconds.
type PlatformerPhysics struct {
	Gravity               float64 `yaml:"gravity" toml:"gravity"`
	JumpVelocity          float64 `yaml:"jump_velocity" toml:"jump_velocity"` // Negative is upward
	RunSpeed              float64 `yaml:"run_speed" toml:"run_speed"`
	BackgroundScrollSpeed float64 `yaml:"background_scroll_speed" toml:"background_scroll_speed"` // Per 60Hz frame
	GroundY               float64 `yaml:"ground_y" toml:"ground_y"`
}

// PlatformerPlayer defines the player's box and start position.
type PlatformerPlayer struct {
	StartX float64 `yaml:"start_x" toml:"start_x"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlatformerObstacle defines spawning and obstacle dimensions.
type PlatformerObstacle struct {
	SpawnInterval float64 `yaml:"spawn_interval" toml:"spawn_interval"` // Seconds
	SpikeChance   float64 `yaml:"spike_chance" toml:"spike_chance"`     // Probability a spawn is a spike
	DefaultSpeed  float64 `yaml:"default_speed" toml:"default_speed"`   // Scroll speed for stationary obstacles
	SpikeWidth    float64 `yaml:"spike_width" toml:"spike_width"`
	SpikeHeight   float64 `yaml:"spike_height" toml:"spike_height"`
	EnemyWidth    float64 `yaml:"enemy_width" toml:"enemy_width"`
	EnemyHeight   float64 `yaml:"enemy_height" toml:"enemy_height"`
	EnemySpeed    float64 `yaml:"enemy_speed" toml:"enemy_speed"`
}

// PlatformerGameplay defines lives, scoring and damage.
type PlatformerGameplay struct {
	Lives            int     `yaml:"lives" toml:"lives"`
	InvulnerableTime float64 `yaml:"invulnerable_time" toml:"invulnerable_time"` // Seconds
	ScorePerSecond   float64 `yaml:"score_per_second" toml:"score_per_second"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score, or seconds, at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier" toml:"speed_multiplier"`     // Multiplier added to obstacle speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction" toml:"interval_reduction"` // Seconds removed from the spawn interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
