package config

import (
	_ "embed"
)

//go:embed defaults/pedal.yaml
var defaultPedalYAML []byte

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPedalConfig returns the default RetroPedal configuration.
func DefaultPedalConfig() PedalConfig {
	return PedalConfig{
		Surface: Surface{
			Width:  800,
			Height: 600,
		},
		Physics: PedalPhysics{
			MaxScrollSpeed: 5,
			Deceleration:   0.1,
			SpeedIncrease:  0.5,
		},
		Animation: PedalAnimation{
			FrameRate: 10,
		},
		Input: PedalInput{
			IdleTimeoutMS: 200,
		},
		Storage: StorageKeys{
			HighScoreKey: "retropedal-highscore",
		},
	}
}

// DefaultPlatformerConfig returns the default SaltaMuñeco configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Surface: Surface{
			Width:  800,
			Height: 450,
		},
		Physics: PlatformerPhysics{
			Gravity:               900,
			JumpVelocity:          -450,
			RunSpeed:              200,
			BackgroundScrollSpeed: 2,
			GroundY:               350,
		},
		Player: PlatformerPlayer{
			StartX: 100,
			Width:  40,
			Height: 60,
		},
		Obstacles: PlatformerObstacle{
			SpawnInterval: 2,
			SpikeChance:   0.6,
			DefaultSpeed:  150,
			SpikeWidth:    30,
			SpikeHeight:   30,
			EnemyWidth:    50,
			EnemyHeight:   60,
			EnemySpeed:    100,
		},
		Gameplay: PlatformerGameplay{
			Lives:            3,
			InvulnerableTime: 2,
			ScorePerSecond:   10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 1.0,
			},
		},
		Storage: StorageKeys{
			HighScoreKey: "saltamuneco-highscore",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "retropedal":
		return defaultPedalYAML
	case "saltamuneco":
		return defaultPlatformerYAML
	default:
		return nil
	}
}
