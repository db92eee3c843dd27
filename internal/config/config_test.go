package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	pedal, err := LoadPedal("")
	if err != nil {
		t.Fatalf("LoadPedal() failed: %v", err)
	}
	if !reflect.DeepEqual(pedal, DefaultPedalConfig()) {
		t.Errorf("embedded pedal.yaml differs from DefaultPedalConfig():\n%+v\n%+v", pedal, DefaultPedalConfig())
	}

	platformer, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}
	if !reflect.DeepEqual(platformer, DefaultPlatformerConfig()) {
		t.Errorf("embedded platformer.yaml differs from DefaultPlatformerConfig():\n%+v\n%+v", platformer, DefaultPlatformerConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pedal.yaml")
	data := []byte("physics:\n  max_scroll_speed: 8\ninput:\n  idle_timeout_ms: 300\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPedal(path)
	if err != nil {
		t.Fatalf("LoadPedal() failed: %v", err)
	}

	if cfg.Physics.MaxScrollSpeed != 8 {
		t.Errorf("MaxScrollSpeed = %f, expected 8", cfg.Physics.MaxScrollSpeed)
	}
	if cfg.Input.IdleTimeout() != 300*time.Millisecond {
		t.Errorf("IdleTimeout() = %v, expected 300ms", cfg.Input.IdleTimeout())
	}
	// Keys not in the file keep their defaults
	if cfg.Physics.SpeedIncrease != 0.5 {
		t.Errorf("SpeedIncrease = %f, expected default 0.5", cfg.Physics.SpeedIncrease)
	}
	if cfg.Storage.HighScoreKey != "retropedal-highscore" {
		t.Errorf("HighScoreKey = %q, expected default", cfg.Storage.HighScoreKey)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadPlatformer(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should return an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadPlatformer(path)
	if err == nil {
		t.Error("malformed custom config should return an error")
	}
	if !reflect.DeepEqual(cfg, DefaultPlatformerConfig()) {
		t.Error("malformed config should fall back to defaults")
	}
}

func TestLoadUserConfigDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("gameplay:\n  lives: 7\n")
	if err := os.WriteFile(filepath.Join(dir, "saltamuneco.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7 from user config", cfg.Gameplay.Lives)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pedal.toml")
	data := []byte("[physics]\nmax_scroll_speed = 6.5\n\n[input]\nidle_timeout_ms = 250\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPedal(path)
	if err != nil {
		t.Fatalf("LoadPedal() failed: %v", err)
	}
	if cfg.Physics.MaxScrollSpeed != 6.5 {
		t.Errorf("MaxScrollSpeed = %f, expected 6.5", cfg.Physics.MaxScrollSpeed)
	}
	if cfg.Input.IdleTimeoutMS != 250 {
		t.Errorf("IdleTimeoutMS = %d, expected 250", cfg.Input.IdleTimeoutMS)
	}
	if cfg.Physics.SpeedIncrease != DefaultPedalConfig().Physics.SpeedIncrease {
		t.Error("keys missing from the TOML file should keep their defaults")
	}
}

func TestLoadUserTOMLWhenNoYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "saltamuneco.toml"), []byte("[gameplay]\nlives = 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 4 {
		t.Errorf("Lives = %d, expected 4 from user TOML", cfg.Gameplay.Lives)
	}
}

func TestApplyPlatformerPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		lives   int
	}{
		{"", false, 0.0, 3},
		{DifficultyEasy, true, 0.0, 5},
		{DifficultyNormal, true, 0.3, 3},
		{DifficultyHard, true, 0.7, 2},
		{DifficultyFixed, false, 0.0, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			ApplyPlatformerPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %f, expected %f", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should map to empty")
	}
}

func TestDifficultyManagerDisabledKeepsBase(t *testing.T) {
	d := NewDifficultyManager(DefaultPlatformerConfig().Difficulty)

	if DefaultPlatformerConfig().Difficulty.Enabled {
		t.Error("default platformer difficulty should be disabled")
	}
	if got := d.Speed(150, 10000, 600); got != 150 {
		t.Errorf("Speed() = %f, expected base 150", got)
	}
	if got := d.SpawnInterval(2, 10000, 600); got != 2 {
		t.Errorf("SpawnInterval() = %f, expected base 2", got)
	}
}

func TestDifficultyManagerProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, IntervalReduction: 1.0},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(50, 0); got != 0.5 {
		t.Errorf("Level(50) = %f, expected 0.5", got)
	}
	if got := d.Level(500, 0); got != 1.0 {
		t.Errorf("Level should clamp at 1.0, got %f", got)
	}
	if got := d.Speed(150, 100, 0); got != 300 {
		t.Errorf("Speed at max = %f, expected 300", got)
	}
	if got := d.SpawnInterval(2, 100, 0); got != 1 {
		t.Errorf("SpawnInterval at max = %f, expected 1", got)
	}

	cfg.InitialLevel = 0.5
	if got := NewDifficultyManager(cfg).Level(0, 0); got != 0.5 {
		t.Errorf("Level with initial 0.5 = %f, expected 0.5", got)
	}
	cfg.InitialLevel = 3
	if got := NewDifficultyManager(cfg).Level(0, 0); got != 1.0 {
		t.Errorf("initial level should clamp to 1.0, got %f", got)
	}
	cfg.InitialLevel = 0

	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 60}
	timed := NewDifficultyManager(cfg)
	if got := timed.Level(0, 30); got != 0.5 {
		t.Errorf("time Level(30s) = %f, expected 0.5", got)
	}
}
