package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadPedal loads RetroPedal configuration.
// Search order: customPath -> ~/.arcade/configs/retropedal.{yaml,toml} ->
// ./configs/retropedal.{yaml,toml} -> embedded default
func LoadPedal(customPath string) (PedalConfig, error) {
	return load(customPath, "retropedal", defaultPedalYAML, DefaultPedalConfig)
}

// LoadPlatformer loads SaltaMuñeco configuration.
// Search order as for LoadPedal, with saltamuneco as the file name.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	return load(customPath, "saltamuneco", defaultPlatformerYAML, DefaultPlatformerConfig)
}

// configExts are tried in order for the user and local config files.
var configExts = []string{".yaml", ".yml", ".toml"}

// load resolves one game's config. Files are decoded over the hardcoded
// defaults, so a partial file only overrides the keys it names.
func load[T any](customPath, name string, embedded []byte, defaults func() T) (T, error) {
	cfg := defaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return defaults(), fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Then the user config directory and ./configs. A broken file there is
	// skipped rather than reported.
	var dirs []string
	if dir := userConfigDir(); dir != "" {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "configs")
	for _, dir := range dirs {
		for _, ext := range configExts {
			path := filepath.Join(dir, name+ext)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			candidate := defaults()
			if err := decode(path, data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode picks the format from the file extension; anything that is not
// .toml is read as YAML.
func decode(path string, data []byte, v any) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

// userConfigDir returns ~/.arcade/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs")
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.InvulnerableTime = 1
	}
}

// ApplyPedalPreset modifies the config based on a difficulty preset.
// Harder presets make momentum bleed off faster.
func ApplyPedalPreset(cfg *PedalConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.Deceleration = 0.05
	case DifficultyHard:
		cfg.Physics.Deceleration = 0.2
		cfg.Input.IdleTimeoutMS = 150
	}
}
