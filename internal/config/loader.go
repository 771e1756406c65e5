package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlob loads the blob configuration.
// Search order: customPath -> ~/.blob/configs/blob.yaml -> ./configs/blob.yaml -> embedded default
func LoadBlob(customPath string) (BlobConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBlobConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseBlob(data)
		if err != nil {
			return DefaultBlobConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("blob.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBlob(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "blob.yaml")); err == nil {
		if cfg, err := parseBlob(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseBlob(defaultBlobYAML)
	if err != nil {
		return DefaultBlobConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseBlob decodes YAML over the defaults so partial files keep the
// remaining knobs, then repairs out-of-range values.
func parseBlob(data []byte) (BlobConfig, error) {
	cfg := DefaultBlobConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.normalize()
	return cfg, nil
}

// normalize replaces values that would break the simulation with defaults.
func (c *BlobConfig) normalize() {
	def := DefaultBlobConfig()
	if c.Player.MoveSpeed < 0 {
		c.Player.MoveSpeed = def.Player.MoveSpeed
	}
	if c.Obstacles.DefaultVelocity <= 0 {
		c.Obstacles.DefaultVelocity = def.Obstacles.DefaultVelocity
	}
	if c.Obstacles.SpeedScale <= 0 {
		c.Obstacles.SpeedScale = def.Obstacles.SpeedScale
	}
	if c.Obstacles.WrapMargin < 0 {
		c.Obstacles.WrapMargin = def.Obstacles.WrapMargin
	}
	if c.Win.Tolerance < 0 {
		c.Win.Tolerance = def.Win.Tolerance
	}
	if c.Input.HoldTicks <= 0 {
		c.Input.HoldTicks = def.Input.HoldTicks
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blob", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BlobConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Obstacles.SpeedScale = SpeedScaleForPreset(preset)
}
