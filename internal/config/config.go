// Package config provides YAML-based tuning for the blob platformer.
// Level geometry and physics constants live in level files; this package
// holds the knobs that apply across every level.
package config

// BlobConfig contains all tuning for the blob platformer.
type BlobConfig struct {
	Player    BlobPlayer    `yaml:"player"`
	Obstacles BlobObstacles `yaml:"obstacles"`
	Win       BlobWin       `yaml:"win"`
	Input     BlobInput     `yaml:"input"`
}

// BlobPlayer defines player movement parameters.
type BlobPlayer struct {
	MoveSpeed float64 `yaml:"move_speed"` // Horizontal pixels per tick while held
}

// BlobObstacles defines falling obstacle parameters.
type BlobObstacles struct {
	DefaultVelocity float64 `yaml:"default_velocity"` // Fall speed when a pattern omits velocityY
	SpeedScale      float64 `yaml:"speed_scale"`      // Multiplier applied to every fall speed
	RandomizeWrapX  bool    `yaml:"randomize_wrap_x"` // Pick a new column after wrapping
	WrapMargin      float64 `yaml:"wrap_margin"`      // Distance kept from the field sides
}

// BlobWin defines the goal test.
type BlobWin struct {
	Tolerance float64 `yaml:"tolerance"` // Extra pixels below the goal's bottom edge
}

// BlobInput defines frontend input handling.
type BlobInput struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a terminal key press keeps a direction held
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset maps a CLI value to a preset.
// Unknown values return the empty preset, which keeps the config's scale.
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// SpeedScaleForPreset returns the obstacle speed multiplier for a preset.
func SpeedScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}
