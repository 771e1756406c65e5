package config

import (
	_ "embed"
)

//go:embed defaults/blob.yaml
var defaultBlobYAML []byte

// DefaultBlobConfig returns the default blob configuration.
func DefaultBlobConfig() BlobConfig {
	return BlobConfig{
		Player: BlobPlayer{
			MoveSpeed: 4.0,
		},
		Obstacles: BlobObstacles{
			DefaultVelocity: 2.0,
			SpeedScale:      1.0,
			RandomizeWrapX:  true,
			WrapMargin:      50,
		},
		Win: BlobWin{
			Tolerance: 5,
		},
		Input: BlobInput{
			HoldTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBlobYAML
}
