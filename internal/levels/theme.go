package levels

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Fallback theme colors, used when a level omits a color or gives an
// unparseable one.
const (
	DefaultBG       = "#f0f0f0"
	DefaultPlatform = "#c8c8c8"
	DefaultBlob     = "#1478ff"
	DefaultObstacle = "#ff4d4d"
)

// Theme holds normalized "#rrggbb" colors for a level.
type Theme struct {
	BG       string
	Platform string
	Blob     string
	Obstacle string
}

// DefaultTheme returns the fallback theme.
func DefaultTheme() Theme {
	return Theme{
		BG:       DefaultBG,
		Platform: DefaultPlatform,
		Blob:     DefaultBlob,
		Obstacle: DefaultObstacle,
	}
}

// ResolveTheme normalizes each color of a record, keeping fallbacks for
// missing or invalid entries.
func ResolveTheme(r ThemeRecord) Theme {
	return Theme{
		BG:       NormalizeColor(r.BG, DefaultBG),
		Platform: NormalizeColor(r.Platform, DefaultPlatform),
		Blob:     NormalizeColor(r.Blob, DefaultBlob),
		Obstacle: NormalizeColor(r.Obstacle, DefaultObstacle),
	}
}

// NormalizeColor parses "#rgb" or "#rrggbb" and returns lowercase
// "#rrggbb", or fallback when s is empty or not a hex color.
func NormalizeColor(s, fallback string) string {
	if s == "" {
		return fallback
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return fallback
	}
	return c.Hex()
}
