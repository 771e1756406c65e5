// Package levels reads level data for the blob platformer.
// Level files are JSON (the native format) or YAML with the same shape;
// missing fields fall back to fixed defaults so sparse files still play.
package levels

import (
	"fmt"
	"strings"
)

// Defaults applied when a level record omits a field.
const (
	DefaultName         = "Level"
	DefaultGravity      = 0.65
	DefaultJumpVelocity = -11.0
	DefaultStartX       = 80.0
	DefaultStartY       = 180.0
	DefaultStartR       = 26.0
	DefaultObstacleType = "falling"
)

// Record is one level as written in a level file.
// Pointer fields distinguish "absent" from an explicit zero.
type Record struct {
	Name             string        `json:"name" yaml:"name"`
	Gravity          *float64      `json:"gravity" yaml:"gravity"`
	JumpV            *float64      `json:"jumpV" yaml:"jumpV"`
	Theme            ThemeRecord   `json:"theme" yaml:"theme"`
	Start            StartRecord   `json:"start" yaml:"start"`
	Platforms        []Rect        `json:"platforms" yaml:"platforms"`
	ObstaclePatterns []PatternSpec `json:"obstaclePatterns" yaml:"obstaclePatterns"`
}

// ThemeRecord holds the raw theme colors of a level record.
type ThemeRecord struct {
	BG       string `json:"bg" yaml:"bg"`
	Platform string `json:"platform" yaml:"platform"`
	Blob     string `json:"blob" yaml:"blob"`
	Obstacle string `json:"obstacle" yaml:"obstacle"`
}

// StartRecord holds the raw spawn point of a level record.
type StartRecord struct {
	X *float64 `json:"x" yaml:"x"`
	Y *float64 `json:"y" yaml:"y"`
	R *float64 `json:"r" yaml:"r"`
}

// Rect is a platform rectangle. Goal marks the platform that ends the level.
type Rect struct {
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
	W    float64 `json:"w" yaml:"w"`
	H    float64 `json:"h" yaml:"h"`
	Goal bool    `json:"goal,omitempty" yaml:"goal,omitempty"`
}

// PatternSpec is a row of evenly spaced obstacles.
type PatternSpec struct {
	StartX    float64 `json:"startX" yaml:"startX"`
	Y         float64 `json:"y" yaml:"y"`
	Spacing   float64 `json:"spacing" yaml:"spacing"`
	Count     int     `json:"count" yaml:"count"`
	Size      float64 `json:"size" yaml:"size"`
	Type      string  `json:"type" yaml:"type"`
	VelocityY float64 `json:"velocityY,omitempty" yaml:"velocityY,omitempty"` // 0 = config default
}

// Start is a resolved spawn point.
type Start struct {
	X, Y, R float64
}

// Level is a level record with every default applied.
type Level struct {
	Name         string
	Gravity      float64
	JumpVelocity float64
	Theme        Theme
	Start        Start
	Platforms    []Rect
	Patterns     []PatternSpec
}

// Source is an ordered, read-only set of resolved levels.
type Source struct {
	Levels   []Level
	Origin   string   // File path, or "embedded"
	Warnings []string // Records or fields dropped while resolving
}

// Len returns the number of levels.
func (s *Source) Len() int {
	return len(s.Levels)
}

// Level returns the level at index i wrapped into range.
// An empty source yields a default level with no platforms.
func (s *Source) Level(i int) Level {
	if len(s.Levels) == 0 {
		return Resolve(Record{}, nil)
	}
	n := len(s.Levels)
	return s.Levels[((i%n)+n)%n]
}

// Names returns the level names in order.
func (s *Source) Names() []string {
	names := make([]string, len(s.Levels))
	for i, l := range s.Levels {
		names[i] = l.Name
	}
	return names
}

// NewSource resolves raw records into a Source.
func NewSource(records []Record, origin string) *Source {
	src := &Source{
		Levels: make([]Level, 0, len(records)),
		Origin: origin,
	}
	for i, r := range records {
		var warnings []string
		src.Levels = append(src.Levels, Resolve(r, &warnings))
		for _, w := range warnings {
			src.Warnings = append(src.Warnings, fmt.Sprintf("level %d: %s", i, w))
		}
	}
	return src
}

// Resolve applies defaults to a record and drops degenerate geometry.
// Dropped items are described in warnings when it is non-nil.
func Resolve(r Record, warnings *[]string) Level {
	warn := func(format string, args ...any) {
		if warnings != nil {
			*warnings = append(*warnings, fmt.Sprintf(format, args...))
		}
	}

	lvl := Level{
		Name:         strings.TrimSpace(r.Name),
		Gravity:      floatOr(r.Gravity, DefaultGravity),
		JumpVelocity: floatOr(r.JumpV, DefaultJumpVelocity),
		Theme:        ResolveTheme(r.Theme),
		Start: Start{
			X: floatOr(r.Start.X, DefaultStartX),
			Y: floatOr(r.Start.Y, DefaultStartY),
			R: floatOr(r.Start.R, DefaultStartR),
		},
	}
	if lvl.Name == "" {
		lvl.Name = DefaultName
	}
	if lvl.Start.R <= 0 {
		warn("non-positive start radius %.1f, using %.1f", lvl.Start.R, DefaultStartR)
		lvl.Start.R = DefaultStartR
	}

	for i, p := range r.Platforms {
		if p.W <= 0 || p.H <= 0 {
			warn("platform %d has non-positive size %.1fx%.1f, dropped", i, p.W, p.H)
			continue
		}
		lvl.Platforms = append(lvl.Platforms, p)
	}

	for i, p := range r.ObstaclePatterns {
		if p.Count <= 0 || p.Size <= 0 {
			warn("obstacle pattern %d has count %d and size %.1f, dropped", i, p.Count, p.Size)
			continue
		}
		if p.VelocityY < 0 {
			warn("obstacle pattern %d has negative velocityY, using default", i)
			p.VelocityY = 0
		}
		if p.Type == "" {
			p.Type = DefaultObstacleType
		}
		lvl.Patterns = append(lvl.Patterns, p)
	}

	return lvl
}

// floatOr dereferences p, or returns def when p is nil.
func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
