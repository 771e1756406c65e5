package blob

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/blob-arcade/internal/config"
	"github.com/vovakirdan/blob-arcade/internal/core"
	"github.com/vovakirdan/blob-arcade/internal/levels"
)

// Field size used when a level has no platforms to infer it from.
const (
	DefaultFieldW = 640.0
	DefaultFieldH = 360.0
)

// Level is one playable instance built from a level record.
// Everything except obstacle positions is fixed after NewLevel; a reload
// builds a fresh Level.
type Level struct {
	Index        int
	Name         string
	Theme        levels.Theme
	Gravity      float64
	JumpVelocity float64
	Spawn        levels.Start
	Platforms    []Platform
	Obstacles    []Obstacle
	Field        Field
	Warnings     []string // Unknown obstacle types and similar oddities

	goals      []Platform
	rng        *rand.Rand // nil when wrap randomization is disabled
	wrapMargin float64
}

// NewLevel builds a level instance. The wrap RNG is seeded from seed and
// index, so the same level with the same seed replays identically.
func NewLevel(src levels.Level, index int, seed int64, cfg config.BlobConfig) *Level {
	l := &Level{
		Index:        index,
		Name:         src.Name,
		Theme:        src.Theme,
		Gravity:      src.Gravity,
		JumpVelocity: src.JumpVelocity,
		Spawn:        src.Start,
		Platforms:    make([]Platform, 0, len(src.Platforms)),
		wrapMargin:   cfg.Obstacles.WrapMargin,
	}

	for _, r := range src.Platforms {
		p := Platform{RectF: coreRect(r)}
		if r.Goal {
			p.Role = RoleGoal
		}
		l.Platforms = append(l.Platforms, p)
	}
	l.goals = resolveGoals(l.Platforms)

	for _, pattern := range src.Patterns {
		kind, ok := ParseKind(pattern.Type)
		if !ok {
			l.Warnings = append(l.Warnings, fmt.Sprintf("unknown obstacle type %q, treated as %s", pattern.Type, kind))
		}

		velocity := pattern.VelocityY
		if velocity <= 0 {
			velocity = cfg.Obstacles.DefaultVelocity
		}
		velocity *= cfg.Obstacles.SpeedScale
		if velocity <= 0 {
			velocity = config.DefaultBlobConfig().Obstacles.DefaultVelocity
		}

		for i := 0; i < pattern.Count; i++ {
			l.Obstacles = append(l.Obstacles, Obstacle{
				X:         pattern.StartX + float64(i)*pattern.Spacing,
				Y:         pattern.Y,
				Size:      pattern.Size,
				Kind:      kind,
				VelocityY: velocity,
			})
		}
	}

	l.Field = Field{W: InferWidth(l.Platforms, DefaultFieldW), H: InferHeight(l.Platforms, DefaultFieldH)}

	if cfg.Obstacles.RandomizeWrapX {
		l.rng = rand.New(rand.NewSource(seed*1_000_003 + int64(index)))
	}

	return l
}

// Goals returns the platforms that complete the level. Platforms tagged
// RoleGoal win; when none is tagged the last platform is the goal.
// A level without platforms has no goal.
func (l *Level) Goals() []Platform {
	return l.goals
}

// AdvanceObstacles moves every obstacle one tick.
func (l *Level) AdvanceObstacles() {
	for i := range l.Obstacles {
		l.Obstacles[i].Advance(l.Field, l.rng, l.wrapMargin)
	}
}

// InferWidth returns the rightmost platform edge, or def without platforms.
func InferWidth(platforms []Platform, def float64) float64 {
	if len(platforms) == 0 {
		return def
	}
	w := 0.0
	for _, p := range platforms {
		w = max(w, p.Right())
	}
	return w
}

// InferHeight returns the lowest platform edge, or def without platforms.
func InferHeight(platforms []Platform, def float64) float64 {
	if len(platforms) == 0 {
		return def
	}
	h := 0.0
	for _, p := range platforms {
		h = max(h, p.Bottom())
	}
	return h
}

func coreRect(r levels.Rect) core.RectF {
	return core.NewRectF(r.X, r.Y, r.W, r.H)
}

func resolveGoals(platforms []Platform) []Platform {
	var goals []Platform
	for _, p := range platforms {
		if p.IsGoal() {
			goals = append(goals, p)
		}
	}
	if len(goals) == 0 && len(platforms) > 0 {
		goals = append(goals, platforms[len(platforms)-1])
	}
	return goals
}
