package blob

import (
	"math/rand"

	"github.com/vovakirdan/blob-arcade/internal/core"
)

// Kind is the closed set of obstacle behaviours.
type Kind int

const (
	KindFalling Kind = iota // Falls at constant speed and wraps to the top
)

// String returns the level-data name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// ParseKind maps a level-data type tag to a Kind.
// Unknown tags fall back to KindFalling and report ok=false.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "falling":
		return KindFalling, true
	default:
		return KindFalling, false
	}
}

// Field is the play area in world units.
type Field struct {
	W, H float64
}

// Obstacle is a square hazard. Touching it sends the player back to spawn.
type Obstacle struct {
	X, Y      float64 // Top-left corner
	Size      float64 // Side length
	Kind      Kind
	VelocityY float64 // Downward speed per tick, always positive
}

// Rect returns the obstacle's bounding square.
func (o Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.Size, o.Size)
}

// Advance moves the obstacle one tick. Once it falls past the bottom of
// the field it re-enters just above the top; when rng is non-nil and the
// field is wide enough, it also picks a new column in [margin, W-margin].
// Returns true when the obstacle wrapped.
func (o *Obstacle) Advance(field Field, rng *rand.Rand, margin float64) bool {
	o.Y += o.VelocityY
	if o.Y <= field.H {
		return false
	}

	o.Y = -o.Size
	if rng != nil && field.W > 2*margin {
		o.X = margin + rng.Float64()*(field.W-2*margin)
	}
	return true
}
