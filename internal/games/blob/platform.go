// Package blob implements a single-screen platformer: a circular blob
// climbs static platforms, dodges falling obstacles and reaches a goal.
//
// The package is pure simulation. Game.Step advances one frame and
// Game.DrawList projects the state for a frontend to draw.
package blob

import "github.com/vovakirdan/blob-arcade/internal/core"

// Role tags what a platform does besides supporting the player.
type Role int

const (
	RoleSolid Role = iota // Plain support
	RoleGoal              // Reaching it completes the level
)

// Platform is a static, axis-aligned rectangle the player can land on.
// Collision is top-only.
type Platform struct {
	core.RectF
	Role Role
}

// IsGoal reports whether the platform ends the level.
func (p Platform) IsGoal() bool {
	return p.Role == RoleGoal
}
