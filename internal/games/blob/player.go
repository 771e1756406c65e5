package blob

import "github.com/vovakirdan/blob-arcade/internal/core"

// landingEpsilon absorbs float drift of a body resting on a surface.
const landingEpsilon = 1e-9

// Player is the blob: a circle with vertical velocity.
// Horizontal movement is a direct translation, not integrated.
type Player struct {
	X, Y      float64 // Center
	R         float64 // Radius
	VelocityY float64 // Positive is downward
	Grounded  bool    // Resting on a platform this tick
}

// SpawnFromLevel puts the player at the level's spawn point at rest.
func (p *Player) SpawnFromLevel(l *Level) {
	p.X = l.Spawn.X
	p.Y = l.Spawn.Y
	p.R = l.Spawn.R
	p.VelocityY = 0
	p.Grounded = false
}

// Circle returns the player's shape.
func (p Player) Circle() core.Circle {
	return core.Circle{X: p.X, Y: p.Y, R: p.R}
}

// Bottom returns the y-coordinate of the player's lowest point.
func (p Player) Bottom() float64 {
	return p.Y + p.R
}

// Jump launches the player when grounded. Airborne calls are ignored.
// Returns true if the jump happened.
func (p *Player) Jump(jumpVelocity float64) bool {
	if !p.Grounded {
		return false
	}
	p.VelocityY = jumpVelocity
	p.Grounded = false
	return true
}

// Update advances the player one tick: horizontal translation by
// dir*moveSpeed, gravity integration, then top-only landing.
//
// A platform catches the player when the bottom edge crossed its top
// surface this tick while falling and the horizontal extents overlap.
// If several platforms qualify the highest surface wins, then the lowest
// index. Returns the index of the landing platform, or -1.
func (p *Player) Update(dir, moveSpeed float64, platforms []Platform, gravity float64) int {
	p.X += dir * moveSpeed

	prevBottom := p.Bottom()
	p.VelocityY += gravity
	p.Y += p.VelocityY
	bottom := p.Bottom()

	landed := -1
	if p.VelocityY >= 0 {
		for i, pl := range platforms {
			if prevBottom > pl.Y+landingEpsilon || bottom < pl.Y {
				continue
			}
			if !pl.OverlapsX(p.X-p.R, p.X+p.R) {
				continue
			}
			if landed == -1 || pl.Y < platforms[landed].Y {
				landed = i
			}
		}
	}

	if landed == -1 {
		p.Grounded = false
		return -1
	}

	p.Y = platforms[landed].Y - p.R
	p.VelocityY = 0
	p.Grounded = true
	return landed
}
