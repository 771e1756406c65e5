package blob

// overlapsBox is the circle-vs-box test used for obstacles: the player's
// bounding box strictly overlaps the square.
func overlapsBox(p Player, o Obstacle) bool {
	return p.Circle().Bounds().Intersects(o.Rect())
}

// CheckObstacleCollisions respawns the player at the level's spawn point
// if it touches any obstacle. At most one respawn happens per call no
// matter how many obstacles overlap. Obstacles are left untouched.
func CheckObstacleCollisions(p *Player, obstacles []Obstacle, l *Level) bool {
	for _, o := range obstacles {
		if overlapsBox(*p, o) {
			p.SpawnFromLevel(l)
			return true
		}
	}
	return false
}

// WinReached reports whether the player stands on any goal: horizontal
// extents overlap and the bottom edge lies in [G.Y, G.Y+G.H+tolerance].
func WinReached(p Player, goals []Platform, tolerance float64) bool {
	bottom := p.Bottom()
	for _, g := range goals {
		if !g.OverlapsX(p.X-p.R, p.X+p.R) {
			continue
		}
		if bottom >= g.Y && bottom <= g.Bottom()+tolerance {
			return true
		}
	}
	return false
}
