package blob

import "math"

// Snapshot is the complete simulation state in primitive types, used for
// determinism checks and debugging.
type Snapshot struct {
	Tick       int
	LevelIndex int
	Phase      int
	Respawns   int
	Paused     bool

	PlayerX, PlayerY, PlayerR float64
	PlayerVelocityY           float64
	Grounded                  bool

	// Each obstacle is 2 floats: X, Y
	ObstacleData []float64
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:            g.ticks,
		LevelIndex:      g.levelIndex,
		Phase:           int(g.phase),
		Respawns:        g.respawns,
		Paused:          g.paused,
		PlayerX:         g.player.X,
		PlayerY:         g.player.Y,
		PlayerR:         g.player.R,
		PlayerVelocityY: g.player.VelocityY,
		Grounded:        g.player.Grounded,
	}
	if g.level != nil {
		snap.ObstacleData = make([]float64, 0, len(g.level.Obstacles)*2)
		for _, o := range g.level.Obstacles {
			snap.ObstacleData = append(snap.ObstacleData, o.X, o.Y)
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)                //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Respawns)      //#nosec G115 -- hash computation
	h = h*31 + boolBits(snap.Paused)
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.PlayerR)
	h = h*31 + math.Float64bits(snap.PlayerVelocityY)
	h = h*31 + boolBits(snap.Grounded)

	for _, v := range snap.ObstacleData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
