package blob

import (
	"github.com/vovakirdan/blob-arcade/internal/config"
	"github.com/vovakirdan/blob-arcade/internal/core"
	"github.com/vovakirdan/blob-arcade/internal/levels"
)

func f64(v float64) *float64 {
	return &v
}

// testLevel resolves a level record the way the level loader would.
func testLevel(name string, start levels.Start, platforms []levels.Rect, patterns []levels.PatternSpec) levels.Level {
	return levels.Resolve(levels.Record{
		Name: name,
		Start: levels.StartRecord{
			X: f64(start.X),
			Y: f64(start.Y),
			R: f64(start.R),
		},
		Platforms:        platforms,
		ObstaclePatterns: patterns,
	}, nil)
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// newTestGame builds a game over the given levels and loads the first one.
func newTestGame(lvls ...levels.Level) *Game {
	src := &levels.Source{Levels: lvls, Origin: "test"}
	g := New(src, config.DefaultBlobConfig())
	g.Reset(testRuntime(42))
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func countEvents(res core.StepResult, kind core.EventKind) int {
	n := 0
	for _, e := range res.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// winLevel spawns the player just above a goal so it wins on the first frame.
func winLevel() levels.Level {
	return testLevel("Instant",
		levels.Start{X: 150, Y: 90, R: 10},
		[]levels.Rect{
			{X: 0, Y: 300, W: 640, H: 20},
			{X: 100, Y: 100, W: 100, H: 20},
		},
		[]levels.PatternSpec{
			{StartX: 300, Y: 0, Spacing: 100, Count: 2, Size: 20, Type: "falling"},
		},
	)
}
