package blob

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/blob-arcade/internal/config"
	"github.com/vovakirdan/blob-arcade/internal/core"
	"github.com/vovakirdan/blob-arcade/internal/levels"
)

func TestGameResetLoadsFirstLevel(t *testing.T) {
	g := New(nil, config.DefaultBlobConfig())
	g.Reset(testRuntime(1))

	s := g.State()
	if s.Phase != core.PhasePlaying {
		t.Errorf("phase = %v, expected Playing", s.Phase)
	}
	if s.LevelIndex != 0 || s.LevelName != levels.Default().Levels[0].Name {
		t.Errorf("loaded %d %q, expected the first built-in level", s.LevelIndex, s.LevelName)
	}

	spawn := g.Level().Spawn
	p := g.Player()
	if p.X != spawn.X || p.Y != spawn.Y || p.R != spawn.R {
		t.Errorf("player at %+v, expected spawn %+v", p, spawn)
	}

	res := g.Step(input())
	if countEvents(res, core.EventLevelLoaded) != 1 {
		t.Errorf("first step should report the initial load, got %v", res.Events)
	}
}

func TestGameRespawnOncePerFrame(t *testing.T) {
	g := newTestGame(testLevel("Crowded",
		levels.Start{X: 100, Y: 100, R: 10},
		nil,
		[]levels.PatternSpec{{StartX: 95, Y: 95, Spacing: 1, Count: 3, Size: 20, Type: "falling"}},
	))

	res := g.Step(input())

	if res.State.Respawns != 1 {
		t.Errorf("respawns = %d, expected 1", res.State.Respawns)
	}
	if n := countEvents(res, core.EventRespawn); n != 1 {
		t.Errorf("got %d respawn events, expected 1", n)
	}
	p := g.Player()
	if p.X != 100 || p.Y != 100 || p.VelocityY != 0 {
		t.Errorf("player at (%f, %f) v=%f, expected spawn at rest", p.X, p.Y, p.VelocityY)
	}
}

func TestGameWinFreezes(t *testing.T) {
	g := newTestGame(winLevel())

	res := g.Step(input())
	if !res.State.Won() {
		t.Fatalf("expected a win on the first frame, state %+v", res.State)
	}
	if countEvents(res, core.EventWon) != 1 {
		t.Errorf("expected one win event, got %v", res.Events)
	}

	frozen := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Step(input(core.ActionJump, core.ActionRight, core.ActionPause))
	}
	after := g.Snapshot()
	if frozen.Hash() != after.Hash() {
		t.Error("simulation should freeze after a win")
	}
	if g.State().Paused {
		t.Error("pause should be ignored after a win")
	}
}

func TestGameRestartFromWonReconstructsLevel(t *testing.T) {
	g := newTestGame(winLevel())

	platforms := append([]Platform(nil), g.Level().Platforms...)
	obstacles := append([]Obstacle(nil), g.Level().Obstacles...)

	g.Step(input())
	if !g.State().Won() {
		t.Fatal("expected a win on the first frame")
	}
	if reflect.DeepEqual(obstacles, g.Level().Obstacles) {
		t.Fatal("obstacles should have moved before the win")
	}

	res := g.Step(input(core.ActionRestart))

	if res.State.Phase != core.PhasePlaying {
		t.Errorf("phase = %v, expected Playing after restart", res.State.Phase)
	}
	if res.State.LevelIndex != 0 || res.State.Ticks != 0 {
		t.Errorf("restart should reload the same level from scratch, got %+v", res.State)
	}
	if !reflect.DeepEqual(platforms, g.Level().Platforms) {
		t.Error("platforms differ after restart")
	}
	if !reflect.DeepEqual(obstacles, g.Level().Obstacles) {
		t.Errorf("obstacles differ after restart: %+v vs %+v", obstacles, g.Level().Obstacles)
	}
	if countEvents(res, core.EventLevelLoaded) != 1 {
		t.Errorf("restart should report a level load, got %v", res.Events)
	}
}

func TestGameRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(testLevel("Open", levels.Start{X: 80, Y: 180, R: 26},
		[]levels.Rect{{X: 0, Y: 324, W: 640, H: 36}, {X: 500, Y: 80, W: 100, H: 12}}, nil))

	for i := 0; i < 5; i++ {
		g.Step(input())
	}
	res := g.Step(input(core.ActionRestart))
	if res.State.Ticks != 6 {
		t.Errorf("ticks = %d, expected 6; restart should be ignored while playing", res.State.Ticks)
	}
	if countEvents(res, core.EventLevelLoaded) != 0 {
		t.Error("restart while playing should not reload")
	}
}

func TestGameNextLevelWraps(t *testing.T) {
	lvl := func(name string) levels.Level {
		return testLevel(name, levels.Start{X: 80, Y: 180, R: 26},
			[]levels.Rect{{X: 0, Y: 324, W: 640, H: 36}, {X: 500, Y: 80, W: 100, H: 12}}, nil)
	}
	g := newTestGame(lvl("A"), lvl("B"), lvl("C"))

	expected := []string{"B", "C", "A", "B"}
	for i, name := range expected {
		res := g.Step(input(core.ActionNextLevel))
		if res.State.LevelName != name {
			t.Fatalf("advance %d: level %q, expected %q", i, res.State.LevelName, name)
		}
		if res.State.Phase != core.PhasePlaying {
			t.Errorf("advance %d: phase %v, expected Playing", i, res.State.Phase)
		}
	}
}

func TestGameNextLevelFromWon(t *testing.T) {
	other := testLevel("Other", levels.Start{X: 80, Y: 180, R: 26},
		[]levels.Rect{{X: 0, Y: 324, W: 640, H: 36}, {X: 500, Y: 80, W: 100, H: 12}}, nil)
	g := newTestGame(winLevel(), other)

	g.Step(input())
	if !g.State().Won() {
		t.Fatal("expected a win on the first frame")
	}

	res := g.Step(input(core.ActionNextLevel))
	if res.State.LevelIndex != 1 || res.State.Phase != core.PhasePlaying {
		t.Errorf("expected level 1 in Playing, got %+v", res.State)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(levels.Default().Levels[1])

	g.Step(input())
	res := g.Step(input(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused")
	}

	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Step(input(core.ActionJump, core.ActionLeft))
	}
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("paused frames should not simulate")
	}

	res = g.Step(input(core.ActionPause))
	if res.State.Paused {
		t.Error("second pause should resume")
	}
	if res.State.Ticks != before.Tick+1 {
		t.Errorf("ticks = %d, expected %d after resuming", res.State.Ticks, before.Tick+1)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func(seed int64) []uint64 {
		g := New(levels.Default(), config.DefaultBlobConfig())
		g.Reset(testRuntime(seed))
		g.LoadLevel(2)

		hashes := make([]uint64, 0, 600)
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%40 == 0 {
				in.Set(core.ActionJump)
			}
			if (i/60)%2 == 0 {
				in.Set(core.ActionRight)
			}
			g.Step(in)
			snap := g.Snapshot()
			hashes = append(hashes, snap.Hash())
		}
		return hashes
	}

	first := run(7)
	second := run(7)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("runs diverged at frame %d", i)
		}
	}

	other := run(8)
	if first[len(first)-1] == other[len(other)-1] {
		t.Error("different seeds should randomize obstacle wrap columns differently")
	}
}

func TestGameSetSourceClampsIndex(t *testing.T) {
	g := New(levels.Default(), config.DefaultBlobConfig())
	g.Reset(testRuntime(1))
	g.LoadLevel(2)
	g.Step(input())

	single := &levels.Source{Levels: []levels.Level{winLevel()}, Origin: "reloaded"}
	g.SetSource(single)

	res := g.Step(input())
	if res.State.LevelIndex != 0 || res.State.LevelName != "Instant" {
		t.Errorf("expected reload into level 0 of the new source, got %+v", res.State)
	}
	if countEvents(res, core.EventLevelLoaded) != 1 {
		t.Errorf("expected the reload to be reported, got %v", res.Events)
	}
	if g.Source().Origin != "reloaded" {
		t.Error("source was not swapped")
	}
}

func TestGameEmptySource(t *testing.T) {
	g := New(&levels.Source{}, config.DefaultBlobConfig())
	g.Reset(testRuntime(1))

	for i := 0; i < 100; i++ {
		res := g.Step(input(core.ActionRight))
		if res.State.Won() {
			t.Fatal("an empty level cannot be won")
		}
	}
	if g.Level().Field != (Field{W: DefaultFieldW, H: DefaultFieldH}) {
		t.Errorf("field = %+v, expected defaults", g.Level().Field)
	}

	res := g.Step(input(core.ActionNextLevel))
	if res.State.LevelIndex != 0 {
		t.Errorf("next level on an empty source should stay at 0, got %d", res.State.LevelIndex)
	}
}
