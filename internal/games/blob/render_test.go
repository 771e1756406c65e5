package blob

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blob-arcade/internal/core"
	"github.com/vovakirdan/blob-arcade/internal/levels"
)

func renderLevel() levels.Level {
	return testLevel("Render Test",
		levels.Start{X: 80, Y: 180, R: 26},
		[]levels.Rect{
			{X: 0, Y: 324, W: 640, H: 36},
			{X: 500, Y: 100, W: 100, H: 20, Goal: true},
		},
		[]levels.PatternSpec{{StartX: 300, Y: 200, Spacing: 0, Count: 1, Size: 20, Type: "falling"}},
	)
}

func TestDrawListOrder(t *testing.T) {
	g := newTestGame(renderLevel())
	ops := g.DrawList()

	// fill + 2 platforms + 1 obstacle + player + 3 HUD lines
	if len(ops) != 8 {
		t.Fatalf("expected 8 draw ops, got %d", len(ops))
	}
	if ops[0].Kind != OpFill || ops[0].Color != core.Color(levels.DefaultBG) {
		t.Errorf("first op should fill the background, got %+v", ops[0])
	}
	if ops[1].Layer != LayerPlatform || ops[2].Layer != LayerGoal {
		t.Errorf("platform layers = %v, %v", ops[1].Layer, ops[2].Layer)
	}
	if ops[3].Layer != LayerObstacle || ops[3].W != 20 {
		t.Errorf("obstacle op = %+v", ops[3])
	}
	if ops[4].Kind != OpEllipse || ops[4].X != 54 || ops[4].W != 52 {
		t.Errorf("player op = %+v, expected ellipse at x=54 w=52", ops[4])
	}
	if ops[5].Text != "Render Test" {
		t.Errorf("first HUD line = %q, expected the level name", ops[5].Text)
	}
}

func TestDrawListDoesNotSimulate(t *testing.T) {
	g := newTestGame(renderLevel())
	g.Step(input())

	before := g.Snapshot()
	g.DrawList()
	g.Render(core.NewScreen(64, 36))
	after := g.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("drawing should not change the simulation")
	}
}

func TestDrawListWinOverlay(t *testing.T) {
	g := newTestGame(winLevel())
	g.Step(input())

	ops := g.DrawList()
	last := ops[len(ops)-3:]
	if last[0].Kind != OpOverlay || last[0].Alpha != 180 {
		t.Errorf("expected a translucent overlay, got %+v", last[0])
	}
	if last[1].Text != WinText || !last[1].Centered {
		t.Errorf("expected centered win text, got %+v", last[1])
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(renderLevel())
	screen := core.NewScreen(64, 36) // 10 world units per cell
	g.Render(screen)

	if got := screen.Get(0, 35); got != PlatformChar {
		t.Errorf("ground cell = %q, expected %q", got, PlatformChar)
	}
	if got := screen.Get(55, 10); got != GoalChar {
		t.Errorf("goal cell = %q, expected %q", got, GoalChar)
	}
	if got := screen.Get(8, 18); got != BlobChar {
		t.Errorf("player cell = %q, expected %q", got, BlobChar)
	}
	if got := screen.Get(31, 21); got != ObstacleChar {
		t.Errorf("obstacle cell = %q, expected %q", got, ObstacleChar)
	}
	if !strings.Contains(screen.Row(1), "Render Test") {
		t.Errorf("HUD row = %q, expected the level name", screen.Row(1))
	}

	bg := screen.GetCell(20, 25)
	if bg.Rune != ' ' || bg.BG != core.Color(levels.DefaultBG) {
		t.Errorf("background cell = %+v", bg)
	}
	if cell := screen.GetCell(0, 35); cell.FG != core.Color(levels.DefaultPlatform) {
		t.Errorf("platform color = %q", cell.FG)
	}
}

func TestRenderWin(t *testing.T) {
	g := newTestGame(winLevel())
	g.Step(input())

	screen := core.NewScreen(64, 32)
	g.Render(screen)

	if !strings.Contains(screen.String(), WinText) {
		t.Error("expected the win message on screen")
	}
	if cell := screen.GetCell(0, 0); cell.BG != core.ColorOverlay {
		t.Errorf("overlay background = %q, expected %q", cell.BG, core.ColorOverlay)
	}
}

func TestRenderEmptyScreen(t *testing.T) {
	g := newTestGame(renderLevel())
	g.Render(core.NewScreen(0, 0))
}
