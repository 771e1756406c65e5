package blob

import (
	"fmt"
	"math"

	"github.com/vovakirdan/blob-arcade/internal/core"
)

// HUD text.
const (
	ControlsText = "Move: A/D or ←/→ • Jump: Space/W/↑ • N: next level • P: pause"
	WinText      = "YOU WIN!"
	WinHintText  = "Press R to restart or N for the next level"
	PausedText   = "PAUSED"
)

// Runes used when rasterizing onto a terminal screen.
const (
	PlatformChar = '█'
	GoalChar     = '▓'
	ObstacleChar = '■'
	BlobChar     = '●'
)

// OpKind identifies a draw request.
type OpKind int

const (
	OpFill    OpKind = iota // Fill the whole field
	OpRect                  // Filled rectangle
	OpEllipse               // Filled ellipse inscribed in the rect
	OpText                  // Text anchored at X,Y
	OpOverlay               // Translucent fill over the whole field
)

// Layer tells a frontend what a draw request depicts.
type Layer int

const (
	LayerBackground Layer = iota
	LayerPlatform
	LayerGoal
	LayerObstacle
	LayerPlayer
	LayerHUD
	LayerOverlay
)

// DrawOp is one read-only draw request in world units.
type DrawOp struct {
	Kind     OpKind
	Layer    Layer
	X, Y     float64
	W, H     float64
	Color    core.Color
	Alpha    uint8   // 255 is opaque
	Text     string
	TextSize float64 // Nominal text height in world units
	Centered bool    // Text is centered on X
}

// DrawList projects the current state into draw requests, back to front:
// background, platforms, obstacles, player, HUD, then the win overlay.
// It never changes the simulation.
func (g *Game) DrawList() []DrawOp {
	if g.level == nil {
		return nil
	}
	l := g.level
	theme := l.Theme
	ops := make([]DrawOp, 0, len(l.Platforms)+len(l.Obstacles)+8)

	ops = append(ops, DrawOp{
		Kind: OpFill, Layer: LayerBackground,
		W: l.Field.W, H: l.Field.H,
		Color: core.Color(theme.BG), Alpha: 255,
	})

	for _, p := range l.Platforms {
		layer := LayerPlatform
		if p.IsGoal() {
			layer = LayerGoal
		}
		ops = append(ops, DrawOp{
			Kind: OpRect, Layer: layer,
			X: p.X, Y: p.Y, W: p.W, H: p.H,
			Color: core.Color(theme.Platform), Alpha: 255,
		})
	}

	for _, o := range l.Obstacles {
		ops = append(ops, DrawOp{
			Kind: OpRect, Layer: LayerObstacle,
			X: o.X, Y: o.Y, W: o.Size, H: o.Size,
			Color: core.Color(theme.Obstacle), Alpha: 255,
		})
	}

	b := g.player.Circle().Bounds()
	ops = append(ops, DrawOp{
		Kind: OpEllipse, Layer: LayerPlayer,
		X: b.X, Y: b.Y, W: b.W, H: b.H,
		Color: core.Color(theme.Blob), Alpha: 255,
	})

	ops = append(ops,
		hudText(10, 18, l.Name),
		hudText(10, 36, ControlsText),
		hudText(10, 54, fmt.Sprintf("Respawns: %d", g.respawns)),
	)

	if g.paused {
		ops = append(ops, DrawOp{
			Kind: OpText, Layer: LayerHUD,
			X: l.Field.W / 2, Y: l.Field.H / 2,
			Color: core.ColorWhite, Alpha: 255,
			Text: PausedText, TextSize: 24, Centered: true,
		})
	}

	if g.phase == core.PhaseWon {
		ops = append(ops,
			DrawOp{
				Kind: OpOverlay, Layer: LayerOverlay,
				W: l.Field.W, H: l.Field.H,
				Color: core.ColorBlack, Alpha: 180,
			},
			DrawOp{
				Kind: OpText, Layer: LayerOverlay,
				X: l.Field.W / 2, Y: l.Field.H/2 - 50,
				Color: core.ColorWhite, Alpha: 255,
				Text: WinText, TextSize: 48, Centered: true,
			},
			DrawOp{
				Kind: OpText, Layer: LayerOverlay,
				X: l.Field.W / 2, Y: l.Field.H/2 + 70,
				Color: core.ColorWhite, Alpha: 255,
				Text: WinHintText, TextSize: 14, Centered: true,
			},
		)
	}

	return ops
}

func hudText(x, y float64, text string) DrawOp {
	return DrawOp{
		Kind: OpText, Layer: LayerHUD,
		X: x, Y: y,
		Color: core.ColorWhite, Alpha: 255,
		Text: text, TextSize: 14,
	}
}

// Render rasterizes the draw list onto a terminal screen, scaling the
// field to fill it. Each cell samples the world at its center.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.level == nil || dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	r := rasterizer{
		dst: dst,
		sx:  g.level.Field.W / float64(dst.Width()),
		sy:  g.level.Field.H / float64(dst.Height()),
		bg:  core.Color(g.level.Theme.BG),
	}
	for _, op := range g.DrawList() {
		r.draw(op)
	}
}

// rasterizer maps world-unit draw requests onto screen cells.
type rasterizer struct {
	dst    *core.Screen
	sx, sy float64 // World units per cell
	bg     core.Color
}

func (r rasterizer) draw(op DrawOp) {
	switch op.Kind {
	case OpFill:
		r.dst.Fill(core.Cell{Rune: ' ', BG: op.Color})
	case OpRect:
		r.dst.FillRect(r.cells(op), core.Cell{Rune: layerRune(op.Layer), FG: op.Color, BG: r.bg})
	case OpEllipse:
		r.ellipse(op)
	case OpText:
		r.text(op)
	case OpOverlay:
		r.overlay()
	}
}

// cells converts a world rect to a cell rect. Anything visible covers at
// least one cell.
func (r rasterizer) cells(op DrawOp) core.Rect {
	x0 := int(math.Floor(op.X / r.sx))
	y0 := int(math.Floor(op.Y / r.sy))
	x1 := int(math.Ceil((op.X + op.W) / r.sx))
	y1 := int(math.Ceil((op.Y + op.H) / r.sy))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func (r rasterizer) ellipse(op DrawOp) {
	cell := core.Cell{Rune: BlobChar, FG: op.Color, BG: r.bg}
	rx, ry := op.W/2, op.H/2
	cx, cy := op.X+rx, op.Y+ry
	if rx <= 0 || ry <= 0 {
		return
	}

	bounds := r.cells(op)
	for y := bounds.Y; y < bounds.Bottom(); y++ {
		for x := bounds.X; x < bounds.Right(); x++ {
			dx := ((float64(x)+0.5)*r.sx - cx) / rx
			dy := ((float64(y)+0.5)*r.sy - cy) / ry
			if dx*dx+dy*dy <= 1 {
				r.dst.SetCell(x, y, cell)
			}
		}
	}

	// Small blobs still show up on coarse screens.
	r.dst.SetCell(int(cx/r.sx), int(cy/r.sy), cell)
}

func (r rasterizer) text(op DrawOp) {
	row := int(op.Y / r.sy)
	if op.Centered {
		r.dst.DrawTextCentered(row, op.Text, op.Color)
		return
	}
	r.dst.DrawText(int(op.X/r.sx), row, op.Text, op.Color)
}

// overlay dims every cell, keeping the scene's runes visible beneath.
func (r rasterizer) overlay() {
	for y := 0; y < r.dst.Height(); y++ {
		for x := 0; x < r.dst.Width(); x++ {
			cell := r.dst.GetCell(x, y)
			cell.BG = core.ColorOverlay
			r.dst.SetCell(x, y, cell)
		}
	}
}

func layerRune(l Layer) rune {
	switch l {
	case LayerGoal:
		return GoalChar
	case LayerObstacle:
		return ObstacleChar
	case LayerPlayer:
		return BlobChar
	default:
		return PlatformChar
	}
}
