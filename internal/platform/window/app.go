// Package window runs the blob platformer in a desktop window with Ebiten.
// The window is sized to the level's field and redrawn from the game's
// draw list every frame.
package window

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/blob-arcade/internal/core"
	"github.com/vovakirdan/blob-arcade/internal/games/blob"
	"github.com/vovakirdan/blob-arcade/internal/levels"
	"github.com/vovakirdan/blob-arcade/internal/storage"
)

// basicfont glyphs are 13 pixels tall; text sizes scale from that.
const baseFontSize = 13.0

// Options configures a window session.
type Options struct {
	Game       *blob.Game
	Store      *storage.Store  // Optional run log
	Watcher    *levels.Watcher // Optional level file watcher
	Logger     *log.Logger     // Optional; discarded when nil
	Runtime    core.RuntimeConfig
	StartLevel int
	Scale      float64 // Window pixels per field pixel
}

// App implements ebiten.Game around a blob.Game.
type App struct {
	game    *blob.Game
	store   *storage.Store
	watcher *levels.Watcher
	logger  *log.Logger
	runtime core.RuntimeConfig
	scale   float64

	restartUI        *ebitenui.UI
	restartRequested bool
	state            core.GameState
	colors           palette
	face             ebtext.Face
	showDebug        bool
}

// NewApp creates the window frontend and loads the starting level.
func NewApp(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	a := &App{
		game:    opts.Game,
		store:   opts.Store,
		watcher: opts.Watcher,
		logger:  logger,
		runtime: opts.Runtime,
		scale:   scale,
		colors:  palette{},
		face:    ebtext.NewGoXFace(basicfont.Face7x13),
	}
	a.restartUI = NewRestartUI(func() { a.restartRequested = true })

	a.game.Reset(a.runtime)
	if opts.StartLevel != 0 {
		a.game.LoadLevel(opts.StartLevel)
	}
	a.state = a.game.State()
	a.resizeWindow()

	return a
}

// Update advances the simulation one tick.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.showDebug = !a.showDebug
	}

	a.pollLevelFile()

	if a.state.Won() {
		a.restartUI.Update()
	}

	in := a.input()
	result := a.game.Step(in)
	a.state = result.State
	a.handleEvents(result.Events)

	return nil
}

// input samples the keyboard. Directions are held; everything else fires
// once per press.
func (a *App) input() core.InputFrame {
	in := core.NewInputFrame()

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		in.Set(core.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || a.restartRequested {
		in.Set(core.ActionRestart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		in.Set(core.ActionNextLevel)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Set(core.ActionPause)
	}
	a.restartRequested = false

	return in
}

// pollLevelFile applies a pending level file edit without blocking.
func (a *App) pollLevelFile() {
	if a.watcher == nil {
		return
	}
	select {
	case path, ok := <-a.watcher.Events:
		if !ok {
			a.watcher = nil
			return
		}
		src, err := levels.Load(path)
		if err != nil {
			a.logger.Warn("level file reload failed, keeping current levels", "path", path, "err", err)
			return
		}
		a.logger.Info("level file reloaded", "path", path, "levels", src.Len())
		for _, w := range src.Warnings {
			a.logger.Warn("level data", "warning", w)
		}
		a.game.SetSource(src)
	case err, ok := <-a.watcher.Errors:
		if ok {
			a.logger.Warn("level watcher error", "err", err)
		}
	default:
	}
}

// handleEvents logs simulation events, resizes on load and records wins.
func (a *App) handleEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventLevelLoaded:
			a.logger.Info("level loaded", "index", e.State.LevelIndex, "name", e.State.LevelName)
			if lvl := a.game.Level(); lvl != nil {
				for _, w := range lvl.Warnings {
					a.logger.Warn("level data", "level", lvl.Name, "warning", w)
				}
			}
			a.resizeWindow()
		case core.EventRespawn:
			a.logger.Debug("respawn", "level", e.State.LevelName, "respawns", e.State.Respawns)
		case core.EventWon:
			a.logger.Info("level complete", "name", e.State.LevelName, "ticks", e.State.Ticks, "respawns", e.State.Respawns)
			a.saveRun(e.State)
		}
	}
}

func (a *App) saveRun(state core.GameState) {
	if a.store == nil {
		return
	}
	_, err := a.store.SaveRun(storage.Run{
		LevelName:  state.LevelName,
		LevelIndex: state.LevelIndex,
		Source:     a.game.Source().Origin,
		Ticks:      state.Ticks,
		Respawns:   state.Respawns,
		Seed:       a.runtime.Seed,
	})
	if err != nil {
		a.logger.Warn("cannot save run", "err", err)
	}
}

// fieldSize returns the current field in whole pixels.
func (a *App) fieldSize() (int, int) {
	lvl := a.game.Level()
	if lvl == nil {
		return int(blob.DefaultFieldW), int(blob.DefaultFieldH)
	}
	return int(math.Ceil(lvl.Field.W)), int(math.Ceil(lvl.Field.H))
}

// resizeWindow fits the window to the loaded level's field.
func (a *App) resizeWindow() {
	w, h := a.fieldSize()
	ebiten.SetWindowSize(int(float64(w)*a.scale), int(float64(h)*a.scale))
}

// Draw paints the game's draw list.
func (a *App) Draw(screen *ebiten.Image) {
	for _, op := range a.game.DrawList() {
		a.drawOp(screen, op)
	}

	if a.state.Won() {
		a.restartUI.Draw(screen)
	}

	if a.showDebug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f  tick %d", ebiten.ActualTPS(), ebiten.ActualFPS(), a.state.Ticks), 10, 72)
	}
}

func (a *App) drawOp(screen *ebiten.Image, op blob.DrawOp) {
	col := a.colors.get(op.Color, op.Alpha)

	switch op.Kind {
	case blob.OpFill:
		screen.Fill(col)
	case blob.OpRect, blob.OpOverlay:
		vector.DrawFilledRect(screen, float32(op.X), float32(op.Y), float32(op.W), float32(op.H), col, false)
	case blob.OpEllipse:
		r := math.Min(op.W, op.H) / 2
		vector.DrawFilledCircle(screen, float32(op.X+op.W/2), float32(op.Y+op.H/2), float32(r), col, true)
	case blob.OpText:
		opts := &ebtext.DrawOptions{}
		if op.Centered {
			opts.PrimaryAlign = ebtext.AlignCenter
		}
		size := op.TextSize / baseFontSize
		if size <= 0 {
			size = 1
		}
		opts.GeoM.Scale(size, size)
		opts.GeoM.Translate(op.X, op.Y)
		opts.ColorScale.ScaleWithColor(col)
		ebtext.Draw(screen, op.Text, a.face, opts)
	}
}

// Layout keeps the logical screen equal to the field so draw requests map
// one to one onto pixels.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.fieldSize()
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	app := NewApp(opts)

	ebiten.SetWindowTitle(app.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
