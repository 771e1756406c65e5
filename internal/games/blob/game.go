package blob

import (
	"github.com/vovakirdan/blob-arcade/internal/config"
	"github.com/vovakirdan/blob-arcade/internal/core"
	"github.com/vovakirdan/blob-arcade/internal/levels"
)

// Game is the frame-driven state machine: Loading while a level is built,
// Playing while the simulation runs, Won once a goal is reached.
// It is not safe for concurrent use.
type Game struct {
	source  *levels.Source
	cfg     config.BlobConfig
	runtime core.RuntimeConfig

	level      *Level
	player     Player
	phase      core.Phase
	levelIndex int
	ticks      int
	respawns   int
	paused     bool

	pending []core.Event // Events raised outside Step, reported by the next Step
}

// New creates a game over a level source. A nil source uses the built-in
// level pack.
func New(src *levels.Source, cfg config.BlobConfig) *Game {
	if src == nil {
		src = levels.Default()
	}
	return &Game{
		source:  src,
		cfg:     cfg,
		runtime: core.DefaultConfig(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "blob"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Blob Platformer"
}

// Reset stores the runtime config and loads the first level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.pending = nil
	g.loadLevel(0)
}

// LoadLevel reloads into Playing at index i, wrapped into the source.
func (g *Game) LoadLevel(i int) {
	g.loadLevel(i)
}

// SetSource swaps the level source between frames and reloads the current
// level index, clamped to the new source.
func (g *Game) SetSource(src *levels.Source) {
	if src == nil {
		return
	}
	g.source = src
	idx := g.levelIndex
	if idx >= src.Len() {
		idx = max(src.Len()-1, 0)
	}
	g.loadLevel(idx)
}

// Source returns the level source in use.
func (g *Game) Source() *levels.Source {
	return g.source
}

// Level returns the current level instance.
func (g *Game) Level() *Level {
	return g.level
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Config returns the tuning in use.
func (g *Game) Config() config.BlobConfig {
	return g.cfg
}

// Step advances the game by one frame.
//
// Next level is honored in any phase. While Won only restart is honored.
// While Playing the order is: pause, jump, obstacles, player, obstacle
// collision, win check.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.level == nil {
		g.loadLevel(g.levelIndex)
	}

	if in.Has(core.ActionNextLevel) {
		g.loadLevel(g.levelIndex + 1)
		return g.result()
	}

	switch g.phase {
	case core.PhaseWon:
		if in.Has(core.ActionRestart) {
			g.loadLevel(g.levelIndex)
		}
		return g.result()
	case core.PhasePlaying:
		g.play(in)
	}

	return g.result()
}

func (g *Game) play(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	g.ticks++

	if in.Has(core.ActionJump) {
		g.player.Jump(g.level.JumpVelocity)
	}

	g.level.AdvanceObstacles()
	g.player.Update(in.Direction(), g.cfg.Player.MoveSpeed, g.level.Platforms, g.level.Gravity)

	if CheckObstacleCollisions(&g.player, g.level.Obstacles, g.level) {
		g.respawns++
		g.emit(core.EventRespawn)
	}

	if WinReached(g.player, g.level.Goals(), g.cfg.Win.Tolerance) {
		g.phase = core.PhaseWon
		g.emit(core.EventWon)
	}
}

// loadLevel rebuilds the level from the source and respawns the player.
func (g *Game) loadLevel(i int) {
	g.phase = core.PhaseLoading

	if n := g.source.Len(); n > 0 {
		i = ((i % n) + n) % n
	} else {
		i = 0
	}

	g.levelIndex = i
	g.level = NewLevel(g.source.Level(i), i, g.runtime.Seed, g.cfg)
	g.player.SpawnFromLevel(g.level)
	g.ticks = 0
	g.respawns = 0
	g.paused = false

	g.phase = core.PhasePlaying
	g.emit(core.EventLevelLoaded)
}

func (g *Game) emit(kind core.EventKind) {
	g.pending = append(g.pending, core.Event{Kind: kind, State: g.State()})
}

func (g *Game) result() core.StepResult {
	events := g.pending
	g.pending = nil
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := core.GameState{
		Phase:      g.phase,
		LevelIndex: g.levelIndex,
		Ticks:      g.ticks,
		Respawns:   g.respawns,
		Paused:     g.paused,
	}
	if g.level != nil {
		s.LevelName = g.level.Name
	}
	return s
}
