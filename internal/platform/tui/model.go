package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blob-arcade/internal/core"
	"github.com/vovakirdan/blob-arcade/internal/games/blob"
	"github.com/vovakirdan/blob-arcade/internal/levels"
	"github.com/vovakirdan/blob-arcade/internal/storage"
)

// Options configures a terminal session.
type Options struct {
	Game       *blob.Game
	Store      *storage.Store   // Optional run log
	Watcher    *levels.Watcher  // Optional level file watcher
	Logger     *log.Logger      // Optional; discarded when nil
	Runtime    core.RuntimeConfig
	StartLevel int
	HoldTicks  int
}

// levelFileMsg carries a reloaded level file from the watcher.
type levelFileMsg struct {
	path string
	src  *levels.Source
	err  error
}

// watchErrMsg carries a watcher failure.
type watchErrMsg struct {
	err error
}

// Model is the Bubble Tea model for the blob platformer.
type Model struct {
	game       *blob.Game
	screen     *core.Screen
	store      *storage.Store
	watcher    *levels.Watcher
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	startLevel int
	quitting   bool
}

// NewModel creates a new Bubble Tea model.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       opts.Game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		watcher:    opts.Watcher,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		holds:      NewHoldTracker(opts.HoldTicks),
		inputFrame: core.NewInputFrame(),
		startLevel: opts.StartLevel,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.startLevel != 0 {
		m.game.LoadLevel(m.startLevel)
	}
	// Note: gameState will be set on first tick (value receiver limitation)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.watcher != nil {
		cmds = append(cmds, waitForLevelFile(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case levelFileMsg:
		return m.handleLevelFile(msg)

	case watchErrMsg:
		m.logger.Warn("level watcher error", "err", msg.err)
		return m, waitForLevelFile(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case IsHeld(action):
		m.holds.Press(action)
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The game rescales its field to the screen, so no reset is needed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.holds.Apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.handleEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// handleEvents logs simulation events and records wins in the run log.
func (m Model) handleEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventLevelLoaded:
			m.holds.Release()
			m.logger.Info("level loaded", "index", e.State.LevelIndex, "name", e.State.LevelName)
			if lvl := m.game.Level(); lvl != nil {
				for _, w := range lvl.Warnings {
					m.logger.Warn("level data", "level", lvl.Name, "warning", w)
				}
			}
		case core.EventRespawn:
			m.logger.Debug("respawn", "level", e.State.LevelName, "respawns", e.State.Respawns)
		case core.EventWon:
			m.logger.Info("level complete", "name", e.State.LevelName, "ticks", e.State.Ticks, "respawns", e.State.Respawns)
			m.saveRun(e.State)
		}
	}
}

// saveRun records a win. Failures are logged; the game continues regardless.
func (m Model) saveRun(state core.GameState) {
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		LevelName:  state.LevelName,
		LevelIndex: state.LevelIndex,
		Source:     m.game.Source().Origin,
		Ticks:      state.Ticks,
		Respawns:   state.Respawns,
		Seed:       m.config.Seed,
	})
	if err != nil {
		m.logger.Warn("cannot save run", "err", err)
	}
}

// handleLevelFile swaps in an edited level file between frames.
func (m Model) handleLevelFile(msg levelFileMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Warn("level file reload failed, keeping current levels", "path", msg.path, "err", msg.err)
	} else {
		m.logger.Info("level file reloaded", "path", msg.path, "levels", msg.src.Len())
		for _, w := range msg.src.Warnings {
			m.logger.Warn("level data", "warning", w)
		}
		m.game.SetSource(msg.src)
	}
	return m, waitForLevelFile(m.watcher)
}

// waitForLevelFile blocks on the watcher and loads the file once it changes.
func waitForLevelFile(w *levels.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			src, err := levels.Load(path)
			return levelFileMsg{path: path, src: src, err: err}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".blob", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the game state seen on the latest tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a terminal session.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
