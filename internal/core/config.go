package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the state of the level state machine.
type Phase int

const (
	PhaseLoading Phase = iota // A level is being constructed
	PhasePlaying              // Simulation runs every frame
	PhaseWon                  // Simulation frozen until restart or next level
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "Loading"
	case PhasePlaying:
		return "Playing"
	case PhaseWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase      Phase  // Current state machine phase
	LevelIndex int    // Index of the loaded level in the level source
	LevelName  string // Display name of the loaded level
	Ticks      int    // Simulated frames since the level was loaded
	Respawns   int    // Obstacle hits since the level was loaded
	Paused     bool   // Whether the game is paused
}

// Won reports whether the current level has been completed.
func (s GameState) Won() bool {
	return s.Phase == PhaseWon
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventLevelLoaded EventKind = iota // A level was (re)constructed
	EventRespawn                      // The player hit an obstacle and respawned
	EventWon                          // The player reached a goal platform
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLevelLoaded:
		return "LevelLoaded"
	case EventRespawn:
		return "Respawn"
	case EventWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Event is emitted by Game.Step for the platform layer (logging, run log).
type Event struct {
	Kind  EventKind
	State GameState // State right after the event
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
