package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Simulation ticks per second (default 60)
	Seed       int64  // RNG seed for deterministic gameplay
	Difficulty string // Initially active difficulty profile name
	HighScore  int    // Stored high score loaded by the platform
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
		Difficulty: "medium",
	}
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Phase      string // Name of the active state machine state
	Score      int
	HighScore  int
	Level      int
	Lives      int
	Difficulty string
	GameOver   bool
	Paused     bool
	Quit       bool // The player asked to leave the game
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Freeze asks the platform to delay the next tick, used for the short
	// pause after the avatar is hit.
	Freeze time.Duration
}
