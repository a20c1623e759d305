package core

// ReferenceTickRate is the frame rate at which per-frame tuning constants
// (gravity, scroll speed, animation speed) are expressed.
const ReferenceTickRate = 60

// Supported tick rates. Below MinTickRate an obstacle can cross the player
// in a single frame; above MaxTickRate the terminal cannot keep up.
const (
	MinTickRate = 20
	MaxTickRate = 240
)

// ClampTickRate limits rate to [MinTickRate, MaxTickRate]. Non-positive
// rates select ReferenceTickRate.
func ClampTickRate(rate int) int {
	switch {
	case rate <= 0:
		return ReferenceTickRate
	case rate < MinTickRate:
		return MinTickRate
	case rate > MaxTickRate:
		return MaxTickRate
	default:
		return rate
	}
}

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
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

// StepScale converts per-frame constants tuned at ReferenceTickRate to the
// configured tick rate: 1 at 60 Hz, 2 at 30 Hz, 0.5 at 120 Hz.
func (c RuntimeConfig) StepScale() float64 {
	if c.TickRate <= 0 {
		return 1
	}
	return float64(ReferenceTickRate) / float64(c.TickRate)
}

// Phase is the top-level state of the game.
type Phase int

const (
	PhaseIdle   Phase = iota // Title or game-over screen, waiting for start
	PhaseActive              // A run is being simulated
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseActive:
		return "Active"
	default:
		return "Unknown"
	}
}

// GameState is a snapshot of the game status for the platform layer.
type GameState struct {
	Phase     Phase
	Score     int  // Score of the current or last run
	HighScore int  // Best score ever, including the current run
	Runs      int  // Number of runs started since launch
	Paused    bool // Whether the active run is paused
}

// GameOver reports whether at least one run ended and no run is active.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseIdle && s.Runs > 0
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// RunEnded is set on the frame a collision ended the active run.
	RunEnded bool
}
