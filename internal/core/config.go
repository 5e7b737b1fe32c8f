package core

import "time"

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

// FrameDuration returns the simulated time covered by one tick.
func (c RuntimeConfig) FrameDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// Phase is the lifecycle state of a round.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score int   // Current score
	Phase Phase // Current lifecycle phase
}

// GameOver reports whether the round has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseOver
}

// Paused reports whether the round is paused.
func (s GameState) Paused() bool {
	return s.Phase == PhasePaused
}

// Event is a discrete notification emitted by the simulation.
// Presentation layers map events to sounds or effects.
type Event int

const (
	EventFired          Event = iota // Player fired a projectile
	EventHit                         // Projectile destroyed an adversary
	EventPlayerCollided              // Adversary struck the player
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventFired:
		return "fired"
	case EventHit:
		return "hit"
	case EventPlayerCollided:
		return "playerCollided"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
