package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Simulation ticks per second (default 20)
	Seed       int64  // RNG seed for deterministic gameplay
	PlayerName string // Name attached to the score record
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   20,
		Seed:       0, // 0 means use current time in platform layer
		PlayerName: "runner",
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	BossMode bool // Whether a boss fight is in progress
}

// ScoreRecord is the single leaderboard entry produced by a finished session.
type ScoreRecord struct {
	Name  string
	Score int
}

// EventKind identifies a notable simulation event.
type EventKind int

const (
	EventPlayerHit EventKind = iota
	EventBossSpawned
	EventBossDefeated
	EventGameOver
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventPlayerHit:
		return "player_hit"
	case EventBossSpawned:
		return "boss_spawned"
	case EventBossDefeated:
		return "boss_defeated"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by a simulation tick for the platform to log or react to.
type Event struct {
	Kind   EventKind
	Tick   uint64
	Detail string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event

	// Record is non-nil exactly once per session, on the tick the game ends.
	Record *ScoreRecord
}
