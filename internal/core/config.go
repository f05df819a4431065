package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second
	Seed     int64  // RNG seed for shuffling; 0 means use the current time
	DeckID   string // Deck identity to deal; empty means shuffle a new deck
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Cards on foundations
	Moves    int  // Moves currently applied
	GameOver bool // No further play is possible
	Won      bool // GameOver because every card reached a foundation
}

// Outcome describes how a deal ended, for the statistics database.
type Outcome struct {
	DeckID     string
	Moves      int
	Undos      int
	Foundation int // Cards on foundations
	Won        bool
	Duration   time.Duration
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Moved bool     // Whether the board changed during this tick
	Ended *Outcome // Set on the tick a deal is won or abandoned for another
}
