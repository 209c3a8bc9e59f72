package model

import "time"

// PlayerID uniquely identifies a player within a game
type PlayerID string

// Player represents a game participant belonging to exactly one team
type Player struct {
	ID   PlayerID
	Name string

	// PhrasesSubmitted is set once the player has submitted their batch;
	// a player submits exactly once
	PhrasesSubmitted bool

	JoinedAt time.Time
}
