package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateRegistration   GameState = "registration"     // Players joining teams and submitting phrases
	GameStateTurnReady      GameState = "turn_ready"       // Registration closed, waiting for next player to start
	GameStateTurnInProgress GameState = "turn_in_progress" // A player is actively guessing
	GameStateRoundComplete  GameState = "round_complete"   // All phrases guessed this round
	GameStateGameComplete   GameState = "game_complete"    // All rounds played
)

// GameSettings holds the rules for a game. Immutable once the game is created.
type GameSettings struct {
	NumberOfRounds       int
	TimeLimitSeconds     int
	PhraseLimitPerPlayer int
	PhraseCharacterLimit int
	PassesAllowed        int
}

// Game represents a single phrase game, owning its teams and phrase pool
type Game struct {
	ID       GameID
	Settings GameSettings
	State    GameState

	// Teams in creation order. Each team exclusively owns its player roster.
	Teams []Team

	// Phrases accumulated across all submissions, in submission order
	Phrases []Phrase

	// LeaderID is a weak reference to the first player who joined.
	// Resolve through Leader(); empty until someone joins.
	LeaderID PlayerID

	// TurnIndex is the game-level team rotation cursor. It starts at -1
	// ("rotation not started") and grows monotonically once turns begin;
	// the scheduler reduces it modulo the team count.
	TurnIndex int

	CreatedAt  time.Time
	LastUpdate time.Time
}

// Team returns the team with the given name, or nil if not found
func (g *Game) Team(name string) *Team {
	for i := range g.Teams {
		if g.Teams[i].Name == name {
			return &g.Teams[i]
		}
	}
	return nil
}

// PlayerByID scans every team's roster for the given player id
func (g *Game) PlayerByID(id PlayerID) *Player {
	for i := range g.Teams {
		if p := g.Teams[i].PlayerByID(id); p != nil {
			return p
		}
	}
	return nil
}

// PlayerByName scans every team's roster for the given player name.
// Names are unique across the whole game, not just within a team.
func (g *Game) PlayerByName(name string) *Player {
	for i := range g.Teams {
		if p := g.Teams[i].PlayerByName(name); p != nil {
			return p
		}
	}
	return nil
}

// Leader resolves the leader reference, or nil if no one has joined yet
func (g *Game) Leader() *Player {
	if g.LeaderID == "" {
		return nil
	}
	return g.PlayerByID(g.LeaderID)
}

// PlayersAwaitingPhrases returns the names of players who have not yet
// submitted phrases, in team order then roster order
func (g *Game) PlayersAwaitingPhrases() []string {
	var names []string
	for i := range g.Teams {
		for j := range g.Teams[i].Players {
			if !g.Teams[i].Players[j].PhrasesSubmitted {
				names = append(names, g.Teams[i].Players[j].Name)
			}
		}
	}
	return names
}
