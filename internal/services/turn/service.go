package turn

import "github.com/mwhite/phraseparty/internal/model"

// Service computes turn order. Turns advance team-by-team in a strict cycle;
// after a full cycle each team's own player cursor has advanced by one, so a
// team rotates through its roster independently of other teams' sizes.
//
// The service is pure: it never touches storage and never mutates the game.
type Service struct{}

// New creates a new turn scheduler
func New() *Service {
	return &Service{}
}

// PlayerAtOffset returns the player due the given number of turns after the
// game's current cursor, or nil if the rotation has not started and the
// offset resolves to before the first turn.
//
// The game's TurnIndex sentinel of -1 relies on Go's truncated
// (sign-preserving) remainder: combined with an even offset it yields a
// negative team index, which means no player is due.
func (s *Service) PlayerAtOffset(game *model.Game, offset int) *model.Player {
	teamCount := len(game.Teams)
	if teamCount == 0 {
		return nil
	}

	adjustedTeamIndex := (game.TurnIndex + offset%teamCount) % teamCount
	if adjustedTeamIndex < 0 {
		return nil
	}

	team := &game.Teams[adjustedTeamIndex]
	if len(team.Players) == 0 {
		return nil
	}

	// Each full cycle of the team rotation advances every team's own
	// player cursor by one.
	playerCyclesAdvanced := offset / teamCount
	adjustedPlayerIndex := (team.PlayerTurnIndex + playerCyclesAdvanced) % len(team.Players)

	return &team.Players[adjustedPlayerIndex]
}

// CurrentPlayer returns the player whose turn it is, or nil before the
// rotation starts
func (s *Service) CurrentPlayer(game *model.Game) *model.Player {
	return s.PlayerAtOffset(game, 0)
}

// NextPlayer returns the player due one turn after the current cursor
func (s *Service) NextPlayer(game *model.Game) *model.Player {
	return s.PlayerAtOffset(game, 1)
}
