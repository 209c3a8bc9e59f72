package response

import (
	"github.com/mwhite/phraseparty/internal/model"
	"github.com/mwhite/phraseparty/internal/services/game"
)

// GameSettings represents game settings in API responses
type GameSettings struct {
	NumberOfRounds       int `json:"number_of_rounds"`
	TimeLimitSeconds     int `json:"time_limit_seconds"`
	PhraseLimitPerPlayer int `json:"phrase_limit_per_player"`
	PhraseCharacterLimit int `json:"phrase_character_limit"`
	PassesAllowed        int `json:"passes_allowed"`
}

// GameSettingsFromModel converts model.GameSettings
func GameSettingsFromModel(s model.GameSettings) GameSettings {
	return GameSettings{
		NumberOfRounds:       s.NumberOfRounds,
		TimeLimitSeconds:     s.TimeLimitSeconds,
		PhraseLimitPerPlayer: s.PhraseLimitPerPlayer,
		PhraseCharacterLimit: s.PhraseCharacterLimit,
		PassesAllowed:        s.PassesAllowed,
	}
}

// Player represents a roster member in API responses
type Player struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	PhrasesSubmitted bool   `json:"phrases_submitted"`
}

// PlayerFromModel converts a model.Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:               string(p.ID),
		Name:             p.Name,
		PhrasesSubmitted: p.PhrasesSubmitted,
	}
}

// Team represents a team in API responses
type Team struct {
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

// TeamFromModel converts a model.Team
func TeamFromModel(t *model.Team) Team {
	players := make([]Player, len(t.Players))
	for i := range t.Players {
		players[i] = PlayerFromModel(&t.Players[i])
	}
	return Team{
		Name:    t.Name,
		Players: players,
	}
}

// CreateGameResponse is the response for game creation
type CreateGameResponse struct {
	GameID string `json:"game_id"`
}

// JoinGameResponse is the response for joining a game
type JoinGameResponse struct {
	PlayerID string `json:"player_id"`
}

// GameData is the summary view of a game. Player is present only when the
// requester resolved to a roster member; CurrentPlayer and NextPlayer are
// empty before the rotation starts.
type GameData struct {
	GameID        string       `json:"game_id"`
	Settings      GameSettings `json:"settings"`
	State         string       `json:"state"`
	Teams         []Team       `json:"teams"`
	Leader        string       `json:"leader,omitempty"`
	Player        *Player      `json:"player,omitempty"`
	CurrentPlayer string       `json:"current_player,omitempty"`
	NextPlayer    string       `json:"next_player,omitempty"`
}

// GameDataFromService converts a lifecycle summary
func GameDataFromService(d *game.Data) GameData {
	teams := make([]Team, len(d.Game.Teams))
	for i := range d.Game.Teams {
		teams[i] = TeamFromModel(&d.Game.Teams[i])
	}

	out := GameData{
		GameID:   string(d.Game.ID),
		Settings: GameSettingsFromModel(d.Game.Settings),
		State:    string(d.Game.State),
		Teams:    teams,
	}

	if leader := d.Game.Leader(); leader != nil {
		out.Leader = leader.Name
	}
	if d.Player != nil {
		p := PlayerFromModel(d.Player)
		out.Player = &p
	}
	if d.CurrentPlayer != nil {
		out.CurrentPlayer = d.CurrentPlayer.Name
	}
	if d.NextPlayer != nil {
		out.NextPlayer = d.NextPlayer.Name
	}

	return out
}
