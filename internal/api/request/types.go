package request

// GameSettings is the settings payload for creating a game
type GameSettings struct {
	NumberOfRounds       int `json:"number_of_rounds"`
	TimeLimitSeconds     int `json:"time_limit_seconds"`
	PhraseLimitPerPlayer int `json:"phrase_limit_per_player"`
	PhraseCharacterLimit int `json:"phrase_character_limit"`
	PassesAllowed        int `json:"passes_allowed"`
}

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	Settings  *GameSettings `json:"settings"`
	TeamNames []string      `json:"team_names"`
}

// JoinGameRequest is the request body for joining a game
type JoinGameRequest struct {
	PlayerName string `json:"player_name"`
	TeamName   string `json:"team_name"`
}

// SubmitPhrasesRequest is the request body for submitting a phrase batch
type SubmitPhrasesRequest struct {
	Phrases []string `json:"phrases"`
}
