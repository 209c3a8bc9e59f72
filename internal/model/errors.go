package model

import "errors"

// Common errors used across the application. Callers wrap these with
// fmt.Errorf("%w: ...") to carry detail (names, counts); errors.Is still
// matches the sentinel.
var (
	// Not found
	ErrGameNotFound   = errors.New("game not found")
	ErrTeamNotFound   = errors.New("team not found")
	ErrPlayerNotFound = errors.New("player does not exist")

	// Invalid input
	ErrInvalidSettings  = errors.New("invalid game settings")
	ErrNoTeams          = errors.New("at least one team must be specified")
	ErrWrongPhraseCount = errors.New("invalid number of phrases submitted")
	ErrEmptyPhrase      = errors.New("all phrases must have a value")
	ErrPhraseTooLong    = errors.New("phrase exceeds the character limit")
	ErrPhrasesMissing   = errors.New("some players have not submitted their phrases")

	// Conflicts
	ErrPlayerNameTaken = errors.New("player already exists with that name")
	ErrDuplicateTeam   = errors.New("team names must be unique")
	ErrDuplicatePhrase = errors.New("all phrases must be unique")

	// Invalid state
	ErrRegistrationClosed = errors.New("this game is not accepting new players")
	ErrAlreadySubmitted   = errors.New("phrases already submitted")
	ErrSetupComplete      = errors.New("game setup is already complete")
	ErrTurnNotReady       = errors.New("the game is not ready to start a turn")

	// Forbidden
	ErrNotLeader     = errors.New("only the game leader may close registration")
	ErrNotNextPlayer = errors.New("only the next player may start the turn")
)
