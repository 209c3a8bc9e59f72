package model

// Phrase is a short text submitted by a player, guessed during rounds
type Phrase struct {
	Text string

	// AuthorName is stamped at submission time from the submitting
	// player's record, never taken from the request
	AuthorName string
}
