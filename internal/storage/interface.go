package storage

import (
	"context"

	"github.com/mwhite/phraseparty/internal/model"
)

// Storage is the game registry: the single authoritative owner of game
// state, keyed by game id. All other components operate on a game fetched
// from here for the duration of one logical operation.
type Storage interface {
	// SaveGame stores or overwrites a game by its id
	SaveGame(ctx context.Context, game *model.Game) error

	// GetGame returns the stored game or model.ErrGameNotFound
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)

	// DeleteGame removes a game; deleting an absent game is not an error
	DeleteGame(ctx context.Context, id model.GameID) error

	// GameExists reports whether a game id is in use
	GameExists(ctx context.Context, id model.GameID) (bool, error)
}
