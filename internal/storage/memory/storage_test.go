package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mwhite/phraseparty/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) testGame(id model.GameID) *model.Game {
	return &model.Game{
		ID:    id,
		State: model.GameStateRegistration,
		Settings: model.GameSettings{
			NumberOfRounds:       3,
			PhraseLimitPerPlayer: 3,
			PhraseCharacterLimit: 150,
		},
		Teams: []model.Team{
			{Name: "Team_1"},
			{Name: "Team_2"},
		},
		TurnIndex:  -1,
		CreatedAt:  time.Now(),
		LastUpdate: time.Now(),
	}
}

func (s *StorageSuite) TestSaveAndGetGame() {
	game := s.testGame("abc12")

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "abc12")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(model.GameStateRegistration, retrieved.State)
	s.Len(retrieved.Teams, 2)
	s.Equal(-1, retrieved.TurnIndex)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nope1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestSaveOverwritesByID() {
	game := s.testGame("abc12")
	_ = s.storage.SaveGame(s.ctx, game)

	game.State = model.GameStateTurnReady
	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "abc12")
	s.Require().NoError(err)
	s.Equal(model.GameStateTurnReady, retrieved.State)
}

func (s *StorageSuite) TestDeleteGame() {
	_ = s.storage.SaveGame(s.ctx, s.testGame("abc12"))

	err := s.storage.DeleteGame(s.ctx, "abc12")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "abc12")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteAbsentGameIsNotAnError() {
	s.NoError(s.storage.DeleteGame(s.ctx, "nope1"))
}

func (s *StorageSuite) TestGameExists() {
	exists, err := s.storage.GameExists(s.ctx, "abc12")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveGame(s.ctx, s.testGame("abc12"))

	exists, err = s.storage.GameExists(s.ctx, "abc12")
	s.Require().NoError(err)
	s.True(exists)
}
