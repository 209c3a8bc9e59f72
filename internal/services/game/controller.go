package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/mwhite/phraseparty/internal/dependencies/clock"
	"github.com/mwhite/phraseparty/internal/dependencies/random"
	"github.com/mwhite/phraseparty/internal/model"
	"github.com/mwhite/phraseparty/internal/services/turn"
	"github.com/mwhite/phraseparty/internal/storage"
)

const (
	// IDLength is the length of generated game and player ids
	IDLength = 5
	// IDAlphabet is the characters used in generated ids
	IDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Data is the summary view of a game returned by reads and by SubmitPhrases
type Data struct {
	Game *model.Game

	// Player is the requester's own record; nil when the requester is not
	// a roster member (spectator reads are valid)
	Player *model.Player

	// CurrentPlayer and NextPlayer are the scheduler's offset-0 and
	// offset-1 players; nil before the rotation starts
	CurrentPlayer *model.Player
	NextPlayer    *model.Player
}

// Controller manages the game lifecycle state machine: registration,
// phrase submission, and the transition into turn rotation
type Controller struct {
	storage   storage.Storage
	scheduler *turn.Service
	clock     clock.Clock
	random    random.Random
	logger    *slog.Logger
	locks     *gameLocks
}

// NewController creates a new game lifecycle controller
func NewController(
	storage storage.Storage,
	scheduler *turn.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   storage,
		scheduler: scheduler,
		clock:     clock,
		random:    random,
		logger:    logger,
		locks:     newGameLocks(),
	}
}

// CreateGame allocates a new game in the registration state with one empty
// team per supplied name, and returns its id
func (c *Controller) CreateGame(ctx context.Context, settings *model.GameSettings, teamNames []string) (model.GameID, error) {
	if settings == nil {
		return "", model.ErrInvalidSettings
	}
	if len(teamNames) == 0 {
		return "", model.ErrNoTeams
	}

	teams := make([]model.Team, 0, len(teamNames))
	for _, name := range teamNames {
		for _, existing := range teams {
			if existing.Name == name {
				return "", fmt.Errorf("%w: %s", model.ErrDuplicateTeam, name)
			}
		}
		teams = append(teams, model.Team{Name: name, Players: []model.Player{}})
	}

	// Generate an unused game id, re-rolling on collision
	var id model.GameID
	for {
		id = model.GameID(c.random.String(IDLength, IDAlphabet))
		exists, err := c.storage.GameExists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			break
		}
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:         id,
		Settings:   *settings,
		State:      model.GameStateRegistration,
		Teams:      teams,
		Phrases:    []model.Phrase{},
		TurnIndex:  -1,
		CreatedAt:  now,
		LastUpdate: now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(id)),
			slog.String("error", err.Error()),
		)
		return "", err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(id)),
		slog.Int("team_count", len(teams)),
		slog.Int("phrase_limit", settings.PhraseLimitPerPlayer),
	)

	return id, nil
}

// JoinGame adds a new player to the named team. The first player to join
// becomes the game leader.
func (c *Controller) JoinGame(ctx context.Context, gameID model.GameID, playerName, teamName string) (model.PlayerID, error) {
	lock := c.locks.get(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := c.getGame(ctx, gameID)
	if err != nil {
		return "", err
	}

	if game.State != model.GameStateRegistration {
		return "", model.ErrRegistrationClosed
	}

	team := game.Team(teamName)
	if team == nil {
		return "", fmt.Errorf("%w: no team with name %s", model.ErrTeamNotFound, teamName)
	}

	if game.PlayerByName(playerName) != nil {
		return "", fmt.Errorf("%w: %s", model.ErrPlayerNameTaken, playerName)
	}

	player := model.Player{
		ID:       model.PlayerID(c.random.String(IDLength, IDAlphabet)),
		Name:     playerName,
		JoinedAt: c.clock.Now(),
	}
	team.Players = append(team.Players, player)

	if game.LeaderID == "" {
		game.LeaderID = player.ID
	}

	game.LastUpdate = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return "", err
	}

	c.logger.Info("player joined",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(player.ID)),
		slog.String("team", teamName),
		slog.Bool("is_leader", game.LeaderID == player.ID),
	)

	return player.ID, nil
}

// SubmitPhrases records a player's phrase batch. Each player submits exactly
// once; the batch size must match the game's per-player limit, and every
// phrase must be unique within the batch, non-blank, and within the
// character limit. Validation completes fully before any mutation.
func (c *Controller) SubmitPhrases(ctx context.Context, gameID model.GameID, playerID model.PlayerID, texts []string) (*Data, error) {
	lock := c.locks.get(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := c.getGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	player := game.PlayerByID(playerID)
	if player == nil {
		return nil, model.ErrPlayerNotFound
	}

	if player.PhrasesSubmitted {
		return nil, fmt.Errorf("%w: %s has already submitted phrases", model.ErrAlreadySubmitted, player.Name)
	}

	limit := game.Settings.PhraseLimitPerPlayer
	if len(texts) != limit {
		return nil, fmt.Errorf("%w: expected %d", model.ErrWrongPhraseCount, limit)
	}

	seen := make(map[string]bool, len(texts))
	for _, text := range texts {
		if seen[text] {
			return nil, model.ErrDuplicatePhrase
		}
		seen[text] = true

		if strings.TrimSpace(text) == "" {
			return nil, model.ErrEmptyPhrase
		}
		// The limit counts characters, not bytes
		if utf8.RuneCountInString(text) > game.Settings.PhraseCharacterLimit {
			return nil, fmt.Errorf("%w: phrases must be at most %d characters", model.ErrPhraseTooLong, game.Settings.PhraseCharacterLimit)
		}
	}

	player.PhrasesSubmitted = true
	for _, text := range texts {
		game.Phrases = append(game.Phrases, model.Phrase{
			Text:       text,
			AuthorName: player.Name,
		})
	}

	game.LastUpdate = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("phrases submitted",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(playerID)),
		slog.Int("count", len(texts)),
	)

	return c.buildData(game, player), nil
}

// CompleteRegistration closes registration and moves the game to the
// turn-ready state. Only the leader may do this, and only once every player
// has submitted phrases. Rotation cursors are reset even though they are
// already at their initial positions, so a defensive call is idempotent.
func (c *Controller) CompleteRegistration(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	lock := c.locks.get(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := c.getGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.State != model.GameStateRegistration {
		return model.ErrSetupComplete
	}

	leader := game.Leader()
	if leader == nil || leader.ID != playerID {
		leaderName := ""
		if leader != nil {
			leaderName = leader.Name
		}
		return fmt.Errorf("%w: %s", model.ErrNotLeader, leaderName)
	}

	if missing := game.PlayersAwaitingPhrases(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", model.ErrPhrasesMissing, strings.Join(missing, ", "))
	}

	game.State = model.GameStateTurnReady
	game.TurnIndex = -1
	for i := range game.Teams {
		game.Teams[i].PlayerTurnIndex = 0
	}

	game.LastUpdate = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return err
	}

	c.logger.Info("registration complete",
		slog.String("game_id", string(gameID)),
		slog.Int("phrase_count", len(game.Phrases)),
	)

	return nil
}

// StartTurn begins the next turn. Only the player the scheduler names one
// step ahead of the current cursor may start it; on success the rotation
// cursor advances so the starter becomes the current player, and the game
// enters the in-turn state. Running the guessing round itself is the
// responsibility of a later layer.
func (c *Controller) StartTurn(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	lock := c.locks.get(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := c.getGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.State != model.GameStateTurnReady {
		return model.ErrTurnNotReady
	}

	expected := c.scheduler.NextPlayer(game)
	if expected == nil || expected.ID != playerID {
		expectedName := ""
		if expected != nil {
			expectedName = expected.Name
		}
		return fmt.Errorf("%w: %s", model.ErrNotNextPlayer, expectedName)
	}

	game.TurnIndex++
	game.State = model.GameStateTurnInProgress

	game.LastUpdate = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return err
	}

	c.logger.Info("turn started",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(playerID)),
		slog.Int("turn_index", game.TurnIndex),
	)

	return nil
}

// GetGameData returns the summary view for a specific requester. A player id
// that resolves to no roster member is not an error: spectators may read.
func (c *Controller) GetGameData(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*Data, error) {
	lock := c.locks.get(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := c.getGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return c.buildData(game, game.PlayerByID(playerID)), nil
}

// GetGameDataByID returns the summary view with no requester record
func (c *Controller) GetGameDataByID(ctx context.Context, gameID model.GameID) (*Data, error) {
	return c.GetGameData(ctx, gameID, "")
}

// getGame fetches a game, attaching the id to the not-found error
func (c *Controller) getGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			return nil, fmt.Errorf("%w: no game with id %s", model.ErrGameNotFound, gameID)
		}
		return nil, err
	}
	return game, nil
}

func (c *Controller) buildData(game *model.Game, player *model.Player) *Data {
	return &Data{
		Game:          game,
		Player:        player,
		CurrentPlayer: c.scheduler.CurrentPlayer(game),
		NextPlayer:    c.scheduler.NextPlayer(game),
	}
}

// ControllerInterface describes the lifecycle operations for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, settings *model.GameSettings, teamNames []string) (model.GameID, error)
	JoinGame(ctx context.Context, gameID model.GameID, playerName, teamName string) (model.PlayerID, error)
	SubmitPhrases(ctx context.Context, gameID model.GameID, playerID model.PlayerID, texts []string) (*Data, error)
	CompleteRegistration(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
	StartTurn(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
	GetGameData(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*Data, error)
	GetGameDataByID(ctx context.Context, gameID model.GameID) (*Data, error)
}

var _ ControllerInterface = (*Controller)(nil)
