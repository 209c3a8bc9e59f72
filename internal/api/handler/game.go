package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mwhite/phraseparty/internal/api/apierr"
	"github.com/mwhite/phraseparty/internal/api/request"
	"github.com/mwhite/phraseparty/internal/api/response"
	"github.com/mwhite/phraseparty/internal/model"
	"github.com/mwhite/phraseparty/internal/services/game"
)

// GameHandler handles game lifecycle endpoints
type GameHandler struct {
	controller *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller *game.Controller) *GameHandler {
	return &GameHandler{
		controller: controller,
	}
}

// defaultSettings are used when a create request omits its settings,
// so a client can spin up a quick game with one call
func defaultSettings() (*model.GameSettings, []string) {
	return &model.GameSettings{
		NumberOfRounds:       3,
		TimeLimitSeconds:     60,
		PhraseLimitPerPlayer: 3,
		PhraseCharacterLimit: 150,
		PassesAllowed:        3,
	}, []string{"Team_1", "Team_2"}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Allow an empty body for a quick default game
		req = request.CreateGameRequest{}
	}

	settings, teamNames := defaultSettings()
	if req.Settings != nil {
		settings = &model.GameSettings{
			NumberOfRounds:       req.Settings.NumberOfRounds,
			TimeLimitSeconds:     req.Settings.TimeLimitSeconds,
			PhraseLimitPerPlayer: req.Settings.PhraseLimitPerPlayer,
			PhraseCharacterLimit: req.Settings.PhraseCharacterLimit,
			PassesAllowed:        req.Settings.PassesAllowed,
		}
		teamNames = req.TeamNames
	} else if len(req.TeamNames) > 0 {
		teamNames = req.TeamNames
	}

	gameID, err := h.controller.CreateGame(r.Context(), settings, teamNames)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CreateGameResponse{GameID: string(gameID)})
}

// Get handles GET /api/v1/games/{game_id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	data, err := h.controller.GetGameDataByID(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameDataFromService(data))
}

// GetForPlayer handles GET /api/v1/games/{game_id}/players/{player_id}
func (h *GameHandler) GetForPlayer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := model.GameID(vars["game_id"])
	playerID := model.PlayerID(vars["player_id"])

	data, err := h.controller.GetGameData(r.Context(), gameID, playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameDataFromService(data))
}

// Join handles POST /api/v1/games/{game_id}/join
func (h *GameHandler) Join(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	var req request.JoinGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}
	if req.PlayerName == "" || req.TeamName == "" {
		WriteError(w, apierr.NewInvalidRequestError("player_name and team_name are required"))
		return
	}

	playerID, err := h.controller.JoinGame(r.Context(), gameID, req.PlayerName, req.TeamName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.JoinGameResponse{PlayerID: string(playerID)})
}

// SubmitPhrases handles POST /api/v1/games/{game_id}/players/{player_id}/phrases
func (h *GameHandler) SubmitPhrases(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := model.GameID(vars["game_id"])
	playerID := model.PlayerID(vars["player_id"])

	var req request.SubmitPhrasesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}

	data, err := h.controller.SubmitPhrases(r.Context(), gameID, playerID, req.Phrases)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameDataFromService(data))
}

// CompleteRegistration handles POST /api/v1/games/{game_id}/players/{player_id}/complete-registration
func (h *GameHandler) CompleteRegistration(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := model.GameID(vars["game_id"])
	playerID := model.PlayerID(vars["player_id"])

	if err := h.controller.CompleteRegistration(r.Context(), gameID, playerID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// StartTurn handles POST /api/v1/games/{game_id}/players/{player_id}/start-turn
func (h *GameHandler) StartTurn(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := model.GameID(vars["game_id"])
	playerID := model.PlayerID(vars["player_id"])

	if err := h.controller.StartTurn(r.Context(), gameID, playerID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
