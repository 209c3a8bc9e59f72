package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mwhite/phraseparty/internal/api/handler"
	apimiddleware "github.com/mwhite/phraseparty/internal/api/middleware"
	"github.com/mwhite/phraseparty/internal/middleware"
	"github.com/mwhite/phraseparty/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.GameController)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	games := api.PathPrefix("/games").Subrouter()
	games.HandleFunc("", gameHandler.Create).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/{game_id}/join", gameHandler.Join).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/players/{player_id}", gameHandler.GetForPlayer).Methods(http.MethodGet)
	games.HandleFunc("/{game_id}/players/{player_id}/phrases", gameHandler.SubmitPhrases).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/players/{player_id}/complete-registration", gameHandler.CompleteRegistration).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/players/{player_id}/start-turn", gameHandler.StartTurn).Methods(http.MethodPost)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
