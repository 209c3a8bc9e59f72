package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhite/phraseparty/internal/api"
	"github.com/mwhite/phraseparty/internal/dependencies/clock"
	"github.com/mwhite/phraseparty/internal/dependencies/random"
	"github.com/mwhite/phraseparty/internal/services/game"
	"github.com/mwhite/phraseparty/internal/services/turn"
	"github.com/mwhite/phraseparty/internal/storage/memory"
	"github.com/mwhite/phraseparty/internal/testutil"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := testutil.NopLogger()
	controller := game.NewController(memory.New(), turn.New(), clock.New(), random.New(), logger)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: controller,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}

	return resp, decoded
}

func errMessage(t *testing.T, body map[string]any) string {
	t.Helper()

	wrapper, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected an error body, got %v", body)
	msg, _ := wrapper["message"].(string)
	return msg
}

func createGame(t *testing.T, server *httptest.Server, phraseLimit int, teamNames ...string) string {
	t.Helper()

	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/v1/games", map[string]any{
		"settings": map[string]any{
			"number_of_rounds":       3,
			"time_limit_seconds":     60,
			"phrase_limit_per_player": phraseLimit,
			"phrase_character_limit": 150,
			"passes_allowed":         3,
		},
		"team_names": teamNames,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	gameID, ok := body["game_id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, gameID)
	return gameID
}

func joinGame(t *testing.T, server *httptest.Server, gameID, playerName, teamName string) string {
	t.Helper()

	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/v1/games/"+gameID+"/join", map[string]any{
		"player_name": playerName,
		"team_name":   teamName,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	playerID, ok := body["player_id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, playerID)
	return playerID
}

func submitPhrases(t *testing.T, server *httptest.Server, gameID, playerID string, phrases []string) {
	t.Helper()

	url := fmt.Sprintf("%s/api/v1/games/%s/players/%s/phrases", server.URL, gameID, playerID)
	resp, _ := doJSON(t, http.MethodPost, url, map[string]any{"phrases": phrases})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	server := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestCreateGameWithDefaults(t *testing.T) {
	server := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/v1/games", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	gameID := body["game_id"].(string)
	assert.Len(t, gameID, 5)

	resp, body = doJSON(t, http.MethodGet, server.URL+"/api/v1/games/"+gameID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "registration", body["state"])

	teams := body["teams"].([]any)
	require.Len(t, teams, 2)
	assert.Equal(t, "Team_1", teams[0].(map[string]any)["name"])
	assert.Equal(t, "Team_2", teams[1].(map[string]any)["name"])
}

func TestGetUnknownGame(t *testing.T) {
	server := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/v1/games/nope1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, errMessage(t, body), "no game with id nope1")
}

func TestJoinValidation(t *testing.T) {
	server := newTestServer(t)
	gameID := createGame(t, server, 2, "Red", "Blue")

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/v1/games/"+gameID+"/join", map[string]any{
		"player_name": "alice",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/v1/games/"+gameID+"/join", map[string]any{
		"player_name": "alice",
		"team_name":   "Green",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	joinGame(t, server, gameID, "alice", "Red")
	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/v1/games/"+gameID+"/join", map[string]any{
		"player_name": "alice",
		"team_name":   "Blue",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestFullGameFlow(t *testing.T) {
	server := newTestServer(t)
	gameID := createGame(t, server, 2, "Red", "Blue")

	aliceID := joinGame(t, server, gameID, "alice", "Red")
	bobID := joinGame(t, server, gameID, "bob", "Blue")
	carolID := joinGame(t, server, gameID, "carol", "Red")

	// First joiner leads
	_, body := doJSON(t, http.MethodGet, server.URL+"/api/v1/games/"+gameID, nil)
	assert.Equal(t, "alice", body["leader"])

	// Closing before everyone has submitted is rejected
	url := fmt.Sprintf("%s/api/v1/games/%s/players/%s/complete-registration", server.URL, gameID, aliceID)
	resp, body := doJSON(t, http.MethodPost, url, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, errMessage(t, body), "have not submitted their phrases")

	submitPhrases(t, server, gameID, aliceID, []string{"red rover", "hot potato"})
	submitPhrases(t, server, gameID, bobID, []string{"blue moon", "cold feet"})
	submitPhrases(t, server, gameID, carolID, []string{"green light", "warm bread"})

	// Only the leader may close registration
	url = fmt.Sprintf("%s/api/v1/games/%s/players/%s/complete-registration", server.URL, gameID, bobID)
	resp, body = doJSON(t, http.MethodPost, url, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, errMessage(t, body), "close registration: alice")

	url = fmt.Sprintf("%s/api/v1/games/%s/players/%s/complete-registration", server.URL, gameID, aliceID)
	resp, _ = doJSON(t, http.MethodPost, url, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Registration closed: no current player yet, alice is up next
	_, body = doJSON(t, http.MethodGet, server.URL+"/api/v1/games/"+gameID, nil)
	assert.Equal(t, "turn_ready", body["state"])
	assert.Nil(t, body["current_player"])
	assert.Equal(t, "alice", body["next_player"])

	// Joining a closed game is rejected
	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/v1/games/"+gameID+"/join", map[string]any{
		"player_name": "dave",
		"team_name":   "Blue",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Only the upcoming player may start the turn
	url = fmt.Sprintf("%s/api/v1/games/%s/players/%s/start-turn", server.URL, gameID, bobID)
	resp, body = doJSON(t, http.MethodPost, url, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, errMessage(t, body), "next player may start the turn: alice")

	url = fmt.Sprintf("%s/api/v1/games/%s/players/%s/start-turn", server.URL, gameID, aliceID)
	resp, _ = doJSON(t, http.MethodPost, url, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, body = doJSON(t, http.MethodGet, server.URL+"/api/v1/games/"+gameID, nil)
	assert.Equal(t, "turn_in_progress", body["state"])
	assert.Equal(t, "alice", body["current_player"])
	assert.Equal(t, "bob", body["next_player"])
}

func TestSubmitPhraseValidation(t *testing.T) {
	server := newTestServer(t)
	gameID := createGame(t, server, 2, "Red", "Blue")
	aliceID := joinGame(t, server, gameID, "alice", "Red")

	url := fmt.Sprintf("%s/api/v1/games/%s/players/%s/phrases", server.URL, gameID, aliceID)

	resp, body := doJSON(t, http.MethodPost, url, map[string]any{"phrases": []string{"one"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, errMessage(t, body), "invalid number of phrases submitted: expected 2")

	resp, _ = doJSON(t, http.MethodPost, url, map[string]any{"phrases": []string{"  ", "two"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, url, map[string]any{"phrases": []string{"one", "two"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Second submission is rejected
	resp, _ = doJSON(t, http.MethodPost, url, map[string]any{"phrases": []string{"three", "four"}})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestPlayerView(t *testing.T) {
	server := newTestServer(t)
	gameID := createGame(t, server, 1, "Red", "Blue")
	aliceID := joinGame(t, server, gameID, "alice", "Red")

	url := fmt.Sprintf("%s/api/v1/games/%s/players/%s", server.URL, gameID, aliceID)
	resp, body := doJSON(t, http.MethodGet, url, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	player := body["player"].(map[string]any)
	assert.Equal(t, "alice", player["name"])
	assert.Equal(t, aliceID, player["id"])
	assert.Equal(t, false, player["phrases_submitted"])

	// An id that resolves to nobody is a spectator view, not an error
	url = fmt.Sprintf("%s/api/v1/games/%s/players/%s", server.URL, gameID, "ghost")
	resp, body = doJSON(t, http.MethodGet, url, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, body["player"])
}
