package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case CreateGameResult:
		o.printCreateGameResult(v)
	case JoinGameResult:
		o.printJoinGameResult(v)
	case GameView:
		o.printGameView(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// CreateGameResult response type
type CreateGameResult struct {
	GameID string `json:"game_id"`
}

// JoinGameResult response type
type JoinGameResult struct {
	PlayerID string `json:"player_id"`
}

// GameSettings response type
type GameSettings struct {
	NumberOfRounds       int `json:"number_of_rounds"`
	TimeLimitSeconds     int `json:"time_limit_seconds"`
	PhraseLimitPerPlayer int `json:"phrase_limit_per_player"`
	PhraseCharacterLimit int `json:"phrase_character_limit"`
	PassesAllowed        int `json:"passes_allowed"`
}

// PlayerView response type
type PlayerView struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	PhrasesSubmitted bool   `json:"phrases_submitted"`
}

// TeamView response type
type TeamView struct {
	Name    string       `json:"name"`
	Players []PlayerView `json:"players"`
}

// GameView response type
type GameView struct {
	GameID        string       `json:"game_id"`
	Settings      GameSettings `json:"settings"`
	State         string       `json:"state"`
	Teams         []TeamView   `json:"teams"`
	Leader        string       `json:"leader,omitempty"`
	Player        *PlayerView  `json:"player,omitempty"`
	CurrentPlayer string       `json:"current_player,omitempty"`
	NextPlayer    string       `json:"next_player,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printCreateGameResult(r CreateGameResult) {
	fmt.Printf("Game created: %s\n", r.GameID)
}

func (o *Output) printJoinGameResult(r JoinGameResult) {
	fmt.Printf("Joined. Player Id: %s\n", r.PlayerID)
}

func (o *Output) printGameView(g GameView) {
	fmt.Printf("Game: %s\n", g.GameID)
	fmt.Printf("State: %s\n", g.State)
	fmt.Printf("Rounds: %d, Time Limit: %ds, Phrases/Player: %d, Passes: %d\n",
		g.Settings.NumberOfRounds, g.Settings.TimeLimitSeconds,
		g.Settings.PhraseLimitPerPlayer, g.Settings.PassesAllowed)

	if g.Leader != "" {
		fmt.Printf("Leader: %s\n", g.Leader)
	}

	for _, team := range g.Teams {
		fmt.Printf("Team %s (%d):\n", team.Name, len(team.Players))
		for _, p := range team.Players {
			marks := []string{}
			if p.PhrasesSubmitted {
				marks = append(marks, "submitted")
			}
			if g.Leader == p.Name {
				marks = append(marks, "leader")
			}
			suffix := ""
			if len(marks) > 0 {
				suffix = " [" + strings.Join(marks, ", ") + "]"
			}
			fmt.Printf("  - %s (%s)%s\n", p.Name, p.ID, suffix)
		}
	}

	if g.CurrentPlayer != "" {
		fmt.Printf("Current Player: %s\n", g.CurrentPlayer)
	}
	if g.NextPlayer != "" {
		fmt.Printf("Next Player: %s\n", g.NextPlayer)
	}

	if g.Player != nil {
		fmt.Printf("\nYou are: %s (%s)\n", g.Player.Name, g.Player.ID)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
