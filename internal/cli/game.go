package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameJoinCmd())
	cmd.AddCommand(newGameSubmitCmd())
	cmd.AddCommand(newGameCompleteCmd())
	cmd.AddCommand(newGameStartTurnCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	var (
		rounds      int
		timeLimit   int
		phraseLimit int
		charLimit   int
		passes      int
		teams       []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new game",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"settings": map[string]int{
					"number_of_rounds":        rounds,
					"time_limit_seconds":      timeLimit,
					"phrase_limit_per_player": phraseLimit,
					"phrase_character_limit":  charLimit,
					"passes_allowed":          passes,
				},
				"team_names": teams,
			}
			var result CreateGameResult

			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&rounds, "rounds", 3, "Number of rounds")
	cmd.Flags().IntVar(&timeLimit, "time-limit", 60, "Turn time limit in seconds")
	cmd.Flags().IntVar(&phraseLimit, "phrases", 3, "Phrases each player must submit")
	cmd.Flags().IntVar(&charLimit, "char-limit", 150, "Maximum phrase length")
	cmd.Flags().IntVar(&passes, "passes", 3, "Passes allowed per turn")
	cmd.Flags().StringSliceVar(&teams, "teams", []string{"Team_1", "Team_2"}, "Team names")

	return cmd
}

func newGameGetCmd() *cobra.Command {
	var playerID string

	cmd := &cobra.Command{
		Use:   "get <game-id>",
		Short: "Get current game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID := args[0]

			path := fmt.Sprintf("/api/v1/games/%s", gameID)
			if playerID != "" {
				path = fmt.Sprintf("/api/v1/games/%s/players/%s", gameID, playerID)
			}

			var result GameView
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "View the game as this player")

	return cmd
}

func newGameJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <game-id> <player-name> <team-name>",
		Short: "Join a game on the given team",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID := args[0]

			req := map[string]string{
				"player_name": args[1],
				"team_name":   args[2],
			}
			var result JoinGameResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/join", gameID), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <game-id> <player-id> <phrase>...",
		Short: "Submit your phrases for the game",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID := args[0]
			playerID := args[1]
			phrases := args[2:]

			req := map[string]any{"phrases": phrases}
			var result GameView

			path := fmt.Sprintf("/api/v1/games/%s/players/%s/phrases", gameID, playerID)
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete-registration <game-id> <player-id>",
		Short: "Close registration (leader only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/games/%s/players/%s/complete-registration", args[0], args[1])
			if err := client.Post(path, nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Registration closed")
			return nil
		},
	}
}

func newGameStartTurnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start-turn <game-id> <player-id>",
		Short: "Start your turn (next player only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/games/%s/players/%s/start-turn", args[0], args[1])
			if err := client.Post(path, nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Turn started")
			return nil
		},
	}
}
