package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/lbruckner/palletsim/internal/application/gameops/queries"
	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/infrastructure/database"
)

// NewGameCommand creates the game command with subcommands
func NewGameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game lifecycle operations",
		Long: `Create, inspect, export and delete simulation games.

Examples:
  palletsim game create --name "Lager Nord" --player lb
  palletsim game list
  palletsim game info --game <game-id>
  palletsim game state --game <game-id> --round 14
  palletsim game export --game <game-id> --out lager-nord.csv
  palletsim game delete --game <game-id>`,
	}

	cmd.AddCommand(newGameCreateCommand())
	cmd.AddCommand(newGameListCommand())
	cmd.AddCommand(newGameInfoCommand())
	cmd.AddCommand(newGameStateCommand())
	cmd.AddCommand(newGameExportCommand())
	cmd.AddCommand(newGameDeleteCommand())

	return cmd
}

func newGameCreateCommand() *cobra.Command {
	var (
		name     string
		playerID string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new game",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := NewDaemonClient(daemonAddress)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			result, err := client.CreateGame(ctx, name, playerID)
			if err != nil {
				return fmt.Errorf("failed to create game: %w", err)
			}

			fmt.Printf("✓ Game created\n")
			fmt.Printf("  Game ID: %s\n", result.GameID)
			fmt.Printf("  Round:   %d\n", result.Round)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Game name [required]")
	cmd.Flags().StringVar(&playerID, "player", "", "Player identifier")
	cmd.MarkFlagRequired("name")

	return cmd
}

func newGameListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all games",
		RunE: func(cmd *cobra.Command, args []string) error {
			mediator, db, err := openQueryMediator()
			if err != nil {
				return err
			}
			defer database.Close(db)

			result, err := mediator.Send(context.Background(), &queries.ListGamesQuery{})
			if err != nil {
				return fmt.Errorf("failed to list games: %w", err)
			}

			response := result.(*queries.ListGamesResponse)
			if len(response.Games) == 0 {
				fmt.Println("No games found")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "GAME ID\tNAME\tROUND\tBALANCE\tSATISFACTION\tSTATUS")
			for _, g := range response.Games {
				fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.1f%%\t%s\n",
					g.GameID, g.Name, g.Round, g.Balance, g.Satisfaction, g.GameState)
			}
			return w.Flush()
		},
	}
}

func newGameInfoCommand() *cobra.Command {
	var gameID string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show detailed game information",
		RunE: func(cmd *cobra.Command, args []string) error {
			mediator, db, err := openQueryMediator()
			if err != nil {
				return err
			}
			defer database.Close(db)

			result, err := mediator.Send(context.Background(), &queries.GetGameQuery{GameID: gameID})
			if err != nil {
				return fmt.Errorf("failed to load game: %w", err)
			}

			info := result.(*queries.GameInfoResponse)
			fmt.Printf("Game:          %s (%s)\n", info.Name, info.GameID)
			fmt.Printf("Player:        %s\n", info.PlayerID)
			fmt.Printf("Round:         %d\n", info.Round)
			fmt.Printf("Balance:       %.2f\n", info.Balance)
			fmt.Printf("Satisfaction:  %.1f%%\n", info.Satisfaction)
			fmt.Printf("Status:        %s\n", info.GameState)
			fmt.Printf("Can revert:    %t\n", info.CanRevert)
			fmt.Printf("Created:       %s\n", info.CreatedAt.Format(time.RFC3339))
			fmt.Printf("Updated:       %s\n", info.UpdatedAt.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.MarkFlagRequired("game")

	return cmd
}

func newGameStateCommand() *cobra.Command {
	var (
		gameID string
		round  int
	)

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Dump a round snapshot as JSON",
		Long: `Print the full snapshot of a round as JSON.

Without --round the current round is printed. Stored history rounds can be
inspected by number.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mediator, db, err := openQueryMediator()
			if err != nil {
				return err
			}
			defer database.Close(db)

			query := &queries.GetStateQuery{GameID: gameID}
			if cmd.Flags().Changed("round") {
				query.Round = &round
			}

			result, err := mediator.Send(context.Background(), query)
			if err != nil {
				return fmt.Errorf("failed to load snapshot: %w", err)
			}

			state := result.(*game.GameState)
			data, err := json.MarshalIndent(state, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode snapshot: %w", err)
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.Flags().IntVar(&round, "round", 0, "Round number (default: current round)")
	cmd.MarkFlagRequired("game")

	return cmd
}

func newGameExportCommand() *cobra.Command {
	var (
		gameID  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full round history as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			mediator, db, err := openQueryMediator()
			if err != nil {
				return err
			}
			defer database.Close(db)

			result, err := mediator.Send(context.Background(), &queries.ExportGameQuery{GameID: gameID})
			if err != nil {
				return fmt.Errorf("failed to export game: %w", err)
			}

			export := result.(*queries.ExportGameResponse)
			target := outPath
			if target == "" {
				target = export.Filename
			}

			if err := os.WriteFile(target, export.Content, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", target, err)
			}

			fmt.Printf("✓ Exported to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.Flags().StringVar(&outPath, "out", "", "Output file (default: <game name>.csv)")
	cmd.MarkFlagRequired("game")

	return cmd
}

func newGameDeleteCommand() *cobra.Command {
	var gameID string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a game and its history",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := NewDaemonClient(daemonAddress)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := client.DeleteGame(ctx, gameID); err != nil {
				return fmt.Errorf("failed to delete game: %w", err)
			}

			fmt.Printf("✓ Game %s deleted\n", gameID)
			return nil
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.MarkFlagRequired("game")

	return cmd
}
