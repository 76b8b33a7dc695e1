package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewRoundCommand creates the round command with subcommands
func NewRoundCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Round lifecycle operations",
		Long: `Advance the simulation by one round or roll it back.

Advancing runs the full round pipeline on the daemon and stores a new
snapshot; reverting deletes the current snapshot and restores the
previous one, all the way back to the opening round.

Examples:
  palletsim round advance --game <game-id>
  palletsim round revert --game <game-id>`,
	}

	cmd.AddCommand(newRoundAdvanceCommand())
	cmd.AddCommand(newRoundRevertCommand())

	return cmd
}

func newRoundAdvanceCommand() *cobra.Command {
	var gameID string

	cmd := &cobra.Command{
		Use:   "advance",
		Short: "Simulate the next round",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := NewDaemonClient(daemonAddress)
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			result, err := client.AdvanceRound(ctx, gameID)
			if err != nil {
				return fmt.Errorf("failed to advance round: %w", err)
			}

			fmt.Printf("✓ Round %d simulated\n", result.Round)
			fmt.Printf("  Balance:       %.2f\n", result.Balance)
			fmt.Printf("  Satisfaction:  %.1f%%\n", result.Satisfaction)
			if result.GameState != "" {
				fmt.Printf("  Status:        %s\n", result.GameState)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.MarkFlagRequired("game")

	return cmd
}

func newRoundRevertCommand() *cobra.Command {
	var gameID string

	cmd := &cobra.Command{
		Use:   "revert",
		Short: "Roll the game back one round",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := NewDaemonClient(daemonAddress)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			result, err := client.RevertRound(ctx, gameID)
			if err != nil {
				return fmt.Errorf("failed to revert round: %w", err)
			}

			fmt.Printf("✓ Reverted to round %d\n", result.Round)
			return nil
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.MarkFlagRequired("game")

	return cmd
}
