package cli

import (
	"github.com/spf13/cobra"
)

// NewConveyorCommand creates the conveyor command with subcommands
func NewConveyorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conveyor",
		Short: "Conveyor fleet operations",
		Long: `Buy, sell, overhaul and reassign conveyors.

Examples:
  palletsim conveyor buy --game <game-id> --conveyor <model-id>
  palletsim conveyor sell --game <game-id> --conveyor <conveyor-id>
  palletsim conveyor overhaul --game <game-id> --conveyor <conveyor-id>
  palletsim conveyor maintenance --game <game-id> --conveyor <conveyor-id>
  palletsim conveyor assign --game <game-id> --conveyor <conveyor-id> --process 4`,
	}

	cmd.AddCommand(newConveyorActionCommand("buy", "Buy a conveyor from the store", "buy-conveyor"))
	cmd.AddCommand(newConveyorActionCommand("sell", "Sell a conveyor at its resale value", "sell-conveyor"))
	cmd.AddCommand(newConveyorActionCommand("overhaul", "Order a general overhaul", "overhaul-conveyor"))
	cmd.AddCommand(newConveyorActionCommand("maintenance", "Toggle the maintenance contract", "toggle-maintenance"))
	cmd.AddCommand(newConveyorAssignCommand())

	return cmd
}

// newConveyorActionCommand builds the subcommands that only need a
// conveyor ID.
func newConveyorActionCommand(use, short, action string) *cobra.Command {
	var (
		gameID     string
		conveyorID string
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(gameID, action, map[string]any{
				"conveyorId": conveyorID,
			})
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.Flags().StringVar(&conveyorID, "conveyor", "", "Conveyor ID [required]")
	cmd.MarkFlagRequired("game")
	cmd.MarkFlagRequired("conveyor")

	return cmd
}

func newConveyorAssignCommand() *cobra.Command {
	var (
		gameID     string
		conveyorID string
		process    int
	)

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Move a conveyor to another process",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(gameID, "assign-conveyor", map[string]any{
				"conveyorId": conveyorID,
				"process":    process,
			})
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.Flags().StringVar(&conveyorID, "conveyor", "", "Conveyor ID [required]")
	cmd.Flags().IntVar(&process, "process", 0, "Target process (0 or 4)")
	cmd.MarkFlagRequired("game")
	cmd.MarkFlagRequired("conveyor")

	return cmd
}
