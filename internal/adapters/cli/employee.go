package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewEmployeeCommand creates the employee command with subcommands
func NewEmployeeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Employee operations",
		Long: `Hire, terminate, train and reassign employees.

Processes are numbered 0 unloading, 1 inbound control, 2 storage,
3 outbound control, 4 loading. Contract types are 0 fixed, 1 temporary.

Examples:
  palletsim employee hire --game <game-id> --employee <applicant-id> --process 0 --contract 0
  palletsim employee terminate --game <game-id> --employee <employee-id>
  palletsim employee train --game <game-id> --employee <employee-id> --qualification 3
  palletsim employee assign --game <game-id> --employee <employee-id> --process 2`,
	}

	cmd.AddCommand(newEmployeeHireCommand())
	cmd.AddCommand(newEmployeeTerminateCommand())
	cmd.AddCommand(newEmployeeTrainCommand())
	cmd.AddCommand(newEmployeeAssignCommand())

	return cmd
}

// runAction sends a player action and prints the round confirmation.
func runAction(gameID, action string, payload any) error {
	client := NewDaemonClient(daemonAddress)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := client.Action(ctx, gameID, action, payload)
	if err != nil {
		return fmt.Errorf("action failed: %w", err)
	}

	fmt.Printf("✓ Applied to round %d\n", result.Round)
	return nil
}

func newEmployeeHireCommand() *cobra.Command {
	var (
		gameID       string
		employeeID   string
		process      int
		contractType int
	)

	cmd := &cobra.Command{
		Use:   "hire",
		Short: "Hire an applicant",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(gameID, "hire-employee", map[string]any{
				"employeeId":   employeeID,
				"process":      process,
				"contractType": contractType,
			})
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.Flags().StringVar(&employeeID, "employee", "", "Applicant ID [required]")
	cmd.Flags().IntVar(&process, "process", 0, "Process to assign (0-4)")
	cmd.Flags().IntVar(&contractType, "contract", 0, "Contract type (0 fixed, 1 temporary)")
	cmd.MarkFlagRequired("game")
	cmd.MarkFlagRequired("employee")

	return cmd
}

func newEmployeeTerminateCommand() *cobra.Command {
	var (
		gameID     string
		employeeID string
	)

	cmd := &cobra.Command{
		Use:   "terminate",
		Short: "Terminate an employee's contract",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(gameID, "terminate-employee", map[string]any{
				"employeeId": employeeID,
			})
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.Flags().StringVar(&employeeID, "employee", "", "Employee ID [required]")
	cmd.MarkFlagRequired("game")
	cmd.MarkFlagRequired("employee")

	return cmd
}

func newEmployeeTrainCommand() *cobra.Command {
	var (
		gameID        string
		employeeID    string
		qualification int
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Book a training for an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(gameID, "train-employee", map[string]any{
				"employeeId":    employeeID,
				"qualification": qualification,
			})
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.Flags().StringVar(&employeeID, "employee", "", "Employee ID [required]")
	cmd.Flags().IntVar(&qualification, "qualification", 0, "Target qualification level")
	cmd.MarkFlagRequired("game")
	cmd.MarkFlagRequired("employee")

	return cmd
}

func newEmployeeAssignCommand() *cobra.Command {
	var (
		gameID     string
		employeeID string
		process    int
	)

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Move an employee to another process",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(gameID, "assign-employee", map[string]any{
				"employeeId": employeeID,
				"process":    process,
			})
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.Flags().StringVar(&employeeID, "employee", "", "Employee ID [required]")
	cmd.Flags().IntVar(&process, "process", 0, "Target process (0-4)")
	cmd.MarkFlagRequired("game")
	cmd.MarkFlagRequired("employee")

	return cmd
}
