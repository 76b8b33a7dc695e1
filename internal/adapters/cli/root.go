package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	daemonAddress string
	verbose       bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "palletsim",
		Short: "Palletsim CLI - Manage warehouse simulation games",
		Long: `Palletsim CLI manages turn-based warehouse simulation games.

Mutating commands are sent to the palletsim daemon over HTTP so that
connected clients receive round events; statistic queries read the game
database directly.

Examples:
  palletsim game create --name "Lager Nord"
  palletsim game list
  palletsim round advance --game <game-id>
  palletsim employee hire --game <game-id> --employee <applicant-id> --process 0
  palletsim order place --game <game-id> --article 101 --quantity 12 --price 8.40
  palletsim history balance --game <game-id>
  palletsim game export --game <game-id> --out lager-nord.csv`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&daemonAddress, "address", getDefaultAddress(),
		"Base URL of the palletsim daemon")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewGameCommand())
	rootCmd.AddCommand(NewRoundCommand())
	rootCmd.AddCommand(NewEmployeeCommand())
	rootCmd.AddCommand(NewConveyorCommand())
	rootCmd.AddCommand(NewOrderCommand())
	rootCmd.AddCommand(NewSettingsCommand())
	rootCmd.AddCommand(NewHistoryCommand())
	rootCmd.AddCommand(NewHealthCommand())

	return rootCmd
}

// getDefaultAddress returns the default daemon base URL
func getDefaultAddress() string {
	if addr := os.Getenv("PALLETSIM_ADDRESS"); addr != "" {
		return addr
	}
	return "http://localhost:8085"
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
