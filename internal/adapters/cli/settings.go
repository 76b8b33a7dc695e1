package cli

import (
	"github.com/spf13/cobra"
)

// NewSettingsCommand creates the settings command with subcommands
func NewSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Warehouse configuration for the next round",
		Long: `Configure overtime, investments, strategies and service modules.

All settings apply to the current snapshot and take effect when the next
round is simulated.

Examples:
  palletsim settings overtime --game <game-id> --process 0 --hours 2
  palletsim settings climate --game <game-id> --amount 500
  palletsim settings technology --game <game-id> --level 2
  palletsim settings services --game <game-id> --service 0 --service 3
  palletsim settings storage-distribution --game <game-id> --factor 0.6
  palletsim settings strategy --game <game-id> --stage in --strategy 1
  palletsim settings abc-analysis --game <game-id>`,
	}

	cmd.AddCommand(newSettingsOvertimeCommand())
	cmd.AddCommand(newSettingsClimateCommand())
	cmd.AddCommand(newSettingsServicesCommand())
	cmd.AddCommand(newSettingsTechnologyCommand())
	cmd.AddCommand(newSettingsLoadingEquipmentCommand())
	cmd.AddCommand(newSettingsFactorCommand("storage-distribution",
		"Set the share of storage workers on the inbound side", "update-storage-distribution"))
	cmd.AddCommand(newSettingsFactorCommand("inbound-control",
		"Set the inbound control intensity", "update-inbound-control"))
	cmd.AddCommand(newSettingsFactorCommand("outbound-control",
		"Set the outbound control intensity", "update-outbound-control"))
	cmd.AddCommand(newSettingsSecurityCommand())
	cmd.AddCommand(newSettingsStrategyCommand())
	cmd.AddCommand(newSettingsOneShotCommand("abc-analysis",
		"Request an ABC analysis for the next round", "abc-analysis"))
	cmd.AddCommand(newSettingsOneShotCommand("abc-zoning",
		"Request ABC zoning for the next round", "abc-zoning"))

	return cmd
}

func newSettingsOvertimeCommand() *cobra.Command {
	var (
		gameID  string
		process int
		hours   int
	)

	cmd := &cobra.Command{
		Use:   "overtime",
		Short: "Set overtime hours for one process",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(gameID, "set-overtime", map[string]any{
				"process": process,
				"hours":   hours,
			})
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.Flags().IntVar(&process, "process", 0, "Process (0-4)")
	cmd.Flags().IntVar(&hours, "hours", 0, "Overtime hours")
	cmd.MarkFlagRequired("game")

	return cmd
}

func newSettingsClimateCommand() *cobra.Command {
	var (
		gameID string
		amount int
	)

	cmd := &cobra.Command{
		Use:   "climate",
		Short: "Set the work climate investment per round",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(gameID, "set-climate-investment", map[string]any{
				"amount": amount,
			})
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.Flags().IntVar(&amount, "amount", 0, "Investment amount")
	cmd.MarkFlagRequired("game")

	return cmd
}

func newSettingsServicesCommand() *cobra.Command {
	var (
		gameID   string
		services []int
	)

	cmd := &cobra.Command{
		Use:   "services",
		Short: "Replace the booked information modules",
		Long: `Replace the set of booked information modules.

Codes: 0 order quantity, 1 reorder level, 2 safety stock,
3 status report, 4 look into storage. Omitting --service books none.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(gameID, "update-services", map[string]any{
				"services": services,
			})
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.Flags().IntSliceVar(&services, "service", nil, "Service code (repeatable)")
	cmd.MarkFlagRequired("game")

	return cmd
}

func newSettingsTechnologyCommand() *cobra.Command {
	var (
		gameID string
		level  int
	)

	cmd := &cobra.Command{
		Use:   "technology",
		Short: "Set the IT level",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(gameID, "update-technology", map[string]any{
				"level": level,
			})
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.Flags().IntVar(&level, "level", 0, "IT level")
	cmd.MarkFlagRequired("game")

	return cmd
}

func newSettingsLoadingEquipmentCommand() *cobra.Command {
	var (
		gameID    string
		costLevel int
	)

	cmd := &cobra.Command{
		Use:   "loading-equipment",
		Short: "Set the loading equipment budget level",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(gameID, "update-loading-equipment", map[string]any{
				"costLevel": costLevel,
			})
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.Flags().IntVar(&costLevel, "cost-level", 0, "Equipment cost level")
	cmd.MarkFlagRequired("game")

	return cmd
}

// newSettingsFactorCommand builds the subcommands that set one float factor.
func newSettingsFactorCommand(use, short, action string) *cobra.Command {
	var (
		gameID string
		factor float64
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(gameID, action, map[string]any{
				"factor": factor,
			})
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.Flags().Float64Var(&factor, "factor", 0, "Factor value")
	cmd.MarkFlagRequired("game")
	cmd.MarkFlagRequired("factor")

	return cmd
}

func newSettingsSecurityCommand() *cobra.Command {
	var (
		gameID  string
		enabled bool
	)

	cmd := &cobra.Command{
		Use:   "security",
		Short: "Enable or disable unit security devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(gameID, "update-security-devices", map[string]any{
				"enabled": enabled,
			})
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.Flags().BoolVar(&enabled, "enabled", false, "Install security devices")
	cmd.MarkFlagRequired("game")

	return cmd
}

func newSettingsStrategyCommand() *cobra.Command {
	var (
		gameID   string
		stage    string
		strategy int
	)

	cmd := &cobra.Command{
		Use:   "strategy",
		Short: "Set a stage strategy",
		Long: `Set the pallet handling strategy of one stage.

Stages: in (incoming), storage, out (outgoing).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			actions := map[string]string{
				"in":      "update-incoming-strategy",
				"storage": "update-storage-strategy",
				"out":     "update-outgoing-strategy",
			}
			action, ok := actions[stage]
			if !ok {
				return cmd.Help()
			}
			return runAction(gameID, action, map[string]any{
				"strategy": strategy,
			})
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.Flags().StringVar(&stage, "stage", "", "Stage: in, storage or out [required]")
	cmd.Flags().IntVar(&strategy, "strategy", 0, "Strategy code")
	cmd.MarkFlagRequired("game")
	cmd.MarkFlagRequired("stage")

	return cmd
}

// newSettingsOneShotCommand builds the subcommands without a payload.
func newSettingsOneShotCommand(use, short, action string) *cobra.Command {
	var gameID string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(gameID, action, nil)
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.MarkFlagRequired("game")

	return cmd
}
