package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lbruckner/palletsim/internal/application/gameops/queries"
	"github.com/lbruckner/palletsim/internal/infrastructure/database"
)

// NewHistoryCommand creates the history command with subcommands
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Statistic projections over stored rounds",
		Long: `Print per-round curves from the stored snapshot history.

Examples:
  palletsim history balance --game <game-id>
  palletsim history satisfaction --game <game-id>
  palletsim history stock --game <game-id> --article 101`,
	}

	cmd.AddCommand(newHistoryBalanceCommand())
	cmd.AddCommand(newHistorySatisfactionCommand())
	cmd.AddCommand(newHistoryStockCommand())

	return cmd
}

func newHistoryBalanceCommand() *cobra.Command {
	var gameID string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Account balance per round",
		RunE: func(cmd *cobra.Command, args []string) error {
			mediator, db, err := openQueryMediator()
			if err != nil {
				return err
			}
			defer database.Close(db)

			result, err := mediator.Send(context.Background(), &queries.GetBalanceHistoryQuery{GameID: gameID})
			if err != nil {
				return fmt.Errorf("failed to load balance history: %w", err)
			}

			response := result.(*queries.BalanceHistoryResponse)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ROUND\tBALANCE")
			for i, round := range response.Rounds {
				fmt.Fprintf(w, "%d\t%.2f\n", round, response.Balances[i])
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.MarkFlagRequired("game")

	return cmd
}

func newHistorySatisfactionCommand() *cobra.Command {
	var gameID string

	cmd := &cobra.Command{
		Use:   "satisfaction",
		Short: "Customer satisfaction per round",
		RunE: func(cmd *cobra.Command, args []string) error {
			mediator, db, err := openQueryMediator()
			if err != nil {
				return err
			}
			defer database.Close(db)

			result, err := mediator.Send(context.Background(), &queries.GetSatisfactionHistoryQuery{GameID: gameID})
			if err != nil {
				return fmt.Errorf("failed to load satisfaction history: %w", err)
			}

			response := result.(*queries.SatisfactionHistoryResponse)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ROUND\tSATISFACTION")
			for i, round := range response.Rounds {
				fmt.Fprintf(w, "%d\t%.1f%%\n", round, response.Satisfaction[i])
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.MarkFlagRequired("game")

	return cmd
}

func newHistoryStockCommand() *cobra.Command {
	var (
		gameID        string
		articleNumber int
	)

	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Stock of one article per round",
		RunE: func(cmd *cobra.Command, args []string) error {
			mediator, db, err := openQueryMediator()
			if err != nil {
				return err
			}
			defer database.Close(db)

			result, err := mediator.Send(context.Background(), &queries.GetStockHistoryQuery{
				GameID:        gameID,
				ArticleNumber: articleNumber,
			})
			if err != nil {
				return fmt.Errorf("failed to load stock history: %w", err)
			}

			response := result.(*queries.StockHistoryResponse)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "ROUND\tSTOCK (article %d)\n", articleNumber)
			for i, round := range response.Rounds {
				fmt.Fprintf(w, "%d\t%d\n", round, response.Stocks[i])
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.Flags().IntVar(&articleNumber, "article", 0, "Article number [required]")
	cmd.MarkFlagRequired("game")
	cmd.MarkFlagRequired("article")

	return cmd
}
