package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewOrderCommand creates the order command with subcommands
func NewOrderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Replenishment order operations",
		Long: `Place and cancel replenishment orders with the wholesaler.

The order is priced on the client side: lead time, unit price, fixed and
delivery costs are part of the placement. The wholesaler may short-ship
up to four pallets.

Examples:
  palletsim order place --game <game-id> --number 7 --article 101 --quantity 12 \
    --price 8.40 --order-round 12 --delivery-round 14 --wish-round 14 \
    --fix-costs 150 --delivery-costs 75
  palletsim order cancel --game <game-id> --order <order-id>`,
	}

	cmd.AddCommand(newOrderPlaceCommand())
	cmd.AddCommand(newOrderCancelCommand())

	return cmd
}

func newOrderPlaceCommand() *cobra.Command {
	var (
		gameID        string
		orderNumber   int
		articleNumber int
		quantity      int
		price         float64
		orderRound    int
		deliveryRound int
		wishRound     int
		fixCosts      float64
		deliveryCosts float64
	)

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Place a replenishment order",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := NewDaemonClient(daemonAddress)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			result, err := client.Action(ctx, gameID, "place-order", map[string]any{
				"orderNumber":       orderNumber,
				"articleNumber":     articleNumber,
				"quantity":          quantity,
				"realPurchasePrice": price,
				"orderRound":        orderRound,
				"deliveryRound":     deliveryRound,
				"deliveryWishRound": wishRound,
				"fixCosts":          fixCosts,
				"deliveryCosts":     deliveryCosts,
			})
			if err != nil {
				return fmt.Errorf("failed to place order: %w", err)
			}

			fmt.Printf("✓ Order placed\n")
			fmt.Printf("  Order ID:  %s\n", result.OrderID)
			fmt.Printf("  Delivered: %d of %d\n", result.DeliveredQuantity, quantity)
			if result.DeliveredQuantity < quantity {
				fmt.Printf("  The wholesaler short-ships %d pallets\n", quantity-result.DeliveredQuantity)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.Flags().IntVar(&orderNumber, "number", 0, "Order number [required]")
	cmd.Flags().IntVar(&articleNumber, "article", 0, "Article number [required]")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "Ordered pallets [required]")
	cmd.Flags().Float64Var(&price, "price", 0, "Unit purchase price [required]")
	cmd.Flags().IntVar(&orderRound, "order-round", 0, "Round the order is placed in [required]")
	cmd.Flags().IntVar(&deliveryRound, "delivery-round", 0, "Round the delivery arrives in [required]")
	cmd.Flags().IntVar(&wishRound, "wish-round", 0, "Requested delivery round")
	cmd.Flags().Float64Var(&fixCosts, "fix-costs", 0, "Fixed order costs")
	cmd.Flags().Float64Var(&deliveryCosts, "delivery-costs", 0, "Delivery costs")
	cmd.MarkFlagRequired("game")
	cmd.MarkFlagRequired("number")
	cmd.MarkFlagRequired("article")
	cmd.MarkFlagRequired("quantity")
	cmd.MarkFlagRequired("price")
	cmd.MarkFlagRequired("order-round")
	cmd.MarkFlagRequired("delivery-round")

	return cmd
}

func newOrderCancelCommand() *cobra.Command {
	var (
		gameID  string
		orderID string
	)

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel an open order against the cancellation fee",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(gameID, "cancel-order", map[string]any{
				"orderId": orderID,
			})
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID [required]")
	cmd.Flags().StringVar(&orderID, "order", "", "Order ID [required]")
	cmd.MarkFlagRequired("game")
	cmd.MarkFlagRequired("order")

	return cmd
}
