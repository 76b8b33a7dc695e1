package commands

import (
	"context"
	"fmt"

	"github.com/lbruckner/palletsim/internal/application/common"
	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/domain/shared"
)

// PlaceOrderCommand registers a supply order at the wholesaler
type PlaceOrderCommand struct {
	GameID            string
	OrderNumber       int
	OrderRound        int
	DeliveryRound     int
	DeliveryWishRound int
	ArticleNumber     int
	RealPurchasePrice float64
	Quantity          int
	FixCosts          float64
	DeliveryCosts     float64
}

// PlaceOrderResponse represents the result of placing an order
type PlaceOrderResponse struct {
	OrderID           string
	DeliveredQuantity int
	Round             int
}

// PlaceOrderHandler handles the PlaceOrder command. The wholesaler
// short-ships up to four pallets; the draw happens here, not in the domain,
// so the mutator stays deterministic.
type PlaceOrderHandler struct {
	games  game.GameRepository
	states game.StateRepository
	rng    shared.Random
	clock  shared.Clock
}

// NewPlaceOrderHandler creates a new PlaceOrderHandler
func NewPlaceOrderHandler(
	games game.GameRepository,
	states game.StateRepository,
	rng shared.Random,
	clock shared.Clock,
) *PlaceOrderHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &PlaceOrderHandler{games: games, states: states, rng: rng, clock: clock}
}

// Handle executes the PlaceOrder command
func (h *PlaceOrderHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*PlaceOrderCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *PlaceOrderCommand")
	}

	g, err := h.games.FindByID(ctx, cmd.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	state, err := h.states.FindByID(ctx, g.CurrentStateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load current state: %w", err)
	}

	if state.RoundValues.GameState == game.GameStateEnd {
		return nil, &game.ErrGameOver{GameID: g.ID}
	}

	draft := game.OrderDraft{
		OrderNumber:       cmd.OrderNumber,
		OrderRound:        cmd.OrderRound,
		DeliveryRound:     cmd.DeliveryRound,
		DeliveryWishRound: cmd.DeliveryWishRound,
		ArticleNumber:     cmd.ArticleNumber,
		RealPurchasePrice: cmd.RealPurchasePrice,
		Quantity:          cmd.Quantity,
		FixCosts:          cmd.FixCosts,
		DeliveryCosts:     cmd.DeliveryCosts,
	}
	order, err := state.PlaceOrder(draft, h.rng.Intn(5))
	if err != nil {
		return nil, err
	}

	state.UpdatedAt = h.clock.Now()
	if err := h.states.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to persist state: %w", err)
	}

	return &PlaceOrderResponse{
		OrderID:           order.ID,
		DeliveredQuantity: order.DeliveredQuantity,
		Round:             state.Round,
	}, nil
}

// CancelOrderCommand withdraws a pending supply order against the
// lead-time-dependent cancellation fee
type CancelOrderCommand struct {
	GameID  string
	OrderID string
}

func (c *CancelOrderCommand) gameID() string { return c.GameID }

func (c *CancelOrderCommand) apply(s *game.GameState) error {
	return s.CancelOrder(c.OrderID)
}
