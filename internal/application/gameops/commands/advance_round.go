package commands

import (
	"context"
	"fmt"

	"github.com/lbruckner/palletsim/internal/adapters/metrics"
	"github.com/lbruckner/palletsim/internal/application/common"
	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/domain/shared"
)

// RoundEngine computes the next round snapshot from the current one
type RoundEngine interface {
	AdvanceRound(prev *game.GameState) (*game.GameState, error)
}

// AdvanceRoundCommand represents a command to advance a game by one round
type AdvanceRoundCommand struct {
	GameID string
}

// AdvanceRoundResponse represents the result of a round advance
type AdvanceRoundResponse struct {
	StateID      string
	Round        int
	Balance      float64
	Satisfaction float64
	GameState    string
}

// AdvanceRoundHandler handles the AdvanceRound command
type AdvanceRoundHandler struct {
	games    game.GameRepository
	states   game.StateRepository
	engine   RoundEngine
	notifier game.RoundNotifier
	clock    shared.Clock
}

// NewAdvanceRoundHandler creates a new AdvanceRoundHandler
func NewAdvanceRoundHandler(
	games game.GameRepository,
	states game.StateRepository,
	engine RoundEngine,
	notifier game.RoundNotifier,
	clock shared.Clock,
) *AdvanceRoundHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &AdvanceRoundHandler{
		games:    games,
		states:   states,
		engine:   engine,
		notifier: notifier,
		clock:    clock,
	}
}

// Handle executes the AdvanceRound command. Every snapshot stays in the
// store so the statistic projections can read the full history; only the
// reference pair on the game record moves forward.
func (h *AdvanceRoundHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*AdvanceRoundCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *AdvanceRoundCommand")
	}

	g, err := h.games.FindByID(ctx, cmd.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	current, err := h.states.FindByID(ctx, g.CurrentStateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load current state: %w", err)
	}

	if h.notifier != nil {
		h.notifier.RoundStarted(g.ID, current.Round)
	}

	started := h.clock.Now()
	next, err := h.engine.AdvanceRound(current)
	if err != nil {
		return nil, fmt.Errorf("round calculation failed: %w", err)
	}

	if err := h.states.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to persist state: %w", err)
	}

	g.AdvanceTo(next.ID, h.clock.Now())
	if err := h.games.Save(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to persist game: %w", err)
	}

	if h.notifier != nil {
		h.notifier.RoundCompleted(g.ID, next.Round)
	}

	rv := next.RoundValues
	metrics.RecordRound(
		g.ID,
		next.Round,
		rv.AccountBalance,
		rv.CustomerSatisfaction,
		rv.CostsRound,
		rv.IncomeRound,
		h.clock.Now().Sub(started),
	)

	return &AdvanceRoundResponse{
		StateID:      next.ID,
		Round:        next.Round,
		Balance:      rv.AccountBalance,
		Satisfaction: rv.CustomerSatisfaction,
		GameState:    rv.GameState,
	}, nil
}
