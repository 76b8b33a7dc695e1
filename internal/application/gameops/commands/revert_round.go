package commands

import (
	"context"
	"fmt"

	"github.com/lbruckner/palletsim/internal/application/common"
	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/domain/shared"
)

// RevertRoundCommand represents a command to roll a game back by one round
type RevertRoundCommand struct {
	GameID string
}

// RevertRoundResponse represents the result of a rollback
type RevertRoundResponse struct {
	StateID string
	Round   int
}

// RevertRoundHandler handles the RevertRound command
type RevertRoundHandler struct {
	games  game.GameRepository
	states game.StateRepository
	clock  shared.Clock
}

// NewRevertRoundHandler creates a new RevertRoundHandler
func NewRevertRoundHandler(
	games game.GameRepository,
	states game.StateRepository,
	clock shared.Clock,
) *RevertRoundHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &RevertRoundHandler{games: games, states: states, clock: clock}
}

// Handle executes the RevertRound command. The current snapshot is dropped,
// the previous one becomes current, and the next-older snapshot is resolved
// from the store so the game can be reverted again.
func (h *RevertRoundHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RevertRoundCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RevertRoundCommand")
	}

	g, err := h.games.FindByID(ctx, cmd.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	current, err := h.states.FindByID(ctx, g.CurrentStateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load current state: %w", err)
	}

	if !g.CanRevert(current.Round) {
		return nil, &game.ErrRevertNotPossible{Round: current.Round}
	}

	if err := h.states.Delete(ctx, current.ID); err != nil {
		return nil, fmt.Errorf("failed to drop current state: %w", err)
	}

	restored, err := h.states.FindByID(ctx, g.PreviousStateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load previous state: %w", err)
	}

	// The restored round's predecessor becomes the new revert target. The
	// opening round has none and keeps pointing at itself.
	previousID := restored.ID
	if restored.Round > game.InitialRound {
		older, err := h.states.FindByGameAndRound(ctx, g.ID, restored.Round-1)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve revert target: %w", err)
		}
		previousID = older.ID
	}

	g.RevertTo(previousID, h.clock.Now())
	if err := h.games.Save(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to persist game: %w", err)
	}

	return &RevertRoundResponse{
		StateID: restored.ID,
		Round:   restored.Round,
	}, nil
}
