package commands

import (
	"context"
	"fmt"

	"github.com/lbruckner/palletsim/internal/application/common"
	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/domain/shared"
)

// stateMutation is a player action applied to the current snapshot between
// rounds. Each action command carries its own parameters and knows how to
// apply itself; the shared handler does the load-mutate-save cycle.
type stateMutation interface {
	gameID() string
	apply(s *game.GameState) error
}

// ActionResponse represents the result of any player action
type ActionResponse struct {
	GameID  string
	StateID string
	Round   int
}

// ActionHandler applies player-action commands to the current snapshot. One
// instance serves every action command type; the mediator routes each type
// here separately.
type ActionHandler struct {
	games  game.GameRepository
	states game.StateRepository
	clock  shared.Clock
}

// NewActionHandler creates a new ActionHandler
func NewActionHandler(
	games game.GameRepository,
	states game.StateRepository,
	clock shared.Clock,
) *ActionHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &ActionHandler{games: games, states: states, clock: clock}
}

// Handle executes a player action against the game's current snapshot
func (h *ActionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	action, ok := request.(stateMutation)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected a player action command")
	}

	g, err := h.games.FindByID(ctx, action.gameID())
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

	if err := action.apply(state); err != nil {
		return nil, err
	}

	state.UpdatedAt = h.clock.Now()
	if err := h.states.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to persist state: %w", err)
	}

	return &ActionResponse{
		GameID:  g.ID,
		StateID: state.ID,
		Round:   state.Round,
	}, nil
}
