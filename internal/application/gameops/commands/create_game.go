package commands

import (
	"context"
	"fmt"

	"github.com/lbruckner/palletsim/internal/application/common"
	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/domain/shared"
	"github.com/lbruckner/palletsim/internal/infrastructure/catalog"
)

// CreateGameCommand represents a command to start a new game for a player
type CreateGameCommand struct {
	Name     string
	PlayerID string
}

// CreateGameResponse represents the result of creating a game
type CreateGameResponse struct {
	GameID  string
	StateID string
	Round   int
}

// CreateGameHandler handles the CreateGame command
type CreateGameHandler struct {
	games  game.GameRepository
	states game.StateRepository
	rng    shared.Random
	clock  shared.Clock
}

// NewCreateGameHandler creates a new CreateGameHandler
func NewCreateGameHandler(
	games game.GameRepository,
	states game.StateRepository,
	rng shared.Random,
	clock shared.Clock,
) *CreateGameHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &CreateGameHandler{
		games:  games,
		states: states,
		rng:    rng,
		clock:  clock,
	}
}

// Handle executes the CreateGame command
func (h *CreateGameHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*CreateGameCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CreateGameCommand")
	}

	now := h.clock.Now()
	g := game.NewGame(cmd.Name, cmd.PlayerID, now)
	state := catalog.NewGameState(g.ID, h.rng, now)

	if err := h.states.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to persist opening state: %w", err)
	}

	// The opening snapshot fills both reference slots, as there is no
	// earlier round to fall back to.
	g.CurrentStateID = state.ID
	g.PreviousStateID = state.ID
	if err := h.games.Save(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to persist game: %w", err)
	}

	return &CreateGameResponse{
		GameID:  g.ID,
		StateID: state.ID,
		Round:   state.Round,
	}, nil
}
