package commands

import (
	"context"
	"fmt"

	"github.com/lbruckner/palletsim/internal/application/common"
	"github.com/lbruckner/palletsim/internal/domain/game"
)

// DeleteGameCommand represents a command to remove a game and its history
type DeleteGameCommand struct {
	GameID string
}

// DeleteGameResponse represents the result of deleting a game
type DeleteGameResponse struct {
	GameID string
}

// DeleteGameHandler handles the DeleteGame command
type DeleteGameHandler struct {
	games  game.GameRepository
	states game.StateRepository
}

// NewDeleteGameHandler creates a new DeleteGameHandler
func NewDeleteGameHandler(games game.GameRepository, states game.StateRepository) *DeleteGameHandler {
	return &DeleteGameHandler{games: games, states: states}
}

// Handle executes the DeleteGame command
func (h *DeleteGameHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*DeleteGameCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *DeleteGameCommand")
	}

	if _, err := h.games.FindByID(ctx, cmd.GameID); err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	if err := h.states.DeleteByGame(ctx, cmd.GameID); err != nil {
		return nil, fmt.Errorf("failed to delete states: %w", err)
	}

	if err := h.games.Delete(ctx, cmd.GameID); err != nil {
		return nil, fmt.Errorf("failed to delete game: %w", err)
	}

	return &DeleteGameResponse{GameID: cmd.GameID}, nil
}
