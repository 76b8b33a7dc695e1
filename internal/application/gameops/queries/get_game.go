package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/lbruckner/palletsim/internal/application/common"
	"github.com/lbruckner/palletsim/internal/domain/game"
)

// GetGameQuery represents a query for one game's summary
type GetGameQuery struct {
	GameID string
}

// GameInfoResponse represents the summary of one game
type GameInfoResponse struct {
	GameID       string
	Name         string
	PlayerID     string
	Round        int
	Balance      float64
	Satisfaction float64
	GameState    string
	CanRevert    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GetGameHandler handles the GetGame query
type GetGameHandler struct {
	games  game.GameRepository
	states game.StateRepository
}

// NewGetGameHandler creates a new GetGameHandler
func NewGetGameHandler(games game.GameRepository, states game.StateRepository) *GetGameHandler {
	return &GetGameHandler{games: games, states: states}
}

// Handle executes the GetGame query
func (h *GetGameHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetGameQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetGameQuery")
	}

	g, err := h.games.FindByID(ctx, query.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	state, err := h.states.FindByID(ctx, g.CurrentStateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load current state: %w", err)
	}

	return &GameInfoResponse{
		GameID:       g.ID,
		Name:         g.Name,
		PlayerID:     g.PlayerID,
		Round:        state.Round,
		Balance:      state.RoundValues.AccountBalance,
		Satisfaction: state.RoundValues.CustomerSatisfaction,
		GameState:    state.RoundValues.GameState,
		CanRevert:    g.CanRevert(state.Round),
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    state.UpdatedAt,
	}, nil
}

// ListGamesQuery represents a query for all games
type ListGamesQuery struct{}

// ListGamesResponse represents the list of all games
type ListGamesResponse struct {
	Games []*GameInfoResponse
}

// ListGamesHandler handles the ListGames query
type ListGamesHandler struct {
	games  game.GameRepository
	states game.StateRepository
}

// NewListGamesHandler creates a new ListGamesHandler
func NewListGamesHandler(games game.GameRepository, states game.StateRepository) *ListGamesHandler {
	return &ListGamesHandler{games: games, states: states}
}

// Handle executes the ListGames query
func (h *ListGamesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ListGamesQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListGamesQuery")
	}

	all, err := h.games.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	resp := &ListGamesResponse{Games: make([]*GameInfoResponse, 0, len(all))}
	for _, g := range all {
		state, err := h.states.FindByID(ctx, g.CurrentStateID)
		if err != nil {
			return nil, fmt.Errorf("failed to load current state of %s: %w", g.ID, err)
		}
		resp.Games = append(resp.Games, &GameInfoResponse{
			GameID:       g.ID,
			Name:         g.Name,
			PlayerID:     g.PlayerID,
			Round:        state.Round,
			Balance:      state.RoundValues.AccountBalance,
			Satisfaction: state.RoundValues.CustomerSatisfaction,
			GameState:    state.RoundValues.GameState,
			CanRevert:    g.CanRevert(state.Round),
			CreatedAt:    g.CreatedAt,
			UpdatedAt:    state.UpdatedAt,
		})
	}
	return resp, nil
}

// GetStateQuery represents a query for a full round snapshot. Round selects
// a historic snapshot; nil means the current one.
type GetStateQuery struct {
	GameID string
	Round  *int
}

// GetStateHandler handles the GetState query
type GetStateHandler struct {
	games  game.GameRepository
	states game.StateRepository
}

// NewGetStateHandler creates a new GetStateHandler
func NewGetStateHandler(games game.GameRepository, states game.StateRepository) *GetStateHandler {
	return &GetStateHandler{games: games, states: states}
}

// Handle executes the GetState query
func (h *GetStateHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetStateQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetStateQuery")
	}

	g, err := h.games.FindByID(ctx, query.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	if query.Round == nil {
		return h.states.FindByID(ctx, g.CurrentStateID)
	}
	return h.states.FindByGameAndRound(ctx, g.ID, *query.Round)
}
