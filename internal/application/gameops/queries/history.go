package queries

import (
	"context"
	"fmt"

	"github.com/lbruckner/palletsim/internal/application/common"
	"github.com/lbruckner/palletsim/internal/domain/game"
)

// Statistic projections over the stored round history. All of them read
// every snapshot of a game in round order; the round numbers come back as
// chart labels, exactly one value per stored round.

// GetBalanceHistoryQuery represents a query for the account balance curve
type GetBalanceHistoryQuery struct {
	GameID string
}

// BalanceHistoryResponse represents the balance per stored round
type BalanceHistoryResponse struct {
	Rounds   []int
	Balances []float64
}

// GetSatisfactionHistoryQuery represents a query for the satisfaction curve
type GetSatisfactionHistoryQuery struct {
	GameID string
}

// SatisfactionHistoryResponse represents the satisfaction per stored round
type SatisfactionHistoryResponse struct {
	Rounds       []int
	Satisfaction []float64
}

// GetStockHistoryQuery represents a query for one article's stock curve
type GetStockHistoryQuery struct {
	GameID        string
	ArticleNumber int
}

// StockHistoryResponse represents the stored stock per round of one article
type StockHistoryResponse struct {
	Rounds []int
	Stocks []int
}

// HistoryHandler handles the statistic projection queries
type HistoryHandler struct {
	states game.StateRepository
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(states game.StateRepository) *HistoryHandler {
	return &HistoryHandler{states: states}
}

// Handle executes a history query
func (h *HistoryHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	switch query := request.(type) {
	case *GetBalanceHistoryQuery:
		states, err := h.states.FindAllByGame(ctx, query.GameID)
		if err != nil {
			return nil, fmt.Errorf("failed to load history: %w", err)
		}
		resp := &BalanceHistoryResponse{}
		for _, s := range states {
			resp.Rounds = append(resp.Rounds, s.Round)
			resp.Balances = append(resp.Balances, s.RoundValues.AccountBalance)
		}
		return resp, nil

	case *GetSatisfactionHistoryQuery:
		states, err := h.states.FindAllByGame(ctx, query.GameID)
		if err != nil {
			return nil, fmt.Errorf("failed to load history: %w", err)
		}
		resp := &SatisfactionHistoryResponse{}
		for _, s := range states {
			resp.Rounds = append(resp.Rounds, s.Round)
			resp.Satisfaction = append(resp.Satisfaction, s.RoundValues.CustomerSatisfaction)
		}
		return resp, nil

	case *GetStockHistoryQuery:
		states, err := h.states.FindAllByGame(ctx, query.GameID)
		if err != nil {
			return nil, fmt.Errorf("failed to load history: %w", err)
		}
		resp := &StockHistoryResponse{}
		for _, s := range states {
			d, err := s.ArticleByNumber(query.ArticleNumber)
			if err != nil {
				return nil, err
			}
			resp.Rounds = append(resp.Rounds, s.Round)
			resp.Stocks = append(resp.Stocks, d.CurrentStock)
		}
		return resp, nil
	}

	return nil, fmt.Errorf("invalid request type: expected a history query")
}
