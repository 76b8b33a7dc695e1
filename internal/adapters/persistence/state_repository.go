package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lbruckner/palletsim/internal/domain/game"
)

// GormStateRepository implements game.StateRepository using GORM. Snapshots
// travel as JSON documents; the round and game columns carry the queries.
type GormStateRepository struct {
	db *gorm.DB
}

// NewGormStateRepository creates a new GORM state repository
func NewGormStateRepository(db *gorm.DB) *GormStateRepository {
	return &GormStateRepository{db: db}
}

// Save persists a snapshot, creating or updating it
func (r *GormStateRepository) Save(ctx context.Context, state *game.GameState) error {
	model, err := stateToModel(state)
	if err != nil {
		return err
	}
	if result := r.db.WithContext(ctx).Save(model); result.Error != nil {
		return fmt.Errorf("failed to save state: %w", result.Error)
	}
	return nil
}

// FindByID retrieves a snapshot by its ID
func (r *GormStateRepository) FindByID(ctx context.Context, stateID string) (*game.GameState, error) {
	var model GameStateModel
	result := r.db.WithContext(ctx).Where("id = ?", stateID).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &game.ErrStateNotFound{GameID: stateID}
		}
		return nil, fmt.Errorf("failed to find state: %w", result.Error)
	}
	return modelToState(&model)
}

// FindByGameAndRound retrieves the snapshot of a specific round
func (r *GormStateRepository) FindByGameAndRound(ctx context.Context, gameID string, round int) (*game.GameState, error) {
	var model GameStateModel
	result := r.db.WithContext(ctx).
		Where("game_id = ? AND round = ?", gameID, round).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &game.ErrStateNotFound{GameID: gameID, Round: round}
		}
		return nil, fmt.Errorf("failed to find state: %w", result.Error)
	}
	return modelToState(&model)
}

// FindAllByGame retrieves every stored snapshot of a game in round order
func (r *GormStateRepository) FindAllByGame(ctx context.Context, gameID string) ([]*game.GameState, error) {
	var models []GameStateModel
	result := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("round asc").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list states: %w", result.Error)
	}

	states := make([]*game.GameState, 0, len(models))
	for i := range models {
		state, err := modelToState(&models[i])
		if err != nil {
			return nil, err
		}
		states = append(states, state)
	}
	return states, nil
}

// Delete removes a snapshot
func (r *GormStateRepository) Delete(ctx context.Context, stateID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", stateID).Delete(&GameStateModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete state: %w", result.Error)
	}
	return nil
}

// DeleteByGame removes every snapshot of a game
func (r *GormStateRepository) DeleteByGame(ctx context.Context, gameID string) error {
	result := r.db.WithContext(ctx).Where("game_id = ?", gameID).Delete(&GameStateModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete states: %w", result.Error)
	}
	return nil
}

func stateToModel(state *game.GameState) (*GameStateModel, error) {
	doc, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}
	return &GameStateModel{
		ID:        state.ID,
		GameID:    state.GameID,
		Round:     state.Round,
		State:     string(doc),
		UpdatedAt: state.UpdatedAt,
	}, nil
}

func modelToState(model *GameStateModel) (*game.GameState, error) {
	var state game.GameState
	if err := json.Unmarshal([]byte(model.State), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state %s: %w", model.ID, err)
	}
	return &state, nil
}
