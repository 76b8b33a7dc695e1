package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lbruckner/palletsim/internal/domain/game"
)

// GormGameRepository implements game.GameRepository using GORM
type GormGameRepository struct {
	db *gorm.DB
}

// NewGormGameRepository creates a new GORM game repository
func NewGormGameRepository(db *gorm.DB) *GormGameRepository {
	return &GormGameRepository{db: db}
}

// Save persists a game record, creating or updating it
func (r *GormGameRepository) Save(ctx context.Context, g *game.Game) error {
	model := gameToModel(g)
	if result := r.db.WithContext(ctx).Save(model); result.Error != nil {
		return fmt.Errorf("failed to save game: %w", result.Error)
	}
	return nil
}

// FindByID retrieves a game by its ID
func (r *GormGameRepository) FindByID(ctx context.Context, gameID string) (*game.Game, error) {
	var model GameModel
	result := r.db.WithContext(ctx).Where("id = ?", gameID).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &game.ErrGameNotFound{GameID: gameID}
		}
		return nil, fmt.Errorf("failed to find game: %w", result.Error)
	}
	return modelToGame(&model), nil
}

// FindAll retrieves all games, most recently updated first
func (r *GormGameRepository) FindAll(ctx context.Context) ([]*game.Game, error) {
	var models []GameModel
	result := r.db.WithContext(ctx).Order("updated_at desc").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list games: %w", result.Error)
	}

	games := make([]*game.Game, 0, len(models))
	for i := range models {
		games = append(games, modelToGame(&models[i]))
	}
	return games, nil
}

// Delete removes a game record
func (r *GormGameRepository) Delete(ctx context.Context, gameID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", gameID).Delete(&GameModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete game: %w", result.Error)
	}
	return nil
}

func gameToModel(g *game.Game) *GameModel {
	return &GameModel{
		ID:              g.ID,
		Name:            g.Name,
		PlayerID:        g.PlayerID,
		CurrentStateID:  g.CurrentStateID,
		PreviousStateID: g.PreviousStateID,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
}

func modelToGame(model *GameModel) *game.Game {
	return &game.Game{
		ID:              model.ID,
		Name:            model.Name,
		PlayerID:        model.PlayerID,
		CurrentStateID:  model.CurrentStateID,
		PreviousStateID: model.PreviousStateID,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}
