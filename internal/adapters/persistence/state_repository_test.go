package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbruckner/palletsim/internal/adapters/persistence"
	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/domain/shared"
	"github.com/lbruckner/palletsim/internal/infrastructure/catalog"
	"github.com/lbruckner/palletsim/test/helpers"
)

func newStoredState(round int) *game.GameState {
	state := catalog.NewGameState("game-1", shared.NewSeededRandom(1), time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	state.Round = round
	return state
}

func TestStateRepository_RoundTripsAFullSnapshot(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStateRepository(db)
	state := newStoredState(game.InitialRound)

	// Act
	err := repo.Save(context.Background(), state)
	require.NoError(t, err)
	found, err := repo.FindByID(context.Background(), state.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, state.ID, found.ID)
	assert.Equal(t, "game-1", found.GameID)
	assert.Equal(t, game.InitialRound, found.Round)
	assert.Equal(t, state.RoundValues.AccountBalance, found.RoundValues.AccountBalance)
	assert.Len(t, found.EmployeeDynamics, len(state.EmployeeDynamics))
	assert.Len(t, found.ArticleDynamics, len(state.ArticleDynamics))
	assert.Len(t, found.Storage.OccStocks, len(state.Storage.OccStocks))
	assert.Len(t, found.EmployeeStore, game.EmployeeStoreSize)
}

func TestStateRepository_FindByGameAndRound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStateRepository(db)
	require.NoError(t, repo.Save(context.Background(), newStoredState(game.InitialRound)))
	wanted := newStoredState(game.InitialRound + 1)
	require.NoError(t, repo.Save(context.Background(), wanted))

	// Act
	found, err := repo.FindByGameAndRound(context.Background(), "game-1", game.InitialRound+1)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, wanted.ID, found.ID)
}

func TestStateRepository_FindAllByGameOrdersByRound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStateRepository(db)
	require.NoError(t, repo.Save(context.Background(), newStoredState(game.InitialRound+2)))
	require.NoError(t, repo.Save(context.Background(), newStoredState(game.InitialRound)))
	require.NoError(t, repo.Save(context.Background(), newStoredState(game.InitialRound+1)))

	// Act
	all, err := repo.FindAllByGame(context.Background(), "game-1")

	// Assert
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, game.InitialRound, all[0].Round)
	assert.Equal(t, game.InitialRound+1, all[1].Round)
	assert.Equal(t, game.InitialRound+2, all[2].Round)
}

func TestStateRepository_FindByGameAndRound_NotFound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStateRepository(db)

	// Act
	_, err := repo.FindByGameAndRound(context.Background(), "game-1", 99)

	// Assert
	var notFound *game.ErrStateNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 99, notFound.Round)
}

func TestStateRepository_DeleteByGameRemovesTheHistory(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStateRepository(db)
	require.NoError(t, repo.Save(context.Background(), newStoredState(game.InitialRound)))
	require.NoError(t, repo.Save(context.Background(), newStoredState(game.InitialRound+1)))

	// Act
	err := repo.DeleteByGame(context.Background(), "game-1")

	// Assert
	require.NoError(t, err)
	all, err := repo.FindAllByGame(context.Background(), "game-1")
	require.NoError(t, err)
	assert.Empty(t, all)
}
