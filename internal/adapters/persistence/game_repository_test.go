package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbruckner/palletsim/internal/adapters/persistence"
	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/test/helpers"
)

func TestGameRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormGameRepository(db)

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	g := game.NewGame("Test Warehouse", "player-1", created)
	g.CurrentStateID = "state-1"
	g.PreviousStateID = "state-0"

	// Act
	err := repo.Save(context.Background(), g)
	require.NoError(t, err)
	found, err := repo.FindByID(context.Background(), g.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, g.ID, found.ID)
	assert.Equal(t, "Test Warehouse", found.Name)
	assert.Equal(t, "player-1", found.PlayerID)
	assert.Equal(t, "state-1", found.CurrentStateID)
	assert.Equal(t, "state-0", found.PreviousStateID)
	assert.WithinDuration(t, created, found.CreatedAt, time.Second)
}

func TestGameRepository_FindAllOrdersByRecency(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormGameRepository(db)

	older := game.NewGame("Older", "player-1", time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))
	newer := game.NewGame("Newer", "player-1", time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Save(context.Background(), older))
	require.NoError(t, repo.Save(context.Background(), newer))

	// Act
	all, err := repo.FindAll(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Newer", all[0].Name)
	assert.Equal(t, "Older", all[1].Name)
}

func TestGameRepository_FindByID_NotFound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormGameRepository(db)

	// Act
	_, err := repo.FindByID(context.Background(), "missing")

	// Assert
	var notFound *game.ErrGameNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.GameID)
}

func TestGameRepository_Delete(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormGameRepository(db)

	g := game.NewGame("Doomed", "player-1", time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Save(context.Background(), g))

	// Act
	err := repo.Delete(context.Background(), g.ID)

	// Assert
	require.NoError(t, err)
	_, err = repo.FindByID(context.Background(), g.ID)
	assert.Error(t, err)
}
