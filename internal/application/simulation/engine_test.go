package simulation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/domain/shared"
	"github.com/lbruckner/palletsim/internal/infrastructure/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceRound_AdvancesACompleteCompany(t *testing.T) {
	// Arrange
	rng := shared.NewSeededRandom(42)
	clock := shared.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	opening := catalog.NewGameState(uuid.NewString(), rng, clock.Now())
	engine := NewEngine(rng, clock, catalog.NewApplicantPool(rng))

	// Act
	next, err := engine.AdvanceRound(opening)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, game.InitialRound+1, next.Round)
	assert.NotEqual(t, opening.ID, next.ID)
	assert.Len(t, next.EmployeeStore, game.EmployeeStoreSize)
	assert.NotEmpty(t, next.CustomerJobs)
	assert.NotZero(t, next.RoundValues.CostsRound)
	assert.NotZero(t, next.RoundValues.IncomeRound)
	assert.Equal(t, len(next.Storage.FreeStocks), next.RoundValues.FreeStorage)
	assert.Equal(t, len(next.Storage.OccStocks), next.RoundValues.OccStorage)
}

func TestAdvanceRound_LeavesThePreviousSnapshotUntouched(t *testing.T) {
	// Arrange
	rng := shared.NewSeededRandom(7)
	clock := shared.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	opening := catalog.NewGameState(uuid.NewString(), rng, clock.Now())
	balanceBefore := opening.RoundValues.AccountBalance
	jobsBefore := len(opening.CustomerJobs)
	engine := NewEngine(rng, clock, catalog.NewApplicantPool(rng))

	// Act
	_, err := engine.AdvanceRound(opening)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, game.InitialRound, opening.Round)
	assert.Equal(t, balanceBefore, opening.RoundValues.AccountBalance)
	assert.Len(t, opening.CustomerJobs, jobsBefore)
}

func TestAdvanceRound_RefusesAnEndedGame(t *testing.T) {
	// Arrange
	rng := shared.NewSeededRandom(7)
	clock := shared.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	opening := catalog.NewGameState(uuid.NewString(), rng, clock.Now())
	opening.RoundValues.GameState = game.GameStateEnd
	engine := NewEngine(rng, clock, catalog.NewApplicantPool(rng))

	// Act
	next, err := engine.AdvanceRound(opening)

	// Assert
	assert.Nil(t, next)
	var gameOver *game.ErrGameOver
	require.ErrorAs(t, err, &gameOver)
}

func TestAdvanceRound_SameSeedReplaysTheSameRound(t *testing.T) {
	// Arrange
	clock := shared.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	gameID := uuid.NewString()

	run := func(seed int64) *game.GameState {
		rng := shared.NewSeededRandom(seed)
		opening := catalog.NewGameState(gameID, rng, clock.Now())
		engine := NewEngine(rng, clock, catalog.NewApplicantPool(rng))
		next, err := engine.AdvanceRound(opening)
		require.NoError(t, err)
		return next
	}

	// Act
	first := run(99)
	second := run(99)

	// Assert
	assert.Equal(t, first.RoundValues, second.RoundValues)
	assert.Equal(t, len(first.CustomerJobs), len(second.CustomerJobs))
	assert.Equal(t, len(first.Messages), len(second.Messages))
}
