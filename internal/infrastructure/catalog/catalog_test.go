package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/domain/shared"
)

func TestNewGameStateMatchesOpeningScoreboard(t *testing.T) {
	// Arrange
	rng := shared.NewSeededRandom(1)

	// Act
	state := NewGameState("game-1", rng, time.Now())

	// Assert
	require.Equal(t, game.InitialRound, state.Round)
	assert.Len(t, state.ArticleDynamics, game.ArticleCount)
	assert.Len(t, state.EmployeeStore, game.EmployeeStoreSize)

	// head counts per station match the scoreboard
	var counts [game.ProcessCount]int
	for _, d := range state.EmployeeDynamics {
		counts[d.Process.Index()]++
	}
	assert.Equal(t, [game.ProcessCount]int{2, 4, 3, 2, 1}, counts)

	var convCounts [game.ProcessCount]int
	for _, d := range state.ConveyorDynamics {
		convCounts[d.Process.Index()]++
	}
	assert.Equal(t, [game.ProcessCount]int{1, 0, 3, 0, 1}, convCounts)

	// pending orders add up to the ordered-pallet count
	ordered := 0
	for _, o := range state.Orders {
		ordered += o.Quantity
	}
	assert.Equal(t, 1490, ordered)
}

func TestStorageOpeningStockValue(t *testing.T) {
	// Arrange
	articles := Articles()

	// Act
	storage := Storage(articles)

	// Assert
	total := len(storage.FreeStocks) + len(storage.OccStocks)
	assert.Equal(t, StorageSlotCount, total)

	stockValue := 0.0
	for _, d := range articles {
		stockValue += float64(d.CurrentStock) * d.Article.PurchasePrice
		assert.Equal(t, d.CurrentStock, d.PalletCountProcesses[game.ProcessStorage.Index()])
	}
	assert.InDelta(t, 68120.0, stockValue, 0.0001)

	for _, g := range storage.OccStocks {
		require.NotNil(t, g.Pallet)
		assert.True(t, g.Pallet.Stored)
	}
}

func TestApplicantsAreValidHires(t *testing.T) {
	// Arrange
	rng := shared.NewSeededRandom(42)

	// Act
	store := Applicants(rng, game.EmployeeStoreSize)

	// Assert
	require.Len(t, store, game.EmployeeStoreSize)
	for _, d := range store {
		assert.NotEmpty(t, d.Employee.Name)
		assert.Equal(t, 100, d.Motivation)
		assert.Equal(t, game.SalaryByQualification[d.Qualification], d.Salary)
		assert.Equal(t, -1, d.Employee.EmploymentRound)
	}
}
