package simulation

import (
	"testing"

	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestCalculateAnalytics_StockAndCompanyValue(t *testing.T) {
	// Arrange
	state := newFlowState()
	rv := state.RoundValues
	rv.CurrentConvValue = 500
	dynamic := state.ArticleDynamics[0]
	dynamic.PalletCountProcesses[game.ProcessStorage.Index()] = 10

	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateAnalytics(state)

	// Assert
	assert.Equal(t, 400.0, rv.StockValue)
	assert.Equal(t, 900.0, rv.CompanyValue)
	assert.Equal(t, 400.0, rv.StockValueProcesses[game.ProcessStorage.Index()])
}

func TestCalculateAnalytics_ConsumptionForecast(t *testing.T) {
	// Arrange: steady consumption of 30 pallets, 10 in stock
	state := newFlowState()
	dynamic := state.ArticleDynamics[0]
	dynamic.PalletCountProcesses[game.ProcessStorage.Index()] = 65
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateAnalytics(state)

	// Assert
	assert.Equal(t, 30.0, dynamic.AverageConsumption)
	assert.Equal(t, 2, dynamic.EstimatedRange)
}

func TestCalculateAnalytics_ZeroConsumptionYieldsZeroRange(t *testing.T) {
	// Arrange: an article nobody ordered for the whole history window
	state := newFlowState()
	dynamic := state.ArticleDynamics[0]
	dynamic.PastConsumption = []int{0, 0, 0, 0, 0}
	dynamic.PalletCountProcesses[game.ProcessStorage.Index()] = 12
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateAnalytics(state)

	// Assert: a dead article forecasts no range
	assert.Equal(t, 0.0, dynamic.AverageConsumption)
	assert.Equal(t, 0, dynamic.EstimatedRange)
}

func TestCalculateAnalytics_OptimalOrderQuantityPrefersListPriceHere(t *testing.T) {
	// Arrange: at 30 pallets per round the discount tiers force quantities
	// far past their break-even
	state := newFlowState()
	dynamic := state.ArticleDynamics[0]
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateAnalytics(state)

	// Assert: round(sqrt(2 * 30 * 90 / (40 * 0.15))) = 30
	assert.Equal(t, 30, dynamic.OptimalOrderQuantity)
}

func TestCalculateAnalytics_ComplaintsAndSatisfaction(t *testing.T) {
	// Arrange: ten shipped pallets, one of them faulty
	state := newFlowState()
	rv := state.RoundValues
	rv.PalletsTransportedProcess[game.ProcessLoading.Index()] = 10
	rv.PalletQuantityPerErrors[game.PalletErrorDamage] = 1
	rv.CurrentCustomerJobs = 4
	rv.AccurateFinishedJobs = 3
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateAnalytics(state)

	// Assert
	assert.Equal(t, 0.1, rv.ComplaintPercentage)
	assert.Equal(t, 0.1, rv.ComplaintErrorLoading)
	assert.Equal(t, 0.75, rv.ServiceLevel)
	assert.Equal(t, 68.0, rv.CustomerSatisfaction)
}

func TestCalculateAnalytics_NothingShippedKeepsPreviousComplaints(t *testing.T) {
	// Arrange
	state := newFlowState()
	rv := state.RoundValues
	rv.ComplaintPercentage = 0.25
	rv.PalletsTransportedProcess[game.ProcessLoading.Index()] = 0
	rv.CurrentCustomerJobs = 0
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateAnalytics(state)

	// Assert: satisfaction still reflects the standing complaint share
	assert.Equal(t, 0.25, rv.ComplaintPercentage)
	assert.Equal(t, 1.0, rv.ServiceLevel)
	assert.Equal(t, 75.0, rv.CustomerSatisfaction)
}

func TestCalculateAnalytics_CountsOpenOrderedPallets(t *testing.T) {
	// Arrange
	state := newFlowState()
	state.Orders = []*game.Order{
		game.NewOrder(game.OrderDraft{ArticleNumber: game.ArticleNumberBase, Quantity: 40, DeliveryRound: state.Round + 1}, 0),
		game.NewOrder(game.OrderDraft{ArticleNumber: game.ArticleNumberBase, Quantity: 25, DeliveryRound: state.Round + 2}, 1),
	}
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateAnalytics(state)

	// Assert: the tally counts ordered, not delivered quantities
	assert.Equal(t, 65, state.RoundValues.CurrentOrderedPallets)
}

func TestUpdateWorkloads_GuardsEmptyStations(t *testing.T) {
	// Arrange: a station with no staff and no conveyors
	rv := &game.RoundValues{}

	// Act
	updateWorkloads(rv)

	// Assert
	for i := 0; i < game.ProcessCount; i++ {
		assert.Equal(t, 0.0, rv.WorkloadEmployee[i])
		assert.Equal(t, 0.0, rv.WorkloadConveyor[i])
	}
	assert.Equal(t, 0.0, rv.WorkloadEmployeeStorageIn)
	assert.Equal(t, 0.0, rv.WorkloadConveyorStorageOut)
}
