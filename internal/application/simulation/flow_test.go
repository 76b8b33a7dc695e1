package simulation

import (
	"testing"

	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateFlow_MovesOrderedPalletsThroughToCustomer(t *testing.T) {
	// Arrange
	state := newFlowState()
	state.Orders = []*game.Order{
		game.NewOrder(game.OrderDraft{
			OrderNumber:       1,
			OrderRound:        state.Round - 1,
			DeliveryRound:     state.Round - 1,
			DeliveryWishRound: state.Round - 1,
			ArticleNumber:     game.ArticleNumberBase,
			RealPurchasePrice: 40.0,
			Quantity:          3,
			FixCosts:          90.0,
		}, 0),
	}
	state.CustomerJobs = []*game.CustomerJob{
		game.NewCustomerJob(game.ArticleNumberBase, 2, state.Round),
	}
	engine := newTestEngine(&shared.ScriptedRandom{Floats: []float64{0.5, 0.5, 0.5}})

	// Act
	engine.calculateFlow(state)

	// Assert
	rv := state.RoundValues
	assert.Equal(t, [game.ProcessCount]int{3, 3, 5, 2, 2}, rv.PalletsTransportedProcess)
	assert.Equal(t, 3, rv.PalletsTransportedStorageIn)
	assert.Equal(t, 2, rv.PalletsTransportedStorageOut)
	assert.Equal(t, 120.0, rv.OrderCostsArticle[0])
	assert.Equal(t, 90.0, rv.OrderFixCostsArticle[0])
	assert.Equal(t, 120.0, rv.CurrentOrderCosts)
	assert.Equal(t, 150.0, rv.SalesIncomeArticle[0])
	assert.Equal(t, 1, rv.AccurateFinishedJobs)
	assert.Equal(t, 2, rv.AccurateDeliveredPallets)
	assert.Equal(t, 2, rv.PalletQuantityPerErrors[game.PalletErrorNone])

	dynamic, err := state.ArticleByNumber(game.ArticleNumberBase)
	require.NoError(t, err)
	assert.Equal(t, 1, dynamic.CurrentStock)
	assert.Len(t, state.Storage.OccStocks, 1)
	assert.Empty(t, state.Orders)
	assert.Empty(t, state.CustomerJobs)
	assert.Empty(t, state.Storage.PalletsNotInStorage)
}

func TestCalculateFlow_ArrivedOrderIsAnnounced(t *testing.T) {
	// Arrange
	state := newFlowState()
	state.Orders = []*game.Order{
		game.NewOrder(game.OrderDraft{
			DeliveryRound:     state.Round - 1,
			DeliveryWishRound: state.Round - 2,
			ArticleNumber:     game.ArticleNumberBase,
			RealPurchasePrice: 40.0,
			Quantity:          5,
			FixCosts:          90.0,
		}, 2)}
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateFlow(state)

	// Assert
	require.NotEmpty(t, state.Messages)
	assert.Contains(t, state.Messages[0].TextEN, "Missing pallets: 2")
	assert.Contains(t, state.Messages[0].TextEN, "Delay: 1")
}

func TestCalculateFlow_LateDemandClassifiesPalletsAndJobsAsLate(t *testing.T) {
	// Arrange: the open job dates back two rounds
	state := newFlowState()
	state.Orders = []*game.Order{
		game.NewOrder(game.OrderDraft{
			OrderNumber:       1,
			OrderRound:        state.Round - 1,
			DeliveryRound:     state.Round - 1,
			DeliveryWishRound: state.Round - 1,
			ArticleNumber:     game.ArticleNumberBase,
			RealPurchasePrice: 40.0,
			Quantity:          2,
			FixCosts:          90.0,
		}, 0),
	}
	state.CustomerJobs = []*game.CustomerJob{
		game.NewCustomerJob(game.ArticleNumberBase, 2, state.Round-2),
	}
	engine := newTestEngine(&shared.ScriptedRandom{Floats: []float64{0.5, 0.5}})

	// Act
	engine.calculateFlow(state)

	// Assert
	rv := state.RoundValues
	assert.Equal(t, 2, rv.LateDeliveredPallets)
	assert.Equal(t, 0, rv.AccurateDeliveredPallets)
	assert.Equal(t, 1, rv.LateFinishedJobs)
	assert.Equal(t, 0, rv.AccurateFinishedJobs)
}

func TestAdvancePallet_ShippedPalletStaysPut(t *testing.T) {
	// Arrange
	state := newFlowState()
	rv := state.RoundValues
	transportedBefore := rv.PalletsTransportedProcess
	pallet := game.NewPallet(game.ArticleNumberBase, false, game.PalletErrorNone)
	pallet.Process = game.ProcessDone

	// Act
	advancePallet(state, pallet, 30.0)

	// Assert: no successor station, nothing is booked
	assert.Equal(t, game.ProcessDone, pallet.Process)
	assert.Equal(t, transportedBefore, rv.PalletsTransportedProcess)
	assert.Equal(t, 100000.0, rv.CapacityProcesses[game.ProcessLoading.Index()])
}

func TestMoveCollectionToStorageIn_DeepControlWidensQuota(t *testing.T) {
	// Arrange: every second pallet gets the deep control, which costs the
	// dynamic control time on top of the static one
	state := newFlowState()
	rv := state.RoundValues
	rv.PalletInFactor = 0.5
	rv.CapacityProcesses[game.ProcessCollection.Index()] = 250
	for i := 0; i < 3; i++ {
		pallet := game.NewPallet(game.ArticleNumberBase, false, game.PalletErrorNone)
		pallet.Process = game.ProcessCollection
		state.Storage.PalletsNotInStorage = append(state.Storage.PalletsNotInStorage, pallet)
	}
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.moveCollectionToStorageIn(state)

	// Assert: 40 + 190 fit into 250, the third pallet has to wait
	assert.Equal(t, 2, rv.PalletsTransportedProcess[game.ProcessCollection.Index()])
	assert.Equal(t, 1, rv.PalletsNotTransportedProcess[game.ProcessCollection.Index()])
}

func TestMoveSlotsToStorageOut_ExhaustedCapacityDefersFullJobs(t *testing.T) {
	// Arrange: two stored pallets, outbound capacity for a single retrieval
	state := newFlowState()
	rv := state.RoundValues
	rv.PalletsTransportedStorageOut = 0
	dynamic := state.ArticleDynamics[0]
	dynamic.CurrentStock = 2
	for i := 0; i < 2; i++ {
		pallet := game.NewPallet(game.ArticleNumberBase, false, game.PalletErrorNone)
		pallet.Process = game.ProcessStorage
		pallet.Stored = true
		state.Storage.Occupy(state.Storage.FreeStocks[0], pallet)
	}
	jobFirst := game.NewCustomerJob(game.ArticleNumberBase, 2, state.Round)
	jobSecond := game.NewCustomerJob(game.ArticleNumberBase, 3, state.Round)
	state.CustomerJobs = []*game.CustomerJob{jobFirst, jobSecond}
	rv.CapacityStorageOut = 26 // one retrieval costs 25, the next 30.5
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.moveSlotsToStorageOut(state)

	// Assert: the second job is deferred with its full quantity
	assert.Equal(t, 1, rv.PalletsTransportedStorageOut)
	assert.Equal(t, 4, rv.NotTransportedStorageOut)
	assert.Equal(t, 4, rv.PalletsNotTransportedProcess[game.ProcessStorage.Index()])
	assert.Equal(t, 1, jobFirst.RemainingQuantity)
	assert.Equal(t, 3, jobSecond.RemainingQuantity)
	assert.Equal(t, 1, dynamic.CurrentStock)
}

func TestCalculateFlow_TransportCrashConsumesCapacity(t *testing.T) {
	// Arrange: one pallet crashes during unloading transport
	state := newFlowState()
	rv := state.RoundValues
	pallet := game.NewPallet(game.ArticleNumberBase, false, game.PalletErrorTransportUnloading)
	state.Storage.PalletsNotInStorage = append(state.Storage.PalletsNotInStorage, pallet)
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.moveUnloadingToCollection(state)

	// Assert
	assert.Equal(t, game.TimeCrash, rv.CrashTimeProcesses[game.ProcessUnloading.Index()])
	assert.Equal(t, game.ProcessCollection, pallet.Process)
}

func TestCalculateFlow_FullWarehouseGrowsOverflowSlot(t *testing.T) {
	// Arrange
	state := newFlowState()
	state.Storage.FreeStocks = nil
	pallet := game.NewPallet(game.ArticleNumberBase, false, game.PalletErrorNone)
	pallet.Process = game.ProcessStorage
	state.Storage.PalletsNotInStorage = append(state.Storage.PalletsNotInStorage, pallet)
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.moveStorageInToSlots(state)

	// Assert
	assert.True(t, pallet.Stored)
	assert.Len(t, state.Storage.OccStocks, 1)
	assert.Equal(t, 2.0, state.Storage.OccStocks[0].DistSource)
}

func TestPrepareFlow_OutOfStockArticleIsAnnounced(t *testing.T) {
	// Arrange
	state := newFlowState()
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.prepareFlow(state)

	// Assert
	require.NotEmpty(t, state.Messages)
	assert.Contains(t, state.Messages[0].TextEN, "out of stock")
}
