package simulation

import (
	"testing"

	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConveyorState(units ...*game.ConveyorDynamic) *game.GameState {
	state := newFlowState()
	state.RoundValues = &game.RoundValues{}
	state.ConveyorDynamics = units
	return state
}

func TestCalculateConveyors_HealthyUnitContributesCapacity(t *testing.T) {
	// Arrange
	unit := newTestConveyor("Elektro-Gabelstapler", game.ProcessStorage, 80)
	unit.Conveyor.NeedsForkliftPermit = true
	state := newConveyorState(unit)
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateConveyors(state)

	// Assert: full working time, two points of wear under maintenance
	rv := state.RoundValues
	processID := game.ProcessStorage.Index()
	assert.Equal(t, 78, unit.Condition)
	assert.Equal(t, 27000.0, rv.ConvCapacityWfpProcesses[processID])
	assert.Equal(t, 1, rv.ConvCountProcesses[processID])
	assert.Equal(t, 60.0, rv.MaintenanceCost)
	assert.Equal(t, 4.0, rv.AvgSpeedProcesses[processID])
	assert.Equal(t, unit.CurrentValue, rv.CurrentConvValue)
}

func TestCalculateConveyors_BreakdownCostsRepairTimeAndMoney(t *testing.T) {
	// Arrange: condition at the breakdown limit, the draw says it fails
	unit := newTestConveyor("Elektro-Hubwagen", game.ProcessUnloading, 40)
	state := newConveyorState(unit)
	engine := newTestEngine(&shared.ScriptedRandom{Floats: []float64{0.3}})

	// Act
	engine.calculateConveyors(state)

	// Assert: repair bill is price * condition share * repair factor,
	// capacity is short the repair time
	rv := state.RoundValues
	processID := game.ProcessUnloading.Index()
	assert.Equal(t, game.ConveyorStatusBroken, unit.Status)
	assert.Equal(t, 2850.0, rv.RepairCost)
	assert.Equal(t, 2700.0, rv.RepairDuration)
	assert.Equal(t, 24300.0, rv.ConvCapacityWofpProcesses[processID])

	require.NotEmpty(t, state.Messages)
	assert.Contains(t, state.Messages[0].TextEN, "is down and needs to be repaired")
}

func TestCalculateConveyors_WearBelowScrapLimitRetiresUnitOnce(t *testing.T) {
	// Arrange: wear pushes the unit from 21 to 19, across the scrap limit
	unit := newTestConveyor("Handhubwagen", game.ProcessUnloading, 21)
	state := newConveyorState(unit)
	engine := newTestEngine(&shared.ScriptedRandom{Floats: []float64{0.9, 0.9}})

	// Act
	engine.calculateConveyors(state)

	// Assert
	rv := state.RoundValues
	assert.Equal(t, game.ConveyorStatusScrap, unit.Status)
	assert.Equal(t, 0, rv.ConvCountProcesses[game.ProcessUnloading.Index()])
	require.Len(t, state.Messages, 1)
	assert.Contains(t, state.Messages[0].TextEN, "not available any longer")

	// Act again: the retired unit stays silent
	engine.calculateConveyors(state)

	// Assert
	assert.Len(t, state.Messages, 1)
}

func TestCalculateConveyors_SoldUnitPaysOutAndLeavesFleet(t *testing.T) {
	// Arrange
	unit := newTestConveyor("Schubmaststapler", game.ProcessStorage, 90)
	unit.Sold = true
	state := newConveyorState(unit)
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateConveyors(state)

	// Assert
	assert.Equal(t, unit.CurrentValue, state.RoundValues.ConveyorSaleIncome)
	assert.Empty(t, state.ConveyorDynamics)
}

func TestCalculateConveyors_OverhaulRestoresCondition(t *testing.T) {
	// Arrange: an old unit in poor shape; the shop draw lands mid-window
	unit := newTestConveyor("Elektro-Gabelstapler", game.ProcessStorage, 35)
	unit.RoundBought = 0
	unit.Overhaul = true
	state := newConveyorState(unit)
	state.Round = 20
	// first float: no breakdown, second: overhaul position in the window
	engine := newTestEngine(&shared.ScriptedRandom{Floats: []float64{0.9, 0.5}})

	// Act
	engine.calculateConveyors(state)

	// Assert: age 20 gives a window of [50, 60], the draw lands at 55
	assert.Equal(t, 55, unit.Condition)
	assert.False(t, unit.Overhaul)
	assert.Equal(t, 1800.0, state.RoundValues.OverhaulCost)
}

func TestCalculateConveyors_InterferenceReducesCapacity(t *testing.T) {
	// Arrange: two units at one station obstruct each other
	first := newTestConveyor("Elektro-Gabelstapler", game.ProcessStorage, 80)
	second := newTestConveyor("Elektro-Gabelstapler", game.ProcessStorage, 80)
	first.Conveyor.NeedsForkliftPermit = true
	second.Conveyor.NeedsForkliftPermit = true
	state := newConveyorState(first, second)
	state.RoundValues.EmpCapacityWfpProcesses[game.ProcessStorage.Index()] = 50000
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateConveyors(state)

	// Assert: loss is floor(50000 * 1 * 0.02) = 1000 of 54000 seconds
	rv := state.RoundValues
	processID := game.ProcessStorage.Index()
	assert.Equal(t, 53000.0, rv.ConvCapacityWfpProcesses[processID])
	assert.Equal(t, 53000.0, rv.ConvCapacityProcesses[processID])
}

func TestPrepareConveyors_AnnouncesArrivedUnit(t *testing.T) {
	// Arrange
	unit := newTestConveyor("Schmalgangstapler", game.ProcessStorage, 100)
	unit.RoundBought = 11
	state := newConveyorState(unit)
	state.Round = 12
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.prepareConveyors(state)

	// Assert
	require.Len(t, state.Messages, 1)
	assert.Contains(t, state.Messages[0].TextEN, "a conveyor was ordered and it just arrived")
}
