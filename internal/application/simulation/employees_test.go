package simulation

import (
	"testing"

	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmployeeState(workers ...*game.EmployeeDynamic) *game.GameState {
	state := newFlowState()
	state.RoundValues = &game.RoundValues{}
	state.EmployeeDynamics = workers
	return state
}

func TestCalculateEmployees_MotivationCombinesAllFactors(t *testing.T) {
	// Arrange: no climate invest, no overtime, full-time worker; the noise
	// draw is pinned at 0.5, costing five points
	worker := newTestWorker("Jana Fischer", 1, game.ProcessUnloading)
	state := newEmployeeState(worker)
	engine := newTestEngine(&shared.ScriptedRandom{Floats: []float64{0.5}})

	// Act
	engine.calculateEmployees(state)

	// Assert: 0.175 climate + 0.25 overtime + 0.25 contract + 0.225 salary
	// - 0.05 noise = 0.85
	assert.Equal(t, 85, worker.Motivation)
	assert.Equal(t, 85.0, state.RoundValues.AvgMotivation)
}

func TestCalculateEmployees_CapacitySplitsByForkliftPermit(t *testing.T) {
	// Arrange: two workers at unloading, one with a forklift permit
	withPermit := newTestWorker("Jana Fischer", 1, game.ProcessUnloading)
	withoutPermit := newTestWorker("Ben Weber", 0, game.ProcessUnloading)
	state := newEmployeeState(withPermit, withoutPermit)
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateEmployees(state)

	// Assert: both end at motivation 90, station average 90, so each gives
	// 27000 * 0.9 seconds
	rv := state.RoundValues
	processID := game.ProcessUnloading.Index()
	assert.Equal(t, 24300.0, rv.EmpCapacityWfpProcesses[processID])
	assert.Equal(t, 24300.0, rv.EmpCapacityWofpProcesses[processID])
	assert.Equal(t, 48600.0, rv.EmpCapacityProcesses[processID])
	assert.Equal(t, 2, rv.EmpCountProcesses[processID])
}

func TestCalculateEmployees_ErrorChanceDependsOnStationAndTraining(t *testing.T) {
	// Arrange: permit without safety training at a conveyor station, and a
	// QM-trained clerk at the control station
	driver := newTestWorker("Jana Fischer", 1, game.ProcessUnloading)
	clerk := newTestWorker("Ben Weber", 4, game.ProcessControl)
	state := newEmployeeState(driver, clerk)
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateEmployees(state)

	// Assert
	rv := state.RoundValues
	assert.Equal(t, game.ErrorChanceWfpUntrained, rv.AvgErrorChanceProcesses[game.ProcessUnloading.Index()])
	assert.Equal(t, game.ErrorChanceWithQM, rv.AvgErrorChanceProcesses[game.ProcessControl.Index()])
}

func TestCalculateEmployees_HiringAndSeveranceCosts(t *testing.T) {
	// Arrange: one hire starting this round, one contract ending this round
	// after ten rounds of employment
	state := newEmployeeState()
	round := state.Round

	hire := newTestWorker("Jana Fischer", 0, game.ProcessUnloading)
	hire.Employee.EmploymentRound = round

	leaver := newTestWorker("Ben Weber", 0, game.ProcessUnloading)
	leaver.Employee.EmploymentRound = round - 10
	leaver.Employee.EndRound = round

	state.EmployeeDynamics = []*game.EmployeeDynamic{hire, leaver}
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateEmployees(state)

	// Assert: 500 hiring cost plus floor(85 * 10) * 0.3 severance
	rv := state.RoundValues
	assert.Equal(t, 500.0+255.0, rv.NewEmployeeCost)
	assert.Equal(t, 85.0+85.0+500.0+255.0, rv.EmployeeCost)
	assert.Equal(t, 170.0, rv.WorkTimeCost)
}

func TestCalculateEmployees_ExpiredContractsAreDropped(t *testing.T) {
	// Arrange
	state := newEmployeeState()
	expired := newTestWorker("Jana Fischer", 0, game.ProcessUnloading)
	expired.Employee.EndRound = state.Round - 1
	staying := newTestWorker("Ben Weber", 0, game.ProcessUnloading)
	state.EmployeeDynamics = []*game.EmployeeDynamic{expired, staying}
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateEmployees(state)

	// Assert
	require.Len(t, state.EmployeeDynamics, 1)
	assert.Equal(t, "Ben Weber", state.EmployeeDynamics[0].Employee.Name)
}

func TestCalculateEmployees_FinishedTrainingUpgradesQualification(t *testing.T) {
	// Arrange
	state := newEmployeeState()
	worker := newTestWorker("Jana Fischer", 0, game.ProcessControl)
	worker.FPRound = state.Round
	state.EmployeeDynamics = []*game.EmployeeDynamic{worker}
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateEmployees(state)

	// Assert
	assert.Equal(t, 1, worker.Qualification)
	assert.Equal(t, game.SalaryByQualification[1], worker.Salary)
	assert.Equal(t, float64(game.ForkliftTrainingCost), state.RoundValues.QualificationCost)
}

func TestPrepareEmployees_AnnouncesLowMotivationAndEvents(t *testing.T) {
	// Arrange
	state := newEmployeeState()
	state.RoundValues.AvgMotivation = 40
	leaver := newTestWorker("Jana Fischer", 0, game.ProcessUnloading)
	leaver.Employee.EndRound = state.Round
	starter := newTestWorker("Ben Weber", 0, game.ProcessUnloading)
	starter.Employee.EmploymentRound = state.Round
	state.EmployeeDynamics = []*game.EmployeeDynamic{leaver, starter}
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.prepareEmployees(state)

	// Assert
	require.Len(t, state.Messages, 3)
	texts := make([]string, 0, len(state.Messages))
	for _, m := range state.Messages {
		texts = append(texts, m.TextEN)
	}
	assert.Contains(t, texts[2], "motivation is currently alarming")
	assert.Contains(t, texts[1], "leaving your company")
	assert.Contains(t, texts[0], "beginns in this round")
}
