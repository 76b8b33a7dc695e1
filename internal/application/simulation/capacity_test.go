package simulation

import (
	"testing"

	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestPairedCapacity(t *testing.T) {
	tests := []struct {
		name     string
		empWfp   float64
		convWfp  float64
		empWofp  float64
		convWofp float64
		want     float64
	}{
		{
			name:   "conveyors are the bottleneck",
			empWfp: 1000, convWfp: 800, empWofp: 500, convWofp: 900,
			want: 800 + 700,
		},
		{
			name:   "employees are the bottleneck",
			empWfp: 600, convWfp: 800, empWofp: 300, convWofp: 900,
			want: 600 + 300,
		},
		{
			name:   "no conveyors at all",
			empWfp: 600, convWfp: 0, empWofp: 300, convWofp: 0,
			want: 0,
		},
		{
			name:   "spare permit drivers help out at permit-free conveyors",
			empWfp: 900, convWfp: 100, empWofp: 0, convWofp: 500,
			want: 100 + 500,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pairedCapacity(tt.empWfp, tt.convWfp, tt.empWofp, tt.convWofp))
		})
	}
}

func TestCalculateCapacity_SplitsStorageBetweenInAndOut(t *testing.T) {
	// Arrange
	state := newFlowState()
	rv := &game.RoundValues{StorageFactor: 0.3}
	processID := game.ProcessStorage.Index()
	rv.EmpCapacityWfpProcesses[processID] = 1200
	rv.ConvCapacityWfpProcesses[processID] = 1000
	state.RoundValues = rv
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateCapacity(state)

	// Assert: outbound gets floor(1000 * 0.7), inbound the rest
	assert.Equal(t, 1000.0, rv.CapacityProcesses[processID])
	assert.Equal(t, 1000.0, rv.CapacityOverallProcesses[processID])
	assert.Equal(t, 700.0, rv.CapacityStorageOut)
	assert.Equal(t, 300.0, rv.CapacityStorageIn)
}

func TestCalculateCapacity_StationsWithoutConveyorsUseEmployeeCapacityOnly(t *testing.T) {
	// Arrange
	state := newFlowState()
	rv := &game.RoundValues{}
	processID := game.ProcessCollection.Index()
	rv.EmpCapacityProcesses[processID] = 54000
	state.RoundValues = rv
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateCapacity(state)

	// Assert
	assert.Equal(t, 54000.0, rv.CapacityProcesses[processID])
}
