package simulation

import (
	"math"

	"github.com/lbruckner/palletsim/internal/domain/game"
)

// pairedCapacity matches employee and conveyor seconds at a station that
// runs conveyors. Employees with a forklift permit that find no permit
// conveyor fall back to the permit-free pool.
func pairedCapacity(empWfp, convWfp, empWofp, convWofp float64) float64 {
	capacityWfp := math.Min(empWfp, convWfp)
	spareEmpWfp := 0.0
	if empWfp > convWfp {
		spareEmpWfp = empWfp - convWfp
	}
	capacityWofp := math.Min(empWofp+spareEmpWfp, convWofp)
	return capacityWfp + capacityWofp
}

// calculateCapacity combines employee and conveyor capacity into the usable
// per-station capacity and splits the storage station between inbound and
// outbound work.
func (e *Engine) calculateCapacity(state *game.GameState) {
	rv := state.RoundValues

	for processID := 0; processID < game.ProcessCount; processID++ {
		process := game.Process(processID)
		var capacity float64
		if process.UsesConveyors() {
			capacity = pairedCapacity(
				rv.EmpCapacityWfpProcesses[processID],
				rv.ConvCapacityWfpProcesses[processID],
				rv.EmpCapacityWofpProcesses[processID],
				rv.ConvCapacityWofpProcesses[processID],
			)
		} else {
			capacity = rv.EmpCapacityProcesses[processID]
		}
		rv.CapacityProcesses[processID] = capacity
		rv.CapacityOverallProcesses[processID] = capacity
	}

	storageCapacity := rv.CapacityProcesses[game.ProcessStorage.Index()]
	outbound := math.Floor(storageCapacity * (1 - rv.StorageFactor))
	rv.CapacityStorageOut = outbound
	rv.CapacityStorageIn = storageCapacity - outbound
}
