package simulation

import (
	"math"

	"github.com/lbruckner/palletsim/internal/domain/game"
)

// conveyorCriticalCondition is the condition below which the player gets a
// warning about an ailing unit
const conveyorCriticalCondition = (game.ConveyorBreakdownLimit + game.ConveyorScrapLimit) / 2

// checkBreakdown draws whether a worn unit fails this round
func (e *Engine) checkBreakdown(d *game.ConveyorDynamic) bool {
	if d.Sold || d.Condition > game.ConveyorBreakdownLimit {
		return false
	}
	if e.rng.Float64() < 0.5 {
		d.Status = game.ConveyorStatusBroken
		return true
	}
	return false
}

// breakdownCost returns the repair bill of a failed unit
func breakdownCost(d *game.ConveyorDynamic) float64 {
	return math.Floor(d.Conveyor.Price * (float64(d.Condition) / 100.0) * game.ConveyorRepairCostFactor)
}

// applyMaintenance wears the unit down and returns the maintenance bill.
// Units under a maintenance contract wear slower.
func applyMaintenance(d *game.ConveyorDynamic) float64 {
	damage := game.ConveyorDamageWithoutMaintenance
	var cost float64
	if d.MaintenanceEnabled {
		damage = game.ConveyorDamageWithMaintenance
		cost = d.Conveyor.MaintenanceCost
	}
	if d.Condition -= damage; d.Condition < 0 {
		d.Condition = 0
	}
	return cost
}

// applyOverhaul executes a requested overhaul. The shop refuses when the
// unit is already in better shape than an overhaul could deliver.
func (e *Engine) applyOverhaul(d *game.ConveyorDynamic, round int) float64 {
	if !d.Overhaul {
		return 0
	}
	d.Overhaul = false
	maxCondition := 100 - d.Age(round)*game.ConveyorDamageWithMaintenance
	minCondition := maxCondition - 10
	if minCondition < d.Condition {
		return 0
	}
	d.Condition = int(math.Round(e.rng.Float64()*float64(maxCondition-minCondition) + float64(minCondition)))
	return d.OverhaulCost
}

// recordWorkingConveyor adds a working unit's capacity and value to the
// scoreboard
func recordWorkingConveyor(d *game.ConveyorDynamic, rv *game.RoundValues, repairTime int) {
	processID := d.Process.Index()
	capacity := float64(game.WorkingTimeSeconds - repairTime)
	if d.Conveyor.NeedsForkliftPermit {
		rv.ConvCapacityWfpProcesses[processID] += capacity
	} else {
		rv.ConvCapacityWofpProcesses[processID] += capacity
	}

	d.CurrentValue = d.ResaleValue()
	rv.AvgSpeedProcesses[processID] += d.Conveyor.Speed
	rv.ConvCountProcesses[processID]++
	rv.CurrentConvValue += d.CurrentValue
}

// interferenceLoss returns the capacity lost when several units obstruct
// each other at one station
func interferenceLoss(capacity float64, conveyorCount int) float64 {
	loss := math.Floor(capacity * float64(conveyorCount-1) * game.ConveyorDisabilityFactor)
	return math.Max(loss, 0)
}

// checkScrap retires a unit whose condition fell to the scrap limit. The
// player is told once, when the limit is crossed.
func (e *Engine) checkScrap(state *game.GameState, d *game.ConveyorDynamic) bool {
	if d.Condition > game.ConveyorScrapLimit {
		return false
	}
	if d.Status != game.ConveyorStatusScrap {
		d.Status = game.ConveyorStatusScrap
		state.PushMessage(game.NewConveyorScrapMessage(d.Conveyor.Name, state.Round))
	}
	return true
}

// processConveyor runs the per-unit lifecycle for one round: sale,
// delivery, breakdown, wear, overhaul and scrapping.
func (e *Engine) processConveyor(state *game.GameState, d *game.ConveyorDynamic) {
	rv := state.RoundValues

	// last round's breakdown is repaired by now
	if d.Status == game.ConveyorStatusBroken {
		d.Status = game.ConveyorStatusWorking
	}

	if d.Sold {
		d.Status = game.ConveyorStatusSold
		rv.ConveyorSaleIncome += d.CurrentValue
	}
	if d.DeliveryRound() == state.Round {
		rv.NewConveyorCost += d.Conveyor.Price
	}

	if !d.IsDelivered(state.Round) || d.Sold {
		return
	}
	if e.checkScrap(state, d) {
		return
	}

	repairTime := 0
	if e.checkBreakdown(d) {
		repairTime = d.Conveyor.TimeToRepair
		rv.RepairCost += breakdownCost(d)
		rv.RepairDuration += float64(repairTime)
	}

	rv.MaintenanceCost += applyMaintenance(d)
	rv.OverhaulCost += e.applyOverhaul(d, state.Round)

	// wear can finish a unit off for good
	if e.checkScrap(state, d) {
		return
	}

	if d.Condition < conveyorCriticalCondition && d.Status != game.ConveyorStatusBroken {
		state.PushMessage(game.NewConveyorCriticalMessage(d.Conveyor.Name, state.Round))
	}
	if d.Status == game.ConveyorStatusBroken {
		state.PushMessage(game.NewConveyorBreakdownMessage(d.Conveyor.Name, state.Round))
	}

	recordWorkingConveyor(d, rv, repairTime)
}

// calculateConveyors runs the conveyor stage: per-unit lifecycle, fleet
// cleanup and per-station capacity aggregation.
func (e *Engine) calculateConveyors(state *game.GameState) {
	rv := state.RoundValues

	rv.OverhaulCost = 0
	rv.RepairCost = 0
	rv.MaintenanceCost = 0
	rv.RepairDuration = 0
	rv.ConveyorSaleIncome = 0
	rv.NewConveyorCost = 0
	rv.CurrentConvValue = 0
	rv.ConvCountProcesses = [game.ProcessCount]int{}
	rv.AvgSpeedProcesses = [game.ProcessCount]float64{}
	rv.ConvCapacityWfpProcesses = [game.ProcessCount]float64{}
	rv.ConvCapacityWofpProcesses = [game.ProcessCount]float64{}

	for _, d := range state.ConveyorDynamics {
		e.processConveyor(state, d)
	}

	kept := state.ConveyorDynamics[:0]
	for _, d := range state.ConveyorDynamics {
		if !d.Sold {
			kept = append(kept, d)
		}
	}
	state.ConveyorDynamics = kept

	for processID := 0; processID < game.ProcessCount; processID++ {
		count := rv.ConvCountProcesses[processID]
		if count > 0 {
			rv.AvgSpeedProcesses[processID] /= float64(count)
		} else {
			rv.AvgSpeedProcesses[processID] = 0
		}

		lossWfp := interferenceLoss(rv.EmpCapacityWfpProcesses[processID], count)
		lossWofp := interferenceLoss(rv.EmpCapacityWofpProcesses[processID], count)
		rv.ConvCapacityWfpProcesses[processID] -= math.Min(rv.ConvCapacityWfpProcesses[processID], lossWfp)
		rv.ConvCapacityWofpProcesses[processID] -= math.Min(rv.ConvCapacityWofpProcesses[processID], lossWofp)
		rv.ConvCapacityProcesses[processID] =
			rv.ConvCapacityWfpProcesses[processID] + rv.ConvCapacityWofpProcesses[processID]
	}
}

// prepareConveyors records newly arrived units for the player
func (e *Engine) prepareConveyors(state *game.GameState) {
	for _, d := range state.ConveyorDynamics {
		if d.DeliveryRound() == state.Round {
			state.PushMessage(game.NewConveyorArrivalMessage(d.RoundBought, d.Conveyor.Price, state.Round))
		}
	}
}
