package simulation

import (
	"math"

	"github.com/lbruckner/palletsim/internal/domain/game"
)

// hiringCost returns the one-off cost when the employee starts this round
func hiringCost(emp *game.Employee, round int) float64 {
	if emp.EmploymentRound != round {
		return 0
	}
	if emp.ContractType == game.ContractTemporary {
		return game.NewEmployeeCostTemporary
	}
	return game.NewEmployeeCostIndefinite
}

// compensationCost returns the severance due when the contract ends this
// round
func compensationCost(d *game.EmployeeDynamic, round int) float64 {
	if d.Employee.EndRound != round {
		return 0
	}
	duration := round - d.Employee.EmploymentRound
	return math.Floor(d.Salary*float64(duration)) * game.CompensationFactor
}

// errorChance returns the per-pallet handling error probability of one
// employee, which depends on whether the station runs conveyors.
func errorChance(d *game.EmployeeDynamic, worksWithConveyor bool) float64 {
	switch {
	case worksWithConveyor && !d.HasForkliftPermit():
		return game.ErrorChanceWofpUntrained
	case worksWithConveyor && !d.HasSecurityTraining():
		return game.ErrorChanceWfpUntrained
	case worksWithConveyor:
		return game.ErrorChanceWfpTrained
	case d.HasQMTraining():
		return game.ErrorChanceWithQM
	default:
		return game.ErrorChanceWithoutQM
	}
}

// trainingCost returns the seminar fee when a booked training finishes this
// round
func trainingCost(d *game.EmployeeDynamic, round int) float64 {
	if d.FPRound == round {
		return game.ForkliftTrainingCost
	}
	if d.QMRound == round {
		return game.QMTrainingCost
	}
	if d.SecRound == round {
		return game.SecurityTrainingCost
	}
	return 0
}

// overtimeMotivationFactor maps overtime hours to a motivation factor
func overtimeMotivationFactor(overtimeHours int) float64 {
	for i, border := range game.OvertimeMotivationBorders {
		if overtimeHours <= border {
			return game.OvertimeMotivationFactor[i]
		}
	}
	return game.OvertimeMotivationFactor[len(game.OvertimeMotivationBorders)-1]
}

// temporaryMotivationFactor maps the temporary-worker share to a motivation
// factor
func temporaryMotivationFactor(temporaryShare float64) float64 {
	for i, border := range game.TemporaryMotivationBorders {
		if temporaryShare <= border {
			return game.TemporaryMotivationFactor[i]
		}
	}
	return game.TemporaryMotivationFactor[len(game.TemporaryMotivationBorders)]
}

// applyFinishedTraining upgrades qualification and salary when a booked
// training finishes this round
func applyFinishedTraining(d *game.EmployeeDynamic, round int) {
	if d.FPRound == round {
		d.Qualification++
	}
	if d.SecRound == round {
		d.Qualification += 2
	}
	if d.QMRound == round {
		d.Qualification += 4
	}
	if d.Qualification >= 0 && d.Qualification < len(game.SalaryByQualification) &&
		(d.FPRound == round || d.SecRound == round || d.QMRound == round) {
		d.Salary = game.SalaryByQualification[d.Qualification]
	}
}

// temporaryShare returns the fraction of temporary workers among all valid
// employees
func temporaryShare(dynamics []*game.EmployeeDynamic) float64 {
	var temporary, total int
	for _, d := range dynamics {
		total++
		if d.Employee.ContractType == game.ContractTemporary {
			temporary++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(temporary) / float64(total)
}

// climateMotivationFactor maps the current work climate investment to its
// motivation factor
func climateMotivationFactor(invest int) float64 {
	for i, level := range game.WorkClimateInvestLevel {
		if invest == level {
			return game.WorkClimateFactor[i]
		}
	}
	return game.WorkClimateFactor[0]
}

// validEmployees returns the employees that work this round
func validEmployees(dynamics []*game.EmployeeDynamic, round int) []*game.EmployeeDynamic {
	var valid []*game.EmployeeDynamic
	for _, d := range dynamics {
		if d.Employee.IsReady(round) && d.Employee.HasValidContract() {
			valid = append(valid, d)
		}
	}
	return valid
}

// validAndNewEmployees returns the round's head count, which includes hires
// starting this round
func validAndNewEmployees(dynamics []*game.EmployeeDynamic, round int) []*game.EmployeeDynamic {
	var valid []*game.EmployeeDynamic
	for _, d := range dynamics {
		if d.Employee.IsValidOrNew(round) && d.Employee.HasValidContract() {
			valid = append(valid, d)
		}
	}
	return valid
}

// updateMotivation recomputes each employee's motivation from the work
// climate, overtime, temporary-worker share and salary, minus a random
// noise term, and applies finished trainings.
func (e *Engine) updateMotivation(state *game.GameState, valid []*game.EmployeeDynamic) {
	rv := state.RoundValues
	tempShare := temporaryShare(valid)
	climateFactor := climateMotivationFactor(rv.WorkClimateInvest)

	for _, d := range valid {
		processID := d.Process.Index()

		rv.QualificationCost += trainingCost(d, state.Round)

		motivationClimate := climateFactor * game.MotivationBase

		overtime := rv.OvertimeProcess[processID]
		motivationOvertime := overtimeMotivationFactor(overtime) * game.MotivationBase

		motivationTemporary := game.MotivationBase
		if d.Employee.ContractType == game.ContractTemporary {
			motivationTemporary = temporaryMotivationFactor(tempShare) * game.MotivationBase
		}

		// salary-based motivation is pinned until pay negotiation ships
		motivationSalary := game.MotivationBase * 0.9

		noise := e.rng.Float64() * 0.1

		motivation := motivationClimate + motivationTemporary + motivationSalary + motivationOvertime - noise
		if motivation < 1 {
			d.Motivation = int(math.Round(motivation * 100))
		} else {
			d.Motivation = 100
		}

		applyFinishedTraining(d, state.Round)
	}
}

// motivationPerProcess returns the truncated average motivation per station
func motivationPerProcess(valid []*game.EmployeeDynamic) [game.ProcessCount]int {
	var sum, count [game.ProcessCount]int
	for _, d := range valid {
		processID := d.Process.Index()
		sum[processID] += d.Motivation
		count[processID]++
	}
	var avg [game.ProcessCount]int
	for i := range sum {
		if count[i] > 0 {
			avg[i] = sum[i] / count[i]
		} else {
			avg[i] = sum[i]
		}
	}
	return avg
}

// updateWorkingTime accumulates the per-station employee capacity, split by
// forklift permit for the stations that run conveyors
func updateWorkingTime(rv *game.RoundValues, valid []*game.EmployeeDynamic) {
	avgMotivation := motivationPerProcess(valid)
	for _, d := range valid {
		processID := d.Process.Index()
		workTime := d.WorkTime(rv.OvertimeProcess[processID])
		capacity := workTime * (float64(avgMotivation[processID]) / 100.0)
		if d.Process.UsesConveyors() {
			if d.HasForkliftPermit() {
				rv.EmpCapacityWfpProcesses[processID] += capacity
			} else {
				rv.EmpCapacityWofpProcesses[processID] += capacity
			}
		}
		rv.EmpCapacityProcesses[processID] += capacity
	}
}

// updateAvgErrorChance computes the average handling error chance per
// station
func updateAvgErrorChance(rv *game.RoundValues, valid []*game.EmployeeDynamic) {
	var sum [game.ProcessCount]float64
	var count [game.ProcessCount]int
	for _, d := range valid {
		processID := d.Process.Index()
		sum[processID] += errorChance(d, d.Process.UsesConveyors())
		count[processID]++
	}
	for i := range sum {
		if count[i] > 0 {
			rv.AvgErrorChanceProcesses[i] = sum[i] / float64(count[i])
		} else {
			rv.AvgErrorChanceProcesses[i] = sum[i]
		}
	}
}

// updateEmployeeCost sums salaries, overtime pay, hiring cost and severance
// over all employees on the books, including ones with broken contracts
func updateEmployeeCost(rv *game.RoundValues, round int, dynamics []*game.EmployeeDynamic) {
	var costsNew, costsSalary, costsOvertime, costsCompensation float64
	for _, d := range dynamics {
		processID := d.Process.Index()
		overtime := rv.OvertimeProcess[processID]
		costsNew += hiringCost(d.Employee, round)
		costsCompensation += compensationCost(d, round)
		costsSalary += d.Salary
		costsOvertime += (d.Salary / game.WorkingTimeSeconds) * float64(overtime) * 3600
	}
	rv.NewEmployeeCost = costsNew + costsCompensation
	rv.EmployeeCost = costsOvertime + costsSalary + costsCompensation + costsNew
	rv.WorkTimeCost = costsOvertime + costsSalary
}

// calculateEmployees runs the employee stage: motivation, capacity, error
// chances, head count and cost, then drops expired contracts.
func (e *Engine) calculateEmployees(state *game.GameState) {
	rv := state.RoundValues

	rv.EmpCountProcesses = [game.ProcessCount]int{}
	rv.EmpCapacityProcesses = [game.ProcessCount]float64{}
	rv.EmpCapacityWfpProcesses = [game.ProcessCount]float64{}
	rv.EmpCapacityWofpProcesses = [game.ProcessCount]float64{}
	rv.QualificationCost = 0

	valid := validEmployees(state.EmployeeDynamics, state.Round)
	e.updateMotivation(state, valid)
	updateWorkingTime(rv, valid)
	updateAvgErrorChance(rv, valid)

	for _, d := range validAndNewEmployees(state.EmployeeDynamics, state.Round) {
		rv.EmpCountProcesses[d.Process.Index()]++
	}

	if len(valid) > 0 {
		var sum float64
		for _, d := range valid {
			sum += float64(d.Motivation)
		}
		rv.AvgMotivation = sum / float64(len(valid))
	} else {
		rv.AvgMotivation = 0
	}

	updateEmployeeCost(rv, state.Round, state.EmployeeDynamics)

	kept := state.EmployeeDynamics[:0]
	for _, d := range state.EmployeeDynamics {
		if state.Round <= d.Employee.EndRound {
			kept = append(kept, d)
		}
	}
	state.EmployeeDynamics = kept
}

// prepareEmployees records the round's employee events for the player
func (e *Engine) prepareEmployees(state *game.GameState) {
	rv := state.RoundValues
	round := state.Round

	if rv.AvgMotivation <= game.MotivationWarningLevel {
		state.PushMessage(game.NewMotivationWarningMessage(round))
	}

	for _, d := range state.EmployeeDynamics {
		emp := d.Employee

		if !emp.HasValidContract() {
			state.PushMessage(game.NewInvalidContractMessage(emp, round))
		}

		if emp.IsReady(round) {
			if d.FPRound == round {
				state.PushMessage(game.NewForkliftLicenseMessage(emp, round))
			}
			if d.QMRound == round {
				state.PushMessage(game.NewQMSeminarMessage(emp, round))
			}
			if d.SecRound == round {
				state.PushMessage(game.NewSecurityTrainingMessage(emp, round))
			}
			if emp.EndRound == round {
				state.PushMessage(game.NewEmployeeLeavingMessage(emp, round))
			}
		} else if emp.EmploymentRound == round {
			state.PushMessage(game.NewEmployeeStartingMessage(emp, round))
		}
	}
}
