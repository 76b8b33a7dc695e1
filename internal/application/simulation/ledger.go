package simulation

import (
	"math"

	"github.com/lbruckner/palletsim/internal/domain/game"
)

// moduleCost sums the subscription fees of the booked information modules
func moduleCost(rv *game.RoundValues) float64 {
	var cost float64
	if rv.ModuleOrderQuantity {
		cost += game.ModuleOrderQuantityCost
	}
	if rv.ModuleReorderLevel {
		cost += game.ModuleReorderLevelCost
	}
	if rv.ModuleSafetyStock {
		cost += game.ModuleSafetyStockCost
	}
	if rv.ModuleLookInStorage {
		cost += game.ModuleLookInStorageCost
	}
	if rv.ModuleStatusReport {
		cost += game.ModuleStatusReportCost
	}
	return cost
}

// abcCost returns the one-off fees of analyses commissioned for this round
func abcCost(rv *game.RoundValues, round int) float64 {
	var cost float64
	if rv.ABCAnalysisRound == round {
		cost += game.ABCAnalysisCost
	}
	if rv.ABCZoningRound == round {
		cost += game.ABCZoningCost
	}
	return cost
}

// overallCost sums every cost position of the round
func overallCost(rv *game.RoundValues) float64 {
	return rv.CurrentOrderCosts + moduleCost(rv) + rv.EmployeeCost +
		rv.NewConveyorCost + rv.RepairCost + rv.MaintenanceCost +
		rv.OverhaulCost + float64(rv.WorkClimateInvest) + float64(rv.ITCosts) +
		float64(rv.LoadingEquipmentLevel) + rv.USDCost + rv.ABCCost +
		rv.StorageCost + rv.DebitInterestCost + rv.QualificationCost
}

// overallIncome sums every income position of the round
func overallIncome(rv *game.RoundValues) float64 {
	return rv.SalesIncome + rv.CreditInterestIncome + rv.ConveyorSaleIncome
}

// calculateLedger closes the round's books: storage cost, interest, total
// cost and income, and the new account balance.
func (e *Engine) calculateLedger(state *game.GameState) {
	rv := state.RoundValues

	rv.ABCCost = abcCost(rv, state.Round)
	rv.StorageCost = math.Floor(game.StorageCostFactor * rv.StockValueProcesses[game.ProcessStorage.Index()])

	rv.SalesIncome = 0
	for _, income := range rv.SalesIncomeArticle {
		rv.SalesIncome += income
	}

	balance := rv.AccountBalance
	rv.DebitInterestCost = 0
	rv.CreditInterestIncome = 0
	if balance < 0 {
		rv.DebitInterestCost = -balance * game.DebitInterestFactor
	} else if balance > 0 {
		rv.CreditInterestIncome = balance * game.CreditInterestFactor
	}

	rv.CostsRound = overallCost(rv)
	rv.IncomeRound = overallIncome(rv)
	rv.AccountBalance = math.Round(balance + rv.IncomeRound - rv.CostsRound)
}

// financiallyCritical reports whether debt exceeds what the company is
// worth
func financiallyCritical(companyValue, balance float64) bool {
	return companyValue < -balance
}

// prepareLedger drives the critical-state machine: a company whose debt
// outgrows its value or whose customers leave enters the critical state,
// and ends the game when it stays there too long.
func (e *Engine) prepareLedger(state *game.GameState) {
	rv := state.RoundValues
	round := state.Round

	companyValue := rv.CompanyValue
	balance := rv.AccountBalance
	satisfaction := rv.CustomerSatisfaction

	if financiallyCritical(companyValue, balance) {
		if rv.GameState == game.GameStateCritical {
			if round-rv.StatusChangeRound > game.MaxCriticalStateDuration {
				rv.GameState = game.GameStateEnd
				state.PushMessage(game.NewBankruptcyMessage(round))
			} else {
				state.PushMessage(game.NewFinancialStillCriticalMessage(round))
			}
		} else {
			rv.StatusChangeRound = round - 1
			rv.GameState = game.GameStateCritical
			state.PushMessage(game.NewFinancialCriticalMessage(round))
		}
	}

	if satisfaction < game.MinCustomerSatisfaction {
		if rv.GameState == game.GameStateCritical {
			if round-rv.StatusChangeRound > game.MaxCriticalStateDuration {
				rv.GameState = game.GameStateEnd
				state.PushMessage(game.NewNoCustomersMessage(round))
			} else {
				state.PushMessage(game.NewCustomersAlarmingMessage(round))
			}
		} else {
			rv.StatusChangeRound = round - 1
			rv.GameState = game.GameStateCritical
			state.PushMessage(game.NewSatisfactionCriticalMessage(round))
		}
	}

	if rv.GameState == game.GameStateCritical &&
		!financiallyCritical(companyValue, balance) &&
		satisfaction >= game.MinCustomerSatisfaction {
		rv.StatusChangeRound = round - 1
		rv.GameState = game.GameStateOK
		state.PushMessage(game.NewSituationImprovedMessage(round))
	}
}
