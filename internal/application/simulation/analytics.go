package simulation

import (
	"math"

	"github.com/lbruckner/palletsim/internal/domain/game"
)

// workloadPercent returns the used share of a capacity pool in percent
func workloadPercent(used, pool float64) float64 {
	if pool <= 0 {
		return 0
	}
	return math.Round(used / pool * 100)
}

// updateWorkloads derives per-station employee and conveyor workloads from
// the capacity the flow stage consumed
func updateWorkloads(rv *game.RoundValues) {
	for processID := 0; processID < game.ProcessCount; processID++ {
		employeeCapacity := rv.EmpCapacityProcesses[processID]
		conveyorCapacity := rv.ConvCapacityProcesses[processID]
		used := rv.CapacityOverallProcesses[processID] - rv.CapacityProcesses[processID]

		rv.WorkloadEmployee[processID] = workloadPercent(used, employeeCapacity)
		rv.WorkloadConveyor[processID] = workloadPercent(used, conveyorCapacity)

		if processID == game.ProcessStorage.Index() {
			overallIn := rv.CapacityOverallProcesses[processID] * rv.StorageFactor
			overallOut := rv.CapacityOverallProcesses[processID] - overallIn
			usedIn := overallIn - rv.CapacityStorageIn
			usedOut := overallOut - rv.CapacityStorageOut

			employeeIn := employeeCapacity * rv.StorageFactor
			employeeOut := employeeCapacity - employeeIn
			rv.WorkloadEmployeeStorageIn = workloadPercent(usedIn, employeeIn)
			rv.WorkloadEmployeeStorageOut = workloadPercent(usedOut, employeeOut)

			conveyorIn := conveyorCapacity * rv.StorageFactor
			conveyorOut := conveyorCapacity - conveyorIn
			rv.WorkloadConveyorStorageIn = workloadPercent(usedIn, conveyorIn)
			rv.WorkloadConveyorStorageOut = workloadPercent(usedOut, conveyorOut)
		}
	}
}

// updateStockValue recomputes the stock value per station and the company
// value
func updateStockValue(rv *game.RoundValues, dynamics []*game.ArticleDynamic) {
	var overall float64
	for _, dynamic := range dynamics {
		var pallets int
		for _, count := range dynamic.PalletCountProcesses {
			pallets += count
		}
		overall += float64(pallets) * dynamic.Article.PurchasePrice
	}
	rv.StockValue = overall
	rv.CompanyValue = overall + rv.CurrentConvValue

	for processID := 0; processID < game.ProcessCount; processID++ {
		var value float64
		for _, dynamic := range dynamics {
			value += float64(dynamic.PalletCountProcesses[processID]) * dynamic.Article.PurchasePrice
		}
		rv.StockValueProcesses[processID] = value
	}
}

// consumptionWindow returns the most recent rounds of an article's
// consumption history
func consumptionWindow(pastConsumption []int) []int {
	start := len(pastConsumption) - game.HistoryTime
	if start < 0 {
		start = 0
	}
	return pastConsumption[start:]
}

// updateConsumptionAndRange refreshes the average consumption and the
// estimated stock range of every article
func updateConsumptionAndRange(dynamics []*game.ArticleDynamic) {
	for _, dynamic := range dynamics {
		window := consumptionWindow(dynamic.PastConsumption)
		var sum int
		for _, consumption := range window {
			sum += consumption
		}
		average := 0.0
		if len(window) > 0 {
			average = math.Round(float64(sum) / float64(len(window)))
		}
		dynamic.AverageConsumption = average
		if average > 0 {
			storedPallets := dynamic.PalletCountProcesses[game.ProcessStorage.Index()]
			dynamic.EstimatedRange = int(math.Floor(float64(storedPallets) / average))
		} else {
			dynamic.EstimatedRange = 0
		}
	}
}

// demandRate returns the consumption rate used by the order quantity
// estimate. The rate is normalized over the full history window even when
// fewer rounds were played.
func demandRate(pastConsumption []int) float64 {
	var sum int
	for _, consumption := range consumptionWindow(pastConsumption) {
		sum += consumption
	}
	return float64(sum) / float64(game.HistoryTime)
}

// orderQuantityAtDiscount returns the cost-optimal order quantity at the
// given discount tier, -1 meaning list price
func orderQuantityAtDiscount(article *game.Article, pastConsumption []int, discountLevel int) int {
	rate := demandRate(pastConsumption)
	costPerPallet := article.PurchasePrice
	if discountLevel >= 0 {
		costPerPallet = article.Discount[discountLevel].PurchasePrice
	}

	quantity := int(math.Round(math.Sqrt((2 * rate * article.FixOrderCost) / (costPerPallet * game.StockCarryingFactor))))
	if discountLevel >= 0 && quantity < article.Discount[discountLevel].MinQuantity {
		quantity = article.Discount[discountLevel].MinQuantity
	}
	return quantity
}

// orderCostAtQuantity returns the per-round cost of ordering the given
// quantity at the given discount tier
func orderCostAtQuantity(article *game.Article, pastConsumption []int, quantity, discountLevel int) float64 {
	rate := demandRate(pastConsumption)
	costPerPallet := article.PurchasePrice
	if discountLevel >= 0 {
		costPerPallet = article.Discount[discountLevel].PurchasePrice
	}
	return math.Round((article.FixOrderCost/float64(quantity) +
		costPerPallet*rate +
		math.Round(float64(quantity)*costPerPallet*game.StockCarryingFactor)) / 2)
}

// updateOptimalOrderQuantity picks the cheapest of the list price and the
// two discount tiers for every article
func updateOptimalOrderQuantity(dynamics []*game.ArticleDynamic) {
	for _, dynamic := range dynamics {
		article := dynamic.Article
		history := dynamic.PastConsumption

		quantityList := orderQuantityAtDiscount(article, history, -1)
		quantityTierOne := orderQuantityAtDiscount(article, history, 0)
		quantityTierTwo := orderQuantityAtDiscount(article, history, 1)

		costList := orderCostAtQuantity(article, history, quantityList, -1)
		costTierOne := orderCostAtQuantity(article, history, quantityTierOne, 0)
		costTierTwo := orderCostAtQuantity(article, history, quantityTierTwo, 1)

		switch {
		case costList <= costTierOne && costList <= costTierTwo:
			dynamic.OptimalOrderQuantity = quantityList
		case costTierOne <= costTierTwo:
			dynamic.OptimalOrderQuantity = quantityTierOne
		default:
			dynamic.OptimalOrderQuantity = quantityTierTwo
		}
	}
}

// updateComplaints derives the customer complaint shares from the damage
// tallies of the shipped pallets. With nothing shipped the previous shares
// stand.
func updateComplaints(rv *game.RoundValues) {
	shipped := rv.PalletsTransportedProcess[game.ProcessLoading.Index()]
	if shipped == 0 {
		return
	}
	total := float64(shipped)
	errors := rv.PalletQuantityPerErrors

	var withError int
	for _, count := range errors[1:] {
		withError += count
	}

	rv.ComplaintPercentage = float64(withError) / total
	rv.ComplaintDamaged = float64(errors[1]) / total
	rv.ComplaintWrongDelivered = float64(errors[2]) / total
	rv.ComplaintWrongRetrieval = float64(errors[3]) / total
	rv.ComplaintWrongPallets = float64(errors[2]+errors[3]) / total
	rv.ComplaintErrorUnloading = float64(errors[4]) / total
	rv.ComplaintErrorStorage = float64(errors[5]) / total
	rv.ComplaintErrorLoading = float64(errors[6]) / total
	rv.ComplaintErrorTransport = float64(errors[4]+errors[5]+errors[6]) / total
}

// updateServiceLevel derives the service level and the resulting customer
// satisfaction from the finished jobs and the complaint share
func updateServiceLevel(rv *game.RoundValues) {
	serviceLevel := 1.0
	if rv.CurrentCustomerJobs > 0 {
		serviceLevel = float64(rv.AccurateFinishedJobs) / float64(rv.CurrentCustomerJobs)
	}
	satisfaction := (1.0 - rv.ComplaintPercentage) * serviceLevel * 100.0

	rv.ServiceLevel = serviceLevel
	rv.CustomerSatisfaction = math.Round(satisfaction)
}

// calculateAnalytics runs the post-flow stage: workloads, stock and company
// value, consumption forecasts, order suggestions, complaints and customer
// satisfaction.
func (e *Engine) calculateAnalytics(state *game.GameState) {
	rv := state.RoundValues

	updateWorkloads(rv)
	updateStockValue(rv, state.ArticleDynamics)
	updateConsumptionAndRange(state.ArticleDynamics)
	updateOptimalOrderQuantity(state.ArticleDynamics)
	updateComplaints(rv)

	rv.CurrentOrderedPallets = 0
	for _, order := range state.Orders {
		rv.CurrentOrderedPallets += order.Quantity
	}

	updateServiceLevel(rv)
}
