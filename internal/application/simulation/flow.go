package simulation

import (
	"math"
	"sort"

	"github.com/lbruckner/palletsim/internal/domain/game"
)

// damageDistribution returns the cumulative damage probabilities used when
// a new pallet is unloaded. Index corresponds to the pallet error category;
// the draw picks the highest category whose cumulative value still covers
// the random number.
func damageDistribution(rv *game.RoundValues) [game.PalletErrorCount]float64 {
	equipmentIndex := 0
	for i, level := range game.LoadingEquipmentLevel {
		if rv.LoadingEquipmentLevel == level {
			equipmentIndex = i
		}
	}
	equipmentCrashChance := game.LoadingEquipmentCrashChance[equipmentIndex]

	unitCrashChance := game.CrashChanceWithoutUSD
	if rv.UnitSecurityDevices {
		unitCrashChance = game.CrashChanceWithUSD
	}

	damage := game.ErrorDamage / game.ErrorSum *
		rv.AvgErrorChanceProcesses[game.ProcessCollection.Index()] * (1 - rv.PalletInFactor)
	wrongDelivery := game.ErrorWrongDelivered / game.ErrorSum *
		rv.AvgErrorChanceProcesses[game.ProcessCollection.Index()] * (1 - rv.PalletInFactor)
	wrongRetrieval := game.ErrorWrongRetrieval / game.ErrorSum *
		rv.AvgErrorChanceProcesses[game.ProcessControl.Index()] * (1 - rv.PalletOutFactor)

	transportCrash := func(weight float64, processID int) float64 {
		return weight / game.ErrorSum *
			(equipmentCrashChance*game.CrashFactorLoadingEquipment +
				unitCrashChance*game.CrashFactorSecurityDevices +
				rv.AvgErrorChanceProcesses[processID]*game.CrashFactorEmployee)
	}
	transportUnloading := transportCrash(game.ErrorTransportDamageEn, game.ProcessUnloading.Index())
	transportStorage := transportCrash(game.ErrorTransportDamageLa, game.ProcessStorage.Index())
	transportLoading := transportCrash(game.ErrorTransportDamageVe, game.ProcessLoading.Index())

	var cumulative [game.PalletErrorCount]float64
	cumulative[game.PalletErrorDamage] = damage
	cumulative[game.PalletErrorWrongDelivery] = cumulative[game.PalletErrorDamage] + wrongDelivery
	cumulative[game.PalletErrorWrongRetrieval] = cumulative[game.PalletErrorWrongDelivery] + wrongRetrieval
	cumulative[game.PalletErrorTransportUnloading] = cumulative[game.PalletErrorWrongRetrieval] + transportUnloading
	cumulative[game.PalletErrorTransportStorage] = cumulative[game.PalletErrorTransportUnloading] + transportStorage
	cumulative[game.PalletErrorTransportLoading] = cumulative[game.PalletErrorTransportStorage] + transportLoading
	cumulative[game.PalletErrorNone] = 1.0
	return cumulative
}

// drawPalletError draws the damage category of a freshly unloaded pallet
func (e *Engine) drawPalletError(cumulative [game.PalletErrorCount]float64) int {
	random := e.rng.Float64()
	errorState := game.PalletErrorNone
	for i, p := range cumulative {
		if random <= p {
			errorState = i
		}
	}
	return errorState
}

// itFactor returns the transport speed-up of the booked IT level
func itFactor(rv *game.RoundValues) float64 {
	for i, cost := range game.TechnologyCost {
		if rv.ITCosts == cost {
			return game.TechnologyFactor[i]
		}
	}
	return game.TechnologyFactor[0]
}

// takeUpReleaseTime returns the handling seconds per pallet lift, shortened
// by better loading equipment
func takeUpReleaseTime(rv *game.RoundValues) float64 {
	factor := game.LoadingEquipmentFactor[0]
	for i, level := range game.LoadingEquipmentLevel {
		if rv.LoadingEquipmentLevel == level {
			factor = game.LoadingEquipmentFactor[i]
		}
	}
	return game.TimeTakeUpRelease * (2 - factor)
}

// transportSeconds returns the seconds one pallet movement takes, or -1
// when no conveyor is available at the station
func transportSeconds(track, speed, fIT, tPick float64, tRaise int) float64 {
	if speed == 0 {
		return -1
	}
	return track/speed*(2-fIT) + 2*tPick + float64(tRaise)
}

// movePalletCount shifts an article's per-station pallet count
func movePalletCount(state *game.GameState, articleNumber, fromID, toID int) {
	dynamic, err := state.ArticleByNumber(articleNumber)
	if err != nil {
		return
	}
	if fromID > -1 {
		dynamic.PalletCountProcesses[fromID]--
	}
	if toID < game.ProcessCount {
		dynamic.PalletCountProcesses[toID]++
	}
}

// advancePallet moves a pallet to the next station and books the used
// capacity. A pallet that already left the pipeline stays put.
func advancePallet(state *game.GameState, pallet *game.Pallet, seconds float64) {
	next, ok := pallet.Process.Next()
	if !ok {
		return
	}
	rv := state.RoundValues
	processID := pallet.Process.Index()
	pallet.Process = next
	movePalletCount(state, pallet.ArticleNumber, processID, next.Index())
	rv.CapacityProcesses[processID] -= seconds
	rv.PalletsTransportedProcess[processID]++
}

// recordOrderCosts books the purchase and fix costs of an arriving order
func recordOrderCosts(rv *game.RoundValues, state *game.GameState, order *game.Order) {
	index := state.ArticleIndex(order.ArticleNumber)
	if index < 0 {
		return
	}
	rv.OrderCostsArticle[index] += (order.RealPurchasePrice + order.DeliveryCosts) * float64(order.DeliveredQuantity)
	rv.OrderFixCostsArticle[index] += order.FixCosts
	rv.CurrentOrderCosts = float64(order.DeliveredQuantity) * (order.RealPurchasePrice + order.DeliveryCosts)
}

// unloadArrivedOrders turns arrived orders into pallets at the unloading
// station, drawing a damage category for each pallet
func (e *Engine) unloadArrivedOrders(state *game.GameState) {
	rv := state.RoundValues
	cumulative := damageDistribution(rv)
	for _, order := range state.Orders {
		if order.DeliveryRound >= state.Round {
			continue
		}
		recordOrderCosts(rv, state, order)
		for i := 0; i < order.DeliveredQuantity; i++ {
			errorState := e.drawPalletError(cumulative)
			pallet := game.NewPallet(order.ArticleNumber, rv.UnitSecurityDevices, errorState)
			state.Storage.PalletsNotInStorage = append(state.Storage.PalletsNotInStorage, pallet)
			movePalletCount(state, order.ArticleNumber, -1, game.ProcessUnloading.Index())
		}
	}
}

// moveUnloadingToCollection drives pallets from the truck ramp to goods-in
// collection as long as capacity lasts
func (e *Engine) moveUnloadingToCollection(state *game.GameState) {
	rv := state.RoundValues
	fIT := itFactor(rv)
	tPick := takeUpReleaseTime(rv)
	processID := game.ProcessUnloading.Index()

	for _, pallet := range state.Storage.PalletsNotInStorage {
		if pallet.Process != game.ProcessUnloading {
			continue
		}
		seconds := transportSeconds(
			game.TransportTime[0],
			rv.AvgSpeedProcesses[processID],
			fIT, tPick,
			game.LiftLayerDuration[0],
		)
		if pallet.Error == game.PalletErrorTransportUnloading && seconds != -1 {
			seconds += game.TimeCrash
			rv.CrashTimeProcesses[processID] += game.TimeCrash
		}
		if seconds == -1 || rv.CapacityProcesses[processID] < seconds {
			rv.PalletsNotTransportedProcess[processID]++
		} else {
			advancePallet(state, pallet, seconds)
		}
	}
}

// moveCollectionToStorageIn controls and forwards pallets at goods-in. The
// inbound control quota widens each time a deep control fires.
func (e *Engine) moveCollectionToStorageIn(state *game.GameState) {
	rv := state.RoundValues
	processID := game.ProcessCollection.Index()

	controlDistance := -1
	if rv.PalletInFactor != 0 {
		controlDistance = int(math.Floor(1.0 / rv.PalletInFactor))
	}
	controlCounter := controlDistance

	for _, pallet := range state.Storage.PalletsNotInStorage {
		if pallet.Process != game.ProcessCollection {
			continue
		}
		seconds := float64(game.ControlTimeStaticInbound)
		if controlCounter == 1 {
			seconds += game.ControlTimeDynamicInbound
		}
		if rv.CapacityProcesses[processID] < seconds {
			rv.PalletsNotTransportedProcess[processID]++
			continue
		}
		if rv.UnitSecurityDevices {
			seconds += game.USDUnitTime
			rv.USDCost += game.USDCostPerPallet
		}
		advancePallet(state, pallet, seconds)
		if controlCounter == 1 {
			controlDistance++
		}
		controlCounter--
	}
}

// findFreeStockGround picks the slot for an incoming pallet according to
// the storage strategy. A full warehouse grows an overflow slot near the
// aisle entrance.
func findFreeStockGround(storage *game.Storage, pallet *game.Pallet, abc string, strategy int) *game.StockGround {
	for _, ground := range storage.FreeStocks {
		if strategy == 0 ||
			(strategy == 1 && ground.ArticleNumber == pallet.ArticleNumber) ||
			(strategy == 2 && ground.ABC == abc) {
			return ground
		}
	}
	if len(storage.FreeStocks) > 0 {
		return storage.FreeStocks[0]
	}
	overflow := &game.StockGround{
		DistSource:    2.0,
		DistDrain:     2.0,
		DistAvg:       2.0,
		Level:         1,
		ABC:           abc,
		ArticleNumber: pallet.ArticleNumber,
	}
	storage.FreeStocks = append(storage.FreeStocks, overflow)
	return overflow
}

// moveStorageInToSlots stores pallets into slots picked by the incoming
// and storage strategies as long as inbound storage capacity lasts
func (e *Engine) moveStorageInToSlots(state *game.GameState) {
	rv := state.RoundValues
	storage := state.Storage
	fIT := itFactor(rv)
	tPick := takeUpReleaseTime(rv)
	processID := game.ProcessStorage.Index()

	switch rv.StrategyIncoming {
	case 1:
		sort.SliceStable(storage.FreeStocks, func(i, j int) bool {
			return storage.FreeStocks[i].DistSource < storage.FreeStocks[j].DistSource
		})
	case 0:
		e.rng.Shuffle(len(storage.FreeStocks), func(i, j int) {
			storage.FreeStocks[i], storage.FreeStocks[j] = storage.FreeStocks[j], storage.FreeStocks[i]
		})
	}

	for _, pallet := range storage.PalletsNotInStorage {
		if pallet.Process != game.ProcessStorage || pallet.Stored {
			continue
		}
		abc := ""
		if dynamic, err := state.ArticleByNumber(pallet.ArticleNumber); err == nil {
			abc = dynamic.Article.ABCClassification
		}
		ground := findFreeStockGround(storage, pallet, abc, rv.StrategyStorage)
		seconds := transportSeconds(
			ground.DistSource,
			rv.AvgSpeedProcesses[processID],
			fIT, tPick,
			game.LiftLayerDuration[ground.Level],
		)
		if pallet.Error == game.PalletErrorTransportStorage && seconds != -1 {
			seconds += game.TimeCrash
			rv.CrashTimeProcesses[processID] += game.TimeCrash
		}
		if seconds == -1 || rv.CapacityStorageIn < seconds {
			rv.PalletsNotTransportedProcess[processID]++
			rv.NotTransportedStorageIn++
		} else {
			rv.CapacityProcesses[processID] -= seconds
			rv.CapacityStorageIn -= seconds

			if dynamic, err := state.ArticleByNumber(pallet.ArticleNumber); err == nil {
				dynamic.CurrentStock++
			}
			storage.Occupy(ground, pallet)
			pallet.Stored = true
			rv.PalletsTransportedProcess[processID]++
			rv.PalletsTransportedStorageIn++
		}
	}
}

// findStoredPallet returns the first occupied slot holding the wanted
// article, or nil
func findStoredPallet(occStocks []*game.StockGround, articleNumber int) *game.StockGround {
	for _, ground := range occStocks {
		if ground.Pallet != nil && ground.Pallet.ArticleNumber == articleNumber {
			return ground
		}
	}
	return nil
}

// moveSlotsToStorageOut retrieves pallets for open customer jobs according
// to the outgoing strategy as long as outbound storage capacity lasts
func (e *Engine) moveSlotsToStorageOut(state *game.GameState) {
	rv := state.RoundValues
	storage := state.Storage
	fIT := itFactor(rv)
	tPick := takeUpReleaseTime(rv)
	processID := game.ProcessStorage.Index()

	for _, dynamic := range state.ArticleDynamics {
		dynamic.PastConsumption = append(dynamic.PastConsumption, 0)
	}

	switch rv.StrategyOutgoing {
	case 2:
		sort.SliceStable(storage.OccStocks, func(i, j int) bool {
			return storage.OccStocks[i].DistSource < storage.OccStocks[j].DistSource
		})
	case 3:
		e.rng.Shuffle(len(storage.OccStocks), func(i, j int) {
			storage.OccStocks[i], storage.OccStocks[j] = storage.OccStocks[j], storage.OccStocks[i]
		})
	}

	capacityExhausted := false
	for _, job := range state.CustomerJobs {
		dynamic, err := state.ArticleByNumber(job.ArticleNumber)
		if err != nil || dynamic.CurrentStock <= 0 {
			continue
		}

		if capacityExhausted {
			rv.PalletsNotTransportedProcess[processID] += job.Quantity
			rv.NotTransportedStorageOut += job.Quantity
			continue
		}

		retrievals := job.RemainingQuantity
		if dynamic.CurrentStock < retrievals {
			retrievals = dynamic.CurrentStock
		}
		for i := 0; i < retrievals; i++ {
			ground := findStoredPallet(storage.OccStocks, job.ArticleNumber)
			if ground == nil {
				break
			}
			seconds := transportSeconds(
				ground.DistDrain,
				rv.AvgSpeedProcesses[processID],
				fIT, tPick,
				game.LiftLayerDuration[ground.Level],
			)
			if seconds == -1 || seconds > rv.CapacityStorageOut {
				capacityExhausted = true
				rv.NotTransportedStorageOut++
				rv.PalletsNotTransportedProcess[processID]++
				continue
			}
			pallet := ground.Pallet
			job.RemainingQuantity--
			advancePallet(state, pallet, seconds)
			rv.PalletsTransportedStorageOut++
			pallet.DemandRound = job.DemandRound
			dynamic.PastConsumption[len(dynamic.PastConsumption)-1]++

			dynamic.CurrentStock--
			pallet.Stored = false
			storage.Release(ground)
			storage.PalletsNotInStorage = append(storage.PalletsNotInStorage, pallet)
			rv.CapacityStorageOut -= seconds
		}
	}
}

// moveStorageOutToControl controls retrieved pallets on their way to the
// loading ramp. The outbound control quota cycles.
func (e *Engine) moveStorageOutToControl(state *game.GameState) {
	rv := state.RoundValues
	storage := state.Storage
	processID := game.ProcessControl.Index()

	sort.SliceStable(storage.PalletsNotInStorage, func(i, j int) bool {
		return storage.PalletsNotInStorage[i].DemandRound < storage.PalletsNotInStorage[j].DemandRound
	})

	controlDistance := -1
	if rv.PalletOutFactor != 0 {
		controlDistance = int(math.Floor(1.0 / rv.PalletOutFactor))
	}
	controlCounter := controlDistance

	for _, pallet := range storage.PalletsNotInStorage {
		if pallet.Process != game.ProcessControl {
			continue
		}
		seconds := float64(game.ControlTimeStaticOutbound)
		if controlCounter == 1 {
			seconds += game.ControlTimeDynamicOutbound
		}
		if rv.CapacityProcesses[processID] < seconds {
			rv.PalletsNotTransportedProcess[processID]++
		} else {
			advancePallet(state, pallet, seconds)
			if controlCounter == 1 {
				controlCounter = controlDistance
			} else {
				controlCounter--
			}
		}
	}
}

// moveLoadingToTruck ships controlled pallets to customers, booking sales
// income and delivery punctuality per pallet
func (e *Engine) moveLoadingToTruck(state *game.GameState) {
	rv := state.RoundValues
	fIT := itFactor(rv)
	tPick := takeUpReleaseTime(rv)
	processID := game.ProcessLoading.Index()

	for _, pallet := range state.Storage.PalletsNotInStorage {
		if pallet.Process != game.ProcessLoading {
			continue
		}
		seconds := transportSeconds(
			game.TransportTime[1],
			rv.AvgSpeedProcesses[processID],
			fIT, tPick,
			game.LiftLayerDuration[0],
		)
		if pallet.Error == game.PalletErrorTransportLoading && seconds != -1 {
			seconds += game.TimeCrash
			rv.CrashTimeProcesses[processID] += game.TimeCrash
		}
		if seconds == -1 || rv.CapacityProcesses[processID] < seconds {
			rv.PalletsNotTransportedProcess[processID]++
			continue
		}

		var job *game.CustomerJob
		for _, candidate := range state.CustomerJobs {
			if candidate.ArticleNumber == pallet.ArticleNumber && candidate.Quantity > 0 {
				job = candidate
				break
			}
		}
		if job == nil {
			rv.PalletsNotTransportedProcess[processID]++
			continue
		}

		job.Quantity--

		advancePallet(state, pallet, seconds)
		rv.PalletQuantityPerErrors[pallet.Error]++

		if job.DemandRound >= state.Round-1 {
			rv.AccurateDeliveredPallets++
		} else {
			rv.LateDeliveredPallets++
		}

		index := state.ArticleIndex(job.ArticleNumber)
		if index >= 0 {
			rv.SalesIncomeArticle[index] += state.ArticleDynamics[index].Article.SalesPrice
		}
	}
}

// removeFinishedJobs counts accurately and lately finished jobs and drops
// completed ones
func removeFinishedJobs(state *game.GameState) {
	rv := state.RoundValues
	rv.CurrentCustomerJobs = len(state.CustomerJobs)
	kept := state.CustomerJobs[:0]
	for _, job := range state.CustomerJobs {
		if job.Quantity == 0 {
			if job.DemandRound >= state.Round-1 {
				rv.AccurateFinishedJobs++
			} else {
				rv.LateFinishedJobs++
			}
			continue
		}
		kept = append(kept, job)
	}
	state.CustomerJobs = kept
}

// calculateFlow runs the pallet flow stage: arriving orders become pallets
// that move through unloading, collection, storage, control and loading as
// far as the round's capacity carries them.
func (e *Engine) calculateFlow(state *game.GameState) {
	rv := state.RoundValues

	rv.SalesIncomeArticle = [game.ArticleCount]float64{}
	rv.PalletsTransportedProcess = [game.ProcessCount]int{}
	rv.PalletsNotTransportedProcess = [game.ProcessCount]int{}
	rv.PalletsTransportedStorageIn = 0
	rv.PalletsTransportedStorageOut = 0
	rv.NotTransportedStorageIn = 0
	rv.NotTransportedStorageOut = 0
	rv.PalletQuantityPerErrors = [game.PalletErrorCount]int{}
	rv.OrderCostsArticle = [game.ArticleCount]float64{}
	rv.OrderFixCostsArticle = [game.ArticleCount]float64{}
	rv.AccurateFinishedJobs = 0
	rv.LateFinishedJobs = 0
	rv.AccurateDeliveredPallets = 0
	rv.LateDeliveredPallets = 0
	rv.CrashTimeProcesses = [game.ProcessCount]int{}
	rv.USDCost = 0
	rv.CurrentOrderCosts = 0

	for _, order := range state.Orders {
		if order.DeliveryRound < state.Round {
			state.PushMessage(game.NewOrderArrivedMessage(order, state.Round))
		}
	}

	e.unloadArrivedOrders(state)

	keptOrders := state.Orders[:0]
	for _, order := range state.Orders {
		if order.DeliveryRound >= state.Round {
			keptOrders = append(keptOrders, order)
		}
	}
	state.Orders = keptOrders

	e.moveUnloadingToCollection(state)
	e.moveCollectionToStorageIn(state)
	e.moveStorageInToSlots(state)

	keptPallets := state.Storage.PalletsNotInStorage[:0]
	for _, pallet := range state.Storage.PalletsNotInStorage {
		if !pallet.Stored {
			keptPallets = append(keptPallets, pallet)
		}
	}
	state.Storage.PalletsNotInStorage = keptPallets

	e.moveSlotsToStorageOut(state)
	e.moveStorageOutToControl(state)
	e.moveLoadingToTruck(state)

	keptPallets = state.Storage.PalletsNotInStorage[:0]
	for _, pallet := range state.Storage.PalletsNotInStorage {
		if pallet.Process != game.ProcessDone {
			keptPallets = append(keptPallets, pallet)
		}
	}
	state.Storage.PalletsNotInStorage = keptPallets

	removeFinishedJobs(state)
}

// prepareFlow warns the player about articles that ran out of stock
func (e *Engine) prepareFlow(state *game.GameState) {
	for _, dynamic := range state.ArticleDynamics {
		if dynamic.PalletCountProcesses[game.ProcessStorage.Index()] == 0 {
			state.PushMessage(game.NewOutOfStockMessage(dynamic.Article.ArticleNumber, state.Round))
		}
	}
}
