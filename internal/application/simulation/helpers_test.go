package simulation

import (
	"time"

	"github.com/google/uuid"
	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/domain/shared"
)

// stubApplicants hands out indistinguishable full-time applicants
type stubApplicants struct{}

func (stubApplicants) NextApplicant() *game.EmployeeDynamic {
	return game.NewEmployeeDynamic(&game.Employee{
		ID:              uuid.NewString(),
		Name:            "Alex Schmidt",
		Age:             30,
		EmploymentRound: -1,
		ContractType:    game.ContractFullTime,
		EndRound:        1000,
	}, 1)
}

func newTestEngine(rng shared.Random) *Engine {
	return NewEngine(rng, shared.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)), stubApplicants{})
}

func newTestArticle(articleNumber int) *game.ArticleDynamic {
	return &game.ArticleDynamic{
		ID: uuid.NewString(),
		Article: &game.Article{
			ID:                uuid.NewString(),
			Name:              "Kupferrohr 22mm",
			ABCClassification: "A",
			ArticleNumber:     articleNumber,
			PurchasePrice:     40.0,
			SalesPrice:        75.0,
			FixOrderCost:      90.0,
			Discount: []game.DiscountLevel{
				{Level: 1, MinQuantity: 200, PurchasePrice: 38.0},
				{Level: 2, MinQuantity: 400, PurchasePrice: 36.8},
			},
			Delivery: []game.DeliveryType{
				{Duration: 2, Price: 0},
				{Duration: 1, Price: 450},
			},
		},
		PastConsumption: []int{30, 30, 30, 30, 30},
	}
}

func newTestWorker(name string, qualification int, process game.Process) *game.EmployeeDynamic {
	d := game.NewEmployeeDynamic(&game.Employee{
		ID:              uuid.NewString(),
		Name:            name,
		Age:             35,
		EmploymentRound: 1,
		ContractType:    game.ContractFullTime,
		EndRound:        1000,
	}, qualification)
	d.Process = process
	return d
}

func newTestConveyor(name string, process game.Process, condition int) *game.ConveyorDynamic {
	return &game.ConveyorDynamic{
		ID: uuid.NewString(),
		Conveyor: &game.Conveyor{
			ID:              uuid.NewString(),
			Name:            name,
			ConveyorID:      3,
			MaintenanceCost: 60.0,
			Price:           28500.0,
			Speed:           4.0,
			TimeToDelivery:  1,
			TimeToRepair:    2700,
		},
		Condition:          condition,
		Process:            process,
		MaintenanceEnabled: true,
		CurrentValue:       28500.0 * float64(condition) / 100.0 * game.ConveyorSaleFactor,
		OverhaulCost:       1800.0,
		RoundBought:        0,
	}
}

// newFlowState builds a minimal company around one article with generous
// capacity at every station
func newFlowState() *game.GameState {
	state := &game.GameState{
		ID:     uuid.NewString(),
		GameID: uuid.NewString(),
		Round:  game.InitialRound + 1,
		Storage: &game.Storage{
			FreeStocks: []*game.StockGround{
				{ID: uuid.NewString(), DistSource: 54.0, DistDrain: 28.0, DistAvg: 41.0, Level: 0, ABC: "A", ArticleNumber: game.ArticleNumberBase},
				{ID: uuid.NewString(), DistSource: 55.0, DistDrain: 29.0, DistAvg: 42.0, Level: 1, ABC: "A", ArticleNumber: game.ArticleNumberBase},
			},
		},
		RoundValues:     game.NewRoundValues(),
		ArticleDynamics: []*game.ArticleDynamic{newTestArticle(game.ArticleNumberBase)},
	}
	rv := state.RoundValues
	for i := 0; i < game.ProcessCount; i++ {
		rv.CapacityProcesses[i] = 100000
		rv.CapacityOverallProcesses[i] = 100000
		rv.AvgSpeedProcesses[i] = 4.0
	}
	rv.CapacityStorageIn = 50000
	rv.CapacityStorageOut = 50000
	rv.UnitSecurityDevices = false
	rv.PalletInFactor = 0
	rv.PalletOutFactor = 0
	rv.StrategyIncoming = 2
	rv.StrategyOutgoing = 0
	rv.StrategyStorage = 0
	return state
}
