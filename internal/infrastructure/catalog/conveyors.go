package catalog

import (
	"github.com/google/uuid"

	"github.com/lbruckner/palletsim/internal/domain/game"
)

type conveyorSeed struct {
	name            string
	forkliftPermit  bool
	conveyorID      int
	capacity        float64
	maintenanceCost float64
	price           float64
	speed           float64
	timeToDelivery  int
	timeToRepair    int
	useInStorage    bool
}

var conveyorModels = []conveyorSeed{
	{"Handhubwagen", false, 1, 1.0, 20.0, 450.0, 0.8, 0, 2700, false},
	{"Elektro-Hubwagen", false, 2, 1.0, 45.0, 4200.0, 1.4, 1, 3600, false},
	{"Elektro-Gabelstapler", true, 3, 1.0, 60.0, 28500.0, 2.2, 1, 4500, false},
	{"Schubmaststapler", true, 4, 1.0, 75.0, 36000.0, 1.8, 2, 5400, true},
	{"Schmalgangstapler", true, 5, 1.0, 90.0, 48000.0, 1.6, 2, 5400, true},
}

func newConveyor(seed conveyorSeed) *game.Conveyor {
	return &game.Conveyor{
		ID:                  uuid.NewString(),
		Name:                seed.name,
		NeedsForkliftPermit: seed.forkliftPermit,
		ConveyorID:          seed.conveyorID,
		Capacity:            seed.capacity,
		MaintenanceCost:     seed.maintenanceCost,
		Price:               seed.price,
		Speed:               seed.speed,
		TimeToDelivery:      seed.timeToDelivery,
		TimeToRepair:        seed.timeToRepair,
		UseInStorage:        seed.useInStorage,
	}
}

type fleetSeed struct {
	model       int
	condition   int
	process     game.Process
	maintenance bool
}

// The opening fleet: one forklift at goods-in, three reach trucks in the
// storage area, one forklift at goods-out.
var fleetSeeds = []fleetSeed{
	{2, 92, game.ProcessUnloading, true},
	{3, 88, game.ProcessStorage, true},
	{3, 76, game.ProcessStorage, false},
	{4, 95, game.ProcessStorage, true},
	{2, 83, game.ProcessLoading, false},
}

// Conveyors builds the opening fleet. Every unit was bought long before the
// first playable round, so all of them are delivered and working.
func Conveyors() []*game.ConveyorDynamic {
	fleet := make([]*game.ConveyorDynamic, 0, len(fleetSeeds))
	for _, seed := range fleetSeeds {
		model := conveyorModels[seed.model]
		conveyor := newConveyor(model)
		fleet = append(fleet, &game.ConveyorDynamic{
			ID:                 uuid.NewString(),
			Conveyor:           conveyor,
			Condition:          seed.condition,
			Process:            seed.process,
			MaintenanceEnabled: seed.maintenance,
			CurrentValue:       conveyor.Price * (float64(seed.condition) / 100.0) * game.ConveyorSaleFactor,
			OverhaulCost:       conveyor.Price * 0.1,
			Status:             game.ConveyorStatusWorking,
			RoundBought:        0,
		})
	}
	return fleet
}

// ConveyorStore builds the purchasable model list
func ConveyorStore() []*game.ConveyorDynamic {
	store := make([]*game.ConveyorDynamic, 0, len(conveyorModels))
	for _, seed := range conveyorModels {
		conveyor := newConveyor(seed)
		store = append(store, &game.ConveyorDynamic{
			ID:           uuid.NewString(),
			Conveyor:     conveyor,
			Condition:    100,
			Process:      game.ProcessUnloading,
			CurrentValue: conveyor.Price,
			OverhaulCost: conveyor.Price * 0.1,
			Status:       game.ConveyorStatusWorking,
		})
	}
	return store
}
