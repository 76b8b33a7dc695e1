package game

import "github.com/google/uuid"

// Conveyor operating status codes
const (
	ConveyorStatusSold    = -1
	ConveyorStatusWorking = 0
	ConveyorStatusBroken  = 1
	ConveyorStatusScrap   = 2
)

// Conveyor holds the model data of a piece of transport equipment
type Conveyor struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	NeedsForkliftPermit bool    `json:"needs_forklift_permit"`
	ConveyorID          int     `json:"conveyor_id"`
	Capacity            float64 `json:"capacity"`
	MaintenanceCost     float64 `json:"maintenance_cost"`
	Price               float64 `json:"price"`
	Speed               float64 `json:"speed"`
	TimeToDelivery      int     `json:"time_to_delivery"`
	TimeToRepair        int     `json:"time_to_repair"`
	UseInStorage        bool    `json:"use_in_storage"`
}

// ConveyorDynamic is the per-round state of one conveyor unit
type ConveyorDynamic struct {
	ID                 string    `json:"id"`
	Conveyor           *Conveyor `json:"conveyor"`
	Condition          int       `json:"condition"`
	Process            Process   `json:"process"`
	Overhaul           bool      `json:"overhaul"`
	MaintenanceEnabled bool      `json:"maintenance_enabled"`
	CurrentValue       float64   `json:"current_value"`
	OverhaulCost       float64   `json:"overhaul_cost"`
	Status             int       `json:"status"`
	RoundBought        int       `json:"round_bought"`
	Sold               bool      `json:"sold"`
}

// DeliveryRound returns the round in which the ordered unit arrives on site
func (d *ConveyorDynamic) DeliveryRound() int {
	return d.RoundBought + d.Conveyor.TimeToDelivery
}

// IsDelivered reports whether the unit has arrived before the given round
func (d *ConveyorDynamic) IsDelivered(round int) bool {
	return d.DeliveryRound() < round
}

// IsReady reports whether the unit can work in the given round: it has
// arrived, is not sold, and its condition is above the scrap limit.
func (d *ConveyorDynamic) IsReady(round int) bool {
	return d.IsDelivered(round) && !d.Sold && d.Condition > ConveyorScrapLimit
}

// Age returns the number of rounds since purchase
func (d *ConveyorDynamic) Age(round int) int {
	return round - d.RoundBought
}

// ResaleValue returns the price the unit fetches when sold in its current
// condition
func (d *ConveyorDynamic) ResaleValue() float64 {
	return d.Conveyor.Price * (float64(d.Condition) / 100.0) * ConveyorSaleFactor
}

// Clone returns a deep copy of the dynamic and its conveyor
func (d *ConveyorDynamic) Clone() *ConveyorDynamic {
	conv := *d.Conveyor
	clone := *d
	clone.Conveyor = &conv
	return &clone
}

// CloneForPurchase copies a store model into a fleet unit bought in the
// given round
func (d *ConveyorDynamic) CloneForPurchase(round int) *ConveyorDynamic {
	clone := d.Clone()
	clone.ID = uuid.NewString()
	clone.Conveyor.ID = uuid.NewString()
	clone.RoundBought = round
	return clone
}
