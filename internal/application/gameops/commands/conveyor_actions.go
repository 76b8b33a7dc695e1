package commands

import "github.com/lbruckner/palletsim/internal/domain/game"

// BuyConveyorCommand orders a unit of a store model
type BuyConveyorCommand struct {
	GameID     string
	ConveyorID string
}

func (c *BuyConveyorCommand) gameID() string { return c.GameID }

func (c *BuyConveyorCommand) apply(s *game.GameState) error {
	return s.BuyConveyor(c.ConveyorID)
}

// SellConveyorCommand marks a conveyor for sale
type SellConveyorCommand struct {
	GameID     string
	ConveyorID string
}

func (c *SellConveyorCommand) gameID() string { return c.GameID }

func (c *SellConveyorCommand) apply(s *game.GameState) error {
	return s.SellConveyor(c.ConveyorID)
}

// OverhaulConveyorCommand books an overhaul for the next round
type OverhaulConveyorCommand struct {
	GameID     string
	ConveyorID string
}

func (c *OverhaulConveyorCommand) gameID() string { return c.GameID }

func (c *OverhaulConveyorCommand) apply(s *game.GameState) error {
	return s.OverhaulConveyor(c.ConveyorID)
}

// ToggleMaintenanceCommand flips the maintenance contract of a conveyor
type ToggleMaintenanceCommand struct {
	GameID     string
	ConveyorID string
}

func (c *ToggleMaintenanceCommand) gameID() string { return c.GameID }

func (c *ToggleMaintenanceCommand) apply(s *game.GameState) error {
	return s.ToggleConveyorMaintenance(c.ConveyorID)
}

// AssignConveyorCommand reassigns a conveyor to another station
type AssignConveyorCommand struct {
	GameID     string
	ConveyorID string
	Process    int
}

func (c *AssignConveyorCommand) gameID() string { return c.GameID }

func (c *AssignConveyorCommand) apply(s *game.GameState) error {
	return s.UpdateConveyorProcess(c.ConveyorID, game.Process(c.Process))
}
