package commands

import "github.com/lbruckner/palletsim/internal/domain/game"

// SetOvertimeCommand sets the overtime hours of one station
type SetOvertimeCommand struct {
	GameID  string
	Process int
	Hours   int
}

func (c *SetOvertimeCommand) gameID() string { return c.GameID }

func (c *SetOvertimeCommand) apply(s *game.GameState) error {
	return s.SetOvertime(game.Process(c.Process), c.Hours)
}

// SetClimateInvestmentCommand sets the per-round work climate budget
type SetClimateInvestmentCommand struct {
	GameID string
	Amount int
}

func (c *SetClimateInvestmentCommand) gameID() string { return c.GameID }

func (c *SetClimateInvestmentCommand) apply(s *game.GameState) error {
	s.SetClimateInvestment(c.Amount)
	return nil
}

// UpdateServicesCommand replaces the set of booked information modules
type UpdateServicesCommand struct {
	GameID   string
	Services []int
}

func (c *UpdateServicesCommand) gameID() string { return c.GameID }

func (c *UpdateServicesCommand) apply(s *game.GameState) error {
	s.UpdateServices(c.Services)
	return nil
}

// UpdateTechnologyCommand books an IT level
type UpdateTechnologyCommand struct {
	GameID string
	Level  int
}

func (c *UpdateTechnologyCommand) gameID() string { return c.GameID }

func (c *UpdateTechnologyCommand) apply(s *game.GameState) error {
	return s.UpdateTechnology(c.Level)
}

// UpdateLoadingEquipmentCommand books a loading equipment cost level
type UpdateLoadingEquipmentCommand struct {
	GameID    string
	CostLevel int
}

func (c *UpdateLoadingEquipmentCommand) gameID() string { return c.GameID }

func (c *UpdateLoadingEquipmentCommand) apply(s *game.GameState) error {
	s.UpdateLoadingEquipmentLevel(c.CostLevel)
	return nil
}

// UpdateStorageDistributionCommand sets the inbound share of the storage
// capacity
type UpdateStorageDistributionCommand struct {
	GameID string
	Factor float64
}

func (c *UpdateStorageDistributionCommand) gameID() string { return c.GameID }

func (c *UpdateStorageDistributionCommand) apply(s *game.GameState) error {
	s.UpdateStorageDistribution(c.Factor)
	return nil
}

// UpdateInboundControlCommand sets the goods-in inspection rate
type UpdateInboundControlCommand struct {
	GameID string
	Factor float64
}

func (c *UpdateInboundControlCommand) gameID() string { return c.GameID }

func (c *UpdateInboundControlCommand) apply(s *game.GameState) error {
	s.UpdateInboundControl(c.Factor)
	return nil
}

// UpdateOutboundControlCommand sets the goods-out inspection rate
type UpdateOutboundControlCommand struct {
	GameID string
	Factor float64
}

func (c *UpdateOutboundControlCommand) gameID() string { return c.GameID }

func (c *UpdateOutboundControlCommand) apply(s *game.GameState) error {
	s.UpdateOutboundControl(c.Factor)
	return nil
}

// UpdateSecurityDevicesCommand toggles the use of unit security devices
type UpdateSecurityDevicesCommand struct {
	GameID  string
	Enabled bool
}

func (c *UpdateSecurityDevicesCommand) gameID() string { return c.GameID }

func (c *UpdateSecurityDevicesCommand) apply(s *game.GameState) error {
	s.UpdateUnitSecurityDevices(c.Enabled)
	return nil
}

// UpdateIncomingStrategyCommand sets the slot selection strategy at
// storage-in
type UpdateIncomingStrategyCommand struct {
	GameID   string
	Strategy int
}

func (c *UpdateIncomingStrategyCommand) gameID() string { return c.GameID }

func (c *UpdateIncomingStrategyCommand) apply(s *game.GameState) error {
	s.UpdateIncomingStrategy(c.Strategy)
	return nil
}

// UpdateStorageStrategyCommand sets the slot assignment strategy of the
// storage
type UpdateStorageStrategyCommand struct {
	GameID   string
	Strategy int
}

func (c *UpdateStorageStrategyCommand) gameID() string { return c.GameID }

func (c *UpdateStorageStrategyCommand) apply(s *game.GameState) error {
	s.UpdateStorageStrategy(c.Strategy)
	return nil
}

// UpdateOutgoingStrategyCommand sets the slot selection strategy at
// storage-out
type UpdateOutgoingStrategyCommand struct {
	GameID   string
	Strategy int
}

func (c *UpdateOutgoingStrategyCommand) gameID() string { return c.GameID }

func (c *UpdateOutgoingStrategyCommand) apply(s *game.GameState) error {
	s.UpdateOutgoingStrategy(c.Strategy)
	return nil
}

// InitiateABCAnalysisCommand books a one-shot ABC analysis for this round
type InitiateABCAnalysisCommand struct {
	GameID string
}

func (c *InitiateABCAnalysisCommand) gameID() string { return c.GameID }

func (c *InitiateABCAnalysisCommand) apply(s *game.GameState) error {
	s.InitiateABCAnalysis()
	return nil
}

// InitiateABCZoningCommand books a one-shot ABC zoning for this round
type InitiateABCZoningCommand struct {
	GameID string
}

func (c *InitiateABCZoningCommand) gameID() string { return c.GameID }

func (c *InitiateABCZoningCommand) apply(s *game.GameState) error {
	s.InitiateABCZoning()
	return nil
}
