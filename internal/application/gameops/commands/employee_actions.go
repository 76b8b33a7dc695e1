package commands

import "github.com/lbruckner/palletsim/internal/domain/game"

// HireEmployeeCommand moves an applicant from the store into the workforce
type HireEmployeeCommand struct {
	GameID       string
	EmployeeID   string
	Process      int
	ContractType int
}

func (c *HireEmployeeCommand) gameID() string { return c.GameID }

func (c *HireEmployeeCommand) apply(s *game.GameState) error {
	return s.HireEmployee(c.EmployeeID, game.Process(c.Process), c.ContractType)
}

// TerminateEmployeeCommand gives notice to an employee
type TerminateEmployeeCommand struct {
	GameID     string
	EmployeeID string
}

func (c *TerminateEmployeeCommand) gameID() string { return c.GameID }

func (c *TerminateEmployeeCommand) apply(s *game.GameState) error {
	return s.TerminateEmployee(c.EmployeeID)
}

// TrainEmployeeCommand books a training for an employee
type TrainEmployeeCommand struct {
	GameID        string
	EmployeeID    string
	Qualification int
}

func (c *TrainEmployeeCommand) gameID() string { return c.GameID }

func (c *TrainEmployeeCommand) apply(s *game.GameState) error {
	return s.TrainEmployee(c.EmployeeID, c.Qualification)
}

// AssignEmployeeCommand reassigns an employee to another station
type AssignEmployeeCommand struct {
	GameID     string
	EmployeeID string
	Process    int
}

func (c *AssignEmployeeCommand) gameID() string { return c.GameID }

func (c *AssignEmployeeCommand) apply(s *game.GameState) error {
	return s.UpdateEmployeeProcess(c.EmployeeID, game.Process(c.Process))
}
