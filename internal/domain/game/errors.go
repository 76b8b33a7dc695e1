package game

import "fmt"

// ErrInvalidProcess represents an out-of-range station index
type ErrInvalidProcess struct {
	Value int
}

func (e *ErrInvalidProcess) Error() string {
	return fmt.Sprintf("invalid process: %d", e.Value)
}

// ErrEmployeeNotFound represents a lookup miss on an employee
type ErrEmployeeNotFound struct {
	EmployeeID string
}

func (e *ErrEmployeeNotFound) Error() string {
	return fmt.Sprintf("employee not found: %s", e.EmployeeID)
}

// ErrConveyorNotFound represents a lookup miss on a conveyor
type ErrConveyorNotFound struct {
	ConveyorID string
}

func (e *ErrConveyorNotFound) Error() string {
	return fmt.Sprintf("conveyor not found: %s", e.ConveyorID)
}

// ErrOrderNotFound represents a lookup miss on a supply order
type ErrOrderNotFound struct {
	OrderID string
}

func (e *ErrOrderNotFound) Error() string {
	return fmt.Sprintf("order not found: %s", e.OrderID)
}

// ErrArticleNotFound represents a lookup miss on an article
type ErrArticleNotFound struct {
	ArticleNumber int
}

func (e *ErrArticleNotFound) Error() string {
	return fmt.Sprintf("article not found: %d", e.ArticleNumber)
}

// ErrInvalidContractType represents a hire with an unknown contract code
type ErrInvalidContractType struct {
	ContractType int
}

func (e *ErrInvalidContractType) Error() string {
	return fmt.Sprintf("invalid contract type: %d", e.ContractType)
}

// ErrGameOver represents an action on a game that already ended
type ErrGameOver struct {
	GameID string
}

func (e *ErrGameOver) Error() string {
	return fmt.Sprintf("game has ended: %s", e.GameID)
}

// ErrGameNotFound represents a lookup miss on a game
type ErrGameNotFound struct {
	GameID string
}

func (e *ErrGameNotFound) Error() string {
	return fmt.Sprintf("game not found: %s", e.GameID)
}

// ErrStateNotFound represents a lookup miss on a round snapshot
type ErrStateNotFound struct {
	GameID string
	Round  int
}

func (e *ErrStateNotFound) Error() string {
	return fmt.Sprintf("game state not found: game=%s round=%d", e.GameID, e.Round)
}

// ErrRevertNotPossible represents a revert on a game without history
type ErrRevertNotPossible struct {
	Round int
}

func (e *ErrRevertNotPossible) Error() string {
	return fmt.Sprintf("cannot revert round %d: no previous round available", e.Round)
}
