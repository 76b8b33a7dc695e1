package game

import "context"

// GameRepository defines persistence operations for game lifecycle records
type GameRepository interface {
	// Save persists a new or updated game record
	Save(ctx context.Context, g *Game) error

	// FindByID retrieves a game by its ID
	FindByID(ctx context.Context, gameID string) (*Game, error)

	// FindAll retrieves all games, most recently updated first
	FindAll(ctx context.Context) ([]*Game, error)

	// Delete removes a game record
	Delete(ctx context.Context, gameID string) error
}

// StateRepository defines persistence operations for round snapshots
type StateRepository interface {
	// Save persists a snapshot
	Save(ctx context.Context, state *GameState) error

	// FindByID retrieves a snapshot by its ID
	FindByID(ctx context.Context, stateID string) (*GameState, error)

	// FindByGameAndRound retrieves the snapshot of a specific round
	FindByGameAndRound(ctx context.Context, gameID string, round int) (*GameState, error)

	// FindAllByGame retrieves every stored snapshot of a game in round order
	FindAllByGame(ctx context.Context, gameID string) ([]*GameState, error)

	// Delete removes a snapshot
	Delete(ctx context.Context, stateID string) error

	// DeleteByGame removes every snapshot of a game
	DeleteByGame(ctx context.Context, gameID string) error
}

// RoundNotifier publishes round lifecycle events to connected clients
type RoundNotifier interface {
	// RoundStarted announces that a round advance began for the game
	RoundStarted(gameID string, round int)

	// RoundCompleted announces that the new snapshot is available
	RoundCompleted(gameID string, round int)
}
