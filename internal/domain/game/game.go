package game

import (
	"time"

	"github.com/google/uuid"
)

// Game is the lifecycle record of one running game: its name, its players'
// identity and the references to the current and the previous round
// snapshot. Every round snapshot stays in the store; the reference pair
// makes the one-step revert cheap, repeated reverts resolve older
// snapshots by round number.
type Game struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	PlayerID  string    `json:"player_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CurrentStateID  string `json:"current_state_id"`
	PreviousStateID string `json:"previous_state_id"`
}

// NewGame creates the lifecycle record for a fresh game
func NewGame(name, playerID string, now time.Time) *Game {
	return &Game{
		ID:        uuid.NewString(),
		Name:      name,
		PlayerID:  playerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AdvanceTo registers a new current snapshot, demoting the old one to the
// revert slot
func (g *Game) AdvanceTo(stateID string, now time.Time) {
	g.PreviousStateID = g.CurrentStateID
	g.CurrentStateID = stateID
	g.UpdatedAt = now
}

// CanRevert reports whether a one-round rollback is possible
func (g *Game) CanRevert(currentRound int) bool {
	return g.PreviousStateID != "" && currentRound > InitialRound
}

// RevertTo makes the retained snapshot current again. The new previous
// reference must be resolved by the caller from the snapshot store.
func (g *Game) RevertTo(previousStateID string, now time.Time) {
	g.CurrentStateID = g.PreviousStateID
	g.PreviousStateID = previousStateID
	g.UpdatedAt = now
}
