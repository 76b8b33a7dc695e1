package simulation

import (
	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/domain/shared"
)

// ApplicantSource produces fresh applicants for the hiring store. The
// engine tops the store up at the end of every round.
type ApplicantSource interface {
	NextApplicant() *game.EmployeeDynamic
}

// Engine advances a company snapshot by one round. All stochastic draws go
// through the injected random source, so a seeded engine replays the same
// round deterministically.
type Engine struct {
	rng        shared.Random
	clock      shared.Clock
	applicants ApplicantSource
}

// NewEngine creates a round engine
func NewEngine(rng shared.Random, clock shared.Clock, applicants ApplicantSource) *Engine {
	return &Engine{
		rng:        rng,
		clock:      clock,
		applicants: applicants,
	}
}

// AdvanceRound runs the full round pipeline on a deep copy of the previous
// snapshot and returns the new snapshot. The previous snapshot is never
// mutated. The stage order is load-bearing: every stage reads values the
// stages before it wrote this round.
func (e *Engine) AdvanceRound(prev *game.GameState) (*game.GameState, error) {
	if prev.RoundValues.GameState == game.GameStateEnd {
		return nil, &game.ErrGameOver{GameID: prev.GameID}
	}

	state := prev.Clone(e.clock.Now())
	state.Round++

	e.calculateEmployees(state)
	e.calculateConveyors(state)
	e.calculateCapacity(state)
	e.calculateFlow(state)
	e.calculateAnalytics(state)
	e.calculateLedger(state)
	e.calculateDemand(state)
	e.calculateStatistics(state)

	e.prepareConveyors(state)
	e.prepareEmployees(state)
	e.prepareFlow(state)
	e.prepareLedger(state)

	e.fillEmployeeStore(state)

	return state, nil
}

// fillEmployeeStore tops the hiring store back up to its full size
func (e *Engine) fillEmployeeStore(state *game.GameState) {
	for len(state.EmployeeStore) < game.EmployeeStoreSize {
		state.EmployeeStore = append(state.EmployeeStore, e.applicants.NextApplicant())
	}
}
