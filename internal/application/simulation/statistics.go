package simulation

import (
	"github.com/lbruckner/palletsim/internal/domain/game"
)

// calculateStatistics updates the round's closing tallies: overdue jobs and
// slot occupancy.
func (e *Engine) calculateStatistics(state *game.GameState) {
	rv := state.RoundValues

	lateJobs := 0
	for _, job := range state.CustomerJobs {
		if job.DemandRound < state.Round {
			lateJobs++
		}
	}
	rv.LateJobs = lateJobs

	rv.FreeStorage = len(state.Storage.FreeStocks)
	rv.OccStorage = len(state.Storage.OccStocks)
}
