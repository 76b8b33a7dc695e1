package simulation

import (
	"testing"

	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestSatisfactionFactor(t *testing.T) {
	tests := []struct {
		satisfaction float64
		want         float64
	}{
		{satisfaction: 5, want: -1.0},
		{satisfaction: 50, want: -0.2},
		{satisfaction: 75, want: 0.4},
		{satisfaction: 99, want: 1.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, satisfactionFactor(tt.satisfaction))
	}
}

func TestCalculateDemand_HappyCustomersGrowTheQuotaCapped(t *testing.T) {
	// Arrange: satisfaction 99 yields the full factor, capped at 20
	state := newFlowState()
	rv := state.RoundValues
	rv.CustomerSatisfaction = 99
	rv.PMax = 3
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateDemand(state)

	// Assert
	assert.Equal(t, 23, rv.PMax)
}

func TestCalculateDemand_UnhappyCustomersShrinkTheQuota(t *testing.T) {
	// Arrange: satisfaction 50 yields floor(-0.2 * 25) = -5
	state := newFlowState()
	rv := state.RoundValues
	rv.CustomerSatisfaction = 50
	rv.PMax = 10
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateDemand(state)

	// Assert: exhausted draws return zero, so every job wants one pallet
	// of the first article
	assert.Equal(t, 5, rv.PMax)
	assert.Len(t, state.CustomerJobs, 5)
	for _, job := range state.CustomerJobs {
		assert.Equal(t, game.ArticleNumberBase, job.ArticleNumber)
		assert.Equal(t, 1, job.Quantity)
		assert.Equal(t, state.Round, job.DemandRound)
	}
}

func TestCalculateDemand_DrawsFollowTheDistributions(t *testing.T) {
	// Arrange: one job; the article draw lands in the third bracket, the
	// quantity draw in the fourth
	state := newFlowState()
	rv := state.RoundValues
	rv.CustomerSatisfaction = 99
	rv.PMax = -20 + 1
	engine := newTestEngine(&shared.ScriptedRandom{Floats: []float64{0.55, 0.80}})

	// Act
	engine.calculateDemand(state)

	// Assert
	assert.Len(t, state.CustomerJobs, 1)
	assert.Equal(t, game.ArticleNumberBase+2, state.CustomerJobs[0].ArticleNumber)
	assert.Equal(t, 4, state.CustomerJobs[0].Quantity)
}
