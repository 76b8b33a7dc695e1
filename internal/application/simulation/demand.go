package simulation

import (
	"math"

	"github.com/lbruckner/palletsim/internal/domain/game"
)

// satisfactionFactor maps the customer satisfaction to the demand growth
// factor
func satisfactionFactor(satisfaction float64) float64 {
	for i, level := range game.CustomerSatisfactionLevel {
		if satisfaction <= float64(level) {
			return game.CustomerSatisfactionFactor[i]
		}
	}
	return game.CustomerSatisfactionFactor[len(game.CustomerSatisfactionFactor)-1]
}

// drawJobArticle draws an article number following the demand distribution
func (e *Engine) drawJobArticle() int {
	random := e.rng.Float64()
	for i, p := range game.JobArticleProbability {
		if random <= p {
			return game.ArticleNumberBase + i
		}
	}
	return game.ArticleNumberBase + game.ArticleCount - 1
}

// drawJobQuantity draws a pallet quantity following the demand distribution
func (e *Engine) drawJobQuantity() int {
	random := e.rng.Float64()
	for i, p := range game.JobQuantityProbability {
		if random <= p {
			return i + 1
		}
	}
	return len(game.JobQuantityProbability)
}

// calculateDemand grows or shrinks the demand quota with the customer
// satisfaction, then fills it with new customer jobs.
func (e *Engine) calculateDemand(state *game.GameState) {
	rv := state.RoundValues

	change := math.Floor(satisfactionFactor(rv.CustomerSatisfaction) * game.PalletIncrease)
	rv.PMax += int(math.Min(change, 20))

	palletSum := 0
	for palletSum < rv.PMax {
		articleNumber := e.drawJobArticle()
		quantity := e.drawJobQuantity()
		state.CustomerJobs = append(state.CustomerJobs, game.NewCustomerJob(articleNumber, quantity, state.Round))
		palletSum += quantity
	}
}
