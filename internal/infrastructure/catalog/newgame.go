package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/domain/shared"
)

type orderSeed struct {
	orderNumber   int
	articleNumber int
	quantity      int
	shortfall     int
	deliveryRound int
	wishRound     int
}

// Pending supply orders of the opening state. The quantities add up to the
// ordered-pallet count of the opening scoreboard.
var orderSeeds = []orderSeed{
	{901, ArticleCopperPipe, 260, 2, game.InitialRound + 1, game.InitialRound + 1},
	{902, ArticleBrassValve, 250, 0, game.InitialRound + 1, game.InitialRound + 1},
	{903, ArticleSteelFitting, 240, 1, game.InitialRound + 2, game.InitialRound + 1},
	{904, ArticlePumpUnit, 300, 3, game.InitialRound + 2, game.InitialRound + 2},
	{905, ArticleCopperPipe, 220, 0, game.InitialRound + 3, game.InitialRound + 3},
	{906, ArticlePumpUnit, 220, 2, game.InitialRound + 3, game.InitialRound + 3},
}

func seedOrders(articles []*game.ArticleDynamic) []*game.Order {
	orders := make([]*game.Order, 0, len(orderSeeds))
	for _, seed := range orderSeeds {
		article := findArticle(articles, seed.articleNumber)
		orders = append(orders, &game.Order{
			ID:                uuid.NewString(),
			OrderNumber:       seed.orderNumber,
			OrderRound:        game.InitialRound - 2,
			DeliveryRound:     seed.deliveryRound,
			DeliveryWishRound: seed.wishRound,
			ArticleNumber:     seed.articleNumber,
			RealPurchasePrice: article.Article.PurchasePrice,
			Quantity:          seed.quantity,
			DeliveredQuantity: seed.quantity - seed.shortfall,
			FixCosts:          article.Article.FixOrderCost,
			DeliveryCosts:     0.0,
		})
	}
	return orders
}

type jobSeed struct {
	articleNumber int
	quantity      int
	demandRound   int
}

var jobSeeds = []jobSeed{
	{ArticlePumpUnit, 4, game.InitialRound},
	{ArticlePumpUnit, 2, game.InitialRound},
	{ArticleSteelFitting, 3, game.InitialRound},
	{ArticleCopperPipe, 1, game.InitialRound},
	{ArticleBrassValve, 5, game.InitialRound + 1},
	{ArticlePumpUnit, 3, game.InitialRound + 1},
	{ArticleSteelFitting, 2, game.InitialRound + 1},
	{ArticleCopperPipe, 4, game.InitialRound + 1},
}

func seedCustomerJobs() []*game.CustomerJob {
	jobs := make([]*game.CustomerJob, 0, len(jobSeeds))
	for _, seed := range jobSeeds {
		jobs = append(jobs, game.NewCustomerJob(seed.articleNumber, seed.quantity, seed.demandRound))
	}
	return jobs
}

func seedMessages() []*game.Message {
	return []*game.Message{
		game.NewMessage(
			"Willkommen! Sie haben die Leitung des Lagers übernommen.",
			"Welcome! You have taken over the management of the warehouse.",
			game.InitialRound-1,
		),
	}
}

// NewGameState assembles the opening snapshot of a fresh game
func NewGameState(gameID string, rng shared.Random, now time.Time) *game.GameState {
	articles := Articles()
	return &game.GameState{
		ID:               uuid.NewString(),
		GameID:           gameID,
		Round:            game.InitialRound,
		UpdatedAt:        now,
		EmployeeDynamics: Employees(),
		ConveyorDynamics: Conveyors(),
		ArticleDynamics:  articles,
		Messages:         seedMessages(),
		Orders:           seedOrders(articles),
		CustomerJobs:     seedCustomerJobs(),
		ConveyorStore:    ConveyorStore(),
		EmployeeStore:    Applicants(rng, game.EmployeeStoreSize),
		Storage:          Storage(articles),
		RoundValues:      game.NewRoundValues(),
	}
}
