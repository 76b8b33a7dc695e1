package catalog

import (
	"github.com/google/uuid"

	"github.com/lbruckner/palletsim/internal/domain/game"
)

// Article numbers of the four stock keeping units
const (
	ArticleCopperPipe   = 100101
	ArticleBrassValve   = 100102
	ArticleSteelFitting = 100103
	ArticlePumpUnit     = 100104
)

type articleSeed struct {
	number        int
	name          string
	abc           string
	purchasePrice float64
	salesPrice    float64
	minOrder      int
	fixOrderCost  float64
	stock         int
}

// The initial stock values multiply out to the opening stock value of the
// company balance sheet.
var articleSeeds = []articleSeed{
	{ArticleCopperPipe, "Kupferrohr 22mm (Palette)", "B", 185.0, 295.0, 50, 90.0, 100},
	{ArticleBrassValve, "Messingventil DN25 (Palette)", "B", 195.0, 310.0, 50, 90.0, 90},
	{ArticleSteelFitting, "Stahlfitting verzinkt (Palette)", "C", 204.0, 325.0, 50, 95.0, 80},
	{ArticlePumpUnit, "Umwälzpumpe UP-60 (Palette)", "A", 225.0, 360.0, 50, 110.0, 70},
}

// Articles builds the article catalog with its opening stock counters
func Articles() []*game.ArticleDynamic {
	dynamics := make([]*game.ArticleDynamic, 0, len(articleSeeds))
	for _, seed := range articleSeeds {
		article := &game.Article{
			ID:                uuid.NewString(),
			Name:              seed.name,
			ABCClassification: seed.abc,
			ArticleNumber:     seed.number,
			PurchasePrice:     seed.purchasePrice,
			SalesPrice:        seed.salesPrice,
			MinOrder:          seed.minOrder,
			FixOrderCost:      seed.fixOrderCost,
			Discount: []game.DiscountLevel{
				{Level: 0, MinQuantity: 200, PurchasePrice: seed.purchasePrice * 0.95},
				{Level: 1, MinQuantity: 400, PurchasePrice: seed.purchasePrice * 0.92},
			},
			Delivery: []game.DeliveryType{
				{Duration: 2, Price: 0.0},
				{Duration: 1, Price: 450.0},
			},
		}

		dynamic := &game.ArticleDynamic{
			ID:                   uuid.NewString(),
			Article:              article,
			AverageConsumption:   30.0,
			PastConsumption:      []int{30},
			EstimatedRange:       1,
			OptimalOrderQuantity: 1,
		}
		dynamics = append(dynamics, dynamic)
	}
	return dynamics
}
