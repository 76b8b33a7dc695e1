package catalog

import (
	"github.com/google/uuid"

	"github.com/lbruckner/palletsim/internal/domain/game"
)

// StorageSlotCount is the total number of slots in the high-bay storage
const StorageSlotCount = 3072

// slotsPerAisle is the number of slot columns along one aisle; the walking
// distance of a slot grows with its offset in the aisle.
const slotsPerAisle = 48

// storageLevels is the number of vertical levels per column
const storageLevels = 4

// FreeStocks builds the empty slot grid. Distances and levels follow a
// fixed aisle layout; the ABC zone and the reserved article rotate with the
// slot position.
func FreeStocks() []*game.StockGround {
	const (
		distSource0 = 53.75
		distDrain0  = 27.75
		distAvg0    = 40.75
	)
	grounds := make([]*game.StockGround, 0, StorageSlotCount)
	for index := 0; index < StorageSlotCount; index++ {
		offset := index % slotsPerAisle
		level := (index % (storageLevels * slotsPerAisle)) % storageLevels

		abc := "C"
		if offset < 2 {
			abc = "A"
		} else if offset < 17 {
			abc = "B"
		}

		articleNumber := ArticlePumpUnit
		switch articleOffset := index % 7; {
		case articleOffset < 2:
			articleNumber = ArticleCopperPipe
		case articleOffset < 3:
			articleNumber = ArticleBrassValve
		case articleOffset < 4:
			articleNumber = ArticleSteelFitting
		}

		grounds = append(grounds, &game.StockGround{
			ID:            uuid.NewString(),
			DistSource:    distSource0 + float64(offset),
			DistDrain:     distDrain0 + float64(offset),
			DistAvg:       distAvg0 + float64(offset),
			Level:         level,
			ABC:           abc,
			ArticleNumber: articleNumber,
		})
	}
	return grounds
}

// Storage builds the opening storage: the slot grid with the opening stock
// of every article already stored. The article counters are updated to
// match.
func Storage(articles []*game.ArticleDynamic) *game.Storage {
	storage := &game.Storage{
		FreeStocks: FreeStocks(),
	}
	for _, seed := range articleSeeds {
		dynamic := findArticle(articles, seed.number)
		for i := 0; i < seed.stock; i++ {
			pallet := game.NewPallet(seed.number, false, game.PalletErrorNone)
			pallet.Process = game.ProcessStorage
			pallet.Stored = true

			ground := firstFreeGround(storage, seed.number)
			storage.Occupy(ground, pallet)
			if dynamic != nil {
				dynamic.CurrentStock++
				dynamic.PalletCountProcesses[game.ProcessStorage.Index()]++
			}
		}
	}
	return storage
}

func findArticle(articles []*game.ArticleDynamic, articleNumber int) *game.ArticleDynamic {
	for _, d := range articles {
		if d.Article.ArticleNumber == articleNumber {
			return d
		}
	}
	return nil
}

// firstFreeGround prefers a slot reserved for the article and falls back to
// the first free slot
func firstFreeGround(storage *game.Storage, articleNumber int) *game.StockGround {
	for _, g := range storage.FreeStocks {
		if g.ArticleNumber == articleNumber {
			return g
		}
	}
	return storage.FreeStocks[0]
}
