package game

import "github.com/google/uuid"

// Pallet damage categories. Index 0 means undamaged; the names of the
// positive categories live in PalletErrorNames.
const (
	PalletErrorNone               = 0
	PalletErrorTransportLoading   = 1
	PalletErrorTransportStorage   = 2
	PalletErrorTransportUnloading = 3
	PalletErrorWrongRetrieval     = 4
	PalletErrorWrongDelivery      = 5
	PalletErrorDamage             = 6
)

// PalletErrorCount is the number of damage categories including "none"
const PalletErrorCount = 7

// Pallet is one load unit moving through the pipeline
type Pallet struct {
	ID            string  `json:"id"`
	ArticleNumber int     `json:"article_number"`
	Process       Process `json:"process"`
	Secured       bool    `json:"secured"`
	Error         int     `json:"error"`
	Stored        bool    `json:"stored"`
	DemandRound   int     `json:"demand_round"`
}

// NewPallet creates a pallet at goods-in carrying the given article
func NewPallet(articleNumber int, secured bool, errorState int) *Pallet {
	return &Pallet{
		ID:            uuid.NewString(),
		ArticleNumber: articleNumber,
		Process:       ProcessUnloading,
		Secured:       secured,
		Error:         errorState,
		DemandRound:   -1,
	}
}

// StockGround is one slot of the high-bay storage
type StockGround struct {
	ID            string  `json:"id"`
	DistSource    float64 `json:"dist_source"`
	DistDrain     float64 `json:"dist_drain"`
	DistAvg       float64 `json:"dist_avg"`
	Level         int     `json:"level"`
	ABC           string  `json:"abc"`
	ArticleNumber int     `json:"article_number"`
	Pallet        *Pallet `json:"pallet,omitempty"`
}

// Clone returns a deep copy of the slot and its pallet, if any
func (g *StockGround) Clone() *StockGround {
	clone := *g
	if g.Pallet != nil {
		p := *g.Pallet
		clone.Pallet = &p
	}
	return &clone
}

// Storage holds the slot lists and the pallets that are currently moving
// between stations rather than sitting in a slot
type Storage struct {
	FreeStocks          []*StockGround `json:"free_stocks"`
	OccStocks           []*StockGround `json:"occ_stocks"`
	PalletsNotInStorage []*Pallet      `json:"pallets_not_in_storage"`
}

// Clone returns a deep copy of the storage
func (s *Storage) Clone() *Storage {
	clone := &Storage{
		FreeStocks:          make([]*StockGround, len(s.FreeStocks)),
		OccStocks:           make([]*StockGround, len(s.OccStocks)),
		PalletsNotInStorage: make([]*Pallet, len(s.PalletsNotInStorage)),
	}
	for i, g := range s.FreeStocks {
		clone.FreeStocks[i] = g.Clone()
	}
	for i, g := range s.OccStocks {
		clone.OccStocks[i] = g.Clone()
	}
	for i, p := range s.PalletsNotInStorage {
		pallet := *p
		clone.PalletsNotInStorage[i] = &pallet
	}
	return clone
}

// Occupy moves a free slot to the occupied list with the given pallet
func (s *Storage) Occupy(ground *StockGround, pallet *Pallet) {
	for i, g := range s.FreeStocks {
		if g == ground {
			s.FreeStocks = append(s.FreeStocks[:i], s.FreeStocks[i+1:]...)
			break
		}
	}
	ground.Pallet = pallet
	s.OccStocks = append(s.OccStocks, ground)
}

// Release moves an occupied slot back to the free list and returns its pallet
func (s *Storage) Release(ground *StockGround) *Pallet {
	for i, g := range s.OccStocks {
		if g == ground {
			s.OccStocks = append(s.OccStocks[:i], s.OccStocks[i+1:]...)
			break
		}
	}
	pallet := ground.Pallet
	ground.Pallet = nil
	s.FreeStocks = append(s.FreeStocks, ground)
	return pallet
}
