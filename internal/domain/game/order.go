package game

import "github.com/google/uuid"

// Order is one supply order placed at a wholesaler. Orders are immutable
// once placed; arrival handling removes them from the state.
type Order struct {
	ID                string  `json:"id"`
	OrderNumber       int     `json:"order_number"`
	OrderRound        int     `json:"order_round"`
	DeliveryRound     int     `json:"delivery_round"`
	DeliveryWishRound int     `json:"delivery_wish_round"`
	ArticleNumber     int     `json:"article_number"`
	RealPurchasePrice float64 `json:"real_purchase_price"`
	Quantity          int     `json:"quantity"`
	DeliveredQuantity int     `json:"delivered_quantity"`
	FixCosts          float64 `json:"fix_costs"`
	DeliveryCosts     float64 `json:"delivery_costs"`
}

// OrderDraft carries the player's input for a new supply order
type OrderDraft struct {
	OrderNumber       int
	OrderRound        int
	DeliveryRound     int
	DeliveryWishRound int
	ArticleNumber     int
	RealPurchasePrice float64
	Quantity          int
	FixCosts          float64
	DeliveryCosts     float64
}

// NewOrder materializes a draft. The wholesaler short-ships up to four
// pallets; shortfall is the draw result in [0, 5).
func NewOrder(draft OrderDraft, shortfall int) *Order {
	return &Order{
		ID:                uuid.NewString(),
		OrderNumber:       draft.OrderNumber,
		OrderRound:        draft.OrderRound,
		DeliveryRound:     draft.DeliveryRound,
		DeliveryWishRound: draft.DeliveryWishRound,
		ArticleNumber:     draft.ArticleNumber,
		RealPurchasePrice: draft.RealPurchasePrice,
		Quantity:          draft.Quantity,
		DeliveredQuantity: draft.Quantity - shortfall,
		FixCosts:          draft.FixCosts,
		DeliveryCosts:     draft.DeliveryCosts,
	}
}

// IsLate reports whether the order arrives after the wished round
func (o *Order) IsLate() bool {
	return o.DeliveryRound > o.DeliveryWishRound
}

// IsComplete reports whether the wholesaler shipped the full quantity
func (o *Order) IsComplete() bool {
	return o.Quantity == o.DeliveredQuantity
}

// CustomerJob is one customer demand position
type CustomerJob struct {
	ID                string `json:"id"`
	ArticleNumber     int    `json:"article_number"`
	Quantity          int    `json:"quantity"`
	RemainingQuantity int    `json:"remaining_quantity"`
	DemandRound       int    `json:"demand_round"`
}

// NewCustomerJob creates a job demanding the given quantity of an article
func NewCustomerJob(articleNumber, quantity, demandRound int) *CustomerJob {
	return &CustomerJob{
		ID:                uuid.NewString(),
		ArticleNumber:     articleNumber,
		Quantity:          quantity,
		RemainingQuantity: quantity,
		DemandRound:       demandRound,
	}
}
