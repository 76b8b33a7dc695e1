package game

// ArticleNumberBase is the lowest article number of the catalog; the
// catalog numbers its articles consecutively from here.
const ArticleNumberBase = 100101

// DiscountLevel is one quantity-discount tier of an article
type DiscountLevel struct {
	Level         int     `json:"level"`
	MinQuantity   int     `json:"min_quantity"`
	PurchasePrice float64 `json:"purchase_price"`
}

// DeliveryType is one delivery option of an article: lead time and surcharge
type DeliveryType struct {
	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
}

// Article holds the catalog data of one stock keeping unit
type Article struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	ABCClassification string          `json:"abc_classification"`
	ArticleNumber     int             `json:"article_number"`
	PurchasePrice     float64         `json:"purchase_price"`
	SalesPrice        float64         `json:"sales_price"`
	MinOrder          int             `json:"min_order"`
	FixOrderCost      float64         `json:"fix_order_cost"`
	Discount          []DiscountLevel `json:"discount"`
	Delivery          []DeliveryType  `json:"delivery"`
}

// ArticleDynamic is the per-round state of one article
type ArticleDynamic struct {
	ID                   string            `json:"id"`
	Article              *Article          `json:"article"`
	CurrentStock         int               `json:"current_stock"`
	AverageConsumption   float64           `json:"average_consumption"`
	PastConsumption      []int             `json:"past_consumption"`
	PalletCountProcesses [ProcessCount]int `json:"pallet_count_processes"`
	EstimatedRange       int               `json:"estimated_range"`
	OptimalOrderQuantity int               `json:"optimal_order_quantity"`
}

// Clone returns a deep copy of the dynamic and its article
func (d *ArticleDynamic) Clone() *ArticleDynamic {
	art := *d.Article
	art.Discount = append([]DiscountLevel(nil), d.Article.Discount...)
	art.Delivery = append([]DeliveryType(nil), d.Article.Delivery...)

	clone := *d
	clone.Article = &art
	clone.PastConsumption = append([]int(nil), d.PastConsumption...)
	return &clone
}
