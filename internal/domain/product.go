package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	UncategorizedCategory    = "Uncategorized"
	DefaultLowStockThreshold = 5
)

type Product struct {
	ID                int64            `json:"id"`
	Name              string           `json:"name"`
	Category          string           `json:"category"`
	Price             decimal.Decimal  `json:"price"`
	CostPrice         *decimal.Decimal `json:"cost_price"`
	InventoryCount    int64            `json:"inventory_count"`
	LowStockThreshold int64            `json:"low_stock_threshold"`
	AverageRating     float64          `json:"average_rating"`
	ReviewCount       int64            `json:"review_count"`
	CreatedAt         time.Time        `json:"created_at"`
}

type ProductSort string

const (
	ProductSortRevenue ProductSort = "revenue"
	ProductSortUnits   ProductSort = "units"
	ProductSortRating  ProductSort = "rating"
	ProductSortProfit  ProductSort = "profit"
)

// ParseProductSort falls back to revenue for anything it does not recognize.
func ParseProductSort(s string) ProductSort {
	switch ProductSort(s) {
	case ProductSortUnits, ProductSortRating, ProductSortProfit:
		return ProductSort(s)
	default:
		return ProductSortRevenue
	}
}
