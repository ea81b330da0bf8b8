package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryPalette is cycled over category breakdowns in revenue order.
var CategoryPalette = []string{"#D4AF37", "#C9A96E", "#B8956A", "#A78B5F", "#8B7355", "#6B5B45"}

func CategoryColor(index int) string {
	return CategoryPalette[index%len(CategoryPalette)]
}

// Aggregates read from the store. Money stays exact until the response is shaped.

type RevenueTotals struct {
	Revenue decimal.Decimal
	Orders  int64
	Units   int64
}

type SeriesRow struct {
	Bucket  time.Time
	Revenue decimal.Decimal
	Orders  int64
	Units   int64
}

type CategoryRow struct {
	Category string
	Revenue  decimal.Decimal
	Units    int64
}

type ProductRow struct {
	ID        int64
	Name      string
	Category  string
	Revenue   decimal.Decimal
	Units     int64
	Orders    int64
	Profit    decimal.Decimal
	Rating    float64
	Inventory int64
}

type CatalogStats struct {
	TotalProducts  int64
	LowStock       int64
	OutOfStock     int64
	TotalInventory int64
	AveragePrice   decimal.Decimal
}

type RegionRow struct {
	Region    string
	Customers int64
	Orders    int64
	Revenue   decimal.Decimal
}

type CustomerTotals struct {
	Total   int64
	New     int64
	Revenue decimal.Decimal
}

// FillSeriesGaps returns exactly one row per bucket of the period. Buckets the store did not
// return are zero valued; rows outside the period are dropped.
func FillSeriesGaps(rows []SeriesRow, period Period, g Granularity) []SeriesRow {
	byBucket := make(map[time.Time]SeriesRow, len(rows))
	for _, row := range rows {
		bucket := BucketStart(row.Bucket, g)
		existing := byBucket[bucket]
		byBucket[bucket] = SeriesRow{
			Bucket:  bucket,
			Revenue: existing.Revenue.Add(row.Revenue),
			Orders:  existing.Orders + row.Orders,
			Units:   existing.Units + row.Units,
		}
	}

	buckets := period.Buckets(g)
	filled := make([]SeriesRow, 0, len(buckets))
	for _, bucket := range buckets {
		row, ok := byBucket[bucket]
		if !ok {
			row = SeriesRow{Bucket: bucket, Revenue: decimal.Zero}
		}
		filled = append(filled, row)
	}

	return filled
}

// Responses

type RevenuePoint struct {
	Date                  string   `json:"date"`
	Revenue               float64  `json:"revenue"`
	Orders                int64    `json:"orders"`
	AverageOrderValue     float64  `json:"averageOrderValue"`
	PreviousPeriodRevenue *float64 `json:"previousPeriodRevenue,omitempty"`
}

type RevenueMetrics struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	Growth            float64 `json:"growth"`
	TotalOrders       int64   `json:"totalOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	TopCategory       string  `json:"topCategory"`
}

type CategoryShare struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Revenue float64 `json:"revenue"`
	Color   string  `json:"color"`
}

type DateRange struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Period string `json:"period"`
}

func NewDateRange(p Period) DateRange {
	return DateRange{
		Start:  p.StartDate.Format(time.RFC3339Nano),
		End:    p.EndDate.Format(time.RFC3339Nano),
		Period: p.Label,
	}
}

type RevenueReport struct {
	Data       []RevenuePoint  `json:"data"`
	Metrics    RevenueMetrics  `json:"metrics"`
	Categories []CategoryShare `json:"categories"`
	DateRange  DateRange       `json:"dateRange"`
}

type ProductMetrics struct {
	TotalProducts      int64   `json:"totalProducts"`
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalUnitsSold     int64   `json:"totalUnitsSold"`
	AveragePrice       float64 `json:"averagePrice"`
	RevenueGrowth      float64 `json:"revenueGrowth"`
	UnitsGrowth        float64 `json:"unitsGrowth"`
	LowStockProducts   int64   `json:"lowStockProducts"`
	OutOfStockProducts int64   `json:"outOfStockProducts"`
	InventoryTurns     float64 `json:"inventoryTurns"`
}

type ProductPerformance struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Revenue      float64 `json:"revenue"`
	UnitsSold    int64   `json:"unitsSold"`
	Orders       int64   `json:"orders"`
	Rating       float64 `json:"rating"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profitMargin"`
	Growth       float64 `json:"growth"`
	Inventory    int64   `json:"inventory"`
}

type CategoryPerformance struct {
	Category   string  `json:"category"`
	Revenue    float64 `json:"revenue"`
	UnitsSold  int64   `json:"unitsSold"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

type SalesPoint struct {
	Date      string  `json:"date"`
	Revenue   float64 `json:"revenue"`
	UnitsSold int64   `json:"unitsSold"`
	Orders    int64   `json:"orders"`
}

type ProductReport struct {
	Metrics     ProductMetrics        `json:"metrics"`
	TopProducts []ProductPerformance  `json:"topProducts"`
	Categories  []CategoryPerformance `json:"categories"`
	SalesData   []SalesPoint          `json:"salesData"`
}

type RegionReport struct {
	Region             string  `json:"region"`
	Customers          int64   `json:"customers"`
	Orders             int64   `json:"orders"`
	Revenue            float64 `json:"revenue"`
	AvgOrderValue      float64 `json:"avgOrderValue"`
	CustomerPercentage float64 `json:"customerPercentage"`
	RevenuePercentage  float64 `json:"revenuePercentage"`
}

type CustomerReport struct {
	TotalCustomers        int64   `json:"totalCustomers"`
	NewCustomers          int64   `json:"newCustomers"`
	ReturningCustomers    int64   `json:"returningCustomers"`
	CustomerRetentionRate float64 `json:"customerRetentionRate"`
	AverageLifetimeValue  float64 `json:"averageLifetimeValue"`
}
