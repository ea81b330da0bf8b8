package analyzing

import (
	"context"

	"github.com/jasonco/storefront-analytics/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// Analyzer builds the dashboard reports for a resolved period
type Analyzer interface {
	Revenue(ctx context.Context, query RevenueQuery) (*domain.RevenueReport, error)
	Products(ctx context.Context, query ProductQuery) (*domain.ProductReport, error)
	Geographic(ctx context.Context, period domain.Period) ([]domain.RegionReport, error)
	Customers(ctx context.Context, period domain.Period) (*domain.CustomerReport, error)
}

type RevenueQuery struct {
	Period      domain.Period
	Granularity domain.Granularity
	Comparison  bool
}

type ProductQuery struct {
	Period domain.Period
	SortBy domain.ProductSort
	Limit  int
}
