package analyzing

import (
	"github.com/jasonco/storefront-analytics/infrastructure/repository"
	"github.com/jasonco/storefront-analytics/internal/config"
)

const defaultTopProductsLimit = 10

// Service answers every report from the analytics repository. Independent aggregates of one
// report run concurrently on the shared pool; the first failure cancels the others and fails
// the whole report.
type Service struct {
	repo             repository.AnalyticsRepository
	topProductsLimit int
}

func NewService(repo repository.AnalyticsRepository, cfg config.Analytics) *Service {
	limit := cfg.TopProductsLimit
	if limit <= 0 {
		limit = defaultTopProductsLimit
	}

	return &Service{
		repo:             repo,
		topProductsLimit: limit,
	}
}
