package analyzing

import (
	"context"
	"fmt"

	"github.com/jasonco/storefront-analytics/internal/domain"
)

// Customers reports who bought in the period. A customer is returning when they had a revenue
// order before the period started.
func (s *Service) Customers(ctx context.Context, period domain.Period) (*domain.CustomerReport, error) {
	totals, err := s.repo.CustomerSummary(ctx, period.StartDate, period.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to build customer report: %w", err)
	}

	returning := totals.Total - totals.New
	if returning < 0 {
		returning = 0
	}

	return &domain.CustomerReport{
		TotalCustomers:        totals.Total,
		NewCustomers:          totals.New,
		ReturningCustomers:    returning,
		CustomerRetentionRate: domain.PercentageInt(returning, totals.Total),
		AverageLifetimeValue:  domain.Average(totals.Revenue, totals.Total),
	}, nil
}
