package analyzing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jasonco/storefront-analytics/internal/domain"
)

// Geographic lists every region in display order. Orders that cannot be placed in a region are
// reported under Other, which is left out of the percentage denominators.
func (s *Service) Geographic(ctx context.Context, period domain.Period) ([]domain.RegionReport, error) {
	rows, err := s.repo.RegionBreakdown(ctx, period.StartDate, period.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to build geographic report: %w", err)
	}

	byRegion := make(map[string]domain.RegionRow, len(domain.Regions))
	for _, row := range rows {
		region := row.Region
		if !isKnownRegion(region) {
			region = domain.RegionOther
		}
		existing := byRegion[region]
		byRegion[region] = domain.RegionRow{
			Region:    region,
			Customers: existing.Customers + row.Customers,
			Orders:    existing.Orders + row.Orders,
			Revenue:   existing.Revenue.Add(row.Revenue),
		}
	}

	var totalCustomers int64
	totalRevenue := decimal.Zero
	for region, row := range byRegion {
		if region == domain.RegionOther {
			continue
		}
		totalCustomers += row.Customers
		totalRevenue = totalRevenue.Add(row.Revenue)
	}

	reports := make([]domain.RegionReport, 0, len(domain.Regions))
	for _, region := range domain.Regions {
		row := byRegion[region]
		report := domain.RegionReport{
			Region:        region,
			Customers:     row.Customers,
			Orders:        row.Orders,
			Revenue:       domain.Money(row.Revenue),
			AvgOrderValue: domain.Average(row.Revenue, row.Orders),
		}
		if region != domain.RegionOther {
			report.CustomerPercentage = domain.PercentageInt(row.Customers, totalCustomers)
			report.RevenuePercentage = domain.Percentage(row.Revenue, totalRevenue)
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func isKnownRegion(region string) bool {
	for _, r := range domain.Regions {
		if r == region {
			return true
		}
	}
	return false
}
