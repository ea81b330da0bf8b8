package analyzing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jasonco/storefront-analytics/internal/domain"
)

const daysPerYear = 365

func (s *Service) Products(ctx context.Context, query ProductQuery) (*domain.ProductReport, error) {
	period := query.Period
	limit := query.Limit
	if limit <= 0 {
		limit = s.topProductsLimit
	}

	var (
		catalog           domain.CatalogStats
		current, previous domain.RevenueTotals
		categories        []domain.CategoryRow
		products          []domain.ProductRow
		sales             []domain.SeriesRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		catalog, err = s.repo.CatalogStats(gctx)
		return err
	})
	g.Go(func() (err error) {
		current, err = s.repo.ItemTotals(gctx, period.StartDate, period.EndDate)
		return err
	})
	g.Go(func() (err error) {
		previous, err = s.repo.ItemTotals(gctx, period.PreviousStartDate, period.PreviousEndDate)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.repo.CategoryBreakdown(gctx, period.StartDate, period.EndDate)
		return err
	})
	g.Go(func() (err error) {
		products, err = s.repo.ProductPerformance(gctx, period.StartDate, period.EndDate, query.SortBy, limit)
		return err
	})
	g.Go(func() (err error) {
		sales, err = s.repo.ProductSalesSeries(gctx, period.StartDate, period.EndDate, domain.GranularityDay)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build product report: %w", err)
	}

	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	previousRevenue, err := s.repo.ProductRevenue(ctx, period.PreviousStartDate, period.PreviousEndDate, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build product report: %w", err)
	}

	return &domain.ProductReport{
		Metrics:     productMetrics(period, catalog, current, previous),
		TopProducts: productPerformance(products, previousRevenue),
		Categories:  categoryPerformance(categories),
		SalesData:   salesPoints(period, sales),
	}, nil
}

func productMetrics(period domain.Period, catalog domain.CatalogStats, current, previous domain.RevenueTotals) domain.ProductMetrics {
	return domain.ProductMetrics{
		TotalProducts:      catalog.TotalProducts,
		TotalRevenue:       domain.Money(current.Revenue),
		TotalUnitsSold:     current.Units,
		AveragePrice:       domain.Money(catalog.AveragePrice),
		RevenueGrowth:      domain.Growth(current.Revenue, previous.Revenue),
		UnitsGrowth:        domain.GrowthInt(current.Units, previous.Units),
		LowStockProducts:   catalog.LowStock,
		OutOfStockProducts: catalog.OutOfStock,
		InventoryTurns:     inventoryTurns(period, current.Units, catalog.TotalInventory),
	}
}

// inventoryTurns annualizes the units sold in the period against the stock on hand.
func inventoryTurns(period domain.Period, unitsSold, inventory int64) float64 {
	days := int64(period.Length().Hours() / 24)
	if days <= 0 || unitsSold <= 0 {
		return 0
	}
	if inventory < 1 {
		inventory = 1
	}

	annualUnits := decimal.NewFromInt(unitsSold).Mul(decimal.NewFromInt(daysPerYear)).Div(decimal.NewFromInt(days))
	return annualUnits.Div(decimal.NewFromInt(inventory)).Round(2).InexactFloat64()
}

func productPerformance(products []domain.ProductRow, previousRevenue map[int64]decimal.Decimal) []domain.ProductPerformance {
	top := make([]domain.ProductPerformance, 0, len(products))
	for _, p := range products {
		top = append(top, domain.ProductPerformance{
			ID:           p.ID,
			Name:         p.Name,
			Category:     p.Category,
			Revenue:      domain.Money(p.Revenue),
			UnitsSold:    p.Units,
			Orders:       p.Orders,
			Rating:       decimal.NewFromFloat(p.Rating).Round(1).InexactFloat64(),
			Profit:       domain.Money(p.Profit),
			ProfitMargin: domain.Percentage(p.Profit, p.Revenue),
			Growth:       domain.Growth(p.Revenue, previousRevenue[p.ID]),
			Inventory:    p.Inventory,
		})
	}

	return top
}

func categoryPerformance(categories []domain.CategoryRow) []domain.CategoryPerformance {
	total := sumCategoryRevenue(categories)

	performance := make([]domain.CategoryPerformance, 0, len(categories))
	for i, c := range categories {
		performance = append(performance, domain.CategoryPerformance{
			Category:   c.Category,
			Revenue:    domain.Money(c.Revenue),
			UnitsSold:  c.Units,
			Percentage: domain.Percentage(c.Revenue, total),
			Color:      domain.CategoryColor(i),
		})
	}

	return performance
}

func salesPoints(period domain.Period, sales []domain.SeriesRow) []domain.SalesPoint {
	filled := domain.FillSeriesGaps(sales, period, domain.GranularityDay)

	points := make([]domain.SalesPoint, 0, len(filled))
	for _, row := range filled {
		points = append(points, domain.SalesPoint{
			Date:      row.Bucket.Format(domain.DateLayout),
			Revenue:   domain.Money(row.Revenue),
			UnitsSold: row.Units,
			Orders:    row.Orders,
		})
	}

	return points
}

func sumCategoryRevenue(categories []domain.CategoryRow) decimal.Decimal {
	total := decimal.Zero
	for _, c := range categories {
		total = total.Add(c.Revenue)
	}

	return total
}
