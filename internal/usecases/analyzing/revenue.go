package analyzing

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jasonco/storefront-analytics/internal/domain"
)

const noTopCategory = "None"

func (s *Service) Revenue(ctx context.Context, query RevenueQuery) (*domain.RevenueReport, error) {
	period := query.Period
	previousPeriod := period.Previous()

	var (
		current, previous      domain.RevenueTotals
		series, previousSeries []domain.SeriesRow
		categories             []domain.CategoryRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		current, err = s.repo.RevenueSummary(gctx, period.StartDate, period.EndDate)
		return err
	})
	g.Go(func() (err error) {
		previous, err = s.repo.RevenueSummary(gctx, period.PreviousStartDate, period.PreviousEndDate)
		return err
	})
	g.Go(func() (err error) {
		series, err = s.repo.RevenueSeries(gctx, period.StartDate, period.EndDate, query.Granularity)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.repo.CategoryBreakdown(gctx, period.StartDate, period.EndDate)
		return err
	})
	if query.Comparison {
		g.Go(func() (err error) {
			previousSeries, err = s.repo.RevenueSeries(gctx, previousPeriod.StartDate, previousPeriod.EndDate, query.Granularity)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build revenue report: %w", err)
	}

	return &domain.RevenueReport{
		Data:       revenuePoints(query, series, previousSeries),
		Metrics:    revenueMetrics(current, previous, categories),
		Categories: categoryShares(categories),
		DateRange:  domain.NewDateRange(period),
	}, nil
}

func revenuePoints(query RevenueQuery, series, previousSeries []domain.SeriesRow) []domain.RevenuePoint {
	filled := domain.FillSeriesGaps(series, query.Period, query.Granularity)

	var previousFilled []domain.SeriesRow
	if query.Comparison {
		previousFilled = domain.FillSeriesGaps(previousSeries, query.Period.Previous(), query.Granularity)
	}

	points := make([]domain.RevenuePoint, 0, len(filled))
	for i, row := range filled {
		point := domain.RevenuePoint{
			Date:              row.Bucket.Format(domain.DateLayout),
			Revenue:           domain.Money(row.Revenue),
			Orders:            row.Orders,
			AverageOrderValue: domain.Average(row.Revenue, row.Orders),
		}

		// buckets are aligned by position, not by calendar date
		if query.Comparison {
			previousRevenue := 0.0
			if i < len(previousFilled) {
				previousRevenue = domain.Money(previousFilled[i].Revenue)
			}
			point.PreviousPeriodRevenue = &previousRevenue
		}

		points = append(points, point)
	}

	return points
}

func revenueMetrics(current, previous domain.RevenueTotals, categories []domain.CategoryRow) domain.RevenueMetrics {
	topCategory := noTopCategory
	if len(categories) > 0 && categories[0].Revenue.Sign() > 0 {
		topCategory = categories[0].Category
	}

	return domain.RevenueMetrics{
		TotalRevenue:      domain.Money(current.Revenue),
		Growth:            domain.Growth(current.Revenue, previous.Revenue),
		TotalOrders:       current.Orders,
		AverageOrderValue: domain.Average(current.Revenue, current.Orders),
		TopCategory:       topCategory,
	}
}

func categoryShares(categories []domain.CategoryRow) []domain.CategoryShare {
	total := sumCategoryRevenue(categories)

	shares := make([]domain.CategoryShare, 0, len(categories))
	for i, c := range categories {
		shares = append(shares, domain.CategoryShare{
			Name:    c.Category,
			Value:   domain.Percentage(c.Revenue, total),
			Revenue: domain.Money(c.Revenue),
			Color:   domain.CategoryColor(i),
		})
	}

	return shares
}
