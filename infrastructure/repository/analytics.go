package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/jasonco/storefront-analytics/infrastructure/database/postgres"
	"github.com/jasonco/storefront-analytics/internal/domain"
)

//go:generate mockgen -source=analytics.go -destination=mocks/mock_analytics.go -package=mocks

// AnalyticsRepository runs the reporting aggregates. Every method excludes orders whose status
// does not count as revenue.
type AnalyticsRepository interface {
	RevenueSummary(ctx context.Context, from, to time.Time) (domain.RevenueTotals, error)
	ItemTotals(ctx context.Context, from, to time.Time) (domain.RevenueTotals, error)
	RevenueSeries(ctx context.Context, from, to time.Time, granularity domain.Granularity) ([]domain.SeriesRow, error)
	ProductSalesSeries(ctx context.Context, from, to time.Time, granularity domain.Granularity) ([]domain.SeriesRow, error)
	CategoryBreakdown(ctx context.Context, from, to time.Time) ([]domain.CategoryRow, error)
	ProductPerformance(ctx context.Context, from, to time.Time, sortBy domain.ProductSort, limit int) ([]domain.ProductRow, error)
	ProductRevenue(ctx context.Context, from, to time.Time, ids []int64) (map[int64]decimal.Decimal, error)
	CatalogStats(ctx context.Context) (domain.CatalogStats, error)
	RegionBreakdown(ctx context.Context, from, to time.Time) ([]domain.RegionRow, error)
	CustomerSummary(ctx context.Context, from, to time.Time) (domain.CustomerTotals, error)
}

type analyticsRepository struct {
	conn postgres.Queryer
}

func NewAnalyticsRepository(conn postgres.Queryer) AnalyticsRepository {
	return &analyticsRepository{
		conn: conn,
	}
}

func (r *analyticsRepository) RevenueSummary(ctx context.Context, from, to time.Time) (domain.RevenueTotals, error) {
	query, args, err := buildRevenueSummaryQuery(from, to)
	if err != nil {
		return domain.RevenueTotals{}, errors.Wrap(err, "failed to build revenue summary query")
	}

	return r.totals(ctx, "revenue summary", query, args)
}

func (r *analyticsRepository) ItemTotals(ctx context.Context, from, to time.Time) (domain.RevenueTotals, error) {
	query, args, err := buildItemTotalsQuery(from, to)
	if err != nil {
		return domain.RevenueTotals{}, errors.Wrap(err, "failed to build item totals query")
	}

	return r.totals(ctx, "item totals", query, args)
}

func (r *analyticsRepository) totals(ctx context.Context, name, query string, args []interface{}) (domain.RevenueTotals, error) {
	var totals domain.RevenueTotals
	err := r.conn.QueryRowContext(ctx, query, args...).Scan(&totals.Revenue, &totals.Orders, &totals.Units)
	if err != nil {
		return domain.RevenueTotals{}, errors.Wrapf(err, "failed to query %s", name)
	}

	return totals, nil
}

func (r *analyticsRepository) RevenueSeries(ctx context.Context, from, to time.Time, granularity domain.Granularity) ([]domain.SeriesRow, error) {
	query, args, err := buildRevenueSeriesQuery(from, to, granularity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build revenue series query")
	}

	return r.series(ctx, "revenue series", query, args)
}

func (r *analyticsRepository) ProductSalesSeries(ctx context.Context, from, to time.Time, granularity domain.Granularity) ([]domain.SeriesRow, error) {
	query, args, err := buildProductSalesSeriesQuery(from, to, granularity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build product sales series query")
	}

	return r.series(ctx, "product sales series", query, args)
}

func (r *analyticsRepository) series(ctx context.Context, name, query string, args []interface{}) ([]domain.SeriesRow, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %s", name)
	}
	defer rows.Close()

	series := make([]domain.SeriesRow, 0)
	for rows.Next() {
		var row domain.SeriesRow
		if err := rows.Scan(&row.Bucket, &row.Revenue, &row.Orders, &row.Units); err != nil {
			return nil, errors.Wrapf(err, "failed to scan %s", name)
		}
		row.Bucket = row.Bucket.UTC()
		series = append(series, row)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to iterate %s", name)
	}

	return series, nil
}

func (r *analyticsRepository) CategoryBreakdown(ctx context.Context, from, to time.Time) ([]domain.CategoryRow, error) {
	query, args, err := buildCategoryBreakdownQuery(from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build category breakdown query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query category breakdown")
	}
	defer rows.Close()

	categories := make([]domain.CategoryRow, 0)
	for rows.Next() {
		var row domain.CategoryRow
		if err := rows.Scan(&row.Category, &row.Revenue, &row.Units); err != nil {
			return nil, errors.Wrap(err, "failed to scan category breakdown")
		}
		categories = append(categories, row)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate category breakdown")
	}

	return categories, nil
}

func (r *analyticsRepository) ProductPerformance(ctx context.Context, from, to time.Time, sortBy domain.ProductSort, limit int) ([]domain.ProductRow, error) {
	query, args, err := buildProductPerformanceQuery(from, to, sortBy, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build product performance query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query product performance")
	}
	defer rows.Close()

	products := make([]domain.ProductRow, 0, limit)
	for rows.Next() {
		var p domain.ProductRow
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Category,
			&p.Revenue,
			&p.Units,
			&p.Orders,
			&p.Profit,
			&p.Rating,
			&p.Inventory,
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan product performance")
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate product performance")
	}

	return products, nil
}

func (r *analyticsRepository) ProductRevenue(ctx context.Context, from, to time.Time, ids []int64) (map[int64]decimal.Decimal, error) {
	revenue := make(map[int64]decimal.Decimal, len(ids))
	if len(ids) == 0 {
		return revenue, nil
	}

	query, args, err := buildProductRevenueQuery(from, to, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build product revenue query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query product revenue")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    int64
			total decimal.Decimal
		)
		if err := rows.Scan(&id, &total); err != nil {
			return nil, errors.Wrap(err, "failed to scan product revenue")
		}
		revenue[id] = total
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate product revenue")
	}

	return revenue, nil
}

func (r *analyticsRepository) CatalogStats(ctx context.Context) (domain.CatalogStats, error) {
	query, args, err := buildCatalogStatsQuery()
	if err != nil {
		return domain.CatalogStats{}, errors.Wrap(err, "failed to build catalog stats query")
	}

	var stats domain.CatalogStats
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalProducts,
		&stats.LowStock,
		&stats.OutOfStock,
		&stats.TotalInventory,
		&stats.AveragePrice,
	)
	if err != nil {
		return domain.CatalogStats{}, errors.Wrap(err, "failed to query catalog stats")
	}

	return stats, nil
}

func (r *analyticsRepository) RegionBreakdown(ctx context.Context, from, to time.Time) ([]domain.RegionRow, error) {
	query, args, err := buildRegionBreakdownQuery(from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build region breakdown query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query region breakdown")
	}
	defer rows.Close()

	regions := make([]domain.RegionRow, 0, len(domain.Regions))
	for rows.Next() {
		var row domain.RegionRow
		if err := rows.Scan(&row.Region, &row.Customers, &row.Orders, &row.Revenue); err != nil {
			return nil, errors.Wrap(err, "failed to scan region breakdown")
		}
		regions = append(regions, row)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate region breakdown")
	}

	return regions, nil
}

func (r *analyticsRepository) CustomerSummary(ctx context.Context, from, to time.Time) (domain.CustomerTotals, error) {
	query, args, err := buildCustomerSummaryQuery(from, to)
	if err != nil {
		return domain.CustomerTotals{}, errors.Wrap(err, "failed to build customer summary query")
	}

	var totals domain.CustomerTotals
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&totals.Total, &totals.New, &totals.Revenue)
	if err != nil && err != sql.ErrNoRows {
		return domain.CustomerTotals{}, errors.Wrap(err, "failed to query customer summary")
	}

	return totals, nil
}
