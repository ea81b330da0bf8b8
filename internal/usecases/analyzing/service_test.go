package analyzing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jasonco/storefront-analytics/infrastructure/repository/mocks"
	"github.com/jasonco/storefront-analytics/internal/config"
	"github.com/jasonco/storefront-analytics/internal/domain"
)

var (
	testNow    = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	testPeriod = domain.ResolvePeriod("30d", "", "", testNow)
	errStore   = errors.New("connection refused")
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService(t *testing.T) (*Service, *mocks.MockAnalyticsRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAnalyticsRepository(ctrl)

	return NewService(repo, config.Analytics{TopProductsLimit: 10}), repo
}

func TestService_Revenue(t *testing.T) {
	p := testPeriod

	tests := []struct {
		name     string
		query    RevenueQuery
		setup    func(repo *mocks.MockAnalyticsRepository)
		validate func(t *testing.T, report *domain.RevenueReport, err error)
	}{
		{
			name:  "no orders yields a zero filled series",
			query: RevenueQuery{Period: p, Granularity: domain.GranularityDay},
			setup: func(repo *mocks.MockAnalyticsRepository) {
				repo.EXPECT().RevenueSummary(gomock.Any(), p.StartDate, p.EndDate).Return(domain.RevenueTotals{}, nil)
				repo.EXPECT().RevenueSummary(gomock.Any(), p.PreviousStartDate, p.PreviousEndDate).Return(domain.RevenueTotals{}, nil)
				repo.EXPECT().RevenueSeries(gomock.Any(), p.StartDate, p.EndDate, domain.GranularityDay).Return([]domain.SeriesRow{}, nil)
				repo.EXPECT().CategoryBreakdown(gomock.Any(), p.StartDate, p.EndDate).Return([]domain.CategoryRow{}, nil)
			},
			validate: func(t *testing.T, report *domain.RevenueReport, err error) {
				require.NoError(t, err)
				require.Len(t, report.Data, 30)
				assert.Equal(t, "2026-09-19", report.Data[0].Date)
				assert.Equal(t, "2026-10-18", report.Data[29].Date)
				for _, point := range report.Data {
					assert.Zero(t, point.Revenue)
					assert.Zero(t, point.Orders)
					assert.Zero(t, point.AverageOrderValue)
					assert.Nil(t, point.PreviousPeriodRevenue)
				}
				assert.Equal(t, domain.RevenueMetrics{TopCategory: noTopCategory}, report.Metrics)
				assert.NotNil(t, report.Categories)
				assert.Empty(t, report.Categories)
				assert.Equal(t, domain.DateRange{
					Start:  "2026-09-19T00:00:00Z",
					End:    "2026-10-18T23:59:59.999999Z",
					Period: domain.PeriodLast30Days,
				}, report.DateRange)
			},
		},
		{
			name:  "growth against the previous period with comparison series",
			query: RevenueQuery{Period: p, Granularity: domain.GranularityDay, Comparison: true},
			setup: func(repo *mocks.MockAnalyticsRepository) {
				repo.EXPECT().RevenueSummary(gomock.Any(), p.StartDate, p.EndDate).
					Return(domain.RevenueTotals{Revenue: dec("10000"), Orders: 4}, nil)
				repo.EXPECT().RevenueSummary(gomock.Any(), p.PreviousStartDate, p.PreviousEndDate).
					Return(domain.RevenueTotals{Revenue: dec("8000"), Orders: 3}, nil)
				repo.EXPECT().RevenueSeries(gomock.Any(), p.StartDate, p.EndDate, domain.GranularityDay).
					Return([]domain.SeriesRow{
						{Bucket: p.StartDate, Revenue: dec("2500.50"), Orders: 2},
						{Bucket: p.StartDate.AddDate(0, 0, 29), Revenue: dec("7499.50"), Orders: 2},
					}, nil)
				repo.EXPECT().RevenueSeries(gomock.Any(), p.PreviousStartDate, p.PreviousEndDate, domain.GranularityDay).
					Return([]domain.SeriesRow{
						{Bucket: p.PreviousStartDate, Revenue: dec("500"), Orders: 1},
					}, nil)
				repo.EXPECT().CategoryBreakdown(gomock.Any(), p.StartDate, p.EndDate).
					Return([]domain.CategoryRow{
						{Category: "rings", Revenue: dec("6000"), Units: 3},
						{Category: "necklaces", Revenue: dec("4000"), Units: 1},
					}, nil)
			},
			validate: func(t *testing.T, report *domain.RevenueReport, err error) {
				require.NoError(t, err)
				require.Len(t, report.Data, 30)

				assert.Equal(t, 2500.5, report.Data[0].Revenue)
				assert.Equal(t, 1250.25, report.Data[0].AverageOrderValue)
				require.NotNil(t, report.Data[0].PreviousPeriodRevenue)
				assert.Equal(t, 500.0, *report.Data[0].PreviousPeriodRevenue)
				require.NotNil(t, report.Data[1].PreviousPeriodRevenue)
				assert.Zero(t, *report.Data[1].PreviousPeriodRevenue)
				assert.Equal(t, 7499.5, report.Data[29].Revenue)

				assert.Equal(t, domain.RevenueMetrics{
					TotalRevenue:      10000,
					Growth:            25,
					TotalOrders:       4,
					AverageOrderValue: 2500,
					TopCategory:       "rings",
				}, report.Metrics)

				assert.Equal(t, []domain.CategoryShare{
					{Name: "rings", Value: 60, Revenue: 6000, Color: domain.CategoryPalette[0]},
					{Name: "necklaces", Value: 40, Revenue: 4000, Color: domain.CategoryPalette[1]},
				}, report.Categories)
			},
		},
		{
			name:  "previous period without revenue has zero growth",
			query: RevenueQuery{Period: p, Granularity: domain.GranularityDay},
			setup: func(repo *mocks.MockAnalyticsRepository) {
				repo.EXPECT().RevenueSummary(gomock.Any(), p.StartDate, p.EndDate).
					Return(domain.RevenueTotals{Revenue: dec("5000"), Orders: 2}, nil)
				repo.EXPECT().RevenueSummary(gomock.Any(), p.PreviousStartDate, p.PreviousEndDate).
					Return(domain.RevenueTotals{Revenue: decimal.Zero}, nil)
				repo.EXPECT().RevenueSeries(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				repo.EXPECT().CategoryBreakdown(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, report *domain.RevenueReport, err error) {
				require.NoError(t, err)
				assert.Zero(t, report.Metrics.Growth)
				assert.Equal(t, 5000.0, report.Metrics.TotalRevenue)
			},
		},
		{
			name:  "monthly granularity",
			query: RevenueQuery{Period: p, Granularity: domain.GranularityMonth},
			setup: func(repo *mocks.MockAnalyticsRepository) {
				repo.EXPECT().RevenueSummary(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.RevenueTotals{}, nil).Times(2)
				repo.EXPECT().RevenueSeries(gomock.Any(), p.StartDate, p.EndDate, domain.GranularityMonth).Return(nil, nil)
				repo.EXPECT().CategoryBreakdown(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, report *domain.RevenueReport, err error) {
				require.NoError(t, err)
				require.Len(t, report.Data, 2)
				assert.Equal(t, "2026-09-01", report.Data[0].Date)
				assert.Equal(t, "2026-10-01", report.Data[1].Date)
			},
		},
		{
			name:  "store failure fails the whole report",
			query: RevenueQuery{Period: p, Granularity: domain.GranularityDay, Comparison: true},
			setup: func(repo *mocks.MockAnalyticsRepository) {
				repo.EXPECT().RevenueSummary(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.RevenueTotals{}, errStore).AnyTimes()
				repo.EXPECT().RevenueSeries(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
				repo.EXPECT().CategoryBreakdown(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
			},
			validate: func(t *testing.T, report *domain.RevenueReport, err error) {
				assert.ErrorIs(t, err, errStore)
				assert.Nil(t, report)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			tt.setup(repo)

			report, err := service.Revenue(context.Background(), tt.query)

			tt.validate(t, report, err)
		})
	}
}

func TestService_Products(t *testing.T) {
	p := testPeriod

	tests := []struct {
		name     string
		query    ProductQuery
		setup    func(repo *mocks.MockAnalyticsRepository)
		validate func(t *testing.T, report *domain.ProductReport, err error)
	}{
		{
			name:  "top products with real growth",
			query: ProductQuery{Period: p, SortBy: domain.ProductSortProfit},
			setup: func(repo *mocks.MockAnalyticsRepository) {
				repo.EXPECT().CatalogStats(gomock.Any()).Return(domain.CatalogStats{
					TotalProducts:  3,
					LowStock:       1,
					OutOfStock:     1,
					TotalInventory: 73,
					AveragePrice:   dec("1933.323"),
				}, nil)
				repo.EXPECT().ItemTotals(gomock.Any(), p.StartDate, p.EndDate).
					Return(domain.RevenueTotals{Revenue: dec("5999.97"), Orders: 3, Units: 6}, nil)
				repo.EXPECT().ItemTotals(gomock.Any(), p.PreviousStartDate, p.PreviousEndDate).
					Return(domain.RevenueTotals{Revenue: dec("3999.98"), Orders: 2, Units: 4}, nil)
				repo.EXPECT().CategoryBreakdown(gomock.Any(), p.StartDate, p.EndDate).
					Return([]domain.CategoryRow{{Category: "necklaces", Revenue: dec("5999.98"), Units: 2}}, nil)
				repo.EXPECT().ProductPerformance(gomock.Any(), p.StartDate, p.EndDate, domain.ProductSortProfit, 10).
					Return([]domain.ProductRow{
						{ID: 1, Name: "Diamond Necklace", Category: "necklaces", Revenue: dec("5999.98"), Units: 2, Orders: 2, Profit: dec("3599.98"), Rating: 4.76, Inventory: 8},
						{ID: 2, Name: "Gold Bracelet", Category: "bracelets", Revenue: decimal.Zero, Profit: decimal.Zero, Inventory: 0},
					}, nil)
				repo.EXPECT().ProductSalesSeries(gomock.Any(), p.StartDate, p.EndDate, domain.GranularityDay).
					Return([]domain.SeriesRow{{Bucket: p.StartDate.AddDate(0, 0, 3), Revenue: dec("5999.98"), Orders: 2, Units: 2}}, nil)
				repo.EXPECT().ProductRevenue(gomock.Any(), p.PreviousStartDate, p.PreviousEndDate, []int64{1, 2}).
					Return(map[int64]decimal.Decimal{1: dec("2999.99")}, nil)
			},
			validate: func(t *testing.T, report *domain.ProductReport, err error) {
				require.NoError(t, err)

				assert.Equal(t, domain.ProductMetrics{
					TotalProducts:      3,
					TotalRevenue:       5999.97,
					TotalUnitsSold:     6,
					AveragePrice:       1933.32,
					RevenueGrowth:      50,
					UnitsGrowth:        50,
					LowStockProducts:   1,
					OutOfStockProducts: 1,
					InventoryTurns:     1,
				}, report.Metrics)

				require.Len(t, report.TopProducts, 2)
				assert.Equal(t, domain.ProductPerformance{
					ID:           1,
					Name:         "Diamond Necklace",
					Category:     "necklaces",
					Revenue:      5999.98,
					UnitsSold:    2,
					Orders:       2,
					Rating:       4.8,
					Profit:       3599.98,
					ProfitMargin: 60,
					Growth:       100,
					Inventory:    8,
				}, report.TopProducts[0])
				assert.Zero(t, report.TopProducts[1].Growth)
				assert.Zero(t, report.TopProducts[1].ProfitMargin)

				assert.Equal(t, []domain.CategoryPerformance{
					{Category: "necklaces", Revenue: 5999.98, UnitsSold: 2, Percentage: 100, Color: domain.CategoryPalette[0]},
				}, report.Categories)

				require.Len(t, report.SalesData, 30)
				assert.Equal(t, domain.SalesPoint{Date: "2026-09-22", Revenue: 5999.98, UnitsSold: 2, Orders: 2}, report.SalesData[3])
			},
		},
		{
			name:  "empty catalog",
			query: ProductQuery{Period: p, SortBy: domain.ProductSortRevenue, Limit: 5},
			setup: func(repo *mocks.MockAnalyticsRepository) {
				repo.EXPECT().CatalogStats(gomock.Any()).Return(domain.CatalogStats{}, nil)
				repo.EXPECT().ItemTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.RevenueTotals{}, nil).Times(2)
				repo.EXPECT().CategoryBreakdown(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.CategoryRow{}, nil)
				repo.EXPECT().ProductPerformance(gomock.Any(), gomock.Any(), gomock.Any(), domain.ProductSortRevenue, 5).Return([]domain.ProductRow{}, nil)
				repo.EXPECT().ProductSalesSeries(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.SeriesRow{}, nil)
				repo.EXPECT().ProductRevenue(gomock.Any(), gomock.Any(), gomock.Any(), []int64{}).Return(map[int64]decimal.Decimal{}, nil)
			},
			validate: func(t *testing.T, report *domain.ProductReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.ProductMetrics{}, report.Metrics)
				assert.NotNil(t, report.TopProducts)
				assert.Empty(t, report.TopProducts)
				assert.NotNil(t, report.Categories)
				assert.Len(t, report.SalesData, 30)
			},
		},
		{
			name:  "comparison lookup failure",
			query: ProductQuery{Period: p},
			setup: func(repo *mocks.MockAnalyticsRepository) {
				repo.EXPECT().CatalogStats(gomock.Any()).Return(domain.CatalogStats{}, nil)
				repo.EXPECT().ItemTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.RevenueTotals{}, nil).Times(2)
				repo.EXPECT().CategoryBreakdown(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				repo.EXPECT().ProductPerformance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 10).Return([]domain.ProductRow{{ID: 9}}, nil)
				repo.EXPECT().ProductSalesSeries(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				repo.EXPECT().ProductRevenue(gomock.Any(), gomock.Any(), gomock.Any(), []int64{9}).Return(nil, errStore)
			},
			validate: func(t *testing.T, report *domain.ProductReport, err error) {
				assert.ErrorIs(t, err, errStore)
				assert.Nil(t, report)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			tt.setup(repo)

			report, err := service.Products(context.Background(), tt.query)

			tt.validate(t, report, err)
		})
	}
}

func TestService_Geographic(t *testing.T) {
	p := testPeriod

	t.Run("other is listed but left out of the percentages", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().RegionBreakdown(gomock.Any(), p.StartDate, p.EndDate).Return([]domain.RegionRow{
			{Region: domain.RegionNorthAmerica, Customers: 3, Orders: 4, Revenue: dec("3000")},
			{Region: domain.RegionMiddleEast, Customers: 1, Orders: 1, Revenue: dec("1000")},
			{Region: domain.RegionOther, Customers: 6, Orders: 6, Revenue: dec("9000")},
		}, nil)

		reports, err := service.Geographic(context.Background(), p)
		require.NoError(t, err)
		require.Len(t, reports, len(domain.Regions))

		assert.Equal(t, domain.RegionReport{
			Region:             domain.RegionNorthAmerica,
			Customers:          3,
			Orders:             4,
			Revenue:            3000,
			AvgOrderValue:      750,
			CustomerPercentage: 75,
			RevenuePercentage:  75,
		}, reports[0])
		assert.Equal(t, domain.RegionMiddleEast, reports[3].Region)
		assert.Equal(t, 25.0, reports[3].CustomerPercentage)
		assert.Equal(t, 25.0, reports[3].RevenuePercentage)

		other := reports[len(reports)-1]
		assert.Equal(t, domain.RegionOther, other.Region)
		assert.Equal(t, int64(6), other.Customers)
		assert.Zero(t, other.CustomerPercentage)
		assert.Zero(t, other.RevenuePercentage)

		var customerShare, revenueShare float64
		for _, r := range reports {
			customerShare += r.CustomerPercentage
			revenueShare += r.RevenuePercentage
		}
		assert.InDelta(t, 100, customerShare, 0.05)
		assert.InDelta(t, 100, revenueShare, 0.05)
	})

	t.Run("no orders", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().RegionBreakdown(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.RegionRow{}, nil)

		reports, err := service.Geographic(context.Background(), p)
		require.NoError(t, err)
		require.Len(t, reports, len(domain.Regions))
		for _, r := range reports {
			assert.Zero(t, r.Revenue)
			assert.Zero(t, r.CustomerPercentage)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().RegionBreakdown(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errStore)

		reports, err := service.Geographic(context.Background(), p)

		assert.ErrorIs(t, err, errStore)
		assert.Nil(t, reports)
	})
}

func TestService_Customers(t *testing.T) {
	p := testPeriod

	tests := []struct {
		name     string
		totals   domain.CustomerTotals
		err      error
		expected *domain.CustomerReport
	}{
		{
			name:   "mixed new and returning customers",
			totals: domain.CustomerTotals{Total: 10, New: 4, Revenue: dec("2500")},
			expected: &domain.CustomerReport{
				TotalCustomers:        10,
				NewCustomers:          4,
				ReturningCustomers:    6,
				CustomerRetentionRate: 60,
				AverageLifetimeValue:  250,
			},
		},
		{
			name:     "no customers",
			totals:   domain.CustomerTotals{},
			expected: &domain.CustomerReport{},
		},
		{
			name: "store failure",
			err:  errStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			repo.EXPECT().CustomerSummary(gomock.Any(), p.StartDate, p.EndDate).Return(tt.totals, tt.err)

			report, err := service.Customers(context.Background(), p)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, report)
		})
	}
}

func TestInventoryTurns(t *testing.T) {
	assert.Equal(t, 1.0, inventoryTurns(testPeriod, 6, 73))
	assert.Zero(t, inventoryTurns(testPeriod, 0, 10))
	assert.Equal(t, 146.0, inventoryTurns(domain.ResolvePeriod("1y", "", "", testNow), 146, 0))
}
