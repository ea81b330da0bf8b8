package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/jasonco/storefront-analytics/internal/domain"
)

const (
	ordersTable     = "orders o"
	orderItemsTable = "order_items oi"
	productsTable   = "products p"

	joinOrders        = "orders o ON o.id = oi.order_id"
	joinOrderUnits    = "(SELECT order_id, SUM(quantity) AS units FROM order_items GROUP BY order_id) i ON i.order_id = o.id"
	shippingCountry   = "UPPER(TRIM(o.shipping_country))"
	customerKeyColumn = "COALESCE(o.user_id, LOWER(o.customer_email), 'order-' || o.id::text)"
)

var productSortColumns = map[domain.ProductSort]string{
	domain.ProductSortRevenue: "revenue DESC",
	domain.ProductSortUnits:   "units DESC",
	domain.ProductSortRating:  "rating DESC",
	domain.ProductSortProfit:  "profit DESC",
}

func inPeriod(from, to time.Time) squirrel.Sqlizer {
	return squirrel.Expr("o.created_at BETWEEN ? AND ?", from, to)
}

func countsAsRevenue() squirrel.Sqlizer {
	return squirrel.Expr("o.status <> ALL(?)", pq.Array(domain.NonRevenueStatusValues()))
}

func truncUnit(g domain.Granularity) string {
	switch g {
	case domain.GranularityWeek, domain.GranularityMonth:
		return string(g)
	default:
		return string(domain.GranularityDay)
	}
}

func buildRevenueSummaryQuery(from, to time.Time) (string, []interface{}, error) {
	return squirrel.
		Select(
			"COALESCE(SUM(o.total_amount), 0) AS revenue",
			"COUNT(o.id) AS orders",
			"COALESCE(SUM(i.units), 0) AS units",
		).
		From(ordersTable).
		LeftJoin(joinOrderUnits).
		Where(inPeriod(from, to)).
		Where(countsAsRevenue()).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildItemTotalsQuery(from, to time.Time) (string, []interface{}, error) {
	return squirrel.
		Select(
			"COALESCE(SUM(oi.line_total), 0) AS revenue",
			"COUNT(DISTINCT oi.order_id) AS orders",
			"COALESCE(SUM(oi.quantity), 0) AS units",
		).
		From(orderItemsTable).
		Join(joinOrders).
		Where(inPeriod(from, to)).
		Where(countsAsRevenue()).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// buildSeriesQuery left joins the per bucket aggregate onto generate_series so that buckets
// without sales still come back as zero rows. aggregate must select bucket, revenue, orders
// and units in that order.
func buildSeriesQuery(aggregate squirrel.SelectBuilder, from, to time.Time, g domain.Granularity) (string, []interface{}, error) {
	inner, innerArgs, err := aggregate.GroupBy("1").ToSql()
	if err != nil {
		return "", nil, err
	}

	unit := truncUnit(g)
	query := fmt.Sprintf(`SELECT b.bucket, COALESCE(a.revenue, 0), COALESCE(a.orders, 0), COALESCE(a.units, 0)
FROM generate_series(date_trunc('%[1]s', ?::timestamp), date_trunc('%[1]s', ?::timestamp), interval '1 %[1]s') AS b(bucket)
LEFT JOIN (%[2]s) a ON a.bucket = b.bucket
ORDER BY b.bucket`, unit, inner)

	query, err = squirrel.Dollar.ReplacePlaceholders(query)
	if err != nil {
		return "", nil, err
	}

	return query, append([]interface{}{from, to}, innerArgs...), nil
}

func buildRevenueSeriesQuery(from, to time.Time, g domain.Granularity) (string, []interface{}, error) {
	aggregate := squirrel.
		Select(
			fmt.Sprintf("date_trunc('%s', o.created_at) AS bucket", truncUnit(g)),
			"SUM(o.total_amount) AS revenue",
			"COUNT(o.id) AS orders",
			"COALESCE(SUM(i.units), 0) AS units",
		).
		From(ordersTable).
		LeftJoin(joinOrderUnits).
		Where(inPeriod(from, to)).
		Where(countsAsRevenue())

	return buildSeriesQuery(aggregate, from, to, g)
}

func buildProductSalesSeriesQuery(from, to time.Time, g domain.Granularity) (string, []interface{}, error) {
	aggregate := squirrel.
		Select(
			fmt.Sprintf("date_trunc('%s', o.created_at) AS bucket", truncUnit(g)),
			"SUM(oi.line_total) AS revenue",
			"COUNT(DISTINCT oi.order_id) AS orders",
			"SUM(oi.quantity) AS units",
		).
		From(orderItemsTable).
		Join(joinOrders).
		Where(inPeriod(from, to)).
		Where(countsAsRevenue())

	return buildSeriesQuery(aggregate, from, to, g)
}

func buildCategoryBreakdownQuery(from, to time.Time) (string, []interface{}, error) {
	return squirrel.
		Select().
		Column("COALESCE(NULLIF(TRIM(p.category), ''), ?) AS category", domain.UncategorizedCategory).
		Column("COALESCE(SUM(oi.line_total), 0) AS revenue").
		Column("COALESCE(SUM(oi.quantity), 0) AS units").
		From(orderItemsTable).
		Join(joinOrders).
		LeftJoin("products p ON p.id = oi.product_id").
		Where(inPeriod(from, to)).
		Where(countsAsRevenue()).
		GroupBy("1").
		OrderBy("revenue DESC", "category ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildProductPerformanceQuery(from, to time.Time, sortBy domain.ProductSort, limit int) (string, []interface{}, error) {
	sales, salesArgs, err := squirrel.
		Select(
			"oi.product_id",
			"SUM(oi.line_total) AS revenue",
			"SUM(oi.quantity) AS units",
			"COUNT(DISTINCT oi.order_id) AS orders",
		).
		From(orderItemsTable).
		Join(joinOrders).
		Where(inPeriod(from, to)).
		Where(countsAsRevenue()).
		GroupBy("oi.product_id").
		ToSql()
	if err != nil {
		return "", nil, err
	}

	orderBy := []string{productSortColumns[domain.ProductSortRevenue]}
	if column, ok := productSortColumns[sortBy]; ok && sortBy != domain.ProductSortRevenue {
		orderBy = append([]string{column}, orderBy...)
	}

	return squirrel.
		Select("p.id", "p.name").
		Column("COALESCE(NULLIF(TRIM(p.category), ''), ?) AS category", domain.UncategorizedCategory).
		Column("COALESCE(s.revenue, 0) AS revenue").
		Column("COALESCE(s.units, 0) AS units").
		Column("COALESCE(s.orders, 0) AS orders").
		Column("COALESCE(s.revenue, 0) - COALESCE(s.units, 0) * COALESCE(p.cost_price, 0) AS profit").
		Column("COALESCE(p.average_rating, 0) AS rating").
		Column("COALESCE(p.inventory_count, 0) AS inventory").
		From(productsTable).
		LeftJoin("("+sales+") s ON s.product_id = p.id", salesArgs...).
		OrderBy(append(orderBy, "p.id ASC")...).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildProductRevenueQuery(from, to time.Time, ids []int64) (string, []interface{}, error) {
	return squirrel.
		Select("oi.product_id", "COALESCE(SUM(oi.line_total), 0) AS revenue").
		From(orderItemsTable).
		Join(joinOrders).
		Where(inPeriod(from, to)).
		Where(countsAsRevenue()).
		Where(squirrel.Expr("oi.product_id = ANY(?)", pq.Array(ids))).
		GroupBy("oi.product_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildCatalogStatsQuery() (string, []interface{}, error) {
	return squirrel.
		Select("COUNT(*) AS total_products").
		Column("COUNT(*) FILTER (WHERE p.inventory_count > 0 AND p.inventory_count <= COALESCE(p.low_stock_threshold, ?)) AS low_stock", domain.DefaultLowStockThreshold).
		Column("COUNT(*) FILTER (WHERE COALESCE(p.inventory_count, 0) <= 0) AS out_of_stock").
		Column("COALESCE(SUM(GREATEST(p.inventory_count, 0)), 0) AS total_inventory").
		Column("COALESCE(AVG(p.price), 0) AS average_price").
		From(productsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// regionCase mirrors domain.ClassifyRegion in SQL.
func regionCase(column string) squirrel.CaseBuilder {
	c := squirrel.Case()
	for _, region := range domain.Regions {
		codes := domain.RegionCountries(region)
		if len(codes) == 0 {
			continue
		}
		c = c.When(squirrel.Eq{column: codes}, fmt.Sprintf("'%s'", region))
	}

	return c.Else(fmt.Sprintf("'%s'", domain.RegionOther))
}

func buildRegionBreakdownQuery(from, to time.Time) (string, []interface{}, error) {
	return squirrel.
		Select().
		Column(squirrel.Alias(regionCase(shippingCountry), "region")).
		Column("COUNT(DISTINCT " + customerKeyColumn + ") AS customers").
		Column("COUNT(o.id) AS orders").
		Column("COALESCE(SUM(o.total_amount), 0) AS revenue").
		From(ordersTable).
		Where(inPeriod(from, to)).
		Where(countsAsRevenue()).
		GroupBy("region").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// buildCustomerSummaryQuery counts the customers who ordered in the period and how many of them
// had never ordered before it.
func buildCustomerSummaryQuery(from, to time.Time) (string, []interface{}, error) {
	current, currentArgs, err := squirrel.
		Select(customerKeyColumn+" AS customer_key", "SUM(o.total_amount) AS revenue").
		From(ordersTable).
		Where(inPeriod(from, to)).
		Where(countsAsRevenue()).
		GroupBy("1").
		ToSql()
	if err != nil {
		return "", nil, err
	}

	prior, priorArgs, err := squirrel.
		Select("DISTINCT " + customerKeyColumn + " AS customer_key").
		From(ordersTable).
		Where(squirrel.Lt{"o.created_at": from}).
		Where(countsAsRevenue()).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return squirrel.
		Select(
			"COUNT(*) AS total_customers",
			"COUNT(*) FILTER (WHERE pr.customer_key IS NULL) AS new_customers",
			"COALESCE(SUM(pc.revenue), 0) AS revenue",
		).
		Prefix(
			"WITH period_customers AS ("+current+"), prior_customers AS ("+prior+")",
			append(currentArgs, priorArgs...)...,
		).
		From("period_customers pc").
		LeftJoin("prior_customers pr ON pr.customer_key = pc.customer_key").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
