// Package seed fills a development database with a jewelry catalog and a history of orders.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/jasonco/storefront-analytics/internal/domain"
	"github.com/jasonco/storefront-analytics/pkg/utils"
)

const (
	orderNumberAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	orderNumberSuffix   = 4
	maxItemsPerOrder    = 3
	maxQuantity         = 2
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func costOf(price string, ratio float64) *decimal.Decimal {
	cost := money(price).Mul(decimal.NewFromFloat(ratio)).Round(2)
	return &cost
}

// Catalog is the fixed product list used by the seed
func Catalog() []domain.Product {
	return []domain.Product{
		{Name: "Diamond Necklace", Category: "necklaces", Price: money("2999.99"), CostPrice: costOf("2999.99", 0.45), InventoryCount: 12, AverageRating: 4.8, ReviewCount: 34},
		{Name: "Pearl Pendant", Category: "necklaces", Price: money("649.00"), CostPrice: costOf("649.00", 0.4), InventoryCount: 3, AverageRating: 4.5, ReviewCount: 18},
		{Name: "Gold Bracelet", Category: "bracelets", Price: money("799.99"), CostPrice: costOf("799.99", 0.5), InventoryCount: 25, AverageRating: 4.6, ReviewCount: 41},
		{Name: "Tennis Bracelet", Category: "bracelets", Price: money("1899.00"), CostPrice: costOf("1899.00", 0.55), InventoryCount: 0, AverageRating: 4.9, ReviewCount: 12},
		{Name: "Sapphire Ring", Category: "rings", Price: money("1999.99"), CostPrice: costOf("1999.99", 0.42), InventoryCount: 8, AverageRating: 4.7, ReviewCount: 27},
		{Name: "Emerald Ring", Category: "rings", Price: money("2499.00"), CostPrice: costOf("2499.00", 0.48), InventoryCount: 4, AverageRating: 4.4, ReviewCount: 9},
		{Name: "Pearl Earrings", Category: "earrings", Price: money("399.99"), CostPrice: costOf("399.99", 0.35), InventoryCount: 40, AverageRating: 4.3, ReviewCount: 56},
		{Name: "Diamond Studs", Category: "earrings", Price: money("1299.00"), CostPrice: costOf("1299.00", 0.5), InventoryCount: 15, AverageRating: 4.8, ReviewCount: 63},
		{Name: "Rose Gold Watch", Category: "watches", Price: money("3499.00"), InventoryCount: 6, AverageRating: 4.2, ReviewCount: 7},
		{Name: "Silver Anklet", Category: "", Price: money("149.99"), CostPrice: costOf("149.99", 0.3), InventoryCount: 60},
	}
}

type destination struct {
	Country string
	State   string
	City    string
}

var destinations = []destination{
	{"US", "NY", "New York"},
	{"US", "CA", "Los Angeles"},
	{"CA", "ON", "Toronto"},
	{"MX", "CMX", "Mexico City"},
	{"BR", "SP", "Sao Paulo"},
	{"GB", "", "London"},
	{"FR", "", "Paris"},
	{"DE", "", "Berlin"},
	{"AE", "", "Dubai"},
	{"SA", "", "Riyadh"},
	{"JP", "", "Tokyo"},
	{"SG", "", "Singapore"},
	{"AU", "NSW", "Sydney"},
	{"ZA", "", "Cape Town"},
	{"NG", "", "Lagos"},
	{"", "", ""},
}

var weightedStatuses = []domain.OrderStatus{
	domain.OrderStatusCompleted,
	domain.OrderStatusCompleted,
	domain.OrderStatusDelivered,
	domain.OrderStatusDelivered,
	domain.OrderStatusShipped,
	domain.OrderStatusProcessing,
	domain.OrderStatusConfirmed,
	domain.OrderStatusPending,
	domain.OrderStatusCancelled,
	domain.OrderStatusRefunded,
	domain.OrderStatusFailed,
}

// Generator builds random orders. The same seed and clock produce the same orders, order
// numbers aside.
type Generator struct {
	rand      *rand.Rand
	now       time.Time
	customers int
}

func NewGenerator(seed int64, now time.Time, customers int) *Generator {
	if customers <= 0 {
		customers = 1
	}

	return &Generator{
		rand:      rand.New(rand.NewSource(seed)),
		now:       now.UTC(),
		customers: customers,
	}
}

// Orders returns count orders spread over the last days days. Products must carry their ids.
func (g *Generator) Orders(count, days int, products []domain.Product) ([]domain.Order, error) {
	if len(products) == 0 {
		return nil, errors.New("no products to order")
	}
	if days <= 0 {
		days = 1
	}

	orders := make([]domain.Order, 0, count)
	for i := 0; i < count; i++ {
		createdAt := g.now.Add(-time.Duration(g.rand.Int63n(int64(days) * int64(24*time.Hour))))

		number, err := orderNumber(createdAt)
		if err != nil {
			return nil, err
		}

		dest := destinations[g.rand.Intn(len(destinations))]
		order := domain.Order{
			OrderNumber:     number,
			Status:          weightedStatuses[g.rand.Intn(len(weightedStatuses))],
			ShippingCountry: dest.Country,
			ShippingState:   dest.State,
			ShippingCity:    dest.City,
			CreatedAt:       createdAt,
		}

		customer := g.rand.Intn(g.customers)
		email := fmt.Sprintf("customer%03d@example.com", customer)
		order.CustomerEmail = &email
		if customer%2 == 0 {
			userID := fmt.Sprintf("user_%03d", customer)
			order.UserID = &userID
		}

		total := decimal.Zero
		for _, product := range g.pickProducts(products) {
			quantity := int64(g.rand.Intn(maxQuantity) + 1)
			lineTotal := product.Price.Mul(decimal.NewFromInt(quantity))
			order.Items = append(order.Items, domain.OrderItem{
				ProductID: product.ID,
				Quantity:  quantity,
				UnitPrice: product.Price,
				LineTotal: lineTotal,
			})
			total = total.Add(lineTotal)
		}
		order.TotalAmount = total

		orders = append(orders, order)
	}

	return orders, nil
}

func (g *Generator) pickProducts(products []domain.Product) []domain.Product {
	n := g.rand.Intn(maxItemsPerOrder) + 1
	if n > len(products) {
		n = len(products)
	}

	picked := make([]domain.Product, 0, n)
	for _, i := range g.rand.Perm(len(products))[:n] {
		picked = append(picked, products[i])
	}
	return picked
}

// orderNumber formats JC-YYYYMMDD-XXXX
func orderNumber(createdAt time.Time) (string, error) {
	suffix, err := utils.GenerateCode(orderNumberAlphabet, orderNumberSuffix)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate order number")
	}

	return fmt.Sprintf("JC-%s-%s", createdAt.Format("20060102"), suffix), nil
}

func nullable(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// InsertProducts stores products and fills in their ids
func InsertProducts(ctx context.Context, tx *sql.Tx, products []domain.Product) error {
	for i := range products {
		product := &products[i]

		threshold := product.LowStockThreshold
		if threshold == 0 {
			threshold = domain.DefaultLowStockThreshold
		}

		query, args, err := squirrel.StatementBuilder.
			Insert("products").
			Columns("name", "category", "price", "cost_price", "inventory_count", "low_stock_threshold", "average_rating", "review_count").
			Values(product.Name, nullable(product.Category), product.Price, product.CostPrice, product.InventoryCount, threshold, product.AverageRating, product.ReviewCount).
			Suffix("RETURNING id").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "failed to build product insert")
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&product.ID); err != nil {
			return errors.Wrapf(err, "failed to insert product %s", product.Name)
		}
	}

	return nil
}

// InsertOrders stores orders with their items
func InsertOrders(ctx context.Context, tx *sql.Tx, orders []domain.Order) error {
	for i := range orders {
		order := &orders[i]

		query, args, err := squirrel.StatementBuilder.
			Insert("orders").
			Columns("order_number", "user_id", "customer_email", "total_amount", "status", "shipping_country", "shipping_state", "shipping_city", "created_at").
			Values(order.OrderNumber, order.UserID, order.CustomerEmail, order.TotalAmount, string(order.Status),
				nullable(order.ShippingCountry), nullable(order.ShippingState), nullable(order.ShippingCity), order.CreatedAt).
			Suffix("RETURNING id").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "failed to build order insert")
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&order.ID); err != nil {
			return errors.Wrapf(err, "failed to insert order %s", order.OrderNumber)
		}

		items := squirrel.StatementBuilder.
			Insert("order_items").
			Columns("order_id", "product_id", "quantity", "unit_price", "line_total").
			PlaceholderFormat(squirrel.Dollar)
		for _, item := range order.Items {
			items = items.Values(order.ID, item.ProductID, item.Quantity, item.UnitPrice, item.LineTotal)
		}

		query, args, err = items.ToSql()
		if err != nil {
			return errors.Wrap(err, "failed to build order items insert")
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrapf(err, "failed to insert items of order %s", order.OrderNumber)
		}
	}

	return nil
}
