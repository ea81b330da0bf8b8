package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
	OrderStatusFailed     OrderStatus = "failed"
)

// NonRevenueStatuses never count toward revenue, units or order totals.
var NonRevenueStatuses = []OrderStatus{
	OrderStatusCancelled,
	OrderStatusRefunded,
	OrderStatusFailed,
}

// NonRevenueStatusValues returns the excluded statuses as plain strings for query parameters.
func NonRevenueStatusValues() []string {
	values := make([]string, 0, len(NonRevenueStatuses))
	for _, status := range NonRevenueStatuses {
		values = append(values, string(status))
	}

	return values
}

type Order struct {
	ID              int64           `json:"id"`
	OrderNumber     string          `json:"order_number"`
	UserID          *string         `json:"user_id"`
	CustomerEmail   *string         `json:"customer_email"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          OrderStatus     `json:"status"`
	ShippingCountry string          `json:"shipping_country"`
	ShippingState   string          `json:"shipping_state"`
	ShippingCity    string          `json:"shipping_city"`
	Items           []OrderItem     `json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}
