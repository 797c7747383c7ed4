package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. No transition graph is enforced at this layer.
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order types
const (
	OrderTypeInStore  = "in_store"
	OrderTypeOnline   = "online"
	OrderTypeDelivery = "delivery"
)

// Order represents one customer order. CustomerID is nil for anonymous
// in-store orders. TotalAmount, DiscountAmount and FinalAmount are stored
// independently; FinalAmount is never derived from the other two here.
type Order struct {
	ID             int64           `json:"id" db:"id"`
	OrderNumber    string          `json:"order_number" db:"order_number"`
	CustomerID     *int64          `json:"customer_id" db:"customer_id"`
	OrderType      string          `json:"order_type" db:"order_type"`
	Status         string          `json:"status" db:"status"`
	TotalAmount    decimal.Decimal `json:"total_amount" db:"total_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount" db:"discount_amount"`
	FinalAmount    decimal.Decimal `json:"final_amount" db:"final_amount"`
	Notes          string          `json:"notes" db:"notes"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
	CompletedAt    *time.Time      `json:"completed_at" db:"completed_at"`
	Items          []OrderItem     `json:"items,omitempty" db:"-"`
}

// OrderItem is one line of an order. TotalPrice is stored as supplied,
// not recomputed from Quantity and UnitPrice.
type OrderItem struct {
	ID         int64           `json:"id" db:"id"`
	OrderID    int64           `json:"order_id" db:"order_id"`
	ProductID  int64           `json:"product_id" db:"product_id"`
	Quantity   int             `json:"quantity" db:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price" db:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price" db:"total_price"`
}

// CustomerOrderSummary is the aggregate returned by the customer order
// summary endpoint.
type CustomerOrderSummary struct {
	Customer    Customer        `json:"customer"`
	OrdersCount int64           `json:"orders_count"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
}

// ValidOrderStatus reports whether s is one of the closed order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// ValidOrderType reports whether t is one of the closed order types.
func ValidOrderType(t string) bool {
	switch t {
	case OrderTypeInStore, OrderTypeOnline, OrderTypeDelivery:
		return true
	}
	return false
}
