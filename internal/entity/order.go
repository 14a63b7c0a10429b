package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the order lifecycle axis:
// PENDING -> CONFIRMED -> PROCESSING -> ACTIVE, with CANCELLED reachable
// from any non-terminal state. ACTIVE and CANCELLED are terminal.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusActive     OrderStatus = "ACTIVE"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusActive, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusActive || s == OrderStatusCancelled
}

// PaymentStatus is the independent payment axis:
// PENDING -> COMPLETED | FAILED, COMPLETED -> REFUNDED.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted,
		PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// Order is the aggregate root: one buyer, one or more line items, a derived
// total. TotalAmount always equals the sum of item totals, in USD cents.
type Order struct {
	ID            uuid.UUID     `json:"id"`
	UserID        uuid.UUID     `json:"user_id"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	TotalAmount   int64         `json:"total_amount"`
	Currency      string        `json:"currency"`
	PaymentRef    string        `json:"payment_ref,omitempty"`
	Items         []*OrderItem  `json:"items,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// OrderItem is one priced route+tier position of an order. UnitPrice is
// snapshotted at order time and never tracks later pricing changes.
type OrderItem struct {
	ID              uuid.UUID      `json:"id"`
	OrderID         uuid.UUID      `json:"order_id"`
	RouteID         uuid.UUID      `json:"route_id"`
	RouteCapacityID uuid.UUID      `json:"route_capacity_id"`
	Quantity        int            `json:"quantity"    validate:"gt=0"`
	UnitPrice       int64          `json:"unit_price"`
	TotalPrice      int64          `json:"total_price"`
	Route           *Route         `json:"route,omitempty"`
	RouteCapacity   *RouteCapacity `json:"route_capacity,omitempty"`
}

// OrderItemInput is a requested line item before pricing: the unit price is
// looked up and frozen by the order service.
type OrderItemInput struct {
	RouteID         uuid.UUID `json:"route_id"          validate:"required"`
	RouteCapacityID uuid.UUID `json:"route_capacity_id" validate:"required"`
	Quantity        int       `json:"quantity"          validate:"gt=0"`
}

const OrderCurrency = "USD"
