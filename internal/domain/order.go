package domain

import (
	"fmt"
	"time"
)

// OrderStatus is the order lifecycle enum. Any valid value may replace any
// other; there is no transition graph.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusCancelled OrderStatus = "cancelled"
	StatusShipping  OrderStatus = "shipping"
	StatusDelivered OrderStatus = "delivered"
)

// ParseOrderStatus validates a status string against the enum.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusShipping, StatusDelivered:
		return OrderStatus(s), nil
	}
	return "", ValidationError{Detail: fmt.Sprintf("invalid order status %q", s)}
}

// Order is an immutable snapshot derived from a cart. Status is the only
// field that changes after creation. CartID goes nil if the source cart is
// later deleted.
type Order struct {
	ID              int64       `json:"id"`
	UserID          int64       `json:"user_id"`
	CartID          *int64      `json:"cart_id"`
	Status          OrderStatus `json:"order_status"`
	ShippingAddress string      `json:"shipping_address"`
	AmountCents     int64       `json:"order_amount_cents"`
	OrderDate       time.Time   `json:"order_date"`
	Items           []OrderItem `json:"order_items,omitempty"`
}

// OrderItem aggregates all cart items for one product: Quantity is the count
// of that product in the source cart at creation time.
type OrderItem struct {
	ID          int64     `json:"id"`
	OrderID     int64     `json:"order_id"`
	ProductID   int64     `json:"product_id"`
	Quantity    int       `json:"quantity"`
	CreatedDate time.Time `json:"created_date"`
}
