package order

import (
	"context"

	"ecommerce-backend/internal/domain"
)

// Line is one aggregated product reference: Quantity is the number of cart
// items that pointed at the product.
type Line struct {
	ProductID int64
	Quantity  int
}

// CreateInput describes the order to materialize. Lines must already be
// grouped by product.
type CreateInput struct {
	UserID          int64
	CartID          int64
	ShippingAddress string
	Lines           []Line
}

// Repository persists orders. Create runs the whole read-aggregate-write
// sequence in one transaction: product prices are read, the total is
// computed, and the order plus its items are inserted atomically.
type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}
