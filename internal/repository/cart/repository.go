package cart

import (
	"context"

	"ecommerce-backend/internal/domain"
)

// Repository persists carts and their items. GetByID loads items eagerly so
// the order workflow can consume a cart in one round trip.
type Repository interface {
	Create(ctx context.Context, userID int64) (*domain.Cart, error)
	List(ctx context.Context) ([]domain.Cart, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Cart, error)
	GetByID(ctx context.Context, id int64) (*domain.Cart, error)
	AddItem(ctx context.Context, cartID, productID int64) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, cartID, itemID int64) error
	Delete(ctx context.Context, id int64) error
}
