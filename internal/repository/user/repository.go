package user

import (
	"context"

	"ecommerce-backend/internal/domain"
)

// UpdateInfoInput carries a partial update; nil fields are left unchanged.
type UpdateInfoInput struct {
	Name  *string
	Email *string
}

// Repository persists and fetches users.
type Repository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateInfo(ctx context.Context, id int64, in UpdateInfoInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
