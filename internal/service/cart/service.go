package cart

import (
	"context"
	"errors"

	"ecommerce-backend/internal/domain"
	cartrepo "ecommerce-backend/internal/repository/cart"
)

type repo interface {
	Create(ctx context.Context, userID int64) (*domain.Cart, error)
	List(ctx context.Context) ([]domain.Cart, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Cart, error)
	GetByID(ctx context.Context, id int64) (*domain.Cart, error)
	AddItem(ctx context.Context, cartID, productID int64) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, cartID, itemID int64) error
	Delete(ctx context.Context, id int64) error
}

// Service owns cart reads and mutations. Reads are ownership-scoped with an
// admin bypass; mutations are strictly owner-only.
type Service struct {
	repo repo
}

func New(repo cartrepo.Repository) *Service {
	return &Service{repo: repo}
}

// AddItemInput carries the product reference for a new cart item.
type AddItemInput struct {
	ProductID int64 `json:"product_id"`
}

func (s *Service) Create(ctx context.Context, callerID int64) (*domain.Cart, error) {
	return s.repo.Create(ctx, callerID)
}

// List returns all carts for admins, the caller's own carts otherwise.
func (s *Service) List(ctx context.Context, caller domain.Caller) ([]domain.Cart, error) {
	if caller.IsAdmin() {
		return s.repo.List(ctx)
	}
	return s.repo.ListByUser(ctx, caller.ID)
}

// Get returns the cart with its items. A cart the caller may not see is
// reported as not found.
func (s *Service) Get(ctx context.Context, id int64, caller domain.Caller) (*domain.Cart, error) {
	cart, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.DetailedError{Err: domain.ErrNotFound, Detail: "Cart not found"}
		}
		return nil, err
	}
	if err := domain.Authorize(caller, cart.UserID); err != nil {
		return nil, domain.DetailedError{Err: domain.ErrNotFound, Detail: "Cart not found"}
	}
	return cart, nil
}

func (s *Service) AddItem(ctx context.Context, cartID int64, in AddItemInput, caller domain.Caller) (*domain.CartItem, error) {
	if in.ProductID == 0 {
		return nil, domain.ValidationError{Detail: "product_id required"}
	}
	if err := s.checkOwner(ctx, cartID, caller, "You can only add item to your cart"); err != nil {
		return nil, err
	}
	return s.repo.AddItem(ctx, cartID, in.ProductID)
}

func (s *Service) RemoveItem(ctx context.Context, cartID, itemID int64, caller domain.Caller) error {
	if err := s.checkOwner(ctx, cartID, caller, "You can only delete item from your cart"); err != nil {
		return err
	}
	return s.repo.RemoveItem(ctx, cartID, itemID)
}

func (s *Service) Delete(ctx context.Context, cartID int64, caller domain.Caller) error {
	if err := s.checkOwner(ctx, cartID, caller, "You can only delete your cart"); err != nil {
		return err
	}
	return s.repo.Delete(ctx, cartID)
}

// checkOwner loads the cart and applies the strict mutation policy: 404 for
// a missing cart, 403 for anyone but the owner, admins included.
func (s *Service) checkOwner(ctx context.Context, cartID int64, caller domain.Caller, denied string) error {
	cart, err := s.repo.GetByID(ctx, cartID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DetailedError{Err: domain.ErrNotFound, Detail: "Cart not found"}
		}
		return err
	}
	if err := domain.AuthorizeOwner(caller, cart.UserID); err != nil {
		return domain.DetailedError{Err: err, Detail: denied}
	}
	return nil
}
