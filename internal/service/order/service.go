package order

import (
	"context"
	"errors"
	"strings"

	"ecommerce-backend/internal/domain"
	orderrepo "ecommerce-backend/internal/repository/order"
)

type repo interface {
	Create(ctx context.Context, in orderrepo.CreateInput) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

type cartRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Cart, error)
}

// Service converts carts into orders and manages the order lifecycle.
type Service struct {
	repo  repo
	carts cartRepo
}

func New(repo repo, carts cartRepo) *Service {
	return &Service{repo: repo, carts: carts}
}

// CreateInput captures fields expected by the create-order endpoint.
type CreateInput struct {
	CartID          int64  `json:"cart_id"`
	ShippingAddress string `json:"shipping_address"`
}

// Create converts the cart into an immutable order. Only the cart owner may
// do this; admins get no bypass here, unlike reads. Cart items are grouped
// by product, so three items referencing two products become two order
// items with quantities. The aggregate-and-insert runs atomically in the
// repository; if any referenced product has been deleted the whole
// operation aborts and no order is created.
func (s *Service) Create(ctx context.Context, in CreateInput, caller domain.Caller) (*domain.Order, error) {
	if strings.TrimSpace(in.ShippingAddress) == "" {
		return nil, domain.ValidationError{Detail: "shipping_address required"}
	}

	cart, err := s.carts.GetByID(ctx, in.CartID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.DetailedError{Err: domain.ErrNotFound, Detail: "Cart not found"}
		}
		return nil, err
	}
	if err := domain.AuthorizeOwner(caller, cart.UserID); err != nil {
		return nil, domain.DetailedError{Err: err, Detail: "You can only create order based on your cart"}
	}

	// Group by product, preserving first-occurrence order. An empty cart is
	// allowed and yields a zero-amount order with no items.
	counts := make(map[int64]int, len(cart.Items))
	var productIDs []int64
	for _, item := range cart.Items {
		if counts[item.ProductID] == 0 {
			productIDs = append(productIDs, item.ProductID)
		}
		counts[item.ProductID]++
	}
	lines := make([]orderrepo.Line, 0, len(productIDs))
	for _, id := range productIDs {
		lines = append(lines, orderrepo.Line{ProductID: id, Quantity: counts[id]})
	}

	order, err := s.repo.Create(ctx, orderrepo.CreateInput{
		UserID:          caller.ID,
		CartID:          cart.ID,
		ShippingAddress: in.ShippingAddress,
		Lines:           lines,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.DetailedError{Err: domain.ErrNotFound, Detail: "Product not found"}
		case errors.Is(err, domain.ErrConflict):
			return nil, domain.DetailedError{Err: domain.ErrConflict, Detail: "An order already exists for this cart"}
		}
		return nil, err
	}
	return order, nil
}

// List returns all orders for admins, the caller's own orders otherwise.
func (s *Service) List(ctx context.Context, caller domain.Caller) ([]domain.Order, error) {
	if caller.IsAdmin() {
		return s.repo.List(ctx)
	}
	return s.repo.ListByUser(ctx, caller.ID)
}

// Get scopes the lookup by ownership: a non-admin asking for another user's
// order gets not-found, never forbidden.
func (s *Service) Get(ctx context.Context, id int64, caller domain.Caller) (*domain.Order, error) {
	var order *domain.Order
	var err error
	if caller.IsAdmin() {
		order, err = s.repo.GetByID(ctx, id)
	} else {
		order, err = s.repo.GetByIDForUser(ctx, id, caller.ID)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.DetailedError{Err: domain.ErrNotFound, Detail: "Order not found"}
		}
		return nil, err
	}
	return order, nil
}

// UpdateStatus replaces the order status. Any valid enum value is accepted;
// there is deliberately no transition graph. The handler layer restricts
// this to admins.
func (s *Service) UpdateStatus(ctx context.Context, id int64, rawStatus string, caller domain.Caller) error {
	status, err := domain.ParseOrderStatus(rawStatus)
	if err != nil {
		return err
	}
	if _, err := s.Get(ctx, id, caller); err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
