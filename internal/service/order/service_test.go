package order

import (
	"context"
	"errors"
	"testing"

	"ecommerce-backend/internal/domain"
	orderrepo "ecommerce-backend/internal/repository/order"
)

type stubRepo struct {
	createOrder  *domain.Order
	createErr    error
	lastCreate   orderrepo.CreateInput
	listOrders   []domain.Order
	listErr      error
	listByUser   []domain.Order
	lastListUser int64
	getOrder     *domain.Order
	getErr       error
	lastGetID    int64
	lastGetUser  int64
	scopedGet    bool
	updateErr    error
	lastStatusID int64
	lastStatus   domain.OrderStatus
	updateCalls  int
}

func (s *stubRepo) Create(_ context.Context, in orderrepo.CreateInput) (*domain.Order, error) {
	s.lastCreate = in
	return s.createOrder, s.createErr
}

func (s *stubRepo) List(_ context.Context) ([]domain.Order, error) {
	return s.listOrders, s.listErr
}

func (s *stubRepo) ListByUser(_ context.Context, userID int64) ([]domain.Order, error) {
	s.lastListUser = userID
	return s.listByUser, s.listErr
}

func (s *stubRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	s.lastGetID = id
	s.scopedGet = false
	return s.getOrder, s.getErr
}

func (s *stubRepo) GetByIDForUser(_ context.Context, id, userID int64) (*domain.Order, error) {
	s.lastGetID = id
	s.lastGetUser = userID
	s.scopedGet = true
	return s.getOrder, s.getErr
}

func (s *stubRepo) UpdateStatus(_ context.Context, id int64, status domain.OrderStatus) error {
	s.updateCalls++
	s.lastStatusID = id
	s.lastStatus = status
	return s.updateErr
}

type stubCartRepo struct {
	cart *domain.Cart
	err  error
}

func (s *stubCartRepo) GetByID(_ context.Context, _ int64) (*domain.Cart, error) {
	return s.cart, s.err
}

func owner() domain.Caller {
	return domain.Caller{ID: 7, Role: domain.RoleUser}
}

func admin() domain.Caller {
	return domain.Caller{ID: 1, Role: domain.RoleAdmin}
}

func cartWithItems(productIDs ...int64) *domain.Cart {
	cart := &domain.Cart{ID: 3, UserID: 7}
	for i, pid := range productIDs {
		cart.Items = append(cart.Items, domain.CartItem{ID: int64(i + 1), CartID: 3, ProductID: pid})
	}
	return cart
}

func TestCreateGroupsRepeatedProducts(t *testing.T) {
	repo := &stubRepo{createOrder: &domain.Order{ID: 11, AmountCents: 2500}}
	svc := New(repo, &stubCartRepo{cart: cartWithItems(1, 2, 1)})

	got, err := svc.Create(context.Background(), CreateInput{CartID: 3, ShippingAddress: "1 Main St"}, owner())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AmountCents != 2500 {
		t.Fatalf("unexpected amount: %d", got.AmountCents)
	}

	lines := repo.lastCreate.Lines
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].ProductID != 1 || lines[0].Quantity != 2 {
		t.Fatalf("unexpected first line: %+v", lines[0])
	}
	if lines[1].ProductID != 2 || lines[1].Quantity != 1 {
		t.Fatalf("unexpected second line: %+v", lines[1])
	}
	if repo.lastCreate.UserID != 7 || repo.lastCreate.CartID != 3 {
		t.Fatalf("unexpected create input: %+v", repo.lastCreate)
	}
}

func TestCreateEmptyCartAllowed(t *testing.T) {
	repo := &stubRepo{createOrder: &domain.Order{ID: 12, AmountCents: 0}}
	svc := New(repo, &stubCartRepo{cart: cartWithItems()})

	got, err := svc.Create(context.Background(), CreateInput{CartID: 3, ShippingAddress: "1 Main St"}, owner())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AmountCents != 0 {
		t.Fatalf("unexpected amount: %d", got.AmountCents)
	}
	if len(repo.lastCreate.Lines) != 0 {
		t.Fatalf("expected no lines, got %d", len(repo.lastCreate.Lines))
	}
}

func TestCreateRequiresShippingAddress(t *testing.T) {
	svc := New(&stubRepo{}, &stubCartRepo{})
	_, err := svc.Create(context.Background(), CreateInput{CartID: 3, ShippingAddress: "  "}, owner())
	var validation domain.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateCartNotFound(t *testing.T) {
	svc := New(&stubRepo{}, &stubCartRepo{err: domain.ErrNotFound})
	_, err := svc.Create(context.Background(), CreateInput{CartID: 99, ShippingAddress: "1 Main St"}, owner())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateForbiddenForNonOwner(t *testing.T) {
	svc := New(&stubRepo{}, &stubCartRepo{cart: cartWithItems(1)})
	other := domain.Caller{ID: 8, Role: domain.RoleUser}
	_, err := svc.Create(context.Background(), CreateInput{CartID: 3, ShippingAddress: "1 Main St"}, other)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestCreateForbiddenForAdminNonOwner(t *testing.T) {
	svc := New(&stubRepo{}, &stubCartRepo{cart: cartWithItems(1)})
	_, err := svc.Create(context.Background(), CreateInput{CartID: 3, ShippingAddress: "1 Main St"}, admin())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden for admin non-owner, got %v", err)
	}
}

func TestCreateProductDeletedUnderCart(t *testing.T) {
	repo := &stubRepo{createErr: domain.ErrNotFound}
	svc := New(repo, &stubCartRepo{cart: cartWithItems(1)})
	_, err := svc.Create(context.Background(), CreateInput{CartID: 3, ShippingAddress: "1 Main St"}, owner())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	var detailed domain.DetailedError
	if !errors.As(err, &detailed) || detailed.Detail != "Product not found" {
		t.Fatalf("unexpected detail: %v", err)
	}
}

func TestCreateSecondOrderForCartConflicts(t *testing.T) {
	repo := &stubRepo{createErr: domain.ErrConflict}
	svc := New(repo, &stubCartRepo{cart: cartWithItems(1)})
	_, err := svc.Create(context.Background(), CreateInput{CartID: 3, ShippingAddress: "1 Main St"}, owner())
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestListScopedByRole(t *testing.T) {
	repo := &stubRepo{
		listOrders: []domain.Order{{ID: 1}, {ID: 2}},
		listByUser: []domain.Order{{ID: 2}},
	}
	svc := New(repo, &stubCartRepo{})

	all, err := svc.List(context.Background(), admin())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 orders for admin, got %d", len(all))
	}

	own, err := svc.List(context.Background(), owner())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(own) != 1 || repo.lastListUser != 7 {
		t.Fatalf("expected owner-scoped list, got %d orders for user %d", len(own), repo.lastListUser)
	}
}

func TestGetMasksOthersOrdersAsNotFound(t *testing.T) {
	repo := &stubRepo{getErr: domain.ErrNotFound}
	svc := New(repo, &stubCartRepo{})

	_, err := svc.Get(context.Background(), 5, owner())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("lookup must not leak forbidden: %v", err)
	}
	if !repo.scopedGet || repo.lastGetUser != 7 {
		t.Fatalf("expected user-scoped lookup, got scoped=%v user=%d", repo.scopedGet, repo.lastGetUser)
	}
}

func TestGetAdminUnscoped(t *testing.T) {
	repo := &stubRepo{getOrder: &domain.Order{ID: 5, UserID: 7}}
	svc := New(repo, &stubCartRepo{})

	got, err := svc.Get(context.Background(), 5, admin())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 5 || repo.scopedGet {
		t.Fatalf("expected unscoped admin lookup, got %+v scoped=%v", got, repo.scopedGet)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	repo := &stubRepo{getOrder: &domain.Order{ID: 5}}
	svc := New(repo, &stubCartRepo{})

	err := svc.UpdateStatus(context.Background(), 5, "teleported", admin())
	if err == nil {
		t.Fatal("expected error for unknown status")
	}
	if repo.updateCalls != 0 {
		t.Fatalf("status must not be written, got %d calls", repo.updateCalls)
	}
}

func TestUpdateStatusAnyValidTransition(t *testing.T) {
	repo := &stubRepo{getOrder: &domain.Order{ID: 5, Status: domain.StatusDelivered}}
	svc := New(repo, &stubCartRepo{})

	if err := svc.UpdateStatus(context.Background(), 5, "pending", admin()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastStatus != domain.StatusPending || repo.lastStatusID != 5 {
		t.Fatalf("unexpected update: id=%d status=%s", repo.lastStatusID, repo.lastStatus)
	}
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	repo := &stubRepo{getErr: domain.ErrNotFound}
	svc := New(repo, &stubCartRepo{})

	err := svc.UpdateStatus(context.Background(), 5, "confirmed", admin())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("status must not be written, got %d calls", repo.updateCalls)
	}
}
