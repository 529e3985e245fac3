package httpserver

import (
	"context"
	"io"
	"log"
	"testing"

	"ecommerce-backend/internal/domain"
	cartsvc "ecommerce-backend/internal/service/cart"
	categorysvc "ecommerce-backend/internal/service/category"
	ordersvc "ecommerce-backend/internal/service/order"
	productsvc "ecommerce-backend/internal/service/product"
	usersvc "ecommerce-backend/internal/service/user"
	"github.com/gin-gonic/gin"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

type stubAuthService struct {
	user     *domain.User
	authErr  error
	token    string
	issueErr error
}

func (s *stubAuthService) Authenticate(_ context.Context, _, _ string) (*domain.User, error) {
	return s.user, s.authErr
}

func (s *stubAuthService) IssueToken(_ *domain.User) (string, error) {
	return s.token, s.issueErr
}

func (s *stubAuthService) ResolveCaller(token string) (domain.Caller, error) {
	switch token {
	case userToken:
		return domain.Caller{Email: "alice@example.com", ID: 7, Role: domain.RoleUser}, nil
	case adminToken:
		return domain.Caller{Email: "root@example.com", ID: 1, Role: domain.RoleAdmin}, nil
	}
	return domain.Caller{}, domain.ErrUnauthorized
}

type stubUserService struct {
	users []domain.User
	user  *domain.User
	err   error
}

func (s *stubUserService) List(_ context.Context) ([]domain.User, error) {
	return s.users, s.err
}

func (s *stubUserService) Get(_ context.Context, _ int64) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubUserService) Create(_ context.Context, _ usersvc.CreateInput) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubUserService) UpdatePassword(_ context.Context, _ int64, _ usersvc.UpdatePasswordInput) error {
	return s.err
}

func (s *stubUserService) UpdateInfo(_ context.Context, _ int64, _ usersvc.UpdateInfoInput) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubUserService) Delete(_ context.Context, _ int64) error {
	return s.err
}

type stubCategoryService struct {
	categories []domain.Category
	category   *domain.Category
	err        error
}

func (s *stubCategoryService) List(_ context.Context) ([]domain.Category, error) {
	return s.categories, s.err
}

func (s *stubCategoryService) Get(_ context.Context, _ int64) (*domain.Category, error) {
	return s.category, s.err
}

func (s *stubCategoryService) Create(_ context.Context, _ categorysvc.CreateInput) (*domain.Category, error) {
	return s.category, s.err
}

func (s *stubCategoryService) Update(_ context.Context, _ int64, _ categorysvc.UpdateInput) error {
	return s.err
}

func (s *stubCategoryService) Delete(_ context.Context, _ int64) error {
	return s.err
}

type stubProductService struct {
	products []domain.Product
	product  *domain.Product
	err      error
}

func (s *stubProductService) List(_ context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubProductService) Get(_ context.Context, _ int64) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) Create(_ context.Context, _ productsvc.CreateInput) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) Update(_ context.Context, _ int64, _ productsvc.UpdateInput) error {
	return s.err
}

func (s *stubProductService) Delete(_ context.Context, _ int64) error {
	return s.err
}

type stubCartService struct {
	carts      []domain.Cart
	cart       *domain.Cart
	item       *domain.CartItem
	err        error
	lastCaller domain.Caller
}

func (s *stubCartService) Create(_ context.Context, _ int64) (*domain.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartService) List(_ context.Context, caller domain.Caller) ([]domain.Cart, error) {
	s.lastCaller = caller
	return s.carts, s.err
}

func (s *stubCartService) Get(_ context.Context, _ int64, caller domain.Caller) (*domain.Cart, error) {
	s.lastCaller = caller
	return s.cart, s.err
}

func (s *stubCartService) AddItem(_ context.Context, _ int64, _ cartsvc.AddItemInput, caller domain.Caller) (*domain.CartItem, error) {
	s.lastCaller = caller
	return s.item, s.err
}

func (s *stubCartService) RemoveItem(_ context.Context, _, _ int64, caller domain.Caller) error {
	s.lastCaller = caller
	return s.err
}

func (s *stubCartService) Delete(_ context.Context, _ int64, caller domain.Caller) error {
	s.lastCaller = caller
	return s.err
}

type stubOrderService struct {
	orders     []domain.Order
	order      *domain.Order
	err        error
	lastCaller domain.Caller
	lastInput  ordersvc.CreateInput
	lastStatus string
}

func (s *stubOrderService) Create(_ context.Context, in ordersvc.CreateInput, caller domain.Caller) (*domain.Order, error) {
	s.lastInput = in
	s.lastCaller = caller
	return s.order, s.err
}

func (s *stubOrderService) List(_ context.Context, caller domain.Caller) ([]domain.Order, error) {
	s.lastCaller = caller
	return s.orders, s.err
}

func (s *stubOrderService) Get(_ context.Context, _ int64, caller domain.Caller) (*domain.Order, error) {
	s.lastCaller = caller
	return s.order, s.err
}

func (s *stubOrderService) UpdateStatus(_ context.Context, _ int64, rawStatus string, caller domain.Caller) error {
	s.lastStatus = rawStatus
	s.lastCaller = caller
	return s.err
}

func testDeps() Deps {
	return Deps{
		AuthSvc:     &stubAuthService{},
		UserSvc:     &stubUserService{},
		CategorySvc: &stubCategoryService{},
		ProductSvc:  &stubProductService{},
		CartSvc:     &stubCartService{},
		OrderSvc:    &stubOrderService{},
	}
}

func testRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}
