package httpserver

import (
	"context"
	"log"
	"time"

	"ecommerce-backend/internal/domain"
	cartsvc "ecommerce-backend/internal/service/cart"
	categorysvc "ecommerce-backend/internal/service/category"
	ordersvc "ecommerce-backend/internal/service/order"
	productsvc "ecommerce-backend/internal/service/product"
	usersvc "ecommerce-backend/internal/service/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type authService interface {
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	IssueToken(u *domain.User) (string, error)
	ResolveCaller(token string) (domain.Caller, error)
}

type userService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, in usersvc.CreateInput) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID int64, in usersvc.UpdatePasswordInput) error
	UpdateInfo(ctx context.Context, userID int64, in usersvc.UpdateInfoInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type categoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, in categorysvc.CreateInput) (*domain.Category, error)
	Update(ctx context.Context, id int64, in categorysvc.UpdateInput) error
	Delete(ctx context.Context, id int64) error
}

type productService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, in productsvc.CreateInput) (*domain.Product, error)
	Update(ctx context.Context, id int64, in productsvc.UpdateInput) error
	Delete(ctx context.Context, id int64) error
}

type cartService interface {
	Create(ctx context.Context, callerID int64) (*domain.Cart, error)
	List(ctx context.Context, caller domain.Caller) ([]domain.Cart, error)
	Get(ctx context.Context, id int64, caller domain.Caller) (*domain.Cart, error)
	AddItem(ctx context.Context, cartID int64, in cartsvc.AddItemInput, caller domain.Caller) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, cartID, itemID int64, caller domain.Caller) error
	Delete(ctx context.Context, cartID int64, caller domain.Caller) error
}

type orderService interface {
	Create(ctx context.Context, in ordersvc.CreateInput, caller domain.Caller) (*domain.Order, error)
	List(ctx context.Context, caller domain.Caller) ([]domain.Order, error)
	Get(ctx context.Context, id int64, caller domain.Caller) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, rawStatus string, caller domain.Caller) error
}

// Deps carries the services the router needs.
type Deps struct {
	AuthSvc     authService
	UserSvc     userService
	CategorySvc categoryService
	ProductSvc  productService
	CartSvc     cartService
	OrderSvc    orderService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/auth/login", loginHandler(deps.AuthSvc))

	authed := router.Group("", authMiddleware(deps.AuthSvc))

	users := authed.Group("/user")
	{
		users.GET("", adminOnly(), listUsersHandler(deps.UserSvc))
		users.GET("/user/:user_id", adminOnly(), getUserHandler(deps.UserSvc))
		users.POST("/", adminOnly(), createUserHandler(deps.UserSvc))
		users.PUT("/password/:user_id", changePasswordHandler(deps.UserSvc))
		users.PUT("/info/:user_id", changeInfoHandler(deps.UserSvc))
		users.DELETE("/user/:user_id", adminOnly(), deleteUserHandler(deps.UserSvc))
	}

	categories := authed.Group("/category")
	{
		categories.GET("", listCategoriesHandler(deps.CategorySvc))
		categories.GET("/category/:category_id", getCategoryHandler(deps.CategorySvc))
		categories.POST("/", adminOnly(), createCategoryHandler(deps.CategorySvc))
		categories.PUT("/category/:category_id", adminOnly(), updateCategoryHandler(deps.CategorySvc))
		categories.DELETE("/category/:category_id", adminOnly(), deleteCategoryHandler(deps.CategorySvc))
	}

	products := authed.Group("/product")
	{
		products.GET("", listProductsHandler(deps.ProductSvc))
		products.GET("/product/:product_id", getProductHandler(deps.ProductSvc))
		products.POST("/", adminOnly(), createProductHandler(deps.ProductSvc))
		products.PUT("/product/:product_id", adminOnly(), updateProductHandler(deps.ProductSvc))
		products.DELETE("/product/:product_id", adminOnly(), deleteProductHandler(deps.ProductSvc))
	}

	carts := authed.Group("/cart")
	{
		carts.POST("/", createCartHandler(deps.CartSvc))
		carts.GET("", listCartsHandler(deps.CartSvc))
		carts.GET("/cart/:cart_id", getCartHandler(deps.CartSvc))
		carts.POST("/cart/:cart_id/item", addCartItemHandler(deps.CartSvc))
		carts.DELETE("/cart/:cart_id/item/:item_id", removeCartItemHandler(deps.CartSvc))
		carts.DELETE("/cart/:cart_id", deleteCartHandler(deps.CartSvc))
	}

	orders := authed.Group("/order")
	{
		orders.POST("/", createOrderHandler(deps.OrderSvc))
		orders.GET("", listOrdersHandler(deps.OrderSvc))
		orders.GET("/order/:order_id", getOrderHandler(deps.OrderSvc))
		orders.PUT("/order/:order_id", adminOnly(), updateOrderStatusHandler(deps.OrderSvc))
	}

	return router, nil
}
