package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ecommerce-backend/internal/config"
	"ecommerce-backend/internal/db"
	"ecommerce-backend/internal/httpserver"
	cartrepo "ecommerce-backend/internal/repository/cart"
	categoryrepo "ecommerce-backend/internal/repository/category"
	orderrepo "ecommerce-backend/internal/repository/order"
	productrepo "ecommerce-backend/internal/repository/product"
	userrepo "ecommerce-backend/internal/repository/user"
	authsvc "ecommerce-backend/internal/service/auth"
	cartsvc "ecommerce-backend/internal/service/cart"
	categorysvc "ecommerce-backend/internal/service/category"
	ordersvc "ecommerce-backend/internal/service/order"
	productsvc "ecommerce-backend/internal/service/product"
	usersvc "ecommerce-backend/internal/service/user"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	userRepo := userrepo.NewPostgres(dbpool, logger)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	authService := authsvc.New(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := usersvc.New(userRepo)
	categoryService := categorysvc.New(categoryRepo)
	productService := productsvc.New(productRepo)
	cartService := cartsvc.New(cartRepo)
	orderService := ordersvc.New(orderRepo, cartRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		AuthSvc:     authService,
		UserSvc:     userService,
		CategorySvc: categoryService,
		ProductSvc:  productService,
		CartSvc:     cartService,
		OrderSvc:    orderService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
