package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	Name        string
	Description string
	PriceCents  int64
	Quantity    int
	Category    string
}

// Apply inserts an admin account and a small demo catalog for manual
// testing. Rows are looked up by name first, so reruns do not duplicate.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	email := envOr("SEED_ADMIN_EMAIL", "admin@example.com")
	password := envOr("SEED_ADMIN_PASSWORD", "admin123")
	if err := ensureAdmin(ctx, pool, email, password); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	products := []productSeed{
		{
			Name:        "Demo T-Shirt",
			Description: "Soft cotton tee",
			PriceCents:  1999,
			Quantity:    50,
			Category:    "Apparel",
		},
		{
			Name:        "Demo Mug",
			Description: "Ceramic mug",
			PriceCents:  1299,
			Quantity:    120,
			Category:    "Kitchen",
		},
		{
			Name:        "Demo Poster",
			Description: "A2 matte print",
			PriceCents:  899,
			Quantity:    30,
			Category:    "Home",
		},
	}

	for _, p := range products {
		categoryID, err := ensureCategory(ctx, pool, p.Category)
		if err != nil {
			return fmt.Errorf("ensure category %s: %w", p.Category, err)
		}
		if err := ensureProduct(ctx, pool, categoryID, p); err != nil {
			return fmt.Errorf("ensure product %s: %w", p.Name, err)
		}
	}

	return nil
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	var id int64
	err := pool.QueryRow(ctx, `SELECT id FROM users WHERE lower(email) = lower($1)`, email).Scan(&id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO users (name, email, password_hash, role) VALUES ($1, lower($2), $3, 'admin')`,
		"Admin", email, string(hash))
	return err
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, name string) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx, `SELECT id FROM categories WHERE lower(name) = lower($1)`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}
	err = pool.QueryRow(ctx, `INSERT INTO categories (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	return id, err
}

func ensureProduct(ctx context.Context, pool *pgxpool.Pool, categoryID int64, p productSeed) error {
	var id int64
	err := pool.QueryRow(ctx,
		`SELECT id FROM products WHERE category_id = $1 AND lower(name) = lower($2)`,
		categoryID, p.Name).Scan(&id)
	if err == nil {
		_, err = pool.Exec(ctx,
			`UPDATE products SET description = $2, price_cents = $3, quantity = $4 WHERE id = $1`,
			id, p.Description, p.PriceCents, p.Quantity)
		return err
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO products (category_id, name, description, price_cents, quantity) VALUES ($1, $2, $3, $4, $5)`,
		categoryID, p.Name, p.Description, p.PriceCents, p.Quantity)
	return err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
