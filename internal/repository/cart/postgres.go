package cart

import (
	"context"
	"errors"

	"ecommerce-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, userID int64) (*domain.Cart, error) {
	const q = `
INSERT INTO carts (user_id)
VALUES ($1)
RETURNING id, user_id, created_date
`
	var cart domain.Cart
	if err := r.pool.QueryRow(ctx, q, userID).Scan(&cart.ID, &cart.UserID, &cart.CreatedDate); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Cart, error) {
	const q = `
SELECT id, user_id, created_date
FROM carts
ORDER BY id ASC
`
	return r.fetchCarts(ctx, q)
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Cart, error) {
	const q = `
SELECT id, user_id, created_date
FROM carts
WHERE user_id = $1
ORDER BY id ASC
`
	return r.fetchCarts(ctx, q, userID)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Cart, error) {
	const cartQuery = `
SELECT id, user_id, created_date
FROM carts
WHERE id = $1
`
	var cart domain.Cart
	err := r.pool.QueryRow(ctx, cartQuery, id).Scan(&cart.ID, &cart.UserID, &cart.CreatedDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	const itemsQuery = `
SELECT id, cart_id, product_id, created_date
FROM cart_items
WHERE cart_id = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, itemsQuery, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.ProductID, &item.CreatedDate); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *postgresRepo) AddItem(ctx context.Context, cartID, productID int64) (*domain.CartItem, error) {
	const q = `
INSERT INTO cart_items (cart_id, product_id)
VALUES ($1, $2)
RETURNING id, cart_id, product_id, created_date
`
	var item domain.CartItem
	if err := r.pool.QueryRow(ctx, q, cartID, productID).Scan(&item.ID, &item.CartID, &item.ProductID, &item.CreatedDate); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) RemoveItem(ctx context.Context, cartID, itemID int64) error {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM cart_items
WHERE id = $1 AND cart_id = $2
`, itemID, cartID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a cart, its items, and detaches any order that was created
// from it, all in one transaction. The order itself survives.
func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE orders SET cart_id = NULL WHERE cart_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, id); err != nil {
		return err
	}
	cmd, err := tx.Exec(ctx, `DELETE FROM carts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) fetchCarts(ctx context.Context, q string, args ...interface{}) ([]domain.Cart, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Cart
	for rows.Next() {
		var cart domain.Cart
		if err := rows.Scan(&cart.ID, &cart.UserID, &cart.CreatedDate); err != nil {
			return nil, err
		}
		result = append(result, cart)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
