package order

import (
	"context"
	"errors"
	"io"
	"log"

	"ecommerce-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

// Create materializes an order inside a single transaction. Any referenced
// product that no longer exists aborts the whole operation; nothing partial
// is ever committed. A unique violation on cart_id means another order was
// already created from this cart.
func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var amountCents int64
	for _, line := range in.Lines {
		var priceCents int64
		err := tx.QueryRow(ctx, `SELECT price_cents FROM products WHERE id = $1`, line.ProductID).Scan(&priceCents)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, domain.ErrNotFound
			}
			return nil, err
		}
		amountCents += int64(line.Quantity) * priceCents
	}

	const orderQuery = `
INSERT INTO orders (user_id, cart_id, status, shipping_address, amount_cents)
VALUES ($1, $2, 'pending', $3, $4)
RETURNING id, user_id, cart_id, status, shipping_address, amount_cents, order_date
`
	var order domain.Order
	err = tx.QueryRow(ctx, orderQuery, in.UserID, in.CartID, in.ShippingAddress, amountCents).Scan(
		&order.ID,
		&order.UserID,
		&order.CartID,
		&order.Status,
		&order.ShippingAddress,
		&order.AmountCents,
		&order.OrderDate,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.logger.Printf("order repo: cart %d already converted to an order", in.CartID)
			return nil, domain.ErrConflict
		}
		return nil, err
	}

	const itemQuery = `
INSERT INTO order_items (order_id, product_id, quantity)
VALUES ($1, $2, $3)
RETURNING id, order_id, product_id, quantity, created_date
`
	for _, line := range in.Lines {
		var item domain.OrderItem
		err := tx.QueryRow(ctx, itemQuery, order.ID, line.ProductID, line.Quantity).Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.CreatedDate,
		)
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT id, user_id, cart_id, status, shipping_address, amount_cents, order_date
FROM orders
ORDER BY id ASC
`
	return r.fetchOrders(ctx, q)
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	const q = `
SELECT id, user_id, cart_id, status, shipping_address, amount_cents, order_date
FROM orders
WHERE user_id = $1
ORDER BY id ASC
`
	return r.fetchOrders(ctx, q, userID)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const q = `
SELECT id, user_id, cart_id, status, shipping_address, amount_cents, order_date
FROM orders
WHERE id = $1
`
	return r.fetchOrder(ctx, q, id)
}

// GetByIDForUser scopes the lookup to the owning user, so a non-owned order
// is indistinguishable from a nonexistent one.
func (r *postgresRepo) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Order, error) {
	const q = `
SELECT id, user_id, cart_id, status, shipping_address, amount_cents, order_date
FROM orders
WHERE id = $1 AND user_id = $2
`
	return r.fetchOrder(ctx, q, id, userID)
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) fetchOrder(ctx context.Context, q string, args ...interface{}) (*domain.Order, error) {
	var order domain.Order
	err := r.pool.QueryRow(ctx, q, args...).Scan(
		&order.ID,
		&order.UserID,
		&order.CartID,
		&order.Status,
		&order.ShippingAddress,
		&order.AmountCents,
		&order.OrderDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	const itemsQuery = `
SELECT id, order_id, product_id, quantity, created_date
FROM order_items
WHERE order_id = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, itemsQuery, order.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.CreatedDate); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *postgresRepo) fetchOrders(ctx context.Context, q string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.CartID,
			&order.Status,
			&order.ShippingAddress,
			&order.AmountCents,
			&order.OrderDate,
		); err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	ids := make([]int64, 0, len(result))
	index := make(map[int64]*domain.Order, len(result))
	for i := range result {
		ids = append(ids, result[i].ID)
		index[result[i].ID] = &result[i]
	}

	const itemsQuery = `
SELECT id, order_id, product_id, quantity, created_date
FROM order_items
WHERE order_id = ANY($1)
ORDER BY id ASC
`
	itemRows, err := r.pool.Query(ctx, itemsQuery, ids)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item domain.OrderItem
		if err := itemRows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.CreatedDate); err != nil {
			return nil, err
		}
		if o, ok := index[item.OrderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
