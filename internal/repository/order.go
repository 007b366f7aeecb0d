package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brewline/coffee-trade/internal/domain/order"
	"github.com/brewline/coffee-trade/internal/domain/pricing"
)

const (
	insertOrderSQL = `INSERT INTO orders (id, user_id, total, created_at)
		VALUES ($1, $2, $3, $4)`

	insertLineSQL = `INSERT INTO order_lines (id, order_id, item_id, shots, caffeine, milk, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	findOrdersByUserSQL = `SELECT id, user_id, total, created_at
		FROM orders WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2`

	findLinesByOrderIDsSQL = `SELECT id, order_id, item_id, shots, caffeine, milk, price, created_at
		FROM order_lines WHERE order_id = ANY($1)
		ORDER BY created_at DESC LIMIT $2`
)

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository backed by PostgreSQL.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create inserts the order and all of its lines inside one transaction, so a
// concurrent reader either sees the complete order or nothing at all.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning order transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, insertOrderSQL, o.ID, o.UserID, o.Total, o.CreatedAt); err != nil {
		return fmt.Errorf("inserting order %q: %w", o.ID, err)
	}

	batch := &pgx.Batch{}
	for _, line := range o.Lines {
		var shots int
		var caffeine, milk string
		if line.Taste != nil {
			shots = line.Taste.Shots
			caffeine = string(line.Taste.Caffeine)
			milk = string(line.Taste.Milk)
		}
		batch.Queue(insertLineSQL,
			line.ID, line.OrderID, line.ItemID,
			shots, caffeine, milk,
			line.Price, line.CreatedAt,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("inserting lines for order %q: %w", o.ID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing order %q: %w", o.ID, err)
	}
	return nil
}

// FindRecentByUser returns up to limit orders for the user, newest first.
// Line detail is not loaded for listings.
func (r *OrderRepository) FindRecentByUser(ctx context.Context, userID int64, limit int) ([]order.Order, error) {
	rows, err := r.pool.Query(ctx, findOrdersByUserSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("finding orders for user %d: %w", userID, err)
	}
	return pgx.CollectRows(rows, scanOrder)
}

// FindLinesByOrderIDs returns up to limit lines across the given orders,
// newest first.
func (r *OrderRepository) FindLinesByOrderIDs(ctx context.Context, orderIDs []string, limit int) ([]order.Line, error) {
	rows, err := r.pool.Query(ctx, findLinesByOrderIDsSQL, orderIDs, limit)
	if err != nil {
		return nil, fmt.Errorf("finding order lines: %w", err)
	}
	return pgx.CollectRows(rows, scanLine)
}

func scanOrder(row pgx.CollectableRow) (order.Order, error) {
	var o order.Order
	err := row.Scan(&o.ID, &o.UserID, &o.Total, &o.CreatedAt)
	return o, err
}

func scanLine(row pgx.CollectableRow) (order.Line, error) {
	var (
		line     order.Line
		shots    int
		caffeine string
		milk     string
	)
	err := row.Scan(
		&line.ID, &line.OrderID, &line.ItemID,
		&shots, &caffeine, &milk,
		&line.Price, &line.CreatedAt,
	)
	if err != nil {
		return line, err
	}
	if shots != 0 || caffeine != "" || milk != "" {
		line.Taste = &pricing.TasteSpec{
			Shots:    shots,
			Caffeine: pricing.CaffeineLevel(caffeine),
			Milk:     pricing.MilkLevel(milk),
		}
	}
	return line, nil
}
