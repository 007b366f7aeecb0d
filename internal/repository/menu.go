package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/brewline/coffee-trade/internal/domain/menu"
)

const (
	listMenuItemsSQL = `SELECT id, name, category, price
		FROM menu_items ORDER BY id`

	getMenuItemsByIDsSQL = `SELECT id, name, category, price
		FROM menu_items WHERE id = ANY($1)`
)

var _ menu.Repository = (*MenuRepository)(nil)

// MenuRepository implements menu.Repository backed by PostgreSQL.
type MenuRepository struct {
	pool *pgxpool.Pool
}

// NewMenuRepository returns a MenuRepository that uses the given pool.
func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{pool: pool}
}

// List returns the full catalog ordered by id.
func (r *MenuRepository) List(ctx context.Context) ([]menu.Item, error) {
	rows, err := r.pool.Query(ctx, listMenuItemsSQL)
	if err != nil {
		return nil, fmt.Errorf("listing menu items: %w", err)
	}
	return pgx.CollectRows(rows, scanMenuItem)
}

// GetByIDs returns catalog items matching any of the given ids.
func (r *MenuRepository) GetByIDs(ctx context.Context, ids []string) ([]menu.Item, error) {
	rows, err := r.pool.Query(ctx, getMenuItemsByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("getting menu items by ids: %w", err)
	}
	return pgx.CollectRows(rows, scanMenuItem)
}

func scanMenuItem(row pgx.CollectableRow) (menu.Item, error) {
	var (
		item  menu.Item
		price decimal.Decimal
	)
	err := row.Scan(&item.ID, &item.Name, &item.Category, &price)
	item.Price = price
	return item, err
}
