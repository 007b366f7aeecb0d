// Package menu holds the drink catalog: items with fixed, externally managed
// prices that order lines can reference instead of being priced seasonally.
package menu

import (
	"context"

	"github.com/shopspring/decimal"
)

// Item is a drink on the menu with a fixed catalog price.
type Item struct {
	ID       string
	Name     string
	Category string
	// Price is the catalog price as stored (NUMERIC with two decimal places).
	Price decimal.Decimal
}

// PriceUnits returns the catalog price converted to integer currency units,
// the representation all order amounts use.
func (i Item) PriceUnits() int64 {
	return i.Price.Mul(decimal.NewFromInt(100)).IntPart()
}

// Repository defines read operations for the drink catalog.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	GetByIDs(ctx context.Context, ids []string) ([]Item, error)
}
