package order

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/brewline/coffee-trade/internal/domain/menu"
)

// UnknownItemError indicates a line referenced a catalog item that does not
// exist on the menu.
type UnknownItemError struct {
	ItemID string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("menu item %s not found", e.ItemID)
}

// Assembler builds the order shell and its line sequence from a creation
// request. Lines referencing catalog items come back pre-priced; the
// workflow prices the rest.
type Assembler interface {
	BuildOrder(req CreateRequest) *Order
	BuildLines(ctx context.Context, req CreateRequest, o *Order) ([]Line, error)
}

var _ Assembler = (*CatalogAssembler)(nil)

// CatalogAssembler assembles orders and resolves catalog-fixed line prices
// from the menu repository.
type CatalogAssembler struct {
	menu menu.Repository
	now  func() time.Time
}

// NewCatalogAssembler creates a CatalogAssembler backed by the given catalog.
func NewCatalogAssembler(items menu.Repository) *CatalogAssembler {
	return &CatalogAssembler{menu: items, now: time.Now}
}

// BuildOrder creates the order shell: fresh id, requesting user, creation
// timestamp. Lines and total are filled in later by the workflow.
func (a *CatalogAssembler) BuildOrder(req CreateRequest) *Order {
	return &Order{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		CreatedAt: a.now().UTC(),
	}
}

// BuildLines creates one line per requested drink, attached to the given
// order. Lines referencing a catalog item get that item's fixed price
// assigned; all menu items are fetched in a single batch. A request with no
// lines yields an empty slice, not an error.
func (a *CatalogAssembler) BuildLines(ctx context.Context, req CreateRequest, o *Order) ([]Line, error) {
	if len(req.Lines) == 0 {
		return nil, nil
	}

	var itemIDs []string
	for _, line := range req.Lines {
		if line.ItemID != "" {
			itemIDs = append(itemIDs, line.ItemID)
		}
	}

	prices := make(map[string]int64, len(itemIDs))
	if len(itemIDs) > 0 {
		items, err := a.menu.GetByIDs(ctx, itemIDs)
		if err != nil {
			return nil, errors.Wrap(err, "get menu items")
		}
		for _, item := range items {
			prices[item.ID] = item.PriceUnits()
		}
	}

	createdAt := a.now().UTC()
	lines := make([]Line, len(req.Lines))
	for i, lr := range req.Lines {
		line := Line{
			ID:        uuid.New().String(),
			OrderID:   o.ID,
			ItemID:    lr.ItemID,
			Taste:     lr.Taste,
			CreatedAt: createdAt,
		}
		if lr.ItemID != "" {
			price, ok := prices[lr.ItemID]
			if !ok {
				return nil, &UnknownItemError{ItemID: lr.ItemID}
			}
			line.Price = &price
		}
		lines[i] = line
	}
	return lines, nil
}
