// Package order implements the order aggregate: creation with validation,
// per-line seasonal pricing and transactional persistence, plus the read
// paths over stored orders and their lines.
package order

import (
	"context"
	"time"

	"github.com/brewline/coffee-trade/internal/domain/pricing"
)

// Order is the aggregate root: it owns its line sequence and the payment
// total. The total is computed from the lines once at creation time and is
// never mutated independently afterwards.
type Order struct {
	ID        string
	UserID    int64
	Total     int64
	CreatedAt time.Time
	Lines     []Line
}

// Line is a single customized drink within an order. Its price is set exactly
// once during order creation (either from the catalog or by the active
// pricing policy) and is returned verbatim by all read paths.
type Line struct {
	ID string
	// OrderID is a back-reference to the parent order, held for association
	// only; the parent owns the line.
	OrderID   string
	ItemID    string
	Taste     *pricing.TasteSpec
	Price     *int64
	CreatedAt time.Time
}

// Repository defines persistence operations for orders.
type Repository interface {
	// Create persists the order and all of its lines as one atomic unit:
	// either everything becomes visible or nothing does.
	Create(ctx context.Context, o *Order) error
	// FindRecentByUser returns up to limit orders for the user, newest first.
	FindRecentByUser(ctx context.Context, userID int64, limit int) ([]Order, error)
	// FindLinesByOrderIDs returns up to limit lines whose parent order id is
	// in the given set, newest first.
	FindLinesByOrderIDs(ctx context.Context, orderIDs []string, limit int) ([]Line, error)
}
