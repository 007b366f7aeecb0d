package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/brewline/coffee-trade/internal/domain/pricing"
)

// Sentinel errors for the creation workflow.
var (
	// ErrInvalidRequest is returned when the request fails validation.
	ErrInvalidRequest = errors.New("invalid order request")
	// ErrMissingDetails is returned when assembly produced no lines; an order
	// without lines must not be persisted.
	ErrMissingDetails = errors.New("order has no lines")
)

// defaultListLimit caps read queries that do not specify a limit.
const defaultListLimit = 20

// Service orchestrates order creation (validate, assemble, price, persist)
// and the read paths over stored orders.
type Service struct {
	validator Validator
	assembler Assembler
	orders    Repository
	prices    *pricing.Selector
	now       func() time.Time
}

// NewService creates an order Service with the required collaborators.
func NewService(
	validator Validator,
	assembler Assembler,
	orders Repository,
	prices *pricing.Selector,
) *Service {
	return &Service{
		validator: validator,
		assembler: assembler,
		orders:    orders,
		prices:    prices,
		now:       time.Now,
	}
}

// CreateOrder runs the full creation workflow. Any failure before the
// persistence step leaves no partial state behind; persistence itself is a
// single atomic write of the order and all of its lines.
//
// Lines arriving from assembly with a positive price (catalog-fixed) are kept
// as-is; every other line is priced by the policy active at the time of the
// call. The order total is the sum of all positive line prices.
func (s *Service) CreateOrder(ctx context.Context, req CreateRequest) (*Order, error) {
	if !s.validator.ValidCreateRequest(req) {
		return nil, ErrInvalidRequest
	}

	o := s.assembler.BuildOrder(req)

	lines, err := s.assembler.BuildLines(ctx, req, o)
	if err != nil {
		return nil, errors.Wrap(err, "assemble lines")
	}
	if len(lines) == 0 {
		return nil, ErrMissingDetails
	}

	// One reference date for the whole call keeps pricing consistent across
	// lines even around a season boundary.
	at := s.now()
	var total int64
	for i := range lines {
		line := &lines[i]
		if line.Price == nil || *line.Price <= 0 {
			policy, err := s.prices.Active(at)
			if err != nil {
				// Coverage gap in the registered policy set. Fatal for this
				// call, but the process stays up.
				zctx.From(ctx).Error("No active pricing policy",
					zap.Time("reference_date", at),
					zap.Error(err),
				)
				return nil, errors.Wrap(err, "select pricing policy")
			}
			price := policy.Price(line.Taste)
			line.Price = &price
		}
		if *line.Price > 0 {
			total += *line.Price
		}
	}

	o.Total = total
	o.Lines = lines

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, errors.Wrap(err, "create order")
	}
	return o, nil
}

// ListRecentOrders returns up to limit orders for the user, newest first.
// A user with no orders yields an empty slice.
func (s *Service) ListRecentOrders(ctx context.Context, userID int64, limit int) ([]Order, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	orders, err := s.orders.FindRecentByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "find recent orders")
	}
	return orders, nil
}

// ListOrderLines returns up to limit lines belonging to any of the given
// orders, newest first. Prices are returned exactly as stored; nothing is
// repriced on reads.
func (s *Service) ListOrderLines(ctx context.Context, orderIDs []string, limit int) ([]Line, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	lines, err := s.orders.FindLinesByOrderIDs(ctx, orderIDs, limit)
	if err != nil {
		return nil, errors.Wrap(err, "find order lines")
	}
	return lines, nil
}
