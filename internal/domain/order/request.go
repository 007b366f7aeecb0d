package order

import "github.com/brewline/coffee-trade/internal/domain/pricing"

// CreateRequest is the input for creating an order.
type CreateRequest struct {
	UserID int64
	Lines  []LineRequest
}

// LineRequest describes one requested drink. A line either references a
// catalog item (ItemID set, priced from the menu) or carries a taste
// customization priced by the active seasonal policy — or both, in which case
// the catalog price wins and the taste is stored for preparation only.
type LineRequest struct {
	ItemID string
	Taste  *pricing.TasteSpec
}
