package order

import "github.com/brewline/coffee-trade/internal/domain/pricing"

// Validator gates order creation requests. A false result rejects the request
// before any assembly or persistence happens.
type Validator interface {
	ValidCreateRequest(req CreateRequest) bool
}

var _ Validator = RequestValidator{}

// RequestValidator is the default creation-request gate: the user must be
// identified and every line must carry a well-formed customization.
// An empty line list is not its concern; that is reported separately by the
// workflow after assembly.
type RequestValidator struct{}

// ValidCreateRequest reports whether the request is structurally sound.
func (RequestValidator) ValidCreateRequest(req CreateRequest) bool {
	if req.UserID <= 0 {
		return false
	}
	for _, line := range req.Lines {
		if !validLine(line) {
			return false
		}
	}
	return true
}

func validLine(line LineRequest) bool {
	if line.Taste == nil {
		return line.ItemID != ""
	}
	t := line.Taste
	if t.Shots < 0 {
		return false
	}
	switch t.Caffeine {
	case "", pricing.CaffeineRegular, pricing.CaffeineDecaf:
	default:
		return false
	}
	switch t.Milk {
	case "", pricing.MilkNormal, pricing.MilkMore:
	default:
		return false
	}
	return true
}
