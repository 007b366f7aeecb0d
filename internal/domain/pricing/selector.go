package pricing

import (
	"time"

	"github.com/go-faster/errors"
)

// ErrNoActivePolicy is returned when no registered policy matches the
// reference date. The policy set is expected to end with an always-matching
// fallback, so hitting this error means the seasonal coverage has a gap and
// should be treated as a configuration defect.
var ErrNoActivePolicy = errors.New("no active pricing policy")

// Selector resolves the active pricing policy for a reference date.
//
// The policy list is fixed at construction time and iterated in registration
// order; when several policies claim the same date the earliest-registered
// one wins. Selection is deterministic: the same date and the same list
// always yield the same policy instance.
type Selector struct {
	policies []Strategy
}

// NewSelector creates a Selector over the given policies. Registration order
// is selection priority.
func NewSelector(policies ...Strategy) *Selector {
	return &Selector{policies: policies}
}

// DefaultSelector returns the production policy set: winter first, the
// always-matching standard policy as fallback.
func DefaultSelector() *Selector {
	return NewSelector(WinterPolicy{}, StandardPolicy{})
}

// Active returns the first registered policy whose season matches the given
// reference date, or ErrNoActivePolicy when none does.
func (s *Selector) Active(at time.Time) (Strategy, error) {
	for _, p := range s.policies {
		if p.SeasonMatch(at) {
			return p, nil
		}
	}
	return nil, ErrNoActivePolicy
}
