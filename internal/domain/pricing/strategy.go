// Package pricing implements the seasonal surcharge engine: a set of
// stateless pricing policies, one of which is active for any given reference
// date, and a selector that picks the active one.
package pricing

import "time"

// Strategy prices a drink customization during the season it covers.
//
// Implementations must be stateless: a single instance is shared by
// arbitrarily many concurrent callers and every computation keeps its
// accumulator local to the call.
type Strategy interface {
	// SeasonMatch reports whether this policy is the applicable pricing rule
	// for the given reference date. Pure function of the date.
	SeasonMatch(at time.Time) bool
	// Price returns the total surcharge for the given customization.
	// A nil taste means no customization and always prices to 0.
	// The result is never negative.
	Price(taste *TasteSpec) int64
}
