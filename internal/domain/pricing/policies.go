package pricing

import "time"

// Winter policy surcharges, in currency units.
const (
	winterShotPrice  int64 = 5
	winterMilkPrice  int64 = 3
	winterDecafPrice int64 = 2
)

// WinterPolicy is the high-season pricing rule. It is off-season on days
// 3 through 9 of every month and active on all other days; the rule looks at
// the day-of-month field only, month and year do not participate.
type WinterPolicy struct{}

// SeasonMatch reports false for days 3..9 of the month, true otherwise.
func (WinterPolicy) SeasonMatch(at time.Time) bool {
	day := at.Day()
	return day < 3 || day > 9
}

// Price sums the winter surcharges for the given customization.
func (WinterPolicy) Price(taste *TasteSpec) int64 {
	if taste == nil {
		return 0
	}
	var price int64
	if taste.Shots > 0 {
		price += int64(taste.Shots) * winterShotPrice
	}
	if taste.Caffeine == CaffeineDecaf {
		price += winterDecafPrice
	}
	if taste.Milk == MilkMore {
		price += winterMilkPrice
	}
	return price
}

// Standard policy surcharges, in currency units.
const (
	standardShotPrice  int64 = 4
	standardMilkPrice  int64 = 2
	standardDecafPrice int64 = 1
)

// StandardPolicy is the fallback pricing rule. It matches every date, so a
// selector that registers it last is guaranteed to always find an active
// policy.
type StandardPolicy struct{}

// SeasonMatch always reports true.
func (StandardPolicy) SeasonMatch(time.Time) bool { return true }

// Price sums the standard surcharges for the given customization.
func (StandardPolicy) Price(taste *TasteSpec) int64 {
	if taste == nil {
		return 0
	}
	var price int64
	if taste.Shots > 0 {
		price += int64(taste.Shots) * standardShotPrice
	}
	if taste.Caffeine == CaffeineDecaf {
		price += standardDecafPrice
	}
	if taste.Milk == MilkMore {
		price += standardMilkPrice
	}
	return price
}
