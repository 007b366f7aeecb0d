package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWinterPolicy_Price(t *testing.T) {
	tests := []struct {
		name  string
		taste *TasteSpec
		want  int64
	}{
		{name: "nil taste", taste: nil, want: 0},
		{name: "zero spec", taste: &TasteSpec{}, want: 0},
		{name: "single shot", taste: &TasteSpec{Shots: 1}, want: 5},
		{name: "three shots", taste: &TasteSpec{Shots: 3}, want: 15},
		{name: "decaf only", taste: &TasteSpec{Caffeine: CaffeineDecaf}, want: 2},
		{name: "regular caffeine no surcharge", taste: &TasteSpec{Caffeine: CaffeineRegular}, want: 0},
		{name: "extra milk only", taste: &TasteSpec{Milk: MilkMore}, want: 3},
		{name: "normal milk no surcharge", taste: &TasteSpec{Milk: MilkNormal}, want: 0},
		{
			name:  "shots decaf and extra milk",
			taste: &TasteSpec{Shots: 2, Caffeine: CaffeineDecaf, Milk: MilkMore},
			want:  2*5 + 2 + 3,
		},
	}

	var policy WinterPolicy
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Price(tt.taste))
		})
	}
}

func TestWinterPolicy_ShotPriceScalesLinearly(t *testing.T) {
	var policy WinterPolicy
	for shots := 0; shots <= 20; shots++ {
		got := policy.Price(&TasteSpec{Shots: shots})
		assert.Equal(t, int64(shots)*5, got, "shots=%d", shots)
	}
}

func TestWinterPolicy_SeasonMatch(t *testing.T) {
	for day := 1; day <= 31; day++ {
		at := time.Date(2026, time.January, day, 12, 0, 0, 0, time.UTC)
		want := day < 3 || day > 9
		assert.Equal(t, want, WinterPolicy{}.SeasonMatch(at), "day=%d", day)
	}
}

func TestWinterPolicy_SeasonMatchIgnoresMonthAndYear(t *testing.T) {
	// Day-of-month is the only input; July behaves like January.
	assert.False(t, WinterPolicy{}.SeasonMatch(time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC)))
	assert.True(t, WinterPolicy{}.SeasonMatch(time.Date(1999, time.July, 15, 0, 0, 0, 0, time.UTC)))
}

func TestStandardPolicy_AlwaysMatches(t *testing.T) {
	for day := 1; day <= 31; day++ {
		at := time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
		assert.True(t, StandardPolicy{}.SeasonMatch(at), "day=%d", day)
	}
}

func TestStandardPolicy_Price(t *testing.T) {
	var policy StandardPolicy
	assert.Equal(t, int64(0), policy.Price(nil))
	assert.Equal(t, int64(0), policy.Price(&TasteSpec{}))
	assert.Equal(t, int64(2*4+1+2), policy.Price(&TasteSpec{Shots: 2, Caffeine: CaffeineDecaf, Milk: MilkMore}))
}

func TestPolicies_NeverNegative(t *testing.T) {
	policies := []Strategy{WinterPolicy{}, StandardPolicy{}}
	tastes := []*TasteSpec{
		nil,
		{},
		{Shots: 0, Caffeine: CaffeineRegular, Milk: MilkNormal},
		{Shots: 7, Caffeine: CaffeineDecaf, Milk: MilkMore},
	}
	for _, p := range policies {
		for _, taste := range tastes {
			assert.GreaterOrEqual(t, p.Price(taste), int64(0))
		}
	}
}
