package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNights(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"five nights", "2025-05-01", "2025-05-06", 5},
		{"one night", "2025-05-01", "2025-05-02", 1},
		{"same day floors to one", "2025-05-01", "2025-05-01", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(day(tt.start), day(tt.end)))
		})
	}
}

func TestCheckParisInfeasible(t *testing.T) {
	engine := NewEngine(DefaultReferenceData())

	// france profile: hotel 100, meal 18, transport 12, activity 18, rate 90.
	// 5 nights: 100*5 + 18*2*5 + 12*5 + 18*4 = 812 local units, while a
	// 10-rupee budget converts to ~0.11 local units.
	res := engine.Check("paris", day("2025-05-01"), day("2025-05-06"), 10)

	assert.False(t, res.Feasible)
	assert.Equal(t, "france", res.Country)
	assert.Equal(t, 5, res.Nights)
	assert.InDelta(t, 812.0, res.MinLocal, 1e-9)
	assert.InDelta(t, 812.0*90.0, res.MinBase, 1e-9)
	assert.InDelta(t, 10.0/90.0, res.LocalBudget, 1e-9)
}

func TestCheckParisFeasibleWithLargeBudget(t *testing.T) {
	engine := NewEngine(DefaultReferenceData())

	// 812 local units * 90 = 73,080 rupees minimum
	res := engine.Check("Paris", day("2025-05-01"), day("2025-05-06"), 100000)
	assert.True(t, res.Feasible)
}

func TestCheckUnknownCityFallsBackToDefault(t *testing.T) {
	engine := NewEngine(DefaultReferenceData())

	res := engine.Check("Unknownlandia", day("2025-05-01"), day("2025-05-03"), 50000)

	assert.Equal(t, DefaultCountry, res.Country)
	assert.Equal(t, "₹", res.Profile.Currency)
	assert.InDelta(t, 1.0, res.Profile.Rate, 1e-9)
}

func TestCheckSameDayTripUsesOneNight(t *testing.T) {
	engine := NewEngine(DefaultReferenceData())

	res := engine.Check("paris", day("2025-05-01"), day("2025-05-01"), 10)
	assert.Equal(t, 1, res.Nights)
	// 100 + 36 + 12 + 72, never zero
	assert.InDelta(t, 220.0, res.MinLocal, 1e-9)
}

func TestMinCostMonotonicInNights(t *testing.T) {
	engine := NewEngine(DefaultReferenceData())
	start := day("2025-05-01")

	prev := 0.0
	for n := 1; n <= 14; n++ {
		res := engine.Check("paris", start, start.AddDate(0, 0, n), 50000)
		assert.Equal(t, n, res.Nights)
		assert.GreaterOrEqual(t, res.MinLocal, prev, "minimum cost must not decrease with more nights")
		prev = res.MinLocal
	}
}

func TestProfileForUnknownCountry(t *testing.T) {
	ref := DefaultReferenceData()
	p := ref.ProfileFor("atlantis")
	assert.Equal(t, ref.Countries[DefaultCountry], p)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "€812", FormatMoney("€", 812.0))
	assert.Equal(t, "₹73,080", FormatMoney("₹", 73080.0))
	// Display truncates to whole units, no rounding up
	assert.Equal(t, "$1,234", FormatMoney("$", 1234.99))
}
