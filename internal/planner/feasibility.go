package planner

import "time"

// FeasibilityResult is the outcome of the minimum-cost check for one request.
// It is derived fresh per request and never persisted.
type FeasibilityResult struct {
	Feasible    bool
	Country     string
	Profile     CountryProfile
	Nights      int
	LocalBudget float64 // budget converted to local currency
	MinLocal    float64 // minimum viable cost in local currency
	MinBase     float64 // same figure converted back to base currency (INR)
}

// MinLocalDisplay renders the local minimum with symbol and separators.
func (f FeasibilityResult) MinLocalDisplay() string {
	return FormatMoney(f.Profile.Currency, f.MinLocal)
}

// MinBaseDisplay renders the base-currency minimum.
func (f FeasibilityResult) MinBaseDisplay() string {
	return FormatMoney("₹", f.MinBase)
}

// Engine computes budget feasibility from the static tables. It performs no
// I/O and holds no mutable state.
type Engine struct {
	ref ReferenceData
}

// NewEngine creates an Engine over the given reference tables.
func NewEngine(ref ReferenceData) *Engine {
	return &Engine{ref: ref}
}

// Nights returns the chargeable nights for a stay. A same-day trip still
// incurs one night; this is a floor, not rounding.
func Nights(start, end time.Time) int {
	n := int(end.Sub(start).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}

// Check computes the minimum viable cost for city and dates against a budget
// expressed in base currency. start <= end is enforced upstream.
func (e *Engine) Check(city string, start, end time.Time, budget float64) FeasibilityResult {
	country := e.ref.CountryForCity(city)
	profile := e.ref.ProfileFor(country)
	nights := Nights(start, end)

	localBudget := budget / profile.Rate

	// Two meals per day; activities fixed at four regardless of length.
	minLocal := profile.Hotel*float64(nights) +
		profile.Meal*2*float64(nights) +
		profile.Transport*float64(nights) +
		profile.Activity*4

	return FeasibilityResult{
		Feasible:    localBudget >= minLocal,
		Country:     country,
		Profile:     profile,
		Nights:      nights,
		LocalBudget: localBudget,
		MinLocal:    minLocal,
		MinBase:     minLocal * profile.Rate,
	}
}
