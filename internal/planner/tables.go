package planner

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCountry is used whenever a city cannot be mapped to a known country.
const DefaultCountry = "india"

// CountryProfile holds the currency and per-unit cost basis for one country.
// Rate is base-currency units (INR) per one local-currency unit and is > 0
// for every entry in the table.
type CountryProfile struct {
	Currency  string  // display symbol
	Rate      float64 // INR per local unit
	Hotel     float64 // per night
	Meal      float64 // per meal
	Transport float64 // per day
	Activity  float64 // per activity
}

// ReferenceData bundles the static lookup tables. It is constructed once and
// passed into the components that need it; nothing here is mutated at runtime.
type ReferenceData struct {
	Countries map[string]CountryProfile
	Cities    map[string]string // normalized city -> country key
}

// DefaultReferenceData returns the built-in country and city tables.
func DefaultReferenceData() ReferenceData {
	return ReferenceData{
		Countries: map[string]CountryProfile{
			"india":       {Currency: "₹", Rate: 1.0, Hotel: 2200, Meal: 350, Transport: 500, Activity: 800},
			"france":      {Currency: "€", Rate: 90.0, Hotel: 100, Meal: 18, Transport: 12, Activity: 18},
			"italy":       {Currency: "€", Rate: 90.0, Hotel: 90, Meal: 16, Transport: 10, Activity: 15},
			"spain":       {Currency: "€", Rate: 90.0, Hotel: 80, Meal: 14, Transport: 9, Activity: 14},
			"netherlands": {Currency: "€", Rate: 90.0, Hotel: 110, Meal: 17, Transport: 11, Activity: 16},
			"uk":          {Currency: "£", Rate: 105.0, Hotel: 120, Meal: 20, Transport: 14, Activity: 20},
			"usa":         {Currency: "$", Rate: 83.0, Hotel: 140, Meal: 22, Transport: 15, Activity: 25},
			"japan":       {Currency: "¥", Rate: 0.56, Hotel: 12000, Meal: 1500, Transport: 1000, Activity: 2000},
			"thailand":    {Currency: "฿", Rate: 2.3, Hotel: 1200, Meal: 200, Transport: 250, Activity: 500},
			"uae":         {Currency: "د.إ", Rate: 22.6, Hotel: 350, Meal: 60, Transport: 40, Activity: 120},
			"singapore":   {Currency: "S$", Rate: 62.0, Hotel: 180, Meal: 15, Transport: 10, Activity: 30},
			"indonesia":   {Currency: "Rp", Rate: 0.0053, Hotel: 650000, Meal: 80000, Transport: 100000, Activity: 200000},
			"australia":   {Currency: "A$", Rate: 55.0, Hotel: 160, Meal: 25, Transport: 15, Activity: 35},
			"switzerland": {Currency: "CHF", Rate: 94.0, Hotel: 180, Meal: 30, Transport: 20, Activity: 40},
		},
		Cities: map[string]string{
			"paris":     "france",
			"nice":      "france",
			"rome":      "italy",
			"venice":    "italy",
			"milan":     "italy",
			"barcelona": "spain",
			"madrid":    "spain",
			"amsterdam": "netherlands",
			"london":    "uk",
			"new york":  "usa",
			"las vegas": "usa",
			"tokyo":     "japan",
			"kyoto":     "japan",
			"bangkok":   "thailand",
			"phuket":    "thailand",
			"dubai":     "uae",
			"singapore": "singapore",
			"bali":      "indonesia",
			"sydney":    "australia",
			"zurich":    "switzerland",
			"mumbai":    "india",
			"delhi":     "india",
			"goa":       "india",
			"jaipur":    "india",
			"manali":    "india",
		},
	}
}

// CountryForCity maps a city to its country key, falling back to
// DefaultCountry when the city is not in the index.
func (r ReferenceData) CountryForCity(city string) string {
	key := NormalizeCity(city)
	if country, ok := r.Cities[key]; ok {
		return country
	}
	return DefaultCountry
}

// ProfileFor returns the profile for a country key, falling back to the
// default country's profile on a miss.
func (r ReferenceData) ProfileFor(country string) CountryProfile {
	if p, ok := r.Countries[strings.ToLower(strings.TrimSpace(country))]; ok {
		return p
	}
	return r.Countries[DefaultCountry]
}

// NormalizeCity collapses free-text city input to the canonical lookup key.
func NormalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders an amount with its currency symbol and thousands
// separators, truncated to whole units. No rounding happens before this point.
func FormatMoney(symbol string, amount float64) string {
	return moneyPrinter.Sprintf("%s%d", symbol, int64(amount))
}
