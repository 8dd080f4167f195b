package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Destination is one suggested travel destination for the explore page.
type Destination struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// fallbackDestinations is served whenever the provider call or its JSON
// cannot be used.
var fallbackDestinations = []Destination{
	{Name: "Paris", Description: "Museums, cafés and the Seine at dusk."},
	{Name: "Tokyo", Description: "Neon streets, temples and unbeatable food."},
	{Name: "Bali", Description: "Rice terraces, surf beaches and temple sunsets."},
	{Name: "Rome", Description: "Two thousand years of history on every corner."},
	{Name: "Dubai", Description: "Desert safaris and skyline views."},
	{Name: "Goa", Description: "Laid-back beaches and Portuguese-era lanes."},
}

// ItineraryBuilder turns a passing feasibility check into a provider prompt,
// and a failing one into a rejection message without any provider call.
type ItineraryBuilder struct {
	client CompletionClient
}

// NewItineraryBuilder creates a builder over the given provider.
func NewItineraryBuilder(client CompletionClient) *ItineraryBuilder {
	return &ItineraryBuilder{client: client}
}

// RejectionMessage is the fixed-format budget-shortfall answer for an
// infeasible request.
func RejectionMessage(city string, res FeasibilityResult) string {
	return fmt.Sprintf(
		"Your budget is too low for a trip to %s. A minimum of about %s (%s) is required for %d night(s).",
		city, res.MinLocalDisplay(), res.MinBaseDisplay(), res.Nights,
	)
}

// Generate builds the constrained itinerary prompt and returns the provider's
// trimmed response. It must only be called with a feasible result.
func (b *ItineraryBuilder) Generate(ctx context.Context, city string, start, end time.Time, res FeasibilityResult) (string, error) {
	prompt := fmt.Sprintf(
		"Create a detailed day-by-day travel itinerary for %s, %s from %s to %s (%d night(s)).\n"+
			"The traveller's total budget is %s in local currency. Stay within this budget and use realistic local pricing.\n"+
			"Include timings, must-visit places, food recommendations, transport tips and best photo spots.\n"+
			"Use clean bullet formatting.",
		city, TitleCase(res.Country),
		start.Format("2006-01-02"), end.Format("2006-01-02"), res.Nights,
		FormatMoney(res.Profile.Currency, res.LocalBudget),
	)

	out, err := b.client.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Discover asks the provider for exactly six destination suggestions. Any
// call or parse failure falls back to the built-in list; the caller always
// gets six usable destinations.
func (b *ItineraryBuilder) Discover(ctx context.Context) []Destination {
	const prompt = "Return ONLY a valid JSON array, no explanation. " +
		"Generate exactly 6 travel destinations in the format " +
		`[{"name": "", "description": ""}].`

	dests := fallbackDestinations
	if raw, err := b.client.Complete(ctx, prompt); err == nil {
		var parsed []Destination
		if err := json.Unmarshal([]byte(StripCodeFences(raw)), &parsed); err == nil && len(parsed) == 6 {
			dests = parsed
		}
	}

	out := make([]Destination, len(dests))
	for i, d := range dests {
		d.Image = PlaceholderImage(d.Name)
		out[i] = d
	}
	return out
}

// StripCodeFences removes a Markdown code-fence wrapper (``` or ```json) so
// fenced provider output can be fed to the JSON parser.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:] // drop the language tag line
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// PlaceholderImage derives a deterministic image URL from a destination name.
func PlaceholderImage(name string) string {
	q := url.QueryEscape(strings.TrimSpace(name))
	return fmt.Sprintf("https://source.unsplash.com/800x600/?%s,travel", q)
}
