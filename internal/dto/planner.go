package dto

// ItineraryRequest represents the payload to request an AI itinerary
type ItineraryRequest struct {
	Destination string  `json:"destination"`
	StartDate   string  `json:"start_date"` // YYYY-MM-DD
	EndDate     string  `json:"end_date"`   // YYYY-MM-DD
	Budget      float64 `json:"budget"`     // base currency (INR)
	Notes       string  `json:"notes"`
}

// FeasibilityResponse carries the budget verdict and both currency figures
type FeasibilityResponse struct {
	Feasible       bool    `json:"feasible"`
	Nights         int     `json:"nights"`
	Country        string  `json:"country"`
	Currency       string  `json:"currency"`
	MinCostLocal   float64 `json:"min_cost_local"`
	MinCostBase    float64 `json:"min_cost_base"`
	MinCostDisplay string  `json:"min_cost_display"` // e.g. "€1,234 (₹111,060)"
}

// ItineraryResponse is the outcome of an itinerary request. When the budget
// check fails, Itinerary is empty and Message carries the rejection text.
type ItineraryResponse struct {
	City        string              `json:"city"`
	Feasibility FeasibilityResponse `json:"feasibility"`
	Itinerary   string              `json:"itinerary,omitempty"`
	Message     string              `json:"message,omitempty"`
}

// DestinationResponse is one explore-page suggestion
type DestinationResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ExploreResponse envelope
type ExploreResponse struct {
	Destinations []DestinationResponse `json:"destinations"`
}

// ContactRequest represents a contact-form submission
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// MessageResponse is a simple confirmation payload
type MessageResponse struct {
	Message string `json:"message"`
}
