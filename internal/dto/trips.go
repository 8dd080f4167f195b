package dto

// CreateTripRequest represents the payload to create a trip
type CreateTripRequest struct {
	Destination string  `json:"destination"`
	StartDate   string  `json:"start_date"` // ISO 8601 format: YYYY-MM-DD or RFC3339
	EndDate     string  `json:"end_date"`   // ISO 8601 format: YYYY-MM-DD or RFC3339
	Budget      float64 `json:"budget"`     // base currency (INR)
	Notes       string  `json:"notes"`
}

// UpdateTripRequest represents fields allowed to update a trip
// All fields are optional; only provided ones will be updated
type UpdateTripRequest struct {
	Destination *string  `json:"destination"`
	StartDate   *string  `json:"start_date"` // YYYY-MM-DD
	EndDate     *string  `json:"end_date"`   // YYYY-MM-DD
	Budget      *float64 `json:"budget"`
	Notes       *string  `json:"notes"`
}

// TripResponse represents a trip object in responses
type TripResponse struct {
	ID          string  `json:"id"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Budget      float64 `json:"budget"`
	Notes       string  `json:"notes"`
	Image       string  `json:"image"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// CreateTripResponse envelope. Message is set when the trip was saved but a
// side concern (such as itinerary generation) did not complete.
type CreateTripResponse struct {
	Trip    TripResponse `json:"trip"`
	Message string       `json:"message,omitempty"`
}

// TripListResponse envelope
type TripListResponse struct {
	Trips []TripResponse `json:"trips"`
	Total int            `json:"total"`
}
