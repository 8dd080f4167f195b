package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"TRAVELPLANNER_BACK-END/internal/dto"
	"TRAVELPLANNER_BACK-END/internal/models"
	"TRAVELPLANNER_BACK-END/internal/planner"
	"TRAVELPLANNER_BACK-END/internal/repository"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

// PlannerHandler manages AI-assisted planning endpoints: destination
// discovery, budget-checked itinerary generation and itinerary save.
type PlannerHandler struct {
	resolver *planner.CityResolver
	engine   *planner.Engine
	builder  *planner.ItineraryBuilder
	trips    repository.TripRepository
}

// NewPlannerHandler creates a new PlannerHandler
func NewPlannerHandler(resolver *planner.CityResolver, engine *planner.Engine, builder *planner.ItineraryBuilder, trips repository.TripRepository) *PlannerHandler {
	return &PlannerHandler{resolver: resolver, engine: engine, builder: builder, trips: trips}
}

// Explore handles GET /api/explore
// @Summary Suggest six travel destinations
// @Tags planner
// @Produce json
// @Success 200 {object} dto.ExploreResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/explore [get]
func (h *PlannerHandler) Explore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	// Discover never fails; it falls back to the static list internally.
	dests := h.builder.Discover(r.Context())

	items := make([]dto.DestinationResponse, 0, len(dests))
	for _, d := range dests {
		items = append(items, dto.DestinationResponse{
			Name:        d.Name,
			Description: d.Description,
			Image:       d.Image,
		})
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.ExploreResponse{Destinations: items})
}

type itineraryInput struct {
	city   string
	start  time.Time
	end    time.Time
	budget float64
	result planner.FeasibilityResult
}

// validateItineraryRequest runs the shared resolve-and-check pipeline for the
// itinerary and save flows. It writes the error response itself on failure.
func (h *PlannerHandler) validateItineraryRequest(ctx context.Context, w http.ResponseWriter, req *dto.ItineraryRequest) (*itineraryInput, bool) {
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" || req.StartDate == "" || req.EndDate == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "destination, start_date, end_date are required")
		return nil, false
	}
	if req.Budget <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "budget must be a positive number")
		return nil, false
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "start_date must be ISO 8601 format (YYYY-MM-DD)")
		return nil, false
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "end_date must be ISO 8601 format (YYYY-MM-DD)")
		return nil, false
	}
	if end.Before(start) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "end_date cannot be before start_date")
		return nil, false
	}

	city, err := h.resolver.Resolve(ctx, req.Destination)
	if err != nil {
		// Covers both the sentinel answer and provider failures; either way
		// the destination could not be confirmed as a real place.
		utils.WriteErrorResponse(w, http.StatusUnprocessableEntity, "Unknown destination",
			fmt.Sprintf("%q does not appear to be a real place", req.Destination))
		return nil, false
	}

	return &itineraryInput{
		city:   city,
		start:  start,
		end:    end,
		budget: req.Budget,
		result: h.engine.Check(city, start, end, req.Budget),
	}, true
}

func feasibilityToResponse(res planner.FeasibilityResult) dto.FeasibilityResponse {
	return dto.FeasibilityResponse{
		Feasible:       res.Feasible,
		Nights:         res.Nights,
		Country:        res.Country,
		Currency:       res.Profile.Currency,
		MinCostLocal:   res.MinLocal,
		MinCostBase:    res.MinBase,
		MinCostDisplay: fmt.Sprintf("%s (%s)", res.MinLocalDisplay(), res.MinBaseDisplay()),
	}
}

// Itinerary handles POST /api/itinerary
// @Summary Generate a budget-checked AI itinerary
// @Tags planner
// @Accept json
// @Produce json
// @Param payload body dto.ItineraryRequest true "Itinerary request"
// @Success 200 {object} dto.ItineraryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/itinerary [post]
func (h *PlannerHandler) Itinerary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.ItineraryRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	in, ok := h.validateItineraryRequest(r.Context(), w, &req)
	if !ok {
		return
	}

	resp := dto.ItineraryResponse{
		City:        in.city,
		Feasibility: feasibilityToResponse(in.result),
	}

	if !in.result.Feasible {
		resp.Message = planner.RejectionMessage(in.city, in.result)
		utils.WriteJSONResponse(w, http.StatusOK, resp)
		return
	}

	text, err := h.builder.Generate(r.Context(), in.city, in.start, in.end, in.result)
	if err != nil {
		log.Printf("itinerary generation failed for %s: %v", in.city, err)
		resp.Message = "The itinerary service is unavailable right now. Please try again."
		utils.WriteJSONResponse(w, http.StatusOK, resp)
		return
	}
	resp.Itinerary = text

	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// SaveItinerary handles POST /api/itinerary/save
// @Summary Generate an itinerary and save it as a trip
// @Tags planner
// @Accept json
// @Produce json
// @Param payload body dto.ItineraryRequest true "Itinerary request"
// @Success 201 {object} dto.CreateTripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/itinerary/save [post]
func (h *PlannerHandler) SaveItinerary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.ItineraryRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	in, ok := h.validateItineraryRequest(r.Context(), w, &req)
	if !ok {
		return
	}

	if !in.result.Feasible {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Budget too low",
			planner.RejectionMessage(in.city, in.result))
		return
	}

	// Same overlap rule as direct trip creation
	existing, err := h.trips.ListByUser(r.Context(), userID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	if c := planner.FindConflict(in.start, in.end, existing, uuid.Nil); c != nil {
		utils.WriteErrorResponse(w, http.StatusConflict, "Trip dates conflict", conflictDetail(c))
		return
	}

	notes := req.Notes
	generationMsg := ""
	if text, err := h.builder.Generate(r.Context(), in.city, in.start, in.end, in.result); err != nil {
		log.Printf("itinerary generation failed for %s: %v", in.city, err)
		generationMsg = "The trip was saved, but the itinerary could not be generated right now. Please try again."
	} else if notes == "" {
		notes = text
	} else {
		notes = notes + "\n\n" + text
	}

	now := time.Now()
	trip := &models.Trip{
		ID:          uuid.New(),
		UserID:      userID,
		Destination: in.city,
		StartDate:   in.start,
		EndDate:     in.end,
		Budget:      in.budget,
		Notes:       notes,
		Image:       planner.PlaceholderImage(in.city),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.trips.Create(r.Context(), trip); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.CreateTripResponse{
		Trip:    tripToResponse(trip),
		Message: generationMsg,
	})
}
