package handlers

import (
	"errors"
	"fmt"
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

// TripsHandler manages trip-related endpoints
type TripsHandler struct {
	trips repository.TripRepository
}

// NewTripsHandler creates a new TripsHandler
func NewTripsHandler(trips repository.TripRepository) *TripsHandler {
	return &TripsHandler{trips: trips}
}

// Trips dispatches by HTTP method for /api/trips
func (h *TripsHandler) Trips(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.CreateTrip(w, r)
	case http.MethodGet:
		// If path has an ID suffix, treat as detail
		if strings.HasPrefix(r.URL.Path, "/api/trips/") && len(r.URL.Path) > len("/api/trips/") {
			h.TripDetail(w, r)
			return
		}
		h.ListTrips(w, r)
	case http.MethodPut, http.MethodPatch:
		h.UpdateTrip(w, r)
	case http.MethodDelete:
		h.DeleteTrip(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func tripToResponse(t *models.Trip) dto.TripResponse {
	return dto.TripResponse{
		ID:          t.ID.String(),
		Destination: t.Destination,
		StartDate:   utils.FormatDate(t.StartDate),
		EndDate:     utils.FormatDate(t.EndDate),
		Budget:      t.Budget,
		Notes:       t.Notes,
		Image:       t.Image,
		CreatedAt:   utils.FormatTimestamp(t.CreatedAt),
		UpdatedAt:   utils.FormatTimestamp(t.UpdatedAt),
	}
}

func conflictDetail(c *models.Trip) string {
	return fmt.Sprintf("Dates overlap with your trip to %s (%s to %s)",
		c.Destination, utils.FormatDate(c.StartDate), utils.FormatDate(c.EndDate))
}

// CreateTrip handles POST /api/trips
// @Summary Create a new trip
// @Tags trips
// @Accept json
// @Produce json
// @Param payload body dto.CreateTripRequest true "Trip payload"
// @Success 201 {object} dto.CreateTripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/trips [post]
func (h *TripsHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.CreateTripRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	// Basic validation
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" || req.StartDate == "" || req.EndDate == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "destination, start_date, end_date are required")
		return
	}
	if req.Budget < 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "budget cannot be negative")
		return
	}

	startAt, err := utils.ParseDate(req.StartDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "start_date must be ISO 8601 format (YYYY-MM-DD or RFC3339)")
		return
	}
	endAt, err := utils.ParseDate(req.EndDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "end_date must be ISO 8601 format (YYYY-MM-DD or RFC3339)")
		return
	}
	if endAt.Before(startAt) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "end_date cannot be before start_date")
		return
	}

	// Overlap check against the user's existing trips
	existing, err := h.trips.ListByUser(r.Context(), userID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	if c := planner.FindConflict(startAt, endAt, existing, uuid.Nil); c != nil {
		utils.WriteErrorResponse(w, http.StatusConflict, "Trip dates conflict", conflictDetail(c))
		return
	}

	now := time.Now()
	trip := &models.Trip{
		ID:          uuid.New(),
		UserID:      userID,
		Destination: req.Destination,
		StartDate:   startAt,
		EndDate:     endAt,
		Budget:      req.Budget,
		Notes:       req.Notes,
		Image:       planner.PlaceholderImage(req.Destination),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.trips.Create(r.Context(), trip); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.CreateTripResponse{Trip: tripToResponse(trip)})
}

// ListTrips handles GET /api/trips
// @Summary List the current user's trips
// @Tags trips
// @Produce json
// @Success 200 {object} dto.TripListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/trips [get]
func (h *TripsHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	trips, err := h.trips.ListByUser(r.Context(), userID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	items := make([]dto.TripResponse, 0, len(trips))
	for i := range trips {
		items = append(items, tripToResponse(&trips[i]))
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TripListResponse{Trips: items, Total: len(items)})
}

func tripIDFromPath(path string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimPrefix(path, "/api/trips/"))
}

// TripDetail handles GET /api/trips/{trip_id}
// @Summary Get trip detail
// @Tags trips
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/trips/{trip_id} [get]
func (h *TripsHandler) TripDetail(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	tripID, err := tripIDFromPath(r.URL.Path)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid trip id", "trip_id must be UUID")
		return
	}

	// Owner scoping makes another user's trip indistinguishable from a
	// missing one.
	trip, err := h.trips.GetByID(r.Context(), tripID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Trip not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT/PATCH /api/trips/{trip_id}
// @Summary Update a trip
// @Tags trips
// @Accept json
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Param payload body dto.UpdateTripRequest true "Update payload"
// @Success 200 {object} dto.CreateTripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/trips/{trip_id} [put]
func (h *TripsHandler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	tripID, err := tripIDFromPath(r.URL.Path)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid trip id", "trip_id must be UUID")
		return
	}

	cur, err := h.trips.GetByID(r.Context(), tripID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Trip not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	var req dto.UpdateTripRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	// Prepare new values, default to current if nil
	destination := cur.Destination
	if req.Destination != nil {
		destination = strings.TrimSpace(*req.Destination)
		if destination == "" {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "destination cannot be empty")
			return
		}
	}
	notes := cur.Notes
	if req.Notes != nil {
		notes = *req.Notes
	}
	startDate := cur.StartDate
	if req.StartDate != nil {
		t, err := utils.ParseDate(strings.TrimSpace(*req.StartDate))
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "start_date must be ISO 8601 format (YYYY-MM-DD)")
			return
		}
		startDate = t
	}
	endDate := cur.EndDate
	if req.EndDate != nil {
		t, err := utils.ParseDate(strings.TrimSpace(*req.EndDate))
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "end_date must be ISO 8601 format (YYYY-MM-DD)")
			return
		}
		endDate = t
	}
	if endDate.Before(startDate) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "end_date cannot be before start_date")
		return
	}
	budget := cur.Budget
	if req.Budget != nil {
		if *req.Budget < 0 {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "budget cannot be negative")
			return
		}
		budget = *req.Budget
	}

	// Overlap check, excluding the trip being edited
	existing, err := h.trips.ListByUser(r.Context(), userID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	if c := planner.FindConflict(startDate, endDate, existing, cur.ID); c != nil {
		utils.WriteErrorResponse(w, http.StatusConflict, "Trip dates conflict", conflictDetail(c))
		return
	}

	// Identifier, owner and image are immutable on edit
	cur.Destination = destination
	cur.StartDate = startDate
	cur.EndDate = endDate
	cur.Budget = budget
	cur.Notes = notes
	cur.UpdatedAt = time.Now()

	if err := h.trips.Update(r.Context(), cur); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Trip not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.CreateTripResponse{Trip: tripToResponse(cur)})
}

// DeleteTrip handles DELETE /api/trips/{trip_id}
// @Summary Delete a trip
// @Tags trips
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/trips/{trip_id} [delete]
func (h *TripsHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	tripID, err := tripIDFromPath(r.URL.Path)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid trip id", "trip_id must be UUID")
		return
	}

	if err := h.trips.Delete(r.Context(), tripID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Trip not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Trip deleted successfully"})
}
