package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELPLANNER_BACK-END/internal/dto"
	"TRAVELPLANNER_BACK-END/internal/models"
	"TRAVELPLANNER_BACK-END/internal/repository"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

// memTripRepo is an in-memory TripRepository preserving insertion order.
type memTripRepo struct {
	trips []models.Trip
}

func (m *memTripRepo) Create(ctx context.Context, trip *models.Trip) error {
	m.trips = append(m.trips, *trip)
	return nil
}

func (m *memTripRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Trip, error) {
	out := make([]models.Trip, 0)
	for _, t := range m.trips {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTripRepo) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Trip, error) {
	for i := range m.trips {
		if m.trips[i].ID == id && m.trips[i].UserID == userID {
			t := m.trips[i]
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memTripRepo) Update(ctx context.Context, trip *models.Trip) error {
	for i := range m.trips {
		if m.trips[i].ID == trip.ID && m.trips[i].UserID == trip.UserID {
			m.trips[i] = *trip
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memTripRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	for i := range m.trips {
		if m.trips[i].ID == id && m.trips[i].UserID == userID {
			m.trips = append(m.trips[:i], m.trips[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func authedRequest(t *testing.T, method, path string, userID uuid.UUID, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	return req.WithContext(utils.SetUserIDInContext(req.Context(), userID))
}

func createTrip(t *testing.T, h *TripsHandler, userID uuid.UUID, dest, start, end string) dto.TripResponse {
	t.Helper()
	rec := httptest.NewRecorder()
	h.CreateTrip(rec, authedRequest(t, http.MethodPost, "/api/trips", userID, dto.CreateTripRequest{
		Destination: dest,
		StartDate:   start,
		EndDate:     end,
		Budget:      50000,
		Notes:       "packing list: passport",
	}))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp dto.CreateTripResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Trip
}

func TestCreateTripValidation(t *testing.T) {
	h := NewTripsHandler(&memTripRepo{})
	userID := uuid.New()

	tests := []struct {
		name string
		req  dto.CreateTripRequest
		want int
	}{
		{"missing destination", dto.CreateTripRequest{StartDate: "2025-06-01", EndDate: "2025-06-05"}, http.StatusBadRequest},
		{"bad date format", dto.CreateTripRequest{Destination: "Paris", StartDate: "01/06/2025", EndDate: "2025-06-05"}, http.StatusBadRequest},
		{"end before start", dto.CreateTripRequest{Destination: "Paris", StartDate: "2025-06-05", EndDate: "2025-06-01"}, http.StatusBadRequest},
		{"negative budget", dto.CreateTripRequest{Destination: "Paris", StartDate: "2025-06-01", EndDate: "2025-06-05", Budget: -1}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.CreateTrip(rec, authedRequest(t, http.MethodPost, "/api/trips", userID, tt.req))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestCreateTripOverlapConflict(t *testing.T) {
	h := NewTripsHandler(&memTripRepo{})
	userID := uuid.New()

	createTrip(t, h, userID, "Paris", "2025-06-01", "2025-06-05")

	rec := httptest.NewRecorder()
	h.CreateTrip(rec, authedRequest(t, http.MethodPost, "/api/trips", userID, dto.CreateTripRequest{
		Destination: "Rome",
		StartDate:   "2025-06-05", // boundary day shared with the Paris trip
		EndDate:     "2025-06-10",
	}))
	require.Equal(t, http.StatusConflict, rec.Code)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Contains(t, errResp.Message, "2025-06-01")
	assert.Contains(t, errResp.Message, "2025-06-05")
}

func TestCreateTripOverlapWithTimestampInput(t *testing.T) {
	h := NewTripsHandler(&memTripRepo{})
	userID := uuid.New()

	createTrip(t, h, userID, "Paris", "2025-06-01", "2025-06-05")

	// An RFC3339 start on the existing trip's last day is the same calendar
	// day, regardless of the time-of-day carried in the input.
	rec := httptest.NewRecorder()
	h.CreateTrip(rec, authedRequest(t, http.MethodPost, "/api/trips", userID, dto.CreateTripRequest{
		Destination: "Rome",
		StartDate:   "2025-06-05T10:00:00Z",
		EndDate:     "2025-06-10T18:00:00Z",
	}))
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
}

func TestCreateTripOtherUserNoConflict(t *testing.T) {
	h := NewTripsHandler(&memTripRepo{})

	createTrip(t, h, uuid.New(), "Paris", "2025-06-01", "2025-06-05")

	// A different user may book the same dates
	rec := httptest.NewRecorder()
	h.CreateTrip(rec, authedRequest(t, http.MethodPost, "/api/trips", uuid.New(), dto.CreateTripRequest{
		Destination: "Paris",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-05",
	}))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestTripRoundTripAndOwnership(t *testing.T) {
	h := NewTripsHandler(&memTripRepo{})
	owner := uuid.New()

	created := createTrip(t, h, owner, "Tokyo", "2025-07-01", "2025-07-08")
	assert.NotEmpty(t, created.Image)

	// Owner fetch returns identical fields
	rec := httptest.NewRecorder()
	h.TripDetail(rec, authedRequest(t, http.MethodGet, "/api/trips/"+created.ID, owner, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TripResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, created.Destination, got.Destination)
	assert.Equal(t, created.StartDate, got.StartDate)
	assert.Equal(t, created.EndDate, got.EndDate)
	assert.Equal(t, created.Budget, got.Budget)
	assert.Equal(t, created.Notes, got.Notes)

	// Another user sees not-found, not forbidden
	rec = httptest.NewRecorder()
	h.TripDetail(rec, authedRequest(t, http.MethodGet, "/api/trips/"+created.ID, uuid.New(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateTripKeepsOwnDates(t *testing.T) {
	h := NewTripsHandler(&memTripRepo{})
	owner := uuid.New()

	created := createTrip(t, h, owner, "Tokyo", "2025-07-01", "2025-07-08")

	// Editing a trip without moving its dates must not conflict with itself
	notes := "updated notes"
	rec := httptest.NewRecorder()
	h.UpdateTrip(rec, authedRequest(t, http.MethodPut, "/api/trips/"+created.ID, owner, dto.UpdateTripRequest{
		Notes: &notes,
	}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp dto.CreateTripResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "updated notes", resp.Trip.Notes)
	assert.Equal(t, created.StartDate, resp.Trip.StartDate)
	assert.Equal(t, created.Image, resp.Trip.Image, "image is not regenerated on edit")
}

func TestUpdateTripOverlapWithOtherTrip(t *testing.T) {
	h := NewTripsHandler(&memTripRepo{})
	owner := uuid.New()

	createTrip(t, h, owner, "Paris", "2025-06-01", "2025-06-05")
	second := createTrip(t, h, owner, "Rome", "2025-06-10", "2025-06-15")

	// Moving the second trip onto the first must be rejected
	start := "2025-06-03"
	rec := httptest.NewRecorder()
	h.UpdateTrip(rec, authedRequest(t, http.MethodPut, "/api/trips/"+second.ID, owner, dto.UpdateTripRequest{
		StartDate: &start,
	}))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateTripNotOwned(t *testing.T) {
	h := NewTripsHandler(&memTripRepo{})

	created := createTrip(t, h, uuid.New(), "Paris", "2025-06-01", "2025-06-05")

	notes := "hijack"
	rec := httptest.NewRecorder()
	h.UpdateTrip(rec, authedRequest(t, http.MethodPut, "/api/trips/"+created.ID, uuid.New(), dto.UpdateTripRequest{
		Notes: &notes,
	}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTrip(t *testing.T) {
	h := NewTripsHandler(&memTripRepo{})
	owner := uuid.New()

	created := createTrip(t, h, owner, "Paris", "2025-06-01", "2025-06-05")

	// Foreign delete is not-found
	rec := httptest.NewRecorder()
	h.DeleteTrip(rec, authedRequest(t, http.MethodDelete, "/api/trips/"+created.ID, uuid.New(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Owner delete succeeds, then the trip is gone
	rec = httptest.NewRecorder()
	h.DeleteTrip(rec, authedRequest(t, http.MethodDelete, "/api/trips/"+created.ID, owner, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.TripDetail(rec, authedRequest(t, http.MethodGet, "/api/trips/"+created.ID, owner, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListTripsScopedToUser(t *testing.T) {
	h := NewTripsHandler(&memTripRepo{})
	owner := uuid.New()

	createTrip(t, h, owner, "Paris", "2025-06-01", "2025-06-05")
	createTrip(t, h, uuid.New(), "Rome", "2025-06-01", "2025-06-05")

	rec := httptest.NewRecorder()
	h.ListTrips(rec, authedRequest(t, http.MethodGet, "/api/trips", owner, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.TripListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Trips, 1)
	assert.Equal(t, "Paris", resp.Trips[0].Destination)
}

func TestTripsUnauthenticated(t *testing.T) {
	h := NewTripsHandler(&memTripRepo{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	h.ListTrips(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
