package planner

import (
	"time"

	"github.com/google/uuid"

	"TRAVELPLANNER_BACK-END/internal/models"
)

// Overlaps reports whether two date ranges share at least one day.
// Boundary-adjacent same-day ranges count as overlapping.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return !(e1.Before(s2) || s1.After(e2))
}

// FindConflict returns the first of the user's existing trips whose dates
// overlap the candidate range, or nil when there is none. exclude skips one
// trip id so an edit does not conflict with itself; pass uuid.Nil otherwise.
// Trips are checked in the order given (repository retrieval order).
func FindConflict(start, end time.Time, trips []models.Trip, exclude uuid.UUID) *models.Trip {
	for i := range trips {
		if trips[i].ID == exclude {
			continue
		}
		if Overlaps(start, end, trips[i].StartDate, trips[i].EndDate) {
			return &trips[i]
		}
	}
	return nil
}
