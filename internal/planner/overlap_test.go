package planner

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELPLANNER_BACK-END/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{"disjoint before", "2025-01-01", "2025-01-05", "2025-01-06", "2025-01-10", false},
		{"disjoint after", "2025-01-06", "2025-01-10", "2025-01-01", "2025-01-05", false},
		{"identical", "2025-01-01", "2025-01-05", "2025-01-01", "2025-01-05", true},
		{"contained", "2025-01-02", "2025-01-03", "2025-01-01", "2025-01-10", true},
		{"partial overlap", "2025-01-01", "2025-01-05", "2025-01-04", "2025-01-08", true},
		{"boundary same day", "2025-01-01", "2025-01-05", "2025-01-05", "2025-01-10", true},
		{"single shared day", "2025-01-05", "2025-01-05", "2025-01-05", "2025-01-05", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(day(tt.s1), day(tt.e1), day(tt.s2), day(tt.e2))
			assert.Equal(t, tt.want, got)

			// Symmetry holds for every pair
			sym := Overlaps(day(tt.s2), day(tt.e2), day(tt.s1), day(tt.e1))
			assert.Equal(t, got, sym, "overlaps must be symmetric")
		})
	}
}

func TestFindConflict(t *testing.T) {
	tripA := models.Trip{ID: uuid.New(), Destination: "Paris", StartDate: day("2025-03-01"), EndDate: day("2025-03-05")}
	tripB := models.Trip{ID: uuid.New(), Destination: "Tokyo", StartDate: day("2025-04-01"), EndDate: day("2025-04-10")}
	trips := []models.Trip{tripA, tripB}

	t.Run("no conflict", func(t *testing.T) {
		c := FindConflict(day("2025-03-10"), day("2025-03-15"), trips, uuid.Nil)
		assert.Nil(t, c)
	})

	t.Run("conflict reported", func(t *testing.T) {
		c := FindConflict(day("2025-04-05"), day("2025-04-20"), trips, uuid.Nil)
		require.NotNil(t, c)
		assert.Equal(t, tripB.ID, c.ID)
	})

	t.Run("multiple conflicts name some trip", func(t *testing.T) {
		c := FindConflict(day("2025-03-01"), day("2025-04-30"), trips, uuid.Nil)
		// Which one is named is retrieval-order-defined; only require that
		// a conflict is reported.
		require.NotNil(t, c)
	})

	t.Run("edit excludes itself", func(t *testing.T) {
		// Keeping a trip's own dates must never conflict with itself
		c := FindConflict(tripA.StartDate, tripA.EndDate, trips, tripA.ID)
		assert.Nil(t, c)
	})

	t.Run("exclusion still catches other trips", func(t *testing.T) {
		c := FindConflict(day("2025-03-01"), day("2025-04-02"), trips, tripA.ID)
		require.NotNil(t, c)
		assert.Equal(t, tripB.ID, c.ID)
	})

	t.Run("empty trip set", func(t *testing.T) {
		c := FindConflict(day("2025-01-01"), day("2025-01-02"), nil, uuid.Nil)
		assert.Nil(t, c)
	})
}
