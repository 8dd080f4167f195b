package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"TRAVELPLANNER_BACK-END/internal/models"
)

// PostgresTripRepository is the pgx-backed TripRepository.
type PostgresTripRepository struct {
	db *pgxpool.Pool
}

// NewPostgresTripRepository creates a trip repository over the given pool.
func NewPostgresTripRepository(db *pgxpool.Pool) *PostgresTripRepository {
	return &PostgresTripRepository{db: db}
}

func (r *PostgresTripRepository) Create(ctx context.Context, trip *models.Trip) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO trips (id, user_id, destination, start_date, end_date, budget, notes, image, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		trip.ID, trip.UserID, trip.Destination, trip.StartDate, trip.EndDate,
		trip.Budget, trip.Notes, trip.Image, trip.CreatedAt, trip.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert trip: %w", err)
	}
	return nil
}

func (r *PostgresTripRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Trip, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, destination, start_date, end_date, budget, notes, image, created_at, updated_at
           FROM trips
          WHERE user_id = $1
          ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()

	trips := make([]models.Trip, 0)
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(&t.ID, &t.UserID, &t.Destination, &t.StartDate, &t.EndDate,
			&t.Budget, &t.Notes, &t.Image, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return trips, nil
}

func (r *PostgresTripRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Trip, error) {
	var t models.Trip
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, destination, start_date, end_date, budget, notes, image, created_at, updated_at
           FROM trips
          WHERE id = $1 AND user_id = $2`, id, userID).Scan(
		&t.ID, &t.UserID, &t.Destination, &t.StartDate, &t.EndDate,
		&t.Budget, &t.Notes, &t.Image, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}
	return &t, nil
}

func (r *PostgresTripRepository) Update(ctx context.Context, trip *models.Trip) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE trips
            SET destination = $1,
                start_date = $2,
                end_date = $3,
                budget = $4,
                notes = $5,
                updated_at = $6
          WHERE id = $7 AND user_id = $8`,
		trip.Destination, trip.StartDate, trip.EndDate, trip.Budget, trip.Notes,
		trip.UpdatedAt, trip.ID, trip.UserID,
	)
	if err != nil {
		return fmt.Errorf("update trip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresTripRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM trips WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete trip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
