// Package repository separates persisted records from the handlers that use
// them. All trip access is scoped by the owning user's id, so another user's
// trip is indistinguishable from a missing one.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"TRAVELPLANNER_BACK-END/internal/models"
)

// ErrNotFound is returned when a row does not exist or is not visible to the
// requesting user.
var ErrNotFound = errors.New("not found")

// TripRepository stores trips scoped by owner.
type TripRepository interface {
	Create(ctx context.Context, trip *models.Trip) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Trip, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Trip, error)
	Update(ctx context.Context, trip *models.Trip) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// UserRepository stores user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
