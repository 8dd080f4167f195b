package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

// UserIDKey is the context key under which the auth middleware stores the
// authenticated user's id
const UserIDKey contextKey = "user_id"

// SetUserIDInContext returns a child context carrying the user id
func SetUserIDInContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// GetUserIDFromContext extracts the authenticated user id set by the
// auth middleware
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return id, ok
}
