// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/domain/entity"
)

// WorkoutLogRepository defines the interface for workout log persistence.
// Logs are append-only; there is no update operation.
type WorkoutLogRepository interface {
	// Create appends a new workout log entry.
	Create(ctx context.Context, log *entity.WorkoutLog) error

	// FindByUserSince retrieves a user's logs since the given time, newest first.
	FindByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.WorkoutLog, error)

	// DeleteByUserID removes all logs owned by a user (account deletion).
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
