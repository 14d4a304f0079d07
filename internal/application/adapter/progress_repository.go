// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/domain/entity"
)

// ProgressRepository defines the interface for progress persistence operations.
//
// Record and ResetDay run inside a single database transaction so the
// entry upsert and the goal recompute cannot race with a concurrent
// submission for the same goal.
type ProgressRepository interface {
	// Record upserts the progress entry for its (user, goal, day) key,
	// re-sums all entries for the goal and persists the goal's updated
	// progress and status. The goal entity is mutated with the new values.
	Record(ctx context.Context, goal *entity.Goal, entry *entity.ProgressEntry) (*entity.ProgressEntry, error)

	// ResetDay deletes the progress entry for the given day (if any),
	// re-aggregates the goal and persists it. The goal entity is mutated.
	ResetDay(ctx context.Context, goal *entity.Goal, day time.Time) error

	// SumByGoal returns the unclamped sum of all entry values for a goal.
	SumByGoal(ctx context.Context, userID, goalID uuid.UUID) (float64, error)

	// FindByGoal retrieves entries for a goal since the given time, newest first.
	FindByGoal(ctx context.Context, userID, goalID uuid.UUID, since time.Time) ([]*entity.ProgressEntry, error)

	// FindByUserSince retrieves all of a user's entries since the given time,
	// newest first.
	FindByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.ProgressEntry, error)

	// DeleteByGoalID removes all entries for a goal (cascade on goal delete).
	DeleteByGoalID(ctx context.Context, goalID uuid.UUID) error

	// DeleteByUserID removes all entries owned by a user (account deletion).
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
