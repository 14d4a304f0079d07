// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUserID retrieves all goals for a given user, newest first,
	// optionally filtered by category.
	FindByUserID(ctx context.Context, userID uuid.UUID, category *entity.GoalCategory) ([]*entity.Goal, error)

	// CountByCategory returns the number of goals per category for a user.
	CountByCategory(ctx context.Context, userID uuid.UUID) (map[entity.GoalCategory]int64, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal and all of its progress entries atomically.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUserID removes all goals owned by a user (account deletion).
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
