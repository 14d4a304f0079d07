// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/domain/entity"
)

// RecommendationRepository defines the interface for recommended-goal persistence.
type RecommendationRepository interface {
	// CreateBatch stores a batch of freshly generated recommendations.
	CreateBatch(ctx context.Context, recs []*entity.RecommendedGoal) error

	// FindByID retrieves a recommendation by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecommendedGoal, error)

	// FindByUserID retrieves all recommendations for a user, newest first,
	// optionally filtered by status.
	FindByUserID(ctx context.Context, userID uuid.UUID, status *entity.RecommendationStatus) ([]*entity.RecommendedGoal, error)

	// Update saves changes to a recommendation.
	Update(ctx context.Context, rec *entity.RecommendedGoal) error

	// Accept atomically flips the recommendation to accepted and creates the
	// materialized goal in the same transaction.
	Accept(ctx context.Context, rec *entity.RecommendedGoal, goal *entity.Goal) error

	// DeleteByUserID removes all recommendations owned by a user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
