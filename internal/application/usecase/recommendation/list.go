// Package recommendation contains the goal recommendation use cases.
package recommendation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/application/adapter"
	"github.com/goaltracker/backend/internal/domain/entity"
)

// ListInput represents the input for listing recommendations.
type ListInput struct {
	UserID uuid.UUID

	// Status filters the list when set.
	Status *entity.RecommendationStatus
}

// ListOutput represents the output of listing recommendations.
type ListOutput struct {
	Recommendations []*entity.RecommendedGoal
}

// ListUseCase handles recommendation listing.
type ListUseCase struct {
	recRepo adapter.RecommendationRepository
}

// NewListUseCase creates a new ListUseCase instance.
func NewListUseCase(recRepo adapter.RecommendationRepository) *ListUseCase {
	return &ListUseCase{
		recRepo: recRepo,
	}
}

// Execute returns the user's recommendations, newest first.
func (uc *ListUseCase) Execute(ctx context.Context, input ListInput) (*ListOutput, error) {
	recs, err := uc.recRepo.FindByUserID(ctx, input.UserID, input.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}

	return &ListOutput{
		Recommendations: recs,
	}, nil
}
