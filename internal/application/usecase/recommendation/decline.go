// Package recommendation contains the goal recommendation use cases.
package recommendation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/application/adapter"
	"github.com/goaltracker/backend/internal/domain/entity"
	domainerror "github.com/goaltracker/backend/internal/domain/error"
)

// DeclineInput represents the input for declining a recommendation.
type DeclineInput struct {
	UserID           uuid.UUID
	RecommendationID uuid.UUID
}

// DeclineOutput represents the output of declining a recommendation.
type DeclineOutput struct {
	Recommendation *entity.RecommendedGoal
}

// DeclineUseCase marks a suggested recommendation as declined.
type DeclineUseCase struct {
	recRepo adapter.RecommendationRepository
}

// NewDeclineUseCase creates a new DeclineUseCase instance.
func NewDeclineUseCase(recRepo adapter.RecommendationRepository) *DeclineUseCase {
	return &DeclineUseCase{
		recRepo: recRepo,
	}
}

// Execute flips the recommendation to declined. No goal is created.
func (uc *DeclineUseCase) Execute(ctx context.Context, input DeclineInput) (*DeclineOutput, error) {
	rec, err := findOwnedRecommendation(ctx, uc.recRepo, input.RecommendationID, input.UserID)
	if err != nil {
		return nil, err
	}

	if rec.Status != entity.RecommendationSuggested {
		return nil, domainerror.NewRecommendationError(
			domainerror.ErrCodeRecommendationResolved,
			"recommendation has already been accepted or declined",
			domainerror.ErrRecommendationResolved,
		)
	}

	rec.Status = entity.RecommendationDeclined
	rec.UpdatedAt = time.Now().UTC()

	if err := uc.recRepo.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to decline recommendation: %w", err)
	}

	return &DeclineOutput{
		Recommendation: rec,
	}, nil
}
