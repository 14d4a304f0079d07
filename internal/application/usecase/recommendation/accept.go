// Package recommendation contains the goal recommendation use cases.
package recommendation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/application/adapter"
	"github.com/goaltracker/backend/internal/domain/entity"
	domainerror "github.com/goaltracker/backend/internal/domain/error"
)

// AcceptInput represents the input for accepting a recommendation.
type AcceptInput struct {
	UserID           uuid.UUID
	RecommendationID uuid.UUID
}

// AcceptOutput represents the output of accepting a recommendation.
type AcceptOutput struct {
	Recommendation *entity.RecommendedGoal
	Goal           *entity.Goal
}

// AcceptUseCase materializes a suggested recommendation as a real goal.
type AcceptUseCase struct {
	recRepo adapter.RecommendationRepository
}

// NewAcceptUseCase creates a new AcceptUseCase instance.
func NewAcceptUseCase(recRepo adapter.RecommendationRepository) *AcceptUseCase {
	return &AcceptUseCase{
		recRepo: recRepo,
	}
}

// Execute copies the recommendation into a new goal and flips its status to
// accepted, both in one transaction. Only suggested recommendations can be
// accepted.
func (uc *AcceptUseCase) Execute(ctx context.Context, input AcceptInput) (*AcceptOutput, error) {
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

	goal := rec.ToGoal()
	rec.Status = entity.RecommendationAccepted
	rec.UpdatedAt = time.Now().UTC()

	if err := uc.recRepo.Accept(ctx, rec, goal); err != nil {
		return nil, fmt.Errorf("failed to accept recommendation: %w", err)
	}

	return &AcceptOutput{
		Recommendation: rec,
		Goal:           goal,
	}, nil
}

// findOwnedRecommendation loads a recommendation and verifies ownership.
// Ownership failures are reported as not-found so IDs cannot be probed.
func findOwnedRecommendation(ctx context.Context, repo adapter.RecommendationRepository, recID, userID uuid.UUID) (*entity.RecommendedGoal, error) {
	rec, err := repo.FindByID(ctx, recID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecommendationNotFound) {
			return nil, domainerror.NewRecommendationError(
				domainerror.ErrCodeRecommendationNotFound,
				"recommendation not found",
				domainerror.ErrRecommendationNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find recommendation: %w", err)
	}

	if rec.UserID != userID {
		return nil, domainerror.NewRecommendationError(
			domainerror.ErrCodeRecommendationNotFound,
			"recommendation not found",
			domainerror.ErrRecommendationNotFound,
		)
	}

	return rec, nil
}
