// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/application/adapter"
	"github.com/goaltracker/backend/internal/domain/entity"
	domainerror "github.com/goaltracker/backend/internal/domain/error"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID   uuid.UUID
	Category *entity.GoalCategory // Optional filter
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals          []*entity.Goal
	CategoryCounts map[entity.GoalCategory]int64
}

// ListGoalsUseCase handles goal listing logic.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute retrieves the user's goals and per-category counts. The counts
// always cover all of the user's goals, even when a category filter is set.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	if input.Category != nil && !entity.ValidCategory(*input.Category) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalCategory,
			"unknown category filter",
			domainerror.ErrInvalidGoalCategory,
		)
	}

	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID, input.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	counts, err := uc.goalRepo.CountByCategory(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count goals by category: %w", err)
	}

	return &ListGoalsOutput{
		Goals:          goals,
		CategoryCounts: counts,
	}, nil
}
