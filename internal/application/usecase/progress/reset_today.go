// Package progress contains progress tracking use cases.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/application/adapter"
	"github.com/goaltracker/backend/internal/domain/entity"
)

// ResetTodayInput represents the input for resetting today's progress entry.
type ResetTodayInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// ResetTodayOutput represents the output of resetting today's progress.
type ResetTodayOutput struct {
	Goal *entity.Goal
}

// ResetTodayUseCase removes the current day's entry for a goal.
type ResetTodayUseCase struct {
	goalRepo     adapter.GoalRepository
	progressRepo adapter.ProgressRepository
}

// NewResetTodayUseCase creates a new ResetTodayUseCase instance.
func NewResetTodayUseCase(goalRepo adapter.GoalRepository, progressRepo adapter.ProgressRepository) *ResetTodayUseCase {
	return &ResetTodayUseCase{
		goalRepo:     goalRepo,
		progressRepo: progressRepo,
	}
}

// Execute deletes today's entry and recomputes the goal's cumulative progress
// from the surviving entries. Resetting a day with no entry is a no-op.
func (uc *ResetTodayUseCase) Execute(ctx context.Context, input ResetTodayInput) (*ResetTodayOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	today := entity.NormalizeDay(time.Now().UTC())
	if err := uc.progressRepo.ResetDay(ctx, goal, today); err != nil {
		return nil, fmt.Errorf("failed to reset today's progress: %w", err)
	}

	return &ResetTodayOutput{
		Goal: goal,
	}, nil
}
