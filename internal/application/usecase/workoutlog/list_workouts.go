// Package workoutlog contains the workout logging use cases.
package workoutlog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/application/adapter"
	"github.com/goaltracker/backend/internal/domain/entity"
)

// ListWorkoutsInput represents the input for listing workout logs.
type ListWorkoutsInput struct {
	UserID uuid.UUID

	// Since limits the history window. Zero means the full history.
	Since time.Time
}

// ListWorkoutsOutput represents the output of listing workout logs.
type ListWorkoutsOutput struct {
	Logs []*entity.WorkoutLog

	TotalMinutes  int
	TotalCalories int
}

// ListWorkoutsUseCase handles workout history retrieval.
type ListWorkoutsUseCase struct {
	workoutRepo adapter.WorkoutLogRepository
}

// NewListWorkoutsUseCase creates a new ListWorkoutsUseCase instance.
func NewListWorkoutsUseCase(workoutRepo adapter.WorkoutLogRepository) *ListWorkoutsUseCase {
	return &ListWorkoutsUseCase{
		workoutRepo: workoutRepo,
	}
}

// Execute returns the user's workout logs, newest first, with running totals.
func (uc *ListWorkoutsUseCase) Execute(ctx context.Context, input ListWorkoutsInput) (*ListWorkoutsOutput, error) {
	logs, err := uc.workoutRepo.FindByUserSince(ctx, input.UserID, input.Since)
	if err != nil {
		return nil, fmt.Errorf("failed to list workout logs: %w", err)
	}

	out := &ListWorkoutsOutput{Logs: logs}
	for _, l := range logs {
		out.TotalMinutes += l.DurationMinutes
		out.TotalCalories += l.Calories
	}
	return out, nil
}
