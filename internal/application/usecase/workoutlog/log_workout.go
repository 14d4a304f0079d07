// Package workoutlog contains the workout logging use cases.
package workoutlog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/application/adapter"
	"github.com/goaltracker/backend/internal/domain/entity"
	domainerror "github.com/goaltracker/backend/internal/domain/error"
)

// LogWorkoutInput represents the input for recording a workout.
type LogWorkoutInput struct {
	UserID          uuid.UUID
	GoalID          *uuid.UUID
	Activity        string
	DurationMinutes int
	Calories        int
	LoggedAt        time.Time
	Notes           string
}

// LogWorkoutOutput represents the output of recording a workout.
type LogWorkoutOutput struct {
	Log *entity.WorkoutLog
}

// LogWorkoutUseCase handles workout log creation.
type LogWorkoutUseCase struct {
	workoutRepo adapter.WorkoutLogRepository
	goalRepo    adapter.GoalRepository
}

// NewLogWorkoutUseCase creates a new LogWorkoutUseCase instance.
func NewLogWorkoutUseCase(workoutRepo adapter.WorkoutLogRepository, goalRepo adapter.GoalRepository) *LogWorkoutUseCase {
	return &LogWorkoutUseCase{
		workoutRepo: workoutRepo,
		goalRepo:    goalRepo,
	}
}

// Execute appends a workout log. When a goal reference is supplied it must
// exist and belong to the caller.
func (uc *LogWorkoutUseCase) Execute(ctx context.Context, input LogWorkoutInput) (*LogWorkoutOutput, error) {
	if strings.TrimSpace(input.Activity) == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"activity is required",
			domainerror.ErrMissingGoalFields,
		)
	}
	if input.DurationMinutes <= 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetValue,
			"duration must be greater than zero",
			domainerror.ErrInvalidTargetValue,
		)
	}

	if input.GoalID != nil {
		goal, err := uc.goalRepo.FindByID(ctx, *input.GoalID)
		if err != nil {
			if errors.Is(err, domainerror.ErrGoalNotFound) {
				return nil, domainerror.NewGoalError(
					domainerror.ErrCodeGoalNotFound,
					"goal not found",
					domainerror.ErrGoalNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find goal: %w", err)
		}
		if goal.UserID != input.UserID {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
	}

	loggedAt := input.LoggedAt
	if loggedAt.IsZero() {
		loggedAt = time.Now().UTC()
	}

	log := entity.NewWorkoutLog(
		input.UserID,
		input.GoalID,
		input.Activity,
		input.DurationMinutes,
		input.Calories,
		loggedAt,
		input.Notes,
	)

	if err := uc.workoutRepo.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to create workout log: %w", err)
	}

	return &LogWorkoutOutput{
		Log: log,
	}, nil
}
