// Package progress contains progress tracking use cases.
package progress

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

// RecordProgressInput represents the input for recording a day's progress.
type RecordProgressInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Date   time.Time
	Value  float64
	Notes  string
}

// RecordProgressOutput represents the output of recording progress.
type RecordProgressOutput struct {
	Entry *entity.ProgressEntry
	Goal  *entity.Goal
}

// RecordProgressUseCase handles progress recording logic.
type RecordProgressUseCase struct {
	goalRepo     adapter.GoalRepository
	progressRepo adapter.ProgressRepository
}

// NewRecordProgressUseCase creates a new RecordProgressUseCase instance.
func NewRecordProgressUseCase(goalRepo adapter.GoalRepository, progressRepo adapter.ProgressRepository) *RecordProgressUseCase {
	return &RecordProgressUseCase{
		goalRepo:     goalRepo,
		progressRepo: progressRepo,
	}
}

// Execute upserts the entry for the given day and updates the goal's
// cumulative progress and status in the same transaction.
func (uc *RecordProgressUseCase) Execute(ctx context.Context, input RecordProgressInput) (*RecordProgressOutput, error) {
	if input.Value < 0 {
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeInvalidProgressValue,
			"progress value must not be negative",
			domainerror.ErrInvalidProgressValue,
		)
	}

	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if goal.Status == entity.StatusAbandoned {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalAbandoned,
			"cannot record progress on an abandoned goal",
			domainerror.ErrGoalAbandoned,
		)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	entry := entity.NewProgressEntry(input.UserID, input.GoalID, date, input.Value, input.Notes)

	saved, err := uc.progressRepo.Record(ctx, goal, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to record progress: %w", err)
	}

	return &RecordProgressOutput{
		Entry: saved,
		Goal:  goal,
	}, nil
}

// findOwnedGoal loads a goal and verifies it belongs to the requesting user.
// Ownership failures are reported as not-found so goal IDs cannot be probed.
func findOwnedGoal(ctx context.Context, repo adapter.GoalRepository, goalID, userID uuid.UUID) (*entity.Goal, error) {
	goal, err := repo.FindByID(ctx, goalID)
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

	if goal.UserID != userID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	return goal, nil
}
