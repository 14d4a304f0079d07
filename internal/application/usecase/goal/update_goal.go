// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/application/adapter"
	"github.com/goaltracker/backend/internal/domain/entity"
	domainerror "github.com/goaltracker/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update. Nil fields are left
// unchanged.
type UpdateGoalInput struct {
	GoalID      uuid.UUID
	UserID      uuid.UUID
	Title       *string
	Category    *entity.GoalCategory
	TargetValue *float64
	Unit        *string
	Specific    *string
	Measurable  *string
	Achievable  *string
	Relevant    *string
	Notes       *string

	// Abandon marks the goal abandoned. This is the only way to reach the
	// abandoned state and it is terminal.
	Abandon bool
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo     adapter.GoalRepository
	progressRepo adapter.ProgressRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, progressRepo adapter.ProgressRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo:     goalRepo,
		progressRepo: progressRepo,
	}
}

// Execute performs the goal update. Whenever the target value changes, the
// status is re-derived from the recorded progress so a shrunken target
// immediately completes the goal and a grown target reopens it.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		goal.Title = *input.Title
	}

	if input.Category != nil {
		if !entity.ValidCategory(*input.Category) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalCategory,
				"category must be one of fitness, nutrition, mental_health, productivity, sleep, other",
				domainerror.ErrInvalidGoalCategory,
			)
		}
		goal.Category = *input.Category
	}

	if input.Unit != nil {
		goal.Unit = *input.Unit
	}
	if input.Specific != nil {
		goal.Specific = *input.Specific
	}
	if input.Measurable != nil {
		goal.Measurable = *input.Measurable
	}
	if input.Achievable != nil {
		goal.Achievable = *input.Achievable
	}
	if input.Relevant != nil {
		goal.Relevant = *input.Relevant
	}
	if input.Notes != nil {
		goal.Notes = *input.Notes
	}

	if input.TargetValue != nil {
		if *input.TargetValue <= 0 {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetValue,
				"target value must be greater than zero",
				domainerror.ErrInvalidTargetValue,
			)
		}
		goal.TargetValue = *input.TargetValue

		// CurrentProgress is clamped to the old target, so re-derive from
		// the raw entry sum in case the target shrank below it.
		sum, err := uc.progressRepo.SumByGoal(ctx, goal.UserID, goal.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to re-aggregate progress: %w", err)
		}
		goal.ApplyProgress(sum)
	}

	if input.Abandon {
		goal.Status = entity.StatusAbandoned
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}
