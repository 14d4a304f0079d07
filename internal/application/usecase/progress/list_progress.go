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

// ListProgressInput represents the input for listing a goal's progress history.
type ListProgressInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID

	// Since limits the history window. Zero means the full history.
	Since time.Time
}

// ListProgressOutput represents the output of listing progress history.
type ListProgressOutput struct {
	Goal    *entity.Goal
	Entries []*entity.ProgressEntry
}

// ListProgressUseCase handles progress history retrieval.
type ListProgressUseCase struct {
	goalRepo     adapter.GoalRepository
	progressRepo adapter.ProgressRepository
}

// NewListProgressUseCase creates a new ListProgressUseCase instance.
func NewListProgressUseCase(goalRepo adapter.GoalRepository, progressRepo adapter.ProgressRepository) *ListProgressUseCase {
	return &ListProgressUseCase{
		goalRepo:     goalRepo,
		progressRepo: progressRepo,
	}
}

// Execute returns the goal's progress entries ordered by day, newest first.
func (uc *ListProgressUseCase) Execute(ctx context.Context, input ListProgressInput) (*ListProgressOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	entries, err := uc.progressRepo.FindByGoal(ctx, input.UserID, input.GoalID, input.Since)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}

	return &ListProgressOutput{
		Goal:    goal,
		Entries: entries,
	}, nil
}
