// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/application/adapter"
	"github.com/goaltracker/backend/internal/domain/entity"
	domainerror "github.com/goaltracker/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID      uuid.UUID
	Title       string
	Category    entity.GoalCategory
	Specific    string
	Measurable  string
	Achievable  string
	Relevant    string
	StartDate   time.Time
	EndDate     time.Time
	TargetValue float64
	Unit        string

	// Optional free-text fields.
	Motivation         string
	PotentialObstacles string
	Strategies         string
	Notes              string
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if err := validateRequiredFields(input); err != nil {
		return nil, err
	}

	if !entity.ValidCategory(input.Category) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalCategory,
			"category must be one of fitness, nutrition, mental_health, productivity, sleep, other",
			domainerror.ErrInvalidGoalCategory,
		)
	}

	if input.TargetValue <= 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetValue,
			"target value must be greater than zero",
			domainerror.ErrInvalidTargetValue,
		)
	}

	if !input.EndDate.After(input.StartDate) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalDates,
			"end date must be after start date",
			domainerror.ErrInvalidGoalDates,
		)
	}

	goal := entity.NewGoal(
		input.UserID,
		input.Title,
		input.Category,
		input.TargetValue,
		input.Unit,
		input.StartDate,
		input.EndDate,
	)

	goal.Specific = input.Specific
	goal.Measurable = input.Measurable
	goal.Achievable = input.Achievable
	goal.Relevant = input.Relevant
	goal.Motivation = input.Motivation
	goal.PotentialObstacles = input.PotentialObstacles
	goal.Strategies = input.Strategies
	goal.Notes = input.Notes

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}

// validateRequiredFields checks the mandatory text fields of a new goal.
func validateRequiredFields(input CreateGoalInput) error {
	required := map[string]string{
		"title":      input.Title,
		"specific":   input.Specific,
		"measurable": input.Measurable,
		"achievable": input.Achievable,
		"relevant":   input.Relevant,
		"unit":       input.Unit,
	}

	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return domainerror.NewGoalError(
				domainerror.ErrCodeMissingGoalFields,
				fmt.Sprintf("%s is required", field),
				domainerror.ErrMissingGoalFields,
			)
		}
	}
	return nil
}
