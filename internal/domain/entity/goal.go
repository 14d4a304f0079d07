// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoalCategory represents the wellness area a goal belongs to.
type GoalCategory string

const (
	CategoryFitness      GoalCategory = "fitness"
	CategoryNutrition    GoalCategory = "nutrition"
	CategoryMentalHealth GoalCategory = "mental_health"
	CategoryProductivity GoalCategory = "productivity"
	CategorySleep        GoalCategory = "sleep"
	CategoryOther        GoalCategory = "other"
)

// ValidCategory reports whether the given category is a known goal category.
func ValidCategory(c GoalCategory) bool {
	switch c {
	case CategoryFitness, CategoryNutrition, CategoryMentalHealth,
		CategoryProductivity, CategorySleep, CategoryOther:
		return true
	}
	return false
}

// GoalStatus represents the lifecycle state of a goal.
type GoalStatus string

const (
	StatusNotStarted GoalStatus = "not_started"
	StatusInProgress GoalStatus = "in_progress"
	StatusCompleted  GoalStatus = "completed"
	StatusAbandoned  GoalStatus = "abandoned"
)

// Goal represents a user-defined SMART goal with a numeric progress measure.
type Goal struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Title    string
	Category GoalCategory

	// SMART criteria as free text.
	Specific   string
	Measurable string
	Achievable string
	Relevant   string

	StartDate time.Time
	EndDate   time.Time

	TargetValue float64
	Unit        string

	// CurrentProgress is the denormalized sum of all progress entries,
	// clamped to TargetValue.
	CurrentProgress float64
	Status          GoalStatus

	Motivation         string
	PotentialObstacles string
	Strategies         string
	Notes              string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGoal creates a new Goal entity with zero progress.
func NewGoal(userID uuid.UUID, title string, category GoalCategory, targetValue float64, unit string, startDate, endDate time.Time) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           title,
		Category:        category,
		StartDate:       startDate,
		EndDate:         endDate,
		TargetValue:     targetValue,
		Unit:            unit,
		CurrentProgress: 0,
		Status:          StatusNotStarted,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// NextStatus derives the goal status from its cumulative progress. Abandoned
// is terminal: recomputing progress never resurrects an abandoned goal.
func NextStatus(current GoalStatus, progress, target float64) GoalStatus {
	if current == StatusAbandoned {
		return StatusAbandoned
	}
	if target > 0 && progress >= target {
		return StatusCompleted
	}
	if progress > 0 {
		return StatusInProgress
	}
	return StatusNotStarted
}

// ApplyProgress sets the clamped cumulative progress and re-derives the status.
func (g *Goal) ApplyProgress(sum float64) {
	clamped := sum
	if clamped > g.TargetValue {
		clamped = g.TargetValue
	}
	if clamped < 0 {
		clamped = 0
	}
	g.CurrentProgress = clamped
	g.Status = NextStatus(g.Status, sum, g.TargetValue)
	g.UpdatedAt = time.Now().UTC()
}
