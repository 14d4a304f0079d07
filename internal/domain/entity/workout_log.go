// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutLog is an append-only record of a single completed activity. Logs may
// reference the goal they were performed against but are never mutated after
// creation.
type WorkoutLog struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	GoalID   *uuid.UUID
	Activity string

	DurationMinutes int
	Calories        int
	Notes           string

	// LoggedAt is the day the activity happened, normalized to midnight UTC.
	LoggedAt  time.Time
	CreatedAt time.Time
}

// NewWorkoutLog creates a workout log entry.
func NewWorkoutLog(userID uuid.UUID, goalID *uuid.UUID, activity string, durationMinutes, calories int, loggedAt time.Time, notes string) *WorkoutLog {
	return &WorkoutLog{
		ID:              uuid.New(),
		UserID:          userID,
		GoalID:          goalID,
		Activity:        activity,
		DurationMinutes: durationMinutes,
		Calories:        calories,
		Notes:           notes,
		LoggedAt:        NormalizeDay(loggedAt),
		CreatedAt:       time.Now().UTC(),
	}
}
