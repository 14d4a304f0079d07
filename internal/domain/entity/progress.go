// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProgressEntry represents one dated observation contributing to a goal's
// cumulative progress. At most one entry exists per (user, goal, day).
type ProgressEntry struct {
	ID     uuid.UUID
	UserID uuid.UUID
	GoalID uuid.UUID

	// Date is normalized to midnight UTC.
	Date  time.Time
	Value float64
	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProgressEntry creates a new ProgressEntry for the given day.
func NewProgressEntry(userID, goalID uuid.UUID, date time.Time, value float64, notes string) *ProgressEntry {
	now := time.Now().UTC()
	return &ProgressEntry{
		ID:        uuid.New(),
		UserID:    userID,
		GoalID:    goalID,
		Date:      NormalizeDay(date),
		Value:     value,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NormalizeDay truncates a timestamp to midnight UTC so that entries for the
// same calendar day collide on the (user, goal, date) key.
func NormalizeDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
