// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/domain/entity"
)

// ProgressEntryModel represents the progress_entries table in the database.
// The (user_id, goal_id, date) key carries a unique index so one day gets at
// most one entry per goal.
type ProgressEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_goal_date"`
	GoalID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_goal_date;index"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_progress_user_goal_date"`
	Value     float64   `gorm:"type:decimal(15,2);not null"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ProgressEntryModel.
func (ProgressEntryModel) TableName() string {
	return "progress_entries"
}

// ToEntity converts a ProgressEntryModel to a domain ProgressEntry entity.
func (m *ProgressEntryModel) ToEntity() *entity.ProgressEntry {
	return &entity.ProgressEntry{
		ID:        m.ID,
		UserID:    m.UserID,
		GoalID:    m.GoalID,
		Date:      entity.NormalizeDay(m.Date),
		Value:     m.Value,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ProgressEntryFromEntity creates a ProgressEntryModel from a domain entity.
func ProgressEntryFromEntity(e *entity.ProgressEntry) *ProgressEntryModel {
	return &ProgressEntryModel{
		ID:        e.ID,
		UserID:    e.UserID,
		GoalID:    e.GoalID,
		Date:      e.Date,
		Value:     e.Value,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
