// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/domain/entity"
)

// WorkoutLogModel represents the workout_logs table in the database.
type WorkoutLogModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	GoalID          *uuid.UUID `gorm:"type:uuid;index"`
	Activity        string     `gorm:"type:varchar(100);not null"`
	DurationMinutes int        `gorm:"not null"`
	Calories        int        `gorm:"not null;default:0"`
	Notes           string     `gorm:"type:text"`
	LoggedAt        time.Time  `gorm:"type:date;not null;index"`
	CreatedAt       time.Time  `gorm:"not null"`
}

// TableName returns the table name for the WorkoutLogModel.
func (WorkoutLogModel) TableName() string {
	return "workout_logs"
}

// ToEntity converts a WorkoutLogModel to a domain WorkoutLog entity.
func (m *WorkoutLogModel) ToEntity() *entity.WorkoutLog {
	return &entity.WorkoutLog{
		ID:              m.ID,
		UserID:          m.UserID,
		GoalID:          m.GoalID,
		Activity:        m.Activity,
		DurationMinutes: m.DurationMinutes,
		Calories:        m.Calories,
		Notes:           m.Notes,
		LoggedAt:        entity.NormalizeDay(m.LoggedAt),
		CreatedAt:       m.CreatedAt,
	}
}

// WorkoutLogFromEntity creates a WorkoutLogModel from a domain entity.
func WorkoutLogFromEntity(l *entity.WorkoutLog) *WorkoutLogModel {
	return &WorkoutLogModel{
		ID:              l.ID,
		UserID:          l.UserID,
		GoalID:          l.GoalID,
		Activity:        l.Activity,
		DurationMinutes: l.DurationMinutes,
		Calories:        l.Calories,
		Notes:           l.Notes,
		LoggedAt:        l.LoggedAt,
		CreatedAt:       l.CreatedAt,
	}
}
