// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Title    string    `gorm:"type:varchar(255);not null"`
	Category string    `gorm:"type:varchar(20);not null;index"`

	Specific   string `gorm:"type:text;not null"`
	Measurable string `gorm:"type:text;not null"`
	Achievable string `gorm:"type:text;not null"`
	Relevant   string `gorm:"type:text;not null"`

	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`

	TargetValue     float64 `gorm:"type:decimal(15,2);not null"`
	Unit            string  `gorm:"type:varchar(50);not null"`
	CurrentProgress float64 `gorm:"type:decimal(15,2);not null;default:0"`
	Status          string  `gorm:"type:varchar(20);not null;default:'not_started';index"`

	Motivation         string `gorm:"type:text"`
	PotentialObstacles string `gorm:"type:text"`
	Strategies         string `gorm:"type:text"`
	Notes              string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:                 m.ID,
		UserID:             m.UserID,
		Title:              m.Title,
		Category:           entity.GoalCategory(m.Category),
		Specific:           m.Specific,
		Measurable:         m.Measurable,
		Achievable:         m.Achievable,
		Relevant:           m.Relevant,
		StartDate:          m.StartDate,
		EndDate:            m.EndDate,
		TargetValue:        m.TargetValue,
		Unit:               m.Unit,
		CurrentProgress:    m.CurrentProgress,
		Status:             entity.GoalStatus(m.Status),
		Motivation:         m.Motivation,
		PotentialObstacles: m.PotentialObstacles,
		Strategies:         m.Strategies,
		Notes:              m.Notes,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:                 goal.ID,
		UserID:             goal.UserID,
		Title:              goal.Title,
		Category:           string(goal.Category),
		Specific:           goal.Specific,
		Measurable:         goal.Measurable,
		Achievable:         goal.Achievable,
		Relevant:           goal.Relevant,
		StartDate:          goal.StartDate,
		EndDate:            goal.EndDate,
		TargetValue:        goal.TargetValue,
		Unit:               goal.Unit,
		CurrentProgress:    goal.CurrentProgress,
		Status:             string(goal.Status),
		Motivation:         goal.Motivation,
		PotentialObstacles: goal.PotentialObstacles,
		Strategies:         goal.Strategies,
		Notes:              goal.Notes,
		CreatedAt:          goal.CreatedAt,
		UpdatedAt:          goal.UpdatedAt,
	}
}
