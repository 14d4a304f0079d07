// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/domain/entity"
)

// RecommendedGoalModel represents the recommended_goals table in the database.
type RecommendedGoalModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Category    string    `gorm:"type:varchar(20);not null"`
	Description string    `gorm:"type:text;not null"`
	Plan        string    `gorm:"type:text;not null"`
	Reasoning   string    `gorm:"type:text;not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'suggested';index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the RecommendedGoalModel.
func (RecommendedGoalModel) TableName() string {
	return "recommended_goals"
}

// ToEntity converts a RecommendedGoalModel to a domain RecommendedGoal entity.
func (m *RecommendedGoalModel) ToEntity() *entity.RecommendedGoal {
	return &entity.RecommendedGoal{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Category:    entity.GoalCategory(m.Category),
		Description: m.Description,
		Plan:        m.Plan,
		Reasoning:   m.Reasoning,
		Status:      entity.RecommendationStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// RecommendedGoalFromEntity creates a RecommendedGoalModel from a domain entity.
func RecommendedGoalFromEntity(r *entity.RecommendedGoal) *RecommendedGoalModel {
	return &RecommendedGoalModel{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Category:    string(r.Category),
		Description: r.Description,
		Plan:        r.Plan,
		Reasoning:   r.Reasoning,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
