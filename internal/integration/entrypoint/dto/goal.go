// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/goaltracker/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=200"`
	Category    string  `json:"category" binding:"required,oneof=fitness nutrition mental_health productivity sleep other"`
	Specific    string  `json:"specific" binding:"required"`
	Measurable  string  `json:"measurable" binding:"required"`
	Achievable  string  `json:"achievable" binding:"required"`
	Relevant    string  `json:"relevant" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" binding:"required,datetime=2006-01-02"`
	TargetValue float64 `json:"target_value" binding:"required,gt=0"`
	Unit        string  `json:"unit" binding:"required"`

	Motivation         string `json:"motivation,omitempty"`
	PotentialObstacles string `json:"potential_obstacles,omitempty"`
	Strategies         string `json:"strategies,omitempty"`
	Notes              string `json:"notes,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update. Omitted
// fields are left unchanged.
type UpdateGoalRequest struct {
	Title       *string  `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,oneof=fitness nutrition mental_health productivity sleep other"`
	TargetValue *float64 `json:"target_value,omitempty" binding:"omitempty,gt=0"`
	Unit        *string  `json:"unit,omitempty"`
	Specific    *string  `json:"specific,omitempty"`
	Measurable  *string  `json:"measurable,omitempty"`
	Achievable  *string  `json:"achievable,omitempty"`
	Relevant    *string  `json:"relevant,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
	Abandon     bool     `json:"abandon,omitempty"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Title           string    `json:"title"`
	Category        string    `json:"category"`
	Specific        string    `json:"specific"`
	Measurable      string    `json:"measurable"`
	Achievable      string    `json:"achievable"`
	Relevant        string    `json:"relevant"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	TargetValue     float64   `json:"target_value"`
	Unit            string    `json:"unit"`
	CurrentProgress float64   `json:"current_progress"`
	Status          string    `json:"status"`

	Motivation         string `json:"motivation,omitempty"`
	PotentialObstacles string `json:"potential_obstacles,omitempty"`
	Strategies         string `json:"strategies,omitempty"`
	Notes              string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals          []GoalResponse   `json:"goals"`
	CategoryCounts map[string]int64 `json:"category_counts"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:                 g.ID.String(),
		UserID:             g.UserID.String(),
		Title:              g.Title,
		Category:           string(g.Category),
		Specific:           g.Specific,
		Measurable:         g.Measurable,
		Achievable:         g.Achievable,
		Relevant:           g.Relevant,
		StartDate:          g.StartDate.Format("2006-01-02"),
		EndDate:            g.EndDate.Format("2006-01-02"),
		TargetValue:        g.TargetValue,
		Unit:               g.Unit,
		CurrentProgress:    g.CurrentProgress,
		Status:             string(g.Status),
		Motivation:         g.Motivation,
		PotentialObstacles: g.PotentialObstacles,
		Strategies:         g.Strategies,
		Notes:              g.Notes,
		CreatedAt:          g.CreatedAt,
		UpdatedAt:          g.UpdatedAt,
	}
}

// ToGoalListResponse converts goals and per-category counts to a list response.
func ToGoalListResponse(goals []*entity.Goal, counts map[entity.GoalCategory]int64) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}

	countsByName := make(map[string]int64, len(counts))
	for category, count := range counts {
		countsByName[string(category)] = count
	}

	return GoalListResponse{
		Goals:          responses,
		CategoryCounts: countsByName,
	}
}
