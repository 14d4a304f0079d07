// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/goaltracker/backend/internal/domain/entity"
)

// LogWorkoutRequest represents the request body for recording a workout.
type LogWorkoutRequest struct {
	Activity        string `json:"activity" binding:"required,min=1,max=200"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
	Calories        int    `json:"calories,omitempty" binding:"omitempty,min=0"`
	GoalID          string `json:"goal_id,omitempty" binding:"omitempty,uuid"`
	LoggedAt        string `json:"logged_at,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Notes           string `json:"notes,omitempty"`
}

// WorkoutLogResponse represents a workout log in API responses.
type WorkoutLogResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	GoalID          *string   `json:"goal_id,omitempty"`
	Activity        string    `json:"activity"`
	DurationMinutes int       `json:"duration_minutes"`
	Calories        int       `json:"calories"`
	Notes           string    `json:"notes,omitempty"`
	LoggedAt        string    `json:"logged_at"`
	CreatedAt       time.Time `json:"created_at"`
}

// WorkoutLogListResponse represents the response for listing workout logs.
type WorkoutLogListResponse struct {
	Logs          []WorkoutLogResponse `json:"logs"`
	TotalMinutes  int                  `json:"total_minutes"`
	TotalCalories int                  `json:"total_calories"`
}

// ToWorkoutLogResponse converts a WorkoutLog entity to its DTO.
func ToWorkoutLogResponse(l *entity.WorkoutLog) WorkoutLogResponse {
	response := WorkoutLogResponse{
		ID:              l.ID.String(),
		UserID:          l.UserID.String(),
		Activity:        l.Activity,
		DurationMinutes: l.DurationMinutes,
		Calories:        l.Calories,
		Notes:           l.Notes,
		LoggedAt:        l.LoggedAt.Format("2006-01-02"),
		CreatedAt:       l.CreatedAt,
	}

	if l.GoalID != nil {
		goalID := l.GoalID.String()
		response.GoalID = &goalID
	}

	return response
}

// ToWorkoutLogListResponse converts logs and totals to a list response.
func ToWorkoutLogListResponse(logs []*entity.WorkoutLog, totalMinutes, totalCalories int) WorkoutLogListResponse {
	responses := make([]WorkoutLogResponse, len(logs))
	for i, l := range logs {
		responses[i] = ToWorkoutLogResponse(l)
	}
	return WorkoutLogListResponse{
		Logs:          responses,
		TotalMinutes:  totalMinutes,
		TotalCalories: totalCalories,
	}
}
