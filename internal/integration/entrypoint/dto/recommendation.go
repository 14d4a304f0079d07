// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/goaltracker/backend/internal/domain/entity"
)

// RecommendationResponse represents a recommended goal in API responses.
type RecommendationResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Plan        string    `json:"plan"`
	Reasoning   string    `json:"reasoning"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RecommendationListResponse represents the response for listing
// recommendations. Source is only set when the list was just generated.
type RecommendationListResponse struct {
	Recommendations []RecommendationResponse `json:"recommendations"`
	Source          string                   `json:"source,omitempty"`
}

// AcceptRecommendationResponse carries the resolved recommendation together
// with the goal it materialized into.
type AcceptRecommendationResponse struct {
	Recommendation RecommendationResponse `json:"recommendation"`
	Goal           GoalResponse           `json:"goal"`
}

// ToRecommendationResponse converts a RecommendedGoal entity to its DTO.
func ToRecommendationResponse(r *entity.RecommendedGoal) RecommendationResponse {
	return RecommendationResponse{
		ID:          r.ID.String(),
		UserID:      r.UserID.String(),
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

// ToRecommendationListResponse converts recommendations to a list response.
func ToRecommendationListResponse(recommendations []*entity.RecommendedGoal, source string) RecommendationListResponse {
	responses := make([]RecommendationResponse, len(recommendations))
	for i, r := range recommendations {
		responses[i] = ToRecommendationResponse(r)
	}
	return RecommendationListResponse{
		Recommendations: responses,
		Source:          source,
	}
}
