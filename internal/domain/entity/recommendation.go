// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecommendationStatus represents the lifecycle state of a recommended goal.
type RecommendationStatus string

const (
	RecommendationSuggested RecommendationStatus = "suggested"
	RecommendationAccepted  RecommendationStatus = "accepted"
	RecommendationDeclined  RecommendationStatus = "declined"
	RecommendationCompleted RecommendationStatus = "completed"
)

// RecommendedGoal is a system-suggested goal candidate pending user acceptance.
// Accepting one copies its data into a new Goal; it is never referenced by the
// materialized goal afterwards.
type RecommendedGoal struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Category    GoalCategory
	Description string
	Plan        string
	Reasoning   string
	Status      RecommendationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewRecommendedGoal creates a recommendation in the suggested state.
func NewRecommendedGoal(userID uuid.UUID, title string, category GoalCategory, description, plan, reasoning string) *RecommendedGoal {
	now := time.Now().UTC()
	return &RecommendedGoal{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Category:    category,
		Description: description,
		Plan:        plan,
		Reasoning:   reasoning,
		Status:      RecommendationSuggested,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ToGoal materializes the recommendation as a new Goal for the user. The
// SMART fields are seeded from the recommendation text and the goal runs for
// thirty days from acceptance.
func (r *RecommendedGoal) ToGoal() *Goal {
	start := time.Now().UTC()
	goal := NewGoal(r.UserID, r.Title, r.Category, 1, "plan", start, start.AddDate(0, 0, 30))
	goal.Specific = r.Description
	goal.Measurable = "Track progress through the provided plan"
	goal.Achievable = "Based on your profile and preferences"
	goal.Relevant = "Aligned with your wellness goals"
	goal.Notes = r.Plan
	return goal
}
