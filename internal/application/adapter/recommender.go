// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/goaltracker/backend/internal/domain/entity"
)

// RecommendationDraft is a generated suggestion before it is persisted.
type RecommendationDraft struct {
	Title       string
	Category    entity.GoalCategory
	Description string
	Plan        string
	Reasoning   string
}

// RecommenderService defines the interface for the AI-backed recommendation
// strategy. Callers must treat any error as a signal to use the rule-based
// fallback; a recommender failure never reaches the API surface.
type RecommenderService interface {
	// IsAvailable checks if the service is configured.
	IsAvailable() bool

	// Recommend produces up to three goal suggestions for the given profile.
	Recommend(ctx context.Context, profile *entity.OnboardingProfile) ([]*RecommendationDraft, error)
}
