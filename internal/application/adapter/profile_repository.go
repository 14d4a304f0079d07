// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/domain/entity"
)

// ProfileRepository defines the interface for onboarding profile persistence.
// At most one profile exists per user.
type ProfileRepository interface {
	// Upsert creates or replaces the profile for its user.
	Upsert(ctx context.Context, profile *entity.OnboardingProfile) error

	// FindByUserID retrieves a user's profile.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.OnboardingProfile, error)

	// DeleteByUserID removes a user's profile (account deletion).
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
