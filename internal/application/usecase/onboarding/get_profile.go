// Package onboarding contains the questionnaire use cases.
package onboarding

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/application/adapter"
	"github.com/goaltracker/backend/internal/domain/entity"
	domainerror "github.com/goaltracker/backend/internal/domain/error"
)

// GetProfileInput represents the input for retrieving the questionnaire.
type GetProfileInput struct {
	UserID uuid.UUID
}

// GetProfileOutput represents the output of retrieving the questionnaire.
type GetProfileOutput struct {
	Profile *entity.OnboardingProfile
}

// GetProfileUseCase handles onboarding profile retrieval.
type GetProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(profileRepo adapter.ProfileRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute returns the user's saved questionnaire answers.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	profile, err := uc.profileRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProfileNotFound) {
			return nil, domainerror.NewProfileError(
				domainerror.ErrCodeProfileNotFound,
				"onboarding profile not found",
				domainerror.ErrProfileNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find onboarding profile: %w", err)
	}

	return &GetProfileOutput{
		Profile: profile,
	}, nil
}
