// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/goaltracker/backend/internal/application/adapter"
	"github.com/goaltracker/backend/internal/domain/entity"
	domainerror "github.com/goaltracker/backend/internal/domain/error"
	"github.com/goaltracker/backend/internal/integration/persistence/model"
)

// profileRepository implements the adapter.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new onboarding profile repository instance.
func NewProfileRepository(db *gorm.DB) adapter.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// Upsert creates or replaces the profile for its user. Resubmitting the
// questionnaire keeps the original row identity and creation time.
func (r *profileRepository) Upsert(ctx context.Context, profile *entity.OnboardingProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.OnboardingProfileModel
		result := tx.Where("user_id = ?", profile.UserID).First(&existing)

		switch {
		case result.Error == nil:
			profile.ID = existing.ID
			profile.CreatedAt = existing.CreatedAt
			profile.UpdatedAt = time.Now().UTC()
			return tx.Save(model.OnboardingProfileFromEntity(profile)).Error
		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			return tx.Create(model.OnboardingProfileFromEntity(profile)).Error
		default:
			return result.Error
		}
	})
}

// FindByUserID retrieves a user's profile.
func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.OnboardingProfile, error) {
	var profileModel model.OnboardingProfileModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profileModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProfileNotFound
		}
		return nil, result.Error
	}
	return profileModel.ToEntity(), nil
}

// DeleteByUserID removes a user's profile.
func (r *profileRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.OnboardingProfileModel{}, "user_id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
