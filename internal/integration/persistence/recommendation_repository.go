// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/goaltracker/backend/internal/application/adapter"
	"github.com/goaltracker/backend/internal/domain/entity"
	domainerror "github.com/goaltracker/backend/internal/domain/error"
	"github.com/goaltracker/backend/internal/integration/persistence/model"
)

// recommendationRepository implements the adapter.RecommendationRepository interface.
type recommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository creates a new recommendation repository instance.
func NewRecommendationRepository(db *gorm.DB) adapter.RecommendationRepository {
	return &recommendationRepository{
		db: db,
	}
}

// CreateBatch stores a batch of freshly generated recommendations.
func (r *recommendationRepository) CreateBatch(ctx context.Context, recs []*entity.RecommendedGoal) error {
	if len(recs) == 0 {
		return nil
	}

	recModels := make([]model.RecommendedGoalModel, len(recs))
	for i, rec := range recs {
		recModels[i] = *model.RecommendedGoalFromEntity(rec)
	}

	result := r.db.WithContext(ctx).Create(&recModels)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a recommendation by its ID.
func (r *recommendationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecommendedGoal, error) {
	var recModel model.RecommendedGoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecommendationNotFound
		}
		return nil, result.Error
	}
	return recModel.ToEntity(), nil
}

// FindByUserID retrieves all recommendations for a user, newest first.
func (r *recommendationRepository) FindByUserID(ctx context.Context, userID uuid.UUID, status *entity.RecommendationStatus) ([]*entity.RecommendedGoal, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var recModels []model.RecommendedGoalModel
	result := query.Order("created_at DESC").Find(&recModels)
	if result.Error != nil {
		return nil, result.Error
	}

	recs := make([]*entity.RecommendedGoal, len(recModels))
	for i, rm := range recModels {
		recs[i] = rm.ToEntity()
	}
	return recs, nil
}

// Update saves changes to a recommendation.
func (r *recommendationRepository) Update(ctx context.Context, rec *entity.RecommendedGoal) error {
	result := r.db.WithContext(ctx).Save(model.RecommendedGoalFromEntity(rec))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Accept flips the recommendation to accepted and creates the materialized
// goal in the same transaction, so a crash cannot leave one without the other.
func (r *recommendationRepository) Accept(ctx context.Context, rec *entity.RecommendedGoal, goal *entity.Goal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.GoalFromEntity(goal)).Error; err != nil {
			return err
		}
		return tx.Save(model.RecommendedGoalFromEntity(rec)).Error
	})
}

// DeleteByUserID removes all recommendations owned by a user.
func (r *recommendationRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.RecommendedGoalModel{}, "user_id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
