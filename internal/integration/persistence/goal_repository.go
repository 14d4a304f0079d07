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

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUserID retrieves all goals for a given user, newest first.
func (r *goalRepository) FindByUserID(ctx context.Context, userID uuid.UUID, category *entity.GoalCategory) ([]*entity.Goal, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if category != nil {
		query = query.Where("category = ?", string(*category))
	}

	var goalModels []model.GoalModel
	result := query.Order("created_at DESC").Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// CountByCategory returns the number of goals per category for a user.
func (r *goalRepository) CountByCategory(ctx context.Context, userID uuid.UUID) (map[entity.GoalCategory]int64, error) {
	var rows []struct {
		Category string
		Count    int64
	}
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Select("category, count(*) as count").
		Where("user_id = ?", userID).
		Group("category").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	counts := make(map[entity.GoalCategory]int64, len(rows))
	for _, row := range rows {
		counts[entity.GoalCategory(row.Category)] = row.Count
	}
	return counts, nil
}

// Update updates an existing goal in the database.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a goal and all of its progress entries in one transaction.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ProgressEntryModel{}, "goal_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.GoalModel{}, "id = ?", id).Error
	})
}

// DeleteByUserID removes all goals owned by a user.
func (r *goalRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GoalModel{}, "user_id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
