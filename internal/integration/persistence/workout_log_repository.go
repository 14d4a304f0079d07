// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/goaltracker/backend/internal/application/adapter"
	"github.com/goaltracker/backend/internal/domain/entity"
	"github.com/goaltracker/backend/internal/integration/persistence/model"
)

// workoutLogRepository implements the adapter.WorkoutLogRepository interface.
type workoutLogRepository struct {
	db *gorm.DB
}

// NewWorkoutLogRepository creates a new workout log repository instance.
func NewWorkoutLogRepository(db *gorm.DB) adapter.WorkoutLogRepository {
	return &workoutLogRepository{
		db: db,
	}
}

// Create appends a new workout log entry.
func (r *workoutLogRepository) Create(ctx context.Context, log *entity.WorkoutLog) error {
	result := r.db.WithContext(ctx).Create(model.WorkoutLogFromEntity(log))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUserSince retrieves a user's logs since the given time, newest first.
func (r *workoutLogRepository) FindByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.WorkoutLog, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if !since.IsZero() {
		query = query.Where("logged_at >= ?", entity.NormalizeDay(since))
	}

	var logModels []model.WorkoutLogModel
	result := query.Order("logged_at DESC, created_at DESC").Find(&logModels)
	if result.Error != nil {
		return nil, result.Error
	}

	logs := make([]*entity.WorkoutLog, len(logModels))
	for i, lm := range logModels {
		logs[i] = lm.ToEntity()
	}
	return logs, nil
}

// DeleteByUserID removes all logs owned by a user.
func (r *workoutLogRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.WorkoutLogModel{}, "user_id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
