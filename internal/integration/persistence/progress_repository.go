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
	"github.com/goaltracker/backend/internal/integration/persistence/model"
)

// progressRepository implements the adapter.ProgressRepository interface.
type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new progress repository instance.
func NewProgressRepository(db *gorm.DB) adapter.ProgressRepository {
	return &progressRepository{
		db: db,
	}
}

// Record upserts the entry for its (user, goal, day) key and recomputes the
// goal's cumulative progress, all inside one transaction so concurrent
// submissions for the same goal serialize on the row locks.
func (r *progressRepository) Record(ctx context.Context, goal *entity.Goal, entry *entity.ProgressEntry) (*entity.ProgressEntry, error) {
	var saved model.ProgressEntryModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.ProgressEntryModel
		result := tx.Where("user_id = ? AND goal_id = ? AND date = ?",
			entry.UserID, entry.GoalID, entry.Date).First(&existing)

		switch {
		case result.Error == nil:
			existing.Value = entry.Value
			existing.Notes = entry.Notes
			existing.UpdatedAt = time.Now().UTC()
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			saved = existing
		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			fresh := model.ProgressEntryFromEntity(entry)
			if err := tx.Create(fresh).Error; err != nil {
				return err
			}
			saved = *fresh
		default:
			return result.Error
		}

		sum, err := sumEntries(tx, entry.UserID, entry.GoalID)
		if err != nil {
			return err
		}

		goal.ApplyProgress(sum)
		return tx.Save(model.GoalFromEntity(goal)).Error
	})
	if err != nil {
		return nil, err
	}

	return saved.ToEntity(), nil
}

// ResetDay deletes the entry for the given day and re-aggregates the goal.
func (r *progressRepository) ResetDay(ctx context.Context, goal *entity.Goal, day time.Time) error {
	day = entity.NormalizeDay(day)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.ProgressEntryModel{},
			"user_id = ? AND goal_id = ? AND date = ?", goal.UserID, goal.ID, day)
		if result.Error != nil {
			return result.Error
		}

		sum, err := sumEntries(tx, goal.UserID, goal.ID)
		if err != nil {
			return err
		}

		goal.ApplyProgress(sum)
		return tx.Save(model.GoalFromEntity(goal)).Error
	})
}

// SumByGoal returns the unclamped sum of all entry values for a goal.
func (r *progressRepository) SumByGoal(ctx context.Context, userID, goalID uuid.UUID) (float64, error) {
	return sumEntries(r.db.WithContext(ctx), userID, goalID)
}

// FindByGoal retrieves entries for a goal since the given time, newest first.
func (r *progressRepository) FindByGoal(ctx context.Context, userID, goalID uuid.UUID, since time.Time) ([]*entity.ProgressEntry, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND goal_id = ?", userID, goalID)
	if !since.IsZero() {
		query = query.Where("date >= ?", entity.NormalizeDay(since))
	}

	var entryModels []model.ProgressEntryModel
	result := query.Order("date DESC").Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(entryModels), nil
}

// FindByUserSince retrieves all of a user's entries since the given time.
func (r *progressRepository) FindByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.ProgressEntry, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if !since.IsZero() {
		query = query.Where("date >= ?", entity.NormalizeDay(since))
	}

	var entryModels []model.ProgressEntryModel
	result := query.Order("date DESC").Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(entryModels), nil
}

// DeleteByGoalID removes all entries for a goal.
func (r *progressRepository) DeleteByGoalID(ctx context.Context, goalID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ProgressEntryModel{}, "goal_id = ?", goalID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteByUserID removes all entries owned by a user.
func (r *progressRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ProgressEntryModel{}, "user_id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// sumEntries computes the raw value sum for a goal within the given handle,
// which may be a transaction.
func sumEntries(tx *gorm.DB, userID, goalID uuid.UUID) (float64, error) {
	var sum float64
	result := tx.Model(&model.ProgressEntryModel{}).
		Select("COALESCE(SUM(value), 0)").
		Where("user_id = ? AND goal_id = ?", userID, goalID).
		Scan(&sum)
	if result.Error != nil {
		return 0, result.Error
	}
	return sum, nil
}

// toEntities converts a slice of models to domain entities.
func toEntities(entryModels []model.ProgressEntryModel) []*entity.ProgressEntry {
	entries := make([]*entity.ProgressEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries
}
