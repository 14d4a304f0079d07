// Package analytics contains the read-side aggregation use cases.
package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/application/adapter"
	"github.com/goaltracker/backend/internal/domain/entity"
)

// recentAchievementWindow bounds how old a completion may be to count as recent.
const recentAchievementWindow = 30 * 24 * time.Hour

// GetOverviewInput represents the input for the analytics overview.
type GetOverviewInput struct {
	UserID uuid.UUID
}

// Overview holds the goal count statistics for the dashboard header.
type Overview struct {
	TotalGoals     int     `json:"total_goals"`
	Completed      int     `json:"completed"`
	InProgress     int     `json:"in_progress"`
	NotStarted     int     `json:"not_started"`
	Abandoned      int     `json:"abandoned"`
	CompletionRate float64 `json:"completion_rate"`
	AvgProgress    float64 `json:"avg_progress"`
}

// GetOverviewOutput represents the full analytics payload.
type GetOverviewOutput struct {
	Overview           Overview       `json:"overview"`
	WeeklyChart        []ChartPoint   `json:"weekly_chart"`
	MonthlyChart       []ChartPoint   `json:"monthly_chart"`
	Streaks            StreakInfo     `json:"streaks"`
	RecentAchievements []*entity.Goal `json:"recent_achievements"`
}

// GetOverviewUseCase computes the dashboard analytics for a user.
type GetOverviewUseCase struct {
	goalRepo     adapter.GoalRepository
	progressRepo adapter.ProgressRepository
	now          func() time.Time
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(goalRepo adapter.GoalRepository, progressRepo adapter.ProgressRepository) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		goalRepo:     goalRepo,
		progressRepo: progressRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Execute aggregates goal counts, rollup charts and streaks in one pass over
// the user's goals and their trailing six months of progress entries.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	now := uc.now()

	// Six calendar months back covers the widest chart window.
	since := monthStart(now).AddDate(0, -(monthlyBucketCount - 1), 0)
	entries, err := uc.progressRepo.FindByUserSince(ctx, input.UserID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress entries: %w", err)
	}

	overview, achievements := summarizeGoals(goals, now)

	return &GetOverviewOutput{
		Overview:           overview,
		WeeklyChart:        Rollup(entries, now, GranularityWeekly),
		MonthlyChart:       Rollup(entries, now, GranularityMonthly),
		Streaks:            ComputeStreaks(entries, now),
		RecentAchievements: achievements,
	}, nil
}

// summarizeGoals derives the count statistics and the recently completed goals.
func summarizeGoals(goals []*entity.Goal, now time.Time) (Overview, []*entity.Goal) {
	var o Overview
	o.TotalGoals = len(goals)

	var progressSum float64
	achievements := make([]*entity.Goal, 0)

	for _, g := range goals {
		switch g.Status {
		case entity.StatusCompleted:
			o.Completed++
			if now.Sub(g.UpdatedAt) <= recentAchievementWindow {
				achievements = append(achievements, g)
			}
		case entity.StatusInProgress:
			o.InProgress++
			if g.TargetValue > 0 {
				progressSum += g.CurrentProgress / g.TargetValue * 100
			}
		case entity.StatusAbandoned:
			o.Abandoned++
		default:
			o.NotStarted++
		}
	}

	if o.TotalGoals > 0 {
		o.CompletionRate = roundTwo(float64(o.Completed) / float64(o.TotalGoals) * 100)
	}
	if o.InProgress > 0 {
		o.AvgProgress = roundTwo(progressSum / float64(o.InProgress))
	}

	return o, achievements
}

// roundTwo rounds to two decimal places.
func roundTwo(v float64) float64 {
	return math.Round(v*100) / 100
}
