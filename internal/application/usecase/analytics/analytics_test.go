// Package analytics contains the read-side aggregation use cases.
package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goaltracker/backend/internal/domain/entity"
)

func entryOn(day time.Time, value float64) *entity.ProgressEntry {
	return &entity.ProgressEntry{
		ID:     uuid.New(),
		UserID: uuid.New(),
		GoalID: uuid.New(),
		Date:   entity.NormalizeDay(day),
		Value:  value,
	}
}

func TestComputeStreaks(t *testing.T) {
	now := time.Date(2025, 6, 30, 15, 0, 0, 0, time.UTC)
	today := entity.NormalizeDay(now)

	t.Run("gap splits runs and current streak ends at today", func(t *testing.T) {
		// Active days 1,2,3 then 5 through 10, where day 10 is today.
		var entries []*entity.ProgressEntry
		for _, offset := range []int{9, 8, 7, 5, 4, 3, 2, 1, 0} {
			entries = append(entries, entryOn(today.AddDate(0, 0, -offset), 1))
		}

		info := ComputeStreaks(entries, now)

		if info.Longest != 6 {
			t.Errorf("expected longest streak 6, got %d", info.Longest)
		}
		if info.Current != 6 {
			t.Errorf("expected current streak 6, got %d", info.Current)
		}
		if info.ActiveDays != 9 {
			t.Errorf("expected 9 active days, got %d", info.ActiveDays)
		}
	})

	t.Run("current streak is zero when today has no entry", func(t *testing.T) {
		entries := []*entity.ProgressEntry{
			entryOn(today.AddDate(0, 0, -1), 1),
			entryOn(today.AddDate(0, 0, -2), 1),
		}

		info := ComputeStreaks(entries, now)

		if info.Current != 0 {
			t.Errorf("expected current streak 0, got %d", info.Current)
		}
		if info.Longest != 2 {
			t.Errorf("expected longest streak 2, got %d", info.Longest)
		}
	})

	t.Run("multiple entries on one day count once", func(t *testing.T) {
		entries := []*entity.ProgressEntry{
			entryOn(today, 1),
			entryOn(today, 2),
			entryOn(today, 3),
		}

		info := ComputeStreaks(entries, now)

		if info.Current != 1 {
			t.Errorf("expected current streak 1, got %d", info.Current)
		}
		if info.ActiveDays != 1 {
			t.Errorf("expected 1 active day, got %d", info.ActiveDays)
		}
	})

	t.Run("entries outside the window are ignored", func(t *testing.T) {
		entries := []*entity.ProgressEntry{
			entryOn(today.AddDate(0, 0, -45), 1),
			entryOn(today.AddDate(0, 0, 1), 1),
		}

		info := ComputeStreaks(entries, now)

		if info.ActiveDays != 0 {
			t.Errorf("expected 0 active days, got %d", info.ActiveDays)
		}
	})

	t.Run("no entries yields empty streaks", func(t *testing.T) {
		info := ComputeStreaks(nil, now)

		if info.Current != 0 || info.Longest != 0 {
			t.Errorf("expected zero streaks, got current=%d longest=%d", info.Current, info.Longest)
		}
	})
}

func TestRollup(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	t.Run("weekly series has eight buckets with zero fill", func(t *testing.T) {
		// June 30 2025 is a Monday, so both same-day entries share the
		// current week's bucket.
		entries := []*entity.ProgressEntry{
			entryOn(now, 2.5),
			entryOn(now, 1.5),
			entryOn(now.AddDate(0, 0, -21), 4),
		}

		points := Rollup(entries, now, GranularityWeekly)

		if len(points) != 8 {
			t.Fatalf("expected 8 weekly buckets, got %d", len(points))
		}

		last := points[len(points)-1]
		if !last.Total.Equal(decimal.NewFromFloat(4)) {
			t.Errorf("expected current week total 4, got %s", last.Total)
		}
		if last.EntryCount != 2 {
			t.Errorf("expected 2 entries in current week, got %d", last.EntryCount)
		}

		zeroed := 0
		for _, p := range points {
			if p.Total.IsZero() {
				zeroed++
			}
		}
		if zeroed != 6 {
			t.Errorf("expected 6 zero buckets, got %d", zeroed)
		}
	})

	t.Run("weekly buckets start on Monday", func(t *testing.T) {
		points := Rollup(nil, now, GranularityWeekly)
		for _, p := range points {
			if p.Date.Weekday() != time.Monday {
				t.Errorf("expected bucket start on Monday, got %s", p.Date.Weekday())
			}
		}
	})

	t.Run("monthly series has six buckets oldest first", func(t *testing.T) {
		entries := []*entity.ProgressEntry{
			entryOn(now, 10),
			entryOn(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), 7),
		}

		points := Rollup(entries, now, GranularityMonthly)

		if len(points) != 6 {
			t.Fatalf("expected 6 monthly buckets, got %d", len(points))
		}
		if got := points[0].Date; got.Month() != time.January {
			t.Errorf("expected oldest bucket in January, got %s", got.Month())
		}
		if got := points[2]; !got.Total.Equal(decimal.NewFromFloat(7)) {
			t.Errorf("expected March total 7, got %s", got.Total)
		}
		if last := points[5]; !last.Total.Equal(decimal.NewFromFloat(10)) {
			t.Errorf("expected June total 10, got %s", last.Total)
		}
	})

	t.Run("labels follow the granularity", func(t *testing.T) {
		weekly := Rollup(nil, now, GranularityWeekly)
		if weekly[len(weekly)-1].Label != "W27 2025" {
			t.Errorf("unexpected weekly label %q", weekly[len(weekly)-1].Label)
		}

		monthly := Rollup(nil, now, GranularityMonthly)
		if monthly[len(monthly)-1].Label != "Jun 2025" {
			t.Errorf("unexpected monthly label %q", monthly[len(monthly)-1].Label)
		}
	})
}

func TestSummarizeGoals(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	t.Run("completion rate rounds to two decimals", func(t *testing.T) {
		goals := []*entity.Goal{
			{Status: entity.StatusCompleted, UpdatedAt: now},
			{Status: entity.StatusInProgress, TargetValue: 10, CurrentProgress: 5},
			{Status: entity.StatusNotStarted},
			{Status: entity.StatusAbandoned},
		}

		overview, achievements := summarizeGoals(goals, now)

		if overview.CompletionRate != 25.00 {
			t.Errorf("expected completion rate 25.00, got %v", overview.CompletionRate)
		}
		if overview.TotalGoals != 4 || overview.Completed != 1 || overview.InProgress != 1 ||
			overview.NotStarted != 1 || overview.Abandoned != 1 {
			t.Errorf("unexpected counts: %+v", overview)
		}
		if overview.AvgProgress != 50.00 {
			t.Errorf("expected avg progress 50.00, got %v", overview.AvgProgress)
		}
		if len(achievements) != 1 {
			t.Errorf("expected 1 recent achievement, got %d", len(achievements))
		}
	})

	t.Run("repeating rate rounds instead of truncating", func(t *testing.T) {
		goals := []*entity.Goal{
			{Status: entity.StatusCompleted, UpdatedAt: now},
			{Status: entity.StatusNotStarted},
			{Status: entity.StatusNotStarted},
		}

		overview, _ := summarizeGoals(goals, now)

		if overview.CompletionRate != 33.33 {
			t.Errorf("expected completion rate 33.33, got %v", overview.CompletionRate)
		}
	})

	t.Run("stale completions are not recent achievements", func(t *testing.T) {
		goals := []*entity.Goal{
			{Status: entity.StatusCompleted, UpdatedAt: now.AddDate(0, 0, -45)},
		}

		_, achievements := summarizeGoals(goals, now)

		if len(achievements) != 0 {
			t.Errorf("expected no recent achievements, got %d", len(achievements))
		}
	})

	t.Run("no goals yields zero rates", func(t *testing.T) {
		overview, _ := summarizeGoals(nil, now)

		if overview.CompletionRate != 0 || overview.AvgProgress != 0 {
			t.Errorf("expected zero rates, got %+v", overview)
		}
	})
}
