// Package entity contains the core domain entities.
package entity

import (
	"testing"
	"time"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name     string
		current  GoalStatus
		progress float64
		target   float64
		want     GoalStatus
	}{
		{"no progress stays not started", StatusNotStarted, 0, 10, StatusNotStarted},
		{"partial progress moves to in progress", StatusNotStarted, 3, 10, StatusInProgress},
		{"reaching target completes", StatusInProgress, 10, 10, StatusCompleted},
		{"exceeding target completes", StatusInProgress, 15, 10, StatusCompleted},
		{"completed reverts when progress drops below target", StatusCompleted, 5, 10, StatusInProgress},
		{"completed reverts to not started when progress removed", StatusCompleted, 0, 10, StatusNotStarted},
		{"abandoned is terminal regardless of progress", StatusAbandoned, 100, 10, StatusAbandoned},
		{"abandoned is terminal at zero progress", StatusAbandoned, 0, 10, StatusAbandoned},
		{"zero target never completes", StatusNotStarted, 5, 0, StatusInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextStatus(tt.current, tt.progress, tt.target)
			if got != tt.want {
				t.Errorf("NextStatus(%s, %v, %v) = %s, want %s", tt.current, tt.progress, tt.target, got, tt.want)
			}
		})
	}
}

func TestGoal_ApplyProgress(t *testing.T) {
	newGoal := func() *Goal {
		return &Goal{
			TargetValue: 10,
			Status:      StatusNotStarted,
		}
	}

	t.Run("clamps progress to target", func(t *testing.T) {
		g := newGoal()
		g.ApplyProgress(25)

		if g.CurrentProgress != 10 {
			t.Errorf("expected progress clamped to 10, got %v", g.CurrentProgress)
		}
		if g.Status != StatusCompleted {
			t.Errorf("expected status %s, got %s", StatusCompleted, g.Status)
		}
	})

	t.Run("clamps negative sums to zero", func(t *testing.T) {
		g := newGoal()
		g.ApplyProgress(-3)

		if g.CurrentProgress != 0 {
			t.Errorf("expected progress 0, got %v", g.CurrentProgress)
		}
		if g.Status != StatusNotStarted {
			t.Errorf("expected status %s, got %s", StatusNotStarted, g.Status)
		}
	})

	t.Run("partial progress stays unclamped", func(t *testing.T) {
		g := newGoal()
		g.ApplyProgress(4)

		if g.CurrentProgress != 4 {
			t.Errorf("expected progress 4, got %v", g.CurrentProgress)
		}
		if g.Status != StatusInProgress {
			t.Errorf("expected status %s, got %s", StatusInProgress, g.Status)
		}
	})

	t.Run("abandoned goal keeps status but records progress", func(t *testing.T) {
		g := newGoal()
		g.Status = StatusAbandoned
		g.ApplyProgress(10)

		if g.Status != StatusAbandoned {
			t.Errorf("expected status %s, got %s", StatusAbandoned, g.Status)
		}
	})

	t.Run("updates the timestamp", func(t *testing.T) {
		g := newGoal()
		g.UpdatedAt = time.Time{}
		g.ApplyProgress(4)

		if g.UpdatedAt.IsZero() {
			t.Error("expected UpdatedAt to be set")
		}
	})
}

func TestValidCategory(t *testing.T) {
	valid := []GoalCategory{
		CategoryFitness,
		CategoryNutrition,
		CategoryMentalHealth,
		CategoryProductivity,
		CategorySleep,
		CategoryOther,
	}
	for _, c := range valid {
		if !ValidCategory(c) {
			t.Errorf("expected %s to be valid", c)
		}
	}

	if ValidCategory("finance") {
		t.Error("expected unknown category to be invalid")
	}
	if ValidCategory("") {
		t.Error("expected empty category to be invalid")
	}
}

func TestNormalizeDay(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	in := time.Date(2025, 3, 14, 23, 45, 12, 999, loc)

	got := NormalizeDay(in)

	want := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NormalizeDay(%v) = %v, want %v", in, got, want)
	}

	// Normalizing twice is a no-op.
	if again := NormalizeDay(got); !again.Equal(got) {
		t.Errorf("expected NormalizeDay to be idempotent, got %v", again)
	}
}
