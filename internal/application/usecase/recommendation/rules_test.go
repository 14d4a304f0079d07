// Package recommendation contains the goal recommendation use cases.
package recommendation

import (
	"strings"
	"testing"

	"github.com/goaltracker/backend/internal/domain/entity"
)

// healthyProfile triggers no threshold rules, so the output relies entirely
// on the filler suggestions.
func healthyProfile() *entity.OnboardingProfile {
	return &entity.OnboardingProfile{
		Goals:                []string{"Stay fit"},
		SleepHours:           8,
		SleepQuality:         "Good",
		ConsistentSleep:      true,
		EatingHabits:         "Good",
		WaterIntake:          10,
		PhysicalActivity:     "4+ times",
		StressLevel:          "Low",
		ScreenTime:           2,
		MindlessScrolling:    false,
		PeakProductivityTime: "Morning",
		HabitApproach:        "Start small",
		DailyTimeCommitment:  "30 minutes",
	}
}

func TestRuleBasedRecommendations_Count(t *testing.T) {
	tests := []struct {
		name    string
		profile *entity.OnboardingProfile
	}{
		{"healthy profile pads with fillers", healthyProfile()},
		{"empty profile", &entity.OnboardingProfile{}},
		{
			"profile triggering every rule", &entity.OnboardingProfile{
				PhysicalActivity:  "Never",
				SleepQuality:      "Poor",
				SleepHours:        5,
				EatingHabits:      "Poor",
				WaterIntake:       2,
				StressLevel:       "Very High",
				ScreenTime:        10,
				MindlessScrolling: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drafts := RuleBasedRecommendations(tt.profile)

			if len(drafts) != 3 {
				t.Fatalf("expected exactly 3 recommendations, got %d", len(drafts))
			}
			for i, d := range drafts {
				if d.Title == "" {
					t.Errorf("recommendation %d has empty title", i)
				}
				if !entity.ValidCategory(d.Category) {
					t.Errorf("recommendation %d has invalid category %q", i, d.Category)
				}
			}
		})
	}
}

func TestRuleBasedRecommendations_FitnessRule(t *testing.T) {
	tests := []struct {
		activity  string
		wantTitle string
	}{
		{"Never", "Start Daily Walking Routine"},
		{"Rarely", "Start Daily Walking Routine"},
		{"2-3 times", "Add Strength Training Sessions"},
		{"4+ times", "High-Intensity Interval Training"},
	}

	for _, tt := range tests {
		t.Run(tt.activity, func(t *testing.T) {
			profile := healthyProfile()
			profile.PhysicalActivity = tt.activity

			drafts := RuleBasedRecommendations(profile)

			if drafts[0].Title != tt.wantTitle {
				t.Errorf("expected %q, got %q", tt.wantTitle, drafts[0].Title)
			}
			if drafts[0].Category != entity.CategoryFitness {
				t.Errorf("expected fitness category, got %q", drafts[0].Category)
			}
		})
	}
}

func TestRuleBasedRecommendations_SleepRule(t *testing.T) {
	triggers := []func(p *entity.OnboardingProfile){
		func(p *entity.OnboardingProfile) { p.SleepQuality = "Poor" },
		func(p *entity.OnboardingProfile) { p.SleepHours = 6 },
		func(p *entity.OnboardingProfile) { p.ConsistentSleep = false },
	}
	names := []string{"poor quality", "short sleep", "inconsistent sleep"}

	for i, trigger := range triggers {
		t.Run(names[i], func(t *testing.T) {
			profile := healthyProfile()
			trigger(profile)

			drafts := RuleBasedRecommendations(profile)

			found := false
			for _, d := range drafts {
				if d.Category == entity.CategorySleep {
					found = true
				}
			}
			if !found {
				t.Error("expected a sleep recommendation")
			}
		})
	}

	t.Run("good sleep yields no sleep item", func(t *testing.T) {
		drafts := RuleBasedRecommendations(healthyProfile())
		for _, d := range drafts {
			if d.Category == entity.CategorySleep {
				t.Error("did not expect a sleep recommendation")
			}
		}
	})
}

func TestRuleBasedRecommendations_FillerOrder(t *testing.T) {
	// Only the fitness rule fires, so two fillers are needed. Mindfulness
	// comes first because no mental health item exists yet, then the
	// habit-building filler.
	drafts := RuleBasedRecommendations(healthyProfile())

	if drafts[1].Title != "Mindfulness Practice" {
		t.Errorf("expected mindfulness filler second, got %q", drafts[1].Title)
	}
	if drafts[2].Title != "Progressive Goal Achievement" {
		t.Errorf("expected habit-building filler third, got %q", drafts[2].Title)
	}
	if !strings.Contains(drafts[2].Reasoning, "Start small") {
		t.Errorf("expected habit approach in reasoning, got %q", drafts[2].Reasoning)
	}
}

func TestRuleBasedRecommendations_TruncatesToThree(t *testing.T) {
	// Every rule fires: fitness, sleep, nutrition, stress, digital wellness.
	profile := &entity.OnboardingProfile{
		PhysicalActivity:  "Never",
		SleepQuality:      "Poor",
		SleepHours:        5,
		EatingHabits:      "Poor",
		WaterIntake:       2,
		StressLevel:       "High",
		ScreenTime:        9,
		MindlessScrolling: true,
	}

	drafts := RuleBasedRecommendations(profile)

	if len(drafts) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(drafts))
	}

	// Rule order is deterministic: fitness, then sleep, then nutrition.
	wantCategories := []entity.GoalCategory{
		entity.CategoryFitness,
		entity.CategorySleep,
		entity.CategoryNutrition,
	}
	for i, want := range wantCategories {
		if drafts[i].Category != want {
			t.Errorf("draft %d: expected category %q, got %q", i, want, drafts[i].Category)
		}
	}
}
