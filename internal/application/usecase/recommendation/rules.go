// Package recommendation contains the goal recommendation use cases.
package recommendation

import (
	"fmt"
	"math"
	"strings"

	"github.com/goaltracker/backend/internal/application/adapter"
	"github.com/goaltracker/backend/internal/domain/entity"
)

// recommendationCount is the number of suggestions every generation produces.
const recommendationCount = 3

// RuleBasedRecommendations derives exactly three goal suggestions from the
// questionnaire answers alone. It is the deterministic fallback used whenever
// the AI recommender is unavailable or fails, so it must always succeed.
func RuleBasedRecommendations(profile *entity.OnboardingProfile) []*adapter.RecommendationDraft {
	drafts := make([]*adapter.RecommendationDraft, 0, recommendationCount)

	drafts = append(drafts, fitnessDraft(profile))

	if profile.SleepQuality == "Poor" || profile.SleepHours < 7 || !profile.ConsistentSleep {
		drafts = append(drafts, sleepDraft(profile))
	}

	if profile.EatingHabits == "Poor" || profile.WaterIntake < 8 {
		drafts = append(drafts, nutritionDraft(profile))
	}

	if profile.StressLevel == "High" || profile.StressLevel == "Very High" {
		drafts = append(drafts, stressDraft(profile))
	}

	if profile.ScreenTime > 6 || profile.MindlessScrolling {
		drafts = append(drafts, digitalWellnessDraft(profile))
	}

	// Pad up to three with general-purpose suggestions.
	for len(drafts) < recommendationCount {
		if !hasCategory(drafts, entity.CategoryMentalHealth) {
			drafts = append(drafts, mindfulnessDraft())
		} else {
			drafts = append(drafts, habitBuildingDraft(profile))
		}
	}

	return drafts[:recommendationCount]
}

// fitnessDraft picks an activity suggestion matched to the reported level.
func fitnessDraft(profile *entity.OnboardingProfile) *adapter.RecommendationDraft {
	switch profile.PhysicalActivity {
	case "Never", "Rarely":
		return &adapter.RecommendationDraft{
			Title:       "Start Daily Walking Routine",
			Category:    entity.CategoryFitness,
			Description: "Build a foundation of daily movement with a gentle walking routine",
			Plan: fmt.Sprintf(
				"Start with 15-minute walks during your %s hours, gradually increasing to 30 minutes over 4 weeks",
				strings.ToLower(profile.PeakProductivityTime),
			),
			Reasoning: fmt.Sprintf(
				"Given your current low activity level and %s time commitment, walking is an achievable starting point that fits your schedule.",
				profile.DailyTimeCommitment,
			),
		}
	case "2-3 times":
		return &adapter.RecommendationDraft{
			Title:       "Add Strength Training Sessions",
			Category:    entity.CategoryFitness,
			Description: "Complement your current routine with strength training for balanced fitness",
			Plan:        "Add 2 strength training sessions per week, focusing on major muscle groups with bodyweight or basic equipment",
			Reasoning: fmt.Sprintf(
				"Your current activity level shows commitment, and adding strength training will enhance your overall fitness goals: %s.",
				joinGoals(profile.Goals),
			),
		}
	default:
		return &adapter.RecommendationDraft{
			Title:       "High-Intensity Interval Training",
			Category:    entity.CategoryFitness,
			Description: "Maximize your fitness gains with efficient HIIT workouts",
			Plan:        "Incorporate 20-minute HIIT sessions 3 times per week, alternating with your current routine",
			Reasoning: fmt.Sprintf(
				"With your active lifestyle, HIIT will help you achieve your goals of %s more efficiently within your %s commitment.",
				joinGoals(profile.Goals), profile.DailyTimeCommitment,
			),
		}
	}
}

func sleepDraft(profile *entity.OnboardingProfile) *adapter.RecommendationDraft {
	targetHours := math.Max(7, profile.SleepHours)
	return &adapter.RecommendationDraft{
		Title:       "Optimize Sleep Quality & Schedule",
		Category:    entity.CategorySleep,
		Description: "Establish a consistent sleep routine for better recovery and energy",
		Plan: fmt.Sprintf(
			"Create a bedtime routine 1 hour before your target sleep time, aiming for %g hours of sleep consistently",
			targetHours,
		),
		Reasoning: fmt.Sprintf(
			"Your current sleep pattern (%g hours, %s quality) may be limiting your progress. Better sleep will support your %s goals.",
			profile.SleepHours, profile.SleepQuality, joinGoals(profile.Goals),
		),
	}
}

func nutritionDraft(profile *entity.OnboardingProfile) *adapter.RecommendationDraft {
	return &adapter.RecommendationDraft{
		Title:       "Improve Hydration & Nutrition",
		Category:    entity.CategoryNutrition,
		Description: "Build healthy eating and hydration habits for sustained energy",
		Plan:        "Increase water intake to 8-10 glasses daily and add one extra serving of vegetables to each meal",
		Reasoning: fmt.Sprintf(
			"Your current hydration (%d glasses) and eating habits can be improved to better support your wellness goals and energy levels.",
			profile.WaterIntake,
		),
	}
}

func stressDraft(profile *entity.OnboardingProfile) *adapter.RecommendationDraft {
	return &adapter.RecommendationDraft{
		Title:       "Daily Stress Management Practice",
		Category:    entity.CategoryMentalHealth,
		Description: "Develop effective stress management techniques for better well-being",
		Plan: fmt.Sprintf(
			"Practice 10-15 minutes of deep breathing or meditation daily, preferably during your %s hours",
			strings.ToLower(profile.PeakProductivityTime),
		),
		Reasoning: "Your high stress level needs attention to support your overall wellness goals and prevent burnout from your lifestyle changes.",
	}
}

func digitalWellnessDraft(profile *entity.OnboardingProfile) *adapter.RecommendationDraft {
	return &adapter.RecommendationDraft{
		Title:       "Digital Wellness Boundaries",
		Category:    entity.CategoryProductivity,
		Description: "Create healthy boundaries with technology for better focus and sleep",
		Plan:        "Implement phone-free hours 2 hours before bedtime and use app timers to limit social media to 30 minutes daily",
		Reasoning: fmt.Sprintf(
			"Your current screen time (%g hours) and scrolling habits may interfere with sleep quality and goal achievement.",
			profile.ScreenTime,
		),
	}
}

func mindfulnessDraft() *adapter.RecommendationDraft {
	return &adapter.RecommendationDraft{
		Title:       "Mindfulness Practice",
		Category:    entity.CategoryMentalHealth,
		Description: "Cultivate present-moment awareness and emotional balance",
		Plan:        "Practice 5-10 minutes of mindfulness meditation daily, starting with guided apps",
		Reasoning:   "Mindfulness will support all your other goals by improving focus, reducing reactivity, and enhancing overall well-being.",
	}
}

func habitBuildingDraft(profile *entity.OnboardingProfile) *adapter.RecommendationDraft {
	return &adapter.RecommendationDraft{
		Title:       "Progressive Goal Achievement",
		Category:    entity.CategoryProductivity,
		Description: "Build momentum with small, consistent daily actions",
		Plan:        "Choose one small action from each goal area and do it daily for 21 days to build the habit",
		Reasoning: fmt.Sprintf(
			"Given your preference for '%s', starting small will help you build sustainable momentum toward your goals.",
			profile.HabitApproach,
		),
	}
}

func hasCategory(drafts []*adapter.RecommendationDraft, category entity.GoalCategory) bool {
	for _, d := range drafts {
		if d.Category == category {
			return true
		}
	}
	return false
}

func joinGoals(goals []string) string {
	if len(goals) == 0 {
		return "General wellness"
	}
	return strings.Join(goals, ", ")
}
