// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/goaltracker/backend/internal/domain/entity"
)

// SaveProfileRequest represents the onboarding questionnaire submission.
// Submitting again replaces the previous answers wholesale.
type SaveProfileRequest struct {
	Goals             []string `json:"goals" binding:"required,min=1"`
	GoalImportance    int      `json:"goal_importance" binding:"required,min=1,max=5"`
	SuccessDefinition string   `json:"success_definition,omitempty"`

	SleepHours      float64 `json:"sleep_hours" binding:"min=0,max=24"`
	SleepQuality    string  `json:"sleep_quality,omitempty" binding:"omitempty,oneof=Poor Fair Good Excellent"`
	ConsistentSleep bool    `json:"consistent_sleep"`

	EatingHabits string `json:"eating_habits,omitempty" binding:"omitempty,oneof=Poor Fair Good Excellent"`
	WaterIntake  int    `json:"water_intake" binding:"min=0"`

	PhysicalActivity string `json:"physical_activity,omitempty" binding:"omitempty,oneof=Never Rarely '2-3 times' '4+ times'"`

	StressLevel         string `json:"stress_level,omitempty" binding:"omitempty,oneof=Low Moderate High 'Very High'"`
	RelaxationFrequency string `json:"relaxation_frequency,omitempty"`
	MindfulnessPractice bool   `json:"mindfulness_practice"`

	ScreenTime        float64 `json:"screen_time" binding:"min=0,max=24"`
	MindlessScrolling bool    `json:"mindless_scrolling"`

	ExistingGoodHabits []string `json:"existing_good_habits,omitempty"`
	HabitsToBreak      []string `json:"habits_to_break,omitempty"`
	Obstacles          []string `json:"obstacles,omitempty"`

	DisciplineLevel      int      `json:"discipline_level" binding:"required,min=1,max=5"`
	PeakProductivityTime string   `json:"peak_productivity_time,omitempty"`
	ReminderPreference   string   `json:"reminder_preference,omitempty"`
	HabitApproach        string   `json:"habit_approach,omitempty"`
	DailyTimeCommitment  string   `json:"daily_time_commitment,omitempty"`
	MotivationFactors    []string `json:"motivation_factors,omitempty"`

	AgeRange   string `json:"age_range,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Occupation string `json:"occupation,omitempty"`
}

// ProfileResponse represents the stored questionnaire in API responses.
type ProfileResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	Goals             []string `json:"goals"`
	GoalImportance    int      `json:"goal_importance"`
	SuccessDefinition string   `json:"success_definition,omitempty"`

	SleepHours      float64 `json:"sleep_hours"`
	SleepQuality    string  `json:"sleep_quality,omitempty"`
	ConsistentSleep bool    `json:"consistent_sleep"`

	EatingHabits string `json:"eating_habits,omitempty"`
	WaterIntake  int    `json:"water_intake"`

	PhysicalActivity string `json:"physical_activity,omitempty"`

	StressLevel         string `json:"stress_level,omitempty"`
	RelaxationFrequency string `json:"relaxation_frequency,omitempty"`
	MindfulnessPractice bool   `json:"mindfulness_practice"`

	ScreenTime        float64 `json:"screen_time"`
	MindlessScrolling bool    `json:"mindless_scrolling"`

	ExistingGoodHabits []string `json:"existing_good_habits,omitempty"`
	HabitsToBreak      []string `json:"habits_to_break,omitempty"`
	Obstacles          []string `json:"obstacles,omitempty"`

	DisciplineLevel      int      `json:"discipline_level"`
	PeakProductivityTime string   `json:"peak_productivity_time,omitempty"`
	ReminderPreference   string   `json:"reminder_preference,omitempty"`
	HabitApproach        string   `json:"habit_approach,omitempty"`
	DailyTimeCommitment  string   `json:"daily_time_commitment,omitempty"`
	MotivationFactors    []string `json:"motivation_factors,omitempty"`

	AgeRange   string `json:"age_range,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Occupation string `json:"occupation,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToProfileResponse converts an OnboardingProfile entity to its DTO.
func ToProfileResponse(p *entity.OnboardingProfile) ProfileResponse {
	return ProfileResponse{
		ID:     p.ID.String(),
		UserID: p.UserID.String(),

		Goals:             p.Goals,
		GoalImportance:    p.GoalImportance,
		SuccessDefinition: p.SuccessDefinition,

		SleepHours:      p.SleepHours,
		SleepQuality:    p.SleepQuality,
		ConsistentSleep: p.ConsistentSleep,

		EatingHabits: p.EatingHabits,
		WaterIntake:  p.WaterIntake,

		PhysicalActivity: p.PhysicalActivity,

		StressLevel:         p.StressLevel,
		RelaxationFrequency: p.RelaxationFrequency,
		MindfulnessPractice: p.MindfulnessPractice,

		ScreenTime:        p.ScreenTime,
		MindlessScrolling: p.MindlessScrolling,

		ExistingGoodHabits: p.ExistingGoodHabits,
		HabitsToBreak:      p.HabitsToBreak,
		Obstacles:          p.Obstacles,

		DisciplineLevel:      p.DisciplineLevel,
		PeakProductivityTime: p.PeakProductivityTime,
		ReminderPreference:   p.ReminderPreference,
		HabitApproach:        p.HabitApproach,
		DailyTimeCommitment:  p.DailyTimeCommitment,
		MotivationFactors:    p.MotivationFactors,

		AgeRange:   p.AgeRange,
		Gender:     p.Gender,
		Occupation: p.Occupation,

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
