// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OnboardingProfile holds the questionnaire answers collected at signup. It is
// the single authoritative record of survey data, upserted per user, and is
// the input to the recommendation engine.
type OnboardingProfile struct {
	ID     uuid.UUID
	UserID uuid.UUID

	// Goals and motivation.
	Goals             []string
	GoalImportance    int // 1-5
	SuccessDefinition string

	// Sleep.
	SleepHours      float64
	SleepQuality    string // Poor, Fair, Good, Excellent
	ConsistentSleep bool

	// Nutrition.
	EatingHabits string // Poor, Fair, Good, Excellent
	WaterIntake  int    // glasses per day

	// Activity.
	PhysicalActivity string // Never, Rarely, 2-3 times, 4+ times

	// Stress and mindfulness.
	StressLevel         string // Low, Moderate, High, Very High
	RelaxationFrequency string
	MindfulnessPractice bool

	// Digital habits.
	ScreenTime        float64 // hours per day
	MindlessScrolling bool

	// Habits and obstacles.
	ExistingGoodHabits []string
	HabitsToBreak      []string
	Obstacles          []string

	// Preferences.
	DisciplineLevel      int // 1-5
	PeakProductivityTime string
	ReminderPreference   string
	HabitApproach        string
	DailyTimeCommitment  string
	MotivationFactors    []string

	// Demographics, all optional.
	AgeRange   string
	Gender     string
	Occupation string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewOnboardingProfile creates an empty profile for the given user.
func NewOnboardingProfile(userID uuid.UUID) *OnboardingProfile {
	now := time.Now().UTC()
	return &OnboardingProfile{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
