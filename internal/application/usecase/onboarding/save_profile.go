// Package onboarding contains the questionnaire use cases.
package onboarding

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/application/adapter"
	"github.com/goaltracker/backend/internal/domain/entity"
	domainerror "github.com/goaltracker/backend/internal/domain/error"
)

// SaveProfileInput represents the full questionnaire submission.
type SaveProfileInput struct {
	UserID uuid.UUID

	Goals             []string
	GoalImportance    int
	SuccessDefinition string

	SleepHours      float64
	SleepQuality    string
	ConsistentSleep bool

	EatingHabits string
	WaterIntake  int

	PhysicalActivity string

	StressLevel         string
	RelaxationFrequency string
	MindfulnessPractice bool

	ScreenTime        float64
	MindlessScrolling bool

	ExistingGoodHabits []string
	HabitsToBreak      []string
	Obstacles          []string

	DisciplineLevel      int
	PeakProductivityTime string
	ReminderPreference   string
	HabitApproach        string
	DailyTimeCommitment  string
	MotivationFactors    []string

	AgeRange   string
	Gender     string
	Occupation string
}

// SaveProfileOutput represents the output of saving the questionnaire.
type SaveProfileOutput struct {
	Profile *entity.OnboardingProfile
}

// SaveProfileUseCase upserts the onboarding questionnaire answers.
type SaveProfileUseCase struct {
	profileRepo adapter.ProfileRepository
	userRepo    adapter.UserRepository
}

// NewSaveProfileUseCase creates a new SaveProfileUseCase instance.
func NewSaveProfileUseCase(profileRepo adapter.ProfileRepository, userRepo adapter.UserRepository) *SaveProfileUseCase {
	return &SaveProfileUseCase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// Execute validates and stores the answers, replacing any previous submission,
// and marks the user as onboarded.
func (uc *SaveProfileUseCase) Execute(ctx context.Context, input SaveProfileInput) (*SaveProfileOutput, error) {
	if err := validateAnswers(input); err != nil {
		return nil, err
	}

	profile := entity.NewOnboardingProfile(input.UserID)
	profile.Goals = input.Goals
	profile.GoalImportance = input.GoalImportance
	profile.SuccessDefinition = input.SuccessDefinition
	profile.SleepHours = input.SleepHours
	profile.SleepQuality = input.SleepQuality
	profile.ConsistentSleep = input.ConsistentSleep
	profile.EatingHabits = input.EatingHabits
	profile.WaterIntake = input.WaterIntake
	profile.PhysicalActivity = input.PhysicalActivity
	profile.StressLevel = input.StressLevel
	profile.RelaxationFrequency = input.RelaxationFrequency
	profile.MindfulnessPractice = input.MindfulnessPractice
	profile.ScreenTime = input.ScreenTime
	profile.MindlessScrolling = input.MindlessScrolling
	profile.ExistingGoodHabits = input.ExistingGoodHabits
	profile.HabitsToBreak = input.HabitsToBreak
	profile.Obstacles = input.Obstacles
	profile.DisciplineLevel = input.DisciplineLevel
	profile.PeakProductivityTime = input.PeakProductivityTime
	profile.ReminderPreference = input.ReminderPreference
	profile.HabitApproach = input.HabitApproach
	profile.DailyTimeCommitment = input.DailyTimeCommitment
	profile.MotivationFactors = input.MotivationFactors
	profile.AgeRange = input.AgeRange
	profile.Gender = input.Gender
	profile.Occupation = input.Occupation

	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save onboarding profile: %w", err)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !user.Onboarded {
		user.Onboarded = true
		user.UpdatedAt = time.Now().UTC()
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to mark user as onboarded: %w", err)
		}
	}

	return &SaveProfileOutput{
		Profile: profile,
	}, nil
}

// validateAnswers rejects out-of-range survey values.
func validateAnswers(input SaveProfileInput) error {
	checks := []struct {
		ok      bool
		message string
	}{
		{input.GoalImportance >= 1 && input.GoalImportance <= 5, "goal importance must be between 1 and 5"},
		{input.DisciplineLevel >= 1 && input.DisciplineLevel <= 5, "discipline level must be between 1 and 5"},
		{input.SleepHours >= 0 && input.SleepHours <= 24, "sleep hours must be between 0 and 24"},
		{input.WaterIntake >= 0, "water intake must not be negative"},
		{input.ScreenTime >= 0 && input.ScreenTime <= 24, "screen time must be between 0 and 24"},
		{len(input.Goals) > 0, "at least one goal is required"},
	}

	for _, c := range checks {
		if !c.ok {
			return domainerror.NewProfileError(
				domainerror.ErrCodeInvalidProfileField,
				c.message,
				domainerror.ErrInvalidProfileField,
			)
		}
	}
	return nil
}
