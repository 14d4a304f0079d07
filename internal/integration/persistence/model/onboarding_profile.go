// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/goaltracker/backend/internal/domain/entity"
)

// OnboardingProfileModel represents the onboarding_profiles table. One row
// per user holds every questionnaire answer.
type OnboardingProfileModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	Goals             pq.StringArray `gorm:"type:text[]"`
	GoalImportance    int            `gorm:"not null;default:3"`
	SuccessDefinition string         `gorm:"type:text"`

	SleepHours      float64 `gorm:"type:decimal(4,1);not null;default:0"`
	SleepQuality    string  `gorm:"type:varchar(20)"`
	ConsistentSleep bool    `gorm:"not null;default:false"`

	EatingHabits string `gorm:"type:varchar(20)"`
	WaterIntake  int    `gorm:"not null;default:0"`

	PhysicalActivity string `gorm:"type:varchar(20)"`

	StressLevel         string `gorm:"type:varchar(20)"`
	RelaxationFrequency string `gorm:"type:varchar(50)"`
	MindfulnessPractice bool   `gorm:"not null;default:false"`

	ScreenTime        float64 `gorm:"type:decimal(4,1);not null;default:0"`
	MindlessScrolling bool    `gorm:"not null;default:false"`

	ExistingGoodHabits pq.StringArray `gorm:"type:text[]"`
	HabitsToBreak      pq.StringArray `gorm:"type:text[]"`
	Obstacles          pq.StringArray `gorm:"type:text[]"`

	DisciplineLevel      int            `gorm:"not null;default:3"`
	PeakProductivityTime string         `gorm:"type:varchar(50)"`
	ReminderPreference   string         `gorm:"type:varchar(50)"`
	HabitApproach        string         `gorm:"type:varchar(100)"`
	DailyTimeCommitment  string         `gorm:"type:varchar(50)"`
	MotivationFactors    pq.StringArray `gorm:"type:text[]"`

	AgeRange   string `gorm:"type:varchar(20)"`
	Gender     string `gorm:"type:varchar(30)"`
	Occupation string `gorm:"type:varchar(100)"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the OnboardingProfileModel.
func (OnboardingProfileModel) TableName() string {
	return "onboarding_profiles"
}

// ToEntity converts an OnboardingProfileModel to a domain entity.
func (m *OnboardingProfileModel) ToEntity() *entity.OnboardingProfile {
	return &entity.OnboardingProfile{
		ID:                   m.ID,
		UserID:               m.UserID,
		Goals:                []string(m.Goals),
		GoalImportance:       m.GoalImportance,
		SuccessDefinition:    m.SuccessDefinition,
		SleepHours:           m.SleepHours,
		SleepQuality:         m.SleepQuality,
		ConsistentSleep:      m.ConsistentSleep,
		EatingHabits:         m.EatingHabits,
		WaterIntake:          m.WaterIntake,
		PhysicalActivity:     m.PhysicalActivity,
		StressLevel:          m.StressLevel,
		RelaxationFrequency:  m.RelaxationFrequency,
		MindfulnessPractice:  m.MindfulnessPractice,
		ScreenTime:           m.ScreenTime,
		MindlessScrolling:    m.MindlessScrolling,
		ExistingGoodHabits:   []string(m.ExistingGoodHabits),
		HabitsToBreak:        []string(m.HabitsToBreak),
		Obstacles:            []string(m.Obstacles),
		DisciplineLevel:      m.DisciplineLevel,
		PeakProductivityTime: m.PeakProductivityTime,
		ReminderPreference:   m.ReminderPreference,
		HabitApproach:        m.HabitApproach,
		DailyTimeCommitment:  m.DailyTimeCommitment,
		MotivationFactors:    []string(m.MotivationFactors),
		AgeRange:             m.AgeRange,
		Gender:               m.Gender,
		Occupation:           m.Occupation,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// OnboardingProfileFromEntity creates an OnboardingProfileModel from a domain entity.
func OnboardingProfileFromEntity(p *entity.OnboardingProfile) *OnboardingProfileModel {
	return &OnboardingProfileModel{
		ID:                   p.ID,
		UserID:               p.UserID,
		Goals:                pq.StringArray(p.Goals),
		GoalImportance:       p.GoalImportance,
		SuccessDefinition:    p.SuccessDefinition,
		SleepHours:           p.SleepHours,
		SleepQuality:         p.SleepQuality,
		ConsistentSleep:      p.ConsistentSleep,
		EatingHabits:         p.EatingHabits,
		WaterIntake:          p.WaterIntake,
		PhysicalActivity:     p.PhysicalActivity,
		StressLevel:          p.StressLevel,
		RelaxationFrequency:  p.RelaxationFrequency,
		MindfulnessPractice:  p.MindfulnessPractice,
		ScreenTime:           p.ScreenTime,
		MindlessScrolling:    p.MindlessScrolling,
		ExistingGoodHabits:   pq.StringArray(p.ExistingGoodHabits),
		HabitsToBreak:        pq.StringArray(p.HabitsToBreak),
		Obstacles:            pq.StringArray(p.Obstacles),
		DisciplineLevel:      p.DisciplineLevel,
		PeakProductivityTime: p.PeakProductivityTime,
		ReminderPreference:   p.ReminderPreference,
		HabitApproach:        p.HabitApproach,
		DailyTimeCommitment:  p.DailyTimeCommitment,
		MotivationFactors:    pq.StringArray(p.MotivationFactors),
		AgeRange:             p.AgeRange,
		Gender:               p.Gender,
		Occupation:           p.Occupation,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}
