// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goaltracker/backend/internal/application/usecase/onboarding"
	domainerror "github.com/goaltracker/backend/internal/domain/error"
	"github.com/goaltracker/backend/internal/integration/entrypoint/dto"
	"github.com/goaltracker/backend/internal/integration/entrypoint/middleware"
)

// OnboardingController handles questionnaire endpoints.
type OnboardingController struct {
	saveUseCase *onboarding.SaveProfileUseCase
	getUseCase  *onboarding.GetProfileUseCase
}

// NewOnboardingController creates a new onboarding controller instance.
func NewOnboardingController(
	saveUseCase *onboarding.SaveProfileUseCase,
	getUseCase *onboarding.GetProfileUseCase,
) *OnboardingController {
	return &OnboardingController{
		saveUseCase: saveUseCase,
		getUseCase:  getUseCase,
	}
}

// Save handles PUT /onboarding requests. A repeated submission replaces the
// previous answers.
func (c *OnboardingController) Save(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SaveProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidProfileField),
		})
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), onboarding.SaveProfileInput{
		UserID: userID,

		Goals:             req.Goals,
		GoalImportance:    req.GoalImportance,
		SuccessDefinition: req.SuccessDefinition,

		SleepHours:      req.SleepHours,
		SleepQuality:    req.SleepQuality,
		ConsistentSleep: req.ConsistentSleep,

		EatingHabits: req.EatingHabits,
		WaterIntake:  req.WaterIntake,

		PhysicalActivity: req.PhysicalActivity,

		StressLevel:         req.StressLevel,
		RelaxationFrequency: req.RelaxationFrequency,
		MindfulnessPractice: req.MindfulnessPractice,

		ScreenTime:        req.ScreenTime,
		MindlessScrolling: req.MindlessScrolling,

		ExistingGoodHabits: req.ExistingGoodHabits,
		HabitsToBreak:      req.HabitsToBreak,
		Obstacles:          req.Obstacles,

		DisciplineLevel:      req.DisciplineLevel,
		PeakProductivityTime: req.PeakProductivityTime,
		ReminderPreference:   req.ReminderPreference,
		HabitApproach:        req.HabitApproach,
		DailyTimeCommitment:  req.DailyTimeCommitment,
		MotivationFactors:    req.MotivationFactors,

		AgeRange:   req.AgeRange,
		Gender:     req.Gender,
		Occupation: req.Occupation,
	})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// Get handles GET /onboarding requests.
func (c *OnboardingController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), onboarding.GetProfileInput{
		UserID: userID,
	})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// handleProfileError maps profile errors to HTTP responses.
func (c *OnboardingController) handleProfileError(ctx *gin.Context, err error) {
	var profileErr *domainerror.ProfileError
	if errors.As(err, &profileErr) {
		status := http.StatusBadRequest
		if profileErr.Code == domainerror.ErrCodeProfileNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: profileErr.Message,
			Code:  string(profileErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
