// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/application/usecase/workoutlog"
	domainerror "github.com/goaltracker/backend/internal/domain/error"
	"github.com/goaltracker/backend/internal/integration/entrypoint/dto"
	"github.com/goaltracker/backend/internal/integration/entrypoint/middleware"
)

// WorkoutLogController handles workout log endpoints.
type WorkoutLogController struct {
	logUseCase  *workoutlog.LogWorkoutUseCase
	listUseCase *workoutlog.ListWorkoutsUseCase
}

// NewWorkoutLogController creates a new workout log controller instance.
func NewWorkoutLogController(
	logUseCase *workoutlog.LogWorkoutUseCase,
	listUseCase *workoutlog.ListWorkoutsUseCase,
) *WorkoutLogController {
	return &WorkoutLogController{
		logUseCase:  logUseCase,
		listUseCase: listUseCase,
	}
}

// Create handles POST /workout-logs requests.
func (c *WorkoutLogController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.LogWorkoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := workoutlog.LogWorkoutInput{
		UserID:          userID,
		Activity:        req.Activity,
		DurationMinutes: req.DurationMinutes,
		Calories:        req.Calories,
		Notes:           req.Notes,
	}

	if req.GoalID != "" {
		goalID, err := uuid.Parse(req.GoalID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid goal ID format",
			})
			return
		}
		input.GoalID = &goalID
	}

	if req.LoggedAt != "" {
		loggedAt, err := time.Parse("2006-01-02", req.LoggedAt)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid logged_at date format, expected YYYY-MM-DD",
			})
			return
		}
		input.LoggedAt = loggedAt
	}

	output, err := c.logUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWorkoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToWorkoutLogResponse(output.Log))
}

// List handles GET /workout-logs requests. An optional ?since= query
// parameter (YYYY-MM-DD) limits the history window.
func (c *WorkoutLogController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := workoutlog.ListWorkoutsInput{
		UserID: userID,
	}

	if raw := ctx.Query("since"); raw != "" {
		since, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid since date format, expected YYYY-MM-DD",
			})
			return
		}
		input.Since = since
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWorkoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWorkoutLogListResponse(output.Logs, output.TotalMinutes, output.TotalCalories))
}

// handleWorkoutError maps workout errors to HTTP responses. Goal lookups can
// surface goal errors when a log references a goal the caller does not own.
func (c *WorkoutLogController) handleWorkoutError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		status := http.StatusInternalServerError
		switch goalErr.Code {
		case domainerror.ErrCodeGoalNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeMissingGoalFields, domainerror.ErrCodeInvalidTargetValue:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	var progressErr *domainerror.ProgressError
	if errors.As(err, &progressErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: progressErr.Message,
			Code:  string(progressErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
