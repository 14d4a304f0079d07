// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/application/usecase/progress"
	domainerror "github.com/goaltracker/backend/internal/domain/error"
	"github.com/goaltracker/backend/internal/integration/entrypoint/dto"
	"github.com/goaltracker/backend/internal/integration/entrypoint/middleware"
)

// ProgressController handles progress endpoints nested under a goal.
type ProgressController struct {
	recordUseCase *progress.RecordProgressUseCase
	listUseCase   *progress.ListProgressUseCase
	resetUseCase  *progress.ResetTodayUseCase
}

// NewProgressController creates a new progress controller instance.
func NewProgressController(
	recordUseCase *progress.RecordProgressUseCase,
	listUseCase *progress.ListProgressUseCase,
	resetUseCase *progress.ResetTodayUseCase,
) *ProgressController {
	return &ProgressController{
		recordUseCase: recordUseCase,
		listUseCase:   listUseCase,
		resetUseCase:  resetUseCase,
	}
}

// Record handles POST /goals/:id/progress requests.
func (c *ProgressController) Record(ctx *gin.Context) {
	userID, goalID, ok := c.resolveGoal(ctx)
	if !ok {
		return
	}

	var req dto.RecordProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidProgressValue),
		})
		return
	}

	input := progress.RecordProgressInput{
		UserID: userID,
		GoalID: goalID,
		Value:  req.Value,
		Notes:  req.Notes,
	}

	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidProgressDate),
			})
			return
		}
		input.Date = date
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProgressError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RecordProgressResponse{
		Entry: dto.ToProgressEntryResponse(output.Entry),
		Goal:  dto.ToGoalResponse(output.Goal),
	})
}

// List handles GET /goals/:id/progress requests. An optional ?since= query
// parameter (YYYY-MM-DD) limits the history window.
func (c *ProgressController) List(ctx *gin.Context) {
	userID, goalID, ok := c.resolveGoal(ctx)
	if !ok {
		return
	}

	input := progress.ListProgressInput{
		UserID: userID,
		GoalID: goalID,
	}

	if raw := ctx.Query("since"); raw != "" {
		since, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid since date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidProgressDate),
			})
			return
		}
		input.Since = since
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProgressError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProgressListResponse(output.Entries))
}

// ResetToday handles POST /goals/:id/progress/reset requests.
func (c *ProgressController) ResetToday(ctx *gin.Context) {
	userID, goalID, ok := c.resolveGoal(ctx)
	if !ok {
		return
	}

	output, err := c.resetUseCase.Execute(ctx.Request.Context(), progress.ResetTodayInput{
		UserID: userID,
		GoalID: goalID,
	})
	if err != nil {
		c.handleProgressError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// resolveGoal extracts the authenticated user and the goal ID from the
// request, writing the error response itself when either is missing.
func (c *ProgressController) resolveGoal(ctx *gin.Context) (userID, goalID uuid.UUID, ok bool) {
	userID, found := middleware.GetUserIDFromContext(ctx)
	if !found {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, uuid.Nil, false
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return uuid.Nil, uuid.Nil, false
	}

	return userID, goalID, true
}

// handleProgressError maps progress and goal errors to HTTP responses.
func (c *ProgressController) handleProgressError(ctx *gin.Context, err error) {
	var progressErr *domainerror.ProgressError
	if errors.As(err, &progressErr) {
		status := http.StatusBadRequest
		if progressErr.Code == domainerror.ErrCodeProgressNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: progressErr.Message,
			Code:  string(progressErr.Code),
		})
		return
	}

	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		status := http.StatusInternalServerError
		switch goalErr.Code {
		case domainerror.ErrCodeGoalNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeGoalAbandoned:
			status = http.StatusConflict
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
