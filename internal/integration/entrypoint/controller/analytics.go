// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goaltracker/backend/internal/application/usecase/analytics"
	domainerror "github.com/goaltracker/backend/internal/domain/error"
	"github.com/goaltracker/backend/internal/integration/entrypoint/dto"
	"github.com/goaltracker/backend/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles the analytics dashboard endpoint.
type AnalyticsController struct {
	overviewUseCase *analytics.GetOverviewUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(overviewUseCase *analytics.GetOverviewUseCase) *AnalyticsController {
	return &AnalyticsController{
		overviewUseCase: overviewUseCase,
	}
}

// Overview handles GET /analytics requests.
func (c *AnalyticsController) Overview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), analytics.GetOverviewInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute analytics",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalyticsResponse(output))
}
