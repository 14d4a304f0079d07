// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/application/usecase/recommendation"
	"github.com/goaltracker/backend/internal/domain/entity"
	domainerror "github.com/goaltracker/backend/internal/domain/error"
	"github.com/goaltracker/backend/internal/integration/entrypoint/dto"
	"github.com/goaltracker/backend/internal/integration/entrypoint/middleware"
)

// RecommendationController handles recommendation endpoints.
type RecommendationController struct {
	generateUseCase *recommendation.GenerateUseCase
	listUseCase     *recommendation.ListUseCase
	acceptUseCase   *recommendation.AcceptUseCase
	declineUseCase  *recommendation.DeclineUseCase
}

// NewRecommendationController creates a new recommendation controller instance.
func NewRecommendationController(
	generateUseCase *recommendation.GenerateUseCase,
	listUseCase *recommendation.ListUseCase,
	acceptUseCase *recommendation.AcceptUseCase,
	declineUseCase *recommendation.DeclineUseCase,
) *RecommendationController {
	return &RecommendationController{
		generateUseCase: generateUseCase,
		listUseCase:     listUseCase,
		acceptUseCase:   acceptUseCase,
		declineUseCase:  declineUseCase,
	}
}

// Generate handles POST /recommendations/generate requests.
func (c *RecommendationController) Generate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), recommendation.GenerateInput{
		UserID: userID,
	})
	if err != nil {
		c.handleRecommendationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecommendationListResponse(output.Recommendations, output.Source))
}

// List handles GET /recommendations requests. An optional ?status= query
// parameter filters by lifecycle state.
func (c *RecommendationController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := recommendation.ListInput{
		UserID: userID,
	}

	if raw := ctx.Query("status"); raw != "" {
		status := entity.RecommendationStatus(raw)
		input.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecommendationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecommendationListResponse(output.Recommendations, ""))
}

// Accept handles POST /recommendations/:id/accept requests.
func (c *RecommendationController) Accept(ctx *gin.Context) {
	userID, recommendationID, ok := c.resolveRecommendation(ctx)
	if !ok {
		return
	}

	output, err := c.acceptUseCase.Execute(ctx.Request.Context(), recommendation.AcceptInput{
		UserID:           userID,
		RecommendationID: recommendationID,
	})
	if err != nil {
		c.handleRecommendationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AcceptRecommendationResponse{
		Recommendation: dto.ToRecommendationResponse(output.Recommendation),
		Goal:           dto.ToGoalResponse(output.Goal),
	})
}

// Decline handles POST /recommendations/:id/decline requests.
func (c *RecommendationController) Decline(ctx *gin.Context) {
	userID, recommendationID, ok := c.resolveRecommendation(ctx)
	if !ok {
		return
	}

	output, err := c.declineUseCase.Execute(ctx.Request.Context(), recommendation.DeclineInput{
		UserID:           userID,
		RecommendationID: recommendationID,
	})
	if err != nil {
		c.handleRecommendationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecommendationResponse(output.Recommendation))
}

// resolveRecommendation extracts the authenticated user and the
// recommendation ID, writing the error response itself on failure.
func (c *RecommendationController) resolveRecommendation(ctx *gin.Context) (userID, recommendationID uuid.UUID, ok bool) {
	userID, found := middleware.GetUserIDFromContext(ctx)
	if !found {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, uuid.Nil, false
	}

	recommendationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recommendation ID format",
		})
		return uuid.Nil, uuid.Nil, false
	}

	return userID, recommendationID, true
}

// handleRecommendationError maps recommendation errors to HTTP responses.
func (c *RecommendationController) handleRecommendationError(ctx *gin.Context, err error) {
	var recErr *domainerror.RecommendationError
	if errors.As(err, &recErr) {
		status := http.StatusInternalServerError
		switch recErr.Code {
		case domainerror.ErrCodeRecommendationNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeProfileRequired:
			status = http.StatusPreconditionFailed
		case domainerror.ErrCodeRecommendationResolved:
			status = http.StatusConflict
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
