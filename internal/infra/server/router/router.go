// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/goaltracker/backend/internal/integration/entrypoint/controller"
	"github.com/goaltracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	authController           *controller.AuthController
	userController           *controller.UserController
	goalController           *controller.GoalController
	progressController       *controller.ProgressController
	analyticsController      *controller.AnalyticsController
	onboardingController     *controller.OnboardingController
	recommendationController *controller.RecommendationController
	workoutLogController     *controller.WorkoutLogController
	loginRateLimiter         *middleware.RateLimiter
	authMiddleware           *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	goalController *controller.GoalController,
	progressController *controller.ProgressController,
	analyticsController *controller.AnalyticsController,
	onboardingController *controller.OnboardingController,
	recommendationController *controller.RecommendationController,
	workoutLogController *controller.WorkoutLogController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:         healthController,
		authController:           authController,
		userController:           userController,
		goalController:           goalController,
		progressController:       progressController,
		analyticsController:      analyticsController,
		onboardingController:     onboardingController,
		recommendationController: recommendationController,
		workoutLogController:     workoutLogController,
		loginRateLimiter:         loginRateLimiter,
		authMiddleware:           authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// User routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.DELETE("/me", r.userController.DeleteAccount)
			}
		}

		// Goal routes with nested progress (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.GET("/:id", r.goalController.Get)
				goals.PATCH("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)

				if r.progressController != nil {
					goals.POST("/:id/progress", r.progressController.Record)
					goals.GET("/:id/progress", r.progressController.List)
					goals.POST("/:id/progress/reset", r.progressController.ResetToday)
				}
			}
		}

		// Analytics routes (require authentication)
		if r.analyticsController != nil && r.authMiddleware != nil {
			analytics := v1.Group("/analytics")
			analytics.Use(r.authMiddleware.Authenticate())
			{
				analytics.GET("", r.analyticsController.Overview)
			}
		}

		// Onboarding questionnaire routes (require authentication)
		if r.onboardingController != nil && r.authMiddleware != nil {
			onboarding := v1.Group("/onboarding")
			onboarding.Use(r.authMiddleware.Authenticate())
			{
				onboarding.GET("", r.onboardingController.Get)
				onboarding.PUT("", r.onboardingController.Save)
			}
		}

		// Recommendation routes (require authentication)
		if r.recommendationController != nil && r.authMiddleware != nil {
			recommendations := v1.Group("/recommendations")
			recommendations.Use(r.authMiddleware.Authenticate())
			{
				recommendations.GET("", r.recommendationController.List)
				recommendations.POST("/generate", r.recommendationController.Generate)
				recommendations.POST("/:id/accept", r.recommendationController.Accept)
				recommendations.POST("/:id/decline", r.recommendationController.Decline)
			}
		}

		// Workout log routes (require authentication)
		if r.workoutLogController != nil && r.authMiddleware != nil {
			workouts := v1.Group("/workout-logs")
			workouts.Use(r.authMiddleware.Authenticate())
			{
				workouts.GET("", r.workoutLogController.List)
				workouts.POST("", r.workoutLogController.Create)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
