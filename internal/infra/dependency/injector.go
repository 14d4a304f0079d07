// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/goaltracker/backend/config"
	"github.com/goaltracker/backend/internal/application/adapter"
	"github.com/goaltracker/backend/internal/application/usecase/analytics"
	"github.com/goaltracker/backend/internal/application/usecase/auth"
	"github.com/goaltracker/backend/internal/application/usecase/goal"
	"github.com/goaltracker/backend/internal/application/usecase/onboarding"
	"github.com/goaltracker/backend/internal/application/usecase/progress"
	"github.com/goaltracker/backend/internal/application/usecase/recommendation"
	"github.com/goaltracker/backend/internal/application/usecase/workoutlog"
	"github.com/goaltracker/backend/internal/infra/server/router"
	"github.com/goaltracker/backend/internal/integration/adapters"
	"github.com/goaltracker/backend/internal/integration/email"
	"github.com/goaltracker/backend/internal/integration/email/templates"
	"github.com/goaltracker/backend/internal/integration/entrypoint/controller"
	"github.com/goaltracker/backend/internal/integration/entrypoint/middleware"
	"github.com/goaltracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
	EmailSender adapter.EmailSender
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	progressRepo := persistence.NewProgressRepository(db)
	recommendationRepo := persistence.NewRecommendationRepository(db)
	profileRepo := persistence.NewProfileRepository(db)
	workoutRepo := persistence.NewWorkoutLogRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewRedisResetTokenStore(redisClient)
	recommenderService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	// Create email delivery pipeline
	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		emailSender = email.NewMockEmailSender()
	}

	var emailWorker *email.Worker
	if renderer, err := templates.NewRenderer(); err == nil {
		emailWorker = email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, emailService, cfg.Email.AppBaseURL)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(
		userRepo,
		passwordService,
		tokenService,
		goalRepo,
		progressRepo,
		recommendationRepo,
		profileRepo,
		workoutRepo,
	)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, progressRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create progress use cases
	recordProgressUseCase := progress.NewRecordProgressUseCase(goalRepo, progressRepo)
	listProgressUseCase := progress.NewListProgressUseCase(goalRepo, progressRepo)
	resetTodayUseCase := progress.NewResetTodayUseCase(goalRepo, progressRepo)

	// Create analytics use case
	overviewUseCase := analytics.NewGetOverviewUseCase(goalRepo, progressRepo)

	// Create onboarding use cases
	saveProfileUseCase := onboarding.NewSaveProfileUseCase(profileRepo, userRepo)
	getProfileUseCase := onboarding.NewGetProfileUseCase(profileRepo)

	// Create recommendation use cases
	generateUseCase := recommendation.NewGenerateUseCase(profileRepo, recommendationRepo, recommenderService)
	listRecommendationsUseCase := recommendation.NewListUseCase(recommendationRepo)
	acceptUseCase := recommendation.NewAcceptUseCase(recommendationRepo)
	declineUseCase := recommendation.NewDeclineUseCase(recommendationRepo)

	// Create workout log use cases
	logWorkoutUseCase := workoutlog.NewLogWorkoutUseCase(workoutRepo, goalRepo)
	listWorkoutsUseCase := workoutlog.NewListWorkoutsUseCase(workoutRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	userController := controller.NewUserController(
		deleteAccountUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)

	progressController := controller.NewProgressController(
		recordProgressUseCase,
		listProgressUseCase,
		resetTodayUseCase,
	)

	analyticsController := controller.NewAnalyticsController(overviewUseCase)

	onboardingController := controller.NewOnboardingController(
		saveProfileUseCase,
		getProfileUseCase,
	)

	recommendationController := controller.NewRecommendationController(
		generateUseCase,
		listRecommendationsUseCase,
		acceptUseCase,
		declineUseCase,
	)

	workoutLogController := controller.NewWorkoutLogController(
		logWorkoutUseCase,
		listWorkoutsUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		goalController,
		progressController,
		analyticsController,
		onboardingController,
		recommendationController,
		workoutLogController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
		EmailSender: emailSender,
	}
}
