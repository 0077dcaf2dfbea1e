// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/budget-pilot/backend/config"
	"github.com/budget-pilot/backend/internal/application/adapter"
	"github.com/budget-pilot/backend/internal/application/usecase/auth"
	"github.com/budget-pilot/backend/internal/application/usecase/export"
	"github.com/budget-pilot/backend/internal/application/usecase/goal"
	"github.com/budget-pilot/backend/internal/application/usecase/income"
	"github.com/budget-pilot/backend/internal/application/usecase/onetime"
	"github.com/budget-pilot/backend/internal/application/usecase/recurring"
	"github.com/budget-pilot/backend/internal/application/usecase/summary"
	"github.com/budget-pilot/backend/internal/infra/server/router"
	"github.com/budget-pilot/backend/internal/integration/adapters"
	"github.com/budget-pilot/backend/internal/integration/email"
	"github.com/budget-pilot/backend/internal/integration/entrypoint/controller"
	"github.com/budget-pilot/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-pilot/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	recurringRepo := persistence.NewRecurringRepository(db)
	oneTimeRepo := persistence.NewOneTimeRepository(db)
	goalRepo := persistence.NewSavingsGoalRepository(db)

	// Adapters and services
	clock := adapters.NewSystemClock()
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)

	// The mailer is optional: without a Resend API key, password reset links
	// are logged instead of emailed.
	var mailer adapter.PasswordResetMailer
	if cfg.Email.ResendAPIKey != "" {
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		resetMailer, err := email.NewPasswordResetMailer(sender)
		if err != nil {
			slog.Error("Failed to create password reset mailer", "error", err)
		} else {
			mailer = resetMailer
		}
	}

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, mailer, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

	// Summary engine
	buildSummaryUseCase := summary.NewBuildMonthlySummaryUseCase(incomeRepo, recurringRepo, oneTimeRepo, goalRepo, clock)
	canISpendUseCase := summary.NewCanISpendUseCase(buildSummaryUseCase, clock)
	analyticsUseCase := summary.NewGetAnalyticsUseCase(buildSummaryUseCase, clock)

	// Export
	exportUseCase := export.NewUseCase(buildSummaryUseCase, incomeRepo, recurringRepo, oneTimeRepo)

	// Income use cases
	listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)
	createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo)
	updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo)
	toggleIncomeUseCase := income.NewToggleIncomeUseCase(incomeRepo)

	// Recurring transaction use cases
	listRecurringUseCase := recurring.NewListRecurringUseCase(recurringRepo)
	createRecurringUseCase := recurring.NewCreateRecurringUseCase(recurringRepo, clock)
	updateRecurringUseCase := recurring.NewUpdateRecurringUseCase(recurringRepo)
	deleteRecurringUseCase := recurring.NewDeleteRecurringUseCase(recurringRepo)
	toggleRecurringUseCase := recurring.NewToggleRecurringUseCase(recurringRepo)

	// One-time transaction use cases
	listOneTimeUseCase := onetime.NewListOneTimeUseCase(oneTimeRepo)
	createOneTimeUseCase := onetime.NewCreateOneTimeUseCase(oneTimeRepo)
	updateOneTimeUseCase := onetime.NewUpdateOneTimeUseCase(oneTimeRepo)
	deleteOneTimeUseCase := onetime.NewDeleteOneTimeUseCase(oneTimeRepo)

	// Savings goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, clock)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Controllers
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

	userController := controller.NewUserController(deleteAccountUseCase)

	summaryController := controller.NewSummaryController(
		buildSummaryUseCase,
		canISpendUseCase,
		analyticsUseCase,
		clock,
	)

	exportController := controller.NewExportController(exportUseCase)

	incomeController := controller.NewIncomeController(
		listIncomesUseCase,
		createIncomeUseCase,
		updateIncomeUseCase,
		deleteIncomeUseCase,
		toggleIncomeUseCase,
	)

	recurringController := controller.NewRecurringController(
		listRecurringUseCase,
		createRecurringUseCase,
		updateRecurringUseCase,
		deleteRecurringUseCase,
		toggleRecurringUseCase,
	)

	oneTimeController := controller.NewOneTimeController(
		listOneTimeUseCase,
		createOneTimeUseCase,
		updateOneTimeUseCase,
		deleteOneTimeUseCase,
	)

	savingsGoalController := controller.NewSavingsGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)

	// Middleware. Test environments get a high rate limit to avoid flakes.
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		summaryController,
		exportController,
		incomeController,
		recurringController,
		oneTimeController,
		savingsGoalController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
