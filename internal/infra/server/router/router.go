// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budget-pilot/backend/internal/integration/entrypoint/controller"
	"github.com/budget-pilot/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	userController        *controller.UserController
	summaryController     *controller.SummaryController
	exportController      *controller.ExportController
	incomeController      *controller.IncomeController
	recurringController   *controller.RecurringController
	oneTimeController     *controller.OneTimeController
	savingsGoalController *controller.SavingsGoalController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	summaryController *controller.SummaryController,
	exportController *controller.ExportController,
	incomeController *controller.IncomeController,
	recurringController *controller.RecurringController,
	oneTimeController *controller.OneTimeController,
	savingsGoalController *controller.SavingsGoalController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		userController:        userController,
		summaryController:     summaryController,
		exportController:      exportController,
		incomeController:      incomeController,
		recurringController:   recurringController,
		oneTimeController:     oneTimeController,
		savingsGoalController: savingsGoalController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

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
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		if r.authMiddleware == nil {
			return
		}

		if r.userController != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.DELETE("/me", r.userController.DeleteAccount)
			}
		}

		if r.summaryController != nil {
			summary := v1.Group("/summary")
			summary.Use(r.authMiddleware.Authenticate())
			{
				summary.GET("", r.summaryController.GetSummary)
				summary.GET("/can-i-spend", r.summaryController.CanISpend)
			}

			analytics := v1.Group("/analytics")
			analytics.Use(r.authMiddleware.Authenticate())
			{
				analytics.GET("", r.summaryController.GetAnalytics)
			}
		}

		if r.exportController != nil {
			exports := v1.Group("/exports")
			exports.Use(r.authMiddleware.Authenticate())
			{
				exports.POST("", r.exportController.Export)
			}
		}

		if r.incomeController != nil {
			incomes := v1.Group("/incomes")
			incomes.Use(r.authMiddleware.Authenticate())
			{
				incomes.GET("", r.incomeController.List)
				incomes.POST("", r.incomeController.Create)
				incomes.PATCH("/:id", r.incomeController.Update)
				incomes.DELETE("/:id", r.incomeController.Delete)
				incomes.PATCH("/:id/toggle", r.incomeController.Toggle)
			}
		}

		if r.recurringController != nil {
			recurring := v1.Group("/recurring-transactions")
			recurring.Use(r.authMiddleware.Authenticate())
			{
				recurring.GET("", r.recurringController.List)
				recurring.POST("", r.recurringController.Create)
				recurring.PATCH("/:id", r.recurringController.Update)
				recurring.DELETE("/:id", r.recurringController.Delete)
				recurring.PATCH("/:id/toggle", r.recurringController.Toggle)
			}
		}

		if r.oneTimeController != nil {
			oneTime := v1.Group("/one-time-transactions")
			oneTime.Use(r.authMiddleware.Authenticate())
			{
				oneTime.GET("", r.oneTimeController.List)
				oneTime.POST("", r.oneTimeController.Create)
				oneTime.PATCH("/:id", r.oneTimeController.Update)
				oneTime.DELETE("/:id", r.oneTimeController.Delete)
			}
		}

		if r.savingsGoalController != nil {
			goals := v1.Group("/savings-goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.savingsGoalController.List)
				goals.POST("", r.savingsGoalController.Create)
				goals.PATCH("/:id", r.savingsGoalController.Update)
				goals.DELETE("/:id", r.savingsGoalController.Delete)
			}
		}
	}
}
