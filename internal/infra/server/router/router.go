// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ledger-console/backend/internal/domain/entity"
	"github.com/ledger-console/backend/internal/integration/entrypoint/controller"
	"github.com/ledger-console/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	transactionController  *controller.TransactionController
	allocationController   *controller.AllocationController
	categoryController     *controller.CategoryController
	businessUnitController *controller.BusinessUnitController
	counterpartyController *controller.CounterpartyController
	userController         *controller.UserController
	layoutController       *controller.LayoutController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	allocationController *controller.AllocationController,
	categoryController *controller.CategoryController,
	businessUnitController *controller.BusinessUnitController,
	counterpartyController *controller.CounterpartyController,
	userController *controller.UserController,
	layoutController *controller.LayoutController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		transactionController:  transactionController,
		allocationController:   allocationController,
		categoryController:     categoryController,
		businessUnitController: businessUnitController,
		counterpartyController: counterpartyController,
		userController:         userController,
		layoutController:       layoutController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
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
				auth.POST("/forgot-password", r.loginRateLimiter.Middleware(), r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		if r.authMiddleware == nil {
			return
		}

		// Transaction routes (require authentication). Approve and reject are
		// additionally gated to approvers and admins.
		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.GET("/:id", r.transactionController.Get)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
				transactions.POST("/:id/submit", r.transactionController.Submit)
				transactions.POST("/:id/cancel", r.transactionController.Cancel)

				approvals := transactions.Group("")
				approvals.Use(middleware.RequireRole(entity.UserRoleApprover, entity.UserRoleAdmin))
				{
					approvals.POST("/:id/approve", r.transactionController.Approve)
					approvals.POST("/:id/reject", r.transactionController.Reject)
				}
			}
		}

		// Allocation rule routes (require authentication)
		if r.allocationController != nil {
			allocations := v1.Group("/allocation-rules")
			allocations.Use(r.authMiddleware.Authenticate())
			{
				allocations.GET("", r.allocationController.ListRules)
				allocations.POST("/preview", r.allocationController.Preview)
			}
		}

		// Category routes: everyone reads, admins write
		if r.categoryController != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)

				writes := categories.Group("")
				writes.Use(middleware.RequireRole(entity.UserRoleAdmin))
				{
					writes.POST("", r.categoryController.Create)
					writes.PUT("/:id", r.categoryController.Update)
					writes.DELETE("/:id", r.categoryController.Delete)
				}
			}
		}

		// Business unit routes: everyone reads, admins write
		if r.businessUnitController != nil {
			units := v1.Group("/business-units")
			units.Use(r.authMiddleware.Authenticate())
			{
				units.GET("", r.businessUnitController.List)

				writes := units.Group("")
				writes.Use(middleware.RequireRole(entity.UserRoleAdmin))
				{
					writes.POST("", r.businessUnitController.Create)
					writes.PUT("/:id", r.businessUnitController.Update)
				}
			}
		}

		// Counterparty routes: everyone reads, admins write
		if r.counterpartyController != nil {
			counterparties := v1.Group("/counterparties")
			counterparties.Use(r.authMiddleware.Authenticate())
			{
				counterparties.GET("", r.counterpartyController.List)

				writes := counterparties.Group("")
				writes.Use(middleware.RequireRole(entity.UserRoleAdmin))
				{
					writes.POST("", r.counterpartyController.Create)
					writes.PUT("/:id", r.counterpartyController.Update)
					writes.DELETE("/:id", r.counterpartyController.Delete)
				}
			}
		}

		// User administration routes (admin only)
		if r.userController != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate(), middleware.RequireRole(entity.UserRoleAdmin))
			{
				users.GET("", r.userController.List)
				users.PUT("/:id/role", r.userController.ChangeRole)
				users.PUT("/:id/status", r.userController.SetStatus)
			}
		}

		// Column layout routes (require authentication)
		if r.layoutController != nil {
			layout := v1.Group("/layout")
			layout.Use(r.authMiddleware.Authenticate())
			{
				layout.GET("/columns", r.layoutController.Get)
				layout.PUT("/columns", r.layoutController.Save)
				layout.DELETE("/columns", r.layoutController.Reset)
			}
		}
	}
}
