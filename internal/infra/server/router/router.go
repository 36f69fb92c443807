// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/finance-pulse/backend/config"
	domainerror "github.com/finance-pulse/backend/internal/domain/error"
	"github.com/finance-pulse/backend/internal/integration/entrypoint/controller"
	"github.com/finance-pulse/backend/internal/integration/entrypoint/dto"
	"github.com/finance-pulse/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	cfg                 *config.Config
	healthController    *controller.HealthController
	authController      *controller.AuthController
	expenseController   *controller.ExpenseController
	categoryController  *controller.CategoryController
	revenueController   *controller.RevenueController
	dashboardController *controller.DashboardController
	profileController   *controller.ProfileController
	sessionGuard        *middleware.SessionGuard
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	cfg *config.Config,
	healthController *controller.HealthController,
	authController *controller.AuthController,
	expenseController *controller.ExpenseController,
	categoryController *controller.CategoryController,
	revenueController *controller.RevenueController,
	dashboardController *controller.DashboardController,
	profileController *controller.ProfileController,
	sessionGuard *middleware.SessionGuard,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		cfg:                 cfg,
		healthController:    healthController,
		authController:      authController,
		expenseController:   expenseController,
		categoryController:  categoryController,
		revenueController:   revenueController,
		dashboardController: dashboardController,
		profileController:   profileController,
		sessionGuard:        sessionGuard,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
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

	r.engine.Use(cors.New(cors.Config{
		AllowOrigins:     r.cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.setupHealthRoutes()
	r.setupPageRoutes()
	r.setupAPIRoutes()
	r.engine.NoRoute(r.handleUnmatched)

	return r.engine
}

// handleUnmatched answers requests no route claimed. When the hosted
// provider is not configured the data routes are never registered, so API
// requests surface the coded configuration error instead of a bare 404.
func (r *Router) handleUnmatched(c *gin.Context) {
	if r.expenseController == nil && strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: domainerror.ErrProviderNotConfigured.Error(),
			Code:  string(domainerror.ErrCodeProviderNotConfigured),
		})
		return
	}
	c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Resource not found"})
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupPageRoutes configures the gated page surface. The session guard
// resolves the session cookie at the edge and redirects before any page
// content is served; everything outside the gated surface passes untouched.
func (r *Router) setupPageRoutes() {
	if r.sessionGuard == nil {
		return
	}

	pages := r.engine.Group("")
	pages.Use(r.sessionGuard.Gate())
	{
		pages.GET(r.cfg.Routes.ProtectedPrefix, servePage)
		pages.GET(r.cfg.Routes.ProtectedPrefix+"/*page", servePage)
		pages.GET(r.cfg.Routes.AuthPath, servePage)
	}

	// Callback sits outside the gate so the code exchange can run before a
	// session exists.
	if r.authController != nil {
		r.engine.GET(r.cfg.Routes.CallbackPath, r.authController.Callback)
	}
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
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/logout", r.authController.Logout)
				auth.GET("/session", r.authController.Session)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.PATCH("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
			}
		}

		// Revenue routes (require authentication)
		if r.revenueController != nil && r.authMiddleware != nil {
			revenue := v1.Group("/revenue")
			revenue.Use(r.authMiddleware.Authenticate())
			{
				revenue.GET("/orders", r.revenueController.ListOrders)
				revenue.GET("/markets", r.revenueController.ListMarkets)
				revenue.GET("/courses", r.revenueController.ListCourses)
				revenue.GET("/transactions", r.revenueController.ListTransactions)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/summary", r.dashboardController.Summary)
				dashboard.GET("/monthly", r.dashboardController.Monthly)
				dashboard.GET("/profit-loss", r.dashboardController.ProfitLoss)
				dashboard.GET("/forecast", r.dashboardController.Forecast)
			}
		}

		// Profile routes (require authentication)
		if r.profileController != nil && r.authMiddleware != nil {
			profile := v1.Group("/profile")
			profile.Use(r.authMiddleware.Authenticate())
			{
				profile.GET("", r.profileController.Get)
				profile.PATCH("", r.profileController.Update)
			}
		}
	}
}

// servePage delivers the single-page application shell. The client router
// takes over from here; route gating already happened in the middleware.
func servePage(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/html; charset=utf-8", appShell)
}

var appShell = []byte(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Finance Pulse</title>
<script type="module" src="/assets/app.js"></script>
</head>
<body><div id="root"></div></body>
</html>
`)

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
