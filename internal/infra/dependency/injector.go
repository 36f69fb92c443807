// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/supabase-community/supabase-go"

	"github.com/finance-pulse/backend/config"
	"github.com/finance-pulse/backend/internal/application/usecase/auth"
	"github.com/finance-pulse/backend/internal/application/usecase/expense"
	"github.com/finance-pulse/backend/internal/application/usecase/profile"
	"github.com/finance-pulse/backend/internal/application/usecase/report"
	"github.com/finance-pulse/backend/internal/infra/server/router"
	"github.com/finance-pulse/backend/internal/integration/adapters"
	"github.com/finance-pulse/backend/internal/integration/entrypoint/controller"
	"github.com/finance-pulse/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-pulse/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	Supabase     *supabase.Client
	Router       *router.Router
	SessionState *auth.SessionState
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil Supabase client leaves the data and auth surfaces unregistered; the
// server still starts and answers health checks in degraded mode.
func NewInjector(cfg *config.Config, client *supabase.Client, redisClient *redis.Client) *Injector {
	policy := auth.RoutingPolicy{
		ProtectedPrefix: cfg.Routes.ProtectedPrefix,
		AuthPath:        cfg.Routes.AuthPath,
	}

	healthController := controller.NewHealthController(func() bool {
		return client != nil
	})

	var (
		authController      *controller.AuthController
		expenseController   *controller.ExpenseController
		categoryController  *controller.CategoryController
		revenueController   *controller.RevenueController
		dashboardController *controller.DashboardController
		profileController   *controller.ProfileController
		sessionGuard        *middleware.SessionGuard
		authMiddleware      *middleware.AuthMiddleware
		sessionState        *auth.SessionState
	)

	if client != nil {
		// Create repositories
		expenseRepo := persistence.NewExpenseRepository(client)
		categoryRepo := persistence.NewCategoryRepository(client)
		revenueRepo := persistence.NewRevenueRepository(client)
		profileRepo := persistence.NewProfileRepository(client)

		// Create adapters/services
		sessionProvider := adapters.NewGotrueProvider(client.Auth)
		tokenService := adapters.NewTokenService(cfg.Supabase.JWTSecret)
		navigator := adapters.NewLogNavigator(cfg.Routes.AuthPath)

		// Create session state and auth use cases
		sessionState = auth.NewSessionState(sessionProvider, navigator, policy, cfg.Supabase.RefreshInterval)
		signInUseCase := auth.NewSignInUseCase(sessionProvider, sessionState)
		exchangeCodeUseCase := auth.NewExchangeCodeUseCase(sessionProvider, sessionState)

		// Create expense use cases
		listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo, categoryRepo)
		createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, categoryRepo)
		updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo)
		deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

		// Create report use cases
		summaryUseCase := report.NewGetSummaryUseCase(revenueRepo, expenseRepo)
		monthlyUseCase := report.NewGetMonthlyReportUseCase(revenueRepo, expenseRepo)
		profitLossUseCase := report.NewGetProfitLossUseCase(revenueRepo, expenseRepo)
		forecastUseCase := report.NewGetForecastUseCase(revenueRepo)
		transactionsUseCase := report.NewGetRevenueTransactionsUseCase(revenueRepo)

		// Create profile use cases
		getProfileUseCase := profile.NewGetProfileUseCase(profileRepo)
		updateProfileUseCase := profile.NewUpdateProfileUseCase(profileRepo)

		// Create controllers
		authController = controller.NewAuthController(signInUseCase, exchangeCodeUseCase, sessionState, cfg)
		expenseController = controller.NewExpenseController(listExpensesUseCase, createExpenseUseCase, updateExpenseUseCase, deleteExpenseUseCase)
		categoryController = controller.NewCategoryController(categoryRepo)
		revenueController = controller.NewRevenueController(revenueRepo, transactionsUseCase)
		dashboardController = controller.NewDashboardController(summaryUseCase, monthlyUseCase, profitLossUseCase, forecastUseCase)
		profileController = controller.NewProfileController(getProfileUseCase, updateProfileUseCase)

		// Create middleware
		sessionGuard = middleware.NewSessionGuard(sessionProvider, policy, cfg.Supabase.SessionCookie)
		authMiddleware = middleware.NewAuthMiddleware(tokenService)
	}

	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}

	r := router.NewRouter(
		cfg,
		healthController,
		authController,
		expenseController,
		categoryController,
		revenueController,
		dashboardController,
		profileController,
		sessionGuard,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:       cfg,
		Supabase:     client,
		Router:       r,
		SessionState: sessionState,
	}
}
