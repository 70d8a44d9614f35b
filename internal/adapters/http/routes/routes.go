package routes

import (
	"fundledger/internal/adapters/http/handlers"
	"fundledger/internal/adapters/http/middleware"
	"fundledger/internal/adapters/persistence/repositories"
	"fundledger/internal/config"
	"fundledger/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Repositories
	memberRepo := repositories.NewMemberRepository(db)
	loanRepo := repositories.NewLoanRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	contributionRepo := repositories.NewContributionRepository(db)
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)

	repos := &repositories.Repos{
		Members:       memberRepo,
		Loans:         loanRepo,
		Transactions:  transactionRepo,
		Contributions: contributionRepo,
	}
	uow := repositories.NewUnitOfWork(db)

	// Services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	memberService := services.NewMemberService(uow, repos)
	ledgerService := services.NewLedgerService(uow, repos)
	contributionService := services.NewContributionService(uow, repos)
	dashboardService := services.NewDashboardService(db)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	memberHandler := handlers.NewMemberHandler(memberService, contributionService)
	loanHandler := handlers.NewLoanHandler(ledgerService)
	contributionHandler := handlers.NewContributionHandler(contributionService)
	transactionHandler := handlers.NewTransactionHandler(transactionRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1
	api := app.Group("/api/v1")

	// Auth (rate-limited harder than the rest)
	auth := api.Group("/auth")
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Post("/refresh", middleware.AuthRateLimiter(), authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)
	auth.Post("/register", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), authHandler.Register)

	// Everything below requires a staff session
	protected := api.Group("", middleware.AuthMiddleware(cfg), middleware.Staff())

	// Members
	protected.Post("/members", memberHandler.Create)
	protected.Get("/members", memberHandler.List)
	protected.Get("/members/:id", memberHandler.GetByID)
	protected.Patch("/members/:id/status", memberHandler.UpdateStatus)
	protected.Delete("/members/:id", middleware.AdminOnly(), memberHandler.Delete)
	protected.Get("/members/:id/statement", memberHandler.Statement)
	protected.Get("/members/:id/contributions/yearly", memberHandler.YearlyContributions)
	protected.Post("/members/:id/contributions/reconcile", memberHandler.Reconcile)
	protected.Get("/members/:id/eligibility", loanHandler.Eligibility)
	protected.Get("/members/:id/loans", loanHandler.BorrowerLoans)

	// Loans
	protected.Get("/loans/fee-quote", loanHandler.FeeQuote)
	protected.Post("/loans", loanHandler.Issue)
	protected.Get("/loans", loanHandler.List)
	protected.Get("/loans/:id", loanHandler.GetByID)
	protected.Post("/loans/:id/repayments", loanHandler.Repay)
	protected.Get("/loans/:id/schedule", loanHandler.Schedule)
	protected.Post("/loans/:id/default", middleware.AdminOnly(), loanHandler.Default)

	// Contributions
	protected.Post("/contributions", contributionHandler.Record)

	// Transactions
	protected.Get("/transactions", transactionHandler.List)

	// Dashboard
	protected.Get("/dashboard", dashboardHandler.Get)
}
