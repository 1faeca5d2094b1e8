// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ledger-console/backend/config"
	"github.com/ledger-console/backend/internal/application/adapter"
	"github.com/ledger-console/backend/internal/application/usecase/allocation"
	"github.com/ledger-console/backend/internal/application/usecase/auth"
	"github.com/ledger-console/backend/internal/application/usecase/businessunit"
	"github.com/ledger-console/backend/internal/application/usecase/category"
	"github.com/ledger-console/backend/internal/application/usecase/counterparty"
	"github.com/ledger-console/backend/internal/application/usecase/layout"
	"github.com/ledger-console/backend/internal/application/usecase/transaction"
	"github.com/ledger-console/backend/internal/application/usecase/user"
	"github.com/ledger-console/backend/internal/domain/entity"
	"github.com/ledger-console/backend/internal/infra/server/router"
	"github.com/ledger-console/backend/internal/integration/adapters"
	"github.com/ledger-console/backend/internal/integration/cache"
	"github.com/ledger-console/backend/internal/integration/email"
	"github.com/ledger-console/backend/internal/integration/email/templates"
	"github.com/ledger-console/backend/internal/integration/entrypoint/controller"
	"github.com/ledger-console/backend/internal/integration/entrypoint/middleware"
	"github.com/ledger-console/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	businessUnitRepo := persistence.NewBusinessUnitRepository(db)
	counterpartyRepo := persistence.NewCounterpartyRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)
	transactionStore := persistence.NewTransactionStore(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	layoutStore := cache.NewLayoutStore(redisClient)

	// Create email pipeline: queue-backed service plus the background worker
	// that renders and delivers the queued jobs.
	emailService := email.NewService(emailQueueRepo)
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		// No API key configured; deliveries are logged instead of sent.
		sender = email.NewMockEmailSender()
	}
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Shared transaction collaborators: the in-memory snapshot over the store,
	// the built-in allocation rule table and the approval notifier.
	snapshot := transaction.NewSnapshot(transactionStore)
	ruleTable := entity.NewAllocationRuleTable(entity.DefaultAllocationRules())
	notifier := transaction.NewNotifier(emailService, userRepo, cfg.Email.AppBaseURL)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(snapshot)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(snapshot)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionStore, snapshot, categoryRepo, counterpartyRepo, ruleTable, userRepo, notifier)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionStore, snapshot, categoryRepo, counterpartyRepo, ruleTable)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionStore, snapshot, userRepo)
	submitTransactionUseCase := transaction.NewSubmitTransactionUseCase(transactionStore, snapshot, categoryRepo, counterpartyRepo, userRepo, notifier)
	approveTransactionUseCase := transaction.NewApproveTransactionUseCase(transactionStore, snapshot, userRepo, notifier)
	rejectTransactionUseCase := transaction.NewRejectTransactionUseCase(transactionStore, snapshot, userRepo, notifier)
	cancelTransactionUseCase := transaction.NewCancelTransactionUseCase(transactionStore, snapshot)

	// Create allocation use cases
	previewAllocationUseCase := allocation.NewPreviewAllocationUseCase(ruleTable)
	listRulesUseCase := allocation.NewListRulesUseCase(ruleTable)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create business unit use cases
	listBusinessUnitsUseCase := businessunit.NewListBusinessUnitsUseCase(businessUnitRepo)
	createBusinessUnitUseCase := businessunit.NewCreateBusinessUnitUseCase(businessUnitRepo)
	updateBusinessUnitUseCase := businessunit.NewUpdateBusinessUnitUseCase(businessUnitRepo)

	// Create counterparty use cases
	listCounterpartiesUseCase := counterparty.NewListCounterpartiesUseCase(counterpartyRepo)
	createCounterpartyUseCase := counterparty.NewCreateCounterpartyUseCase(counterpartyRepo)
	updateCounterpartyUseCase := counterparty.NewUpdateCounterpartyUseCase(counterpartyRepo)
	deleteCounterpartyUseCase := counterparty.NewDeleteCounterpartyUseCase(counterpartyRepo)

	// Create user administration use cases
	listUsersUseCase := user.NewListUsersUseCase(userRepo)
	changeRoleUseCase := user.NewChangeRoleUseCase(userRepo, tokenService)
	setStatusUseCase := user.NewSetStatusUseCase(userRepo, tokenService)

	// Create layout use cases
	getLayoutUseCase := layout.NewGetLayoutUseCase(layoutStore)
	saveLayoutUseCase := layout.NewSaveLayoutUseCase(layoutStore)
	resetLayoutUseCase := layout.NewResetLayoutUseCase(layoutStore)

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

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		submitTransactionUseCase,
		approveTransactionUseCase,
		rejectTransactionUseCase,
		cancelTransactionUseCase,
	)

	allocationController := controller.NewAllocationController(
		previewAllocationUseCase,
		listRulesUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	businessUnitController := controller.NewBusinessUnitController(
		listBusinessUnitsUseCase,
		createBusinessUnitUseCase,
		updateBusinessUnitUseCase,
	)

	counterpartyController := controller.NewCounterpartyController(
		listCounterpartiesUseCase,
		createCounterpartyUseCase,
		updateCounterpartyUseCase,
		deleteCounterpartyUseCase,
	)

	userController := controller.NewUserController(
		listUsersUseCase,
		changeRoleUseCase,
		setStatusUseCase,
	)

	layoutController := controller.NewLayoutController(
		getLayoutUseCase,
		saveLayoutUseCase,
		resetLayoutUseCase,
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
		transactionController,
		allocationController,
		categoryController,
		businessUnitController,
		counterpartyController,
		userController,
		layoutController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
