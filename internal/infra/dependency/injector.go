// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/invoice-recon/backend/config"
	"github.com/invoice-recon/backend/internal/application/adapter"
	"github.com/invoice-recon/backend/internal/application/usecase/banktransaction"
	"github.com/invoice-recon/backend/internal/application/usecase/explanation"
	"github.com/invoice-recon/backend/internal/application/usecase/invoice"
	"github.com/invoice-recon/backend/internal/application/usecase/reconciliation"
	"github.com/invoice-recon/backend/internal/application/usecase/tenant"
	"github.com/invoice-recon/backend/internal/infra/db"
	"github.com/invoice-recon/backend/internal/infra/server/router"
	"github.com/invoice-recon/backend/internal/integration/adapters"
	"github.com/invoice-recon/backend/internal/integration/entrypoint/controller"
	"github.com/invoice-recon/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *db.Database
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, database *db.Database) (*Injector, error) {
	gormDB := database.DB()

	// Create repositories
	tenantRepo := persistence.NewTenantRepository(gormDB)
	invoiceRepo := persistence.NewInvoiceRepository(gormDB)
	transactionRepo := persistence.NewBankTransactionRepository(gormDB)
	idempotencyRepo := persistence.NewIdempotencyRepository(gormDB)
	matchRepo := persistence.NewMatchRepository(gormDB)

	// Create adapters/services
	aiService := newAIService(&cfg.AI)
	tenantLock, err := newTenantLock(cfg)
	if err != nil {
		return nil, err
	}

	// Create tenant use cases
	createTenantUseCase := tenant.NewCreateTenantUseCase(tenantRepo)
	listTenantsUseCase := tenant.NewListTenantsUseCase(tenantRepo)
	getTenantUseCase := tenant.NewGetTenantUseCase(tenantRepo)
	deleteTenantUseCase := tenant.NewDeleteTenantUseCase(tenantRepo)

	// Create invoice use cases
	createInvoiceUseCase := invoice.NewCreateInvoiceUseCase(invoiceRepo)
	listInvoicesUseCase := invoice.NewListInvoicesUseCase(invoiceRepo)
	deleteInvoiceUseCase := invoice.NewDeleteInvoiceUseCase(invoiceRepo)

	// Create bank-transaction use cases
	importTransactionsUseCase := banktransaction.NewImportTransactionsUseCase(transactionRepo, idempotencyRepo)
	listTransactionsUseCase := banktransaction.NewListTransactionsUseCase(transactionRepo)

	// Create reconciliation use cases
	reconcileUseCase := reconciliation.NewReconcileUseCase(invoiceRepo, transactionRepo, matchRepo, tenantLock)
	confirmMatchUseCase := reconciliation.NewConfirmMatchUseCase(matchRepo)
	listMatchesUseCase := reconciliation.NewListMatchesUseCase(matchRepo)
	explainMatchUseCase := explanation.NewExplainMatchUseCase(invoiceRepo, transactionRepo, aiService, cfg.AI.Timeout)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	tenantController := controller.NewTenantController(
		createTenantUseCase,
		listTenantsUseCase,
		getTenantUseCase,
		deleteTenantUseCase,
	)
	invoiceController := controller.NewInvoiceController(
		createInvoiceUseCase,
		listInvoicesUseCase,
		deleteInvoiceUseCase,
	)
	bankTransactionController := controller.NewBankTransactionController(
		importTransactionsUseCase,
		listTransactionsUseCase,
	)
	reconciliationController := controller.NewReconciliationController(
		reconcileUseCase,
		confirmMatchUseCase,
		listMatchesUseCase,
		explainMatchUseCase,
	)

	r := router.NewRouter(
		healthController,
		tenantController,
		invoiceController,
		bankTransactionController,
		reconciliationController,
	)

	return &Injector{
		Config: cfg,
		DB:     database,
		Router: r,
	}, nil
}

// newAIService selects the explanation provider from configuration.
func newAIService(cfg *config.AIConfig) adapter.AIExplanationService {
	switch cfg.Provider {
	case "gemini":
		slog.Info("AI explanations enabled", "provider", "gemini", "model", cfg.GeminiModel)
		return adapters.NewGeminiExplanationService(cfg.GeminiAPIKey, cfg.GeminiModel)
	case "mock":
		slog.Info("AI explanations enabled", "provider", "mock")
		return adapters.NewMockAIService()
	default:
		return adapters.NewDisabledAIService()
	}
}

// newTenantLock selects the reconciliation lock backend from configuration.
func newTenantLock(cfg *config.Config) (adapter.TenantLock, error) {
	switch cfg.Reconcile.LockBackend {
	case "redis":
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		if cfg.Redis.Password != "" {
			opts.Password = cfg.Redis.Password
		}
		client := redis.NewClient(opts)
		slog.Info("Reconcile lock backend", "backend", "redis")
		return adapters.NewRedisTenantLock(client, cfg.Reconcile.LockTTL), nil
	case "local", "":
		return adapters.NewLocalTenantLock(), nil
	default:
		return nil, fmt.Errorf("unsupported reconcile lock backend: %s", cfg.Reconcile.LockBackend)
	}
}
