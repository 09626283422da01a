// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/invoice-recon/backend/internal/integration/entrypoint/controller"
	"github.com/invoice-recon/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                    *gin.Engine
	healthController          *controller.HealthController
	tenantController          *controller.TenantController
	invoiceController         *controller.InvoiceController
	bankTransactionController *controller.BankTransactionController
	reconciliationController  *controller.ReconciliationController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	tenantController *controller.TenantController,
	invoiceController *controller.InvoiceController,
	bankTransactionController *controller.BankTransactionController,
	reconciliationController *controller.ReconciliationController,
) *Router {
	return &Router{
		healthController:          healthController,
		tenantController:          tenantController,
		invoiceController:         invoiceController,
		bankTransactionController: bankTransactionController,
		reconciliationController:  reconciliationController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.RequestLogger())

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
		tenants := v1.Group("/tenants")
		{
			tenants.POST("", r.tenantController.Create)
			tenants.GET("", r.tenantController.List)
			tenants.GET("/:tenantId", r.tenantController.Get)
			tenants.DELETE("/:tenantId", r.tenantController.Delete)

			scoped := tenants.Group("/:tenantId")
			{
				scoped.POST("/invoices", r.invoiceController.Create)
				scoped.GET("/invoices", r.invoiceController.List)
				scoped.DELETE("/invoices/:invoiceId", r.invoiceController.Delete)

				scoped.POST("/bank-transactions/import", r.bankTransactionController.Import)
				scoped.GET("/bank-transactions", r.bankTransactionController.List)

				reconcileLimiter := middleware.NewRateLimiter()
				scoped.POST("/reconcile", reconcileLimiter.Middleware(), r.reconciliationController.Reconcile)
				scoped.GET("/reconcile/explain", r.reconciliationController.ExplainMatch)
				scoped.GET("/matches", r.reconciliationController.ListMatches)
				scoped.POST("/matches/:matchId/confirm", r.reconciliationController.ConfirmMatch)
			}
		}
	}
}
