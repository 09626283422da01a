// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoice-recon/backend/internal/domain/entity"
)

// InvoiceFilter restricts an invoice listing. TenantID is mandatory; every
// other predicate is optional.
type InvoiceFilter struct {
	TenantID  uint
	Status    *entity.InvoiceStatus
	VendorID  *uint
	DateStart *time.Time
	DateEnd   *time.Time
	AmountMin *decimal.Decimal
	AmountMax *decimal.Decimal
}

// InvoiceRepository defines the interface for invoice persistence operations.
type InvoiceRepository interface {
	// Create persists a new invoice and fills its generated id.
	Create(ctx context.Context, invoice *entity.Invoice) error

	// FindByID retrieves an invoice scoped to a tenant.
	FindByID(ctx context.Context, tenantID, invoiceID uint) (*entity.Invoice, error)

	// FindByFilter retrieves invoices matching the filter, ordered by id.
	FindByFilter(ctx context.Context, filter InvoiceFilter) ([]*entity.Invoice, error)

	// FindOpenByTenant retrieves all open invoices for a tenant, ordered by id.
	FindOpenByTenant(ctx context.Context, tenantID uint) ([]*entity.Invoice, error)

	// Delete removes an invoice and its matches in one transaction.
	// Returns false when the invoice does not exist for the tenant.
	Delete(ctx context.Context, tenantID, invoiceID uint) (bool, error)
}
