// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/invoice-recon/backend/internal/domain/entity"
)

// TenantRepository defines the interface for tenant persistence operations.
type TenantRepository interface {
	// Create persists a new tenant and fills its generated id.
	Create(ctx context.Context, tenant *entity.Tenant) error

	// FindByID retrieves a tenant by id.
	FindByID(ctx context.Context, tenantID uint) (*entity.Tenant, error)

	// FindByName retrieves a tenant by its unique name, or nil when absent.
	FindByName(ctx context.Context, name string) (*entity.Tenant, error)

	// FindAll retrieves all tenants ordered by id.
	FindAll(ctx context.Context) ([]*entity.Tenant, error)

	// Delete removes a tenant and everything scoped to it (vendors, invoices,
	// bank transactions, matches, idempotency records) in one transaction.
	// Returns false when the tenant does not exist.
	Delete(ctx context.Context, tenantID uint) (bool, error)
}
