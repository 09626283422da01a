// Package tenant contains tenant management use cases.
package tenant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/invoice-recon/backend/internal/application/adapter"
	domainerror "github.com/invoice-recon/backend/internal/domain/error"
)

// DeleteTenantInput represents the input for tenant deletion.
type DeleteTenantInput struct {
	TenantID uint
}

// DeleteTenantUseCase handles tenant deletion. Deleting a tenant removes
// everything scoped to it.
type DeleteTenantUseCase struct {
	tenantRepo adapter.TenantRepository
}

// NewDeleteTenantUseCase creates a new DeleteTenantUseCase instance.
func NewDeleteTenantUseCase(tenantRepo adapter.TenantRepository) *DeleteTenantUseCase {
	return &DeleteTenantUseCase{tenantRepo: tenantRepo}
}

// Execute deletes the tenant and all its scoped data.
func (uc *DeleteTenantUseCase) Execute(ctx context.Context, input DeleteTenantInput) error {
	deleted, err := uc.tenantRepo.Delete(ctx, input.TenantID)
	if err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}
	if !deleted {
		return domainerror.NewTenantError(
			domainerror.ErrCodeTenantNotFound,
			"tenant not found",
			domainerror.ErrTenantNotFound,
		)
	}

	slog.Info("Tenant deleted", "tenant_id", input.TenantID)
	return nil
}
