// Package tenant contains tenant management use cases.
package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/invoice-recon/backend/internal/application/adapter"
	domainerror "github.com/invoice-recon/backend/internal/domain/error"
)

// ListTenantsOutput represents the listing result.
type ListTenantsOutput struct {
	Tenants []*TenantOutput
}

// ListTenantsUseCase handles tenant listing.
type ListTenantsUseCase struct {
	tenantRepo adapter.TenantRepository
}

// NewListTenantsUseCase creates a new ListTenantsUseCase instance.
func NewListTenantsUseCase(tenantRepo adapter.TenantRepository) *ListTenantsUseCase {
	return &ListTenantsUseCase{tenantRepo: tenantRepo}
}

// Execute lists all tenants in id order.
func (uc *ListTenantsUseCase) Execute(ctx context.Context) (*ListTenantsOutput, error) {
	tenants, err := uc.tenantRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	output := &ListTenantsOutput{Tenants: make([]*TenantOutput, len(tenants))}
	for i, t := range tenants {
		output.Tenants[i] = tenantToOutput(t)
	}
	return output, nil
}

// GetTenantInput represents the input for fetching one tenant.
type GetTenantInput struct {
	TenantID uint
}

// GetTenantOutput represents the fetched tenant.
type GetTenantOutput struct {
	Tenant *TenantOutput
}

// GetTenantUseCase handles fetching a single tenant.
type GetTenantUseCase struct {
	tenantRepo adapter.TenantRepository
}

// NewGetTenantUseCase creates a new GetTenantUseCase instance.
func NewGetTenantUseCase(tenantRepo adapter.TenantRepository) *GetTenantUseCase {
	return &GetTenantUseCase{tenantRepo: tenantRepo}
}

// Execute fetches a tenant by id.
func (uc *GetTenantUseCase) Execute(ctx context.Context, input GetTenantInput) (*GetTenantOutput, error) {
	tenant, err := uc.tenantRepo.FindByID(ctx, input.TenantID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTenantNotFound) {
			return nil, domainerror.NewTenantError(
				domainerror.ErrCodeTenantNotFound,
				"tenant not found",
				domainerror.ErrTenantNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}

	return &GetTenantOutput{Tenant: tenantToOutput(tenant)}, nil
}
