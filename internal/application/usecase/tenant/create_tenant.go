// Package tenant contains tenant management use cases.
package tenant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/invoice-recon/backend/internal/application/adapter"
	"github.com/invoice-recon/backend/internal/domain/entity"
	domainerror "github.com/invoice-recon/backend/internal/domain/error"
)

// MaxTenantNameLength is the maximum allowed length for tenant names.
const MaxTenantNameLength = 200

// CreateTenantInput represents the input for tenant creation.
type CreateTenantInput struct {
	Name string
}

// TenantOutput represents a tenant in use-case output.
type TenantOutput struct {
	ID        uint
	Name      string
	CreatedAt time.Time
}

// CreateTenantOutput represents the output of tenant creation.
type CreateTenantOutput struct {
	Tenant *TenantOutput
}

// CreateTenantUseCase handles tenant creation.
type CreateTenantUseCase struct {
	tenantRepo adapter.TenantRepository
}

// NewCreateTenantUseCase creates a new CreateTenantUseCase instance.
func NewCreateTenantUseCase(tenantRepo adapter.TenantRepository) *CreateTenantUseCase {
	return &CreateTenantUseCase{tenantRepo: tenantRepo}
}

// Execute creates a tenant. Names are unique system-wide.
func (uc *CreateTenantUseCase) Execute(ctx context.Context, input CreateTenantInput) (*CreateTenantOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > MaxTenantNameLength {
		return nil, domainerror.NewTenantError(
			domainerror.ErrCodeInvalidTenantName,
			fmt.Sprintf("tenant name must be non-empty and at most %d characters", MaxTenantNameLength),
			domainerror.ErrInvalidTenantName,
		)
	}

	existing, err := uc.tenantRepo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check tenant name: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewTenantError(
			domainerror.ErrCodeTenantNameTaken,
			"tenant name already exists",
			domainerror.ErrTenantNameTaken,
		)
	}

	tenant := entity.NewTenant(name)
	if err := uc.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	slog.Info("Tenant created", "tenant_id", tenant.ID, "name", tenant.Name)

	return &CreateTenantOutput{Tenant: tenantToOutput(tenant)}, nil
}

func tenantToOutput(t *entity.Tenant) *TenantOutput {
	return &TenantOutput{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
	}
}
