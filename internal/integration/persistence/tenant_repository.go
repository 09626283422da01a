// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/invoice-recon/backend/internal/application/adapter"
	"github.com/invoice-recon/backend/internal/domain/entity"
	domainerror "github.com/invoice-recon/backend/internal/domain/error"
	"github.com/invoice-recon/backend/internal/integration/persistence/model"
)

// tenantRepository implements the adapter.TenantRepository interface.
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository instance.
func NewTenantRepository(db *gorm.DB) adapter.TenantRepository {
	return &tenantRepository{
		db: db,
	}
}

// Create creates a new tenant in the database.
func (r *tenantRepository) Create(ctx context.Context, tenant *entity.Tenant) error {
	tenantModel := model.TenantFromEntity(tenant)
	result := r.db.WithContext(ctx).Create(tenantModel)
	if result.Error != nil {
		return result.Error
	}
	tenant.ID = tenantModel.ID
	return nil
}

// FindByID retrieves a tenant by its ID.
func (r *tenantRepository) FindByID(ctx context.Context, tenantID uint) (*entity.Tenant, error) {
	var tenantModel model.TenantModel
	result := r.db.WithContext(ctx).Where("id = ?", tenantID).First(&tenantModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTenantNotFound
		}
		return nil, result.Error
	}
	return tenantModel.ToEntity(), nil
}

// FindByName retrieves a tenant by its unique name. Absence is not an error.
func (r *tenantRepository) FindByName(ctx context.Context, name string) (*entity.Tenant, error) {
	var tenantModel model.TenantModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&tenantModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return tenantModel.ToEntity(), nil
}

// FindAll retrieves all tenants ordered by id.
func (r *tenantRepository) FindAll(ctx context.Context) ([]*entity.Tenant, error) {
	var tenantModels []model.TenantModel
	result := r.db.WithContext(ctx).Order("id ASC").Find(&tenantModels)
	if result.Error != nil {
		return nil, result.Error
	}

	tenants := make([]*entity.Tenant, len(tenantModels))
	for i, tm := range tenantModels {
		tenants[i] = tm.ToEntity()
	}
	return tenants, nil
}

// Delete removes a tenant and everything scoped to it in one transaction.
func (r *tenantRepository) Delete(ctx context.Context, tenantID uint) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", tenantID).Delete(&model.TenantModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true

		if err := tx.Where("tenant_id = ?", tenantID).Delete(&model.MatchModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tenant_id = ?", tenantID).Delete(&model.InvoiceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tenant_id = ?", tenantID).Delete(&model.BankTransactionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tenant_id = ?", tenantID).Delete(&model.VendorModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tenant_id = ?", tenantID).Delete(&model.IdempotencyRecordModel{}).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
