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

// invoiceRepository implements the adapter.InvoiceRepository interface.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository instance.
func NewInvoiceRepository(db *gorm.DB) adapter.InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

// Create creates a new invoice in the database.
func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	invoiceModel := model.InvoiceFromEntity(invoice)
	result := r.db.WithContext(ctx).Create(invoiceModel)
	if result.Error != nil {
		return result.Error
	}
	invoice.ID = invoiceModel.ID
	return nil
}

// FindByID retrieves an invoice scoped to a tenant.
func (r *invoiceRepository) FindByID(ctx context.Context, tenantID, invoiceID uint) (*entity.Invoice, error) {
	var invoiceModel model.InvoiceModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", invoiceID, tenantID).
		First(&invoiceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvoiceNotFound
		}
		return nil, result.Error
	}
	return invoiceModel.ToEntity(), nil
}

// FindByFilter retrieves invoices based on filter criteria.
func (r *invoiceRepository) FindByFilter(ctx context.Context, filter adapter.InvoiceFilter) ([]*entity.Invoice, error) {
	query := r.db.WithContext(ctx).Where("tenant_id = ?", filter.TenantID)

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.VendorID != nil {
		query = query.Where("vendor_id = ?", *filter.VendorID)
	}
	if filter.DateStart != nil {
		query = query.Where("invoice_date >= ?", filter.DateStart)
	}
	if filter.DateEnd != nil {
		query = query.Where("invoice_date <= ?", filter.DateEnd)
	}
	if filter.AmountMin != nil {
		query = query.Where("amount >= ?", filter.AmountMin)
	}
	if filter.AmountMax != nil {
		query = query.Where("amount <= ?", filter.AmountMax)
	}

	var invoiceModels []model.InvoiceModel
	result := query.Order("id ASC").Find(&invoiceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	invoices := make([]*entity.Invoice, len(invoiceModels))
	for i, im := range invoiceModels {
		invoices[i] = im.ToEntity()
	}
	return invoices, nil
}

// FindOpenByTenant retrieves all open invoices for a tenant ordered by id.
func (r *invoiceRepository) FindOpenByTenant(ctx context.Context, tenantID uint) ([]*entity.Invoice, error) {
	var invoiceModels []model.InvoiceModel
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status = ?", tenantID, string(entity.InvoiceStatusOpen)).
		Order("id ASC").
		Find(&invoiceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	invoices := make([]*entity.Invoice, len(invoiceModels))
	for i, im := range invoiceModels {
		invoices[i] = im.ToEntity()
	}
	return invoices, nil
}

// Delete removes an invoice and its matches in one transaction.
func (r *invoiceRepository) Delete(ctx context.Context, tenantID, invoiceID uint) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND tenant_id = ?", invoiceID, tenantID).
			Delete(&model.InvoiceModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true

		return tx.Where("tenant_id = ? AND invoice_id = ?", tenantID, invoiceID).
			Delete(&model.MatchModel{}).Error
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
