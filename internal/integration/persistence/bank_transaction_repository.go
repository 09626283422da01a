// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/invoice-recon/backend/internal/application/adapter"
	"github.com/invoice-recon/backend/internal/domain/entity"
	domainerror "github.com/invoice-recon/backend/internal/domain/error"
	"github.com/invoice-recon/backend/internal/domain/valueobject"
	"github.com/invoice-recon/backend/internal/integration/persistence/model"
)

// bankTransactionRepository implements the adapter.BankTransactionRepository
// interface.
type bankTransactionRepository struct {
	db *gorm.DB
}

// NewBankTransactionRepository creates a new bank transaction repository
// instance.
func NewBankTransactionRepository(db *gorm.DB) adapter.BankTransactionRepository {
	return &bankTransactionRepository{
		db: db,
	}
}

// FindByID retrieves a bank transaction scoped to a tenant.
func (r *bankTransactionRepository) FindByID(ctx context.Context, tenantID, transactionID uint) (*entity.BankTransaction, error) {
	var transactionModel model.BankTransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", transactionID, tenantID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBankTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByTenant retrieves all bank transactions for a tenant ordered by id.
func (r *bankTransactionRepository) FindByTenant(ctx context.Context, tenantID uint) ([]*entity.BankTransaction, error) {
	var transactionModels []model.BankTransactionModel
	result := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("id ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.BankTransaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// FindByFilter retrieves bank transactions based on filter criteria.
func (r *bankTransactionRepository) FindByFilter(ctx context.Context, filter adapter.BankTransactionFilter) ([]*entity.BankTransaction, error) {
	query := r.db.WithContext(ctx).Where("tenant_id = ?", filter.TenantID)

	if filter.PostedStart != nil {
		query = query.Where("posted_at >= ?", filter.PostedStart)
	}
	if filter.PostedEnd != nil {
		query = query.Where("posted_at <= ?", filter.PostedEnd)
	}
	if filter.AmountMin != nil {
		query = query.Where("amount >= ?", filter.AmountMin)
	}
	if filter.AmountMax != nil {
		query = query.Where("amount <= ?", filter.AmountMax)
	}
	if filter.DescriptionContains != "" {
		searchPattern := "%" + strings.ToLower(filter.DescriptionContains) + "%"
		query = query.Where("LOWER(description) LIKE ?", searchPattern)
	}

	var transactionModels []model.BankTransactionModel
	result := query.Order("id ASC").Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.BankTransaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// ImportBatch inserts the transactions and the idempotency record in one
// database transaction. The unique index on (tenant_id, external_id) turns
// replays of the same external id into no-ops via ON CONFLICT DO NOTHING.
func (r *bankTransactionRepository) ImportBatch(
	ctx context.Context,
	tenantID uint,
	transactions []*entity.BankTransaction,
	record *entity.IdempotencyRecord,
) (*valueobject.ImportSummary, error) {
	summary := valueobject.NewImportSummary()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, transaction := range transactions {
			transactionModel := model.BankTransactionFromEntity(transaction)
			transactionModel.TenantID = tenantID

			var result *gorm.DB
			if transactionModel.ExternalID != nil {
				result = tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "external_id"}},
					DoNothing: true,
				}).Create(transactionModel)
			} else {
				result = tx.Create(transactionModel)
			}
			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected == 1 {
				transaction.ID = transactionModel.ID
				summary.CreatedIDs = append(summary.CreatedIDs, transactionModel.ID)
				summary.Inserted++
			} else {
				summary.Skipped++
			}
		}

		responseJSON, err := summary.CanonicalJSON()
		if err != nil {
			return err
		}
		record.ResponseJSON = responseJSON

		recordModel := model.IdempotencyRecordFromEntity(record)
		if err := tx.Create(recordModel).Error; err != nil {
			return err
		}
		record.ID = recordModel.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}
