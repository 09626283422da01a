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

// matchRepository implements the adapter.MatchRepository interface.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository instance.
func NewMatchRepository(db *gorm.DB) adapter.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// FindByID retrieves a match scoped to a tenant.
func (r *matchRepository) FindByID(ctx context.Context, tenantID, matchID uint) (*entity.Match, error) {
	var matchModel model.MatchModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", matchID, tenantID).
		First(&matchModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMatchNotFound
		}
		return nil, result.Error
	}
	return matchModel.ToEntity(), nil
}

// FindByTenant retrieves matches for a tenant ordered by id, optionally
// filtered by status.
func (r *matchRepository) FindByTenant(ctx context.Context, tenantID uint, status *entity.MatchStatus) ([]*entity.Match, error) {
	query := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var matchModels []model.MatchModel
	result := query.Order("id ASC").Find(&matchModels)
	if result.Error != nil {
		return nil, result.Error
	}

	matches := make([]*entity.Match, len(matchModels))
	for i, mm := range matchModels {
		matches[i] = mm.ToEntity()
	}
	return matches, nil
}

// ReplaceProposed deletes every non-confirmed match for the tenant and
// inserts the given proposed matches in one transaction.
func (r *matchRepository) ReplaceProposed(ctx context.Context, tenantID uint, matches []*entity.Match) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tenant_id = ? AND status != ?", tenantID, string(entity.MatchStatusConfirmed)).
			Delete(&model.MatchModel{}).Error; err != nil {
			return err
		}

		for _, match := range matches {
			matchModel := model.MatchFromEntity(match)
			matchModel.TenantID = tenantID
			if err := tx.Create(matchModel).Error; err != nil {
				return err
			}
			match.ID = matchModel.ID
		}
		return nil
	})
}

// HasConfirmedSharing reports whether a confirmed match other than
// excludeMatchID references the invoice or the transaction.
func (r *matchRepository) HasConfirmedSharing(ctx context.Context, tenantID, invoiceID, transactionID, excludeMatchID uint) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.MatchModel{}).
		Where("tenant_id = ? AND status = ? AND id != ?", tenantID, string(entity.MatchStatusConfirmed), excludeMatchID).
		Where("invoice_id = ? OR bank_transaction_id = ?", invoiceID, transactionID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Confirm marks the match confirmed, sets its invoice to matched and removes
// every competing proposed match in one transaction.
func (r *matchRepository) Confirm(ctx context.Context, match *entity.Match) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.MatchModel{}).
			Where("id = ? AND tenant_id = ?", match.ID, match.TenantID).
			Update("status", string(entity.MatchStatusConfirmed))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrMatchNotFound
		}

		if err := tx.Model(&model.InvoiceModel{}).
			Where("id = ? AND tenant_id = ?", match.InvoiceID, match.TenantID).
			Update("status", string(entity.InvoiceStatusMatched)).Error; err != nil {
			return err
		}

		if err := tx.Where("tenant_id = ? AND status = ? AND id != ?", match.TenantID, string(entity.MatchStatusProposed), match.ID).
			Where("invoice_id = ? OR bank_transaction_id = ?", match.InvoiceID, match.BankTransactionID).
			Delete(&model.MatchModel{}).Error; err != nil {
			return err
		}

		match.Status = entity.MatchStatusConfirmed
		return nil
	})
}
