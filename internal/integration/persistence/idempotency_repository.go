// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/invoice-recon/backend/internal/application/adapter"
	"github.com/invoice-recon/backend/internal/domain/entity"
	"github.com/invoice-recon/backend/internal/integration/persistence/model"
)

// idempotencyRepository implements the adapter.IdempotencyRepository interface.
type idempotencyRepository struct {
	db *gorm.DB
}

// NewIdempotencyRepository creates a new idempotency repository instance.
func NewIdempotencyRepository(db *gorm.DB) adapter.IdempotencyRepository {
	return &idempotencyRepository{
		db: db,
	}
}

// FindByKey retrieves the record for (tenant, key). Absence is not an error.
func (r *idempotencyRepository) FindByKey(ctx context.Context, tenantID uint, key string) (*entity.IdempotencyRecord, error) {
	var recordModel model.IdempotencyRecordModel
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND key = ?", tenantID, key).
		First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}
