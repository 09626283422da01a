// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/invoice-recon/backend/internal/domain/entity"
)

// IdempotencyRecordModel represents the idempotency_records table in the
// database.
type IdempotencyRecordModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	TenantID     uint      `gorm:"not null;uniqueIndex:uq_idem_tenant_key"`
	Key          string    `gorm:"type:varchar(200);not null;uniqueIndex:uq_idem_tenant_key"`
	RequestHash  string    `gorm:"type:varchar(64);not null"`
	ResponseJSON string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the IdempotencyRecordModel.
func (IdempotencyRecordModel) TableName() string {
	return "idempotency_records"
}

// ToEntity converts an IdempotencyRecordModel to a domain IdempotencyRecord
// entity.
func (m *IdempotencyRecordModel) ToEntity() *entity.IdempotencyRecord {
	return &entity.IdempotencyRecord{
		ID:           m.ID,
		TenantID:     m.TenantID,
		Key:          m.Key,
		RequestHash:  m.RequestHash,
		ResponseJSON: m.ResponseJSON,
		CreatedAt:    m.CreatedAt,
	}
}

// IdempotencyRecordFromEntity creates an IdempotencyRecordModel from a domain
// IdempotencyRecord entity.
func IdempotencyRecordFromEntity(record *entity.IdempotencyRecord) *IdempotencyRecordModel {
	return &IdempotencyRecordModel{
		ID:           record.ID,
		TenantID:     record.TenantID,
		Key:          record.Key,
		RequestHash:  record.RequestHash,
		ResponseJSON: record.ResponseJSON,
		CreatedAt:    record.CreatedAt,
	}
}
