// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoice-recon/backend/internal/domain/entity"
)

// BankTransactionModel represents the bank_transactions table in the database.
// The unique index on (tenant_id, external_id) backs idempotent imports; rows
// without an external id are exempt because NULL values never collide.
type BankTransactionModel struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	TenantID    uint            `gorm:"not null;uniqueIndex:uq_tx_tenant_external"`
	ExternalID  *string         `gorm:"type:varchar(100);uniqueIndex:uq_tx_tenant_external"`
	PostedAt    time.Time       `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency    string          `gorm:"type:varchar(3);not null"`
	Description string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`

	Tenant *TenantModel `gorm:"foreignKey:TenantID;references:ID"`
}

// TableName returns the table name for the BankTransactionModel.
func (BankTransactionModel) TableName() string {
	return "bank_transactions"
}

// ToEntity converts a BankTransactionModel to a domain BankTransaction entity.
func (m *BankTransactionModel) ToEntity() *entity.BankTransaction {
	return &entity.BankTransaction{
		ID:          m.ID,
		TenantID:    m.TenantID,
		ExternalID:  m.ExternalID,
		PostedAt:    m.PostedAt,
		Amount:      m.Amount,
		Currency:    m.Currency,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// BankTransactionFromEntity creates a BankTransactionModel from a domain
// BankTransaction entity.
func BankTransactionFromEntity(transaction *entity.BankTransaction) *BankTransactionModel {
	return &BankTransactionModel{
		ID:          transaction.ID,
		TenantID:    transaction.TenantID,
		ExternalID:  transaction.ExternalID,
		PostedAt:    transaction.PostedAt,
		Amount:      transaction.Amount,
		Currency:    transaction.Currency,
		Description: transaction.Description,
		CreatedAt:   transaction.CreatedAt,
	}
}
