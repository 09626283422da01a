// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/invoice-recon/backend/internal/domain/entity"
)

// MatchModel represents the matches table in the database.
type MatchModel struct {
	ID                uint      `gorm:"primaryKey;autoIncrement"`
	TenantID          uint      `gorm:"not null;uniqueIndex:uq_match_triplet;index"`
	InvoiceID         uint      `gorm:"not null;uniqueIndex:uq_match_triplet;index"`
	BankTransactionID uint      `gorm:"not null;uniqueIndex:uq_match_triplet;index"`
	Score             float64   `gorm:"not null"`
	Status            string    `gorm:"type:varchar(10);not null;index"`
	CreatedAt         time.Time `gorm:"not null"`

	Invoice         *InvoiceModel         `gorm:"foreignKey:InvoiceID;references:ID"`
	BankTransaction *BankTransactionModel `gorm:"foreignKey:BankTransactionID;references:ID"`
}

// TableName returns the table name for the MatchModel.
func (MatchModel) TableName() string {
	return "matches"
}

// ToEntity converts a MatchModel to a domain Match entity.
func (m *MatchModel) ToEntity() *entity.Match {
	return &entity.Match{
		ID:                m.ID,
		TenantID:          m.TenantID,
		InvoiceID:         m.InvoiceID,
		BankTransactionID: m.BankTransactionID,
		Score:             m.Score,
		Status:            entity.MatchStatus(m.Status),
		CreatedAt:         m.CreatedAt,
	}
}

// MatchFromEntity creates a MatchModel from a domain Match entity.
func MatchFromEntity(match *entity.Match) *MatchModel {
	return &MatchModel{
		ID:                match.ID,
		TenantID:          match.TenantID,
		InvoiceID:         match.InvoiceID,
		BankTransactionID: match.BankTransactionID,
		Score:             match.Score,
		Status:            string(match.Status),
		CreatedAt:         match.CreatedAt,
	}
}
