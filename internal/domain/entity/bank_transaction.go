// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction represents an imported bank statement line.
// ExternalID is the bank's natural key; transactions without one are never
// deduplicated, so the field stays a pointer to keep "absent" distinct from
// an empty string.
type BankTransaction struct {
	ID          uint
	TenantID    uint
	ExternalID  *string
	PostedAt    time.Time
	Amount      decimal.Decimal
	Currency    string
	Description string
	CreatedAt   time.Time
}

// NewBankTransaction creates a new BankTransaction entity.
func NewBankTransaction(
	tenantID uint,
	externalID *string,
	postedAt time.Time,
	amount decimal.Decimal,
	currency string,
	description string,
) *BankTransaction {
	return &BankTransaction{
		TenantID:    tenantID,
		ExternalID:  externalID,
		PostedAt:    postedAt,
		Amount:      amount,
		Currency:    currency,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}
