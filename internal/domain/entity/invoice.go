// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusOpen    InvoiceStatus = "open"
	InvoiceStatusMatched InvoiceStatus = "matched"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Invoice represents a receivable document awaiting a bank transaction match.
// InvoiceDate and VendorID are optional; a nil InvoiceDate disables the date
// component of scoring for this invoice.
type Invoice struct {
	ID          uint
	TenantID    uint
	VendorID    *uint
	Number      string
	Amount      decimal.Decimal
	Currency    string
	InvoiceDate *time.Time
	Description string
	Status      InvoiceStatus
	CreatedAt   time.Time
}

// NewInvoice creates a new open Invoice entity.
func NewInvoice(
	tenantID uint,
	vendorID *uint,
	number string,
	amount decimal.Decimal,
	currency string,
	invoiceDate *time.Time,
	description string,
) *Invoice {
	return &Invoice{
		TenantID:    tenantID,
		VendorID:    vendorID,
		Number:      number,
		Amount:      amount,
		Currency:    currency,
		InvoiceDate: invoiceDate,
		Description: description,
		Status:      InvoiceStatusOpen,
		CreatedAt:   time.Now().UTC(),
	}
}
