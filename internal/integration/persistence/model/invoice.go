// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoice-recon/backend/internal/domain/entity"
)

// InvoiceModel represents the invoices table in the database.
type InvoiceModel struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	TenantID    uint            `gorm:"not null;index:ix_invoices_tenant_status"`
	VendorID    *uint           `gorm:"index"`
	Number      string          `gorm:"type:varchar(100);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency    string          `gorm:"type:varchar(3);not null"`
	InvoiceDate *time.Time      `gorm:"type:date"`
	Description string          `gorm:"type:text"`
	Status      string          `gorm:"type:varchar(10);not null;index:ix_invoices_tenant_status"`
	CreatedAt   time.Time       `gorm:"not null"`

	Tenant *TenantModel `gorm:"foreignKey:TenantID;references:ID"`
	Vendor *VendorModel `gorm:"foreignKey:VendorID;references:ID"`
}

// TableName returns the table name for the InvoiceModel.
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToEntity converts an InvoiceModel to a domain Invoice entity.
func (m *InvoiceModel) ToEntity() *entity.Invoice {
	return &entity.Invoice{
		ID:          m.ID,
		TenantID:    m.TenantID,
		VendorID:    m.VendorID,
		Number:      m.Number,
		Amount:      m.Amount,
		Currency:    m.Currency,
		InvoiceDate: m.InvoiceDate,
		Description: m.Description,
		Status:      entity.InvoiceStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}

// InvoiceFromEntity creates an InvoiceModel from a domain Invoice entity.
func InvoiceFromEntity(invoice *entity.Invoice) *InvoiceModel {
	return &InvoiceModel{
		ID:          invoice.ID,
		TenantID:    invoice.TenantID,
		VendorID:    invoice.VendorID,
		Number:      invoice.Number,
		Amount:      invoice.Amount,
		Currency:    invoice.Currency,
		InvoiceDate: invoice.InvoiceDate,
		Description: invoice.Description,
		Status:      string(invoice.Status),
		CreatedAt:   invoice.CreatedAt,
	}
}
