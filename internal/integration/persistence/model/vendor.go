// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/invoice-recon/backend/internal/domain/entity"
)

// VendorModel represents the vendors table in the database.
type VendorModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	TenantID  uint      `gorm:"not null;index"`
	Name      string    `gorm:"type:varchar(200);not null"`
	CreatedAt time.Time `gorm:"not null"`

	Tenant *TenantModel `gorm:"foreignKey:TenantID;references:ID"`
}

// TableName returns the table name for the VendorModel.
func (VendorModel) TableName() string {
	return "vendors"
}

// ToEntity converts a VendorModel to a domain Vendor entity.
func (m *VendorModel) ToEntity() *entity.Vendor {
	return &entity.Vendor{
		ID:        m.ID,
		TenantID:  m.TenantID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// VendorFromEntity creates a VendorModel from a domain Vendor entity.
func VendorFromEntity(vendor *entity.Vendor) *VendorModel {
	return &VendorModel{
		ID:        vendor.ID,
		TenantID:  vendor.TenantID,
		Name:      vendor.Name,
		CreatedAt: vendor.CreatedAt,
	}
}
