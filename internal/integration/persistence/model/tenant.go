// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/invoice-recon/backend/internal/domain/entity"
)

// TenantModel represents the tenants table in the database.
type TenantModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(200);not null;uniqueIndex:uq_tenants_name"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the TenantModel.
func (TenantModel) TableName() string {
	return "tenants"
}

// ToEntity converts a TenantModel to a domain Tenant entity.
func (m *TenantModel) ToEntity() *entity.Tenant {
	return &entity.Tenant{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// TenantFromEntity creates a TenantModel from a domain Tenant entity.
func TenantFromEntity(tenant *entity.Tenant) *TenantModel {
	return &TenantModel{
		ID:        tenant.ID,
		Name:      tenant.Name,
		CreatedAt: tenant.CreatedAt,
	}
}
