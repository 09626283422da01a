// Package dto defines data transfer objects for API requests and responses.
package dto

import "time"

// CreateTenantRequestDTO represents the request for POST /tenants.
type CreateTenantRequestDTO struct {
	Name string `json:"name" binding:"required"`
}

// TenantDTO represents a tenant in API responses.
type TenantDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// ListTenantsResponseDTO represents the response for GET /tenants.
type ListTenantsResponseDTO struct {
	Tenants []TenantDTO `json:"tenants"`
}

// ToTenantDTO converts tenant fields to a TenantDTO.
func ToTenantDTO(id uint, name string, createdAt time.Time) TenantDTO {
	return TenantDTO{
		ID:        id,
		Name:      name,
		CreatedAt: createdAt.UTC().Format(time.RFC3339),
	}
}
