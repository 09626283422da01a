// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// Tenant is the isolation boundary of the system. Every other entity is scoped
// to exactly one tenant, and every operation filters by tenant id.
type Tenant struct {
	ID        uint
	Name      string
	CreatedAt time.Time
}

// NewTenant creates a new Tenant entity.
func NewTenant(name string) *Tenant {
	return &Tenant{
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// Vendor represents a supplier a tenant receives invoices from.
type Vendor struct {
	ID        uint
	TenantID  uint
	Name      string
	CreatedAt time.Time
}
