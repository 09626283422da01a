// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// TenantLock serializes reconciliation runs per tenant. Runs for different
// tenants never contend.
type TenantLock interface {
	// Acquire takes the lock for a tenant and returns a release function.
	// It fails immediately when the lock is already held.
	Acquire(ctx context.Context, tenantID uint) (release func(), err error)
}
