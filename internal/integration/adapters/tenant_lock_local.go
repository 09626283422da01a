// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"sync"

	domainerror "github.com/invoice-recon/backend/internal/domain/error"
)

// LocalTenantLock implements adapter.TenantLock with an in-process mutex map.
// Suitable for single-instance deployments and tests.
type LocalTenantLock struct {
	mu   sync.Mutex
	held map[uint]bool
}

// NewLocalTenantLock creates a new in-process tenant lock instance.
func NewLocalTenantLock() *LocalTenantLock {
	return &LocalTenantLock{
		held: make(map[uint]bool),
	}
}

// Acquire takes the lock for the tenant or fails immediately when it is held.
func (l *LocalTenantLock) Acquire(ctx context.Context, tenantID uint) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.held[tenantID] {
		return nil, domainerror.NewMatchError(
			domainerror.ErrCodeReconcileInProgress,
			"reconciliation already running for tenant",
			domainerror.ErrReconcileInProgress,
		)
	}
	l.held[tenantID] = true

	release := func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, tenantID)
	}
	return release, nil
}
