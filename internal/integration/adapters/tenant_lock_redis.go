// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	domainerror "github.com/invoice-recon/backend/internal/domain/error"
)

// RedisTenantLock implements adapter.TenantLock on Redis so the per-tenant
// reconciliation lock holds across instances. The TTL bounds how long a
// crashed holder can block other instances.
type RedisTenantLock struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTenantLock creates a new Redis-backed tenant lock instance.
func NewRedisTenantLock(client *redis.Client, ttl time.Duration) *RedisTenantLock {
	return &RedisTenantLock{
		client: client,
		ttl:    ttl,
	}
}

// Acquire takes the lock for the tenant via SET NX or fails immediately when
// it is held by another run.
func (l *RedisTenantLock) Acquire(ctx context.Context, tenantID uint) (func(), error) {
	key := lockKey(tenantID)

	acquired, err := l.client.SetNX(ctx, key, "1", l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire reconcile lock: %w", err)
	}
	if !acquired {
		return nil, domainerror.NewMatchError(
			domainerror.ErrCodeReconcileInProgress,
			"reconciliation already running for tenant",
			domainerror.ErrReconcileInProgress,
		)
	}

	release := func() {
		// Release on a fresh context so cancellation of the request does not
		// leave the lock held until the TTL expires.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := l.client.Del(releaseCtx, key).Err(); err != nil {
			slog.Warn("Failed to release reconcile lock", "tenant_id", tenantID, "error", err)
		}
	}
	return release, nil
}

func lockKey(tenantID uint) string {
	return fmt.Sprintf("reconcile:lock:%d", tenantID)
}
