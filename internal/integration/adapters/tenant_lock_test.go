// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/invoice-recon/backend/internal/domain/error"
)

func TestLocalTenantLock(t *testing.T) {
	ctx := context.Background()

	t.Run("acquire and release", func(t *testing.T) {
		lock := NewLocalTenantLock()

		release, err := lock.Acquire(ctx, 1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		release()

		release, err = lock.Acquire(ctx, 1)
		if err != nil {
			t.Fatalf("expected reacquire after release, got %v", err)
		}
		release()
	})

	t.Run("second acquire fails while held", func(t *testing.T) {
		lock := NewLocalTenantLock()

		release, err := lock.Acquire(ctx, 1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer release()

		_, err = lock.Acquire(ctx, 1)
		if !errors.Is(err, domainerror.ErrReconcileInProgress) {
			t.Errorf("expected ErrReconcileInProgress, got %v", err)
		}
	})

	t.Run("tenants do not contend", func(t *testing.T) {
		lock := NewLocalTenantLock()

		releaseA, err := lock.Acquire(ctx, 1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer releaseA()

		releaseB, err := lock.Acquire(ctx, 2)
		if err != nil {
			t.Fatalf("expected another tenant to acquire, got %v", err)
		}
		releaseB()
	})
}

func setupRedisLock(t *testing.T, ttl time.Duration) (*RedisTenantLock, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisTenantLock(client, ttl), server
}

func TestRedisTenantLock(t *testing.T) {
	ctx := context.Background()

	t.Run("acquire sets the key and release deletes it", func(t *testing.T) {
		lock, server := setupRedisLock(t, 30*time.Second)

		release, err := lock.Acquire(ctx, 1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !server.Exists("reconcile:lock:1") {
			t.Error("expected the lock key to exist while held")
		}

		release()
		if server.Exists("reconcile:lock:1") {
			t.Error("expected the lock key to be deleted on release")
		}
	})

	t.Run("second acquire fails while held", func(t *testing.T) {
		lock, _ := setupRedisLock(t, 30*time.Second)

		release, err := lock.Acquire(ctx, 1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer release()

		_, err = lock.Acquire(ctx, 1)
		if !errors.Is(err, domainerror.ErrReconcileInProgress) {
			t.Errorf("expected ErrReconcileInProgress, got %v", err)
		}
	})

	t.Run("tenants use distinct keys", func(t *testing.T) {
		lock, server := setupRedisLock(t, 30*time.Second)

		releaseA, err := lock.Acquire(ctx, 1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer releaseA()

		releaseB, err := lock.Acquire(ctx, 2)
		if err != nil {
			t.Fatalf("expected another tenant to acquire, got %v", err)
		}
		defer releaseB()

		if !server.Exists("reconcile:lock:1") || !server.Exists("reconcile:lock:2") {
			t.Error("expected one lock key per tenant")
		}
	})

	t.Run("lock expires after the ttl", func(t *testing.T) {
		lock, server := setupRedisLock(t, time.Second)

		if _, err := lock.Acquire(ctx, 1); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		server.FastForward(2 * time.Second)

		release, err := lock.Acquire(ctx, 1)
		if err != nil {
			t.Fatalf("expected acquire after expiry, got %v", err)
		}
		release()
	})
}
