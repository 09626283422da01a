// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// IdempotencyRecord is the cached-response ledger guarding bulk imports.
// One record exists per (tenant, key); it is written once and never mutated.
// RequestHash fingerprints the canonicalized request payload so a key reused
// with a different payload can be rejected instead of replayed.
type IdempotencyRecord struct {
	ID           uint
	TenantID     uint
	Key          string
	RequestHash  string
	ResponseJSON string
	CreatedAt    time.Time
}

// NewIdempotencyRecord creates a new IdempotencyRecord entity. ResponseJSON
// is filled by the storage layer once the import outcome is known.
func NewIdempotencyRecord(tenantID uint, key, requestHash string) *IdempotencyRecord {
	return &IdempotencyRecord{
		TenantID:    tenantID,
		Key:         key,
		RequestHash: requestHash,
		CreatedAt:   time.Now().UTC(),
	}
}
