// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoice-recon/backend/internal/domain/entity"
	"github.com/invoice-recon/backend/internal/domain/valueobject"
)

// BankTransactionFilter restricts a bank-transaction listing. TenantID is
// mandatory; every other predicate is optional.
type BankTransactionFilter struct {
	TenantID            uint
	PostedStart         *time.Time
	PostedEnd           *time.Time
	AmountMin           *decimal.Decimal
	AmountMax           *decimal.Decimal
	DescriptionContains string
}

// BankTransactionRepository defines the interface for bank-transaction
// persistence operations.
type BankTransactionRepository interface {
	// FindByID retrieves a bank transaction scoped to a tenant.
	FindByID(ctx context.Context, tenantID, transactionID uint) (*entity.BankTransaction, error)

	// FindByTenant retrieves all bank transactions for a tenant, ordered by id.
	FindByTenant(ctx context.Context, tenantID uint) ([]*entity.BankTransaction, error)

	// FindByFilter retrieves bank transactions matching the filter, ordered by id.
	FindByFilter(ctx context.Context, filter BankTransactionFilter) ([]*entity.BankTransaction, error)

	// ImportBatch inserts the given transactions and the idempotency record in
	// one transaction. Rows with an external id already present for the tenant
	// are skipped, not overwritten; rows without an external id are always
	// inserted. The record's response JSON is filled with the canonical
	// serialization of the returned summary before it is stored.
	ImportBatch(
		ctx context.Context,
		tenantID uint,
		transactions []*entity.BankTransaction,
		record *entity.IdempotencyRecord,
	) (*valueobject.ImportSummary, error)
}

// IdempotencyRepository defines the interface for the idempotency ledger.
type IdempotencyRepository interface {
	// FindByKey retrieves the record for (tenant, key), or nil when the key
	// has never been used. Absence is not an error.
	FindByKey(ctx context.Context, tenantID uint, key string) (*entity.IdempotencyRecord, error)
}
