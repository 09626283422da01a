// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/invoice-recon/backend/internal/domain/entity"
)

// MatchRepository defines the interface for match persistence operations.
// Multi-row mutations (ReplaceProposed, Confirm) are transactional: partial
// application is never observable.
type MatchRepository interface {
	// FindByID retrieves a match scoped to a tenant.
	FindByID(ctx context.Context, tenantID, matchID uint) (*entity.Match, error)

	// FindByTenant retrieves matches for a tenant ordered by id, optionally
	// filtered by status.
	FindByTenant(ctx context.Context, tenantID uint, status *entity.MatchStatus) ([]*entity.Match, error)

	// ReplaceProposed deletes every non-confirmed match for the tenant and
	// inserts the given proposed matches, atomically. Generated ids are filled
	// on the passed entities.
	ReplaceProposed(ctx context.Context, tenantID uint, matches []*entity.Match) error

	// HasConfirmedSharing reports whether any confirmed match for the tenant,
	// other than excludeMatchID, references the invoice or the transaction.
	HasConfirmedSharing(ctx context.Context, tenantID, invoiceID, transactionID, excludeMatchID uint) (bool, error)

	// Confirm marks the match confirmed, sets its invoice to matched and
	// deletes every other proposed match for the tenant sharing the invoice
	// or the transaction, atomically.
	Confirm(ctx context.Context, match *entity.Match) error
}
