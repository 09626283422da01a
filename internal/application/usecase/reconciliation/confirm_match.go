// Package reconciliation contains match proposal and confirmation use cases.
package reconciliation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/invoice-recon/backend/internal/application/adapter"
	"github.com/invoice-recon/backend/internal/domain/entity"
	domainerror "github.com/invoice-recon/backend/internal/domain/error"
)

// ConfirmMatchInput represents the input for confirming a proposed match.
type ConfirmMatchInput struct {
	TenantID uint
	MatchID  uint
}

// ConfirmMatchOutput represents the confirmed match.
type ConfirmMatchOutput struct {
	Match *MatchOutput
}

// ConfirmMatchUseCase handles confirming a proposed match. Confirmation is
// exclusive: at most one confirmed match may reference a given invoice or a
// given transaction, tenant-wide.
type ConfirmMatchUseCase struct {
	matchRepo adapter.MatchRepository
}

// NewConfirmMatchUseCase creates a new ConfirmMatchUseCase instance.
func NewConfirmMatchUseCase(matchRepo adapter.MatchRepository) *ConfirmMatchUseCase {
	return &ConfirmMatchUseCase{matchRepo: matchRepo}
}

// Execute confirms the match. On success the match is confirmed, its invoice
// moves to matched and every competing proposed match touching the same
// invoice or transaction is removed, all in one storage transaction.
func (uc *ConfirmMatchUseCase) Execute(ctx context.Context, input ConfirmMatchInput) (*ConfirmMatchOutput, error) {
	match, err := uc.matchRepo.FindByID(ctx, input.TenantID, input.MatchID)
	if err != nil {
		if errors.Is(err, domainerror.ErrMatchNotFound) {
			return nil, domainerror.NewMatchError(
				domainerror.ErrCodeMatchNotFound,
				"match not found",
				domainerror.ErrMatchNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load match: %w", err)
	}

	if match.Status != entity.MatchStatusProposed {
		return nil, domainerror.NewMatchError(
			domainerror.ErrCodeMatchNotProposed,
			"only proposed matches can be confirmed",
			domainerror.ErrMatchNotProposed,
		)
	}

	conflict, err := uc.matchRepo.HasConfirmedSharing(
		ctx, input.TenantID, match.InvoiceID, match.BankTransactionID, match.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to check confirmed matches: %w", err)
	}
	if conflict {
		return nil, domainerror.NewMatchError(
			domainerror.ErrCodeMatchConflict,
			"invoice or transaction already has a confirmed match",
			domainerror.ErrMatchConflict,
		)
	}

	if err := uc.matchRepo.Confirm(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to confirm match: %w", err)
	}

	slog.Info("Match confirmed",
		"tenant_id", input.TenantID,
		"match_id", match.ID,
		"invoice_id", match.InvoiceID,
		"bank_transaction_id", match.BankTransactionID,
	)

	return &ConfirmMatchOutput{Match: matchToOutput(match)}, nil
}
