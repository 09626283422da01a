// Package banktransaction contains bank-transaction import and listing use cases.
package banktransaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoice-recon/backend/internal/application/adapter"
	"github.com/invoice-recon/backend/internal/domain/entity"
	domainerror "github.com/invoice-recon/backend/internal/domain/error"
	"github.com/invoice-recon/backend/internal/domain/valueobject"
)

// TransactionInput represents one bank transaction in an import payload.
type TransactionInput struct {
	ExternalID  *string
	PostedAt    time.Time
	Amount      decimal.Decimal
	Currency    string
	Description string
}

// ImportTransactionsInput represents the input for a bulk import.
type ImportTransactionsInput struct {
	TenantID       uint
	IdempotencyKey string
	Transactions   []TransactionInput
}

// ImportTransactionsOutput represents the outcome of a bulk import.
// Replayed is true when the response was served from the idempotency ledger
// without any new writes.
type ImportTransactionsOutput struct {
	Summary  *valueobject.ImportSummary
	Replayed bool
}

// ImportTransactionsUseCase handles idempotent bulk import of bank transactions.
type ImportTransactionsUseCase struct {
	transactionRepo adapter.BankTransactionRepository
	idempotencyRepo adapter.IdempotencyRepository
}

// NewImportTransactionsUseCase creates a new ImportTransactionsUseCase instance.
func NewImportTransactionsUseCase(
	transactionRepo adapter.BankTransactionRepository,
	idempotencyRepo adapter.IdempotencyRepository,
) *ImportTransactionsUseCase {
	return &ImportTransactionsUseCase{
		transactionRepo: transactionRepo,
		idempotencyRepo: idempotencyRepo,
	}
}

// Execute performs the import. Retrying the same (tenant, key, payload) is
// safe: the first successful call commits the rows together with the
// idempotency record, and every later call replays the stored response.
func (uc *ImportTransactionsUseCase) Execute(ctx context.Context, input ImportTransactionsInput) (*ImportTransactionsOutput, error) {
	if strings.TrimSpace(input.IdempotencyKey) == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingIdempotencyKey,
			"idempotency key is required",
			domainerror.ErrMissingIdempotencyKey,
		)
	}

	for _, t := range input.Transactions {
		if !t.Amount.IsPositive() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				"transaction amount must be positive",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		if len(t.Currency) != 3 {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionCurrency,
				"currency must be a 3-letter code",
				domainerror.ErrInvalidTransactionCurrency,
			)
		}
	}

	fingerprint, err := fingerprintTransactions(input.Transactions)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint import payload: %w", err)
	}

	existing, err := uc.idempotencyRepo.FindByKey(ctx, input.TenantID, input.IdempotencyKey)
	if err != nil {
		return nil, fmt.Errorf("failed to look up idempotency record: %w", err)
	}
	if existing != nil {
		if existing.RequestHash != fingerprint {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeIdempotencyConflict,
				"idempotency key reused with different payload",
				domainerror.ErrIdempotencyConflict,
			)
		}

		// Replay: return the stored response unchanged, no new writes.
		summary, err := valueobject.ImportSummaryFromJSON(existing.ResponseJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to decode stored import response: %w", err)
		}

		slog.Info("Import replayed from idempotency ledger",
			"tenant_id", input.TenantID,
			"idempotency_key", input.IdempotencyKey,
		)

		return &ImportTransactionsOutput{Summary: summary, Replayed: true}, nil
	}

	transactions := make([]*entity.BankTransaction, len(input.Transactions))
	for i, t := range input.Transactions {
		transactions[i] = entity.NewBankTransaction(
			input.TenantID,
			t.ExternalID,
			t.PostedAt,
			t.Amount,
			t.Currency,
			t.Description,
		)
	}

	record := entity.NewIdempotencyRecord(input.TenantID, input.IdempotencyKey, fingerprint)

	summary, err := uc.transactionRepo.ImportBatch(ctx, input.TenantID, transactions, record)
	if err != nil {
		return nil, fmt.Errorf("failed to import bank transactions: %w", err)
	}

	slog.Info("Bank transactions imported",
		"tenant_id", input.TenantID,
		"inserted", summary.Inserted,
		"skipped", summary.Skipped,
	)

	return &ImportTransactionsOutput{Summary: summary, Replayed: false}, nil
}
