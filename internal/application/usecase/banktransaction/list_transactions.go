// Package banktransaction contains bank-transaction import and listing use cases.
package banktransaction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoice-recon/backend/internal/application/adapter"
)

// ListTransactionsInput represents the input for listing bank transactions.
type ListTransactionsInput struct {
	TenantID            uint
	PostedStart         *time.Time
	PostedEnd           *time.Time
	AmountMin           *decimal.Decimal
	AmountMax           *decimal.Decimal
	DescriptionContains string
}

// TransactionOutput represents a bank transaction in use-case output.
type TransactionOutput struct {
	ID          uint
	ExternalID  *string
	PostedAt    time.Time
	Amount      decimal.Decimal
	Currency    string
	Description string
	CreatedAt   time.Time
}

// ListTransactionsOutput represents the listing result.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
}

// ListTransactionsUseCase handles bank-transaction listing.
type ListTransactionsUseCase struct {
	transactionRepo adapter.BankTransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.BankTransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute lists the tenant's bank transactions matching the filters.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.BankTransactionFilter{
		TenantID:            input.TenantID,
		PostedStart:         input.PostedStart,
		PostedEnd:           input.PostedEnd,
		AmountMin:           input.AmountMin,
		AmountMax:           input.AmountMax,
		DescriptionContains: input.DescriptionContains,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list bank transactions: %w", err)
	}

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, len(transactions)),
	}
	for i, t := range transactions {
		output.Transactions[i] = &TransactionOutput{
			ID:          t.ID,
			ExternalID:  t.ExternalID,
			PostedAt:    t.PostedAt,
			Amount:      t.Amount,
			Currency:    t.Currency,
			Description: t.Description,
			CreatedAt:   t.CreatedAt,
		}
	}

	return output, nil
}
