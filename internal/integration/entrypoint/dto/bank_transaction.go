// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/invoice-recon/backend/internal/application/usecase/banktransaction"
	"github.com/invoice-recon/backend/internal/domain/valueobject"
)

// ImportTransactionDTO represents one transaction row in an import request.
type ImportTransactionDTO struct {
	ExternalID  *string `json:"external_id"`
	PostedAt    string  `json:"posted_at" binding:"required"`
	Amount      string  `json:"amount" binding:"required"`
	Currency    string  `json:"currency" binding:"required"`
	Description string  `json:"description"`
}

// ImportTransactionsRequestDTO represents the request for
// POST /bank-transactions/import.
type ImportTransactionsRequestDTO struct {
	Transactions []ImportTransactionDTO `json:"transactions" binding:"required"`
}

// ImportTransactionsResponseDTO represents the import summary response. Its
// field set mirrors the canonical stored response so replays are identical.
type ImportTransactionsResponseDTO struct {
	CreatedIDs []uint `json:"created_ids"`
	Inserted   int    `json:"inserted"`
	Skipped    int    `json:"skipped"`
}

// ToImportTransactionsResponseDTO converts an import summary to the response.
func ToImportTransactionsResponseDTO(summary *valueobject.ImportSummary) ImportTransactionsResponseDTO {
	return ImportTransactionsResponseDTO{
		CreatedIDs: summary.CreatedIDs,
		Inserted:   summary.Inserted,
		Skipped:    summary.Skipped,
	}
}

// BankTransactionDTO represents a bank transaction in API responses.
type BankTransactionDTO struct {
	ID          uint    `json:"id"`
	ExternalID  *string `json:"external_id,omitempty"`
	PostedAt    string  `json:"posted_at"`
	Amount      string  `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

// ListBankTransactionsResponseDTO represents the response for
// GET /bank-transactions.
type ListBankTransactionsResponseDTO struct {
	Transactions []BankTransactionDTO `json:"transactions"`
}

// ToBankTransactionDTO converts a use-case transaction output to a DTO.
func ToBankTransactionDTO(out *banktransaction.TransactionOutput) BankTransactionDTO {
	return BankTransactionDTO{
		ID:          out.ID,
		ExternalID:  out.ExternalID,
		PostedAt:    out.PostedAt.UTC().Format(time.RFC3339),
		Amount:      out.Amount.StringFixed(2),
		Currency:    out.Currency,
		Description: out.Description,
		CreatedAt:   out.CreatedAt.UTC().Format(time.RFC3339),
	}
}
