// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/invoice-recon/backend/internal/application/usecase/reconciliation"
)

// ReconcileRequestDTO represents the request for POST /reconcile. Both
// parameters are optional and fall back to server defaults.
type ReconcileRequestDTO struct {
	MaxCandidatesPerInvoice *int `json:"max_candidates_per_invoice"`
	DateWindowDays          *int `json:"date_window_days"`
}

// MatchDTO represents a match in API responses.
type MatchDTO struct {
	ID                uint    `json:"id"`
	InvoiceID         uint    `json:"invoice_id"`
	BankTransactionID uint    `json:"bank_transaction_id"`
	Score             float64 `json:"score"`
	Status            string  `json:"status"`
	CreatedAt         string  `json:"created_at"`
}

// ReconcileResponseDTO represents the response for POST /reconcile.
type ReconcileResponseDTO struct {
	Matches []MatchDTO `json:"matches"`
}

// ConfirmMatchResponseDTO represents the response for POST /matches/:id/confirm.
type ConfirmMatchResponseDTO struct {
	Match MatchDTO `json:"match"`
}

// ListMatchesResponseDTO represents the response for GET /matches.
type ListMatchesResponseDTO struct {
	Matches []MatchDTO `json:"matches"`
}

// ToMatchDTO converts a use-case match output to a MatchDTO.
func ToMatchDTO(out *reconciliation.MatchOutput) MatchDTO {
	return MatchDTO{
		ID:                out.ID,
		InvoiceID:         out.InvoiceID,
		BankTransactionID: out.BankTransactionID,
		Score:             out.Score,
		Status:            string(out.Status),
		CreatedAt:         out.CreatedAt.UTC().Format(time.RFC3339),
	}
}
