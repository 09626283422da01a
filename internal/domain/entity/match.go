// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// MatchStatus represents the lifecycle state of a match.
type MatchStatus string

const (
	MatchStatusProposed  MatchStatus = "proposed"
	MatchStatusConfirmed MatchStatus = "confirmed"
	MatchStatusRejected  MatchStatus = "rejected"
)

// Match pairs one invoice with one bank transaction at a given score.
// Proposed matches are speculative and fully recomputed on every
// reconciliation run; confirmed matches are permanent and exclusive per
// invoice and per transaction.
type Match struct {
	ID                uint
	TenantID          uint
	InvoiceID         uint
	BankTransactionID uint
	Score             float64
	Status            MatchStatus
	CreatedAt         time.Time
}

// NewProposedMatch creates a new proposed Match entity.
func NewProposedMatch(tenantID, invoiceID, bankTransactionID uint, score float64) *Match {
	return &Match{
		TenantID:          tenantID,
		InvoiceID:         invoiceID,
		BankTransactionID: bankTransactionID,
		Score:             score,
		Status:            MatchStatusProposed,
		CreatedAt:         time.Now().UTC(),
	}
}
