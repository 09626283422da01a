// Package banktransaction contains bank-transaction import and listing use cases.
package banktransaction

import (
	"encoding/json"
	"time"

	"github.com/invoice-recon/backend/internal/domain/valueobject"
)

// canonicalTransaction is the stable serialization of one imported row used
// for fingerprinting. Fields are declared in sorted key order, amounts are
// fixed to two fraction digits and timestamps to RFC3339 UTC, so the same
// payload always hashes to the same fingerprint regardless of how the caller
// formatted it.
type canonicalTransaction struct {
	Amount      string  `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
	ExternalID  *string `json:"external_id"`
	PostedAt    string  `json:"posted_at"`
}

// fingerprintTransactions hashes the canonical form of the import payload.
func fingerprintTransactions(transactions []TransactionInput) (string, error) {
	canonical := make([]canonicalTransaction, len(transactions))
	for i, t := range transactions {
		canonical[i] = canonicalTransaction{
			Amount:      t.Amount.StringFixed(2),
			Currency:    t.Currency,
			Description: t.Description,
			ExternalID:  t.ExternalID,
			PostedAt:    t.PostedAt.UTC().Format(time.RFC3339),
		}
	}

	raw, err := json.Marshal(canonical)
	if err != nil {
		return "", err
	}
	return valueobject.SHA256Hex(raw), nil
}
