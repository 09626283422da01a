// Package valueobject contains domain value objects for the reconciliation system.
package valueobject

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// ImportSummary is the outcome of a bulk bank-transaction import. It doubles
// as the replayed response stored in the idempotency ledger, so its canonical
// serialization must stay deterministic: fields are declared in sorted key
// order and CreatedIDs is never nil.
type ImportSummary struct {
	CreatedIDs []uint `json:"created_ids"`
	Inserted   int    `json:"inserted"`
	Skipped    int    `json:"skipped"`
}

// NewImportSummary returns an empty summary with a non-nil CreatedIDs slice
// so the canonical form always serializes the field as an array.
func NewImportSummary() *ImportSummary {
	return &ImportSummary{CreatedIDs: []uint{}}
}

// CanonicalJSON serializes the summary in its canonical form.
func (s *ImportSummary) CanonicalJSON() (string, error) {
	if s.CreatedIDs == nil {
		s.CreatedIDs = []uint{}
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ImportSummaryFromJSON restores a stored summary for replay.
func ImportSummaryFromJSON(raw string) (*ImportSummary, error) {
	summary := NewImportSummary()
	if err := json.Unmarshal([]byte(raw), summary); err != nil {
		return nil, err
	}
	if summary.CreatedIDs == nil {
		summary.CreatedIDs = []uint{}
	}
	return summary, nil
}

// SHA256Hex returns the lower-case hex SHA-256 digest of data. It is the
// fingerprint primitive for the idempotency guard.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
