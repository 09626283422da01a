// Package banktransaction contains bank-transaction import and listing use cases.
package banktransaction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFingerprintTransactions(t *testing.T) {
	extID := "bank-row-1"
	base := []TransactionInput{
		{
			ExternalID:  &extID,
			PostedAt:    time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
			Amount:      decimal.NewFromFloat(100.50),
			Currency:    "EUR",
			Description: "acme hosting",
		},
	}

	t.Run("identical payloads hash identically", func(t *testing.T) {
		first, err := fingerprintTransactions(base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := fingerprintTransactions(base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first != second {
			t.Errorf("expected identical fingerprints, got %s and %s", first, second)
		}
	})

	t.Run("amount formatting does not change the fingerprint", func(t *testing.T) {
		reformatted := []TransactionInput{base[0]}
		reformatted[0].Amount = decimal.RequireFromString("100.5")

		first, _ := fingerprintTransactions(base)
		second, err := fingerprintTransactions(reformatted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first != second {
			t.Error("expected 100.50 and 100.5 to fingerprint identically")
		}
	})

	t.Run("timezone does not change the fingerprint", func(t *testing.T) {
		shifted := []TransactionInput{base[0]}
		shifted[0].PostedAt = base[0].PostedAt.In(time.FixedZone("CET", 3600))

		first, _ := fingerprintTransactions(base)
		second, err := fingerprintTransactions(shifted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first != second {
			t.Error("expected UTC and CET renderings of the same instant to fingerprint identically")
		}
	})

	t.Run("different payloads hash differently", func(t *testing.T) {
		changed := []TransactionInput{base[0]}
		changed[0].Amount = decimal.NewFromFloat(100.51)

		first, _ := fingerprintTransactions(base)
		second, err := fingerprintTransactions(changed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first == second {
			t.Error("expected different payloads to fingerprint differently")
		}
	})

	t.Run("nil and empty external id hash differently", func(t *testing.T) {
		empty := ""
		withNil := []TransactionInput{base[0]}
		withNil[0].ExternalID = nil
		withEmpty := []TransactionInput{base[0]}
		withEmpty[0].ExternalID = &empty

		first, _ := fingerprintTransactions(withNil)
		second, err := fingerprintTransactions(withEmpty)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first == second {
			t.Error("expected nil and empty external ids to fingerprint differently")
		}
	})

	t.Run("row order changes the fingerprint", func(t *testing.T) {
		other := TransactionInput{
			PostedAt:    time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.NewFromFloat(40.00),
			Currency:    "EUR",
			Description: "coffee",
		}

		first, _ := fingerprintTransactions([]TransactionInput{base[0], other})
		second, err := fingerprintTransactions([]TransactionInput{other, base[0]})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first == second {
			t.Error("expected reordered payloads to fingerprint differently")
		}
	})
}
