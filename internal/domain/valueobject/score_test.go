// Package valueobject contains domain value objects for the reconciliation system.
package valueobject

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestComputeScore(t *testing.T) {
	config := DefaultScoringConfig()

	t.Run("exact amount same day matching text yields maximum score", func(t *testing.T) {
		breakdown := ComputeScore(
			decimal.NewFromFloat(100.00), date(2024, 3, 10), "acme hosting march",
			decimal.NewFromFloat(100.00), time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC), "acme hosting march",
			config,
		)

		if breakdown.AmountScore != 0.60 {
			t.Errorf("expected amount score 0.60, got %v", breakdown.AmountScore)
		}
		if breakdown.DateScore != 0.20 {
			t.Errorf("expected date score 0.20, got %v", breakdown.DateScore)
		}
		if breakdown.TextScore != 0.20 {
			t.Errorf("expected text score 0.20, got %v", breakdown.TextScore)
		}
		if breakdown.Total < 0.999 || breakdown.Total > 1.0 {
			t.Errorf("expected total of 1.0 up to rounding, got %v", breakdown.Total)
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		first := ComputeScore(
			decimal.NewFromFloat(250.50), date(2024, 5, 1), "utilities april",
			decimal.NewFromFloat(250.50), time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), "utilities bill",
			config,
		)
		second := ComputeScore(
			decimal.NewFromFloat(250.50), date(2024, 5, 1), "utilities april",
			decimal.NewFromFloat(250.50), time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), "utilities bill",
			config,
		)

		if first != second {
			t.Errorf("expected identical breakdowns, got %+v and %+v", first, second)
		}
	})

	t.Run("total stays within 0 and 1", func(t *testing.T) {
		breakdown := ComputeScore(
			decimal.NewFromFloat(10.00), date(2024, 1, 1), "a b c",
			decimal.NewFromFloat(9999.00), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), "x y z",
			config,
		)
		if breakdown.Total < 0 || breakdown.Total > 1 {
			t.Errorf("total out of range: %v", breakdown.Total)
		}
	})

	t.Run("close amount within tolerance scores 0.40", func(t *testing.T) {
		// 1% of 100.00 is 1.00, so a 0.80 difference is tolerated.
		breakdown := ComputeScore(
			decimal.NewFromFloat(100.00), nil, "",
			decimal.NewFromFloat(100.80), time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), "",
			config,
		)
		if breakdown.AmountScore != 0.40 {
			t.Errorf("expected amount score 0.40, got %v", breakdown.AmountScore)
		}
	})

	t.Run("amount outside tolerance scores zero", func(t *testing.T) {
		breakdown := ComputeScore(
			decimal.NewFromFloat(100.00), nil, "",
			decimal.NewFromFloat(105.00), time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), "",
			config,
		)
		if breakdown.AmountScore != 0 {
			t.Errorf("expected amount score 0, got %v", breakdown.AmountScore)
		}
	})

	t.Run("small invoices keep the one-cent tolerance floor", func(t *testing.T) {
		breakdown := ComputeScore(
			decimal.NewFromFloat(0.50), nil, "",
			decimal.NewFromFloat(0.51), time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), "",
			config,
		)
		if breakdown.AmountScore != 0.40 {
			t.Errorf("expected amount score 0.40, got %v", breakdown.AmountScore)
		}
	})

	t.Run("date outside window scores zero", func(t *testing.T) {
		breakdown := ComputeScore(
			decimal.NewFromFloat(100.00), date(2024, 3, 1), "",
			decimal.NewFromFloat(100.00), time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), "",
			config,
		)
		if breakdown.DateScore != 0 {
			t.Errorf("expected date score 0, got %v", breakdown.DateScore)
		}
	})

	t.Run("date score decays linearly within window", func(t *testing.T) {
		breakdown := ComputeScore(
			decimal.NewFromFloat(100.00), date(2024, 3, 1), "",
			decimal.NewFromFloat(100.00), time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), "",
			config,
		)
		// One day of a three-day window leaves two thirds of the weight.
		expected := 0.20 * (1.0 - 1.0/3.0)
		if diff := breakdown.DateScore - expected; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("expected date score %v, got %v", expected, breakdown.DateScore)
		}
	})

	t.Run("missing invoice date zeroes the date component", func(t *testing.T) {
		breakdown := ComputeScore(
			decimal.NewFromFloat(100.00), nil, "acme",
			decimal.NewFromFloat(100.00), time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), "acme",
			config,
		)
		if breakdown.DateScore != 0 {
			t.Errorf("expected date score 0, got %v", breakdown.DateScore)
		}
	})

	t.Run("ranks candidates by combined evidence", func(t *testing.T) {
		invoiceAmount := decimal.NewFromFloat(1200.00)
		invoiceDate := date(2024, 4, 15)
		invoiceDesc := "acme consulting april retainer"

		// Exact amount, same day, overlapping text.
		a := ComputeScore(invoiceAmount, invoiceDate, invoiceDesc,
			decimal.NewFromFloat(1200.00), time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
			"acme consulting retainer", config)
		// Exact amount but far date and unrelated text.
		b := ComputeScore(invoiceAmount, invoiceDate, invoiceDesc,
			decimal.NewFromFloat(1200.00), time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			"transfer savings", config)
		// Close amount, near date, some overlap.
		c := ComputeScore(invoiceAmount, invoiceDate, invoiceDesc,
			decimal.NewFromFloat(1195.00), time.Date(2024, 4, 16, 0, 0, 0, 0, time.UTC),
			"acme consulting", config)

		if !(a.Total > c.Total && c.Total > b.Total) {
			t.Errorf("expected a > c > b, got a=%v c=%v b=%v", a.Total, c.Total, b.Total)
		}
	})
}

func TestTokenJaccard(t *testing.T) {
	t.Run("identical strings yield 1", func(t *testing.T) {
		if got := TokenJaccard("acme hosting", "acme hosting"); got != 1.0 {
			t.Errorf("expected 1.0, got %v", got)
		}
	})

	t.Run("case and extra whitespace are ignored", func(t *testing.T) {
		if got := TokenJaccard("Acme  Hosting", "acme hosting"); got != 1.0 {
			t.Errorf("expected 1.0, got %v", got)
		}
	})

	t.Run("disjoint strings yield 0", func(t *testing.T) {
		if got := TokenJaccard("alpha beta", "gamma delta"); got != 0.0 {
			t.Errorf("expected 0.0, got %v", got)
		}
	})

	t.Run("empty side yields 0", func(t *testing.T) {
		if got := TokenJaccard("", "acme"); got != 0.0 {
			t.Errorf("expected 0.0, got %v", got)
		}
	})

	t.Run("partial overlap is the intersection over union", func(t *testing.T) {
		// {acme, hosting} vs {acme, cloud}: 1 shared of 3 distinct tokens.
		expected := 1.0 / 3.0
		if got := TokenJaccard("acme hosting", "acme cloud"); got != expected {
			t.Errorf("expected %v, got %v", expected, got)
		}
	})
}

func TestDateDistanceDays(t *testing.T) {
	t.Run("time of day never shifts the distance", func(t *testing.T) {
		invoiceDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		postedAt := time.Date(2024, 3, 11, 23, 59, 0, 0, time.UTC)
		if got := DateDistanceDays(invoiceDate, postedAt); got != 1 {
			t.Errorf("expected 1, got %d", got)
		}
	})

	t.Run("is symmetric", func(t *testing.T) {
		a := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		b := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		if DateDistanceDays(a, b) != DateDistanceDays(b, a) {
			t.Error("expected symmetric distance")
		}
	})
}

func TestConfidenceForScore(t *testing.T) {
	cases := []struct {
		score    float64
		expected Confidence
	}{
		{0.90, ConfidenceHigh},
		{0.75, ConfidenceHigh},
		{0.60, ConfidenceMedium},
		{0.45, ConfidenceMedium},
		{0.44, ConfidenceLow},
		{0.0, ConfidenceLow},
	}

	for _, tc := range cases {
		if got := ConfidenceForScore(tc.score); got != tc.expected {
			t.Errorf("score %v: expected %s, got %s", tc.score, tc.expected, got)
		}
	}
}
