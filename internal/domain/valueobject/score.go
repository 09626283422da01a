// Package valueobject contains domain value objects for the reconciliation system.
package valueobject

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Component weights. Amount dominates; date proximity and description overlap
// share the remainder.
const (
	amountWeightExact = 0.60
	amountWeightClose = 0.40
	dateWeight        = 0.20
	textWeight        = 0.20
)

// exactAmountEpsilon is the largest difference still considered an exact
// amount match (half a cent, so 2-dp equal amounts always qualify).
var exactAmountEpsilon = decimal.NewFromFloat(0.005)

// minAmountTolerance is the floor of the close-match tolerance band.
var minAmountTolerance = decimal.NewFromFloat(0.01)

// ScoringConfig contains the tunable parameters of match scoring.
type ScoringConfig struct {
	// DateWindowDays is the maximum day distance that still earns a date score.
	DateWindowDays int
	// AmountToleranceRatio widens the close-match band proportionally to the
	// invoice amount (0.01 = 1%).
	AmountToleranceRatio decimal.Decimal
}

// DefaultScoringConfig returns the default scoring configuration.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		DateWindowDays:       3,
		AmountToleranceRatio: decimal.NewFromFloat(0.01),
	}
}

// ScoreBreakdown is the explainable result of scoring one invoice against one
// bank transaction. Total is always within [0, 1].
type ScoreBreakdown struct {
	AmountScore float64
	DateScore   float64
	TextScore   float64
	Total       float64
}

// ComputeScore scores an invoice against a bank transaction. It is pure and
// deterministic: identical inputs always produce identical breakdowns, and
// missing optional fields simply zero their component. Currencies are not
// consulted; amounts are compared as-is.
func ComputeScore(
	invoiceAmount decimal.Decimal,
	invoiceDate *time.Time,
	invoiceDescription string,
	txnAmount decimal.Decimal,
	txnPostedAt time.Time,
	txnDescription string,
	config ScoringConfig,
) ScoreBreakdown {
	breakdown := ScoreBreakdown{}

	// Amount component: exact match outranks tolerance match.
	diff := invoiceAmount.Sub(txnAmount).Abs()
	if diff.LessThan(exactAmountEpsilon) {
		breakdown.AmountScore = amountWeightExact
	} else {
		tolerance := decimal.Max(invoiceAmount.Mul(config.AmountToleranceRatio), minAmountTolerance)
		if diff.LessThanOrEqual(tolerance) {
			breakdown.AmountScore = amountWeightClose
		}
	}

	// Date component: linear decay over the window, zero without an invoice date.
	if invoiceDate != nil {
		distance := DateDistanceDays(*invoiceDate, txnPostedAt)
		if distance <= config.DateWindowDays {
			window := config.DateWindowDays
			if window < 1 {
				window = 1
			}
			breakdown.DateScore = dateWeight * (1.0 - float64(distance)/float64(window))
		}
	}

	// Text component: token-set Jaccard similarity of the descriptions.
	breakdown.TextScore = textWeight * TokenJaccard(invoiceDescription, txnDescription)

	total := breakdown.AmountScore + breakdown.DateScore + breakdown.TextScore
	if total > 1.0 {
		total = 1.0
	}
	breakdown.Total = total

	return breakdown
}

// TokenJaccard computes the Jaccard similarity of the lower-cased,
// whitespace-split token sets of a and b. An empty token set on either side
// yields zero.
func TokenJaccard(a, b string) float64 {
	tokensA := tokenSet(a)
	tokensB := tokenSet(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0.0
	}

	intersection := 0
	for token := range tokensA {
		if _, ok := tokensB[token]; ok {
			intersection++
		}
	}
	union := len(tokensA) + len(tokensB) - intersection

	return float64(intersection) / float64(union)
}

// DateDistanceDays returns the absolute calendar-day distance between an
// invoice date and a transaction timestamp. Both are truncated to dates
// before comparing so the time of day never shifts the distance.
func DateDistanceDays(invoiceDate time.Time, postedAt time.Time) int {
	a := truncateToDate(invoiceDate)
	b := truncateToDate(postedAt)

	days := int(b.Sub(a).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	if len(fields) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
