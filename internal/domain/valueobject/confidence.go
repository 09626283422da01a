// Package valueobject contains domain value objects for the reconciliation system.
package valueobject

// Confidence represents the confidence level of a match explanation.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Thresholds for bucketing a total score into a confidence level.
const (
	highConfidenceThreshold   = 0.75
	mediumConfidenceThreshold = 0.45
)

// ConfidenceForScore buckets a total match score into a confidence level.
func ConfidenceForScore(total float64) Confidence {
	switch {
	case total >= highConfidenceThreshold:
		return ConfidenceHigh
	case total >= mediumConfidenceThreshold:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
