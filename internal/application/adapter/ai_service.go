// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/invoice-recon/backend/internal/domain/valueobject"
)

// AIExplanation is the result of an AI-generated match explanation.
type AIExplanation struct {
	Explanation string
	Confidence  valueobject.Confidence
}

// AIExplanationService defines the interface for the pluggable explanation
// capability. Implementations may fail; callers always hold a deterministic
// fallback, so failures are absorbed, never surfaced.
type AIExplanationService interface {
	// ExplainMatch generates an explanation for the given prompt.
	ExplainMatch(ctx context.Context, prompt string) (*AIExplanation, error)

	// IsAvailable checks if the service is available and properly configured.
	IsAvailable() bool
}
