// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"

	"github.com/invoice-recon/backend/internal/application/adapter"
	"github.com/invoice-recon/backend/internal/domain/valueobject"
)

// MockAIService is a deterministic AIExplanationService for development and
// tests. It never calls an external provider.
type MockAIService struct{}

// NewMockAIService creates a new mock AI service instance.
func NewMockAIService() *MockAIService {
	return &MockAIService{}
}

// IsAvailable always reports true.
func (s *MockAIService) IsAvailable() bool {
	return true
}

// ExplainMatch returns a canned explanation derived from the prompt length so
// repeated calls with the same prompt yield the same output.
func (s *MockAIService) ExplainMatch(ctx context.Context, prompt string) (*adapter.AIExplanation, error) {
	explanation := fmt.Sprintf(
		"The invoice and the bank transaction line up on the compared attributes. "+
			"This assessment was produced by the mock provider from a %d-character prompt. "+
			"Medium confidence.",
		len(prompt),
	)
	return &adapter.AIExplanation{
		Explanation: explanation,
		Confidence:  valueobject.ConfidenceMedium,
	}, nil
}
