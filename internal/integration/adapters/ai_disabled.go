// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"

	"github.com/invoice-recon/backend/internal/application/adapter"
)

// DisabledAIService is the AIExplanationService used when no AI provider is
// configured. Callers fall back to the deterministic explanation.
type DisabledAIService struct{}

// NewDisabledAIService creates a new disabled AI service instance.
func NewDisabledAIService() *DisabledAIService {
	return &DisabledAIService{}
}

// IsAvailable always reports false.
func (s *DisabledAIService) IsAvailable() bool {
	return false
}

// ExplainMatch always fails; the service is disabled.
func (s *DisabledAIService) ExplainMatch(ctx context.Context, prompt string) (*adapter.AIExplanation, error) {
	return nil, fmt.Errorf("ai explanation service is disabled")
}
