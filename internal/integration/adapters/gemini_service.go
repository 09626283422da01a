// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/invoice-recon/backend/internal/application/adapter"
	"github.com/invoice-recon/backend/internal/domain/valueobject"
)

// GeminiExplanationService implements the AIExplanationService using Google
// Gemini.
type GeminiExplanationService struct {
	apiKey    string
	modelName string
}

// NewGeminiExplanationService creates a new Gemini explanation service
// instance. An empty model name falls back to the default.
func NewGeminiExplanationService(apiKey, modelName string) *GeminiExplanationService {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiExplanationService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiExplanationService) IsAvailable() bool {
	return s.apiKey != ""
}

// ExplainMatch sends the prompt to Gemini and returns the explanation text
// with a parsed confidence label.
func (s *GeminiExplanationService) ExplainMatch(ctx context.Context, prompt string) (*adapter.AIExplanation, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return nil, err
	}

	return &adapter.AIExplanation{
		Explanation: text,
		Confidence:  parseConfidenceLabel(text),
	}, nil
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	result := strings.TrimSpace(sb.String())
	if result == "" {
		return "", fmt.Errorf("no text content in gemini response")
	}
	return result, nil
}

// parseConfidenceLabel scans the explanation for a confidence keyword.
// Unknown or missing labels default to medium.
func parseConfidenceLabel(text string) valueobject.Confidence {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "high confidence") || strings.Contains(lower, "confidence: high"):
		return valueobject.ConfidenceHigh
	case strings.Contains(lower, "low confidence") || strings.Contains(lower, "confidence: low"):
		return valueobject.ConfidenceLow
	case strings.Contains(lower, "medium confidence") || strings.Contains(lower, "confidence: medium"):
		return valueobject.ConfidenceMedium
	default:
		return valueobject.ConfidenceMedium
	}
}
