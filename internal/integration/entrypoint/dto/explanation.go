// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/invoice-recon/backend/internal/application/usecase/explanation"

// ScoreBreakdownDTO represents the component scores of a candidate pair.
type ScoreBreakdownDTO struct {
	AmountScore float64 `json:"amount_score"`
	DateScore   float64 `json:"date_score"`
	TextScore   float64 `json:"text_score"`
	Total       float64 `json:"total"`
}

// ExplainMatchResponseDTO represents the response for the explain endpoint.
type ExplainMatchResponseDTO struct {
	Explanation string            `json:"explanation"`
	Confidence  string            `json:"confidence"`
	Score       ScoreBreakdownDTO `json:"score"`
	UsedAI      bool              `json:"used_ai"`
}

// ToExplainMatchResponseDTO converts the use-case output to the response.
func ToExplainMatchResponseDTO(out *explanation.ExplainMatchOutput) ExplainMatchResponseDTO {
	return ExplainMatchResponseDTO{
		Explanation: out.Explanation,
		Confidence:  string(out.Confidence),
		Score: ScoreBreakdownDTO{
			AmountScore: out.Score.AmountScore,
			DateScore:   out.Score.DateScore,
			TextScore:   out.Score.TextScore,
			Total:       out.Score.Total,
		},
		UsedAI: out.UsedAI,
	}
}
