// Package reconciliation contains match proposal and confirmation use cases.
package reconciliation

import (
	"context"
	"fmt"

	"github.com/invoice-recon/backend/internal/application/adapter"
	"github.com/invoice-recon/backend/internal/domain/entity"
	domainerror "github.com/invoice-recon/backend/internal/domain/error"
)

// ListMatchesInput represents the input for listing matches.
type ListMatchesInput struct {
	TenantID uint
	Status   *entity.MatchStatus
}

// ListMatchesOutput represents the listing result.
type ListMatchesOutput struct {
	Matches []*MatchOutput
}

// ListMatchesUseCase handles match listing.
type ListMatchesUseCase struct {
	matchRepo adapter.MatchRepository
}

// NewListMatchesUseCase creates a new ListMatchesUseCase instance.
func NewListMatchesUseCase(matchRepo adapter.MatchRepository) *ListMatchesUseCase {
	return &ListMatchesUseCase{matchRepo: matchRepo}
}

// Execute lists the tenant's matches in id order, optionally filtered by status.
func (uc *ListMatchesUseCase) Execute(ctx context.Context, input ListMatchesInput) (*ListMatchesOutput, error) {
	if input.Status != nil {
		switch *input.Status {
		case entity.MatchStatusProposed, entity.MatchStatusConfirmed, entity.MatchStatusRejected:
		default:
			return nil, domainerror.NewMatchError(
				domainerror.ErrCodeInvalidMatchStatus,
				"status must be proposed, confirmed or rejected",
				domainerror.ErrInvalidMatchStatus,
			)
		}
	}

	matches, err := uc.matchRepo.FindByTenant(ctx, input.TenantID, input.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	output := &ListMatchesOutput{Matches: make([]*MatchOutput, len(matches))}
	for i, m := range matches {
		output.Matches[i] = matchToOutput(m)
	}
	return output, nil
}
