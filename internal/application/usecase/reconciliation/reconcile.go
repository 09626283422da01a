// Package reconciliation contains match proposal and confirmation use cases.
package reconciliation

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoice-recon/backend/internal/application/adapter"
	"github.com/invoice-recon/backend/internal/domain/entity"
	domainerror "github.com/invoice-recon/backend/internal/domain/error"
	"github.com/invoice-recon/backend/internal/domain/valueobject"
)

// Bounds for the reconcile parameters.
const (
	DefaultMaxCandidatesPerInvoice = 3
	MinCandidatesPerInvoice        = 1
	MaxCandidatesPerInvoice        = 10

	DefaultDateWindowDays = 3
	MinDateWindowDays     = 0
	MaxDateWindowDays     = 30
)

// ReconcileInput represents the input for a reconciliation run. Nil
// parameters fall back to their defaults.
type ReconcileInput struct {
	TenantID                uint
	MaxCandidatesPerInvoice *int
	DateWindowDays          *int
}

// MatchOutput represents a match in use-case output.
type MatchOutput struct {
	ID                uint
	InvoiceID         uint
	BankTransactionID uint
	Score             float64
	Status            entity.MatchStatus
	CreatedAt         time.Time
}

// ReconcileOutput holds the matches created by this run. Confirmed matches
// survive in storage but are never part of the output.
type ReconcileOutput struct {
	Matches []*MatchOutput
}

// ReconcileUseCase recomputes the proposed-match set for a tenant.
type ReconcileUseCase struct {
	invoiceRepo     adapter.InvoiceRepository
	transactionRepo adapter.BankTransactionRepository
	matchRepo       adapter.MatchRepository
	tenantLock      adapter.TenantLock
}

// NewReconcileUseCase creates a new ReconcileUseCase instance.
func NewReconcileUseCase(
	invoiceRepo adapter.InvoiceRepository,
	transactionRepo adapter.BankTransactionRepository,
	matchRepo adapter.MatchRepository,
	tenantLock adapter.TenantLock,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		invoiceRepo:     invoiceRepo,
		transactionRepo: transactionRepo,
		matchRepo:       matchRepo,
		tenantLock:      tenantLock,
	}
}

// scoredCandidate pairs a transaction with its score for ranking.
type scoredCandidate struct {
	transactionID uint
	total         float64
}

// Execute scores every open invoice against every transaction of the tenant,
// replaces the speculative match set with the top candidates per invoice and
// returns the matches created by this run. Candidates are ordered by score
// descending with bank-transaction id ascending as the tie-break, which makes
// the ranking total and repeatable.
func (uc *ReconcileUseCase) Execute(ctx context.Context, input ReconcileInput) (*ReconcileOutput, error) {
	maxCandidates := DefaultMaxCandidatesPerInvoice
	if input.MaxCandidatesPerInvoice != nil {
		maxCandidates = *input.MaxCandidatesPerInvoice
	}
	dateWindowDays := DefaultDateWindowDays
	if input.DateWindowDays != nil {
		dateWindowDays = *input.DateWindowDays
	}

	if maxCandidates < MinCandidatesPerInvoice || maxCandidates > MaxCandidatesPerInvoice {
		return nil, domainerror.NewMatchError(
			domainerror.ErrCodeInvalidReconcileParams,
			fmt.Sprintf("max candidates per invoice must be between %d and %d", MinCandidatesPerInvoice, MaxCandidatesPerInvoice),
			domainerror.ErrInvalidReconcileParams,
		)
	}
	if dateWindowDays < MinDateWindowDays || dateWindowDays > MaxDateWindowDays {
		return nil, domainerror.NewMatchError(
			domainerror.ErrCodeInvalidReconcileParams,
			fmt.Sprintf("date window must be between %d and %d days", MinDateWindowDays, MaxDateWindowDays),
			domainerror.ErrInvalidReconcileParams,
		)
	}

	release, err := uc.tenantLock.Acquire(ctx, input.TenantID)
	if err != nil {
		return nil, err
	}
	defer release()

	invoices, err := uc.invoiceRepo.FindOpenByTenant(ctx, input.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load open invoices: %w", err)
	}
	transactions, err := uc.transactionRepo.FindByTenant(ctx, input.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bank transactions: %w", err)
	}

	config := valueobject.ScoringConfig{
		DateWindowDays:       dateWindowDays,
		AmountToleranceRatio: decimal.NewFromFloat(0.01),
	}

	var proposed []*entity.Match
	for _, invoice := range invoices {
		candidates := uc.scoreCandidates(invoice, transactions, config)

		limit := maxCandidates
		if limit > len(candidates) {
			limit = len(candidates)
		}
		for _, c := range candidates[:limit] {
			proposed = append(proposed, entity.NewProposedMatch(
				input.TenantID,
				invoice.ID,
				c.transactionID,
				c.total,
			))
		}
	}

	if err := uc.matchRepo.ReplaceProposed(ctx, input.TenantID, proposed); err != nil {
		return nil, fmt.Errorf("failed to replace proposed matches: %w", err)
	}

	slog.Info("Reconciliation run completed",
		"tenant_id", input.TenantID,
		"open_invoices", len(invoices),
		"transactions", len(transactions),
		"proposed_matches", len(proposed),
	)

	output := &ReconcileOutput{Matches: make([]*MatchOutput, len(proposed))}
	for i, m := range proposed {
		output.Matches[i] = matchToOutput(m)
	}
	return output, nil
}

// scoreCandidates scores one invoice against all transactions, drops
// non-positive totals and returns candidates ranked by score descending,
// transaction id ascending.
func (uc *ReconcileUseCase) scoreCandidates(
	invoice *entity.Invoice,
	transactions []*entity.BankTransaction,
	config valueobject.ScoringConfig,
) []scoredCandidate {
	candidates := make([]scoredCandidate, 0, len(transactions))
	for _, txn := range transactions {
		breakdown := valueobject.ComputeScore(
			invoice.Amount,
			invoice.InvoiceDate,
			invoice.Description,
			txn.Amount,
			txn.PostedAt,
			txn.Description,
			config,
		)
		if breakdown.Total <= 0.0 {
			continue
		}
		candidates = append(candidates, scoredCandidate{
			transactionID: txn.ID,
			total:         breakdown.Total,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].total != candidates[j].total {
			return candidates[i].total > candidates[j].total
		}
		return candidates[i].transactionID < candidates[j].transactionID
	})

	return candidates
}

func matchToOutput(m *entity.Match) *MatchOutput {
	return &MatchOutput{
		ID:                m.ID,
		InvoiceID:         m.InvoiceID,
		BankTransactionID: m.BankTransactionID,
		Score:             m.Score,
		Status:            m.Status,
		CreatedAt:         m.CreatedAt,
	}
}
