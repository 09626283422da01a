// Package explanation contains the match explanation use case.
package explanation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoice-recon/backend/internal/application/adapter"
	"github.com/invoice-recon/backend/internal/domain/entity"
	domainerror "github.com/invoice-recon/backend/internal/domain/error"
	"github.com/invoice-recon/backend/internal/domain/valueobject"
)

// DefaultAITimeout bounds the AI call when no timeout is configured.
const DefaultAITimeout = 4 * time.Second

// decimalHalfCent mirrors the exact-amount threshold of the scoring function.
var decimalHalfCent = decimal.NewFromFloat(0.005)

// ExplainMatchInput represents the input for explaining an invoice/transaction pair.
type ExplainMatchInput struct {
	TenantID          uint
	InvoiceID         uint
	BankTransactionID uint
}

// ExplainMatchOutput represents the explanation result. UsedAI is false when
// the deterministic fallback produced the text.
type ExplainMatchOutput struct {
	Explanation string
	Confidence  valueobject.Confidence
	Score       valueobject.ScoreBreakdown
	UsedAI      bool
}

// ExplainMatchUseCase builds an explanation for an invoice/transaction pair.
// The AI capability is optional and bounded by a timeout; any failure falls
// back to a pure templated explanation, so the operation always succeeds once
// both entities are found.
type ExplainMatchUseCase struct {
	invoiceRepo     adapter.InvoiceRepository
	transactionRepo adapter.BankTransactionRepository
	aiService       adapter.AIExplanationService
	aiTimeout       time.Duration
}

// NewExplainMatchUseCase creates a new ExplainMatchUseCase instance.
func NewExplainMatchUseCase(
	invoiceRepo adapter.InvoiceRepository,
	transactionRepo adapter.BankTransactionRepository,
	aiService adapter.AIExplanationService,
	aiTimeout time.Duration,
) *ExplainMatchUseCase {
	if aiTimeout <= 0 {
		aiTimeout = DefaultAITimeout
	}
	return &ExplainMatchUseCase{
		invoiceRepo:     invoiceRepo,
		transactionRepo: transactionRepo,
		aiService:       aiService,
		aiTimeout:       aiTimeout,
	}
}

// Execute explains why the invoice and transaction are likely a match.
func (uc *ExplainMatchUseCase) Execute(ctx context.Context, input ExplainMatchInput) (*ExplainMatchOutput, error) {
	invoice, err := uc.invoiceRepo.FindByID(ctx, input.TenantID, input.InvoiceID)
	if err != nil {
		if errors.Is(err, domainerror.ErrInvoiceNotFound) {
			return nil, domainerror.NewInvoiceError(
				domainerror.ErrCodeInvoiceNotFound,
				"invoice not found",
				domainerror.ErrInvoiceNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load invoice: %w", err)
	}

	txn, err := uc.transactionRepo.FindByID(ctx, input.TenantID, input.BankTransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBankTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeBankTransactionNotFound,
				"bank transaction not found",
				domainerror.ErrBankTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load bank transaction: %w", err)
	}

	breakdown := valueobject.ComputeScore(
		invoice.Amount,
		invoice.InvoiceDate,
		invoice.Description,
		txn.Amount,
		txn.PostedAt,
		txn.Description,
		valueobject.DefaultScoringConfig(),
	)

	if uc.aiService != nil && uc.aiService.IsAvailable() {
		aiCtx, cancel := context.WithTimeout(ctx, uc.aiTimeout)
		result, err := uc.aiService.ExplainMatch(aiCtx, buildPrompt(invoice, txn, breakdown))
		cancel()
		if err == nil {
			return &ExplainMatchOutput{
				Explanation: result.Explanation,
				Confidence:  result.Confidence,
				Score:       breakdown,
				UsedAI:      true,
			}, nil
		}

		slog.Warn("AI explanation failed, using fallback",
			"tenant_id", input.TenantID,
			"invoice_id", invoice.ID,
			"bank_transaction_id", txn.ID,
			"error", err,
		)
	}

	explanation, confidence := fallbackExplanation(invoice, txn, breakdown)
	return &ExplainMatchOutput{
		Explanation: explanation,
		Confidence:  confidence,
		Score:       breakdown,
		UsedAI:      false,
	}, nil
}

// buildPrompt embeds the pair's facts and the score breakdown into a prompt
// for the AI capability.
func buildPrompt(invoice *entity.Invoice, txn *entity.BankTransaction, breakdown valueobject.ScoreBreakdown) string {
	var sb strings.Builder

	sb.WriteString("Explain why this invoice and bank transaction are likely a match. ")
	sb.WriteString("Use only the provided facts.\n\n")

	invoiceDate := "unknown"
	if invoice.InvoiceDate != nil {
		invoiceDate = invoice.InvoiceDate.Format("2006-01-02")
	}
	fmt.Fprintf(&sb, "Invoice: amount=%s %s, date=%s, description=%s\n",
		invoice.Amount.StringFixed(2), invoice.Currency, invoiceDate, invoice.Description)
	fmt.Fprintf(&sb, "Transaction: amount=%s %s, posted_at=%s, description=%s\n",
		txn.Amount.StringFixed(2), txn.Currency, txn.PostedAt.Format("2006-01-02"), txn.Description)
	fmt.Fprintf(&sb, "Heuristic score=%.2f (amount=%.2f, date=%.2f, text=%.2f)\n",
		breakdown.Total, breakdown.AmountScore, breakdown.DateScore, breakdown.TextScore)
	sb.WriteString("Return 2-6 sentences and include a confidence label (low, medium or high).")

	return sb.String()
}

// fallbackExplanation renders the deterministic templated explanation. It is
// pure and cannot fail.
func fallbackExplanation(invoice *entity.Invoice, txn *entity.BankTransaction, breakdown valueobject.ScoreBreakdown) (string, valueobject.Confidence) {
	confidence := valueobject.ConfidenceForScore(breakdown.Total)

	var parts []string
	if invoice.Amount.Sub(txn.Amount).Abs().LessThan(decimalHalfCent) {
		parts = append(parts, "The amounts match exactly")
	} else {
		parts = append(parts, "The amounts are close")
	}
	if invoice.InvoiceDate != nil {
		days := valueobject.DateDistanceDays(*invoice.InvoiceDate, txn.PostedAt)
		parts = append(parts, fmt.Sprintf("the dates are %d days apart", days))
	}
	if invoice.Description != "" && txn.Description != "" {
		parts = append(parts, "the descriptions share similar terms")
	}

	text := fmt.Sprintf("%s. Overall score %.2f suggests %s confidence.",
		strings.Join(parts, ", "), breakdown.Total, confidence)

	return text, confidence
}
