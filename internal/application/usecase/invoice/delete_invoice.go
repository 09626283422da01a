// Package invoice contains invoice management use cases.
package invoice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/invoice-recon/backend/internal/application/adapter"
	domainerror "github.com/invoice-recon/backend/internal/domain/error"
)

// DeleteInvoiceInput represents the input for invoice deletion.
type DeleteInvoiceInput struct {
	TenantID  uint
	InvoiceID uint
}

// DeleteInvoiceUseCase handles invoice deletion. Deleting an invoice also
// removes its matches.
type DeleteInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewDeleteInvoiceUseCase creates a new DeleteInvoiceUseCase instance.
func NewDeleteInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *DeleteInvoiceUseCase {
	return &DeleteInvoiceUseCase{invoiceRepo: invoiceRepo}
}

// Execute deletes the invoice scoped to the tenant.
func (uc *DeleteInvoiceUseCase) Execute(ctx context.Context, input DeleteInvoiceInput) error {
	deleted, err := uc.invoiceRepo.Delete(ctx, input.TenantID, input.InvoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	if !deleted {
		return domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceNotFound,
			"invoice not found",
			domainerror.ErrInvoiceNotFound,
		)
	}

	slog.Info("Invoice deleted", "tenant_id", input.TenantID, "invoice_id", input.InvoiceID)
	return nil
}
