// Package invoice contains invoice management use cases.
package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoice-recon/backend/internal/application/adapter"
	"github.com/invoice-recon/backend/internal/domain/entity"
	domainerror "github.com/invoice-recon/backend/internal/domain/error"
)

// CreateInvoiceInput represents the input for invoice creation.
type CreateInvoiceInput struct {
	TenantID    uint
	VendorID    *uint
	Number      string
	Amount      decimal.Decimal
	Currency    string
	InvoiceDate *time.Time
	Description string
}

// InvoiceOutput represents an invoice in use-case output.
type InvoiceOutput struct {
	ID          uint
	VendorID    *uint
	Number      string
	Amount      decimal.Decimal
	Currency    string
	InvoiceDate *time.Time
	Description string
	Status      entity.InvoiceStatus
	CreatedAt   time.Time
}

// CreateInvoiceOutput represents the output of invoice creation.
type CreateInvoiceOutput struct {
	Invoice *InvoiceOutput
}

// CreateInvoiceUseCase handles invoice creation.
type CreateInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewCreateInvoiceUseCase creates a new CreateInvoiceUseCase instance.
func NewCreateInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{invoiceRepo: invoiceRepo}
}

// Execute creates an open invoice.
func (uc *CreateInvoiceUseCase) Execute(ctx context.Context, input CreateInvoiceInput) (*CreateInvoiceOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvalidInvoiceAmount,
			"invoice amount must be positive",
			domainerror.ErrInvalidInvoiceAmount,
		)
	}
	if len(input.Currency) != 3 {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvalidInvoiceCurrency,
			"currency must be a 3-letter code",
			domainerror.ErrInvalidInvoiceCurrency,
		)
	}

	invoice := entity.NewInvoice(
		input.TenantID,
		input.VendorID,
		input.Number,
		input.Amount,
		input.Currency,
		input.InvoiceDate,
		input.Description,
	)

	if err := uc.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	slog.Info("Invoice created",
		"tenant_id", invoice.TenantID,
		"invoice_id", invoice.ID,
		"amount", invoice.Amount.StringFixed(2),
	)

	return &CreateInvoiceOutput{Invoice: invoiceToOutput(invoice)}, nil
}

func invoiceToOutput(inv *entity.Invoice) *InvoiceOutput {
	return &InvoiceOutput{
		ID:          inv.ID,
		VendorID:    inv.VendorID,
		Number:      inv.Number,
		Amount:      inv.Amount,
		Currency:    inv.Currency,
		InvoiceDate: inv.InvoiceDate,
		Description: inv.Description,
		Status:      inv.Status,
		CreatedAt:   inv.CreatedAt,
	}
}
