// Package invoice contains invoice management use cases.
package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoice-recon/backend/internal/application/adapter"
	"github.com/invoice-recon/backend/internal/domain/entity"
	domainerror "github.com/invoice-recon/backend/internal/domain/error"
)

// ListInvoicesInput represents the input for listing invoices.
type ListInvoicesInput struct {
	TenantID  uint
	Status    *entity.InvoiceStatus
	VendorID  *uint
	DateStart *time.Time
	DateEnd   *time.Time
	AmountMin *decimal.Decimal
	AmountMax *decimal.Decimal
}

// ListInvoicesOutput represents the listing result.
type ListInvoicesOutput struct {
	Invoices []*InvoiceOutput
}

// ListInvoicesUseCase handles invoice listing.
type ListInvoicesUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewListInvoicesUseCase creates a new ListInvoicesUseCase instance.
func NewListInvoicesUseCase(invoiceRepo adapter.InvoiceRepository) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{invoiceRepo: invoiceRepo}
}

// Execute lists the tenant's invoices matching the filters, ordered by id.
func (uc *ListInvoicesUseCase) Execute(ctx context.Context, input ListInvoicesInput) (*ListInvoicesOutput, error) {
	if input.Status != nil {
		switch *input.Status {
		case entity.InvoiceStatusOpen, entity.InvoiceStatusMatched, entity.InvoiceStatusPaid:
		default:
			return nil, domainerror.NewInvoiceError(
				domainerror.ErrCodeInvalidInvoiceStatus,
				"status must be open, matched or paid",
				domainerror.ErrInvalidInvoiceStatus,
			)
		}
	}

	invoices, err := uc.invoiceRepo.FindByFilter(ctx, adapter.InvoiceFilter{
		TenantID:  input.TenantID,
		Status:    input.Status,
		VendorID:  input.VendorID,
		DateStart: input.DateStart,
		DateEnd:   input.DateEnd,
		AmountMin: input.AmountMin,
		AmountMax: input.AmountMax,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	output := &ListInvoicesOutput{Invoices: make([]*InvoiceOutput, len(invoices))}
	for i, inv := range invoices {
		output.Invoices[i] = invoiceToOutput(inv)
	}
	return output, nil
}
