// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/invoice-recon/backend/internal/application/usecase/invoice"
)

// CreateInvoiceRequestDTO represents the request for POST /invoices.
type CreateInvoiceRequestDTO struct {
	VendorID    *uint  `json:"vendor_id"`
	Number      string `json:"number" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Currency    string `json:"currency" binding:"required"`
	InvoiceDate string `json:"invoice_date"`
	Description string `json:"description"`
}

// InvoiceDTO represents an invoice in API responses.
type InvoiceDTO struct {
	ID          uint    `json:"id"`
	VendorID    *uint   `json:"vendor_id,omitempty"`
	Number      string  `json:"number"`
	Amount      string  `json:"amount"`
	Currency    string  `json:"currency"`
	InvoiceDate *string `json:"invoice_date,omitempty"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

// ListInvoicesResponseDTO represents the response for GET /invoices.
type ListInvoicesResponseDTO struct {
	Invoices []InvoiceDTO `json:"invoices"`
}

// ToInvoiceDTO converts a use-case invoice output to an InvoiceDTO.
func ToInvoiceDTO(out *invoice.InvoiceOutput) InvoiceDTO {
	var invoiceDate *string
	if out.InvoiceDate != nil {
		formatted := out.InvoiceDate.Format("2006-01-02")
		invoiceDate = &formatted
	}

	return InvoiceDTO{
		ID:          out.ID,
		VendorID:    out.VendorID,
		Number:      out.Number,
		Amount:      out.Amount.StringFixed(2),
		Currency:    out.Currency,
		InvoiceDate: invoiceDate,
		Description: out.Description,
		Status:      string(out.Status),
		CreatedAt:   out.CreatedAt.UTC().Format(time.RFC3339),
	}
}
