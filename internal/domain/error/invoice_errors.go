// Package error defines domain-specific errors for the reconciliation backend.
package error

import "errors"

// Invoice domain errors.
var (
	// ErrInvoiceNotFound is returned when an invoice is not found in the system.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrInvalidInvoiceAmount is returned when the invoice amount is not positive.
	ErrInvalidInvoiceAmount = errors.New("invoice amount must be positive")

	// ErrInvalidInvoiceCurrency is returned when the currency is not a 3-letter code.
	ErrInvalidInvoiceCurrency = errors.New("currency must be a 3-letter code")

	// ErrInvalidInvoiceStatus is returned when an unknown status filter is requested.
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")
)

// InvoiceErrorCode defines error codes for invoice errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InvoiceErrorCode string

const (
	ErrCodeInvoiceNotFound        InvoiceErrorCode = "INV-010001"
	ErrCodeInvalidInvoiceAmount   InvoiceErrorCode = "INV-010002"
	ErrCodeInvalidInvoiceCurrency InvoiceErrorCode = "INV-010003"
	ErrCodeInvalidInvoiceStatus   InvoiceErrorCode = "INV-010004"
)

// InvoiceError represents an invoice error with code and message.
type InvoiceError struct {
	Code    InvoiceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvoiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InvoiceError) Unwrap() error {
	return e.Err
}

// NewInvoiceError creates a new InvoiceError instance.
func NewInvoiceError(code InvoiceErrorCode, message string, err error) *InvoiceError {
	return &InvoiceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
