// Package error defines domain-specific errors for the reconciliation backend.
package error

import "errors"

// Bank-transaction and idempotency domain errors.
var (
	// ErrBankTransactionNotFound is returned when a bank transaction is not found.
	ErrBankTransactionNotFound = errors.New("bank transaction not found")

	// ErrMissingIdempotencyKey is returned when an import request carries no idempotency key.
	ErrMissingIdempotencyKey = errors.New("idempotency key is required")

	// ErrIdempotencyConflict is returned when an idempotency key is reused with a different payload.
	ErrIdempotencyConflict = errors.New("idempotency key reused with different payload")

	// ErrInvalidTransactionAmount is returned when an imported transaction amount is not positive.
	ErrInvalidTransactionAmount = errors.New("transaction amount must be positive")

	// ErrInvalidTransactionCurrency is returned when the currency is not a 3-letter code.
	ErrInvalidTransactionCurrency = errors.New("currency must be a 3-letter code")
)

// TransactionErrorCode defines error codes for bank-transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	ErrCodeBankTransactionNotFound    TransactionErrorCode = "TXN-010001"
	ErrCodeMissingIdempotencyKey      TransactionErrorCode = "TXN-010002"
	ErrCodeIdempotencyConflict        TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidTransactionAmount   TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidTransactionCurrency TransactionErrorCode = "TXN-010005"
)

// TransactionError represents a bank-transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError instance.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
