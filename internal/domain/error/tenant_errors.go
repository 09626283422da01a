// Package error defines domain-specific errors for the reconciliation backend.
package error

import "errors"

// Tenant domain errors.
var (
	// ErrTenantNotFound is returned when a tenant is not found in the system.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrTenantNameTaken is returned when creating a tenant with a name that already exists.
	ErrTenantNameTaken = errors.New("tenant name already exists")

	// ErrInvalidTenantName is returned when the tenant name is empty or too long.
	ErrInvalidTenantName = errors.New("invalid tenant name")
)

// TenantErrorCode defines error codes for tenant errors.
// Format: TEN-XXYYYY where XX is category and YYYY is specific error.
type TenantErrorCode string

const (
	ErrCodeTenantNotFound    TenantErrorCode = "TEN-010001"
	ErrCodeTenantNameTaken   TenantErrorCode = "TEN-010002"
	ErrCodeInvalidTenantName TenantErrorCode = "TEN-010003"
)

// TenantError represents a tenant error with code and message.
type TenantError struct {
	Code    TenantErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TenantError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TenantError) Unwrap() error {
	return e.Err
}

// NewTenantError creates a new TenantError instance.
func NewTenantError(code TenantErrorCode, message string, err error) *TenantError {
	return &TenantError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
