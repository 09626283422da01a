// Package error defines domain-specific errors for the reconciliation backend.
package error

import "errors"

// Match and reconciliation domain errors.
var (
	// ErrMatchNotFound is returned when a match is not found in the system.
	ErrMatchNotFound = errors.New("match not found")

	// ErrMatchNotProposed is returned when confirming a match that is not in proposed state.
	ErrMatchNotProposed = errors.New("only proposed matches can be confirmed")

	// ErrMatchConflict is returned when the invoice or transaction already has a confirmed match.
	ErrMatchConflict = errors.New("invoice or transaction already has a confirmed match")

	// ErrInvalidReconcileParams is returned when reconcile parameters fall outside their bounds.
	ErrInvalidReconcileParams = errors.New("invalid reconcile parameters")

	// ErrReconcileInProgress is returned when a reconcile run is already holding the tenant lock.
	ErrReconcileInProgress = errors.New("reconciliation already running for tenant")

	// ErrInvalidMatchStatus is returned when an unknown status filter is requested.
	ErrInvalidMatchStatus = errors.New("invalid match status")
)

// MatchErrorCode defines error codes for match errors.
// Format: MCH-XXYYYY where XX is category and YYYY is specific error.
type MatchErrorCode string

const (
	ErrCodeMatchNotFound           MatchErrorCode = "MCH-010001"
	ErrCodeMatchNotProposed        MatchErrorCode = "MCH-010002"
	ErrCodeMatchConflict           MatchErrorCode = "MCH-010003"
	ErrCodeInvalidReconcileParams  MatchErrorCode = "MCH-010004"
	ErrCodeReconcileInProgress     MatchErrorCode = "MCH-010005"
	ErrCodeInvalidMatchStatus      MatchErrorCode = "MCH-010006"
)

// MatchError represents a match error with code and message.
type MatchError struct {
	Code    MatchErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MatchError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MatchError) Unwrap() error {
	return e.Err
}

// NewMatchError creates a new MatchError instance.
func NewMatchError(code MatchErrorCode, message string, err error) *MatchError {
	return &MatchError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
