// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse represents a standard API error payload.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
