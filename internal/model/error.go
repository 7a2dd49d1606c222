package model

import "errors"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeValidation        = "VALIDATION_FAILED"
	ErrCodeInvalidID         = "INVALID_ID"
	ErrCodeNotAuthenticated  = "NOT_AUTHENTICATED"
	ErrCodeActionNotAllowed  = "ACTION_NOT_ALLOWED"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeUpstream          = "UPSTREAM_ERROR"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
	ErrCodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	ErrCodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	ErrCodePayloadTooLarge   = "PAYLOAD_TOO_LARGE"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError with the same code, so a
// wrapped validation error still matches ErrValidation.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Validation creates a validation error with a specific message.
func Validation(message string) *DomainError {
	return NewDomainError(ErrCodeValidation, message)
}

// TooLarge creates an error for a body or file over its size limit.
func TooLarge(message string) *DomainError {
	return NewDomainError(ErrCodePayloadTooLarge, message)
}

// Common domain errors
var (
	ErrValidation       = NewDomainError(ErrCodeValidation, "Validation failed")
	ErrInvalidID        = NewDomainError(ErrCodeInvalidID, "Identifier is not a valid document id")
	ErrNotAuthenticated = NewDomainError(ErrCodeNotAuthenticated, "Please login to continue")
	ErrActionNotAllowed = NewDomainError(ErrCodeActionNotAllowed, "Action is not available for this order status")
	ErrOrderNotFound    = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrProductNotFound  = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrPayloadTooLarge  = NewDomainError(ErrCodePayloadTooLarge, "Payload too large")
)
