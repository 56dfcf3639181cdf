package apperror

import (
	"errors"
	"net/http"
)

// Kind is a machine-readable error category. Handlers map errors to HTTP
// status codes; callers and tests branch on the kind.
type Kind string

const (
	KindInvalidQuantity        Kind = "invalid_quantity"
	KindInvalidName            Kind = "invalid_name"
	KindNegativeBasePrice      Kind = "negative_base_price"
	KindNegativeEffectivePrice Kind = "negative_effective_price"
	KindNegativeSubtotal       Kind = "negative_subtotal"
	KindNegativeDiscount       Kind = "negative_discount"
	KindEmptyItemList          Kind = "empty_item_list"
	KindMissingField           Kind = "missing_field"
	KindNotFound               Kind = "not_found"
	KindSchema                 Kind = "schema_error"
	KindPersistence            Kind = "persistence_error"
)

// AppError represents an application error with an HTTP status code
type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind,omitempty"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Kind: KindNotFound, Message: "Resource not found"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error with a machine-readable kind
func NewValidationError(kind Kind, message string) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Kind:    kind,
		Message: message,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: resource + " not found",
	}
}

// NewSchemaError wraps a schema evolution failure
func NewSchemaError(message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindSchema,
		Message: message,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// KindOf returns the kind of an error, or the empty kind when the error
// is not an AppError
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// GetAppError converts an error to AppError if possible. Anything else
// is treated as a persistence failure and surfaced verbatim.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindPersistence,
		Message: err.Error(),
	}
}
