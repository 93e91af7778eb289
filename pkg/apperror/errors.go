package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a closed enumeration of failure classes. Callers branch on the
// kind, never on message text.
type Kind string

const (
	KindValidationFailed    Kind = "validation_failed"
	KindNotFound            Kind = "not_found"
	KindInsufficientStock   Kind = "insufficient_stock"
	KindTransactionConflict Kind = "transaction_conflict"
	KindUnauthorized        Kind = "unauthorized"
	KindConflict            Kind = "conflict"
	KindInternal            Kind = "internal"
)

// AppError represents an application error with an HTTP status code and
// a machine-readable kind.
type AppError struct {
	Code    int          `json:"code"`
	Kind    Kind         `json:"kind"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound           = &AppError{Code: http.StatusNotFound, Kind: KindNotFound, Message: "Resource not found"}
	ErrUnauthorized       = &AppError{Code: http.StatusUnauthorized, Kind: KindUnauthorized, Message: "Unauthorized"}
	ErrInternalServer     = &AppError{Code: http.StatusInternalServerError, Kind: KindInternal, Message: "Internal server error"}
	ErrConflict           = &AppError{Code: http.StatusConflict, Kind: KindConflict, Message: "Resource already exists"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Kind: KindUnauthorized, Message: "Invalid email or password"}
	ErrInvalidToken       = &AppError{Code: http.StatusUnauthorized, Kind: KindUnauthorized, Message: "Invalid token"}
)

// NewNotFoundError creates a not found error. The message is shown to the
// user as-is, so callers pass the full text ("Venta no encontrada").
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: message,
	}
}

// NewValidationError creates a precondition-violation error. These are
// raised before any store call so the caller can correct and resubmit.
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindValidationFailed,
		Message: message,
	}
}

// NewFieldValidationError creates a validation error with per-field detail
func NewFieldValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindValidationFailed,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewInsufficientStockError reports a sale line that asks for more boxes
// than the warehouse holds, naming the item and what is available.
func NewInsufficientStockError(item string, available int) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindInsufficientStock,
		Message: fmt.Sprintf("Stock insuficiente para %s. Disponibles: %d", item, available),
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: message,
	}
}

// NewTransactionConflictError wraps a store-level serialization failure
// that survived the driver's own retries.
func NewTransactionConflictError(err error) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindTransactionConflict,
		Message: "The operation conflicted with a concurrent change, please retry",
	}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindInternal,
		Message: err.Error(),
	}
}
