package errors

import "fmt"

// Error codes
const (
	ErrCodeDataLoad         = "DATA_LOAD"
	ErrCodeSelectionInvalid = "SELECTION_INVALID"
	ErrCodeAssetNotFound    = "ASSET_NOT_FOUND"
	ErrCodeDerivation       = "DERIVATION_ERROR"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeInternal         = "INTERNAL_ERROR"
	ErrCodeBadRequest       = "BAD_REQUEST"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "DATA_LOAD", "SELECTION_INVALID")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewDataLoadError creates a DATA_LOAD error. These are fatal at startup: a
// required source table is missing or malformed and the process must not start.
func NewDataLoadError(source string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeDataLoad,
		Message: fmt.Sprintf("failed to load required data source %s", source),
		Status:  500,
		Err:     err,
	}
}

// NewSelectionInvalidError creates a SELECTION_INVALID error. Recoverable:
// handled by the selection controller's Invalid state and a view placeholder.
func NewSelectionInvalidError(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeSelectionInvalid,
		Message: reason,
		Status:  422,
	}
}

// NewAssetNotFoundError creates an ASSET_NOT_FOUND error. Recoverable: the
// caller falls back to a placeholder asset.
func NewAssetNotFoundError(kind, name string) *AppError {
	return &AppError{
		Code:    ErrCodeAssetNotFound,
		Message: fmt.Sprintf("no %s asset matches %q", kind, name),
		Status:  404,
	}
}

// NewDerivationError creates a DERIVATION_ERROR. Recoverable: caught at the
// view boundary and rendered as an explanatory empty state.
func NewDerivationError(view string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeDerivation,
		Message: fmt.Sprintf("failed to derive data for %s view", view),
		Status:  500,
		Err:     err,
	}
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  404,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  400,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  500,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  400,
	}
}
