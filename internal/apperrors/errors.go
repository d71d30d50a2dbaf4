package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found, or that
// it does not belong to the dashboard the caller claimed. Both cases report
// identically so existence is not leaked across tenants.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrForbidden indicates the caller has no role on the target dashboard.
// Dashboard-scoped, unlike ErrUnauthorized which is session-scoped.
var ErrForbidden = errors.New("access to dashboard denied")

// ErrUnauthorized indicates a missing, invalid or expired session token.
var ErrUnauthorized = errors.New("authentication required")

// ErrConflict indicates a concurrent modification was detected (version
// mismatch on a compare-and-swap update).
var ErrConflict = errors.New("resource was modified concurrently")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// AppError carries an HTTP-ish status code alongside the wrapped cause, so
// repositories can classify failures without handlers re-inspecting pg errors.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a generic AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationFailedError creates an AppError that matches errors.Is(err,
// ErrValidation) and, when a cause is given, the cause as well.
func NewValidationFailedError(message string, cause error) *AppError {
	err := ErrValidation
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrValidation, cause)
	}
	return &AppError{Code: 400, Message: message, Err: err}
}

// NewForbiddenError creates an AppError that matches errors.Is(err, ErrForbidden).
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: 403, Message: message, Err: ErrForbidden}
}

// NewConflictError creates an AppError that matches errors.Is(err, ErrConflict).
func NewConflictError(message string) *AppError {
	return &AppError{Code: 409, Message: message, Err: ErrConflict}
}
