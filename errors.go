package ascent

import (
	"fmt"

	"github.com/pkg/errors"
)

// Provider error codes that translate into typed errors.
const (
	ErrorCodeAlreadyExists   = "AlreadyExists"
	ErrorCodeResourceInUse   = "ResourceInUse"
	ErrorCodeValidationError = "ValidationError"
)

// IdentifierTakenError indicates that a resource could not be created because
// another resource already exists with the same identifier.
type IdentifierTakenError struct {
	Message string
	cause   error
}

// NewIdentifierTakenError returns a new error indicating an identifier
// collision. The cause, if any, is the underlying transport failure.
func NewIdentifierTakenError(msg string, cause error) *IdentifierTakenError {
	return &IdentifierTakenError{Message: msg, cause: cause}
}

// Error returns the provider's message verbatim.
func (e *IdentifierTakenError) Error() string {
	return e.Message
}

// Unwrap returns the underlying transport failure, if any.
func (e *IdentifierTakenError) Unwrap() error {
	return e.cause
}

// IsIdentifierTakenError returns whether the error or any error it wraps is
// an IdentifierTakenError.
func IsIdentifierTakenError(err error) bool {
	var takenErr *IdentifierTakenError
	return errors.As(err, &takenErr)
}

// ResourceInUseError indicates that the target resource is in active use and
// cannot be mutated or deleted.
type ResourceInUseError struct {
	Message string
	cause   error
}

// NewResourceInUseError returns a new error indicating the target resource is
// in use. The cause, if any, is the underlying transport failure.
func NewResourceInUseError(msg string, cause error) *ResourceInUseError {
	return &ResourceInUseError{Message: msg, cause: cause}
}

// Error returns the provider's message verbatim.
func (e *ResourceInUseError) Error() string {
	return e.Message
}

// Unwrap returns the underlying transport failure, if any.
func (e *ResourceInUseError) Unwrap() error {
	return e.cause
}

// IsResourceInUseError returns whether the error or any error it wraps is a
// ResourceInUseError.
func IsResourceInUseError(err error) bool {
	var inUseErr *ResourceInUseError
	return errors.As(err, &inUseErr)
}

// ValidationError indicates a parameter-level validation failure reported by
// the provider.
type ValidationError struct {
	Message string
	cause   error
}

// NewValidationError returns a new error indicating a parameter validation
// failure. The cause, if any, is the underlying transport failure.
func NewValidationError(msg string, cause error) *ValidationError {
	return &ValidationError{Message: msg, cause: cause}
}

// Error returns the provider's message verbatim.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the underlying transport failure, if any.
func (e *ValidationError) Unwrap() error {
	return e.cause
}

// IsValidationError returns whether the error or any error it wraps is a
// ValidationError.
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// APIError indicates a provider error with a code that does not translate
// into a more specific typed error.
type APIError struct {
	Code    string
	Message string
	cause   error
}

// NewAPIError returns a new error wrapping an untranslated provider error
// code and message. The cause, if any, is the underlying transport failure.
func NewAPIError(code, msg string, cause error) *APIError {
	return &APIError{Code: code, Message: msg, cause: cause}
}

// Error returns the provider's error code and message.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s => %s", e.Code, e.Message)
}

// Unwrap returns the underlying transport failure, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

// IsAPIError returns whether the error or any error it wraps is an APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// TranslateErrorCode converts a provider error code and message into the
// corresponding typed error. Unrecognized codes become a generic APIError.
// The cause is attached to the returned error so callers can still reach the
// original transport failure.
func TranslateErrorCode(code, msg string, cause error) error {
	switch code {
	case ErrorCodeAlreadyExists:
		return NewIdentifierTakenError(msg, cause)
	case ErrorCodeResourceInUse:
		return NewResourceInUseError(msg, cause)
	case ErrorCodeValidationError:
		return NewValidationError(msg, cause)
	default:
		return NewAPIError(code, msg, cause)
	}
}
