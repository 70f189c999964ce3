package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found, or
// does not belong to the caller's tenant (the two are indistinguishable).
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data violated a business rule.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the resource is not in the state the operation requires.
var ErrConflict = errors.New("resource state conflict")

// ErrForbidden indicates the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrInternal indicates an infrastructure failure that is not a user mistake.
var ErrInternal = errors.New("internal error")

// AppError wraps an infrastructure failure with a code and context message.
// It unwraps to ErrInternal so callers can distinguish store failures from
// business-rule rejections.
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
	return ErrInternal
}

// Cause returns the underlying error, if any.
func (e *AppError) Cause() error {
	return e.Err
}

// NewAppError creates an AppError for infrastructure failures.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError wraps ErrNotFound with a context message.
func NewNotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}
