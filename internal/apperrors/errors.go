package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrEmployeeInactive indicates a clock-in attempt for a deactivated employee.
var ErrEmployeeInactive = errors.New("employee is deactivated")

// ErrActiveSessionExists indicates an operation would leave an employee with
// more than one active time log.
var ErrActiveSessionExists = errors.New("employee already has an active time log")

// ErrInvertedInterval indicates an edit would set clock-out earlier than
// clock-in under the strict interval policy.
var ErrInvertedInterval = errors.New("clock-out is earlier than clock-in")

// AppError wraps a lower-level error with an HTTP-ish status code and message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
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
