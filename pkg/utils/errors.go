package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError carries a client-facing message and the HTTP status it maps to.
type AppError struct {
	Message    string
	StatusCode int
	Err        error
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

func NewAppError(statusCode int, format string, args ...any) *AppError {
	return &AppError{
		Message:    fmt.Sprintf(format, args...),
		StatusCode: statusCode,
	}
}

func ErrBadRequest(format string, args ...any) error {
	return NewAppError(http.StatusBadRequest, format, args...)
}

func ErrUnauthorized(format string, args ...any) error {
	return NewAppError(http.StatusUnauthorized, format, args...)
}

func ErrForbidden(format string, args ...any) error {
	return NewAppError(http.StatusForbidden, format, args...)
}

func ErrNotFound(format string, args ...any) error {
	return NewAppError(http.StatusNotFound, format, args...)
}

func ErrConflict(format string, args ...any) error {
	return NewAppError(http.StatusConflict, format, args...)
}

func ErrTooManyRequests(format string, args ...any) error {
	return NewAppError(http.StatusTooManyRequests, format, args...)
}

// ErrInternal wraps a low-level failure; the client only sees message.
func ErrInternal(err error, message string) error {
	return &AppError{
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// StatusCode returns the status carried by err, or 500.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.StatusCode != 0 {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// ErrorMessage returns the client-facing message for err.
// Anything that is not an AppError is masked.
func ErrorMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}
