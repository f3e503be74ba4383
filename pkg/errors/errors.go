package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Shipping validation errors
	ErrWeightExceeded     ErrorCode = "WEIGHT_EXCEEDED"
	ErrDimensionsExceeded ErrorCode = "DIMENSIONS_EXCEEDED"

	// Gateway errors
	ErrInputClosed ErrorCode = "INPUT_CLOSED"
)

// PackexError represents a structured error with code and details
type PackexError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PackexError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PackexError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PackexError) Is(target error) bool {
	var targetErr *PackexError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PackexError with the given code and message
func New(code ErrorCode, message string) *PackexError {
	return &PackexError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PackexError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PackexError {
	return &PackexError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PackexError
func Wrap(err error, code ErrorCode, message string) *PackexError {
	if err == nil {
		return nil
	}
	return &PackexError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PackexError {
	if err == nil {
		return nil
	}
	return &PackexError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PackexError) WithDetail(key string, value interface{}) *PackexError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var packexErr *PackexError
	if errors.As(err, &packexErr) {
		return packexErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PackexError
func GetErrorCode(err error) ErrorCode {
	var packexErr *PackexError
	if errors.As(err, &packexErr) {
		return packexErr.Code
	}
	return ErrUnknown
}

// UserMessage returns the message intended for user display.
// Validation errors carry the exact user-facing text in Message; for
// anything else the full error string is the best we can show.
func UserMessage(err error) string {
	var packexErr *PackexError
	if errors.As(err, &packexErr) {
		return packexErr.Message
	}
	return err.Error()
}
