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

	// Kanshi config errors
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigRead     ErrorCode = "CONFIG_READ"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"

	// Settings errors, never fatal
	ErrSettingsLoad ErrorCode = "SETTINGS_LOAD"

	// FileSystem errors
	ErrFileWrite   ErrorCode = "FILE_WRITE"
	ErrPathResolve ErrorCode = "PATH_RESOLVE"

	// External collaborators
	ErrCommandFailed ErrorCode = "COMMAND_FAILED"
	ErrOutputsDecode ErrorCode = "OUTPUTS_DECODE"
)

// AutokanshiError represents a structured error with code and details
type AutokanshiError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AutokanshiError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AutokanshiError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *AutokanshiError) Is(target error) bool {
	var targetErr *AutokanshiError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AutokanshiError with the given code and message
func New(code ErrorCode, message string) *AutokanshiError {
	return &AutokanshiError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AutokanshiError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AutokanshiError {
	return &AutokanshiError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AutokanshiError
func Wrap(err error, code ErrorCode, message string) *AutokanshiError {
	if err == nil {
		return nil
	}
	return &AutokanshiError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AutokanshiError {
	if err == nil {
		return nil
	}
	return &AutokanshiError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AutokanshiError) WithDetail(key string, value interface{}) *AutokanshiError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var akErr *AutokanshiError
	if errors.As(err, &akErr) {
		return akErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AutokanshiError
func GetErrorCode(err error) ErrorCode {
	var akErr *AutokanshiError
	if errors.As(err, &akErr) {
		return akErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an AutokanshiError
func GetErrorDetails(err error) map[string]interface{} {
	var akErr *AutokanshiError
	if errors.As(err, &akErr) {
		return akErr.Details
	}
	return nil
}

// IsFatal reports whether an error must stop the run. Missing or unreadable
// kanshi configs and settings failures fall back to defaults instead.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	switch GetErrorCode(err) {
	case ErrConfigNotFound, ErrConfigRead, ErrSettingsLoad:
		return false
	}
	return true
}
