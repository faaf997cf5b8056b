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
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigInvalid  ErrorCode = "CONFIG_INVALID"
	ErrPatternMissing ErrorCode = "PATTERN_MISSING"
	ErrDepthInvalid   ErrorCode = "DEPTH_INVALID"
	ErrFormatInvalid  ErrorCode = "FORMAT_INVALID"
	ErrRootInvalid    ErrorCode = "ROOT_INVALID"

	// Execution errors
	ErrRemoveFailed  ErrorCode = "REMOVE_FAILED"
	ErrEntryVanished ErrorCode = "ENTRY_VANISHED"
	ErrInputRead     ErrorCode = "INPUT_READ"
)

// ReapError represents a structured error with code and details
type ReapError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ReapError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ReapError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ReapError) Is(target error) bool {
	var targetErr *ReapError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ReapError with the given code and message
func New(code ErrorCode, message string) *ReapError {
	return &ReapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ReapError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ReapError {
	return &ReapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ReapError
func Wrap(err error, code ErrorCode, message string) *ReapError {
	if err == nil {
		return nil
	}
	return &ReapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ReapError {
	if err == nil {
		return nil
	}
	return &ReapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ReapError) WithDetail(key string, value interface{}) *ReapError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var reapErr *ReapError
	if errors.As(err, &reapErr) {
		return reapErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ReapError
func GetErrorCode(err error) ErrorCode {
	var reapErr *ReapError
	if errors.As(err, &reapErr) {
		return reapErr.Code
	}
	return ErrUnknown
}
