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
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Source root errors
	ErrSourceRoot     ErrorCode = "SOURCE_ROOT"
	ErrSourceNotFound ErrorCode = "SOURCE_NOT_FOUND"

	// Sweep errors
	ErrDirCreate ErrorCode = "DIR_CREATE"
	ErrScan      ErrorCode = "SCAN"
	ErrFileMove  ErrorCode = "FILE_MOVE"
	ErrConflict  ErrorCode = "CONFLICT"
)

// SweepError represents a structured error with code and details
type SweepError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SweepError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SweepError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SweepError) Is(target error) bool {
	var targetErr *SweepError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SweepError with the given code and message
func New(code ErrorCode, message string) *SweepError {
	return &SweepError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SweepError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SweepError {
	return &SweepError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SweepError
func Wrap(err error, code ErrorCode, message string) *SweepError {
	if err == nil {
		return nil
	}
	return &SweepError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SweepError {
	if err == nil {
		return nil
	}
	return &SweepError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SweepError) WithDetail(key string, value interface{}) *SweepError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// GetCode extracts the error code from an error, returning ErrUnknown
// for errors that are not SweepErrors
func GetCode(err error) ErrorCode {
	var sweepErr *SweepError
	if errors.As(err, &sweepErr) {
		return sweepErr.Code
	}
	return ErrUnknown
}

// IsCode checks whether err carries the given code
func IsCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
