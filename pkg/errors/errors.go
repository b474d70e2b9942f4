// Package errors provides structured error types for boxshuffle.
//
// The geometry, layout and interaction packages never fail: they clamp.
// Errors only arise at the edges of the system (reading images, loading
// configuration, encoding and delivering exports), and those edges report
// them through this package so that callers can branch on a stable code
// and show the user a clean message.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Missing resources
//   - SINK_*: Export delivery failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "max_attempts must be positive, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeSinkRejected, origErr, "clipboard write")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Image acquisition errors
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"
	ErrCodeUnsupportedImage Code = "UNSUPPORTED_IMAGE"
	ErrCodeDecodeFailed     Code = "DECODE_FAILED"
	ErrCodeNoImage          Code = "NO_IMAGE"

	// Export errors
	ErrCodeEncodeFailed    Code = "ENCODE_FAILED"
	ErrCodeSinkRejected    Code = "SINK_REJECTED"
	ErrCodeSinkUnavailable Code = "SINK_UNAVAILABLE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Recoverable reports whether err leaves in-memory state intact and can be
// shown to the user as a notice instead of aborting the program.
// Export delivery failures are the canonical example.
func Recoverable(err error) bool {
	switch GetCode(err) {
	case ErrCodeSinkRejected, ErrCodeSinkUnavailable, ErrCodeNoImage, ErrCodeEncodeFailed:
		return true
	}
	return false
}
