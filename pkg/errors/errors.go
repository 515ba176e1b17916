// Package errors provides structured error types for the pindex application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes map onto the resolution pipeline:
//   - INVALID_*: Input validation failures (paths, package names)
//   - MALFORMED_*: Undecodable input (lockfiles, registry payloads)
//   - *_NOT_FOUND: A resolution step found no usable candidate
//   - REGISTRY_UNAVAILABLE / NETWORK_ERROR: Registry transport failures
//
// Absence of dependency files during location is not an error at all; the
// locator reports it with an empty result.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "directory must be absolute: %s", dir)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRegistryUnavailable, origErr, "fetch %s", url)
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
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidPackage Code = "INVALID_PACKAGE"
	ErrCodeMalformedInput Code = "MALFORMED_INPUT"

	// Resolution errors
	ErrCodeVersionNotFound  Code = "VERSION_NOT_FOUND"
	ErrCodeArtifactNotFound Code = "ARTIFACT_NOT_FOUND"
	ErrCodeURLConstruction  Code = "URL_CONSTRUCTION"

	// Registry transport errors
	ErrCodeRegistryUnavailable Code = "REGISTRY_UNAVAILABLE"
	ErrCodeMalformedResponse   Code = "MALFORMED_RESPONSE"
	ErrCodeNetwork             Code = "NETWORK_ERROR"

	// Internal errors
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
