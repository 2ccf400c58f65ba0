// ABOUTME: Error types and handling for the sniffclient library
// ABOUTME: Provides the typed error taxonomy for analysis submissions

package sniffclient

import (
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates the input was rejected before any network call
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeTimeout indicates the analysis request exceeded the client timeout
	ErrorTypeTimeout ErrorType = "timeout"

	// ErrorTypeServer indicates the server answered with a non-2xx status
	ErrorTypeServer ErrorType = "server"

	// ErrorTypeNetwork indicates a transport or response parsing failure
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeConfiguration indicates a client configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// User-facing messages for error states the server cannot describe
const (
	timeoutMessage = "The analysis took too long. Please try again."
	networkMessage = "Could not reach the analysis service. Check your connection and try again."
)

// Error represents a structured error from the library
type Error struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Cause      error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// Common errors
var (
	// ErrEmptyInput is returned when the submitted input is blank
	ErrEmptyInput = NewError(ErrorTypeValidation, "Please enter a URL or some text to analyze.")

	// ErrAnalysisInFlight is returned when a submission is attempted while one is outstanding
	ErrAnalysisInFlight = NewError(ErrorTypeValidation, "An analysis is already running.")
)

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrorTypeValidation
	}
	return false
}

// IsTimeoutError checks if an error is a timeout error
func IsTimeoutError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrorTypeTimeout
	}
	return false
}

// IsServerError checks if an error is a server-reported error
func IsServerError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrorTypeServer
	}
	return false
}

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrorTypeNetwork
	}
	return false
}

// UserMessage returns the message a UI should display for err.
// Library errors carry their own message; anything else maps to the
// generic network message.
func UserMessage(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Message
	}
	return networkMessage
}
