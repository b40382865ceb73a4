// Package core defines the error taxonomy shared by the object model.
//
// Two kinds of failures exist at this layer: invalid local argument
// combinations (detected before any RPC is issued) and object-search
// failures (an existence or absence check that did not resolve within its
// bound, surfaced only when the caller opted into strict mode). Both are
// ordinary recoverable errors.
package core

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies an AutomationError.
type ErrorCategory int

const (
	ErrCategoryNone     ErrorCategory = iota // No error
	ErrCategoryArgument                      // Invalid argument combination, caught locally
	ErrCategorySearch                        // Element search/wait did not resolve
)

// String returns the string representation of ErrorCategory.
func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryArgument:
		return "argument"
	case ErrCategorySearch:
		return "search"
	default:
		return "none"
	}
}

// AutomationError represents a structured error with category and details.
type AutomationError struct {
	Category ErrorCategory
	Code     string                 // Machine-readable code: invalid_argument, object_not_found, etc.
	Message  string                 // Human-readable message
	Details  map[string]interface{} // Additional context
	Cause    error                  // Underlying error
}

// Error implements the error interface.
func (e *AutomationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *AutomationError) Unwrap() error {
	return e.Cause
}

// Is matches by code, so copies produced by WithMessage/WithDetails still
// compare equal to the predefined errors under errors.Is.
func (e *AutomationError) Is(target error) bool {
	t, ok := target.(*AutomationError)
	return ok && t.Code == e.Code
}

// WithCause returns a copy of the error with the given cause.
func (e *AutomationError) WithCause(cause error) *AutomationError {
	return &AutomationError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  e.Details,
		Cause:    cause,
	}
}

// WithMessage returns a copy of the error with a custom message.
func (e *AutomationError) WithMessage(msg string) *AutomationError {
	return &AutomationError{
		Category: e.Category,
		Code:     e.Code,
		Message:  msg,
		Details:  e.Details,
		Cause:    e.Cause,
	}
}

// WithMessagef returns a copy of the error with a formatted message.
func (e *AutomationError) WithMessagef(format string, v ...interface{}) *AutomationError {
	return e.WithMessage(fmt.Sprintf(format, v...))
}

// WithDetails returns a copy of the error with additional details.
func (e *AutomationError) WithDetails(details map[string]interface{}) *AutomationError {
	merged := make(map[string]interface{})
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	return &AutomationError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  merged,
		Cause:    e.Cause,
	}
}

// Predefined errors.
var (
	// Argument errors, raised before the RPC boundary is crossed.
	ErrInvalidArgument = &AutomationError{
		Category: ErrCategoryArgument,
		Code:     "invalid_argument",
		Message:  "invalid argument combination",
	}
	ErrTimeoutTooLong = &AutomationError{
		Category: ErrCategoryArgument,
		Code:     "timeout_too_long",
		Message:  "timeout exceeds the RPC channel ceiling",
	}

	// Search errors, raised only in strict mode.
	ErrObjectNotFound = &AutomationError{
		Category: ErrCategorySearch,
		Code:     "object_not_found",
		Message:  "no element matches the selector",
	}
	ErrObjectStillPresent = &AutomationError{
		Category: ErrCategorySearch,
		Code:     "object_still_present",
		Message:  "element still matches the selector",
	}
)

// NewAutomationError creates a new AutomationError with the given parameters.
func NewAutomationError(category ErrorCategory, code, message string) *AutomationError {
	return &AutomationError{
		Category: category,
		Code:     code,
		Message:  message,
	}
}

// IsArgumentError reports whether err is a locally-detected invalid-argument
// error.
func IsArgumentError(err error) bool {
	return isCategory(err, ErrCategoryArgument)
}

// IsSearchError reports whether err is an object-search failure.
func IsSearchError(err error) bool {
	return isCategory(err, ErrCategorySearch)
}

func isCategory(err error, cat ErrorCategory) bool {
	var ae *AutomationError
	if errors.As(err, &ae) {
		return ae.Category == cat
	}
	return false
}
