// Package errors provides the structured error type the efx CLI shows to
// users. Library packages use plain sentinel errors; this type exists to
// attach a code, category, and detail to failures that reach the
// terminal.
package errors

import (
	"fmt"
	"strings"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig  Category = "config"
	CategoryTheme   Category = "theme"
	CategoryPreview Category = "preview"
	CategoryCLI     Category = "cli"
)

// Error is a structured error with a code, category, and optional detail.
type Error struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (config, theme, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// New creates a structured error.
func New(code string, category Category, message string) *Error {
	return &Error{Code: code, Category: category, Message: message}
}

// Wrap creates a structured error around an underlying one.
func Wrap(err error, code string, category Category, message string) *Error {
	return &Error{Code: code, Category: category, Message: message, Wrapped: err}
}

// WithDetail adds a longer explanation to the error.
func (e *Error) WithDetail(format string, args ...any) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Format renders the error for the terminal: code, category, message,
// then indented detail and cause lines.
func (e *Error) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]: %s", e.Code, e.Category, e.Message)
	if e.Detail != "" {
		fmt.Fprintf(&b, "\n  %s", e.Detail)
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "\n  caused by: %s", e.Wrapped)
	}
	return b.String()
}
