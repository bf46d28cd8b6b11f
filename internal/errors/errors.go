// Package errors provides a lightweight structured error type (WeaveError)
// for category-based classification in the pipeline and CLI.
package errors

import (
	"fmt"
)

// Category classifies a WeaveError for exit-code mapping and reporting.
type Category string

const (
	// User-facing configuration and input errors
	CategoryConfig     Category = "config"
	CategoryValidation Category = "validation"

	// External collaborator errors (prose renderer, highlighter, templater)
	CategoryRender Category = "render"

	// Pipeline integrity errors (fragment/block desynchronization)
	CategoryIntegrity Category = "integrity"

	// Environment and filesystem errors
	CategoryFileSystem Category = "filesystem"

	// Everything else
	CategoryInternal Category = "internal"
)

// Severity indicates how critical an error is.
type Severity string

const (
	SeverityFatal   Severity = "fatal"   // Stops the run
	SeverityError   Severity = "error"   // Error, but not fatal
	SeverityWarning Severity = "warning" // Advisory only
)

// WeaveError is a structured error with category, severity, and context.
type WeaveError struct {
	Category Category      `json:"category"`
	Severity Severity      `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for WeaveError.
type ContextFields map[string]any

// Error implements the error interface.
func (e *WeaveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling.
func (e *WeaveError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error.
func (e *WeaveError) WithContext(key string, value any) *WeaveError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new WeaveError.
func New(category Category, severity Severity, message string) *WeaveError {
	return &WeaveError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new WeaveError that wraps an existing error.
func Wrap(err error, category Category, severity Severity, message string) *WeaveError {
	return &WeaveError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category.
func IsCategory(err error, category Category) bool {
	if we, ok := err.(*WeaveError); ok {
		return we.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns
// CategoryInternal if not a WeaveError.
func GetCategory(err error) Category {
	if we, ok := err.(*WeaveError); ok {
		return we.Category
	}
	return CategoryInternal
}
