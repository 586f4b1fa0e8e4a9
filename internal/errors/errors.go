// Package errors provides error types with actionable suggestions for
// strategycanvas. Errors carry a kind for errors.Is matching plus context
// that the CLI prints when a command fails.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrExport indicates the canvas image could not be produced or written.
	ErrExport = errors.New("export error")
	// ErrDefinition indicates an invalid canvas definition file.
	ErrDefinition = errors.New("definition error")
	// ErrGate indicates a wizard step cannot be left yet.
	ErrGate = errors.New("step incomplete")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
)

// CanvasError is the base error type for strategycanvas errors.
// It wraps an underlying error and provides additional context.
type CanvasError struct {
	// Kind is the category of error (e.g., ErrExport, ErrConfig).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// DocLink is a URL to relevant documentation.
	DocLink string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path, stage).
	Details map[string]string
}

// Error implements the error interface.
func (e *CanvasError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *CanvasError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error kind matches the target.
func (e *CanvasError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with suggestions and doc links.
func (e *CanvasError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	if e.DocLink != "" {
		sb.WriteString("\n📚 Documentation: ")
		sb.WriteString(e.DocLink)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *CanvasError) WithDetails(key, value string) *CanvasError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *CanvasError) WithCause(cause error) *CanvasError {
	e.Cause = cause
	return e
}

// New creates a new CanvasError with the given kind and message.
func New(kind error, message string) *CanvasError {
	return &CanvasError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *CanvasError {
	return &CanvasError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *CanvasError {
	return &CanvasError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// FormatAny formats err with Format when it is a CanvasError and falls back
// to a plain "Error: ..." line otherwise.
func FormatAny(err error) string {
	if err == nil {
		return ""
	}
	var ce *CanvasError
	if errors.As(err, &ce) {
		return ce.Format()
	}
	return "Error: " + err.Error() + "\n"
}
