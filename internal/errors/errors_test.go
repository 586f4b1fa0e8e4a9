package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestCanvasError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *CanvasError
		expected string
	}{
		{
			name:     "simple message",
			err:      New(ErrExport, "export failed"),
			expected: "export failed",
		},
		{
			name: "with cause",
			err: &CanvasError{
				Kind:    ErrConfig,
				Message: "config error",
				Cause:   errors.New("parse error"),
			},
			expected: "config error: parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCanvasError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, ErrExport, "wrapped error")

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Without cause, should return Kind
	errNoWrap := New(ErrGate, "no cause")
	if !errors.Is(errors.Unwrap(errNoWrap), ErrGate) {
		t.Errorf("Unwrap() should return Kind when no cause")
	}
}

func TestCanvasError_Is(t *testing.T) {
	err := New(ErrExport, "export failed")

	if !errors.Is(err, ErrExport) {
		t.Error("errors.Is should return true for matching Kind")
	}
	if errors.Is(err, ErrConfig) {
		t.Error("errors.Is should return false for non-matching Kind")
	}

	wrapped := Wrap(err, ErrDefinition, "wrapped")
	if !errors.Is(wrapped, ErrDefinition) {
		t.Error("errors.Is should return true for wrapped error Kind")
	}
	if !errors.Is(wrapped, ErrExport) {
		t.Error("errors.Is should see the Kind of the cause")
	}
}

func TestCanvasError_Format(t *testing.T) {
	err := &CanvasError{
		Kind:       ErrExport,
		Message:    "export failed",
		Suggestion: "Retry the export",
		DocLink:    "https://example.com/docs",
		Details: map[string]string{
			"stage": "layout",
			"path":  "out.png",
		},
	}

	formatted := err.Format()

	for _, want := range []string{
		"Error: export failed",
		"💡 Suggestion:",
		"Retry the export",
		"📚 Documentation:",
		"https://example.com/docs",
		"stage: layout",
	} {
		if !strings.Contains(formatted, want) {
			t.Errorf("Format() should contain %q, got:\n%s", want, formatted)
		}
	}

	// Details are sorted by key.
	if strings.Index(formatted, "path:") > strings.Index(formatted, "stage:") {
		t.Error("Format() should list details in key order")
	}
}

func TestCanvasError_WithDetails(t *testing.T) {
	err := New(ErrConfig, "config error")
	err.WithDetails("file", "config.yaml").WithDetails("line", "42")

	if err.Details["file"] != "config.yaml" {
		t.Error("WithDetails should set key")
	}
	if err.Details["line"] != "42" {
		t.Error("WithDetails should allow chaining")
	}
}

func TestCanvasError_WithCause(t *testing.T) {
	cause := errors.New("root cause")
	err := New(ErrExport, "export error").WithCause(cause)

	if !errors.Is(err.Cause, cause) {
		t.Error("WithCause should set cause")
	}
}

func TestWithSuggestion(t *testing.T) {
	err := WithSuggestion(ErrGate, "gate closed", "Add more factors")

	if err.Suggestion != "Add more factors" {
		t.Error("WithSuggestion should set Suggestion")
	}
}

func TestFormatAny(t *testing.T) {
	if got := FormatAny(nil); got != "" {
		t.Errorf("FormatAny(nil) = %q, want empty", got)
	}

	plain := FormatAny(errors.New("boom"))
	if plain != "Error: boom\n" {
		t.Errorf("FormatAny(plain) = %q", plain)
	}

	rich := FormatAny(ExportFailed("chart", errors.New("boom")))
	if !strings.Contains(rich, "Suggestion") {
		t.Errorf("FormatAny should use Format for CanvasError, got %q", rich)
	}
}
