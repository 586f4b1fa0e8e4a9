package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestExportFailed(t *testing.T) {
	cause := errors.New("rasterizer exploded")
	err := ExportFailed("layout", cause)

	if !errors.Is(err, ErrExport) {
		t.Error("ExportFailed should return ErrExport")
	}
	if !errors.Is(err, cause) {
		t.Error("ExportFailed should wrap the cause")
	}
	if err.Details["stage"] != "layout" {
		t.Errorf("stage detail = %q, want layout", err.Details["stage"])
	}
	if !strings.HasPrefix(err.Error(), "There was an error exporting the chart. Please try again.") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestDefinitionInvalid(t *testing.T) {
	err := DefinitionInvalid("canvas.yaml", "at least 3 factors are required")

	if !errors.Is(err, ErrDefinition) {
		t.Error("DefinitionInvalid should return ErrDefinition")
	}
	if !strings.Contains(err.Error(), "at least 3 factors") {
		t.Errorf("message should carry the reason, got %q", err.Error())
	}
	if !strings.Contains(err.Suggestion, "factors:") {
		t.Error("Suggestion should show an example definition")
	}
}

func TestDefinitionNotFound(t *testing.T) {
	err := DefinitionNotFound("missing.yaml")
	if !errors.Is(err, ErrNotFound) {
		t.Error("DefinitionNotFound should return ErrNotFound")
	}
	if err.Details["path"] != "missing.yaml" {
		t.Error("Should include path in details")
	}
}

func TestGateClosed(t *testing.T) {
	err := GateClosed("Factors", "Enter at least 3 factors.")
	if !errors.Is(err, ErrGate) {
		t.Error("GateClosed should return ErrGate")
	}
	if err.Suggestion != "Enter at least 3 factors." {
		t.Errorf("Suggestion = %q", err.Suggestion)
	}
}
