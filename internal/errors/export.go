package errors

import (
	"fmt"
)

// ExportFailed wraps a failure in one stage of the image export.
// The stage is "chart", "layout", "encode" or "write".
func ExportFailed(stage string, cause error) *CanvasError {
	return &CanvasError{
		Kind:    ErrExport,
		Message: "There was an error exporting the chart. Please try again.",
		Cause:   cause,
		Details: map[string]string{
			"stage": stage,
		},
		Suggestion: "Nothing on the canvas was changed. Retry the export; if it keeps failing, check that the output directory is writable.",
	}
}

// DefinitionInvalid creates an error for a canvas definition file that
// cannot be turned into a complete canvas.
func DefinitionInvalid(path, reason string) *CanvasError {
	return &CanvasError{
		Kind:    ErrDefinition,
		Message: fmt.Sprintf("invalid canvas definition: %s", reason),
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `A definition needs at least 3 factors, at least 2 competitors
(the first one is your company) and a 0-5 rating for every pair:

  factors: [Price, Quality, Service]
  competitors:
    - name: Your Company
      ratings: {Price: 3, Quality: 4, Service: 5}
    - name: Acme
      ratings: {Price: 4, Quality: 2, Service: 1}`,
	}
}

// DefinitionNotFound creates an error for a missing definition file.
func DefinitionNotFound(path string) *CanvasError {
	return &CanvasError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("canvas definition not found: %s", path),
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check the path passed to --file.",
	}
}

// GateClosed creates an error for an attempt to leave a wizard step whose
// requirements are not met yet.
func GateClosed(step, requirement string) *CanvasError {
	return &CanvasError{
		Kind:       ErrGate,
		Message:    fmt.Sprintf("cannot leave %s yet", step),
		Suggestion: requirement,
		Details: map[string]string{
			"step": step,
		},
	}
}
