package tui

import (
	"github.com/dbmrq/strategycanvas/internal/export"
)

// ExportDoneMsg is sent when an export wrote its image.
type ExportDoneMsg struct {
	Result export.Result
}

// ExportFailedMsg is sent when an export failed at any stage.
type ExportFailedMsg struct {
	Err error
}
