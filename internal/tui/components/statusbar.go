package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/strategycanvas/internal/tui/styles"
)

// StatusLevel colours the status message.
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusSuccess
	StatusWarning
	StatusError
)

// StatusBar is the bottom line: a status message on the left and the
// contextual shortcuts on the right.
type StatusBar struct {
	message   string
	level     StatusLevel
	shortcuts *ShortcutBar
	width     int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{shortcuts: NewShortcutBar()}
}

// SetMessage sets the status message.
func (s *StatusBar) SetMessage(level StatusLevel, message string) {
	s.level = level
	s.message = message
}

// ClearMessage removes the status message.
func (s *StatusBar) ClearMessage() {
	s.message = ""
	s.level = StatusInfo
}

// Message returns the current status message.
func (s *StatusBar) Message() string {
	return s.message
}

// Level returns the level of the current status message.
func (s *StatusBar) Level() StatusLevel {
	return s.level
}

// SetShortcuts replaces the shortcuts shown on the right.
func (s *StatusBar) SetShortcuts(shortcuts ...ShortcutDef) {
	s.shortcuts.SetShortcuts(shortcuts...)
}

// Shortcuts returns the shortcuts shown on the right.
func (s *StatusBar) Shortcuts() []ShortcutDef {
	return s.shortcuts.Shortcuts()
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	left := ""
	if s.message != "" {
		left = s.messageStyle().Render(s.message)
	}
	right := s.shortcuts.View()

	containerStyle := lipgloss.NewStyle().
		Background(styles.Background).
		Padding(0, 1)

	if s.width > 0 {
		containerStyle = containerStyle.Width(s.width)

		padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
		if padding > 0 {
			return containerStyle.Render(left + strings.Repeat(" ", padding) + right)
		}
		if left != "" {
			return containerStyle.Render(left + "\n" + right)
		}
	}

	if left == "" {
		return containerStyle.Render(right)
	}
	return containerStyle.Render(left + "  " + right)
}

func (s *StatusBar) messageStyle() lipgloss.Style {
	switch s.level {
	case StatusSuccess:
		return styles.SuccessTextStyle
	case StatusWarning:
		return styles.WarningTextStyle
	case StatusError:
		return styles.ErrorTextStyle
	default:
		return lipgloss.NewStyle().Foreground(styles.MutedLight).Italic(true)
	}
}
