// Package components provides the widgets the strategy canvas wizard is
// built from.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/strategycanvas/internal/tui/styles"
)

// ShortcutDef defines a single keyboard shortcut.
type ShortcutDef struct {
	Key      string
	Desc     string
	Disabled bool
}

// ShortcutBar is a component that displays contextual keyboard shortcuts.
type ShortcutBar struct {
	shortcuts []ShortcutDef
	width     int
	centered  bool
}

// NewShortcutBar creates a new ShortcutBar with the given shortcuts.
func NewShortcutBar(shortcuts ...ShortcutDef) *ShortcutBar {
	return &ShortcutBar{
		shortcuts: shortcuts,
	}
}

// SetShortcuts replaces all shortcuts.
func (s *ShortcutBar) SetShortcuts(shortcuts ...ShortcutDef) {
	s.shortcuts = shortcuts
}

// Shortcuts returns the shortcuts currently shown.
func (s *ShortcutBar) Shortcuts() []ShortcutDef {
	return s.shortcuts
}

// SetWidth sets the bar width for alignment.
func (s *ShortcutBar) SetWidth(width int) {
	s.width = width
}

// SetCentered controls whether the bar content is centered.
func (s *ShortcutBar) SetCentered(centered bool) {
	s.centered = centered
}

// View renders the shortcut bar.
func (s *ShortcutBar) View() string {
	if len(s.shortcuts) == 0 {
		return ""
	}

	parts := make([]string, 0, len(s.shortcuts))
	for _, sc := range s.shortcuts {
		parts = append(parts, s.renderShortcut(sc))
	}

	content := strings.Join(parts, s.renderSeparator())

	if s.centered && s.width > 0 {
		containerStyle := lipgloss.NewStyle().
			Width(s.width).
			Align(lipgloss.Center)
		return containerStyle.Render(content)
	}

	return content
}

// renderShortcut renders a single shortcut (key:description).
func (s *ShortcutBar) renderShortcut(sc ShortcutDef) string {
	if sc.Disabled {
		return styles.DisabledKeyStyle.Render(sc.Key + ":" + sc.Desc)
	}
	return styles.KeyStyle.Render(sc.Key) + styles.HelpStyle.Render(":"+sc.Desc)
}

func (s *ShortcutBar) renderSeparator() string {
	return lipgloss.NewStyle().Foreground(styles.Muted).Render(" │ ")
}

// Shortcut sets for the wizard.
var (
	// ListEditShortcuts are shown while typing in a list editor.
	ListEditShortcuts = []ShortcutDef{
		{Key: "↑↓", Desc: "move"},
		{Key: "Enter", Desc: "next/add"},
		{Key: "Ctrl+X", Desc: "remove"},
		{Key: "Tab", Desc: "done editing"},
	}

	// RatingShortcuts are shown while the rating grid has focus.
	RatingShortcuts = []ShortcutDef{
		{Key: "←↑↓→", Desc: "move"},
		{Key: "0-5", Desc: "rate"},
		{Key: "-", Desc: "clear"},
		{Key: "Tab", Desc: "done rating"},
	}

	// ResultsShortcuts are shown on the results step.
	ResultsShortcuts = []ShortcutDef{
		{Key: "x", Desc: "export PNG"},
		{Key: "n", Desc: "explore new factors"},
		{Key: "b", Desc: "edit ratings"},
		{Key: "r", Desc: "start new canvas"},
		{Key: "q", Desc: "quit"},
		{Key: "?", Desc: "help"},
	}
)

// NavShortcuts returns the shortcuts for the navigation zone of a step.
// The next shortcut is greyed out when its gate is closed.
func NavShortcuts(canBack, canNext bool) []ShortcutDef {
	return []ShortcutDef{
		{Key: "Tab", Desc: "edit"},
		{Key: "b", Desc: "back", Disabled: !canBack},
		{Key: "n", Desc: "next", Disabled: !canNext},
		{Key: "q", Desc: "quit"},
		{Key: "?", Desc: "help"},
	}
}
