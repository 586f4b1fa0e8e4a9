package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/strategycanvas/internal/tui/styles"
)

// Alert is a blocking message box. While it is visible it swallows every
// key; only enter or esc dismiss it.
type Alert struct {
	visible bool
	title   string
	message string
	detail  string
	width   int
}

// NewAlert creates a hidden alert.
func NewAlert() *Alert {
	return &Alert{width: 56}
}

// Show displays the alert. detail is rendered muted below the message and
// may be empty.
func (a *Alert) Show(title, message, detail string) {
	a.visible = true
	a.title = title
	a.message = message
	a.detail = detail
}

// Hide hides the alert.
func (a *Alert) Hide() {
	a.visible = false
}

// IsVisible returns whether the alert is visible.
func (a *Alert) IsVisible() bool {
	return a.visible
}

// Message returns the main alert text.
func (a *Alert) Message() string {
	return a.message
}

// SetSize sets the alert width.
func (a *Alert) SetSize(width int) {
	a.width = width
}

// Update handles input messages.
func (a *Alert) Update(msg tea.Msg) tea.Cmd {
	if !a.visible {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "esc", " ":
			a.Hide()
			return func() tea.Msg {
				return AlertDismissedMsg{}
			}
		}
	}
	return nil
}

// View renders the alert.
func (a *Alert) View() string {
	if !a.visible {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(styles.Error).
		Bold(true).
		Padding(0, 1).
		Width(a.width - 4)
	b.WriteString(titleStyle.Render("  " + a.title))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().Foreground(styles.Foreground).Width(a.width - 8)
	b.WriteString(body.Render(a.message))
	b.WriteString("\n")

	if a.detail != "" {
		b.WriteString("\n")
		b.WriteString(styles.MutedTextStyle.Width(a.width - 8).Render(a.detail))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.ButtonPrimaryStyle.Render("OK"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(styles.Error).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}

// AlertDismissedMsg is sent when the alert is closed.
type AlertDismissedMsg struct{}
