package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/strategycanvas/internal/tui/styles"
)

// Spinner is an animated spinner with status text and elapsed time. The
// wizard shows it while an export runs.
type Spinner struct {
	spinner    spinner.Model
	statusText string
	startTime  time.Time
	active     bool
}

// NewSpinner creates a new Spinner component with default styling.
func NewSpinner() *Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Secondary)
	return &Spinner{spinner: s}
}

// Start activates the spinner with the given status text and returns the
// first tick.
func (s *Spinner) Start(status string) tea.Cmd {
	s.statusText = status
	s.startTime = time.Now()
	s.active = true
	return s.spinner.Tick
}

// Stop deactivates the spinner. Later ticks are dropped.
func (s *Spinner) Stop() {
	s.active = false
}

// Active reports whether the spinner is running.
func (s *Spinner) Active() bool {
	return s.active
}

// Elapsed returns the elapsed time since Start was called.
func (s *Spinner) Elapsed() time.Duration {
	if s.startTime.IsZero() {
		return 0
	}
	return time.Since(s.startTime)
}

// Update handles spinner tick messages.
func (s *Spinner) Update(msg tea.Msg) (*Spinner, tea.Cmd) {
	if !s.active {
		return s, nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// View renders the spinner line, or nothing when inactive.
func (s *Spinner) View() string {
	if !s.active {
		return ""
	}
	status := lipgloss.NewStyle().Foreground(styles.Foreground).Render(s.statusText)
	elapsed := styles.MutedTextStyle.Render(fmt.Sprintf("(%s)", formatSpinnerDuration(s.Elapsed())))
	return fmt.Sprintf("%s %s %s", s.spinner.View(), status, elapsed)
}

func formatSpinnerDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
}
