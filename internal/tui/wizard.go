// Package tui provides the terminal wizard that builds a strategy canvas.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/strategycanvas/internal/canvas"
	apperrors "github.com/dbmrq/strategycanvas/internal/errors"
	"github.com/dbmrq/strategycanvas/internal/export"
	"github.com/dbmrq/strategycanvas/internal/logging"
	"github.com/dbmrq/strategycanvas/internal/tui/components"
	"github.com/dbmrq/strategycanvas/internal/tui/styles"
)

// exportFailedText is shown when an export fails without a message of its
// own.
const exportFailedText = "There was an error exporting the chart. Please try again."

// Focus says which zone of a step receives keys.
type Focus int

const (
	// FocusEdit routes keys to the step's list editor or rating grid.
	FocusEdit Focus = iota
	// FocusNav routes keys to the wizard shortcuts.
	FocusNav
)

// Exporter writes a canvas image. *export.Exporter satisfies it.
type Exporter interface {
	Export(ctx context.Context, s *canvas.State) (export.Result, error)
}

// Options configures the wizard.
type Options struct {
	// State is the canvas to edit. A fresh canvas is used when nil.
	State *canvas.State
	// Exporter writes images; export is unavailable when nil.
	Exporter Exporter
	// OutputDir is shown in the header.
	OutputDir string
	// Attribution is printed under the results table.
	Attribution string
}

// editor is a step's input area.
type editor interface {
	Focus() tea.Cmd
	Blur()
	Update(tea.Msg) tea.Cmd
	View() string
}

// WizardModel is the Bubble Tea model for the four-step wizard. It owns the
// canvas; every mutation happens in Update.
type WizardModel struct {
	ctx      context.Context
	state    *canvas.State
	exporter Exporter

	// Components
	header      *components.Header
	stepper     *components.Stepper
	statusBar   *components.StatusBar
	helpOverlay *components.HelpOverlay
	confirmDlg  *components.ConfirmDialog
	alert       *components.Alert
	spinner     *components.Spinner
	factors     *components.ListEditor
	competitors *components.ListEditor
	newFactors  *components.ListEditor
	grid        *components.RatingGrid
	backBtn     *components.Button
	nextBtn     *components.Button
	viewport    viewport.Model

	// State
	focus       Focus
	exporting   bool
	lastExport  string
	attribution string
	quitting    bool

	// Window dimensions
	width  int
	height int
}

// NewWizard creates a wizard positioned on the state's current step.
func NewWizard(ctx context.Context, opts Options) *WizardModel {
	if ctx == nil {
		ctx = context.Background()
	}
	s := opts.State
	if s == nil {
		s = canvas.NewState()
	}

	m := &WizardModel{
		ctx:         ctx,
		state:       s,
		exporter:    opts.Exporter,
		header:      components.NewHeader(),
		stepper:     components.NewStepper(),
		statusBar:   components.NewStatusBar(),
		helpOverlay: components.NewHelpOverlay(),
		confirmDlg:  components.NewConfirmDialog(),
		alert:       components.NewAlert(),
		spinner:     components.NewSpinner(),
		factors:     components.NewListEditor(components.ListFactors, s),
		competitors: components.NewListEditor(components.ListCompetitors, s),
		newFactors:  components.NewListEditor(components.ListNewFactors, s),
		grid:        components.NewRatingGrid(s),
		backBtn:     components.NewButton("back", "← Back"),
		nextBtn:     components.NewButton("next", "Next →"),
		viewport:    viewport.New(0, 0),
		attribution: opts.Attribution,
	}
	m.backBtn.SetStyle(components.ButtonStyleSecondary)
	if opts.OutputDir != "" {
		m.header.SetOutputDir(opts.OutputDir)
	}
	m.enterStep()
	m.refresh()
	return m
}

// State returns the canvas being edited.
func (m *WizardModel) State() *canvas.State {
	return m.state
}

// Focus returns the zone that receives keys.
func (m *WizardModel) Focus() Focus {
	return m.focus
}

// Init is the Bubble Tea initialization function.
func (m *WizardModel) Init() tea.Cmd {
	return m.setFocus(m.focus)
}

// Update handles messages and updates the model.
func (m *WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.refresh()
	return m, cmd
}

func (m *WizardModel) update(msg tea.Msg) tea.Cmd {
	// Overlays capture keys while visible; the alert must be dismissed
	// before anything else can happen.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch {
		case m.alert.IsVisible():
			return m.alert.Update(key)
		case m.confirmDlg.IsVisible():
			return m.confirmDlg.Update(key)
		case m.helpOverlay.IsVisible():
			return m.helpOverlay.Update(key)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return nil

	case spinner.TickMsg:
		_, cmd := m.spinner.Update(msg)
		return cmd

	case ExportDoneMsg:
		m.exporting = false
		m.spinner.Stop()
		m.lastExport = msg.Result.Path
		m.statusBar.SetMessage(components.StatusSuccess, "Exported "+msg.Result.Path)
		return nil

	case ExportFailedMsg:
		m.exporting = false
		m.spinner.Stop()
		message, detail := describeExportError(msg.Err)
		m.alert.Show("Export Failed", message, detail)
		m.statusBar.SetMessage(components.StatusError, message)
		return nil

	case components.ConfirmYesMsg:
		return m.handleConfirmYes(msg.Action)

	case components.ConfirmNoMsg, components.HelpClosedMsg, components.AlertDismissedMsg:
		return nil
	}

	// Cursor blink and other input-internal messages.
	if ed := m.editor(); ed != nil && m.focus == FocusEdit {
		return ed.Update(msg)
	}
	return nil
}

func (m *WizardModel) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return tea.Quit
	case "tab":
		if m.focus == FocusEdit {
			return m.setFocus(FocusNav)
		}
		return m.setFocus(FocusEdit)
	}

	if ed := m.editor(); ed != nil && m.focus == FocusEdit {
		if msg.String() == "esc" {
			return m.setFocus(FocusNav)
		}
		return ed.Update(msg)
	}

	return m.handleNavKey(msg)
}

func (m *WizardModel) handleNavKey(msg tea.KeyMsg) tea.Cmd {
	step := m.state.Step()

	switch msg.String() {
	case "q":
		if len(m.state.ValidFactors()) > 0 {
			m.confirmDlg.ShowQuit()
			return nil
		}
		m.quitting = true
		return tea.Quit

	case "?":
		m.helpOverlay.Toggle()
		return nil

	case "b":
		if m.state.Back() {
			return m.enterStep()
		}
		return nil

	case "n":
		if step == canvas.StepResults {
			return m.explore()
		}
		return m.next()

	case "enter":
		if step == canvas.StepResults {
			return nil
		}
		if _, _, activated := m.nextBtn.Update(msg); activated {
			return m.next()
		}
		m.statusBar.SetMessage(components.StatusWarning, m.state.Requirement())
		return nil

	case "x":
		if step == canvas.StepResults {
			return m.export()
		}
		return nil

	case "r":
		if step == canvas.StepResults {
			m.confirmDlg.ShowReset()
		}
		return nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// next advances when the current step is complete and otherwise says
// what is missing.
func (m *WizardModel) next() tea.Cmd {
	from := m.state.Step()
	if err := m.state.Next(); err != nil {
		m.statusBar.SetMessage(components.StatusWarning, m.state.Requirement())
		return nil
	}
	logging.Debug("step advanced", "from", from.String(), "to", m.state.Step().String())
	return m.enterStep()
}

func (m *WizardModel) explore() tea.Cmd {
	m.state.ShowExploration()
	m.newFactors.Sync()
	return m.setFocus(FocusEdit)
}

func (m *WizardModel) export() tea.Cmd {
	if m.exporting {
		return nil
	}
	if m.exporter == nil {
		m.statusBar.SetMessage(components.StatusError, "Export is not available")
		return nil
	}

	m.exporting = true
	m.statusBar.ClearMessage()

	snapshot := m.state.Clone()
	exp, ctx := m.exporter, m.ctx
	run := func() tea.Msg {
		res, err := exp.Export(ctx, snapshot)
		if err != nil {
			return ExportFailedMsg{Err: err}
		}
		return ExportDoneMsg{Result: res}
	}
	return tea.Batch(m.spinner.Start("Exporting strategy canvas..."), run)
}

func (m *WizardModel) handleConfirmYes(action components.ConfirmAction) tea.Cmd {
	switch action {
	case components.ConfirmActionReset:
		m.state.Reset()
		m.factors.Sync()
		m.competitors.Sync()
		m.newFactors.Sync()
		m.lastExport = ""
		cmd := m.enterStep()
		m.statusBar.SetMessage(components.StatusInfo, "Started a new canvas")
		logging.Info("canvas reset")
		return cmd
	case components.ConfirmActionQuit:
		m.quitting = true
		return tea.Quit
	}
	return nil
}

// editor returns the input area of the current step, or nil on the results
// step before exploration starts.
func (m *WizardModel) editor() editor {
	switch m.state.Step() {
	case canvas.StepFactors:
		return m.factors
	case canvas.StepCompetitors:
		return m.competitors
	case canvas.StepRatings:
		return m.grid
	case canvas.StepResults:
		if m.state.Exploring() {
			return m.newFactors
		}
	}
	return nil
}

// enterStep prepares the components for the state's current step.
func (m *WizardModel) enterStep() tea.Cmd {
	step := m.state.Step()
	m.stepper.SetStep(step)
	m.statusBar.ClearMessage()
	m.grid.Clamp()
	m.viewport.GotoTop()

	if step == canvas.StepResults {
		m.backBtn.SetLabel("← Edit Ratings")
	} else {
		m.backBtn.SetLabel("← Back")
	}

	if m.editor() != nil {
		return m.setFocus(FocusEdit)
	}
	return m.setFocus(FocusNav)
}

func (m *WizardModel) setFocus(f Focus) tea.Cmd {
	m.factors.Blur()
	m.competitors.Blur()
	m.newFactors.Blur()
	m.grid.Blur()

	ed := m.editor()
	if f == FocusEdit && ed != nil {
		m.focus = FocusEdit
		m.nextBtn.Blur()
		return ed.Focus()
	}
	m.focus = FocusNav
	return m.nextBtn.Focus()
}

// refresh brings the chrome in line with the state after every update.
func (m *WizardModel) refresh() {
	step := m.state.Step()

	m.header.SetCounts(len(m.state.ValidFactors()), len(m.state.ValidCompetitors()))
	m.backBtn.SetDisabled(step == canvas.StepFactors)
	m.nextBtn.SetDisabled(!m.state.CanAdvance())

	switch {
	case m.focus == FocusEdit && step == canvas.StepRatings:
		m.statusBar.SetShortcuts(components.RatingShortcuts...)
	case m.focus == FocusEdit:
		m.statusBar.SetShortcuts(components.ListEditShortcuts...)
	case step == canvas.StepResults:
		m.statusBar.SetShortcuts(components.ResultsShortcuts...)
	default:
		m.statusBar.SetShortcuts(components.NavShortcuts(step > canvas.StepFactors, m.state.CanAdvance())...)
	}

	if m.height > 0 {
		m.viewport.SetContent(m.bodyView())
	}
}

func (m *WizardModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.header.SetWidth(width)
	m.stepper.SetWidth(width)
	m.statusBar.SetWidth(width)
	m.helpOverlay.SetSize(min(width-4, 64), height)
	m.confirmDlg.SetSize(min(width-4, 56))
	m.alert.SetSize(min(width-4, 60))

	editorWidth := min(width-8, 72)
	m.factors.SetWidth(editorWidth)
	m.competitors.SetWidth(editorWidth)
	m.newFactors.SetWidth(editorWidth)

	// header, stepper, divider, buttons (3), spinner, status
	m.viewport.Width = width
	m.viewport.Height = max(height-8, 5)
}

func (m *WizardModel) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width - 2
}

// View renders the TUI.
func (m *WizardModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder
	b.WriteString(m.header.View() + "\n")
	b.WriteString(m.stepper.View() + "\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(styles.BorderColor).
		Render(strings.Repeat("─", max(m.width, 1))) + "\n")

	if m.height > 0 {
		b.WriteString(m.viewport.View() + "\n")
	} else {
		b.WriteString(m.bodyView() + "\n")
	}

	b.WriteString(m.navView() + "\n")
	if v := m.spinner.View(); v != "" {
		b.WriteString(v + "\n")
	}
	b.WriteString(m.statusBar.View())

	view := b.String()
	switch {
	case m.alert.IsVisible():
		view = m.renderOverlay(view, m.alert.View())
	case m.confirmDlg.IsVisible():
		view = m.renderOverlay(view, m.confirmDlg.View())
	case m.helpOverlay.IsVisible():
		view = m.renderOverlay(view, m.helpOverlay.View())
	}
	return view
}

func (m *WizardModel) bodyView() string {
	step := m.state.Step()

	var b strings.Builder
	b.WriteString(styles.PageTitleStyle.Render(step.Title()))
	b.WriteString("\n")
	b.WriteString(styles.MutedTextStyle.Render(stepDescription(step)))
	b.WriteString("\n\n")

	switch step {
	case canvas.StepFactors:
		b.WriteString(m.factors.View())
	case canvas.StepCompetitors:
		b.WriteString(m.competitors.View())
	case canvas.StepRatings:
		b.WriteString(m.grid.View())
	case canvas.StepResults:
		b.WriteString(m.resultsView())
	}

	b.WriteString("\n\n")
	b.WriteString(styles.MutedTextStyle.Render("Based on the Blue Ocean Strategy Canvas framework"))
	return b.String()
}

func (m *WizardModel) navView() string {
	if m.state.Step() == canvas.StepResults {
		return m.backBtn.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.backBtn.View(), "  ", m.nextBtn.View())
}

// renderOverlay centers an overlay over the screen. Without a known size
// the overlay is appended below the view.
func (m *WizardModel) renderOverlay(base, overlay string) string {
	if overlay == "" {
		return base
	}
	if m.width <= 0 || m.height <= 0 {
		return base + "\n" + overlay
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}

func stepDescription(step canvas.Step) string {
	switch step {
	case canvas.StepFactors:
		return "What factors do you compete on? List at least 3 key characteristics that matter in your industry."
	case canvas.StepCompetitors:
		return "List your main competitors. You can use real names or aliases."
	case canvas.StepRatings:
		return "Rate each competitor on every factor using the scale below:"
	case canvas.StepResults:
		return "Visualize how you compare against your competitors across all factors."
	default:
		return ""
	}
}

// describeExportError returns the alert text and a muted detail line.
func describeExportError(err error) (message, detail string) {
	message = exportFailedText

	var ce *apperrors.CanvasError
	if !errors.As(err, &ce) {
		if err != nil {
			detail = err.Error()
		}
		return message, detail
	}

	if ce.Message != "" {
		message = ce.Message
	}
	if ce.Cause != nil {
		detail = ce.Cause.Error()
		if stage := ce.Details["stage"]; stage != "" {
			detail = fmt.Sprintf("%s stage: %s", stage, detail)
		}
	}
	return message, detail
}

// Run starts the wizard on the alternate screen and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	m := NewWizard(ctx, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	logging.Info("wizard started", "step", m.state.Step().String())
	_, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return ctx.Err()
}
