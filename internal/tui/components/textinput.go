package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/strategycanvas/internal/tui/styles"
)

// TextInput wraps the bubbles textinput with a label and the wizard's
// focused and unfocused styles.
type TextInput struct {
	model   textinput.Model
	label   string
	focused bool
	width   int
	id      string
}

// DefaultCharLimit caps the length of an entry.
const DefaultCharLimit = 120

// NewTextInput creates a new TextInput component. label may be empty.
func NewTextInput(id, label string) *TextInput {
	ti := textinput.New()
	ti.CharLimit = DefaultCharLimit
	ti.Width = 30
	ti.Prompt = ""

	return &TextInput{
		model: ti,
		label: label,
		id:    id,
	}
}

// ID returns the component's unique identifier.
func (t *TextInput) ID() string {
	return t.id
}

// Focus focuses the text input.
func (t *TextInput) Focus() tea.Cmd {
	t.focused = true
	return t.model.Focus()
}

// Blur removes focus from the text input.
func (t *TextInput) Blur() {
	t.focused = false
	t.model.Blur()
}

// Focused returns whether the text input is focused.
func (t *TextInput) Focused() bool {
	return t.focused
}

// SetValue sets the text input value and moves the cursor to the end.
func (t *TextInput) SetValue(value string) {
	t.model.SetValue(value)
	t.model.CursorEnd()
}

// Value returns the current text input value.
func (t *TextInput) Value() string {
	return t.model.Value()
}

// SetLabel sets the label shown before the input.
func (t *TextInput) SetLabel(label string) {
	t.label = label
}

// Label returns the label.
func (t *TextInput) Label() string {
	return t.label
}

// SetPlaceholder sets the placeholder text.
func (t *TextInput) SetPlaceholder(placeholder string) {
	t.model.Placeholder = placeholder
}

// Placeholder returns the placeholder text.
func (t *TextInput) Placeholder() string {
	return t.model.Placeholder
}

// SetWidth sets the width of the text input.
func (t *TextInput) SetWidth(width int) {
	t.width = width
	t.model.Width = width - len(t.label) - 5
	if t.model.Width < 10 {
		t.model.Width = 10
	}
}

// SetCharLimit sets the character limit.
func (t *TextInput) SetCharLimit(limit int) {
	t.model.CharLimit = limit
}

// Update handles messages for the text input.
func (t *TextInput) Update(msg tea.Msg) (*TextInput, tea.Cmd) {
	if !t.focused {
		return t, nil
	}

	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t *TextInput) View() string {
	labelStyle := styles.FormLabelStyle
	inputStyle := styles.FormInputStyle
	if t.focused {
		labelStyle = styles.FormLabelFocusedStyle
		inputStyle = styles.FormInputFocusedStyle
	}

	label := ""
	if t.label != "" {
		label = labelStyle.Render(t.label + ": ")
	}

	return label + inputStyle.Render(t.model.View())
}

// Reset clears the text input value.
func (t *TextInput) Reset() {
	t.model.Reset()
}
