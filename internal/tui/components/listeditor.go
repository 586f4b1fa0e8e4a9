package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/strategycanvas/internal/canvas"
	"github.com/dbmrq/strategycanvas/internal/tui/styles"
)

// ListKind selects which list of the canvas a ListEditor edits.
type ListKind int

const (
	ListFactors ListKind = iota
	ListCompetitors
	ListNewFactors
)

func (k ListKind) String() string {
	switch k {
	case ListFactors:
		return "factors"
	case ListCompetitors:
		return "competitors"
	case ListNewFactors:
		return "new factors"
	default:
		return "unknown"
	}
}

// Placeholder returns the hint shown in the empty entry at index i.
func (k ListKind) Placeholder(i int, own bool) string {
	switch k {
	case ListFactors:
		return fmt.Sprintf("Factor %d (e.g., Price, Quality, Customer Service)", i+1)
	case ListCompetitors:
		if own {
			return "Your Company Name"
		}
		return fmt.Sprintf("Competitor %d", i)
	case ListNewFactors:
		return fmt.Sprintf("New factor %d (e.g., Sustainability, Convenience)", i+1)
	default:
		return ""
	}
}

// ListEditor edits one list of a canvas in place. Every keystroke is
// written back to the state, so the state is always current.
type ListEditor struct {
	kind    ListKind
	state   *canvas.State
	inputs  []*TextInput
	cursor  int
	focused bool
	width   int
}

// NewListEditor creates an editor for the given list of s.
func NewListEditor(kind ListKind, s *canvas.State) *ListEditor {
	e := &ListEditor{kind: kind, state: s, width: 60}
	e.Sync()
	return e
}

// Kind returns the list being edited.
func (e *ListEditor) Kind() ListKind {
	return e.kind
}

// Len returns the number of entries, blank ones included.
func (e *ListEditor) Len() int {
	return len(e.inputs)
}

// Cursor returns the index of the selected entry.
func (e *ListEditor) Cursor() int {
	return e.cursor
}

// Value returns the text of entry i.
func (e *ListEditor) Value(i int) string {
	if i < 0 || i >= len(e.inputs) {
		return ""
	}
	return e.inputs[i].Value()
}

// Sync rebuilds the inputs from the state. Call it after the state changed
// outside the editor, such as after a reset.
func (e *ListEditor) Sync() {
	values, owns := e.entries()
	e.inputs = make([]*TextInput, len(values))
	for i, v := range values {
		in := NewTextInput(fmt.Sprintf("%s-%d", e.kind, i), "")
		in.SetPlaceholder(e.kind.Placeholder(i, owns[i]))
		in.SetWidth(e.width)
		in.SetValue(v)
		e.inputs[i] = in
	}
	if e.cursor >= len(e.inputs) {
		e.cursor = len(e.inputs) - 1
	}
	if e.cursor < 0 {
		e.cursor = 0
	}
	if e.focused {
		e.focusCursor()
	}
}

func (e *ListEditor) entries() (values []string, owns []bool) {
	switch e.kind {
	case ListCompetitors:
		for _, c := range e.state.Competitors() {
			values = append(values, c.Name)
			owns = append(owns, c.Own)
		}
	case ListNewFactors:
		for _, f := range e.state.NewFactors() {
			values = append(values, f.Label)
			owns = append(owns, false)
		}
	default:
		for _, f := range e.state.Factors() {
			values = append(values, f.Label)
			owns = append(owns, false)
		}
	}
	return values, owns
}

func (e *ListEditor) add() {
	switch e.kind {
	case ListCompetitors:
		e.state.AddCompetitor()
	case ListNewFactors:
		e.state.AddNewFactor()
	default:
		e.state.AddFactor()
	}
}

func (e *ListEditor) remove(i int) bool {
	switch e.kind {
	case ListCompetitors:
		return e.state.RemoveCompetitor(i)
	case ListNewFactors:
		return e.state.RemoveNewFactor(i)
	default:
		return e.state.RemoveFactor(i)
	}
}

func (e *ListEditor) update(i int, text string) {
	switch e.kind {
	case ListCompetitors:
		e.state.UpdateCompetitor(i, text)
	case ListNewFactors:
		e.state.UpdateNewFactor(i, text)
	default:
		e.state.UpdateFactor(i, text)
	}
}

// Focus focuses the selected entry.
func (e *ListEditor) Focus() tea.Cmd {
	e.focused = true
	return e.focusCursor()
}

// Blur removes focus from every entry.
func (e *ListEditor) Blur() {
	e.focused = false
	for _, in := range e.inputs {
		in.Blur()
	}
}

// Focused returns whether the editor has focus.
func (e *ListEditor) Focused() bool {
	return e.focused
}

// SetWidth sets the width of the entries.
func (e *ListEditor) SetWidth(width int) {
	e.width = width
	for _, in := range e.inputs {
		in.SetWidth(width)
	}
}

func (e *ListEditor) focusCursor() tea.Cmd {
	var cmd tea.Cmd
	for i, in := range e.inputs {
		if i == e.cursor {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

func (e *ListEditor) move(delta int) tea.Cmd {
	next := e.cursor + delta
	if next < 0 || next >= len(e.inputs) {
		return nil
	}
	e.cursor = next
	return e.focusCursor()
}

// Update handles input while the editor has focus. Tab and Esc are left to
// the caller.
func (e *ListEditor) Update(msg tea.Msg) tea.Cmd {
	if !e.focused || len(e.inputs) == 0 {
		return nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "shift+tab":
			return e.move(-1)
		case "down":
			return e.move(1)
		case "enter":
			if e.cursor < len(e.inputs)-1 {
				return e.move(1)
			}
			// A trailing blank entry is reused rather than followed by another.
			if strings.TrimSpace(e.inputs[e.cursor].Value()) == "" {
				return nil
			}
			e.add()
			e.cursor = len(e.inputs)
			e.Sync()
			return e.focusCursor()
		case "ctrl+x":
			if e.remove(e.cursor) {
				e.Sync()
				return e.focusCursor()
			}
			return nil
		}
	}

	in := e.inputs[e.cursor]
	before := in.Value()
	_, cmd := in.Update(msg)
	if after := in.Value(); after != before {
		e.update(e.cursor, after)
	}
	return cmd
}

// View renders the entries, one per line.
func (e *ListEditor) View() string {
	_, owns := e.entries()

	var b strings.Builder
	for i, in := range e.inputs {
		marker := "  "
		if e.focused && i == e.cursor {
			marker = styles.KeyStyle.Render("› ")
		}
		num := styles.MutedTextStyle.Render(fmt.Sprintf("%2d. ", i+1))
		b.WriteString(marker + num + in.View())
		if i < len(owns) && owns[i] {
			b.WriteString(" " + lipgloss.NewStyle().Foreground(styles.Primary).Render("(you)"))
		}
		if i < len(e.inputs)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
