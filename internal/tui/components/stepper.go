package components

import (
	"fmt"
	"strings"

	"github.com/dbmrq/strategycanvas/internal/canvas"
	"github.com/dbmrq/strategycanvas/internal/tui/styles"
)

// Stepper shows where the wizard is: "Step 2/4", one dot per step and the
// step labels.
type Stepper struct {
	current canvas.Step
	width   int
}

// NewStepper creates a stepper on the first step.
func NewStepper() *Stepper {
	return &Stepper{current: canvas.StepFactors}
}

// SetStep sets the current step. Steps outside the wizard are ignored.
func (p *Stepper) SetStep(step canvas.Step) {
	if !step.Valid() {
		return
	}
	p.current = step
}

// Step returns the current step.
func (p *Stepper) Step() canvas.Step {
	return p.current
}

// SetWidth sets the width of the component.
func (p *Stepper) SetWidth(width int) {
	p.width = width
}

// View renders the stepper.
func (p *Stepper) View() string {
	steps := canvas.Steps()

	label := styles.StepCurrentStyle.Render(fmt.Sprintf("Step %d/%d", int(p.current), len(steps)))

	var dots, names []string
	for _, s := range steps {
		switch {
		case s < p.current:
			dots = append(dots, styles.StepDoneStyle.Render("●"))
			names = append(names, styles.StepDoneStyle.Render(s.String()))
		case s == p.current:
			dots = append(dots, styles.StepCurrentStyle.Render("●"))
			names = append(names, styles.StepCurrentStyle.Render(s.String()))
		default:
			dots = append(dots, styles.StepPendingStyle.Render("○"))
			names = append(names, styles.StepPendingStyle.Render(s.String()))
		}
	}

	line := fmt.Sprintf("%s  %s  %s", label, strings.Join(dots, " "),
		strings.Join(names, styles.MutedTextStyle.Render(" › ")))

	if p.width > 0 {
		return styles.StatusBarStyle.Width(p.width).Render(line)
	}
	return line
}
