package canvas

// Step is one page of the wizard.
type Step int

const (
	StepFactors Step = iota + 1
	StepCompetitors
	StepRatings
	StepResults
)

// Steps lists the wizard steps in order.
func Steps() []Step {
	return []Step{StepFactors, StepCompetitors, StepRatings, StepResults}
}

// String returns the short label shown in the step indicator.
func (s Step) String() string {
	switch s {
	case StepFactors:
		return "Factors"
	case StepCompetitors:
		return "Competitors"
	case StepRatings:
		return "Ratings"
	case StepResults:
		return "Results"
	default:
		return "Unknown"
	}
}

// Title returns the heading of the step's page.
func (s Step) Title() string {
	switch s {
	case StepFactors:
		return "Define Your Competitive Factors"
	case StepCompetitors:
		return "Identify Your Competitors"
	case StepRatings:
		return "Rate Each Factor"
	case StepResults:
		return "Your Strategy Canvas"
	default:
		return ""
	}
}

// Valid reports whether s is one of the four wizard steps.
func (s Step) Valid() bool {
	return s >= StepFactors && s <= StepResults
}
