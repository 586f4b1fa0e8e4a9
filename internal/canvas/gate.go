package canvas

import (
	apperrors "github.com/dbmrq/strategycanvas/internal/errors"
)

const (
	// MinFactors is the number of valid factors needed to leave step 1.
	MinFactors = 3
	// MinCompetitors is the number of valid competitors, own included,
	// needed to leave step 2.
	MinCompetitors = 2
)

// CanLeaveFactors reports whether at least MinFactors factors are filled in.
func (s *State) CanLeaveFactors() bool {
	return len(s.ValidFactors()) >= MinFactors
}

// CanLeaveCompetitors reports whether at least MinCompetitors competitors
// are filled in.
func (s *State) CanLeaveCompetitors() bool {
	return len(s.ValidCompetitors()) >= MinCompetitors
}

// CanLeaveRatings reports whether every valid competitor has a rating for
// every valid factor. A rating of 0 counts.
func (s *State) CanLeaveRatings() bool {
	return s.MissingRatings() == 0
}

// MissingRatings counts the valid pairs that have no rating yet.
func (s *State) MissingRatings() int {
	missing := 0
	for _, c := range s.ValidCompetitors() {
		for _, f := range s.ValidFactors() {
			if _, ok := s.Rating(c.ID, f.ID); !ok {
				missing++
			}
		}
	}
	return missing
}

// CanAdvance reports whether Next would move forward from the current step.
func (s *State) CanAdvance() bool {
	switch s.step {
	case StepFactors:
		return s.CanLeaveFactors()
	case StepCompetitors:
		return s.CanLeaveCompetitors()
	case StepRatings:
		return s.CanLeaveRatings()
	default:
		return false
	}
}

// Requirement describes what the current step still needs before Next is
// allowed. It is empty when the gate is open.
func (s *State) Requirement() string {
	if s.CanAdvance() {
		return ""
	}
	switch s.step {
	case StepFactors:
		return "Enter at least 3 factors to continue."
	case StepCompetitors:
		return "Enter at least 2 competitors, including your company, to continue."
	case StepRatings:
		return "Rate every competitor on every factor to continue."
	default:
		return "This is the last step."
	}
}

// Next moves to the following step. When the current step's gate is closed
// the state is left unchanged and the returned error matches ErrGateClosed.
func (s *State) Next() error {
	if !s.CanAdvance() {
		return apperrors.GateClosed(s.step.String(), s.Requirement())
	}
	s.step++
	return nil
}

// Back moves to the previous step without validating or clearing anything.
// It reports false on the first step.
func (s *State) Back() bool {
	if s.step <= StepFactors {
		return false
	}
	s.step--
	return true
}
