package canvas

import (
	"fmt"
	"testing"
)

// sequentialIDs makes IDs predictable in failure output.
func sequentialIDs(s *State) {
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// fill builds a state with the given factor labels and competitor names.
// The first name replaces the own company's name.
func fill(t *testing.T, factors, competitors []string) *State {
	t.Helper()
	s := NewState()
	sequentialIDs(s)
	s.Reset()

	for i, label := range factors {
		if i > 0 {
			s.AddFactor()
		}
		s.UpdateFactor(i, label)
	}
	for i, name := range competitors {
		if i > 0 {
			s.AddCompetitor()
		}
		s.UpdateCompetitor(i, name)
	}
	return s
}

// rateAll gives every valid pair the rating r.
func rateAll(t *testing.T, s *State, r Rating) {
	t.Helper()
	for _, c := range s.ValidCompetitors() {
		for _, f := range s.ValidFactors() {
			if err := s.SetRating(c.ID, f.ID, r); err != nil {
				t.Fatalf("SetRating(%s, %s) error = %v", c.Name, f.Label, err)
			}
		}
	}
}
