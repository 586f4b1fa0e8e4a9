// Package canvas holds the strategy canvas being built by the wizard: the
// factors and competitors the user enters, their ratings, and the step the
// wizard is on.
//
// Every factor and competitor carries a generated ID that survives edits,
// removals and reordering of its siblings, and ratings are keyed by those IDs.
// A State is not safe for concurrent use; the TUI mutates it only from its
// update loop and hands snapshots to anything else.
package canvas

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/dbmrq/strategycanvas/internal/errors"
)

// DefaultOwnName is the initial name of the user's own company.
const DefaultOwnName = "Your Company"

var (
	// ErrGateClosed is matched by errors returned from Next when the current
	// step's requirements are not met.
	ErrGateClosed = apperrors.ErrGate
	// ErrRatingOutOfRange is returned for ratings outside 0-5.
	ErrRatingOutOfRange = errors.New("rating must be between 0 and 5")
	// ErrUnknownID is returned when a rating refers to an entry that does
	// not exist.
	ErrUnknownID = errors.New("unknown factor or competitor")
)

// Factor is a dimension of competition, such as price or service.
type Factor struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Valid reports whether the factor has a non-blank label.
func (f Factor) Valid() bool {
	return strings.TrimSpace(f.Label) != ""
}

// Competitor is a company rated on the canvas. Own marks the user's company.
type Competitor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Own  bool   `json:"own"`
}

// Valid reports whether the competitor has a non-blank name.
func (c Competitor) Valid() bool {
	return strings.TrimSpace(c.Name) != ""
}

// State is the whole canvas plus the wizard position.
type State struct {
	step        Step
	factors     []Factor
	competitors []Competitor
	ratings     map[Key]Rating
	newFactors  []Factor
	exploring   bool

	newID func() string
}

// NewState returns a canvas with the initial defaults: step 1, one blank
// factor, the user's own company, no ratings, one blank new factor and the
// exploration panel hidden.
func NewState() *State {
	s := &State{newID: uuid.NewString}
	s.reset()
	return s
}

func (s *State) reset() {
	s.step = StepFactors
	s.factors = []Factor{{ID: s.newID()}}
	s.competitors = []Competitor{{ID: s.newID(), Name: DefaultOwnName, Own: true}}
	s.ratings = make(map[Key]Rating)
	s.newFactors = []Factor{{ID: s.newID()}}
	s.exploring = false
}

// Reset discards everything and returns to the initial defaults.
func (s *State) Reset() {
	s.reset()
}

// Step returns the current wizard step.
func (s *State) Step() Step { return s.step }

// Exploring reports whether the new-factor exploration panel is shown.
func (s *State) Exploring() bool { return s.exploring }

// Factors returns a copy of every factor, blank ones included.
func (s *State) Factors() []Factor {
	return append([]Factor(nil), s.factors...)
}

// Competitors returns a copy of every competitor, blank ones included.
func (s *State) Competitors() []Competitor {
	return append([]Competitor(nil), s.competitors...)
}

// NewFactors returns a copy of the exploratory factor list.
func (s *State) NewFactors() []Factor {
	return append([]Factor(nil), s.newFactors...)
}

// AddFactor appends a blank factor and returns it.
func (s *State) AddFactor() Factor {
	f := Factor{ID: s.newID()}
	s.factors = append(s.factors, f)
	return f
}

// RemoveFactor removes the factor at i and any ratings for it. It reports
// false and does nothing when i is out of range or the list would become empty.
func (s *State) RemoveFactor(i int) bool {
	if i < 0 || i >= len(s.factors) || len(s.factors) <= 1 {
		return false
	}
	id := s.factors[i].ID
	s.factors = append(s.factors[:i:i], s.factors[i+1:]...)
	for k := range s.ratings {
		if k.FactorID == id {
			delete(s.ratings, k)
		}
	}
	return true
}

// UpdateFactor sets the label of the factor at i.
func (s *State) UpdateFactor(i int, label string) bool {
	if i < 0 || i >= len(s.factors) {
		return false
	}
	s.factors[i].Label = label
	return true
}

// AddCompetitor appends a blank competitor and returns it.
func (s *State) AddCompetitor() Competitor {
	c := Competitor{ID: s.newID()}
	s.competitors = append(s.competitors, c)
	return c
}

// RemoveCompetitor removes the competitor at i and its ratings. The user's
// own company cannot be removed; trying is a silent no-op.
func (s *State) RemoveCompetitor(i int) bool {
	if i < 0 || i >= len(s.competitors) || len(s.competitors) <= 1 {
		return false
	}
	if s.competitors[i].Own {
		return false
	}
	id := s.competitors[i].ID
	s.competitors = append(s.competitors[:i:i], s.competitors[i+1:]...)
	for k := range s.ratings {
		if k.CompetitorID == id {
			delete(s.ratings, k)
		}
	}
	return true
}

// UpdateCompetitor renames the competitor at i. The own company may be
// renamed but keeps its flag and position.
func (s *State) UpdateCompetitor(i int, name string) bool {
	if i < 0 || i >= len(s.competitors) {
		return false
	}
	s.competitors[i].Name = name
	return true
}

// AddNewFactor appends a blank exploratory factor.
func (s *State) AddNewFactor() Factor {
	f := Factor{ID: s.newID()}
	s.newFactors = append(s.newFactors, f)
	return f
}

// RemoveNewFactor removes the exploratory factor at i, keeping at least one.
func (s *State) RemoveNewFactor(i int) bool {
	if i < 0 || i >= len(s.newFactors) || len(s.newFactors) <= 1 {
		return false
	}
	s.newFactors = append(s.newFactors[:i:i], s.newFactors[i+1:]...)
	return true
}

// UpdateNewFactor sets the label of the exploratory factor at i.
// Exploratory factors are never rated or charted.
func (s *State) UpdateNewFactor(i int, label string) bool {
	if i < 0 || i >= len(s.newFactors) {
		return false
	}
	s.newFactors[i].Label = label
	return true
}

// ShowExploration reveals the new-factor exploration panel.
func (s *State) ShowExploration() {
	s.exploring = true
}

// ValidFactors returns the factors with non-blank labels, in order.
func (s *State) ValidFactors() []Factor {
	var out []Factor
	for _, f := range s.factors {
		if f.Valid() {
			out = append(out, f)
		}
	}
	return out
}

// ValidCompetitors returns the competitors with non-blank names, in order.
func (s *State) ValidCompetitors() []Competitor {
	var out []Competitor
	for _, c := range s.competitors {
		if c.Valid() {
			out = append(out, c)
		}
	}
	return out
}

// ValidNewFactors returns the exploratory factors with non-blank labels.
func (s *State) ValidNewFactors() []Factor {
	var out []Factor
	for _, f := range s.newFactors {
		if f.Valid() {
			out = append(out, f)
		}
	}
	return out
}

// SetRating records r for the pair. r must be on the 0-5 scale; use
// ClearRating to unset.
func (s *State) SetRating(competitorID, factorID string, r Rating) error {
	if !r.Valid() {
		return fmt.Errorf("%w: %d", ErrRatingOutOfRange, r)
	}
	if !s.hasCompetitor(competitorID) || !s.hasFactor(factorID) {
		return fmt.Errorf("%w: competitor %q, factor %q", ErrUnknownID, competitorID, factorID)
	}
	s.ratings[Key{CompetitorID: competitorID, FactorID: factorID}] = r
	return nil
}

// ClearRating removes the rating for the pair, if any.
func (s *State) ClearRating(competitorID, factorID string) {
	delete(s.ratings, Key{CompetitorID: competitorID, FactorID: factorID})
}

// Rating returns the rating for the pair and whether one is present.
// An absent rating is reported as Unset.
func (s *State) Rating(competitorID, factorID string) (Rating, bool) {
	r, ok := s.ratings[Key{CompetitorID: competitorID, FactorID: factorID}]
	if !ok {
		return Unset, false
	}
	return r, true
}

// RatingOrZero returns the rating for the pair, treating unset as 0.
func (s *State) RatingOrZero(competitorID, factorID string) Rating {
	if r, ok := s.Rating(competitorID, factorID); ok {
		return r
	}
	return 0
}

func (s *State) hasFactor(id string) bool {
	for _, f := range s.factors {
		if f.ID == id {
			return true
		}
	}
	return false
}

func (s *State) hasCompetitor(id string) bool {
	for _, c := range s.competitors {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of s. The copy shares nothing with s.
func (s *State) Clone() *State {
	c := &State{
		step:        s.step,
		factors:     s.Factors(),
		competitors: s.Competitors(),
		ratings:     make(map[Key]Rating, len(s.ratings)),
		newFactors:  s.NewFactors(),
		exploring:   s.exploring,
		newID:       s.newID,
	}
	for k, v := range s.ratings {
		c.ratings[k] = v
	}
	return c
}

// Snapshot is a read-only copy of a State's data.
type Snapshot struct {
	Step        Step
	Factors     []Factor
	Competitors []Competitor
	Ratings     map[Key]Rating
	NewFactors  []Factor
	Exploring   bool
}

// Snapshot copies the state's data into a plain value.
func (s *State) Snapshot() Snapshot {
	ratings := make(map[Key]Rating, len(s.ratings))
	for k, v := range s.ratings {
		ratings[k] = v
	}
	return Snapshot{
		Step:        s.step,
		Factors:     s.Factors(),
		Competitors: s.Competitors(),
		Ratings:     ratings,
		NewFactors:  s.NewFactors(),
		Exploring:   s.exploring,
	}
}
