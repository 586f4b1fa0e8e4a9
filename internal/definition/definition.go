// Package definition reads canvas definition files: YAML documents that list
// factors, competitors and ratings so a finished canvas can be rendered
// without going through the wizard.
//
//	factors: [Price, Quality, Service]
//	competitors:
//	  - name: Your Company
//	    ratings: {Price: 3, Quality: 4, Service: 5}
//	  - name: Acme
//	    ratings: {Price: 4, Quality: 2, Service: 1}
//	new_factors: [Sustainability]
//
// The first competitor is the user's own company.
package definition

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dbmrq/strategycanvas/internal/canvas"
	apperrors "github.com/dbmrq/strategycanvas/internal/errors"
)

// File is the on-disk form of a canvas.
type File struct {
	Factors     []string     `yaml:"factors"`
	Competitors []Competitor `yaml:"competitors"`
	NewFactors  []string     `yaml:"new_factors,omitempty"`
}

// Competitor is one entry of the competitors list. Ratings are keyed by
// factor label.
type Competitor struct {
	Name    string         `yaml:"name"`
	Ratings map[string]int `yaml:"ratings"`
}

// Load reads the definition at path and builds a canvas positioned on the
// results step.
func Load(path string) (*canvas.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.DefinitionNotFound(path)
		}
		return nil, apperrors.DefinitionInvalid(path, err.Error()).WithCause(err)
	}
	return Parse(path, data)
}

// Parse decodes a definition. path is used only in error messages.
func Parse(path string, data []byte) (*canvas.State, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, apperrors.DefinitionInvalid(path, "cannot parse YAML").WithCause(err)
	}
	s, err := f.State()
	if err != nil {
		return nil, apperrors.DefinitionInvalid(path, err.Error())
	}
	return s, nil
}

// State builds a canvas from f and walks it through every gate to the
// results step. Blank labels are dropped.
func (f *File) State() (*canvas.State, error) {
	s := canvas.NewState()

	factorIDs := map[string]string{}
	n := 0
	for _, label := range f.Factors {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, dup := factorIDs[label]; dup {
			return nil, fmt.Errorf("factor %q is listed twice", label)
		}
		if n > 0 {
			s.AddFactor()
		}
		s.UpdateFactor(n, label)
		factorIDs[label] = s.Factors()[n].ID
		n++
	}

	n = 0
	for _, c := range f.Competitors {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		if n > 0 {
			s.AddCompetitor()
		}
		s.UpdateCompetitor(n, name)
		id := s.Competitors()[n].ID
		n++

		for label, value := range c.Ratings {
			fid, ok := factorIDs[strings.TrimSpace(label)]
			if !ok {
				return nil, fmt.Errorf("competitor %q rates unknown factor %q", name, label)
			}
			if err := s.SetRating(id, fid, canvas.Rating(value)); err != nil {
				return nil, fmt.Errorf("competitor %q, factor %q: %w", name, label, err)
			}
		}
	}

	n = 0
	for _, label := range f.NewFactors {
		if strings.TrimSpace(label) == "" {
			continue
		}
		if n > 0 {
			s.AddNewFactor()
		}
		s.UpdateNewFactor(n, label)
		n++
	}
	if n > 0 {
		s.ShowExploration()
	}

	for s.Step() != canvas.StepResults {
		if err := s.Next(); err != nil {
			return nil, gateReason(s)
		}
	}
	return s, nil
}

func gateReason(s *canvas.State) error {
	switch s.Step() {
	case canvas.StepFactors:
		return fmt.Errorf("needs at least %d factors, has %d", canvas.MinFactors, len(s.ValidFactors()))
	case canvas.StepCompetitors:
		return fmt.Errorf("needs at least %d competitors, has %d", canvas.MinCompetitors, len(s.ValidCompetitors()))
	default:
		return fmt.Errorf("every competitor needs a rating for every factor, %d missing", s.MissingRatings())
	}
}

// FromState converts a canvas back into its file form, using only valid
// entries. Unset ratings are left out.
func FromState(s *canvas.State) File {
	var f File
	factors := s.ValidFactors()
	for _, fa := range factors {
		f.Factors = append(f.Factors, fa.Label)
	}
	for _, c := range s.ValidCompetitors() {
		entry := Competitor{Name: c.Name, Ratings: map[string]int{}}
		for _, fa := range factors {
			if r, ok := s.Rating(c.ID, fa.ID); ok {
				entry.Ratings[fa.Label] = int(r)
			}
		}
		f.Competitors = append(f.Competitors, entry)
	}
	for _, nf := range s.ValidNewFactors() {
		f.NewFactors = append(f.NewFactors, nf.Label)
	}
	return f
}

// Marshal encodes f as YAML.
func (f File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}

// Example returns a small complete definition, the one init --example
// writes.
func Example() File {
	return File{
		Factors: []string{"Price", "Quality", "Customer Service", "Convenience"},
		Competitors: []Competitor{
			{Name: canvas.DefaultOwnName, Ratings: map[string]int{"Price": 3, "Quality": 4, "Customer Service": 5, "Convenience": 2}},
			{Name: "Competitor A", Ratings: map[string]int{"Price": 4, "Quality": 3, "Customer Service": 2, "Convenience": 4}},
			{Name: "Competitor B", Ratings: map[string]int{"Price": 2, "Quality": 5, "Customer Service": 3, "Convenience": 1}},
		},
		NewFactors: []string{"Sustainability"},
	}
}
