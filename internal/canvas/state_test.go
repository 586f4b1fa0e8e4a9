package canvas

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var ignoreIDs = cmp.Options{
	cmpopts.IgnoreFields(Factor{}, "ID"),
	cmpopts.IgnoreFields(Competitor{}, "ID"),
	cmpopts.EquateEmpty(),
}

func initialSnapshot() Snapshot {
	return Snapshot{
		Step:        StepFactors,
		Factors:     []Factor{{}},
		Competitors: []Competitor{{Name: "Your Company", Own: true}},
		Ratings:     map[Key]Rating{},
		NewFactors:  []Factor{{}},
		Exploring:   false,
	}
}

func TestNewState(t *testing.T) {
	s := NewState()

	if diff := cmp.Diff(initialSnapshot(), s.Snapshot(), ignoreIDs); diff != "" {
		t.Errorf("NewState() mismatch (-want +got):\n%s", diff)
	}

	ids := map[string]bool{}
	for _, f := range s.Factors() {
		ids[f.ID] = true
	}
	for _, c := range s.Competitors() {
		ids[c.ID] = true
	}
	for _, f := range s.NewFactors() {
		ids[f.ID] = true
	}
	if len(ids) != 3 {
		t.Errorf("expected 3 distinct IDs, got %v", ids)
	}
}

func TestRemoveFactor(t *testing.T) {
	tests := []struct {
		name    string
		labels  []string
		remove  int
		want    []string
		changed bool
	}{
		{"middle", []string{"a", "b", "c"}, 1, []string{"a", "c"}, true},
		{"last", []string{"a", "b"}, 1, []string{"a"}, true},
		{"only entry", []string{"a"}, 0, []string{"a"}, false},
		{"negative index", []string{"a", "b"}, -1, []string{"a", "b"}, false},
		{"past end", []string{"a", "b"}, 2, []string{"a", "b"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fill(t, tt.labels, nil)
			if got := s.RemoveFactor(tt.remove); got != tt.changed {
				t.Errorf("RemoveFactor(%d) = %v, want %v", tt.remove, got, tt.changed)
			}
			var got []string
			for _, f := range s.Factors() {
				got = append(got, f.Label)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("labels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRemoveOwnCompetitorIsNoop(t *testing.T) {
	s := fill(t, nil, []string{"Mine", "Acme", "Globex"})
	before := s.Snapshot()

	if s.RemoveCompetitor(0) {
		t.Error("RemoveCompetitor(0) should report no change")
	}
	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Errorf("state changed (-before +after):\n%s", diff)
	}
}

func TestRemoveCompetitor(t *testing.T) {
	s := fill(t, nil, []string{"Mine", "Acme", "Globex"})

	if !s.RemoveCompetitor(1) {
		t.Fatal("RemoveCompetitor(1) should succeed")
	}
	got := s.Competitors()
	if len(got) != 2 || got[0].Name != "Mine" || !got[0].Own || got[1].Name != "Globex" {
		t.Errorf("competitors = %+v", got)
	}
}

func TestUpdateOwnCompetitorKeepsFlag(t *testing.T) {
	s := NewState()
	s.UpdateCompetitor(0, "Stetter Inc")

	own := s.Competitors()[0]
	if own.Name != "Stetter Inc" || !own.Own {
		t.Errorf("own competitor = %+v", own)
	}
}

func TestValidFiltersBlankEntries(t *testing.T) {
	s := fill(t, []string{"Price", "  ", "", "Quality"}, []string{"Mine", "\t", "Acme"})

	var factors []string
	for _, f := range s.ValidFactors() {
		factors = append(factors, f.Label)
	}
	if diff := cmp.Diff([]string{"Price", "Quality"}, factors); diff != "" {
		t.Errorf("ValidFactors mismatch (-want +got):\n%s", diff)
	}

	var names []string
	for _, c := range s.ValidCompetitors() {
		names = append(names, c.Name)
	}
	if diff := cmp.Diff([]string{"Mine", "Acme"}, names); diff != "" {
		t.Errorf("ValidCompetitors mismatch (-want +got):\n%s", diff)
	}
}

func TestSetRating(t *testing.T) {
	s := fill(t, []string{"Price"}, []string{"Mine"})
	c := s.Competitors()[0].ID
	f := s.Factors()[0].ID

	if _, ok := s.Rating(c, f); ok {
		t.Fatal("new pair should have no rating")
	}
	if got := s.RatingOrZero(c, f); got != 0 {
		t.Errorf("RatingOrZero on unset = %d, want 0", got)
	}

	if err := s.SetRating(c, f, 0); err != nil {
		t.Fatalf("SetRating(0) error = %v", err)
	}
	if r, ok := s.Rating(c, f); !ok || r != 0 {
		t.Errorf("Rating() = %d, %v; want 0, true", r, ok)
	}

	for _, bad := range []Rating{-1, 6, 42} {
		if err := s.SetRating(c, f, bad); !errors.Is(err, ErrRatingOutOfRange) {
			t.Errorf("SetRating(%d) error = %v, want ErrRatingOutOfRange", bad, err)
		}
	}
	if r, _ := s.Rating(c, f); r != 0 {
		t.Errorf("rejected rating changed the stored value to %d", r)
	}

	if err := s.SetRating("nope", f, 3); !errors.Is(err, ErrUnknownID) {
		t.Errorf("SetRating with unknown competitor error = %v, want ErrUnknownID", err)
	}

	s.ClearRating(c, f)
	if _, ok := s.Rating(c, f); ok {
		t.Error("ClearRating should unset the pair")
	}
}

// Ratings follow their factor and competitor, not their position.
func TestRatingsSurviveReordering(t *testing.T) {
	s := fill(t, []string{"Price", "Quality", "Service"}, []string{"Mine", "Acme", "Globex"})
	comps := s.Competitors()
	facts := s.Factors()

	for ci, c := range comps {
		for fi, f := range facts {
			if err := s.SetRating(c.ID, f.ID, Rating((ci+fi)%6)); err != nil {
				t.Fatal(err)
			}
		}
	}

	s.RemoveFactor(0)
	s.RemoveCompetitor(1)

	for ci, c := range comps {
		for fi, f := range facts {
			r, ok := s.Rating(c.ID, f.ID)
			removed := ci == 1 || fi == 0
			if removed {
				if ok {
					t.Errorf("rating for removed pair (%s, %s) should be pruned", c.Name, f.Label)
				}
				continue
			}
			if !ok || r != Rating((ci+fi)%6) {
				t.Errorf("Rating(%s, %s) = %d, %v; want %d", c.Name, f.Label, r, ok, (ci+fi)%6)
			}
		}
	}
}

func TestNewFactors(t *testing.T) {
	s := NewState()
	s.ShowExploration()
	s.UpdateNewFactor(0, "Sustainability")
	s.AddNewFactor()
	s.UpdateNewFactor(1, "Convenience")
	s.AddNewFactor()

	if !s.Exploring() {
		t.Error("ShowExploration should reveal the panel")
	}
	if got := len(s.ValidNewFactors()); got != 2 {
		t.Errorf("ValidNewFactors() has %d entries, want 2", got)
	}
	if len(s.ValidFactors()) != 0 {
		t.Error("new factors must not leak into rated factors")
	}

	if !s.RemoveNewFactor(2) || len(s.NewFactors()) != 2 {
		t.Error("RemoveNewFactor(2) should drop the blank entry")
	}
	s.RemoveNewFactor(0)
	if s.RemoveNewFactor(0) {
		t.Error("the last new factor cannot be removed")
	}
}

func TestReset(t *testing.T) {
	s := fill(t, []string{"Price", "Quality", "Service"}, []string{"Mine", "Acme"})
	rateAll(t, s, 4)
	for s.Step() != StepResults {
		if err := s.Next(); err != nil {
			t.Fatalf("Next() from %v error = %v", s.Step(), err)
		}
	}
	s.ShowExploration()
	s.UpdateNewFactor(0, "Speed")

	s.Reset()

	if diff := cmp.Diff(initialSnapshot(), s.Snapshot(), ignoreIDs); diff != "" {
		t.Errorf("Reset() mismatch (-want +got):\n%s", diff)
	}
}

func TestClone(t *testing.T) {
	s := fill(t, []string{"Price", "Quality", "Service"}, []string{"Mine", "Acme"})
	rateAll(t, s, 2)

	c := s.Clone()
	if diff := cmp.Diff(s.Snapshot(), c.Snapshot()); diff != "" {
		t.Fatalf("Clone() mismatch (-orig +clone):\n%s", diff)
	}

	c.UpdateFactor(0, "Changed")
	c.RemoveCompetitor(1)
	c.ShowExploration()

	if s.Factors()[0].Label != "Price" {
		t.Error("editing the clone changed the original factors")
	}
	if len(s.Competitors()) != 2 {
		t.Error("editing the clone changed the original competitors")
	}
	if !s.CanLeaveRatings() {
		t.Error("pruning ratings on the clone changed the original ratings")
	}
	if s.Exploring() {
		t.Error("editing the clone changed the original panel state")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := fill(t, []string{"Price"}, []string{"Mine"})

	s.Factors()[0].Label = "mutated"
	s.Competitors()[0].Own = false
	snap := s.Snapshot()
	snap.Ratings[Key{"x", "y"}] = 1

	if s.Factors()[0].Label != "Price" || !s.Competitors()[0].Own {
		t.Error("accessors must not expose internal slices")
	}
	if _, ok := s.Rating("x", "y"); ok {
		t.Error("snapshot ratings must not alias state ratings")
	}
}
