package components

import (
	"strings"
	"testing"

	"github.com/dbmrq/strategycanvas/internal/canvas"
)

// gridState has factors Price, Quality, Service and competitors
// Your Company and Acme.
func gridState(t *testing.T) *canvas.State {
	t.Helper()
	s := canvas.NewState()
	s.UpdateFactor(0, "Price")
	for _, label := range []string{"Quality", "Service"} {
		s.AddFactor()
		s.UpdateFactor(len(s.Factors())-1, label)
	}
	s.AddCompetitor()
	s.UpdateCompetitor(1, "Acme")
	return s
}

func TestRatingGridSetAndAdvance(t *testing.T) {
	s := gridState(t)
	g := NewRatingGrid(s)
	g.Focus()

	g.Update(keyMsg("3"))
	g.Update(keyMsg("0"))

	f := s.ValidFactors()
	c := s.ValidCompetitors()
	if r, ok := s.Rating(c[0].ID, f[0].ID); !ok || r != 3 {
		t.Errorf("own/Price = %v %v, want 3", r, ok)
	}
	if r, ok := s.Rating(c[1].ID, f[0].ID); !ok || r != 0 {
		t.Errorf("Acme/Price = %v %v, want 0 present", r, ok)
	}

	// Advancing past the last column wraps to the next row.
	if row, col := g.Cursor(); row != 1 || col != 0 {
		t.Errorf("cursor = (%d,%d), want (1,0)", row, col)
	}
}

func TestRatingGridFillCompletesGate(t *testing.T) {
	s := gridState(t)
	g := NewRatingGrid(s)
	g.Focus()

	for i := 0; i < 6; i++ {
		g.Update(keyMsg("4"))
	}
	if !s.CanLeaveRatings() {
		t.Errorf("missing = %d after rating every pair", s.MissingRatings())
	}
	if row, col := g.Cursor(); row != 2 || col != 1 {
		t.Errorf("cursor = (%d,%d), want to stay on the last cell", row, col)
	}
}

func TestRatingGridClear(t *testing.T) {
	for _, k := range []string{"-", "backspace", "delete"} {
		s := gridState(t)
		g := NewRatingGrid(s)
		g.Focus()

		g.Update(keyMsg("5"))
		g.Update(keyMsg("left"))
		g.Update(keyMsg(k))

		f, c, _ := g.Selected()
		if _, ok := s.Rating(c.ID, f.ID); ok {
			t.Errorf("%q: rating still present", k)
		}
	}
}

func TestRatingGridMovementClamps(t *testing.T) {
	s := gridState(t)
	g := NewRatingGrid(s)
	g.Focus()

	for _, k := range []string{"up", "left", "k", "h"} {
		g.Update(keyMsg(k))
	}
	if row, col := g.Cursor(); row != 0 || col != 0 {
		t.Errorf("cursor = (%d,%d), want (0,0)", row, col)
	}

	for _, k := range []string{"down", "j", "down", "down", "right", "l", "right"} {
		g.Update(keyMsg(k))
	}
	if row, col := g.Cursor(); row != 2 || col != 1 {
		t.Errorf("cursor = (%d,%d), want (2,1)", row, col)
	}

	s.RemoveFactor(2)
	g.Clamp()
	if row, _ := g.Cursor(); row != 1 {
		t.Errorf("row = %d after removal, want 1", row)
	}
}

func TestRatingGridIgnoresInputWhenBlurred(t *testing.T) {
	s := gridState(t)
	g := NewRatingGrid(s)
	g.Update(keyMsg("3"))
	if s.MissingRatings() != 6 {
		t.Error("blurred grid changed the state")
	}
}

func TestRatingGridView(t *testing.T) {
	s := gridState(t)
	g := NewRatingGrid(s)
	g.Focus()
	g.Update(keyMsg("2"))
	g.Update(keyMsg("left"))

	view := g.View()
	for _, want := range []string{"Price", "Acme", "Below average", "[2]", "5 rating(s) still missing"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	empty := NewRatingGrid(canvas.NewState())
	if !strings.Contains(empty.View(), "Nothing to rate") {
		t.Error("empty grid should explain itself")
	}
}
