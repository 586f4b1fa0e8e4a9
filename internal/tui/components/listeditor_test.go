package components

import (
	"strings"
	"testing"

	"github.com/dbmrq/strategycanvas/internal/canvas"
)

func labels(fs []canvas.Factor) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.Label
	}
	return out
}

func TestListEditorTypingWritesState(t *testing.T) {
	s := canvas.NewState()
	e := NewListEditor(ListFactors, s)
	e.Focus()

	e.Update(keyMsg("Price"))
	e.Update(keyMsg("enter"))
	e.Update(keyMsg("Quality"))

	got := labels(s.Factors())
	if strings.Join(got, ",") != "Price,Quality" {
		t.Errorf("factors = %v", got)
	}
	if e.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", e.Cursor())
	}
}

func TestListEditorEnterOnBlankDoesNotAdd(t *testing.T) {
	s := canvas.NewState()
	e := NewListEditor(ListFactors, s)
	e.Focus()

	e.Update(keyMsg("enter"))
	if len(s.Factors()) != 1 {
		t.Errorf("factors = %d, want 1", len(s.Factors()))
	}
}

func TestListEditorEnterMovesBeforeAdding(t *testing.T) {
	s := canvas.NewState()
	s.UpdateFactor(0, "Price")
	s.AddFactor()
	s.UpdateFactor(1, "Quality")

	e := NewListEditor(ListFactors, s)
	e.Focus()
	e.Update(keyMsg("enter"))

	if len(s.Factors()) != 2 || e.Cursor() != 1 {
		t.Errorf("len = %d cursor = %d, want 2 and 1", len(s.Factors()), e.Cursor())
	}
}

func TestListEditorRemove(t *testing.T) {
	s := canvas.NewState()
	s.UpdateFactor(0, "Price")
	s.AddFactor()
	s.UpdateFactor(1, "Quality")

	e := NewListEditor(ListFactors, s)
	e.Focus()
	e.Update(keyMsg("down"))
	e.Update(keyMsg("ctrl+x"))

	if got := labels(s.Factors()); len(got) != 1 || got[0] != "Price" {
		t.Errorf("factors = %v, want [Price]", got)
	}
	if e.Cursor() != 0 || e.Len() != 1 {
		t.Errorf("cursor = %d len = %d", e.Cursor(), e.Len())
	}

	// The last entry stays.
	e.Update(keyMsg("ctrl+x"))
	if len(s.Factors()) != 1 {
		t.Errorf("removed the last factor")
	}
}

func TestListEditorOwnCompetitor(t *testing.T) {
	s := canvas.NewState()
	s.AddCompetitor()

	e := NewListEditor(ListCompetitors, s)
	e.Focus()

	if got := e.Value(0); got != canvas.DefaultOwnName {
		t.Errorf("own entry = %q", got)
	}
	e.Update(keyMsg("ctrl+x"))
	if len(s.Competitors()) != 2 {
		t.Error("own competitor was removed")
	}

	e.Update(keyMsg(" Inc"))
	if got := s.Competitors()[0]; got.Name != "Your Company Inc" || !got.Own {
		t.Errorf("own competitor = %+v", got)
	}

	if !strings.Contains(e.View(), "(you)") {
		t.Error("own entry should be marked")
	}
}

func TestListKindPlaceholders(t *testing.T) {
	tests := []struct {
		kind ListKind
		i    int
		own  bool
		want string
	}{
		{ListFactors, 0, false, "Factor 1 (e.g., Price, Quality, Customer Service)"},
		{ListFactors, 3, false, "Factor 4 (e.g., Price, Quality, Customer Service)"},
		{ListCompetitors, 0, true, "Your Company Name"},
		{ListCompetitors, 2, false, "Competitor 2"},
		{ListNewFactors, 1, false, "New factor 2 (e.g., Sustainability, Convenience)"},
	}

	for _, tt := range tests {
		if got := tt.kind.Placeholder(tt.i, tt.own); got != tt.want {
			t.Errorf("%v.Placeholder(%d, %v) = %q, want %q", tt.kind, tt.i, tt.own, got, tt.want)
		}
	}
}

func TestListEditorSyncAfterReset(t *testing.T) {
	s := canvas.NewState()
	s.UpdateNewFactor(0, "Speed")
	s.AddNewFactor()

	e := NewListEditor(ListNewFactors, s)
	e.Focus()
	e.Update(keyMsg("down"))

	s.Reset()
	e.Sync()

	if e.Len() != 1 || e.Cursor() != 0 || e.Value(0) != "" {
		t.Errorf("after reset: len = %d cursor = %d value = %q", e.Len(), e.Cursor(), e.Value(0))
	}
}

func TestListEditorIgnoresInputWhenBlurred(t *testing.T) {
	s := canvas.NewState()
	e := NewListEditor(ListFactors, s)

	e.Update(keyMsg("Price"))
	if s.Factors()[0].Label != "" {
		t.Error("blurred editor changed the state")
	}
}
