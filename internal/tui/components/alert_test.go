package components

import (
	"strings"
	"testing"
)

func TestAlertBlocksUntilDismissed(t *testing.T) {
	a := NewAlert()
	a.Show("Export Failed", "There was an error exporting the chart. Please try again.", "layout stage: boom")

	for _, k := range []string{"y", "n", "q", "x", "tab"} {
		if cmd := a.Update(keyMsg(k)); cmd != nil {
			t.Errorf("key %q should be swallowed", k)
		}
		if !a.IsVisible() {
			t.Fatalf("key %q dismissed the alert", k)
		}
	}

	cmd := a.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter should dismiss")
	}
	if _, ok := cmd().(AlertDismissedMsg); !ok {
		t.Error("expected AlertDismissedMsg")
	}
	if a.IsVisible() {
		t.Error("alert should be hidden")
	}
}

func TestAlertView(t *testing.T) {
	a := NewAlert()
	if a.View() != "" {
		t.Error("hidden alert should render nothing")
	}

	a.SetSize(90)
	a.Show("Export Failed", "Please try again.", "write stage: disk full")
	view := a.View()
	for _, want := range []string{"Export Failed", "Please try again.", "disk full", "OK"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if a.Message() != "Please try again." {
		t.Errorf("Message() = %q", a.Message())
	}
}

func TestAlertEscDismisses(t *testing.T) {
	a := NewAlert()
	a.Show("t", "m", "")
	if cmd := a.Update(keyMsg("esc")); cmd == nil || a.IsVisible() {
		t.Error("esc should dismiss the alert")
	}
}
