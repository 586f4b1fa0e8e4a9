package components

import (
	"strings"
	"testing"
)

func TestStatusBarMessage(t *testing.T) {
	s := NewStatusBar()
	s.SetShortcuts(ResultsShortcuts...)
	s.SetMessage(StatusWarning, "Enter at least 3 factors to continue.")

	if s.Level() != StatusWarning {
		t.Errorf("Level() = %v", s.Level())
	}
	view := s.View()
	if !strings.Contains(view, "Enter at least 3 factors to continue.") {
		t.Error("view should contain the message")
	}
	if !strings.Contains(view, "export PNG") {
		t.Error("view should contain the shortcuts")
	}

	s.ClearMessage()
	if s.Message() != "" || s.Level() != StatusInfo {
		t.Error("ClearMessage should reset message and level")
	}
}

func TestStatusBarNarrowWidth(t *testing.T) {
	s := NewStatusBar()
	s.SetShortcuts(ListEditShortcuts...)
	s.SetMessage(StatusError, "Export is not available")
	s.SetWidth(20)

	if view := s.View(); !strings.Contains(view, "Export") {
		t.Errorf("narrow view lost the message: %q", view)
	}
}

func TestNavShortcuts(t *testing.T) {
	tests := []struct {
		name             string
		canBack, canNext bool
	}{
		{"first step gate closed", false, false},
		{"middle step gate open", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := map[string]bool{}
			for _, sc := range NavShortcuts(tt.canBack, tt.canNext) {
				got[sc.Key] = sc.Disabled
			}
			if got["b"] != !tt.canBack {
				t.Errorf("back disabled = %v", got["b"])
			}
			if got["n"] != !tt.canNext {
				t.Errorf("next disabled = %v", got["n"])
			}
		})
	}
}

func TestShortcutBarView(t *testing.T) {
	bar := NewShortcutBar()
	if bar.View() != "" {
		t.Error("empty bar should render nothing")
	}

	bar.SetShortcuts(ShortcutDef{Key: "x", Desc: "export"}, ShortcutDef{Key: "n", Desc: "next", Disabled: true})
	view := bar.View()
	if !strings.Contains(view, "x:export") {
		t.Errorf("view = %q", view)
	}
	if !strings.Contains(view, "n:next") {
		t.Error("disabled shortcut should still be listed")
	}
	if !strings.Contains(view, "│") {
		t.Error("shortcuts should be separated")
	}
}
