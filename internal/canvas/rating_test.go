package canvas

import (
	"errors"
	"testing"
)

func TestParseRating(t *testing.T) {
	tests := []struct {
		in      string
		want    Rating
		wantErr bool
	}{
		{"0", 0, false},
		{"5", 5, false},
		{" 3 ", 3, false},
		{"", Unset, false},
		{"-", Unset, false},
		{"6", Unset, true},
		{"-1", Unset, true},
		{"three", Unset, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRating(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRating(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrRatingOutOfRange) {
				t.Errorf("error %v should match ErrRatingOutOfRange", err)
			}
			if got != tt.want {
				t.Errorf("ParseRating(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGuidance(t *testing.T) {
	want := map[Rating]string{
		0: "Not relevant / Non-existent",
		1: "Very limited / Poor",
		2: "Below average",
		3: "Average / Moderate",
		4: "Above average / Strong",
		5: "Best in class / Exceptional",
	}
	for r, text := range want {
		if got := Guidance(r); got != text {
			t.Errorf("Guidance(%d) = %q, want %q", r, got, text)
		}
	}
	if Guidance(Unset) != "" || Guidance(6) != "" {
		t.Error("off-scale ratings have no guidance")
	}
}

func TestRatingString(t *testing.T) {
	if Unset.String() != "-" {
		t.Errorf("Unset.String() = %q", Unset.String())
	}
	if Rating(4).String() != "4" {
		t.Errorf("Rating(4).String() = %q", Rating(4).String())
	}
}

func TestStepLabels(t *testing.T) {
	tests := []struct {
		step  Step
		label string
		title string
	}{
		{StepFactors, "Factors", "Define Your Competitive Factors"},
		{StepCompetitors, "Competitors", "Identify Your Competitors"},
		{StepRatings, "Ratings", "Rate Each Factor"},
		{StepResults, "Results", "Your Strategy Canvas"},
	}
	for _, tt := range tests {
		if tt.step.String() != tt.label || tt.step.Title() != tt.title {
			t.Errorf("step %d = %q/%q, want %q/%q", tt.step, tt.step.String(), tt.step.Title(), tt.label, tt.title)
		}
	}
	if Step(0).Valid() || Step(5).Valid() {
		t.Error("steps outside 1-4 are invalid")
	}
	if len(Steps()) != 4 {
		t.Errorf("Steps() = %v", Steps())
	}
}
