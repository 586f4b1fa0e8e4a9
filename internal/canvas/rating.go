package canvas

import (
	"fmt"
	"strconv"
	"strings"
)

// Rating scores a competitor on a factor, from 0 to 5.
type Rating int

const (
	// Unset marks a pair with no rating. It is distinct from 0, which
	// counts as a rating.
	Unset Rating = -1

	MinRating Rating = 0
	MaxRating Rating = 5
)

// Valid reports whether r is within the 0-5 scale.
func (r Rating) Valid() bool {
	return r >= MinRating && r <= MaxRating
}

func (r Rating) String() string {
	if r == Unset {
		return "-"
	}
	return strconv.Itoa(int(r))
}

// ParseRating parses "0" through "5". An empty string or "-" yields Unset.
func ParseRating(s string) (Rating, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return Unset, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Unset, fmt.Errorf("%w: %q", ErrRatingOutOfRange, s)
	}
	r := Rating(n)
	if !r.Valid() {
		return Unset, fmt.Errorf("%w: %d", ErrRatingOutOfRange, n)
	}
	return r, nil
}

var guidance = [...]string{
	"Not relevant / Non-existent",
	"Very limited / Poor",
	"Below average",
	"Average / Moderate",
	"Above average / Strong",
	"Best in class / Exceptional",
}

// Guidance returns the meaning of a rating on the scale, or "" for values
// off the scale.
func Guidance(r Rating) string {
	if !r.Valid() {
		return ""
	}
	return guidance[r]
}

// Key identifies one cell of the rating grid.
type Key struct {
	CompetitorID string
	FactorID     string
}
