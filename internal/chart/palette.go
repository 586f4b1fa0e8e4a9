package chart

import (
	"fmt"
	"image/color"
	"strings"
)

// Palette is the fixed set of line colours.
var Palette = []string{
	"#2563eb", // blue
	"#dc2626", // red
	"#059669", // green
	"#d97706", // amber
	"#7c3aed", // violet
	"#db2777", // pink
}

// ColorAt returns the palette colour for the i-th competitor.
func ColorAt(i int) string {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var c color.RGBA
	if len(hex) != 6 {
		return c, fmt.Errorf("invalid colour %q", hex)
	}
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	c.A = 0xff
	return c, nil
}
