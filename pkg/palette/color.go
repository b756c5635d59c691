// Package palette holds the resolved pywal palette: a fixed set of
// case-insensitive color keys mapped to RGB triples, plus the reserved
// wallpaper path entry.
package palette

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB triple. The channels are the source of truth; every
// output format is derived from them.
type Color struct {
	R, G, B uint8
}

// ParseHex parses a hex color string like "#1e1e2e" (leading # optional)
// into a Color.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", s)
	}
	c, err := colorful.Hex("#" + strings.ToLower(s))
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// Hex returns the color as a lowercase hex string with leading #.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Triple returns the channels as ints in R, G, B order.
func (c Color) Triple() [3]int {
	return [3]int{int(c.R), int(c.G), int(c.B)}
}

// Invert returns the color with every channel replaced by 255-c.
func (c Color) Invert() Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}
