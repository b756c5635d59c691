package palette

import "math"

// RGBToHLS converts a color to the (h, l, s) tuple, each component in
// [0,1], channels normalized to [0,1] before conversion. The middle
// element is lightness, not saturation; existing templates depend on
// this ordering.
func RGBToHLS(c Color) (h, l, s float64) {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	sumc := maxc + minc
	rangec := maxc - minc

	l = sumc / 2.0
	if minc == maxc {
		return 0.0, l, 0.0
	}
	if l <= 0.5 {
		s = rangec / sumc
	} else {
		s = rangec / (2.0 - maxc - minc)
	}

	rc := (maxc - r) / rangec
	gc := (maxc - g) / rangec
	bc := (maxc - b) / rangec
	switch maxc {
	case r:
		h = bc - gc
	case g:
		h = 2.0 + rc - bc
	default:
		h = 4.0 + gc - rc
	}
	h = math.Mod(h/6.0, 1.0)
	if h < 0 {
		h += 1.0
	}
	return h, l, s
}
