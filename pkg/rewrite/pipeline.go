// Package rewrite splices resolved color expressions into template lines.
// It applies the two-stage modifier pipeline to each parsed token and
// isolates failures per line so one bad token never aborts a whole file.
package rewrite

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danrus1100/walcord/pkg/palette"
	"github.com/danrus1100/walcord/pkg/token"
)

// WallpaperConflictError reports opacity or a modifier used with the
// reserved wallpaper key. Fatal to the enclosing line.
type WallpaperConflictError struct {
	Key string
}

func (e *WallpaperConflictError) Error() string {
	return fmt.Sprintf("you can't use opacity or modifier with the %s key", e.Key)
}

// Apply resolves one placeholder against its palette entry: the second
// modifier transforms the channel triple, the first modifier selects the
// output shape. Opacity arrives already normalized.
func Apply(entry palette.Entry, ph token.Placeholder) (string, error) {
	if entry.IsPath {
		if ph.Opacity != token.DefaultOpacity || ph.First != token.FirstNone || ph.Second != nil {
			return "", &WallpaperConflictError{Key: ph.Key}
		}
		return entry.Path, nil
	}

	// On the HLS paths the second modifier applies to the converted
	// (h, l, s) tuple, not the RGB triple.
	var t [3]float64
	if ph.First.IsHLS() {
		h, l, s := palette.RGBToHLS(entry.Color)
		t = [3]float64{h, l, s}
	} else {
		rgb := entry.Color.Triple()
		t = [3]float64{float64(rgb[0]), float64(rgb[1]), float64(rgb[2])}
	}
	t = applySecond(t, ph.Second)

	return format(ph.First, t, ph.Opacity), nil
}

// applySecond mutates a channel triple per the modifier spec. Arithmetic
// results are not clamped; values may leave [0,255].
func applySecond(t [3]float64, spec *token.ModifierSpec) [3]float64 {
	if spec == nil {
		return t
	}
	switch spec.Kind {
	case token.SecondInvert:
		for i := range t {
			t[i] = 255 - t[i]
		}
	default: // add and sub, delta already signed
		t[spec.Pos] += float64(spec.Delta)
	}
	return t
}

func format(first token.FirstModifier, t [3]float64, opacity float64) string {
	r, g, b := chn(t[0]), chn(t[1]), chn(t[2])
	switch first {
	case token.FirstRGB:
		return fmt.Sprintf("rgb(%s,%s,%s)", r, g, b)
	case token.FirstHex:
		return fmt.Sprintf("#%02x%02x%02x", int(t[0]), int(t[1]), int(t[2]))
	case token.FirstHSL:
		return fmt.Sprintf("hsl(%s,%s,%s)", flt(t[0]), flt(t[1]), flt(t[2]))
	case token.FirstRGBAValues:
		return fmt.Sprintf("%s,%s,%s,%s", r, g, b, flt(opacity))
	case token.FirstRGBValues:
		return fmt.Sprintf("%s,%s,%s", r, g, b)
	case token.FirstHexValues:
		return fmt.Sprintf("%02x%02x%02x", int(t[0]), int(t[1]), int(t[2]))
	case token.FirstHSLValues:
		return fmt.Sprintf("%s,%s,%s", flt(t[0]), flt(t[1]), flt(t[2]))
	case token.FirstRed:
		return r
	case token.FirstGreen:
		return g
	case token.FirstBlue:
		return b
	case token.FirstOpacity:
		return flt(opacity)
	case token.FirstHue:
		return flt(t[0])
	case token.FirstLightness:
		return flt(t[1])
	case token.FirstSaturation:
		return flt(t[2])
	default: // FirstNone and FirstRGBA
		return fmt.Sprintf("rgba(%s,%s,%s,%s)", r, g, b, flt(opacity))
	}
}

// chn formats an RGB-path channel, integral by construction.
func chn(v float64) string {
	return strconv.Itoa(int(v))
}

// flt formats a float the way the templates expect: shortest round-trip
// representation, with a decimal point forced for integral values so 1.0
// renders as "1.0" rather than "1".
func flt(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
