package token

import (
	"fmt"
	"strconv"
	"strings"
)

// FirstModifier selects the textual shape of a resolved color.
type FirstModifier int

const (
	// FirstNone means no modifier was written; formatting defaults to rgba.
	FirstNone FirstModifier = iota
	FirstRGBA
	FirstRGB
	FirstHex
	FirstHSL
	FirstRGBAValues
	FirstRGBValues
	FirstHexValues
	FirstHSLValues
	FirstRed
	FirstGreen
	FirstBlue
	FirstOpacity
	FirstHue
	FirstSaturation
	FirstLightness
)

var firstModifiers = map[string]FirstModifier{
	"rgba": FirstRGBA,
	"rgb":  FirstRGB,
	"hex":  FirstHex,
	"hsl":  FirstHSL,

	"rgba_values": FirstRGBAValues,
	"rgb_values":  FirstRGBValues,
	"hex_values":  FirstHexValues,
	"hsl_values":  FirstHSLValues,

	"r":   FirstRed,
	"red": FirstRed,

	"g":     FirstGreen,
	"green": FirstGreen,

	"b":    FirstBlue,
	"blue": FirstBlue,

	"o":       FirstOpacity,
	"opacity": FirstOpacity,

	"h":   FirstHue,
	"hue": FirstHue,

	"s":          FirstSaturation,
	"saturation": FirstSaturation,

	"l":         FirstLightness,
	"lightness": FirstLightness,
}

// ParseFirstModifier resolves a dotted identifier (without the dot) to its
// FirstModifier, case-insensitively.
func ParseFirstModifier(name string) (FirstModifier, error) {
	m, ok := firstModifiers[strings.ToLower(name)]
	if !ok {
		return FirstNone, &UnknownModifierError{Name: name}
	}
	return m, nil
}

// IsHLS reports whether the modifier formats from the (h, l, s) tuple.
func (m FirstModifier) IsHLS() bool {
	switch m {
	case FirstHSL, FirstHSLValues, FirstHue, FirstSaturation, FirstLightness:
		return true
	}
	return false
}

// SecondKind discriminates the arithmetic/invert transforms.
type SecondKind int

const (
	SecondAdd SecondKind = iota
	SecondSub
	SecondInvert
)

// ModifierSpec is the resolved second-modifier effect, constructed fresh
// per token. For add/sub, Delta is already signed (negative for sub).
type ModifierSpec struct {
	Kind  SecondKind
	Pos   int
	Delta int
}

var secondModifiers = map[string]SecondKind{
	"add":    SecondAdd,
	"sub":    SecondSub,
	"invert": SecondInvert,

	// aliases
	"a": SecondAdd,
	"s": SecondSub,
	"i": SecondInvert,
}

// ParseSecondModifier resolves a dotted call to its ModifierSpec. The
// second return is false when the name is not a known second modifier; the
// caller then treats the token as having no second modifier at all.
// rawArgs is the argument text with enclosing parentheses included.
func ParseSecondModifier(name, rawArgs string) (*ModifierSpec, bool, error) {
	kind, ok := secondModifiers[strings.ToLower(name)]
	if !ok {
		return nil, false, nil
	}

	args := splitArgs(rawArgs)
	switch kind {
	case SecondInvert:
		if len(args) != 0 {
			return nil, true, &InvalidModifierArityError{
				Name:   "invert",
				Detail: fmt.Sprintf("takes no parameters, you gave %d", len(args)),
			}
		}
		return &ModifierSpec{Kind: SecondInvert}, true, nil
	default:
		label := "add"
		if kind == SecondSub {
			label = "sub"
		}
		if len(args) != 2 {
			return nil, true, &InvalidModifierArityError{
				Name:   label,
				Detail: fmt.Sprintf("takes 2 parameters, you gave %d", len(args)),
			}
		}
		pos, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, true, &InvalidModifierArityError{Name: label, Detail: fmt.Sprintf("position %q is not an integer", args[0])}
		}
		if pos < 0 || pos > 2 {
			return nil, true, &InvalidModifierArityError{Name: label, Detail: fmt.Sprintf("position %d out of range 0-2", pos)}
		}
		delta, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, true, &InvalidModifierArityError{Name: label, Detail: fmt.Sprintf("value %q is not an integer", args[1])}
		}
		if kind == SecondSub {
			delta = -delta
		}
		return &ModifierSpec{Kind: kind, Pos: pos, Delta: delta}, true, nil
	}
}

// splitArgs strips whitespace and enclosing parentheses, then splits the
// remainder on commas. An empty argument list yields a nil slice.
func splitArgs(raw string) []string {
	s := strings.NewReplacer(" ", "", "(", "", ")", "").Replace(raw)
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
