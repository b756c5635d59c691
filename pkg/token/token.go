// Package token recognizes the KEY(...) placeholder grammar inside
// template lines and resolves its modifier chain into typed values.
//
// Grammar, case-insensitive:
//
//	KEY( <key> [, <opacity>] ) [ .<first_modifier> ] [ .<second_name>( <args> ) ]
//
// The scanner is a hand-rolled recursive descent over a byte cursor; a
// candidate whose outer shape does not match is skipped, a candidate whose
// inner fields fail validation carries a typed error for the caller to
// scope to its line.
package token

import (
	"strconv"
	"strings"
)

// DefaultOpacity is the opacity assumed when a token carries no literal.
const DefaultOpacity = 1.0

// Placeholder is the parsed form of one token occurrence.
type Placeholder struct {
	Key     string
	Opacity float64
	// OpacityErr is set when the opacity literal was invalid and 1.0 was
	// substituted; the token still resolves, the error is still reported.
	OpacityErr error
	First      FirstModifier
	Second     *ModifierSpec
}

// Match is one grammatical token occurrence in a line. Err carries a
// parse-time validation failure (unknown first modifier, bad second
// modifier arguments); the span still covers the full token text.
type Match struct {
	Start, End  int
	Placeholder Placeholder
	Err         error
}

// Text returns the matched slice of line.
func (m Match) Text(line string) string {
	return line[m.Start:m.End]
}

// ContainsToken reports whether line holds token-like syntax: a KEY(
// opener with a closing parenthesis after it. Lines failing this gate pass
// through the rewriter untouched and undiagnosed.
func ContainsToken(line string) bool {
	i := indexKeyCall(line, 0)
	return i >= 0 && strings.IndexByte(line[i:], ')') >= 0
}

// Scan produces the non-overlapping token matches in a line, left to
// right. Candidates that fail the outer grammar are skipped.
func Scan(line string) []Match {
	var matches []Match
	i := 0
	for {
		j := indexKeyCall(line, i)
		if j < 0 {
			return matches
		}
		m, ok := parseAt(line, j)
		if !ok {
			i = j + 1
			continue
		}
		matches = append(matches, m)
		i = m.End
	}
}

// NormalizeOpacity validates and normalizes an opacity literal. Values in
// (1.0, 100] are percentages; values below 0 or above 100 are invalid and
// recover to 1.0 with a reported InvalidOpacityError.
func NormalizeOpacity(literal string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(literal), 64)
	if err != nil {
		return DefaultOpacity, &InvalidOpacityError{Literal: literal}
	}
	switch {
	case v < 0.0:
		return DefaultOpacity, &InvalidOpacityError{Literal: literal}
	case v > 100.0:
		return DefaultOpacity, &InvalidOpacityError{Literal: literal}
	case v > 1.0:
		return v / 100.0, nil
	default:
		return v, nil
	}
}

// indexKeyCall finds the next case-insensitive "key(" at or after from.
func indexKeyCall(line string, from int) int {
	for i := from; i+4 <= len(line); i++ {
		if equalFoldKey(line[i : i+3]) && line[i+3] == '(' {
			return i
		}
	}
	return -1
}

func equalFoldKey(s string) bool {
	return (s[0] == 'k' || s[0] == 'K') &&
		(s[1] == 'e' || s[1] == 'E') &&
		(s[2] == 'y' || s[2] == 'Y')
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

// parseAt attempts a full token parse with the "key(" opener at position
// start. Returns ok=false on a structural miss.
func parseAt(line string, start int) (Match, bool) {
	p := start + 4

	keyStart := p
	for p < len(line) && isWordChar(line[p]) {
		p++
	}
	if p == keyStart {
		return Match{}, false
	}
	key := line[keyStart:p]

	ph := Placeholder{Key: key, Opacity: DefaultOpacity}

	if p < len(line) && line[p] == ',' {
		p++
		for p < len(line) && line[p] == ' ' {
			p++
		}
		litStart := p
		for p < len(line) && line[p] != ')' {
			p++
		}
		literal := strings.TrimRight(line[litStart:p], " ")
		if literal == "" {
			return Match{}, false
		}
		ph.Opacity, ph.OpacityErr = NormalizeOpacity(literal)
	}

	if p >= len(line) || line[p] != ')' {
		return Match{}, false
	}
	p++

	m := Match{Start: start}

	// Up to two dotted segments: a plain identifier is the first modifier,
	// an identifier followed by parentheses is the second-modifier call.
	name, args, isCall, next := parseSegment(line, p)
	if name != "" && !isCall {
		first, err := ParseFirstModifier(name)
		if err != nil {
			m.Err = err
		}
		ph.First = first
		p = next

		name, args, isCall, next = parseSegment(line, p)
	}
	if name != "" {
		// A trailing plain identifier in second position is consumed the
		// same way a call is; only recognized names take effect.
		spec, known, err := ParseSecondModifier(name, args)
		if known && err != nil && m.Err == nil {
			m.Err = err
		}
		if known && err == nil {
			ph.Second = spec
		}
		p = next
	}

	m.End = p
	m.Placeholder = ph
	return m, true
}

// parseSegment reads one ".ident" or ".ident(args)" segment at position p.
// Returns the identifier, the raw argument text (parentheses included),
// whether it was a call, and the cursor after the segment. An empty name
// means no segment was present; the cursor is then unchanged.
func parseSegment(line string, p int) (name, args string, isCall bool, next int) {
	if p >= len(line) || line[p] != '.' {
		return "", "", false, p
	}
	q := p + 1
	for q < len(line) && isWordChar(line[q]) {
		q++
	}
	if q == p+1 {
		return "", "", false, p
	}
	name = line[p+1 : q]
	if q < len(line) && line[q] == '(' {
		end := strings.IndexByte(line[q:], ')')
		if end < 0 {
			// Unterminated call: take the bare identifier only.
			return name, "", false, q
		}
		return name, line[q : q+end+1], true, q + end + 1
	}
	return name, "", false, q
}
