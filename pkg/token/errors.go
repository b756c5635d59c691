package token

import "fmt"

// UnknownModifierError reports a first modifier name outside the closed
// set. Parse-time, fatal to the enclosing line.
type UnknownModifierError struct {
	Name string
}

func (e *UnknownModifierError) Error() string {
	return fmt.Sprintf("unknown modifier %q", e.Name)
}

// InvalidOpacityError reports an opacity literal that is non-numeric or
// outside [0, 100]. Recoverable: the token resolves with opacity 1.0 and
// the error is still surfaced on the line's diagnostic channel.
type InvalidOpacityError struct {
	Literal string
}

func (e *InvalidOpacityError) Error() string {
	return fmt.Sprintf("opacity value is not valid: %s (it should be 0.0-1.0 or 1-100), opacity will be set to 1.0", e.Literal)
}

// InvalidModifierArityError reports malformed second-modifier arguments:
// wrong argument count, a non-integer argument, or a channel position
// outside 0-2. Fatal to the enclosing line.
type InvalidModifierArityError struct {
	Name   string
	Detail string
}

func (e *InvalidModifierArityError) Error() string {
	return fmt.Sprintf("%s modifier: %s", e.Name, e.Detail)
}
