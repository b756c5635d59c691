package rewrite

import (
	"fmt"
	"strings"

	"github.com/danrus1100/walcord/pkg/palette"
	"github.com/danrus1100/walcord/pkg/token"
)

// Severity grades a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is one line-scoped report produced while rewriting. Line is
// 1-based; Source is the label of the originating file.
type Diagnostic struct {
	Line     int
	Source   string
	Severity Severity
	Message  string
	Err      error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("in line %d in %s: %s", d.Line, d.Source, d.Message)
}

// Rewriter resolves placeholder tokens against a palette. The palette is
// read-only; lines are processed independently and in order.
type Rewriter struct {
	registry *palette.Registry
}

// New returns a Rewriter over the given palette.
func New(registry *palette.Registry) *Rewriter {
	return &Rewriter{registry: registry}
}

// Rewrite processes lines sequentially, appending terminator to each. A
// line with no token syntax passes through unchanged. A line whose token
// resolution fails keeps its original content and yields an error
// diagnostic; a line with token syntax that resolves to identical text
// yields a parse-miss warning. One line's failure never affects another.
func (rw *Rewriter) Rewrite(lines []string, terminator, source string) (string, []Diagnostic) {
	var out strings.Builder
	var diags []Diagnostic

	for n, line := range lines {
		if !token.ContainsToken(line) {
			out.WriteString(line)
			out.WriteString(terminator)
			continue
		}

		rewritten, lineDiags := rw.RewriteLine(line)
		for _, d := range lineDiags {
			d.Line = n + 1
			d.Source = source
			diags = append(diags, d)
		}
		out.WriteString(rewritten)
		out.WriteString(terminator)
	}
	return out.String(), diags
}

// RewriteLine resolves every token in one line. On any fatal resolution
// failure the original line is returned untouched alongside an error
// diagnostic. Recoverable opacity failures still rewrite the line but are
// reported. Line and Source on the returned diagnostics are left for the
// caller to fill.
func (rw *Rewriter) RewriteLine(line string) (string, []Diagnostic) {
	matches := token.Scan(line)

	var diags []Diagnostic
	var out strings.Builder
	last := 0

	for _, m := range matches {
		if m.Err != nil {
			return line, append(diags, errDiag(m.Err))
		}
		entry, err := rw.registry.Lookup(m.Placeholder.Key)
		if err != nil {
			return line, append(diags, errDiag(err))
		}
		resolved, err := Apply(entry, m.Placeholder)
		if err != nil {
			return line, append(diags, errDiag(err))
		}
		if m.Placeholder.OpacityErr != nil {
			diags = append(diags, errDiag(m.Placeholder.OpacityErr))
		}
		out.WriteString(line[last:m.Start])
		out.WriteString(resolved)
		last = m.End
	}
	out.WriteString(line[last:])

	rewritten := out.String()
	if rewritten == line {
		diags = append(diags, Diagnostic{
			Severity: SeverityWarning,
			Message:  "KEY parse error, maybe you wrote the wrong parameters?",
		})
	}
	return rewritten, diags
}

func errDiag(err error) Diagnostic {
	return Diagnostic{Severity: SeverityError, Message: err.Error(), Err: err}
}
