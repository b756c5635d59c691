package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/danrus1100/walcord/pkg/rewrite"
)

// logger writes leveled, styled messages to stderr. Quiet mode keeps
// errors only. Styling drops on NO_COLOR or when stderr is not a TTY.
type logger struct {
	w     io.Writer
	quiet bool

	errStyle  lipgloss.Style
	warnStyle lipgloss.Style
	infoStyle lipgloss.Style
}

func newLogger(w io.Writer, quiet bool) *logger {
	l := &logger{w: w, quiet: quiet}
	styled := os.Getenv("NO_COLOR") == ""
	if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		styled = false
	}
	if styled {
		l.errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F56")).Bold(true)
		l.warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFBD2E")).Bold(true)
		l.infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	} else {
		plain := lipgloss.NewStyle()
		l.errStyle, l.warnStyle, l.infoStyle = plain, plain, plain
	}
	return l
}

func (l *logger) infof(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.w, l.infoStyle.Render("(walcord) "+fmt.Sprintf(format, args...)))
}

func (l *logger) warnf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.w, l.warnStyle.Render("(walcord) "+fmt.Sprintf(format, args...)))
}

func (l *logger) errorf(format string, args ...any) {
	fmt.Fprintln(l.w, l.errStyle.Render("(walcord) "+fmt.Sprintf(format, args...)))
}

// report routes rewrite diagnostics through the matching level.
func (l *logger) report(diags []rewrite.Diagnostic) {
	for _, d := range diags {
		if d.Severity == rewrite.SeverityError {
			l.errorf("%s", d)
		} else {
			l.warnf("%s", d)
		}
	}
}
