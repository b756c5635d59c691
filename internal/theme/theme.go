// Package theme carries the embedded default Discord theme and the small
// header manipulations applied to theme files before rewriting.
package theme

import (
	_ "embed"
	"strings"
)

//go:embed default.css
var defaultTheme string

// DefaultFileName is the output name used for the embedded default theme.
const DefaultFileName = "walcord.theme.css"

// StdinFileName is the fallback output name for stdin input when the
// template carries no @name header.
const StdinFileName = "stdin.walcord.theme.css"

// DefaultLines returns the embedded default theme split into lines.
func DefaultLines() []string {
	return strings.Split(defaultTheme, "\n")
}

// ReplaceDescription rewrites the first @description header line so
// generated files identify themselves. Mutates lines in place.
func ReplaceDescription(lines []string) {
	for i, line := range lines {
		if strings.Contains(line, "@description") {
			lines[i] = " * @description Generated by Walcord"
			return
		}
	}
}

// ExtractName derives an output file name from an @name header line, with
// ext appended (".css" when empty). Returns fallback when no header exists.
func ExtractName(lines []string, ext, fallback string) string {
	for _, line := range lines {
		if !strings.Contains(line, "@name") {
			continue
		}
		fields := strings.Fields(line)
		name := strings.TrimSpace(fields[len(fields)-1])
		if name == "@name" {
			continue
		}
		if ext == "" {
			ext = ".css"
		}
		return name + ext
	}
	return fallback
}
