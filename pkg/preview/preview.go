// Package preview renders a resolved palette as terminal swatches, either
// as a one-shot styled table or inside an interactive viewer.
package preview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/danrus1100/walcord/pkg/palette"
)

// displayOrder lists the keys shown in a preview: the sixteen indexed
// colors first, then the semantic aliases. Short forms resolve to the same
// entries and are omitted.
var displayOrder = []string{
	"0", "1", "2", "3", "4", "5", "6", "7",
	"8", "9", "10", "11", "12", "13", "14", "15",
	"background", "foreground", "border", "text", "accent",
}

// Styles is the shared style set for preview output.
type Styles struct {
	Label  lipgloss.Style
	Hex    lipgloss.Style
	Muted  lipgloss.Style
	Header lipgloss.Style
}

// DefaultStyles returns the standard preview style set.
func DefaultStyles() *Styles {
	return &Styles{
		Label:  lipgloss.NewStyle().Bold(true),
		Hex:    lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("#0077B6")).Bold(true),
	}
}

const swatchWidth = 8

// Render returns the palette as a styled swatch table.
func Render(reg *palette.Registry, styles *Styles) string {
	if styles == nil {
		styles = DefaultStyles()
	}
	titler := cases.Title(language.English)

	labelWidth := 0
	for _, key := range displayOrder {
		if w := runewidth.StringWidth(key); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(styles.Header.Render("Palette"))
	b.WriteString("\n")

	for _, key := range displayOrder {
		entry, err := reg.Lookup(key)
		if err != nil || entry.IsPath {
			continue
		}
		label := key
		if _, numErr := strconv.Atoi(key); numErr != nil {
			label = titler.String(key)
		}
		b.WriteString(styles.Label.Render(runewidth.FillRight(label, labelWidth)))
		b.WriteString("  ")
		b.WriteString(swatch(entry.Color))
		b.WriteString("  ")
		b.WriteString(styles.Hex.Render(entry.Color.Hex()))
		b.WriteString("  ")
		rgb := entry.Color.Triple()
		b.WriteString(styles.Muted.Render(fmt.Sprintf("rgb(%d,%d,%d)", rgb[0], rgb[1], rgb[2])))
		b.WriteString("\n")
	}

	if wp, err := reg.Lookup("wallpaper"); err == nil && wp.IsPath {
		b.WriteString(styles.Label.Render(runewidth.FillRight("Wallpaper", labelWidth)))
		b.WriteString("  ")
		b.WriteString(styles.Muted.Render(wp.Path))
		b.WriteString("\n")
	}
	return b.String()
}

// swatch renders a colored block with the bare hex value inside, using a
// contrasting foreground picked by luminance.
func swatch(c palette.Color) string {
	hex := c.Hex()
	fg := "#000000"
	if col, err := colorful.Hex(hex); err == nil {
		if _, _, l := col.Hsl(); l < 0.5 {
			fg = "#ffffff"
		}
	}
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg)).
		Width(swatchWidth).
		Align(lipgloss.Center)
	return style.Render(strings.TrimPrefix(hex, "#"))
}
