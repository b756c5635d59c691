package preview

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danrus1100/walcord/pkg/palette"
)

func plainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{Label: plain, Hex: plain, Muted: plain, Header: plain}
}

func testRegistry() *palette.Registry {
	source := map[string]string{
		"background": "#1e1e2e",
		"foreground": "#cdd6f4",
		"border":     "#a6e3a1",
		"text":       "#ffffff",
		"accent":     "#cba6f7",
		"wallpaper":  "/home/user/wall.png",
	}
	for i := 0; i < 16; i++ {
		source[fmt.Sprintf("%d", i)] = fmt.Sprintf("#%02x%02x%02x", i*10, i*10, i*10)
	}
	reg, _ := palette.Build(source)
	return reg
}

func TestRender_ListsAllDisplayKeys(t *testing.T) {
	t.Parallel()

	out := Render(testRegistry(), plainStyles())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	// Header + 16 indexed + 5 semantic + wallpaper.
	require.Len(t, lines, 23)
	assert.Contains(t, lines[0], "Palette")
	assert.Contains(t, out, "#1e1e2e")
	assert.Contains(t, out, "Background")
	assert.Contains(t, out, "Accent")
	assert.Contains(t, out, "/home/user/wall.png")
}

func TestRender_IndexedKeysKeepNumericLabels(t *testing.T) {
	t.Parallel()

	out := Render(testRegistry(), plainStyles())
	assert.Contains(t, out, "15")
	assert.Contains(t, out, "rgb(150,150,150)")
}

func TestRender_SkipsMissingKeys(t *testing.T) {
	t.Parallel()

	reg, _ := palette.Build(map[string]string{"0": "#102030"})
	out := Render(reg, plainStyles())

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2) // header + the single swatch
	assert.Contains(t, out, "#102030")
}
