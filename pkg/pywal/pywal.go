// Package pywal acquires palettes from the pywal cache format: the
// colors.json document holding sixteen indexed colors, the special
// background/foreground pair, and the wallpaper path. Acquisition failures
// are fatal to the run; the rewriting core never touches this layer.
package pywal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Document mirrors the pywal colors.json schema.
type Document struct {
	Wallpaper string            `json:"wallpaper"`
	Alpha     string            `json:"alpha,omitempty"`
	Special   Special           `json:"special"`
	Colors    map[string]string `json:"colors"`
}

// Special holds the non-indexed colors of the pywal cache.
type Special struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Cursor     string `json:"cursor,omitempty"`
}

// DefaultCachePath returns ~/.cache/wal/colors.json.
func DefaultCachePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".cache", "wal", "colors.json"), nil
}

// Load parses a colors.json document from bytes.
func Load(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing pywal colors: %w", err)
	}
	return &doc, nil
}

// LoadFile reads and parses a colors.json file.
func LoadFile(path string) (*Document, error) {
	if !strings.HasSuffix(path, ".json") {
		return nil, fmt.Errorf("%s is not a json file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s not found, maybe you should run 'wal' first", path)
		}
		return nil, fmt.Errorf("reading pywal colors: %w", err)
	}
	return Load(data)
}

// FromImage generates a palette from an image by invoking the wal binary
// (colors only: no wallpaper, terminal, tty, or reload side effects), then
// reads the refreshed cache file.
func FromImage(ctx context.Context, imagePath string) (*Document, error) {
	if _, err := os.Stat(imagePath); err != nil {
		return nil, fmt.Errorf("image %s: %w", imagePath, err)
	}
	cmd := exec.CommandContext(ctx, "wal", "-n", "-s", "-t", "-e", "-q", "-i", imagePath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("running wal on %s: %w (%s)", imagePath, err, strings.TrimSpace(string(out)))
	}
	path, err := DefaultCachePath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// Flatten maps a document to the flat key set the palette registry is
// built from. The alias contract is fixed: border is color2, text is
// color15, accent is color13, with single-letter short forms.
func (d *Document) Flatten() (map[string]string, error) {
	for i := 0; i < 16; i++ {
		if _, ok := d.Colors[fmt.Sprintf("color%d", i)]; !ok {
			return nil, fmt.Errorf("pywal colors missing color%d", i)
		}
	}
	if d.Special.Background == "" || d.Special.Foreground == "" {
		return nil, fmt.Errorf("pywal colors missing special background/foreground")
	}

	flat := map[string]string{
		"wallpaper":  d.Wallpaper,
		"background": d.Special.Background,
		"foreground": d.Special.Foreground,

		// special colors
		"border": d.Colors["color2"],
		"text":   d.Colors["color15"],
		"accent": d.Colors["color13"],

		// short names
		"b":  d.Special.Background,
		"f":  d.Special.Foreground,
		"br": d.Colors["color2"],
		"t":  d.Colors["color15"],
		"a":  d.Colors["color13"],
		"w":  d.Wallpaper,
	}
	for i := 0; i < 16; i++ {
		flat[fmt.Sprintf("%d", i)] = d.Colors[fmt.Sprintf("color%d", i)]
	}
	return flat, nil
}
