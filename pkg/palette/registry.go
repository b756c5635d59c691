package palette

import (
	"fmt"
	"sort"
	"strings"
)

// WallpaperKeys are the reserved keys whose value is a raw path string
// rather than a color. They reject opacity and modifiers downstream.
var WallpaperKeys = map[string]bool{"wallpaper": true, "w": true}

// Entry is one resolved palette value: a Color, or the raw wallpaper path
// when IsPath is set.
type Entry struct {
	Color  Color
	Path   string
	IsPath bool
}

// UnknownKeyError reports a lookup against a key the palette does not hold.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("color %q not found in the palette", e.Key)
}

// Warning records a palette entry dropped during Build. Non-fatal.
type Warning struct {
	Key   string
	Value string
	Err   error
}

func (w Warning) String() string {
	return fmt.Sprintf("param %q is not a valid hex color, skipping", w.Key)
}

// Registry is the immutable palette built once per run. Lookup is
// case-insensitive; keys are lowered at build time.
type Registry struct {
	entries map[string]Entry
}

// Build converts a flat key→hex map into a Registry. Entries that are not
// valid hex and are not a wallpaper key are dropped with a warning rather
// than failing the whole build.
func Build(source map[string]string) (*Registry, []Warning) {
	entries := make(map[string]Entry, len(source))
	var warnings []Warning

	// Deterministic warning order for logs and tests.
	keys := make([]string, 0, len(source))
	for k := range source {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := source[key]
		lower := strings.ToLower(key)
		c, err := ParseHex(value)
		if err != nil {
			if WallpaperKeys[lower] {
				entries[lower] = Entry{Path: value, IsPath: true}
				continue
			}
			warnings = append(warnings, Warning{Key: key, Value: value, Err: err})
			continue
		}
		if WallpaperKeys[lower] {
			// A wallpaper path that happens to parse as hex is still a path.
			entries[lower] = Entry{Path: value, IsPath: true}
			continue
		}
		entries[lower] = Entry{Color: c}
	}
	return &Registry{entries: entries}, warnings
}

// Lookup resolves a key to its palette entry, case-insensitively.
func (r *Registry) Lookup(key string) (Entry, error) {
	entry, ok := r.entries[strings.ToLower(key)]
	if !ok {
		return Entry{}, &UnknownKeyError{Key: key}
	}
	return entry, nil
}

// Keys returns the resolved key set in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the number of resolved entries.
func (r *Registry) Len() int {
	return len(r.entries)
}
