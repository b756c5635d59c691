package palette

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSource() map[string]string {
	return map[string]string{
		"background": "#1e1e2e",
		"b":          "#1e1e2e",
		"accent":     "#ff00ff",
		"a":          "#ff00ff",
		"0":          "#000000",
		"15":         "#ffffff",
		"wallpaper":  "/home/user/wall.png",
		"w":          "/home/user/wall.png",
	}
}

func TestBuild_When_AllEntriesValid(t *testing.T) {
	t.Parallel()

	reg, warnings := Build(testSource())
	assert.Empty(t, warnings)
	assert.Equal(t, 8, reg.Len())

	entry, err := reg.Lookup("background")
	require.NoError(t, err)
	assert.False(t, entry.IsPath)
	assert.Equal(t, Color{30, 30, 46}, entry.Color)
}

func TestBuild_When_WallpaperIsPath(t *testing.T) {
	t.Parallel()

	reg, warnings := Build(testSource())
	assert.Empty(t, warnings)

	for _, key := range []string{"wallpaper", "w"} {
		entry, err := reg.Lookup(key)
		require.NoError(t, err)
		assert.True(t, entry.IsPath)
		assert.Equal(t, "/home/user/wall.png", entry.Path)
	}
}

func TestBuild_When_NonHexEntry_DropsWithWarning(t *testing.T) {
	t.Parallel()

	source := testSource()
	source["border"] = "not-a-color"
	reg, warnings := Build(source)

	require.Len(t, warnings, 1)
	assert.Equal(t, "border", warnings[0].Key)

	_, err := reg.Lookup("border")
	var unknown *UnknownKeyError
	assert.ErrorAs(t, err, &unknown)
}

func TestLookup_IsCaseInsensitive(t *testing.T) {
	t.Parallel()

	reg, _ := Build(map[string]string{"Accent": "#abcdef"})

	for _, key := range []string{"accent", "ACCENT", "Accent", "aCcEnT"} {
		entry, err := reg.Lookup(key)
		require.NoError(t, err, "key %q", key)
		assert.Equal(t, Color{0xab, 0xcd, 0xef}, entry.Color)
	}
}

func TestLookup_When_KeyMissing(t *testing.T) {
	t.Parallel()

	reg, _ := Build(testSource())
	_, err := reg.Lookup("nope")

	var unknown *UnknownKeyError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "nope", unknown.Key)
}
