package pywal

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleJSON() string {
	colors := ""
	for i := 0; i < 16; i++ {
		colors += fmt.Sprintf(`"color%d": "#%02x%02x%02x",`, i, i*16, i*8, i*4)
	}
	colors = colors[:len(colors)-1]
	return `{
		"wallpaper": "/home/user/wall.png",
		"alpha": "100",
		"special": {
			"background": "#1e1e2e",
			"foreground": "#cdd6f4",
			"cursor": "#cdd6f4"
		},
		"colors": {` + colors + `}
	}`
}

func TestLoad_ParsesSchema(t *testing.T) {
	t.Parallel()

	doc, err := Load([]byte(sampleJSON()))
	require.NoError(t, err)
	assert.Equal(t, "/home/user/wall.png", doc.Wallpaper)
	assert.Equal(t, "#1e1e2e", doc.Special.Background)
	assert.Equal(t, "#cdd6f4", doc.Special.Foreground)
	assert.Len(t, doc.Colors, 16)
}

func TestLoad_When_MalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := Load([]byte("{not json"))
	assert.Error(t, err)
}

func TestLoadFile_RejectsNonJSONPath(t *testing.T) {
	t.Parallel()

	_, err := LoadFile("/tmp/colors.yaml")
	assert.ErrorContains(t, err, "not a json file")
}

func TestLoadFile_When_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "colors.json"))
	assert.ErrorContains(t, err, "run 'wal' first")
}

func TestLoadFile_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "colors.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON()), 0o644))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#1e1e2e", doc.Special.Background)
}

func TestFlatten_AliasContract(t *testing.T) {
	t.Parallel()

	doc, err := Load([]byte(sampleJSON()))
	require.NoError(t, err)
	flat, err := doc.Flatten()
	require.NoError(t, err)

	// Indexed colors keep their number as key.
	for i := 0; i < 16; i++ {
		assert.Equal(t, doc.Colors[fmt.Sprintf("color%d", i)], flat[fmt.Sprintf("%d", i)])
	}

	// Fixed semantic aliases.
	assert.Equal(t, doc.Colors["color2"], flat["border"])
	assert.Equal(t, doc.Colors["color15"], flat["text"])
	assert.Equal(t, doc.Colors["color13"], flat["accent"])

	// Short forms resolve to the same underlying values.
	assert.Equal(t, flat["background"], flat["b"])
	assert.Equal(t, flat["foreground"], flat["f"])
	assert.Equal(t, flat["border"], flat["br"])
	assert.Equal(t, flat["text"], flat["t"])
	assert.Equal(t, flat["accent"], flat["a"])
	assert.Equal(t, flat["wallpaper"], flat["w"])
	assert.Equal(t, "/home/user/wall.png", flat["w"])
}

func TestFlatten_When_ColorMissing(t *testing.T) {
	t.Parallel()

	doc, err := Load([]byte(sampleJSON()))
	require.NoError(t, err)
	delete(doc.Colors, "color7")

	_, err = doc.Flatten()
	assert.ErrorContains(t, err, "color7")
}
