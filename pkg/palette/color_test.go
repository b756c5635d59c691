package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex_When_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Color{255, 0, 0}},
		{"ff0000", Color{255, 0, 0}},
		{"#1E1E2E", Color{30, 30, 46}},
		{"  #0a141e ", Color{10, 20, 30}},
		{"#000000", Color{0, 0, 0}},
		{"#ffffff", Color{255, 255, 255}},
	}
	for _, tt := range tests {
		c, err := ParseHex(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, c, "input %q", tt.in)
	}
}

func TestParseHex_When_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "#fff", "#gggggg", "/home/user/wall.png", "#ff00", "#ff0000ff"} {
		_, err := ParseHex(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestHex_RoundTrip(t *testing.T) {
	t.Parallel()

	colors := []Color{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 128, 255},
		{30, 30, 46},
		{1, 2, 3},
	}
	for _, c := range colors {
		parsed, err := ParseHex(c.Hex())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}

func TestInvert_Involution(t *testing.T) {
	t.Parallel()

	for _, c := range []Color{{0, 0, 0}, {255, 255, 255}, {10, 20, 30}, {128, 64, 200}} {
		assert.Equal(t, c, c.Invert().Invert())
	}
	assert.Equal(t, Color{245, 235, 225}, Color{10, 20, 30}.Invert())
}
