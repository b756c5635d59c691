package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBToHLS_PrimaryColors(t *testing.T) {
	t.Parallel()

	// The middle element is lightness. Pure red has full saturation and
	// half lightness.
	h, l, s := RGBToHLS(Color{255, 0, 0})
	assert.InDelta(t, 0.0, h, 1e-9)
	assert.InDelta(t, 0.5, l, 1e-9)
	assert.InDelta(t, 1.0, s, 1e-9)

	h, l, s = RGBToHLS(Color{0, 255, 0})
	assert.InDelta(t, 1.0/3.0, h, 1e-9)
	assert.InDelta(t, 0.5, l, 1e-9)
	assert.InDelta(t, 1.0, s, 1e-9)

	h, l, s = RGBToHLS(Color{0, 0, 255})
	assert.InDelta(t, 2.0/3.0, h, 1e-9)
	assert.InDelta(t, 0.5, l, 1e-9)
	assert.InDelta(t, 1.0, s, 1e-9)
}

func TestRGBToHLS_Achromatic(t *testing.T) {
	t.Parallel()

	h, l, s := RGBToHLS(Color{0, 0, 0})
	assert.Zero(t, h)
	assert.Zero(t, l)
	assert.Zero(t, s)

	h, l, s = RGBToHLS(Color{255, 255, 255})
	assert.Zero(t, h)
	assert.InDelta(t, 1.0, l, 1e-9)
	assert.Zero(t, s)

	h, l, s = RGBToHLS(Color{128, 128, 128})
	assert.Zero(t, h)
	assert.InDelta(t, 128.0/255.0, l, 1e-9)
	assert.Zero(t, s)
}

func TestRGBToHLS_MixedColor(t *testing.T) {
	t.Parallel()

	// (0, 128, 255): max is blue, min is red.
	h, l, s := RGBToHLS(Color{0, 128, 255})
	assert.InDelta(t, 0.5, l, 1e-9)
	assert.InDelta(t, 1.0, s, 1e-9)
	// h = (4 + gc - rc) / 6 with gc = (1 - 128/255), rc = 1
	want := (4.0 + (1.0 - 128.0/255.0) - 1.0) / 6.0
	assert.InDelta(t, want, h, 1e-9)
}

func TestRGBToHLS_HueStaysInUnitInterval(t *testing.T) {
	t.Parallel()

	for _, c := range []Color{{200, 10, 100}, {10, 200, 100}, {100, 10, 200}, {255, 254, 1}} {
		h, l, s := RGBToHLS(c)
		assert.GreaterOrEqual(t, h, 0.0)
		assert.Less(t, h, 1.0)
		assert.GreaterOrEqual(t, l, 0.0)
		assert.LessOrEqual(t, l, 1.0)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}
